// file: internals/features/candidates/controller/supervisor_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"seleksiku_backend/internals/features/candidates/dto"
	"seleksiku_backend/internals/features/candidates/model"
	helper "seleksiku_backend/internals/helpers"
)

type SupervisorController struct {
	DB *gorm.DB
}

func NewSupervisorController(db *gorm.DB) *SupervisorController {
	return &SupervisorController{DB: db}
}

// GET /api/supervisor/candidates?q=&status=&page=&per_page=
//
// Antrian penilaian berkas untuk supervisor: kandidat opportunity miliknya,
// dipisah pending / done (status=pending|done) + statistik ringkas.
func (sc *SupervisorController) Queue(c *fiber.Ctx) error {
	oppID := helper.GetOpportunityID(c)
	if oppID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun supervisor belum terhubung ke opportunity. Hubungi admin.")
	}

	status := strings.TrimSpace(c.Query("status"))
	statusCond, ok := fileReviewStatusCond(status)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status harus pending atau done")
	}

	base := sc.DB.Model(&model.CandidateModel{}).
		Where("candidate_opportunity_id = ?", oppID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("candidate_full_name ILIKE ? OR candidate_national_id ILIKE ?", like, like)
	}

	var stats struct {
		Total    int64 `json:"total"`
		Pending  int64 `json:"pending"`
		Done     int64 `json:"done"`
		Assigned int64 `json:"assigned"`
	}
	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		log.Println("[ERROR] SupervisorQueue total:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}
	if err := base.Session(&gorm.Session{}).
		Where("candidate_file_score IS NULL AND candidate_file_not_eligible = false").
		Count(&stats.Pending).Error; err != nil {
		log.Println("[ERROR] SupervisorQueue pending:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}
	stats.Done = stats.Total - stats.Pending
	if err := base.Session(&gorm.Session{}).
		Where("candidate_assigned_committee_id IS NOT NULL").
		Count(&stats.Assigned).Error; err != nil {
		log.Println("[ERROR] SupervisorQueue assigned:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}

	// filter status hanya memengaruhi daftar; statistik tetap seluruh antrian
	listBase := base.Session(&gorm.Session{})
	listTotal := stats.Total
	switch status {
	case "pending":
		listBase = listBase.Where(statusCond)
		listTotal = stats.Pending
	case "done":
		listBase = listBase.Where(statusCond)
		listTotal = stats.Done
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var items []model.CandidateModel
	if err := listBase.
		Order("candidate_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		log.Println("[ERROR] SupervisorQueue list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}

	resp := make([]dto.CandidateResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.FromCandidateModel(&items[i], 0))
	}

	return helper.JsonList(c, "Antrian supervisor berhasil diambil", fiber.Map{
		"stats": stats,
		"items": resp,
	}, helper.BuildPaginationFromPage(listTotal, paging.Page, paging.PerPage))
}
