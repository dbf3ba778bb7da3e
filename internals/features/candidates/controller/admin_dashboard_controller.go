// file: internals/features/candidates/controller/admin_dashboard_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"seleksiku_backend/internals/features/candidates/model"
	oppModel "seleksiku_backend/internals/features/opportunities/model"
	helper "seleksiku_backend/internals/helpers"
)

type AdminDashboardController struct {
	DB *gorm.DB
}

func NewAdminDashboardController(db *gorm.DB) *AdminDashboardController {
	return &AdminDashboardController{DB: db}
}

type committeeCount struct {
	CommitteeID   string `json:"committee_id"`
	CommitteeName string `json:"committee_name"`
	Count         int64  `json:"count"`
}

// GET /api/admin/dashboard?opportunity_id=
func (ac *AdminDashboardController) Dashboard(c *fiber.Ctx) error {
	oppID, err := resolveOpportunityID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	base := ac.DB.Model(&model.CandidateModel{}).
		Where("candidate_opportunity_id = ?", oppID)

	var total, ready, assigned, finalized int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Dashboard total:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := base.Session(&gorm.Session{}).
		Where("candidate_file_score IS NOT NULL OR candidate_file_not_eligible = true").
		Count(&ready).Error; err != nil {
		log.Println("[ERROR] Dashboard ready:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := base.Session(&gorm.Session{}).
		Where("candidate_assigned_committee_id IS NOT NULL").
		Count(&assigned).Error; err != nil {
		log.Println("[ERROR] Dashboard assigned:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := base.Session(&gorm.Session{}).
		Where("candidate_is_finalized = true").
		Count(&finalized).Error; err != nil {
		log.Println("[ERROR] Dashboard finalized:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	var committees []oppModel.CommitteeModel
	if err := ac.DB.
		Where("committee_opportunity_id = ?", oppID).
		Order("committee_name ASC").
		Find(&committees).Error; err != nil {
		log.Println("[ERROR] Dashboard committees:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lajnah")
	}

	var perCommittee []committeeCount
	if err := ac.DB.Model(&model.CandidateModel{}).
		Select("committees.committee_id AS committee_id, committees.committee_name AS committee_name, COUNT(candidates.candidate_id) AS count").
		Joins("JOIN committees ON committees.committee_id = candidates.candidate_assigned_committee_id").
		Where("candidates.candidate_opportunity_id = ?", oppID).
		Group("committees.committee_id, committees.committee_name").
		Order("committees.committee_name ASC").
		Scan(&perCommittee).Error; err != nil {
		log.Println("[ERROR] Dashboard per committee:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	return helper.JsonOK(c, "Dashboard berhasil diambil", fiber.Map{
		"opportunity_id": oppID,
		"total":          total,
		"ready":          ready,
		"assigned":       assigned,
		"finalized":      finalized,
		"committees":     committees,
		"per_committee":  perCommittee,
	})
}
