// file: internals/features/candidates/controller/distribution_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seleksiku_backend/internals/features/candidates/dto"
	"seleksiku_backend/internals/features/candidates/model"
	"seleksiku_backend/internals/features/candidates/workflow"
	oppModel "seleksiku_backend/internals/features/opportunities/model"
	helper "seleksiku_backend/internals/helpers"
)

type DistributionController struct {
	DB *gorm.DB
}

func NewDistributionController(db *gorm.DB) *DistributionController {
	return &DistributionController{DB: db}
}

// resolveOpportunityID: scope admin diambil dari profilnya; kalau tidak
// terhubung, wajib eksplisit lewat ?opportunity_id=. Tidak ada fallback
// "opportunity aktif pertama" — ambigu saat ada lebih dari satu yang aktif.
func resolveOpportunityID(c *fiber.Ctx) (uuid.UUID, error) {
	if oppID := helper.GetOpportunityID(c); oppID != uuid.Nil {
		return oppID, nil
	}
	raw := strings.TrimSpace(c.Query("opportunity_id"))
	if raw == "" {
		return uuid.Nil, errors.New("opportunity_id wajib diisi (akun Anda tidak terhubung ke opportunity tertentu)")
	}
	oppID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("opportunity_id tidak valid")
	}
	return oppID, nil
}

// GET /api/admin/distribution?q=&page=&per_page=&opportunity_id=
//
// Papan distribusi: lajnah terbuka + kandidat siap (sudah dinilai berkas /
// ineligible) yang belum terdistribusi.
func (dc *DistributionController) Board(c *fiber.Ctx) error {
	oppID, err := resolveOpportunityID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var committees []oppModel.CommitteeModel
	if err := dc.DB.
		Where("committee_opportunity_id = ? AND committee_is_open = true", oppID).
		Order("committee_name ASC").
		Find(&committees).Error; err != nil {
		log.Println("[ERROR] DistributionBoard committees:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lajnah")
	}

	base := dc.DB.Model(&model.CandidateModel{}).
		Where("candidate_opportunity_id = ?", oppID).
		Where("candidate_file_score IS NOT NULL OR candidate_file_not_eligible = true").
		Where("candidate_assigned_committee_id IS NULL")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("candidate_full_name ILIKE ? OR candidate_national_id ILIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] DistributionBoard count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var ready []model.CandidateModel
	if err := base.Session(&gorm.Session{}).
		Order("candidate_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ready).Error; err != nil {
		log.Println("[ERROR] DistributionBoard list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}

	resp := make([]dto.CandidateResponse, 0, len(ready))
	for i := range ready {
		resp = append(resp, dto.FromCandidateModel(&ready[i], 0))
	}

	return helper.JsonList(c, "Papan distribusi berhasil diambil", fiber.Map{
		"opportunity_id": oppID,
		"committees":     committees,
		"ready":          resp,
	}, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/admin/distribution {candidate_id, committee_id}
//
// Transisi sekali jalan: check-then-set di bawah row lock kandidat.
// "Sudah terdistribusi" dijawab 200 informasional, bukan error.
func (dc *DistributionController) Assign(c *fiber.Ctx) error {
	oppID, err := resolveOpportunityID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var statusErr *fiber.Error
	alreadyAssigned := false

	txErr := dc.DB.Transaction(func(tx *gorm.DB) error {
		var cand model.CandidateModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cand, "candidate_id = ? AND candidate_opportunity_id = ?", req.CandidateID, oppID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Kandidat tidak ditemukan")
				return statusErr
			}
			log.Println("[ERROR] Assign lock:", err)
			return err
		}

		var com oppModel.CommitteeModel
		if err := tx.First(&com, "committee_id = ?", req.CommitteeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Lajnah tidak ditemukan")
				return statusErr
			}
			log.Println("[ERROR] Assign committee lookup:", err)
			return err
		}

		gErr := workflow.CanAssign(dto.SnapshotOf(&cand), com.CommitteeOpportunityID, com.CommitteeIsOpen)
		if gErr != nil {
			var guard *workflow.GuardError
			if errors.As(gErr, &guard) && guard == workflow.ErrAlreadyAssigned {
				// idempotent no-op
				alreadyAssigned = true
				return nil
			}
			statusErr = fiber.NewError(fiber.StatusUnprocessableEntity, gErr.Error())
			return statusErr
		}

		if err := tx.Model(&model.CandidateModel{}).
			Where("candidate_id = ?", cand.CandidateID).
			Update("candidate_assigned_committee_id", com.CommitteeID).Error; err != nil {
			log.Println("[ERROR] Assign update:", err)
			return err
		}
		return nil
	})

	if txErr != nil {
		if statusErr != nil {
			return helper.JsonError(c, statusErr.Code, statusErr.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendistribusikan kandidat")
	}

	if alreadyAssigned {
		return helper.JsonOK(c, workflow.ErrAlreadyAssigned.Message, nil)
	}
	return helper.JsonOK(c, "Kandidat terdistribusi ke lajnah", nil)
}
