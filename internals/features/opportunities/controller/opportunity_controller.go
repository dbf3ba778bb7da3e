// file: internals/features/opportunities/controller/opportunity_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	candModel "seleksiku_backend/internals/features/candidates/model"
	"seleksiku_backend/internals/features/opportunities/dto"
	"seleksiku_backend/internals/features/opportunities/model"
	helper "seleksiku_backend/internals/helpers"
)

type OpportunityController struct {
	DB *gorm.DB
}

func NewOpportunityController(db *gorm.DB) *OpportunityController {
	return &OpportunityController{DB: db}
}

// GET /api/admin/opportunities
func (oc *OpportunityController) List(c *fiber.Ctx) error {
	tx := oc.DB.Order("opportunity_created_at DESC")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("opportunity_name ILIKE ?", "%"+q+"%")
	}

	var items []model.OpportunityModel
	if err := tx.Find(&items).Error; err != nil {
		log.Println("[ERROR] ListOpportunities:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data opportunity")
	}
	return helper.JsonOK(c, "Opportunity berhasil diambil", fiber.Map{
		"total": len(items),
		"items": items,
	})
}

// POST /api/admin/opportunities
func (oc *OpportunityController) Create(c *fiber.Ctx) error {
	var req dto.CreateOpportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	opp := model.OpportunityModel{
		OpportunityName:     strings.TrimSpace(req.Name),
		OpportunityIsActive: isActive,
	}
	if err := oc.DB.Create(&opp).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama opportunity sudah dipakai")
		}
		log.Println("[ERROR] CreateOpportunity:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan opportunity")
	}
	return helper.JsonCreated(c, "Opportunity berhasil dibuat", opp)
}

// PUT /api/admin/opportunities/:id
func (oc *OpportunityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID opportunity tidak valid")
	}

	var req dto.UpdateOpportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var opp model.OpportunityModel
	if err := oc.DB.First(&opp, "opportunity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Opportunity tidak ditemukan")
		}
		log.Println("[ERROR] UpdateOpportunity lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil opportunity")
	}

	if req.Name != nil {
		opp.OpportunityName = strings.TrimSpace(*req.Name)
	}
	if req.IsActive != nil {
		opp.OpportunityIsActive = *req.IsActive
	}

	if err := oc.DB.Save(&opp).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama opportunity sudah dipakai")
		}
		log.Println("[ERROR] UpdateOpportunity save:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan opportunity")
	}
	return helper.JsonUpdated(c, "Opportunity berhasil diperbarui", opp)
}

// DELETE /api/admin/opportunities/:id
// Ditolak selama masih ada kandidat yang menunjuk opportunity ini.
func (oc *OpportunityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID opportunity tidak valid")
	}

	var n int64
	if err := oc.DB.Model(&candModel.CandidateModel{}).
		Where("candidate_opportunity_id = ?", id).Count(&n).Error; err != nil {
		log.Println("[ERROR] DeleteOpportunity count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kandidat")
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Opportunity masih memiliki kandidat dan tidak dapat dihapus")
	}

	res := oc.DB.Delete(&model.OpportunityModel{}, "opportunity_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeleteOpportunity:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus opportunity")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Opportunity berhasil dihapus", nil)
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "23505")
}
