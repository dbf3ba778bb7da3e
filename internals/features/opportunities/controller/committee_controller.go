// file: internals/features/opportunities/controller/committee_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"seleksiku_backend/internals/features/opportunities/dto"
	"seleksiku_backend/internals/features/opportunities/model"
	helper "seleksiku_backend/internals/helpers"
)

type CommitteeController struct {
	DB *gorm.DB
}

func NewCommitteeController(db *gorm.DB) *CommitteeController {
	return &CommitteeController{DB: db}
}

// GET /api/admin/committees?opportunity_id=
func (cc *CommitteeController) List(c *fiber.Ctx) error {
	tx := cc.DB.Order("committee_name ASC")
	if raw := strings.TrimSpace(c.Query("opportunity_id")); raw != "" {
		oppID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "opportunity_id tidak valid")
		}
		tx = tx.Where("committee_opportunity_id = ?", oppID)
	}

	var items []model.CommitteeModel
	if err := tx.Find(&items).Error; err != nil {
		log.Println("[ERROR] ListCommittees:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lajnah")
	}
	return helper.JsonOK(c, "Lajnah berhasil diambil", fiber.Map{
		"total": len(items),
		"items": items,
	})
}

// POST /api/admin/committees
func (cc *CommitteeController) Create(c *fiber.Ctx) error {
	var req dto.CreateCommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var n int64
	if err := cc.DB.Model(&model.OpportunityModel{}).
		Where("opportunity_id = ?", req.OpportunityID).Count(&n).Error; err != nil {
		log.Println("[ERROR] CreateCommittee opp check:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa opportunity")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Opportunity tidak ditemukan")
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}

	com := model.CommitteeModel{
		CommitteeOpportunityID: req.OpportunityID,
		CommitteeName:          strings.TrimSpace(req.Name),
		CommitteeIsOpen:        isOpen,
	}
	if err := cc.DB.Create(&com).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama lajnah sudah dipakai di opportunity ini")
		}
		log.Println("[ERROR] CreateCommittee:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lajnah")
	}
	return helper.JsonCreated(c, "Lajnah berhasil dibuat", com)
}

// PUT /api/admin/committees/:id — rename / buka-tutup
func (cc *CommitteeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lajnah tidak valid")
	}

	var req dto.UpdateCommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var com model.CommitteeModel
	if err := cc.DB.First(&com, "committee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lajnah tidak ditemukan")
		}
		log.Println("[ERROR] UpdateCommittee lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lajnah")
	}

	if req.Name != nil {
		com.CommitteeName = strings.TrimSpace(*req.Name)
	}
	if req.IsOpen != nil {
		com.CommitteeIsOpen = *req.IsOpen
	}

	if err := cc.DB.Save(&com).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama lajnah sudah dipakai di opportunity ini")
		}
		log.Println("[ERROR] UpdateCommittee save:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lajnah")
	}
	return helper.JsonUpdated(c, "Lajnah berhasil diperbarui", com)
}
