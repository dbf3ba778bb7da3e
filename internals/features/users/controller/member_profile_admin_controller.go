// file: internals/features/users/controller/member_profile_admin_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	oppModel "seleksiku_backend/internals/features/opportunities/model"
	"seleksiku_backend/internals/features/users/dto"
	"seleksiku_backend/internals/features/users/model"
	"seleksiku_backend/internals/features/users/service"
	helper "seleksiku_backend/internals/helpers"
)

type MemberProfileAdminController struct {
	DB *gorm.DB
}

func NewMemberProfileAdminController(db *gorm.DB) *MemberProfileAdminController {
	return &MemberProfileAdminController{DB: db}
}

// GET /api/admin/profiles?q=&role=&page=&per_page=
func (mc *MemberProfileAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := mc.DB.Model(&model.MemberProfileModel{}).Order("member_profile_user_name ASC")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("member_profile_user_name ILIKE ? OR member_profile_full_name ILIKE ? OR member_profile_national_id ILIKE ?", like, like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("member_profile_role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] ListProfiles count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data profil")
	}

	var items []model.MemberProfileModel
	if err := tx.Limit(paging.Limit).Offset(paging.Offset).Find(&items).Error; err != nil {
		log.Println("[ERROR] ListProfiles:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data profil")
	}

	return helper.JsonList(c, "Profil berhasil diambil", dto.FromProfileModelList(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/admin/profiles
func (mc *MemberProfileAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	if err := mc.checkScopeRefs(req.OpportunityID, req.CommitteeID); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hash, err := service.HashLast4(req.Last4)
	if err != nil {
		log.Println("[ERROR] HashLast4:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	prof := model.MemberProfileModel{
		MemberProfileUserName:      strings.TrimSpace(req.UserName),
		MemberProfileFullName:      strings.TrimSpace(req.FullName),
		MemberProfileNationalID:    strings.TrimSpace(req.NationalID),
		MemberProfileLast4Hash:     hash,
		MemberProfileRole:          req.Role,
		MemberProfileOpportunityID: req.OpportunityID,
		MemberProfileCommitteeID:   req.CommitteeID,
		MemberProfileIsActive:      isActive,
	}
	if err := mc.DB.Create(&prof).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau nomor identitas sudah terdaftar")
		}
		log.Println("[ERROR] CreateProfile:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	return helper.JsonCreated(c, "Profil berhasil dibuat", dto.FromProfileModel(&prof))
}

// PUT /api/admin/profiles/:id
func (mc *MemberProfileAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID profil tidak valid")
	}

	var req dto.UpdateMemberProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var prof model.MemberProfileModel
	if err := mc.DB.First(&prof, "member_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil tidak ditemukan")
		}
		log.Println("[ERROR] UpdateProfile lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	if req.FullName != nil {
		prof.MemberProfileFullName = strings.TrimSpace(*req.FullName)
	}
	if req.Last4 != nil {
		hash, err := service.HashLast4(*req.Last4)
		if err != nil {
			log.Println("[ERROR] HashLast4:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
		}
		prof.MemberProfileLast4Hash = hash
	}
	if req.Role != nil {
		prof.MemberProfileRole = *req.Role
	}
	if req.OpportunityID != nil {
		prof.MemberProfileOpportunityID = req.OpportunityID
	}
	if req.CommitteeID != nil {
		prof.MemberProfileCommitteeID = req.CommitteeID
	}
	if req.IsActive != nil {
		prof.MemberProfileIsActive = *req.IsActive
	}

	// hasil merge wajib tetap konsisten dengan aturan scope role
	if err := dto.ValidateRoleScope(prof.MemberProfileRole, prof.MemberProfileOpportunityID, prof.MemberProfileCommitteeID); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := mc.checkScopeRefs(prof.MemberProfileOpportunityID, prof.MemberProfileCommitteeID); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := mc.DB.Save(&prof).Error; err != nil {
		log.Println("[ERROR] UpdateProfile save:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.FromProfileModel(&prof))
}

// DELETE /api/admin/profiles/:id — nonaktifkan, bukan hapus baris
func (mc *MemberProfileAdminController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID profil tidak valid")
	}

	res := mc.DB.Model(&model.MemberProfileModel{}).
		Where("member_profile_id = ?", id).
		Update("member_profile_is_active", false)
	if res.Error != nil {
		log.Println("[ERROR] DeactivateProfile:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan profil")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Profil dinonaktifkan", nil)
}

// checkScopeRefs memastikan opportunity/committee yang ditunjuk memang ada.
func (mc *MemberProfileAdminController) checkScopeRefs(opportunityID, committeeID *uuid.UUID) error {
	if opportunityID != nil {
		var n int64
		if err := mc.DB.Model(&oppModel.OpportunityModel{}).
			Where("opportunity_id = ?", *opportunityID).Count(&n).Error; err != nil {
			return errors.New("gagal memeriksa opportunity")
		}
		if n == 0 {
			return errors.New("opportunity tidak ditemukan")
		}
	}
	if committeeID != nil {
		var n int64
		if err := mc.DB.Model(&oppModel.CommitteeModel{}).
			Where("committee_id = ?", *committeeID).Count(&n).Error; err != nil {
			return errors.New("gagal memeriksa committee")
		}
		if n == 0 {
			return errors.New("committee tidak ditemukan")
		}
	}
	return nil
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "23505")
}
