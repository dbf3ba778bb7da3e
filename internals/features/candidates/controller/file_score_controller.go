// file: internals/features/candidates/controller/file_score_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seleksiku_backend/internals/features/candidates/dto"
	"seleksiku_backend/internals/features/candidates/model"
	"seleksiku_backend/internals/features/candidates/workflow"
	userModel "seleksiku_backend/internals/features/users/model"
	helper "seleksiku_backend/internals/helpers"
)

type FileScoreController struct {
	DB *gorm.DB
}

func NewFileScoreController(db *gorm.DB) *FileScoreController {
	return &FileScoreController{DB: db}
}

// POST /api/candidates/:id/file-score
//
// Penilaian berkas (terpadu):
//   - supervisor: kandidat dalam opportunity miliknya.
//   - chair: hanya kandidat yang sudah terdistribusi ke lajnahnya.
func (fc *FileScoreController) ScoreFile(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kandidat tidak valid")
	}

	var req dto.FileScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	profileID, err := helper.GetProfileID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	role := helper.GetRole(c)

	var statusErr *fiber.Error
	var out model.CandidateModel
	var interviewCount int64

	txErr := fc.DB.Transaction(func(tx *gorm.DB) error {
		// lock baris kandidat; guard dibaca ulang di dalam transaksi
		var cand model.CandidateModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cand, "candidate_id = ?", candidateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Kandidat tidak ditemukan")
				return statusErr
			}
			log.Println("[ERROR] ScoreFile lock:", err)
			return err
		}

		// scope per role
		switch role {
		case userModel.RoleSupervisor:
			oppID := helper.GetOpportunityID(c)
			if oppID == uuid.Nil {
				statusErr = fiber.NewError(fiber.StatusForbidden, "Akun supervisor belum terhubung ke opportunity. Hubungi admin.")
				return statusErr
			}
			if cand.CandidateOpportunityID != oppID {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Kandidat tidak ditemukan")
				return statusErr
			}
		case userModel.RoleChair:
			comID := helper.GetCommitteeID(c)
			if comID == uuid.Nil {
				statusErr = fiber.NewError(fiber.StatusForbidden, "Akun Anda belum terhubung ke lajnah. Hubungi admin.")
				return statusErr
			}
			if cand.CandidateAssignedCommitteeID == nil || *cand.CandidateAssignedCommitteeID != comID {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Kandidat tidak ditemukan")
				return statusErr
			}
		default:
			statusErr = fiber.NewError(fiber.StatusForbidden, "Role Anda tidak boleh menilai berkas")
			return statusErr
		}

		if gErr := workflow.CanScoreFile(dto.SnapshotOf(&cand)); gErr != nil {
			statusErr = fiber.NewError(fiber.StatusConflict, gErr.Error())
			return statusErr
		}

		now := time.Now()
		if req.NotEligible {
			cand.CandidateFileNotEligible = true
			cand.CandidateFileNotEligibleReason = strings.TrimSpace(req.Reason)
			cand.CandidateFileScore = nil
		} else {
			cand.CandidateFileScore = req.Score
			cand.CandidateFileNotEligible = false
			cand.CandidateFileNotEligibleReason = ""
		}
		cand.CandidateFileReviewerID = &profileID
		cand.CandidateFileScoredAt = &now

		if err := tx.Save(&cand).Error; err != nil {
			log.Println("[ERROR] ScoreFile save:", err)
			return err
		}

		if cand.CandidateAssignedCommitteeID != nil {
			if err := tx.Model(&model.InterviewScoreModel{}).
				Where("interview_score_committee_id = ? AND interview_score_candidate_id = ?",
					*cand.CandidateAssignedCommitteeID, cand.CandidateID).
				Count(&interviewCount).Error; err != nil {
				log.Println("[ERROR] ScoreFile count interviews:", err)
				return err
			}
		}
		out = cand
		return nil
	})

	if txErr != nil {
		if statusErr != nil {
			return helper.JsonError(c, statusErr.Code, statusErr.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penilaian berkas")
	}

	return helper.JsonUpdated(c, "Penilaian berkas tersimpan", dto.FromCandidateModel(&out, int(interviewCount)))
}
