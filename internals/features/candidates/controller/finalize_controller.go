// file: internals/features/candidates/controller/finalize_controller.go
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

	"seleksiku_backend/internals/configs"
	"seleksiku_backend/internals/features/candidates/dto"
	"seleksiku_backend/internals/features/candidates/model"
	"seleksiku_backend/internals/features/candidates/workflow"
	userModel "seleksiku_backend/internals/features/users/model"
	helper "seleksiku_backend/internals/helpers"
)

type FinalizeController struct {
	DB *gorm.DB
}

func NewFinalizeController(db *gorm.DB) *FinalizeController {
	return &FinalizeController{DB: db}
}

// resolveCommitteeForFinalize: chair memakai lajnahnya sendiri; admin memakai
// lajnah tempat kandidat terdistribusi (dengan cek opportunity yang sama).
func (fc *FinalizeController) resolveCommitteeForFinalize(c *fiber.Ctx, cand *model.CandidateModel) (uuid.UUID, *fiber.Error) {
	role := helper.GetRole(c)

	if role == userModel.RoleChair {
		comID := helper.GetCommitteeID(c)
		if comID == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda belum terhubung ke lajnah. Hubungi admin.")
		}
		return comID, nil
	}

	// admin
	if cand.CandidateAssignedCommitteeID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnprocessableEntity, workflow.ErrNotAssignedHere.Message)
	}
	return *cand.CandidateAssignedCommitteeID, nil
}

// GET /api/candidates/:id/finalize
//
// Pratinjau finalisasi: skor per member, rata-rata, skor akhir, dan keputusan
// sebelumnya kalau ada.
func (fc *FinalizeController) Preview(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kandidat tidak valid")
	}

	var cand model.CandidateModel
	if err := fc.DB.First(&cand, "candidate_id = ?", candidateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kandidat tidak ditemukan")
		}
		log.Println("[ERROR] FinalizePreview lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kandidat")
	}

	comID, ferr := fc.resolveCommitteeForFinalize(c, &cand)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	if helper.GetRole(c) == userModel.RoleChair {
		if cand.CandidateAssignedCommitteeID == nil || *cand.CandidateAssignedCommitteeID != comID {
			return helper.JsonError(c, fiber.StatusNotFound, "Kandidat tidak ditemukan")
		}
	}

	var scores []model.InterviewScoreModel
	if err := fc.DB.Preload("Member").
		Where("interview_score_committee_id = ? AND interview_score_candidate_id = ?", comID, candidateID).
		Order("interview_score_created_at ASC").
		Find(&scores).Error; err != nil {
		log.Println("[ERROR] FinalizePreview scores:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil skor wawancara")
	}

	values := make([]float64, 0, len(scores))
	items := make([]dto.MemberScoreItem, 0, len(scores))
	for i := range scores {
		values = append(values, scores[i].InterviewScoreValue)
		item := dto.MemberScoreItem{
			MemberProfileID: scores[i].InterviewScoreMemberID,
			Score:           scores[i].InterviewScoreValue,
			Notes:           scores[i].InterviewScoreNotes,
			CreatedAt:       scores[i].InterviewScoreCreatedAt,
		}
		if scores[i].Member != nil {
			item.MemberName = scores[i].Member.MemberProfileFullName
		}
		items = append(items, item)
	}

	avg := workflow.InterviewAverage(values)
	final := workflow.FinalScore(cand.CandidateFileScore, cand.CandidateFileNotEligible, avg)

	resp := dto.FinalizePreviewResponse{
		Candidate:        dto.FromCandidateModel(&cand, len(scores)),
		Scores:           items,
		InterviewAverage: avg,
		FinalScore:       final,
	}

	var prev model.FinalDecisionModel
	err = fc.DB.First(&prev, "final_decision_committee_id = ? AND final_decision_candidate_id = ?", comID, candidateID).Error
	if err == nil {
		resp.PreviousDecision = &dto.FinalDecisionBrief{
			IsNominated: prev.FinalDecisionIsNominated,
			Reason:      prev.FinalDecisionReason,
			FinalScore:  prev.FinalDecisionFinalScore,
			SubmittedBy: prev.FinalDecisionSubmittedBy,
			SubmittedAt: prev.FinalDecisionSubmittedAt,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] FinalizePreview prev:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil keputusan sebelumnya")
	}

	return helper.JsonOK(c, "Pratinjau finalisasi berhasil diambil", resp)
}

// POST /api/candidates/:id/finalize {is_nominated, reason}
//
// Transisi terminal. Semua guard dibaca ulang di bawah row lock; efek
// (upsert keputusan + set flag finalized) berjalan atomik dalam satu transaksi.
func (fc *FinalizeController) Finalize(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kandidat tidak valid")
	}

	var req dto.FinalizeRequest
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

	var statusErr *fiber.Error
	var decision model.FinalDecisionModel

	txErr := fc.DB.Transaction(func(tx *gorm.DB) error {
		var cand model.CandidateModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cand, "candidate_id = ?", candidateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Kandidat tidak ditemukan")
				return statusErr
			}
			log.Println("[ERROR] Finalize lock:", err)
			return err
		}

		comID, ferr := fc.resolveCommitteeForFinalize(c, &cand)
		if ferr != nil {
			statusErr = ferr
			return statusErr
		}

		// lajnah dan kandidat wajib satu opportunity
		var com struct {
			CommitteeOpportunityID uuid.UUID
		}
		if err := tx.Table("committees").
			Select("committee_opportunity_id").
			Where("committee_id = ?", comID).
			Take(&com).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Lajnah tidak ditemukan")
				return statusErr
			}
			log.Println("[ERROR] Finalize committee lookup:", err)
			return err
		}
		if com.CommitteeOpportunityID != cand.CandidateOpportunityID {
			statusErr = fiber.NewError(fiber.StatusUnprocessableEntity, workflow.ErrCommitteeMismatch.Message)
			return statusErr
		}

		var values []float64
		if err := tx.Model(&model.InterviewScoreModel{}).
			Where("interview_score_committee_id = ? AND interview_score_candidate_id = ?", comID, cand.CandidateID).
			Pluck("interview_score_value", &values).Error; err != nil {
			log.Println("[ERROR] Finalize scores:", err)
			return err
		}

		gErr := workflow.CanFinalize(dto.SnapshotOf(&cand), comID, len(values), configs.FinalizeRequireFileScore)
		if gErr != nil {
			var guard *workflow.GuardError
			status := fiber.StatusUnprocessableEntity
			if errors.As(gErr, &guard) {
				switch guard {
				case workflow.ErrFinalized:
					status = fiber.StatusConflict
				case workflow.ErrNotAssignedHere:
					status = fiber.StatusNotFound
				}
			}
			statusErr = fiber.NewError(status, gErr.Error())
			return statusErr
		}

		avg := workflow.InterviewAverage(values)
		final := workflow.FinalScore(cand.CandidateFileScore, cand.CandidateFileNotEligible, avg)
		now := time.Now()

		decision = model.FinalDecisionModel{
			FinalDecisionCommitteeID: comID,
			FinalDecisionCandidateID: cand.CandidateID,
			FinalDecisionIsNominated: req.IsNominated,
			FinalDecisionReason:      strings.TrimSpace(req.Reason),
			FinalDecisionFinalScore:  final,
			FinalDecisionSubmittedBy: profileID,
			FinalDecisionSubmittedAt: now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "final_decision_committee_id"},
				{Name: "final_decision_candidate_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"final_decision_is_nominated",
				"final_decision_reason",
				"final_decision_final_score",
				"final_decision_submitted_by",
				"final_decision_submitted_at",
			}),
		}).Create(&decision).Error; err != nil {
			log.Println("[ERROR] Finalize upsert decision:", err)
			return err
		}

		if err := tx.Model(&model.CandidateModel{}).
			Where("candidate_id = ?", cand.CandidateID).
			Updates(map[string]interface{}{
				"candidate_is_finalized": true,
				"candidate_finalized_by": profileID,
				"candidate_finalized_at": now,
			}).Error; err != nil {
			log.Println("[ERROR] Finalize update candidate:", err)
			return err
		}
		return nil
	})

	if txErr != nil {
		if statusErr != nil {
			return helper.JsonError(c, statusErr.Code, statusErr.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memfinalisasi kandidat")
	}

	return helper.JsonOK(c, "Hasil seleksi difinalisasi", fiber.Map{
		"final_decision_id": decision.FinalDecisionID,
		"is_nominated":      decision.FinalDecisionIsNominated,
		"final_score":       decision.FinalDecisionFinalScore,
	})
}
