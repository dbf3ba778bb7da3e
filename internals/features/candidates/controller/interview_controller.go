// file: internals/features/candidates/controller/interview_controller.go
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
	userModel "seleksiku_backend/internals/features/users/model"
	helper "seleksiku_backend/internals/helpers"
)

type InterviewController struct {
	DB *gorm.DB
}

func NewInterviewController(db *gorm.DB) *InterviewController {
	return &InterviewController{DB: db}
}

// GET /api/committee/candidates?q=&page=&per_page=
//
// Antrian lajnah: kandidat yang terdistribusi ke lajnah pemanggil, dengan
// penanda "sudah saya nilai". Chair juga mendapat hitungan tugas tertunda.
func (ic *InterviewController) Queue(c *fiber.Ctx) error {
	comID := helper.GetCommitteeID(c)
	if comID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda belum terhubung ke lajnah. Hubungi admin.")
	}
	profileID, err := helper.GetProfileID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	base := ic.DB.Model(&model.CandidateModel{}).
		Where("candidate_assigned_committee_id = ?", comID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("candidate_full_name ILIKE ? OR candidate_national_id ILIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] CommitteeQueue count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var items []model.CandidateModel
	if err := base.Session(&gorm.Session{}).
		Order("candidate_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		log.Println("[ERROR] CommitteeQueue list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kandidat")
	}

	// id kandidat yang sudah dinilai member pemanggil
	var scoredIDs []uuid.UUID
	if err := ic.DB.Model(&model.InterviewScoreModel{}).
		Where("interview_score_committee_id = ? AND interview_score_member_id = ?", comID, profileID).
		Pluck("interview_score_candidate_id", &scoredIDs).Error; err != nil {
		log.Println("[ERROR] CommitteeQueue scored ids:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penilaian")
	}
	scoredSet := make(map[uuid.UUID]struct{}, len(scoredIDs))
	for _, id := range scoredIDs {
		scoredSet[id] = struct{}{}
	}

	// jumlah skor per kandidat (untuk state turunan)
	type scoreCount struct {
		CandidateID uuid.UUID
		N           int
	}
	var counts []scoreCount
	if err := ic.DB.Model(&model.InterviewScoreModel{}).
		Select("interview_score_candidate_id AS candidate_id, COUNT(*) AS n").
		Where("interview_score_committee_id = ?", comID).
		Group("interview_score_candidate_id").
		Scan(&counts).Error; err != nil {
		log.Println("[ERROR] CommitteeQueue counts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penilaian")
	}
	countByID := make(map[uuid.UUID]int, len(counts))
	for _, sc := range counts {
		countByID[sc.CandidateID] = sc.N
	}

	resp := make([]dto.CandidateResponse, 0, len(items))
	for i := range items {
		r := dto.FromCandidateModel(&items[i], countByID[items[i].CandidateID])
		_, scored := scoredSet[items[i].CandidateID]
		r.ScoredByMe = &scored
		resp = append(resp, r)
	}

	body := fiber.Map{
		"committee_id": comID,
		"items":        resp,
	}

	if helper.GetRole(c) == userModel.RoleChair {
		var pendingFile, pendingFinalize int64
		if err := ic.DB.Model(&model.CandidateModel{}).
			Where("candidate_assigned_committee_id = ? AND candidate_file_score IS NULL AND candidate_file_not_eligible = false", comID).
			Count(&pendingFile).Error; err != nil {
			log.Println("[ERROR] CommitteeQueue pending file:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tugas")
		}
		if err := ic.DB.Model(&model.CandidateModel{}).
			Where("candidate_assigned_committee_id = ? AND candidate_is_finalized = false", comID).
			Count(&pendingFinalize).Error; err != nil {
			log.Println("[ERROR] CommitteeQueue pending finalize:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tugas")
		}
		// dihitung atas seluruh antrian lajnah, bukan halaman aktif
		var assignedIDs []uuid.UUID
		if err := ic.DB.Model(&model.CandidateModel{}).
			Where("candidate_assigned_committee_id = ? AND candidate_is_finalized = false", comID).
			Pluck("candidate_id", &assignedIDs).Error; err != nil {
			log.Println("[ERROR] CommitteeQueue pending interview:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tugas")
		}
		pendingInterview := countPendingInterview(assignedIDs, scoredSet)
		body["tasks"] = fiber.Map{
			"pending_file":      pendingFile,
			"pending_interview": pendingInterview,
			"pending_finalize":  pendingFinalize,
		}
	}

	return helper.JsonList(c, "Antrian lajnah berhasil diambil", body,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/candidates/:id/interview-score
//
// Upsert skor wawancara milik member pemanggil. Bebas ditimpa berulang kali
// sampai kandidat difinalisasi; tanpa riwayat.
func (ic *InterviewController) ScoreInterview(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kandidat tidak valid")
	}

	var req dto.InterviewScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	comID := helper.GetCommitteeID(c)
	if comID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda belum terhubung ke lajnah. Hubungi admin.")
	}
	profileID, err := helper.GetProfileID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var statusErr *fiber.Error

	txErr := ic.DB.Transaction(func(tx *gorm.DB) error {
		var cand model.CandidateModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cand, "candidate_id = ?", candidateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				statusErr = fiber.NewError(fiber.StatusNotFound, "Kandidat tidak ditemukan")
				return statusErr
			}
			log.Println("[ERROR] ScoreInterview lock:", err)
			return err
		}

		if gErr := workflow.CanScoreInterview(dto.SnapshotOf(&cand), comID); gErr != nil {
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

		score := model.InterviewScoreModel{
			InterviewScoreCommitteeID: comID,
			InterviewScoreCandidateID: cand.CandidateID,
			InterviewScoreMemberID:    profileID,
			InterviewScoreValue:       req.Score,
			InterviewScoreNotes:       strings.TrimSpace(req.Notes),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "interview_score_committee_id"},
				{Name: "interview_score_candidate_id"},
				{Name: "interview_score_member_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"interview_score_value",
				"interview_score_notes",
				"interview_score_updated_at",
			}),
		}).Create(&score).Error; err != nil {
			log.Println("[ERROR] ScoreInterview upsert:", err)
			return err
		}
		return nil
	})

	if txErr != nil {
		if statusErr != nil {
			return helper.JsonError(c, statusErr.Code, statusErr.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan skor wawancara")
	}

	return helper.JsonUpdated(c, "Skor wawancara tersimpan", nil)
}
