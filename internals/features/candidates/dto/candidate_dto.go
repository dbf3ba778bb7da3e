// file: internals/features/candidates/dto/candidate_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"seleksiku_backend/internals/features/candidates/model"
	"seleksiku_backend/internals/features/candidates/workflow"
	helper "seleksiku_backend/internals/helpers"
)

var validate = validator.New()

/* ===============================
   Requests
=================================*/

// FileScoreRequest — tepat satu dari (score, not_eligible) yang boleh terisi.
type FileScoreRequest struct {
	Score       *float64 `json:"score,omitempty"`
	NotEligible bool     `json:"not_eligible,omitempty"`
	Reason      string   `json:"reason,omitempty" validate:"max=2000"`
}

func (r *FileScoreRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.NotEligible {
		if r.Score != nil {
			return errors.New("pilih salah satu: skor berkas atau tandai tidak memenuhi syarat")
		}
		return nil
	}
	if r.Score == nil {
		return errors.New("skor berkas wajib diisi (0-50) atau tandai tidak memenuhi syarat")
	}
	if !helper.ValidScore0to50(*r.Score) {
		return errors.New("skor berkas harus di antara 0 dan 50")
	}
	return nil
}

type AssignRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
	CommitteeID uuid.UUID `json:"committee_id" validate:"required"`
}

func (r *AssignRequest) Validate() error { return validate.Struct(r) }

type InterviewScoreRequest struct {
	Score float64 `json:"score"`
	Notes string  `json:"notes,omitempty" validate:"max=4000"`
}

func (r *InterviewScoreRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !helper.ValidScore0to50(r.Score) {
		return errors.New("skor wawancara harus di antara 0 dan 50")
	}
	return nil
}

type FinalizeRequest struct {
	IsNominated bool   `json:"is_nominated"`
	Reason      string `json:"reason,omitempty" validate:"max=2000"`
}

func (r *FinalizeRequest) Validate() error { return validate.Struct(r) }

/* ===============================
   Responses
=================================*/

type CandidateResponse struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	OpportunityID uuid.UUID `json:"opportunity_id"`
	NationalID    string    `json:"national_id"`
	FullName      string    `json:"full_name"`

	Specialization  string `json:"specialization,omitempty"`
	Rank            string `json:"rank,omitempty"`
	School          string `json:"school,omitempty"`
	Sector          string `json:"sector,omitempty"`
	AppliedPosition string `json:"applied_position,omitempty"`

	FileScore            *float64   `json:"file_score,omitempty"`
	FileNotEligible      bool       `json:"file_not_eligible"`
	FileNotEligibleReason string    `json:"file_not_eligible_reason,omitempty"`
	FileScoredAt         *time.Time `json:"file_scored_at,omitempty"`

	AssignedCommitteeID *uuid.UUID `json:"assigned_committee_id,omitempty"`

	IsFinalized bool       `json:"is_finalized"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`

	// State turunan (lihat workflow.DeriveState)
	State workflow.State `json:"state"`

	// Penanda "sudah saya nilai" untuk antrian lajnah
	ScoredByMe *bool `json:"scored_by_me,omitempty"`
}

func FromCandidateModel(m *model.CandidateModel, interviewCount int) CandidateResponse {
	return CandidateResponse{
		CandidateID:           m.CandidateID,
		OpportunityID:         m.CandidateOpportunityID,
		NationalID:            maskNationalID(m.CandidateNationalID),
		FullName:              m.CandidateFullName,
		Specialization:        m.CandidateSpecialization,
		Rank:                  m.CandidateRank,
		School:                m.CandidateSchool,
		Sector:                m.CandidateSector,
		AppliedPosition:       m.CandidateAppliedPosition,
		FileScore:             m.CandidateFileScore,
		FileNotEligible:       m.CandidateFileNotEligible,
		FileNotEligibleReason: m.CandidateFileNotEligibleReason,
		FileScoredAt:          m.CandidateFileScoredAt,
		AssignedCommitteeID:   m.CandidateAssignedCommitteeID,
		IsFinalized:           m.CandidateIsFinalized,
		FinalizedAt:           m.CandidateFinalizedAt,
		State:                 workflow.DeriveState(SnapshotOf(m), interviewCount),
	}
}

// SnapshotOf memetakan model ke potret flag yang dipakai workflow.
func SnapshotOf(m *model.CandidateModel) workflow.CandidateSnapshot {
	return workflow.CandidateSnapshot{
		OpportunityID:       m.CandidateOpportunityID,
		FileScore:           m.CandidateFileScore,
		FileNotEligible:     m.CandidateFileNotEligible,
		AssignedCommitteeID: m.CandidateAssignedCommitteeID,
		IsFinalized:         m.CandidateIsFinalized,
	}
}

// maskNationalID: tampilkan 4 digit terakhir saja di response list/detail.
func maskNationalID(nid string) string {
	n := len(nid)
	if n <= 4 {
		return nid
	}
	return strings.Repeat("*", n-4) + nid[n-4:]
}

/* ===============================
   Finalize preview
=================================*/

type MemberScoreItem struct {
	MemberProfileID uuid.UUID `json:"member_profile_id"`
	MemberName      string    `json:"member_name,omitempty"`
	Score           float64   `json:"score"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type FinalizePreviewResponse struct {
	Candidate        CandidateResponse   `json:"candidate"`
	Scores           []MemberScoreItem   `json:"scores"`
	InterviewAverage float64             `json:"interview_average"`
	FinalScore       float64             `json:"final_score"`
	PreviousDecision *FinalDecisionBrief `json:"previous_decision,omitempty"`
}

type FinalDecisionBrief struct {
	IsNominated bool      `json:"is_nominated"`
	Reason      string    `json:"reason,omitempty"`
	FinalScore  float64   `json:"final_score"`
	SubmittedBy uuid.UUID `json:"submitted_by"`
	SubmittedAt time.Time `json:"submitted_at"`
}
