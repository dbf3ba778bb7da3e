// file: internals/features/candidates/model/interview_score_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	oppModel "seleksiku_backend/internals/features/opportunities/model"
	userModel "seleksiku_backend/internals/features/users/model"
)

// InterviewScoreModel — skor wawancara satu anggota untuk satu kandidat di satu lajnah.
// Unik per (committee, candidate, member); disimpan via upsert, tanpa riwayat.
type InterviewScoreModel struct {
	// PK
	InterviewScoreID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:interview_score_id" json:"interview_score_id"`

	// Kunci unik komposit
	InterviewScoreCommitteeID uuid.UUID `gorm:"type:uuid;not null;column:interview_score_committee_id;uniqueIndex:uq_interview_score_key,priority:1" json:"interview_score_committee_id"`
	InterviewScoreCandidateID uuid.UUID `gorm:"type:uuid;not null;column:interview_score_candidate_id;uniqueIndex:uq_interview_score_key,priority:2" json:"interview_score_candidate_id"`
	InterviewScoreMemberID    uuid.UUID `gorm:"type:uuid;not null;column:interview_score_member_id;uniqueIndex:uq_interview_score_key,priority:3" json:"interview_score_member_id"`

	InterviewScoreValue float64 `gorm:"type:numeric(5,2);not null;column:interview_score_value" json:"interview_score_value"`
	InterviewScoreNotes string  `gorm:"type:text;column:interview_score_notes" json:"interview_score_notes"`

	// Audit
	InterviewScoreCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:interview_score_created_at" json:"interview_score_created_at"`
	InterviewScoreUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:interview_score_updated_at" json:"interview_score_updated_at"`

	// Relasi (cascade ikut committee & candidate)
	Committee *oppModel.CommitteeModel       `gorm:"foreignKey:InterviewScoreCommitteeID;references:CommitteeID;constraint:OnDelete:CASCADE" json:"committee,omitempty"`
	Candidate *CandidateModel                `gorm:"foreignKey:InterviewScoreCandidateID;references:CandidateID;constraint:OnDelete:CASCADE" json:"candidate,omitempty"`
	Member    *userModel.MemberProfileModel  `gorm:"foreignKey:InterviewScoreMemberID;references:MemberProfileID" json:"member,omitempty"`
}

func (InterviewScoreModel) TableName() string { return "interview_scores" }
