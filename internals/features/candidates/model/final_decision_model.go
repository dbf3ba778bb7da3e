// file: internals/features/candidates/model/final_decision_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	oppModel "seleksiku_backend/internals/features/opportunities/model"
)

// FinalDecisionModel — keputusan terminal lajnah untuk satu kandidat.
// Unik per (committee, candidate); ditulis via upsert saat finalisasi.
type FinalDecisionModel struct {
	// PK
	FinalDecisionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:final_decision_id" json:"final_decision_id"`

	FinalDecisionCommitteeID uuid.UUID `gorm:"type:uuid;not null;column:final_decision_committee_id;uniqueIndex:uq_final_decision_key,priority:1" json:"final_decision_committee_id"`
	FinalDecisionCandidateID uuid.UUID `gorm:"type:uuid;not null;column:final_decision_candidate_id;uniqueIndex:uq_final_decision_key,priority:2" json:"final_decision_candidate_id"`

	FinalDecisionIsNominated bool   `gorm:"not null;default:false;column:final_decision_is_nominated" json:"final_decision_is_nominated"`
	FinalDecisionReason      string `gorm:"type:text;column:final_decision_reason" json:"final_decision_reason"`

	// Snapshot skor akhir saat keputusan diambil (file + rata-rata wawancara)
	FinalDecisionFinalScore float64 `gorm:"type:numeric(6,2);not null;default:0;column:final_decision_final_score" json:"final_decision_final_score"`

	FinalDecisionSubmittedBy uuid.UUID `gorm:"type:uuid;not null;column:final_decision_submitted_by" json:"final_decision_submitted_by"`
	FinalDecisionSubmittedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:final_decision_submitted_at" json:"final_decision_submitted_at"`

	// Relasi (cascade ikut committee & candidate)
	Committee *oppModel.CommitteeModel `gorm:"foreignKey:FinalDecisionCommitteeID;references:CommitteeID;constraint:OnDelete:CASCADE" json:"committee,omitempty"`
	Candidate *CandidateModel          `gorm:"foreignKey:FinalDecisionCandidateID;references:CandidateID;constraint:OnDelete:CASCADE" json:"candidate,omitempty"`
}

func (FinalDecisionModel) TableName() string { return "final_decisions" }
