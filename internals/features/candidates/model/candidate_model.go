// file: internals/features/candidates/model/candidate_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	oppModel "seleksiku_backend/internals/features/opportunities/model"
)

// CandidateModel — satu pelamar dalam satu opportunity.
// Unik per (opportunity, national_id); import meng-upsert berdasarkan pasangan ini.
type CandidateModel struct {
	// PK
	CandidateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:candidate_id" json:"candidate_id"`

	// Owner (RESTRICT: opportunity tidak boleh dihapus selama masih punya kandidat)
	CandidateOpportunityID uuid.UUID `gorm:"type:uuid;not null;column:candidate_opportunity_id;uniqueIndex:uq_candidate_opportunity_nid,priority:1" json:"candidate_opportunity_id"`

	// Identitas
	CandidateNationalID string `gorm:"size:20;not null;column:candidate_national_id;uniqueIndex:uq_candidate_opportunity_nid,priority:2" json:"candidate_national_id"`
	CandidateFullName   string `gorm:"size:200;not null;column:candidate_full_name" json:"candidate_full_name"`

	// Atribut hasil import
	CandidateMobile            string `gorm:"size:20;column:candidate_mobile" json:"candidate_mobile"`
	CandidateSpecialization    string `gorm:"size:200;column:candidate_specialization" json:"candidate_specialization"`
	CandidateRank              string `gorm:"size:120;column:candidate_rank" json:"candidate_rank"`
	CandidateCurrentWork       string `gorm:"size:200;column:candidate_current_work" json:"candidate_current_work"`
	CandidateStartDateHijri    string `gorm:"size:40;column:candidate_start_date_hijri" json:"candidate_start_date_hijri"`
	CandidateSchool            string `gorm:"size:200;column:candidate_school" json:"candidate_school"`
	CandidateSector            string `gorm:"size:200;column:candidate_sector" json:"candidate_sector"`
	CandidateAppliedPosition   string `gorm:"size:200;column:candidate_applied_position" json:"candidate_applied_position"`
	CandidateOpportunitySchool string `gorm:"size:200;column:candidate_opportunity_school" json:"candidate_opportunity_school"`
	CandidateOpportunitySector string `gorm:"size:200;column:candidate_opportunity_sector" json:"candidate_opportunity_sector"`
	CandidateAdminExp          string `gorm:"size:200;column:candidate_admin_exp" json:"candidate_admin_exp"`
	CandidateYearsDirector     int    `gorm:"not null;default:0;column:candidate_years_director" json:"candidate_years_director"`
	CandidateYearsDeputy       int    `gorm:"not null;default:0;column:candidate_years_deputy" json:"candidate_years_deputy"`
	CandidateCVURL             string `gorm:"type:text;column:candidate_cv_url" json:"candidate_cv_url"`

	// Tahap berkas: tepat satu dari (file_score, not_eligible) yang terisi
	CandidateFileScore            *float64   `gorm:"type:numeric(5,2);column:candidate_file_score" json:"candidate_file_score,omitempty"`
	CandidateFileNotEligible      bool       `gorm:"not null;default:false;column:candidate_file_not_eligible" json:"candidate_file_not_eligible"`
	CandidateFileNotEligibleReason string    `gorm:"type:text;column:candidate_file_not_eligible_reason" json:"candidate_file_not_eligible_reason"`
	CandidateFileReviewerID       *uuid.UUID `gorm:"type:uuid;column:candidate_file_reviewer_id" json:"candidate_file_reviewer_id,omitempty"`
	CandidateFileScoredAt         *time.Time `gorm:"type:timestamptz;column:candidate_file_scored_at" json:"candidate_file_scored_at,omitempty"`

	// Distribusi: sekali jalan, tidak pernah di-reset oleh workflow
	CandidateAssignedCommitteeID *uuid.UUID `gorm:"type:uuid;column:candidate_assigned_committee_id" json:"candidate_assigned_committee_id,omitempty"`

	// Finalisasi: terminal
	CandidateIsFinalized bool       `gorm:"not null;default:false;column:candidate_is_finalized" json:"candidate_is_finalized"`
	CandidateFinalizedBy *uuid.UUID `gorm:"type:uuid;column:candidate_finalized_by" json:"candidate_finalized_by,omitempty"`
	CandidateFinalizedAt *time.Time `gorm:"type:timestamptz;column:candidate_finalized_at" json:"candidate_finalized_at,omitempty"`

	// Audit
	CandidateCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:candidate_created_at" json:"candidate_created_at"`
	CandidateUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:candidate_updated_at" json:"candidate_updated_at"`

	// Relasi
	Opportunity       *oppModel.OpportunityModel `gorm:"foreignKey:CandidateOpportunityID;references:OpportunityID;constraint:OnDelete:RESTRICT" json:"opportunity,omitempty"`
	AssignedCommittee *oppModel.CommitteeModel   `gorm:"foreignKey:CandidateAssignedCommitteeID;references:CommitteeID" json:"assigned_committee,omitempty"`
}

func (CandidateModel) TableName() string { return "candidates" }
