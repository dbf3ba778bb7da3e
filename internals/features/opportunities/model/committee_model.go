// file: internals/features/opportunities/model/committee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CommitteeModel — panel penilai wawancara dalam satu opportunity.
type CommitteeModel struct {
	// PK
	CommitteeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:committee_id" json:"committee_id"`

	// FK eksplisit; nama lajnah unik per opportunity
	CommitteeOpportunityID uuid.UUID `gorm:"type:uuid;not null;column:committee_opportunity_id;uniqueIndex:uq_committee_opportunity_name,priority:1" json:"committee_opportunity_id"`
	CommitteeName          string    `gorm:"size:200;not null;column:committee_name;uniqueIndex:uq_committee_opportunity_name,priority:2" json:"committee_name"`

	// Status terima distribusi
	CommitteeIsOpen bool `gorm:"not null;default:true;column:committee_is_open" json:"committee_is_open"`

	// Audit
	CommitteeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:committee_created_at" json:"committee_created_at"`
	CommitteeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:committee_updated_at" json:"committee_updated_at"`

	// Relasi (dipreload seperlunya)
	Opportunity *OpportunityModel `gorm:"foreignKey:CommitteeOpportunityID;references:OpportunityID;constraint:OnDelete:CASCADE" json:"opportunity,omitempty"`
}

func (CommitteeModel) TableName() string { return "committees" }
