// file: internals/features/opportunities/model/opportunity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// OpportunityModel merepresentasikan satu putaran rekrutmen (fursah).
type OpportunityModel struct {
	// PK
	OpportunityID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:opportunity_id" json:"opportunity_id"`

	OpportunityName     string `gorm:"size:200;not null;uniqueIndex;column:opportunity_name" json:"opportunity_name"`
	OpportunityIsActive bool   `gorm:"not null;default:true;column:opportunity_is_active" json:"opportunity_is_active"`

	// Audit
	OpportunityCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:opportunity_created_at" json:"opportunity_created_at"`
	OpportunityUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:opportunity_updated_at" json:"opportunity_updated_at"`
}

func (OpportunityModel) TableName() string { return "opportunities" }
