// file: internals/features/candidates/model/import_batch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ImportBatchModel — jejak audit satu kali jalan CLI import kandidat.
// Tidak ditulis saat dry-run.
type ImportBatchModel struct {
	// PK
	ImportBatchID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:import_batch_id" json:"import_batch_id"`

	ImportBatchFileName      string     `gorm:"size:255;not null;column:import_batch_file_name" json:"import_batch_file_name"`
	ImportBatchOpportunityID uuid.UUID  `gorm:"type:uuid;not null;column:import_batch_opportunity_id" json:"import_batch_opportunity_id"`
	ImportBatchCommitteeID   *uuid.UUID `gorm:"type:uuid;column:import_batch_committee_id" json:"import_batch_committee_id,omitempty"`
	ImportBatchAssigned      bool       `gorm:"not null;default:false;column:import_batch_assigned" json:"import_batch_assigned"`

	// Hasil
	ImportBatchCreatedCount int `gorm:"not null;default:0;column:import_batch_created_count" json:"import_batch_created_count"`
	ImportBatchUpdatedCount int `gorm:"not null;default:0;column:import_batch_updated_count" json:"import_batch_updated_count"`
	ImportBatchSkippedCount int `gorm:"not null;default:0;column:import_batch_skipped_count" json:"import_batch_skipped_count"`

	// Nomor baris yang dilewati (tanpa national_id / nama)
	ImportBatchSkippedRows pq.Int64Array `gorm:"type:bigint[];column:import_batch_skipped_rows" json:"import_batch_skipped_rows"`

	// Snapshot pemetaan header kolom yang dipakai saat import
	ImportBatchHeaderMap datatypes.JSON `gorm:"type:jsonb;column:import_batch_header_map" json:"import_batch_header_map"`

	ImportBatchCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:import_batch_created_at" json:"import_batch_created_at"`
}

func (ImportBatchModel) TableName() string { return "import_batches" }
