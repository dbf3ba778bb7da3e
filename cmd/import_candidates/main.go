// Import kandidat dari Excel berheader Arab.
//
// Contoh:
//
//	go run ./cmd/import_candidates -file data/candidates.xlsx -opportunity "وكيل مدرسة 1447" \
//	  -committee "اللجنة 1" -assign
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"seleksiku_backend/internals/configs"
	database "seleksiku_backend/internals/databases"
	"seleksiku_backend/internals/features/candidates/model"
	"seleksiku_backend/internals/features/candidates/service"
	oppModel "seleksiku_backend/internals/features/opportunities/model"
)

var errDryRunRollback = errors.New("dry-run rollback")

func main() {
	var (
		filePath        = flag.String("file", "", "path file .xlsx (wajib)")
		opportunityName = flag.String("opportunity", "", "nama opportunity (wajib; dibuat aktif kalau belum ada)")
		committeeName   = flag.String("committee", "", "nama lajnah (opsional; dibuat terbuka kalau belum ada)")
		assign          = flag.Bool("assign", false, "distribusikan baris impor ke lajnah (hanya yang belum terdistribusi)")
		dryRun          = flag.Bool("dry-run", false, "validasi + cetak rencana, tanpa menulis ke DB")
	)
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" || strings.TrimSpace(*opportunityName) == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *assign && strings.TrimSpace(*committeeName) == "" {
		log.Fatal("❌ -assign membutuhkan -committee")
	}

	configs.LoadEnv()
	database.ConnectDB()

	f, err := excelize.OpenFile(*filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membuka %s: %v", *filePath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Fatalf("❌ Gagal membaca sheet %q: %v", sheet, err)
	}
	if len(rows) < 2 {
		log.Fatal("❌ File tidak punya baris data (hanya header atau kosong)")
	}

	idx, err := service.HeaderIndex(rows[0])
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	var (
		created, updated int
		skippedRows      []int64
	)

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		opp, err := getOrCreateOpportunity(tx, strings.TrimSpace(*opportunityName))
		if err != nil {
			return err
		}

		var committee *oppModel.CommitteeModel
		if name := strings.TrimSpace(*committeeName); name != "" {
			committee, err = getOrCreateCommittee(tx, opp.OpportunityID, name)
			if err != nil {
				return err
			}
		}

		for i, cells := range rows[1:] {
			rowNum := int64(i + 2) // baris Excel 1-based, baris 1 = header

			cand, ok := service.CandidateFromRow(opp.OpportunityID, cells, idx)
			if !ok {
				skippedRows = append(skippedRows, rowNum)
				continue
			}

			var existing model.CandidateModel
			err := tx.Where("candidate_opportunity_id = ? AND candidate_national_id = ?",
				opp.OpportunityID, cand.CandidateNationalID).
				First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if committee != nil && *assign {
					cand.CandidateAssignedCommitteeID = &committee.CommitteeID
				}
				if err := tx.Create(cand).Error; err != nil {
					return fmt.Errorf("baris %d: %w", rowNum, err)
				}
				created++
			case err != nil:
				return fmt.Errorf("baris %d: %w", rowNum, err)
			default:
				updates := attributeUpdates(cand)
				// distribusi satu arah: hanya isi kalau masih kosong
				if committee != nil && *assign && existing.CandidateAssignedCommitteeID == nil {
					updates["candidate_assigned_committee_id"] = committee.CommitteeID
				}
				if err := tx.Model(&model.CandidateModel{}).
					Where("candidate_id = ?", existing.CandidateID).
					Updates(updates).Error; err != nil {
					return fmt.Errorf("baris %d: %w", rowNum, err)
				}
				updated++
			}
		}

		if *dryRun {
			return errDryRunRollback
		}

		headerJSON, err := json.Marshal(idx)
		if err != nil {
			return err
		}
		batch := model.ImportBatchModel{
			ImportBatchFileName:      filepath.Base(*filePath),
			ImportBatchOpportunityID: opp.OpportunityID,
			ImportBatchAssigned:      *assign,
			ImportBatchCreatedCount:  created,
			ImportBatchUpdatedCount:  updated,
			ImportBatchSkippedCount:  len(skippedRows),
			ImportBatchSkippedRows:   pq.Int64Array(skippedRows),
			ImportBatchHeaderMap:     headerJSON,
		}
		if committee != nil {
			batch.ImportBatchCommitteeID = &committee.CommitteeID
		}
		return tx.Create(&batch).Error
	})

	if txErr != nil && !errors.Is(txErr, errDryRunRollback) {
		log.Fatalf("❌ Import gagal (rollback): %v", txErr)
	}

	mode := "Import selesai"
	if *dryRun {
		mode = "DRY RUN selesai (tidak ada perubahan DB)"
	}
	log.Printf("✅ %s: created=%d, updated=%d, skipped=%d %v, opportunity=%q, committee=%q, assigned=%v",
		mode, created, updated, len(skippedRows), skippedRows, *opportunityName, *committeeName, *assign)
}

func getOrCreateOpportunity(tx *gorm.DB, name string) (*oppModel.OpportunityModel, error) {
	var opp oppModel.OpportunityModel
	err := tx.Where("opportunity_name = ?", name).First(&opp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		opp = oppModel.OpportunityModel{OpportunityName: name, OpportunityIsActive: true}
		if err := tx.Create(&opp).Error; err != nil {
			return nil, err
		}
		log.Printf("ℹ️  Opportunity %q dibuat (aktif)", name)
		return &opp, nil
	}
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

func getOrCreateCommittee(tx *gorm.DB, opportunityID uuid.UUID, name string) (*oppModel.CommitteeModel, error) {
	var com oppModel.CommitteeModel
	err := tx.Where("committee_opportunity_id = ? AND committee_name = ?", opportunityID, name).First(&com).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		com = oppModel.CommitteeModel{
			CommitteeOpportunityID: opportunityID,
			CommitteeName:          name,
			CommitteeIsOpen:        true,
		}
		if err := tx.Create(&com).Error; err != nil {
			return nil, err
		}
		log.Printf("ℹ️  Lajnah %q dibuat (terbuka)", name)
		return &com, nil
	}
	if err != nil {
		return nil, err
	}
	return &com, nil
}

// attributeUpdates: hanya kolom atribut impor — kolom alur seleksi
// (skor berkas, distribusi, finalisasi) tidak pernah disentuh import ulang.
func attributeUpdates(c *model.CandidateModel) map[string]interface{} {
	return map[string]interface{}{
		"candidate_full_name":          c.CandidateFullName,
		"candidate_mobile":             c.CandidateMobile,
		"candidate_specialization":     c.CandidateSpecialization,
		"candidate_rank":               c.CandidateRank,
		"candidate_current_work":       c.CandidateCurrentWork,
		"candidate_start_date_hijri":   c.CandidateStartDateHijri,
		"candidate_school":             c.CandidateSchool,
		"candidate_sector":             c.CandidateSector,
		"candidate_applied_position":   c.CandidateAppliedPosition,
		"candidate_opportunity_school": c.CandidateOpportunitySchool,
		"candidate_opportunity_sector": c.CandidateOpportunitySector,
		"candidate_admin_exp":          c.CandidateAdminExp,
		"candidate_years_director":     c.CandidateYearsDirector,
		"candidate_years_deputy":       c.CandidateYearsDeputy,
		"candidate_cv_url":             c.CandidateCVURL,
	}
}
