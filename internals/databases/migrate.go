package database

import (
	"log"
	"os"
	"strings"

	candidateModel "seleksiku_backend/internals/features/candidates/model"
	oppModel "seleksiku_backend/internals/features/opportunities/model"
	userModel "seleksiku_backend/internals/features/users/model"
)

// AutoMigrateIfRequested menjalankan AutoMigrate saat DB_AUTO_MIGRATE=true.
// Urutan mengikuti dependensi FK.
func AutoMigrateIfRequested() {
	if !strings.EqualFold(os.Getenv("DB_AUTO_MIGRATE"), "true") {
		return
	}
	log.Println("🛠  DB_AUTO_MIGRATE=true → menjalankan AutoMigrate...")
	if err := DB.AutoMigrate(
		&oppModel.OpportunityModel{},
		&oppModel.CommitteeModel{},
		&userModel.MemberProfileModel{},
		&userModel.TokenBlacklist{},
		&candidateModel.CandidateModel{},
		&candidateModel.InterviewScoreModel{},
		&candidateModel.FinalDecisionModel{},
		&candidateModel.ImportBatchModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
