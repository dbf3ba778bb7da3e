// Penetapan role per username (bulk). Username yang tidak dikenal membatalkan
// seluruh run.
//
// Contoh:
//
//	go run ./cmd/assign_roles -opportunity "وكيل مدرسة 1447" -supervisors u1001,u1002 \
//	  -committee "اللجنة 1" -chairs u2001 -members u2002,u2003,u2004 -activate
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"seleksiku_backend/internals/configs"
	database "seleksiku_backend/internals/databases"
	oppModel "seleksiku_backend/internals/features/opportunities/model"
	userModel "seleksiku_backend/internals/features/users/model"
)

var errDryRunRollback = errors.New("dry-run rollback")

func main() {
	var (
		opportunityName = flag.String("opportunity", "", "nama opportunity (dibuat aktif kalau belum ada)")
		committeeName   = flag.String("committee", "", "nama lajnah (wajib kalau ada -chairs/-members; dibuat terbuka kalau belum ada)")
		supervisors     = flag.String("supervisors", "", "daftar username musyrif, dipisah koma")
		chairs          = flag.String("chairs", "", "daftar username ketua lajnah, dipisah koma")
		members         = flag.String("members", "", "daftar username anggota lajnah, dipisah koma")
		admins          = flag.String("admins", "", "daftar username admin, dipisah koma")
		activate        = flag.Bool("activate", false, "aktifkan juga akun yang ditetapkan")
		dryRun          = flag.Bool("dry-run", false, "jalankan dalam transaksi lalu rollback")
	)
	flag.Parse()

	plan := []struct {
		role  string
		users []string
	}{
		{userModel.RoleSupervisor, splitList(*supervisors)},
		{userModel.RoleChair, splitList(*chairs)},
		{userModel.RoleMember, splitList(*members)},
		{userModel.RoleAdmin, splitList(*admins)},
	}

	total := 0
	needsCommittee := false
	for _, p := range plan {
		total += len(p.users)
		if len(p.users) > 0 && userModel.RoleNeedsCommittee(p.role) {
			needsCommittee = true
		}
	}
	if total == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if needsCommittee && strings.TrimSpace(*committeeName) == "" {
		log.Fatal("❌ -chairs/-members membutuhkan -committee")
	}
	if strings.TrimSpace(*committeeName) != "" && strings.TrimSpace(*opportunityName) == "" {
		log.Fatal("❌ -committee membutuhkan -opportunity")
	}

	configs.LoadEnv()
	database.ConnectDB()

	assigned := 0

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var opportunityID *uuid.UUID
		if name := strings.TrimSpace(*opportunityName); name != "" {
			opp, err := getOrCreateOpportunity(tx, name)
			if err != nil {
				return err
			}
			opportunityID = &opp.OpportunityID
		}

		var committeeID *uuid.UUID
		if name := strings.TrimSpace(*committeeName); name != "" {
			com, err := getOrCreateCommittee(tx, *opportunityID, name)
			if err != nil {
				return err
			}
			committeeID = &com.CommitteeID
		}

		for _, p := range plan {
			for _, userName := range p.users {
				var prof userModel.MemberProfileModel
				err := tx.Where("member_profile_user_name = ?", userName).First(&prof).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("username %q tidak ditemukan", userName)
				}
				if err != nil {
					return err
				}

				// lepas tautan lama lalu pasang tautan sesuai role baru
				updates := map[string]interface{}{
					"member_profile_role":           p.role,
					"member_profile_opportunity_id": nil,
					"member_profile_committee_id":   nil,
				}
				switch {
				case userModel.RoleNeedsCommittee(p.role):
					updates["member_profile_committee_id"] = *committeeID
					if opportunityID != nil {
						updates["member_profile_opportunity_id"] = *opportunityID
					}
				case p.role == userModel.RoleSupervisor:
					if opportunityID == nil {
						return fmt.Errorf("role supervisor untuk %q membutuhkan -opportunity", userName)
					}
					updates["member_profile_opportunity_id"] = *opportunityID
				}
				if *activate {
					updates["member_profile_is_active"] = true
				}

				if err := tx.Model(&userModel.MemberProfileModel{}).
					Where("member_profile_id = ?", prof.MemberProfileID).
					Updates(updates).Error; err != nil {
					return fmt.Errorf("gagal menetapkan %q: %w", userName, err)
				}
				assigned++
				log.Printf("  %s → %s", userName, p.role)
			}
		}

		if *dryRun {
			return errDryRunRollback
		}
		return nil
	})

	if txErr != nil && !errors.Is(txErr, errDryRunRollback) {
		log.Fatalf("❌ Penetapan role gagal (rollback): %v", txErr)
	}

	if *dryRun {
		log.Printf("✅ DRY RUN selesai: %d profil akan ditetapkan (tidak ada perubahan DB)", assigned)
		return
	}
	log.Printf("✅ Selesai: %d profil ditetapkan", assigned)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
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
