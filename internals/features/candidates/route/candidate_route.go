// file: internals/features/candidates/route/candidate_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "seleksiku_backend/internals/features/candidates/controller"
	userModel "seleksiku_backend/internals/features/users/model"
	authMiddleware "seleksiku_backend/internals/middlewares/auth"
)

// CandidateRoutes — semua endpoint alur seleksi. Dipanggil dari router induk
// dengan group yang SUDAH melewati AuthMiddleware; penjagaan role per
// endpoint dilakukan di sini karena satu path bisa dipakai beberapa role.
func CandidateRoutes(api fiber.Router, db *gorm.DB) {
	supervisorController := controller.NewSupervisorController(db)
	fileScoreController := controller.NewFileScoreController(db)
	interviewController := controller.NewInterviewController(db)
	finalizeController := controller.NewFinalizeController(db)

	// Antrian penilaian berkas (musyrif)
	api.Get("/supervisor/candidates",
		authMiddleware.OnlyRoles("❌ Khusus musyrif", userModel.RoleSupervisor),
		supervisorController.Queue,
	)

	// Antrian wawancara lajnah (anggota & ketua)
	api.Get("/committee/candidates",
		authMiddleware.OnlyRoles("❌ Khusus anggota/ketua lajnah", userModel.RoleMember, userModel.RoleChair),
		interviewController.Queue,
	)

	candidates := api.Group("/candidates")

	// Skor berkas: musyrif (lingkup opportunity) atau ketua lajnah (lingkup lajnahnya)
	candidates.Post("/:id/file-score",
		authMiddleware.OnlyRoles("❌ Khusus musyrif/ketua lajnah", userModel.RoleSupervisor, userModel.RoleChair),
		fileScoreController.ScoreFile,
	)

	// Skor wawancara: upsert per (lajnah, kandidat, penilai)
	candidates.Put("/:id/interview-score",
		authMiddleware.OnlyRoles("❌ Khusus anggota/ketua lajnah", userModel.RoleMember, userModel.RoleChair),
		interviewController.ScoreInterview,
	)

	// Finalisasi: ketua lajnah atau admin
	candidates.Get("/:id/finalize",
		authMiddleware.OnlyRoles("❌ Khusus ketua lajnah/admin", userModel.RoleChair, userModel.RoleAdmin),
		finalizeController.Preview,
	)
	candidates.Post("/:id/finalize",
		authMiddleware.OnlyRoles("❌ Khusus ketua lajnah/admin", userModel.RoleChair, userModel.RoleAdmin),
		finalizeController.Finalize,
	)
}
