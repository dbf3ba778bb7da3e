// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	candidateRoute "seleksiku_backend/internals/features/candidates/route"
	opportunityRoute "seleksiku_backend/internals/features/opportunities/route"
	userRoute "seleksiku_backend/internals/features/users/route"
	userModel "seleksiku_backend/internals/features/users/model"
	authMiddleware "seleksiku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, db)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Setting up PROTECTED group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	candidateRoute.CandidateRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := api.Group("/admin",
		authMiddleware.OnlyRoles("❌ Khusus admin", userModel.RoleAdmin),
	)

	userRoute.MemberProfileAdminRoutes(admin, db)
	opportunityRoute.OpportunityAdminRoutes(admin, db)
	candidateRoute.CandidateAdminRoutes(admin, db)
}
