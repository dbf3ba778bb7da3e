// file: internals/features/candidates/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "seleksiku_backend/internals/features/candidates/controller"
)

// CandidateAdminRoutes — base: group admin (/api/admin).
func CandidateAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dashboardController := controller.NewAdminDashboardController(db)
	distributionController := controller.NewDistributionController(db)

	admin.Get("/dashboard", dashboardController.Dashboard)

	distribution := admin.Group("/distribution")
	distribution.Get("/", distributionController.Board)
	distribution.Post("/", distributionController.Assign)
}
