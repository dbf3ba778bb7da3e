// file: internals/features/opportunities/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "seleksiku_backend/internals/features/opportunities/controller"
)

// OpportunityAdminRoutes — base: group admin (/api/admin).
func OpportunityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	opportunityController := controller.NewOpportunityController(db)
	committeeController := controller.NewCommitteeController(db)

	opportunities := admin.Group("/opportunities")
	opportunities.Get("/", opportunityController.List)
	opportunities.Post("/", opportunityController.Create)
	opportunities.Put("/:id", opportunityController.Update)
	opportunities.Delete("/:id", opportunityController.Delete)

	committees := admin.Group("/committees")
	committees.Get("/", committeeController.List)
	committees.Post("/", committeeController.Create)
	committees.Put("/:id", committeeController.Update)
}
