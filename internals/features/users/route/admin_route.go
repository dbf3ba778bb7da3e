// file: internals/features/users/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "seleksiku_backend/internals/features/users/controller"
)

// MemberProfileAdminRoutes — base: group admin (/api/admin), sudah dijaga
// AuthMiddleware + OnlyRoles(admin) di router induk.
func MemberProfileAdminRoutes(admin fiber.Router, db *gorm.DB) {
	profileController := controller.NewMemberProfileAdminController(db)

	profiles := admin.Group("/profiles")
	profiles.Get("/", profileController.List)
	profiles.Post("/", profileController.Create)
	profiles.Put("/:id", profileController.Update)
	profiles.Delete("/:id", profileController.Deactivate)
}
