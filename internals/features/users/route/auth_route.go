// file: internals/features/users/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "seleksiku_backend/internals/features/users/controller"
	rateLimiter "seleksiku_backend/internals/middlewares"
	authMiddleware "seleksiku_backend/internals/middlewares/auth"
)

// AuthRoutes — base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔐 Butuh token valid
	requireAuth := authMiddleware.AuthMiddleware(db)
	baseAuth.Post("/logout", requireAuth, authController.Logout)
	baseAuth.Get("/me", requireAuth, authController.Me)
}
