package middlewares

import (
	"github.com/gofiber/fiber/v2"
	loggerMw "github.com/gofiber/fiber/v2/middleware/logger"
)

// SetupMiddlewares memasang middleware dasar (urutan penting: recovery paling luar)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.New(loggerMw.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	}))
	app.Use(GlobalRateLimiter())
}
