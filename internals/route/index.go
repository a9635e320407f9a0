// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/route/details"
)

// SetupRoutes: route publik dulu (login, register sekolah, homepage,
// webhook), lalu semua route lain di belakang JWT middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== Public =====
	details.RegisterPublicAuthRoutes(api, db)
	details.RegisterPublicSchoolRoutes(api, db)
	details.RegisterWebhookRoutes(api, db)

	// ===== Protected =====
	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	details.RegisterAuthRoutes(protected, db)
	details.RegisterSchoolRoutes(protected, db)
	details.RegisterUserRoutes(protected, db)
	details.RegisterAcademicRoutes(protected, db)
	details.RegisterFinanceRoutes(protected, db)
}
