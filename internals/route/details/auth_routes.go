// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
)

// Route auth publik (rate limit ketat di login).
func RegisterPublicAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh-token", ctl.RefreshToken)
}

// Route auth yang butuh token.
func RegisterAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", ctl.Logout)
	auth.Post("/change-password", ctl.ChangePassword)
	auth.Get("/me", ctl.Me)
}
