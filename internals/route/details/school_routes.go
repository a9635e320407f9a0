// internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolController "schoolku_backend/internals/features/schools/school/controller"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// Publik: registrasi sekolah + homepage.
func RegisterPublicSchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(db)

	api.Post("/schools/register", middlewares.RegisterRateLimiter(), ctl.RegisterSchool)
	api.Get("/public/schools/:id/homepage", ctl.PublicHomepage)
}

// Protected: profil sekolah + analytics + route platform super_admin.
func RegisterSchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(db)
	analytics := schoolController.NewAnalyticsController(db)

	school := api.Group("/school")
	school.Get("/", ctl.GetMySchool)
	school.Put("/", authMiddleware.OnlyRoles(
		constants.RoleErrorSenior("profil sekolah"), constants.RoleSeniorAdmin), ctl.UpdateMySchool)
	school.Get("/analytics", authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("analytics"), constants.AdminRoles...), analytics.SchoolAnalytics)

	platform := api.Group("/platform", authMiddleware.OnlyRoles(
		constants.RoleErrorSuper("platform"), constants.RoleSuperAdmin))
	platform.Get("/schools", ctl.ListSchools)
	platform.Get("/analytics", analytics.PlatformAnalytics)
}
