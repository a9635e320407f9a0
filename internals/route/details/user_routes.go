// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userController "schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func RegisterUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := api.Group("/users")

	// Profil sendiri — semua role
	users.Get("/me/profile", ctl.GetMyProfile)

	// Listing & detail — admin (gate di service membolehkan junior baca)
	users.Get("/", authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("manajemen user"), constants.AdminRoles...), ctl.ListUsers)
	users.Get("/:id/profile", ctl.GetProfile)

	// Mutasi user — senior admin (gate di service mengunci lagi)
	seniorOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorSenior("manajemen user"), constants.RoleSeniorAdmin)
	users.Post("/teachers", seniorOnly, ctl.CreateTeacher)
	users.Post("/students", seniorOnly, ctl.CreateStudent)
	users.Post("/students/bulk", seniorOnly, ctl.BulkCreateStudents)
	users.Get("/students/export", seniorOnly, ctl.ExportStudentsCSV)
	users.Post("/admins", seniorOnly, ctl.CreateJuniorAdmin)
	users.Put("/teachers/:id/subjects", seniorOnly, ctl.AssignSubjects)
	users.Delete("/:id", seniorOnly, ctl.DeleteUser)

	// Edit user: senior ATAU diri sendiri — rule self dicek di service
	users.Put("/:id", ctl.UpdateUser)
}
