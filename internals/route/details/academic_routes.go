// internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	assignmentController "schoolku_backend/internals/features/academics/assignment/controller"
	resultController "schoolku_backend/internals/features/academics/result/controller"
	subjectController "schoolku_backend/internals/features/academics/subject/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func RegisterAcademicRoutes(api fiber.Router, db *gorm.DB) {
	subjects := subjectController.NewSubjectController(db)
	levels := subjectController.NewClassLevelController(db)
	assignments := assignmentController.NewAssignmentController(db)
	results := resultController.NewResultController(db)

	// Katalog mapel global
	api.Get("/subjects", subjects.ListSubjects)
	platform := api.Group("/platform", authMiddleware.OnlyRoles(
		constants.RoleErrorSuper("katalog mapel"), constants.RoleSuperAdmin))
	platform.Post("/subjects", subjects.CreateSubject)
	platform.Put("/subjects/:id", subjects.UpdateSubject)

	academics := api.Group("/academics")

	// Tingkat kelas + kurikulum
	seniorOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorSenior("kurikulum"), constants.RoleSeniorAdmin)
	academics.Post("/class-levels", seniorOnly, levels.CreateClassLevel)
	academics.Get("/class-levels", levels.ListClassLevels)
	academics.Get("/class-levels/:id/subjects", levels.ListClassSubjects)
	academics.Post("/class-subjects", seniorOnly, levels.CreateClassSubject)
	academics.Put("/class-subjects/:id/teacher", seniorOnly, levels.AssignClassTeacher)

	// Tugas
	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("tugas"), constants.RoleTeacher)
	studentOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("tugas"), constants.RoleStudent)
	academics.Post("/assignments", teacherOnly, assignments.CreateAssignment)
	academics.Get("/assignments", assignments.ListAssignments)
	academics.Get("/assignments/me", studentOnly, assignments.ListMyAssignments)
	academics.Get("/assignments/:id/submissions", assignments.ListSubmissions)
	academics.Post("/submissions/:id", studentOnly, assignments.SubmitAssignment)
	academics.Put("/submissions/:id/grade", teacherOnly, assignments.GradeSubmission)

	// Nilai
	academics.Post("/results", teacherOnly, results.RecordResult)
	academics.Post("/results/batch", teacherOnly, results.BatchUpload)
	academics.Get("/results/me", studentOnly, results.MyResults)
	academics.Get("/students/:id/results", results.StudentResults)
}
