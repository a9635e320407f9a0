// internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	userService "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

var validate = validator.New()

type UserController struct {
	Service *userService.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: userService.NewUserService(db)}
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, authz.NewValidationError("ID tidak valid")
	}
	return id, nil
}

/* ======================= CREATE ======================= */

// POST /api/users/teachers
func (ctl *UserController) CreateTeacher(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req userDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.CreateTeacher(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonCreated(c, "Guru berhasil dibuat", resp)
}

// POST /api/users/students
func (ctl *UserController) CreateStudent(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req userDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.CreateStudent(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonCreated(c, "Siswa berhasil dibuat", resp)
}

// POST /api/users/students/bulk
func (ctl *UserController) BulkCreateStudents(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req userDTO.BulkCreateStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.BulkCreateStudents(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "Bulk create selesai", resp)
}

// POST /api/users/admins
func (ctl *UserController) CreateJuniorAdmin(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req userDTO.CreateJuniorAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.CreateJuniorAdmin(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonCreated(c, "Junior admin berhasil dibuat", resp)
}

/* ======================= READ ======================= */

// GET /api/users?role=&search=&page=&per_page=
func (ctl *UserController) ListUsers(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	users, total, err := ctl.Service.ListUsers(actor, schoolID,
		c.Query("role"), c.Query("search"), paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	return helper.JsonList(c, "OK", users, helper.BuildPagination(total, paging))
}

// GET /api/users/:id/profile
func (ctl *UserController) GetProfile(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	user, err := ctl.Service.GetUserInSchool(schoolID, userID)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	// Baca profil orang lain = admin; profil sendiri bebas
	if actor.UserID != user.ID {
		if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
			return helper.JsonAuthzError(c, err)
		}
	}

	resp, err := userService.ResolveProfile(ctl.Service.DB, user)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /api/users/me/profile
func (ctl *UserController) GetMyProfile(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.Service.DB.First(&user, "id = ?", actor.UserID).Error; err != nil {
		return helper.JsonAuthzError(c, authz.ErrNotFound)
	}

	resp, err := userService.ResolveProfile(ctl.Service.DB, &user)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "OK", resp)
}

/* ======================= UPDATE / DELETE ======================= */

// PUT /api/users/:id
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	if err := ctl.Service.UpdateUser(actor, schoolID, userID, &req); err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonUpdated(c, "User diperbarui", nil)
}

// DELETE /api/users/:id
func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	if err := ctl.Service.DeleteUser(actor, schoolID, userID); err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonDeleted(c, "User dihapus", nil)
}

/* ======================= ASSIGN SUBJECTS ======================= */

// PUT /api/users/teachers/:id/subjects
func (ctl *UserController) AssignSubjects(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	teacherID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req userDTO.AssignSubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	if err := ctl.Service.AssignSubjects(actor, schoolID, teacherID, req.SubjectIDs); err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonUpdated(c, "Mapel ampuan diperbarui", nil)
}
