// internals/features/academics/assignment/controller/assignment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentDTO "schoolku_backend/internals/features/academics/assignment/dto"
	assignmentModel "schoolku_backend/internals/features/academics/assignment/model"
	assignmentService "schoolku_backend/internals/features/academics/assignment/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

var validate = validator.New()

type AssignmentController struct {
	Service *assignmentService.AssignmentService
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{Service: assignmentService.NewAssignmentService(db)}
}

// POST /api/academics/assignments (teacher)
func (ctl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.CreateAssignment(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonCreated(c, "Tugas dibuat", resp)
}

// GET /api/academics/assignments?class_level_id=&subject_id=
func (ctl *AssignmentController) ListAssignments(c *fiber.Ctx) error {
	_, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.Service.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("assignment_school_id = ?", schoolID)
	if v := c.Query("class_level_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_level_id tidak valid")
		}
		q = q.Where("assignment_class_level_id = ?", id)
	}
	if v := c.Query("subject_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		q = q.Where("assignment_subject_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var assignments []assignmentModel.AssignmentModel
	if err := q.Order("assignment_due_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "OK", assignments, helper.BuildPagination(total, paging))
}

// GET /api/academics/assignments/me (student) — tugas milik siswa login
func (ctl *AssignmentController) ListMyAssignments(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if !actor.IsStudent() {
		return helper.JsonAuthzError(c, authz.ErrForbidden)
	}

	type row struct {
		assignmentModel.StudentAssignmentModel
		AssignmentTitle   string    `json:"assignment_title"`
		AssignmentDueDate string    `json:"assignment_due_date"`
		AssignmentSubject uuid.UUID `json:"assignment_subject_id"`
	}
	var rows []row
	if err := ctl.Service.DB.Table("student_assignments").
		Select(`student_assignments.*,
			assignments.assignment_title,
			assignments.assignment_due_date,
			assignments.assignment_subject_id AS assignment_subject`).
		Joins("JOIN assignments ON assignments.assignment_id = student_assignments.student_assignment_assignment_id").
		Joins("JOIN students ON students.student_id = student_assignments.student_assignment_student_id").
		Where(`students.student_user_id = ?
			AND assignments.assignment_school_id = ?
			AND student_assignments.student_assignment_deleted_at IS NULL`,
			actor.UserID, schoolID).
		Order("assignments.assignment_due_date DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}
