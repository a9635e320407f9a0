// internals/features/academics/result/controller/result_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	resultDTO "schoolku_backend/internals/features/academics/result/dto"
	resultService "schoolku_backend/internals/features/academics/result/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

var validate = validator.New()

type ResultController struct {
	Service *resultService.ResultService
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{Service: resultService.NewResultService(db)}
}

// POST /api/academics/results (teacher)
func (ctl *ResultController) RecordResult(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req resultDTO.RecordResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	if err := ctl.Service.RecordResult(actor, schoolID, &req); err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "Nilai tersimpan", nil)
}

// POST /api/academics/results/batch (teacher)
func (ctl *ResultController) BatchUpload(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req resultDTO.BatchUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.BatchUpload(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "Batch nilai diproses", resp)
}

// GET /api/academics/students/:id/results
func (ctl *ResultController) StudentResults(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rows, err := ctl.Service.StudentResults(actor, schoolID, studentID)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/academics/results/me (student) — rapor milik sendiri
func (ctl *ResultController) MyResults(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if !actor.IsStudent() {
		return helper.JsonAuthzError(c, authz.ErrForbidden)
	}

	var student userModel.StudentModel
	if err := ctl.Service.DB.
		Where("student_user_id = ? AND student_school_id = ?", actor.UserID, schoolID).
		First(&student).Error; err != nil {
		return helper.JsonAuthzError(c, authz.ErrProfileMissing)
	}

	rows, err := ctl.Service.StudentResults(actor, schoolID, student.StudentID)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "OK", rows)
}
