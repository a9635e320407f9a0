// internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeDTO "schoolku_backend/internals/features/finance/fees/dto"
	feeModel "schoolku_backend/internals/features/finance/fees/model"
	feeService "schoolku_backend/internals/features/finance/fees/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

var validate = validator.New()

type FeeController struct {
	Service *feeService.FeeService
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{Service: feeService.NewFeeService(db)}
}

/* ======================= FEE STRUCTURES ======================= */

// POST /api/finance/fee-structures (senior admin)
func (ctl *FeeController) CreateFeeStructure(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req feeDTO.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	fs, err := ctl.Service.CreateFeeStructure(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonCreated(c, "Struktur biaya dibuat", fs)
}

// GET /api/finance/fee-structures?academic_year=
func (ctl *FeeController) ListFeeStructures(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	q := ctl.Service.DB.Model(&feeModel.FeeStructureModel{}).
		Where("fee_structure_school_id = ?", schoolID)
	if year := c.Query("academic_year"); year != "" {
		q = q.Where("fee_structure_academic_year = ?", year)
	}

	var structures []feeModel.FeeStructureModel
	if err := q.Order("fee_structure_academic_year DESC").Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", structures)
}

/* ======================= STUDENT FEES ======================= */

// POST /api/finance/student-fees (senior admin)
func (ctl *FeeController) AssignStudentFee(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req feeDTO.AssignStudentFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	sf, err := ctl.Service.AssignStudentFee(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonCreated(c, "Tagihan siswa dibuat", sf)
}

// POST /api/finance/payments (senior admin)
func (ctl *FeeController) RecordPayment(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req feeDTO.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.RecordPayment(actor, schoolID, &req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonCreated(c, "Pembayaran tercatat", resp)
}

// GET /api/finance/students/:id/ledger (admin / siswa ybs)
func (ctl *FeeController) StudentLedger(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	summaries, payments, err := ctl.Service.StudentLedger(actor, schoolID, studentID)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"fees":     summaries,
		"payments": payments,
	})
}

// GET /api/finance/me/ledger (student)
func (ctl *FeeController) MyLedger(c *fiber.Ctx) error {
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

	summaries, payments, err := ctl.Service.StudentLedger(actor, schoolID, student.StudentID)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"fees":     summaries,
		"payments": payments,
	})
}
