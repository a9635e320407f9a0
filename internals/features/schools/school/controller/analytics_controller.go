// internals/features/schools/school/controller/analytics_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentModel "schoolku_backend/internals/features/academics/assignment/model"
	subjectModel "schoolku_backend/internals/features/academics/subject/model"
	feeModel "schoolku_backend/internals/features/finance/fees/model"
	schoolDTO "schoolku_backend/internals/features/schools/school/dto"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// GET /api/school/analytics — dashboard admin (junior boleh baca)
func (ctl *AnalyticsController) SchoolAnalytics(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var resp schoolDTO.SchoolAnalyticsResponse

	ctl.DB.Model(&userModel.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID).Count(&resp.TotalTeachers)
	ctl.DB.Model(&userModel.StudentModel{}).
		Where("student_school_id = ?", schoolID).Count(&resp.TotalStudents)
	ctl.DB.Model(&subjectModel.ClassLevelModel{}).
		Where("class_level_school_id = ?", schoolID).Count(&resp.TotalClassLevels)
	ctl.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("assignment_school_id = ?", schoolID).Count(&resp.TotalAssignments)

	type feeAgg struct {
		Due  int64
		Paid int64
	}
	var agg feeAgg
	ctl.DB.Model(&feeModel.StudentFeeModel{}).
		Select("COALESCE(SUM(student_fee_amount_due_idr),0) AS due, COALESCE(SUM(student_fee_amount_paid_idr),0) AS paid").
		Where("student_fee_school_id = ?", schoolID).
		Scan(&agg)
	resp.FeesExpectedIDR = agg.Due
	resp.FeesCollectedIDR = agg.Paid
	if out := agg.Due - agg.Paid; out > 0 {
		resp.FeesOutstandingIDR = out
	}

	var sub schoolModel.SubscriptionModel
	if err := ctl.DB.First(&sub, "subscription_school_id = ?", schoolID).Error; err == nil {
		resp.SubscriptionDaysRemaining = sub.DaysRemaining(time.Now())
	}

	return helper.JsonOK(c, "OK", resp)
}

// GET /api/platform/analytics — ringkasan platform (super_admin)
func (ctl *AnalyticsController) PlatformAnalytics(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if !actor.IsSuperAdmin() {
		return helper.JsonAuthzError(c, authz.ErrForbidden)
	}

	var resp schoolDTO.PlatformAnalyticsResponse
	ctl.DB.Model(&schoolModel.SchoolModel{}).Count(&resp.TotalSchools)
	ctl.DB.Model(&schoolModel.SchoolModel{}).
		Where("school_is_active = TRUE").Count(&resp.ActiveSchools)
	ctl.DB.Model(&userModel.UserModel{}).Count(&resp.TotalUsers)
	ctl.DB.Model(&userModel.StudentModel{}).Count(&resp.TotalStudents)
	ctl.DB.Model(&schoolModel.SubscriptionModel{}).
		Where("subscription_is_active = TRUE AND subscription_end_date > ?", time.Now()).
		Count(&resp.ActiveSubscriptions)

	return helper.JsonOK(c, "OK", resp)
}
