// internals/features/schools/school/controller/school_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolDTO "schoolku_backend/internals/features/schools/school/dto"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

var validate = validator.New()

const trialDays = 30

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

/* ======================= REGISTER (public) ======================= */
// POST /api/schools/register
// Sekolah + senior admin pertama + langganan trial dalam SATU transaksi.
func (ctl *SchoolController) RegisterSchool(c *fiber.Ctx) error {
	var req schoolDTO.RegisterSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	hashed, err := authService.HashPassword(req.AdminPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	school := schoolModel.SchoolModel{
		SchoolName:    req.SchoolName,
		SchoolType:    req.SchoolType,
		SchoolPhone:   req.SchoolPhone,
		SchoolEmail:   req.SchoolEmail,
		SchoolAddress: req.SchoolAddress,
		SchoolCity:    req.SchoolCity,
		SchoolLGA:     req.SchoolLGA,
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&school).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Create(&schoolModel.SubscriptionModel{
			SubscriptionSchoolID:  school.SchoolID,
			SubscriptionStartDate: now,
			SubscriptionEndDate:   now.AddDate(0, 0, trialDays),
		}).Error; err != nil {
			return err
		}

		admin := userModel.UserModel{
			SchoolID: &school.SchoolID,
			UserName: req.AdminUserName,
			FullName: req.AdminFullName,
			Email:    req.AdminEmail,
			Password: hashed,
			Role:     constants.RoleSeniorAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		// Profil dibuat di transaksi yang sama — tidak ada user tanpa profil
		return tx.Create(&userModel.SchoolAdminModel{
			SchoolAdminUserID:   admin.ID,
			SchoolAdminSchoolID: school.SchoolID,
			SchoolAdminIsSenior: true,
		}).Error
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Username admin sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan sekolah")
	}

	return helper.JsonCreated(c, "Sekolah berhasil didaftarkan", fiber.Map{
		"school_id":   school.SchoolID,
		"school_name": school.SchoolName,
	})
}

/* ======================= READ ======================= */

// GET /api/school — profil sekolah milik actor
func (ctl *SchoolController) GetMySchool(c *fiber.Ctx) error {
	_, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var school schoolModel.SchoolModel
	if err := ctl.DB.First(&school, "school_id = ?", schoolID).Error; err != nil {
		return helper.JsonAuthzError(c, authz.ErrNotFound)
	}
	return helper.JsonOK(c, "OK", school)
}

// GET /api/public/schools/:id/homepage — landing page publik
func (ctl *SchoolController) PublicHomepage(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var school schoolModel.SchoolModel
	if err := ctl.DB.
		Where("school_id = ? AND school_is_active = TRUE", schoolID).
		First(&school).Error; err != nil {
		return helper.JsonAuthzError(c, authz.ErrNotFound)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"school_id":            school.SchoolID,
		"school_name":          school.SchoolName,
		"school_type":          school.SchoolType,
		"school_motto":         school.SchoolMotto,
		"school_vision":        school.SchoolVision,
		"school_mission":       school.SchoolMission,
		"school_about":         school.SchoolAbout,
		"school_primary_color": school.SchoolPrimaryColor,
		"school_address":       school.SchoolAddress,
		"school_city":          school.SchoolCity,
		"school_homepage":      school.SchoolHomepage,
	})
}

// GET /api/platform/schools — daftar semua sekolah (super_admin)
func (ctl *SchoolController) ListSchools(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if !actor.IsSuperAdmin() {
		return helper.JsonAuthzError(c, authz.ErrForbidden)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&schoolModel.SchoolModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var schools []schoolModel.SchoolModel
	if err := ctl.DB.
		Order("school_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", schools, helper.BuildPagination(total, paging))
}

/* ======================= UPDATE ======================= */

// PUT /api/school — senior admin update profil sekolahnya
func (ctl *SchoolController) UpdateMySchool(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req schoolDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	updates := map[string]any{}
	if req.SchoolName != nil {
		updates["school_name"] = *req.SchoolName
	}
	if req.SchoolMotto != nil {
		updates["school_motto"] = *req.SchoolMotto
	}
	if req.SchoolVision != nil {
		updates["school_vision"] = *req.SchoolVision
	}
	if req.SchoolMission != nil {
		updates["school_mission"] = *req.SchoolMission
	}
	if req.SchoolAbout != nil {
		updates["school_about"] = *req.SchoolAbout
	}
	if req.SchoolPrimaryColor != nil {
		updates["school_primary_color"] = *req.SchoolPrimaryColor
	}
	if req.SchoolPhone != nil {
		updates["school_phone"] = *req.SchoolPhone
	}
	if req.SchoolEmail != nil {
		updates["school_email"] = *req.SchoolEmail
	}
	if req.SchoolAddress != nil {
		updates["school_address"] = *req.SchoolAddress
	}
	if req.SchoolCity != nil {
		updates["school_city"] = *req.SchoolCity
	}
	if req.SchoolLGA != nil {
		updates["school_lga"] = *req.SchoolLGA
	}
	if req.SchoolHomepage != nil {
		updates["school_homepage"] = *req.SchoolHomepage
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.Model(&schoolModel.SchoolModel{}).
		Where("school_id = ?", schoolID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update sekolah")
	}

	return helper.JsonUpdated(c, "Profil sekolah diperbarui", nil)
}
