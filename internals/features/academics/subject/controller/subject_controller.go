// internals/features/academics/subject/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	subjectDTO "schoolku_backend/internals/features/academics/subject/dto"
	subjectModel "schoolku_backend/internals/features/academics/subject/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

var validate = validator.New()

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Katalog mapel GLOBAL — dikelola super_admin, dibaca semua role.
type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/platform/subjects (super_admin)
func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if !actor.IsSuperAdmin() {
		return helper.JsonAuthzError(c, authz.ErrForbidden)
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	subject := subjectModel.SubjectModel{
		SubjectCode:     req.SubjectCode,
		SubjectName:     req.SubjectName,
		SubjectCategory: req.SubjectCategory,
		SubjectDesc:     req.SubjectDesc,
	}
	if err := ctl.DB.Create(&subject).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode mapel sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", subject)
}

// GET /api/subjects?category= — katalog, semua role login boleh baca
func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	if _, err := helper.GetActor(c); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 200)
	q := ctl.DB.Model(&subjectModel.SubjectModel{})
	if cat := c.Query("category"); cat != "" {
		q = q.Where("subject_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var subjects []subjectModel.SubjectModel
	if err := q.Order("subject_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "OK", subjects, helper.BuildPagination(total, paging))
}

// PUT /api/platform/subjects/:id (super_admin)
func (ctl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if !actor.IsSuperAdmin() {
		return helper.JsonAuthzError(c, authz.ErrForbidden)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	updates := map[string]any{}
	if req.SubjectName != nil {
		updates["subject_name"] = *req.SubjectName
	}
	if req.SubjectCategory != nil {
		updates["subject_category"] = *req.SubjectCategory
	}
	if req.SubjectDesc != nil {
		updates["subject_desc"] = *req.SubjectDesc
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", subjectID).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonAuthzError(c, authz.ErrNotFound)
	}
	return helper.JsonUpdated(c, "Mapel diperbarui", nil)
}
