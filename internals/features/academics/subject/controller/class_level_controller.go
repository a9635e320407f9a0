// internals/features/academics/subject/controller/class_level_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "schoolku_backend/internals/features/academics/subject/dto"
	subjectModel "schoolku_backend/internals/features/academics/subject/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

// Tingkat kelas + kurikulum per sekolah (senior admin yang mengelola).
type ClassLevelController struct {
	DB *gorm.DB
}

func NewClassLevelController(db *gorm.DB) *ClassLevelController {
	return &ClassLevelController{DB: db}
}

/* ======================= CLASS LEVELS ======================= */

// POST /api/academics/class-levels
func (ctl *ClassLevelController) CreateClassLevel(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req subjectDTO.CreateClassLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	level := subjectModel.ClassLevelModel{
		ClassLevelSchoolID: schoolID,
		ClassLevelName:     req.ClassLevelName,
		ClassLevelOrder:    req.ClassLevelOrder,
	}
	if err := ctl.DB.Create(&level).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama tingkat kelas sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tingkat kelas")
	}
	return helper.JsonCreated(c, "Tingkat kelas dibuat", level)
}

// GET /api/academics/class-levels
func (ctl *ClassLevelController) ListClassLevels(c *fiber.Ctx) error {
	_, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var levels []subjectModel.ClassLevelModel
	if err := ctl.DB.
		Where("class_level_school_id = ?", schoolID).
		Order("class_level_order ASC, class_level_name ASC").
		Find(&levels).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", levels)
}

/* ======================= CLASS SUBJECTS (kurikulum) ======================= */

// ensureCurriculumRefs: baris kurikulum tidak boleh menggantung — semua
// referensinya (tingkat, mapel katalog, guru jika diisi) harus ketemu.
// Yang hilang dijawab not found, termasuk kasus lintas tenant.
func ensureCurriculumRefs(levelFound, subjectFound, teacherFound bool) error {
	if !levelFound || !subjectFound || !teacherFound {
		return authz.ErrNotFound
	}
	return nil
}

// POST /api/academics/class-subjects
func (ctl *ClassLevelController) CreateClassSubject(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureCanAssignSubjects(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req subjectDTO.CreateClassSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	// Tingkat kelas harus milik sekolah actor — lintas tenant jatuh 404
	var levelCount int64
	if err := ctl.DB.Model(&subjectModel.ClassLevelModel{}).
		Where("class_level_id = ? AND class_level_school_id = ?", req.ClassSubjectClassLevelID, schoolID).
		Count(&levelCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Mapel harus ada di katalog global — id asal-asalan jatuh 404
	var subjectCount int64
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", req.ClassSubjectSubjectID).
		Count(&subjectCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Guru (jika diisi) juga harus guru sekolah ini
	teacherCount := int64(1)
	if req.ClassSubjectTeacherID != nil {
		if err := ctl.DB.Model(&userModel.TeacherModel{}).
			Where("teacher_id = ? AND teacher_school_id = ?", *req.ClassSubjectTeacherID, schoolID).
			Count(&teacherCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
	}

	if err := ensureCurriculumRefs(levelCount > 0, subjectCount > 0, teacherCount > 0); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	compulsory := true
	if req.ClassSubjectIsCompulsory != nil {
		compulsory = *req.ClassSubjectIsCompulsory
	}

	cs := subjectModel.ClassSubjectModel{
		ClassSubjectClassLevelID: req.ClassSubjectClassLevelID,
		ClassSubjectSubjectID:    req.ClassSubjectSubjectID,
		ClassSubjectTeacherID:    req.ClassSubjectTeacherID,
		ClassSubjectIsCompulsory: compulsory,
	}
	if err := ctl.DB.Create(&cs).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Mapel sudah terdaftar di tingkat ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah kurikulum")
	}
	return helper.JsonCreated(c, "Kurikulum ditambahkan", cs)
}

// GET /api/academics/class-levels/:id/subjects
func (ctl *ClassLevelController) ListClassSubjects(c *fiber.Ctx) error {
	_, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var level subjectModel.ClassLevelModel
	if err := ctl.DB.
		Where("class_level_id = ? AND class_level_school_id = ?", levelID, schoolID).
		First(&level).Error; err != nil {
		return helper.JsonAuthzError(c, authz.ErrNotFound)
	}

	var subjects []subjectModel.ClassSubjectModel
	if err := ctl.DB.
		Where("class_subject_class_level_id = ?", levelID).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", subjects)
}

// PUT /api/academics/class-subjects/:id/teacher — tugaskan/cabut guru
func (ctl *ClassLevelController) AssignClassTeacher(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureCanAssignSubjects(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	csID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req subjectDTO.AssignClassTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	// Join ke class_levels untuk mengunci scope sekolah
	var cs subjectModel.ClassSubjectModel
	if err := ctl.DB.
		Joins("JOIN class_levels ON class_levels.class_level_id = class_subjects.class_subject_class_level_id").
		Where("class_subjects.class_subject_id = ? AND class_levels.class_level_school_id = ?", csID, schoolID).
		First(&cs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonAuthzError(c, authz.ErrNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.ClassSubjectTeacherID != nil {
		var teacher userModel.TeacherModel
		if err := ctl.DB.
			Where("teacher_id = ? AND teacher_school_id = ?", *req.ClassSubjectTeacherID, schoolID).
			First(&teacher).Error; err != nil {
			return helper.JsonAuthzError(c, authz.ErrNotFound)
		}
	}

	if err := ctl.DB.Model(&subjectModel.ClassSubjectModel{}).
		Where("class_subject_id = ?", cs.ClassSubjectID).
		Update("class_subject_teacher_id", req.ClassSubjectTeacherID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update penugasan")
	}
	return helper.JsonUpdated(c, "Penugasan guru diperbarui", nil)
}
