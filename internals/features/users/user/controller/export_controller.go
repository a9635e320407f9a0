// internals/features/users/user/controller/export_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

// GET /api/users/students/export — CSV data login siswa (senior only).
// Password tidak ikut (hash-only di DB); kolom admission number dipakai
// sekolah untuk distribusi kredensial reset.
func (ctl *UserController) ExportStudentsCSV(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	type row struct {
		UserName        string
		FullName        string
		AdmissionNumber string
		ClassLevelName  *string
		IsActive        bool
	}
	var rows []row
	if err := ctl.Service.DB.Table("students").
		Select(`users.user_name, users.full_name, students.student_admission_number AS admission_number,
			class_levels.class_level_name, users.is_active`).
		Joins("JOIN users ON users.id = students.student_user_id AND users.deleted_at IS NULL").
		Joins("LEFT JOIN class_levels ON class_levels.class_level_id = students.student_class_level_id").
		Where("students.student_school_id = ? AND students.student_deleted_at IS NULL", schoolID).
		Order("users.full_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"username", "full_name", "admission_number", "class_level", "is_active"})
	for _, r := range rows {
		level := ""
		if r.ClassLevelName != nil {
			level = *r.ClassLevelName
		}
		active := "no"
		if r.IsActive {
			active = "yes"
		}
		_ = w.Write([]string{r.UserName, r.FullName, r.AdmissionNumber, level, active})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis CSV")
	}

	filename := fmt.Sprintf("students_%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
