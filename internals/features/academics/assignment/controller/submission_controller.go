// internals/features/academics/assignment/controller/submission_controller.go
package controller

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	assignmentDTO "schoolku_backend/internals/features/academics/assignment/dto"
	assignmentService "schoolku_backend/internals/features/academics/assignment/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

// discardUpload membuang file submission yang batal dipakai — submit
// yang ditolak service tidak boleh meninggalkan file yatim di disk.
func discardUpload(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Println("[WARNING] gagal menghapus file submission yang batal:", err)
	}
}

// POST /api/academics/submissions/:id (student)
// Multipart: field "file" opsional (≤2MB, ekstensi dokumen) + field "text".
// Validasi file jalan SEBELUM ada tulisan apa pun ke disk/DB.
func (ctl *AssignmentController) SubmitAssignment(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var text *string
	if v := c.FormValue("text"); v != "" {
		text = &v
	}

	var fileURL *string
	var savedPath string
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if err := helper.ValidateUpload(fh, constants.AllowedDocumentExts); err != nil {
			return helper.JsonAuthzError(c, err)
		}
		name := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fh.Filename))
		savedPath = filepath.Join("uploads", "submissions", name)
		if err := c.SaveFile(fh, savedPath); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
		}
		url := "/" + filepath.ToSlash(savedPath)
		fileURL = &url
	}

	if err := ctl.Service.SubmitAssignment(actor, schoolID, submissionID, text, fileURL); err != nil {
		// Submit ditolak (telat, bukan miliknya, dsb) — file ikut dibuang
		discardUpload(savedPath)
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "Tugas berhasil dikumpulkan", nil)
}

// PUT /api/academics/submissions/:id/grade (teacher)
func (ctl *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req assignmentDTO.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	if err := ctl.Service.GradeSubmission(actor, schoolID, submissionID, req.Score, req.Comment); err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonUpdated(c, "Nilai tersimpan", nil)
}

// GET /api/academics/assignments/:id/submissions (teacher pengampu)
func (ctl *AssignmentController) ListSubmissions(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Admin boleh baca; guru harus pengampu pair tugas ini
	if actor.IsTeacher() {
		teacher, err := ctl.Service.FindTeacherByUser(actor.UserID, schoolID)
		if err != nil {
			return helper.JsonAuthzError(c, err)
		}
		var a struct {
			ClassLevelID uuid.UUID
			SubjectID    uuid.UUID
		}
		if err := ctl.Service.DB.Table("assignments").
			Select("assignment_class_level_id AS class_level_id, assignment_subject_id AS subject_id").
			Where("assignment_id = ? AND assignment_school_id = ?", assignmentID, schoolID).
			Scan(&a).Error; err != nil || a.ClassLevelID == uuid.Nil {
			return helper.JsonAuthzError(c, authz.ErrNotFound)
		}
		pairs, err := assignmentService.LoadTeachingPairs(ctl.Service.DB, teacher.TeacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		if err := authz.EnsureTeachesPair(actor, schoolID, pairs, a.ClassLevelID, a.SubjectID); err != nil {
			return helper.JsonAuthzError(c, err)
		}
	} else if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	type row struct {
		StudentAssignmentID uuid.UUID `json:"student_assignment_id"`
		StudentID           uuid.UUID `json:"student_id"`
		FullName            string    `json:"full_name"`
		AdmissionNumber     string    `json:"admission_number"`
		IsSubmitted         bool      `json:"is_submitted"`
		Score               *int      `json:"score,omitempty"`
	}
	var rows []row
	if err := ctl.Service.DB.Table("student_assignments").
		Select(`student_assignments.student_assignment_id,
			students.student_id,
			users.full_name,
			students.student_admission_number AS admission_number,
			student_assignments.student_assignment_is_submitted AS is_submitted,
			student_assignments.student_assignment_score AS score`).
		Joins("JOIN students ON students.student_id = student_assignments.student_assignment_student_id").
		Joins("JOIN users ON users.id = students.student_user_id").
		Where(`student_assignments.student_assignment_assignment_id = ?
			AND student_assignments.student_assignment_deleted_at IS NULL`, assignmentID).
		Order("users.full_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}
