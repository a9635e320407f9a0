// internals/features/academics/assignment/service/assignment_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentDTO "schoolku_backend/internals/features/academics/assignment/dto"
	assignmentModel "schoolku_backend/internals/features/academics/assignment/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/authz"
)

type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

// CanSubmitAt: deadline inklusif — tepat di due_date masih diterima.
func CanSubmitAt(dueDate, now time.Time) bool {
	return !now.After(dueDate)
}

// LoadTeachingPairs mengambil set (tingkat kelas, mapel) yang diampu
// guru dari class_subjects. Dipakai gate rule penulisan nilai/tugas.
func LoadTeachingPairs(db *gorm.DB, teacherID uuid.UUID) ([]authz.TeachingPair, error) {
	type row struct {
		ClassLevelID uuid.UUID
		SubjectID    uuid.UUID
	}
	var rows []row
	err := db.Table("class_subjects").
		Select("class_subject_class_level_id AS class_level_id, class_subject_subject_id AS subject_id").
		Where("class_subject_teacher_id = ? AND class_subject_deleted_at IS NULL", teacherID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	pairs := make([]authz.TeachingPair, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, authz.TeachingPair{ClassLevelID: r.ClassLevelID, SubjectID: r.SubjectID})
	}
	return pairs, nil
}

// FindTeacherByUser: profil guru milik actor, scoped sekolah.
func (s *AssignmentService) FindTeacherByUser(userID, schoolID uuid.UUID) (*userModel.TeacherModel, error) {
	var teacher userModel.TeacherModel
	err := s.DB.Where("teacher_user_id = ? AND teacher_school_id = ?", userID, schoolID).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrProfileMissing
		}
		return nil, err
	}
	return &teacher, nil
}

/* ======================= CREATE + FAN-OUT ======================= */

// Raw INSERT melewati hook create GORM — autoCreateTime/autoUpdateTime
// tidak jalan, jadi kolom NOT NULL tanpa default DB wajib diisi di sini.
const fanOutStudentAssignmentsSQL = `
	INSERT INTO student_assignments
		(student_assignment_assignment_id, student_assignment_student_id,
		 student_assignment_created_at, student_assignment_updated_at)
	SELECT ?, student_id, NOW(), NOW()
	FROM students
	WHERE student_school_id = ?
	  AND student_class_level_id = ?
	  AND student_deleted_at IS NULL`

// CreateAssignment: gate rule guru (pair harus diampu), lalu buat tugas
// + satu baris student_assignments per siswa tingkat tsb — SATU transaksi.
func (s *AssignmentService) CreateAssignment(actor authz.Actor, schoolID uuid.UUID, req *assignmentDTO.CreateAssignmentRequest) (*assignmentDTO.CreateAssignmentResponse, error) {
	teacher, err := s.FindTeacherByUser(actor.UserID, schoolID)
	if err != nil {
		return nil, err
	}

	pairs, err := LoadTeachingPairs(s.DB, teacher.TeacherID)
	if err != nil {
		return nil, err
	}
	if err := authz.EnsureTeachesPair(actor, schoolID, pairs, req.ClassLevelID, req.SubjectID); err != nil {
		return nil, err
	}

	assignment := assignmentModel.AssignmentModel{
		AssignmentSchoolID:     schoolID,
		AssignmentClassLevelID: req.ClassLevelID,
		AssignmentSubjectID:    req.SubjectID,
		AssignmentTeacherID:    teacher.TeacherID,
		AssignmentTitle:        req.Title,
		AssignmentDesc:         req.Desc,
		AssignmentMaxScore:     req.MaxScore,
		AssignmentDueDate:      req.DueDate,
	}

	var studentCount int64
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		// Fan-out ke semua siswa tingkat kelas ini
		res := tx.Exec(fanOutStudentAssignmentsSQL,
			assignment.AssignmentID, schoolID, req.ClassLevelID)
		if res.Error != nil {
			return res.Error
		}
		studentCount = res.RowsAffected
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &assignmentDTO.CreateAssignmentResponse{
		AssignmentID: assignment.AssignmentID,
		StudentCount: int(studentCount),
	}, nil
}

/* ======================= SUBMIT ======================= */

// SubmitAssignment: hanya siswa pemilik baris (rule self), lewat
// deadline DITOLAK dan is_submitted tetap false.
func (s *AssignmentService) SubmitAssignment(actor authz.Actor, schoolID, studentAssignmentID uuid.UUID, text, fileURL *string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		type submissionRow struct {
			StudentAssignmentID uuid.UUID
			OwnerUserID         uuid.UUID
			DueDate             time.Time
			IsSubmitted         bool
		}
		var row submissionRow
		err := tx.Table("student_assignments").
			Select(`student_assignments.student_assignment_id,
				students.student_user_id AS owner_user_id,
				assignments.assignment_due_date AS due_date,
				student_assignments.student_assignment_is_submitted AS is_submitted`).
			Joins("JOIN students ON students.student_id = student_assignments.student_assignment_student_id").
			Joins("JOIN assignments ON assignments.assignment_id = student_assignments.student_assignment_assignment_id").
			Where(`student_assignments.student_assignment_id = ?
				AND assignments.assignment_school_id = ?
				AND student_assignments.student_assignment_deleted_at IS NULL`,
				studentAssignmentID, schoolID).
			Scan(&row).Error
		if err != nil {
			return err
		}
		if row.StudentAssignmentID == uuid.Nil {
			return authz.ErrNotFound
		}

		if err := authz.EnsureSelfStudent(actor, schoolID, row.OwnerUserID); err != nil {
			return err
		}

		now := time.Now()
		if !CanSubmitAt(row.DueDate, now) {
			return authz.NewValidationError("batas waktu pengumpulan sudah lewat")
		}
		if text == nil && fileURL == nil {
			return authz.NewValidationError("isi jawaban atau lampiran wajib diisi")
		}

		updates := map[string]any{
			"student_assignment_is_submitted": true,
			"student_assignment_submitted_at": now,
		}
		if text != nil {
			updates["student_assignment_text"] = *text
		}
		if fileURL != nil {
			updates["student_assignment_file_url"] = *fileURL
		}

		return tx.Model(&assignmentModel.StudentAssignmentModel{}).
			Where("student_assignment_id = ?", row.StudentAssignmentID).
			Updates(updates).Error
	})
}

/* ======================= GRADE ======================= */

// GradeSubmission: hanya guru pengampu pair tugas tsb, skor dibatasi
// max_score tugas.
func (s *AssignmentService) GradeSubmission(actor authz.Actor, schoolID, studentAssignmentID uuid.UUID, score int, comment *string) error {
	teacher, err := s.FindTeacherByUser(actor.UserID, schoolID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var assignment assignmentModel.AssignmentModel
		err := tx.
			Joins("JOIN student_assignments ON student_assignments.student_assignment_assignment_id = assignments.assignment_id").
			Where(`student_assignments.student_assignment_id = ?
				AND assignments.assignment_school_id = ?`, studentAssignmentID, schoolID).
			First(&assignment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return authz.ErrNotFound
			}
			return err
		}

		pairs, err := LoadTeachingPairs(tx, teacher.TeacherID)
		if err != nil {
			return err
		}
		if err := authz.EnsureTeachesPair(actor, schoolID, pairs,
			assignment.AssignmentClassLevelID, assignment.AssignmentSubjectID); err != nil {
			return err
		}

		if score > assignment.AssignmentMaxScore {
			return authz.NewValidationError("skor melebihi nilai maksimum tugas")
		}

		updates := map[string]any{"student_assignment_score": score}
		if comment != nil {
			updates["student_assignment_comment"] = *comment
		}
		return tx.Model(&assignmentModel.StudentAssignmentModel{}).
			Where("student_assignment_id = ?", studentAssignmentID).
			Updates(updates).Error
	})
}
