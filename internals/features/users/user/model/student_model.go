// internals/features/users/user/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profil siswa, one-to-one dengan users.
// admission_number unik PER SEKOLAH (uniqueIndex komposit).
type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentUserID   uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;uniqueIndex" json:"student_user_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index;uniqueIndex:idx_students_school_admission" json:"student_school_id"`

	StudentAdmissionNumber string     `gorm:"column:student_admission_number;type:varchar(40);not null;uniqueIndex:idx_students_school_admission" json:"student_admission_number"`
	StudentClassLevelID    *uuid.UUID `gorm:"column:student_class_level_id;type:uuid;index" json:"student_class_level_id,omitempty"`

	StudentDateAdmitted time.Time `gorm:"column:student_date_admitted;not null" json:"student_date_admitted"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

// Pilihan mapel elektif siswa (mapel non-wajib di kelasnya).
type StudentElectiveSubjectModel struct {
	StudentElectiveSubjectID        uuid.UUID `gorm:"column:student_elective_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_elective_subject_id"`
	StudentElectiveSubjectStudentID uuid.UUID `gorm:"column:student_elective_subject_student_id;type:uuid;not null;uniqueIndex:idx_student_electives_pair" json:"student_elective_subject_student_id"`
	StudentElectiveSubjectSubjectID uuid.UUID `gorm:"column:student_elective_subject_subject_id;type:uuid;not null;uniqueIndex:idx_student_electives_pair" json:"student_elective_subject_subject_id"`

	StudentElectiveSubjectCreatedAt time.Time `gorm:"column:student_elective_subject_created_at;not null;autoCreateTime" json:"student_elective_subject_created_at"`
}

func (StudentElectiveSubjectModel) TableName() string { return "student_elective_subjects" }
