// internals/features/users/user/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profil guru, one-to-one dengan users. Mapel yang diampu lewat
// join table teacher_subjects (diisi senior admin).
type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherUserID   uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null;uniqueIndex" json:"teacher_user_id"`
	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`

	TeacherDateJoined time.Time `gorm:"column:teacher_date_joined;not null" json:"teacher_date_joined"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

// Join table mapel ampuan guru (kategori mapel, bukan kelas —
// penugasan per kelas ada di class_subjects).
type TeacherSubjectModel struct {
	TeacherSubjectID        uuid.UUID `gorm:"column:teacher_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_subject_id"`
	TeacherSubjectTeacherID uuid.UUID `gorm:"column:teacher_subject_teacher_id;type:uuid;not null;uniqueIndex:idx_teacher_subjects_pair" json:"teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `gorm:"column:teacher_subject_subject_id;type:uuid;not null;uniqueIndex:idx_teacher_subjects_pair" json:"teacher_subject_subject_id"`

	TeacherSubjectCreatedAt time.Time `gorm:"column:teacher_subject_created_at;not null;autoCreateTime" json:"teacher_subject_created_at"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }
