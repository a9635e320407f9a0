// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - username unik PER SEKOLAH: uniqueIndex komposit (school_id, user_name).
// - super_admin tidak punya sekolah (school_id NULL); namespace username
//   globalnya dijaga partial unique index di migrations (tidak bisa lewat tag).
// - role: super_admin | senior_admin | junior_admin | teacher | student
type UserModel struct {
	ID       uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID *uuid.UUID `gorm:"column:school_id;type:uuid;index;uniqueIndex:idx_users_school_username" json:"school_id,omitempty"`

	UserName string  `gorm:"column:user_name;type:varchar(50);not null;uniqueIndex:idx_users_school_username" json:"user_name"`
	FullName string  `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	Email    *string `gorm:"column:email;type:varchar(120)" json:"email,omitempty"`
	Phone    *string `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`

	Password string `gorm:"column:password;type:varchar(250);not null" json:"-"`
	Role     string `gorm:"column:role;type:varchar(20);not null;index" json:"role"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
