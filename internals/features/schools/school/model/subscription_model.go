// internals/features/schools/school/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu sekolah satu langganan aktif (unique di subscription_school_id).
type SubscriptionModel struct {
	SubscriptionID       uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_id"`
	SubscriptionSchoolID uuid.UUID `gorm:"column:subscription_school_id;type:uuid;not null;uniqueIndex" json:"subscription_school_id"`

	SubscriptionStartDate time.Time `gorm:"column:subscription_start_date;not null" json:"subscription_start_date"`
	SubscriptionEndDate   time.Time `gorm:"column:subscription_end_date;not null" json:"subscription_end_date"`

	SubscriptionIsActive  bool `gorm:"column:subscription_is_active;not null;default:true" json:"subscription_is_active"`
	SubscriptionAutoRenew bool `gorm:"column:subscription_auto_renew;not null;default:false" json:"subscription_auto_renew"`

	SubscriptionCreatedAt time.Time      `gorm:"column:subscription_created_at;not null;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt time.Time      `gorm:"column:subscription_updated_at;not null;autoUpdateTime" json:"subscription_updated_at"`
	SubscriptionDeletedAt gorm.DeletedAt `gorm:"column:subscription_deleted_at;index" json:"subscription_deleted_at,omitempty"`
}

func (SubscriptionModel) TableName() string { return "school_subscriptions" }

func (s *SubscriptionModel) IsExpired(now time.Time) bool {
	return now.After(s.SubscriptionEndDate)
}

func (s *SubscriptionModel) DaysRemaining(now time.Time) int {
	if s.IsExpired(now) {
		return 0
	}
	return int(s.SubscriptionEndDate.Sub(now).Hours() / 24)
}
