// internals/features/finance/fees/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Struktur biaya per (tingkat kelas, tahun ajaran) — unik.
// Nominal dalam rupiah utuh (int), konsisten dengan ledger pembayaran.
type FeeStructureModel struct {
	FeeStructureID           uuid.UUID `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`
	FeeStructureSchoolID     uuid.UUID `gorm:"column:fee_structure_school_id;type:uuid;not null;index" json:"fee_structure_school_id"`
	FeeStructureClassLevelID uuid.UUID `gorm:"column:fee_structure_class_level_id;type:uuid;not null;uniqueIndex:idx_fee_structures_level_year" json:"fee_structure_class_level_id"`
	FeeStructureAcademicYear string    `gorm:"column:fee_structure_academic_year;type:varchar(12);not null;uniqueIndex:idx_fee_structures_level_year" json:"fee_structure_academic_year"`

	FeeStructureTuitionIDR     int `gorm:"column:fee_structure_tuition_idr;not null;default:0" json:"fee_structure_tuition_idr"`
	FeeStructureDevelopmentIDR int `gorm:"column:fee_structure_development_idr;not null;default:0" json:"fee_structure_development_idr"`
	FeeStructureOtherIDR       int `gorm:"column:fee_structure_other_idr;not null;default:0" json:"fee_structure_other_idr"`
	FeeStructureTotalIDR       int `gorm:"column:fee_structure_total_idr;not null;default:0" json:"fee_structure_total_idr"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;not null;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;not null;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"fee_structure_deleted_at,omitempty"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }
