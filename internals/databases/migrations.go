// internals/databases/migrations.go
package database

import (
	"log"

	"gorm.io/gorm"

	assignmentModel "schoolku_backend/internals/features/academics/assignment/model"
	resultModel "schoolku_backend/internals/features/academics/result/model"
	subjectModel "schoolku_backend/internals/features/academics/subject/model"
	feeModel "schoolku_backend/internals/features/finance/fees/model"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// MigrateAll menjalankan AutoMigrate semua model + index yang tidak bisa
// diekspresikan lewat tag GORM (partial unique index).
func MigrateAll(db *gorm.DB) error {
	// gen_random_uuid() butuh pgcrypto (Postgres < 13)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Println("[WARNING] Gagal enable pgcrypto:", err)
	}

	if err := db.AutoMigrate(
		// tenant registry
		&schoolModel.SchoolModel{},
		&schoolModel.SubscriptionModel{},
		&schoolModel.SchoolPaymentModel{},
		// identity & profiles
		&userModel.UserModel{},
		&userModel.TeacherModel{},
		&userModel.TeacherSubjectModel{},
		&userModel.StudentModel{},
		&userModel.StudentElectiveSubjectModel{},
		&userModel.SchoolAdminModel{},
		// auth
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		// academics
		&subjectModel.SubjectModel{},
		&subjectModel.ClassLevelModel{},
		&subjectModel.ClassSubjectModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.StudentAssignmentModel{},
		&resultModel.ResultModel{},
		// finance
		&feeModel.FeeStructureModel{},
		&feeModel.StudentFeeModel{},
		&feeModel.FeePaymentModel{},
	); err != nil {
		return err
	}

	// Namespace username global untuk super_admin (school_id NULL):
	// composite unique index tidak menjaga baris NULL di Postgres.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_global_username
		ON users (user_name)
		WHERE school_id IS NULL AND deleted_at IS NULL
	`).Error; err != nil {
		return err
	}

	log.Println("[INFO] Migrasi database selesai ✅")
	return nil
}
