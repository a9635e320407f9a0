// internals/seeds/runner.go
package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	subjectModel "schoolku_backend/internals/features/academics/subject/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// RunAllSeeds: idempoten — aman dipanggil tiap boot.
func RunAllSeeds(db *gorm.DB) {
	seedSuperAdmin(db)
	seedSubjectCatalog(db)
}

// Super admin pertama dari env (SUPERADMIN_USERNAME/SUPERADMIN_PASSWORD).
// Tanpa env, seed dilewati — produksi wajib set sendiri.
func seedSuperAdmin(db *gorm.DB) {
	username := os.Getenv("SUPERADMIN_USERNAME")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("[INFO] Seed super admin dilewati (env tidak di-set)")
		return
	}

	var count int64
	db.Model(&userModel.UserModel{}).
		Where("user_name = ? AND school_id IS NULL", username).
		Count(&count)
	if count > 0 {
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Println("[ERROR] Seed super admin gagal hash password:", err)
		return
	}

	if err := db.Create(&userModel.UserModel{
		UserName: username,
		FullName: "Platform Super Admin",
		Password: hashed,
		Role:     constants.RoleSuperAdmin,
	}).Error; err != nil {
		log.Println("[ERROR] Seed super admin gagal:", err)
		return
	}
	log.Println("[INFO] Super admin awal dibuat ✅")
}

// Katalog mapel dasar — hanya diisi kalau katalog masih kosong.
func seedSubjectCatalog(db *gorm.DB) {
	var count int64
	db.Model(&subjectModel.SubjectModel{}).Count(&count)
	if count > 0 {
		return
	}

	subjects := []subjectModel.SubjectModel{
		{SubjectCode: "MTH", SubjectName: "Mathematics", SubjectCategory: "core"},
		{SubjectCode: "ENG", SubjectName: "English Language", SubjectCategory: "core"},
		{SubjectCode: "PHY", SubjectName: "Physics", SubjectCategory: "science"},
		{SubjectCode: "CHM", SubjectName: "Chemistry", SubjectCategory: "science"},
		{SubjectCode: "BIO", SubjectName: "Biology", SubjectCategory: "science"},
		{SubjectCode: "ECO", SubjectName: "Economics", SubjectCategory: "commercial"},
		{SubjectCode: "ACC", SubjectName: "Accounting", SubjectCategory: "commercial"},
		{SubjectCode: "GEO", SubjectName: "Geography", SubjectCategory: "science"},
		{SubjectCode: "HIS", SubjectName: "History", SubjectCategory: "art"},
		{SubjectCode: "CRS", SubjectName: "Religious Studies", SubjectCategory: "religious"},
		{SubjectCode: "ART", SubjectName: "Fine Arts", SubjectCategory: "art"},
		{SubjectCode: "ICT", SubjectName: "Computer Studies", SubjectCategory: "science"},
	}
	if err := db.Create(&subjects).Error; err != nil {
		log.Println("[ERROR] Seed katalog mapel gagal:", err)
		return
	}
	log.Printf("[INFO] Katalog mapel awal: %d mapel ✅", len(subjects))
}
