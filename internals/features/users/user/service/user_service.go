// internals/features/users/user/service/user_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authService "schoolku_backend/internals/features/users/auth/service"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/authz"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

/* ======================= CREATE ======================= */

// CreateTeacher: user + profil guru + mapel ampuan dalam SATU transaksi.
// Gate: hanya senior_admin sekolah yang sama (rule user management).
func (s *UserService) CreateTeacher(actor authz.Actor, schoolID uuid.UUID, req *userDTO.CreateTeacherRequest) (*userDTO.UserResponse, error) {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return nil, err
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	dateJoined := time.Now()
	if req.DateJoined != nil {
		dateJoined = *req.DateJoined
	}

	user := userModel.UserModel{
		SchoolID: &schoolID,
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     constants.RoleTeacher,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		teacher := userModel.TeacherModel{
			TeacherUserID:     user.ID,
			TeacherSchoolID:   schoolID,
			TeacherDateJoined: dateJoined,
		}
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}
		for _, subjectID := range req.SubjectIDs {
			if err := tx.Create(&userModel.TeacherSubjectModel{
				TeacherSubjectTeacherID: teacher.TeacherID,
				TeacherSubjectSubjectID: subjectID,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return nil, authz.ErrConflict
		}
		return nil, txErr
	}

	resp := toUserResponse(&user)
	return &resp, nil
}

// CreateStudent: user + profil siswa + elektif dalam SATU transaksi.
// admission_number unik per sekolah — bentrok jadi ErrConflict.
func (s *UserService) CreateStudent(actor authz.Actor, schoolID uuid.UUID, req *userDTO.CreateStudentRequest) (*userDTO.UserResponse, error) {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return nil, err
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	dateAdmitted := time.Now()
	if req.DateAdmitted != nil {
		dateAdmitted = *req.DateAdmitted
	}

	user := userModel.UserModel{
		SchoolID: &schoolID,
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     constants.RoleStudent,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student := userModel.StudentModel{
			StudentUserID:          user.ID,
			StudentSchoolID:        schoolID,
			StudentAdmissionNumber: req.AdmissionNumber,
			StudentClassLevelID:    req.ClassLevelID,
			StudentDateAdmitted:    dateAdmitted,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}
		for _, subjectID := range req.ElectiveIDs {
			if err := tx.Create(&userModel.StudentElectiveSubjectModel{
				StudentElectiveSubjectStudentID: student.StudentID,
				StudentElectiveSubjectSubjectID: subjectID,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return nil, authz.ErrConflict
		}
		return nil, txErr
	}

	resp := toUserResponse(&user)
	return &resp, nil
}

// BulkCreateStudents: baris gagal dikumpulkan, baris valid tetap masuk
// (satu transaksi per baris, bukan all-or-nothing).
func (s *UserService) BulkCreateStudents(actor authz.Actor, schoolID uuid.UUID, req *userDTO.BulkCreateStudentsRequest) (*userDTO.BulkCreateStudentsResponse, error) {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return nil, err
	}

	resp := &userDTO.BulkCreateStudentsResponse{}
	for i := range req.Students {
		if _, err := s.CreateStudent(actor, schoolID, &req.Students[i]); err != nil {
			reason := "gagal membuat siswa"
			if errors.Is(err, authz.ErrConflict) {
				reason = "username atau nomor induk sudah dipakai"
			}
			resp.Errors = append(resp.Errors, userDTO.BulkRowError{Index: i, Reason: reason})
			resp.FailedCount++
			continue
		}
		resp.CreatedCount++
	}
	return resp, nil
}

// CreateJuniorAdmin: hanya senior_admin.
func (s *UserService) CreateJuniorAdmin(actor authz.Actor, schoolID uuid.UUID, req *userDTO.CreateJuniorAdminRequest) (*userDTO.UserResponse, error) {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return nil, err
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		SchoolID: &schoolID,
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		Role:     constants.RoleJuniorAdmin,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&userModel.SchoolAdminModel{
			SchoolAdminUserID:   user.ID,
			SchoolAdminSchoolID: schoolID,
			SchoolAdminIsSenior: false,
		}).Error
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return nil, authz.ErrConflict
		}
		return nil, txErr
	}

	resp := toUserResponse(&user)
	return &resp, nil
}

/* ======================= READ ======================= */

// GetUserInSchool: lookup selalu difilter school_id — baris sekolah
// lain tidak pernah kelihatan (jatuh ke ErrNotFound).
func (s *UserService) GetUserInSchool(schoolID, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := s.DB.Where("id = ? AND school_id = ?", userID, schoolID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers(actor authz.Actor, schoolID uuid.UUID, role, search string, limit, offset int) ([]userModel.UserModel, int64, error) {
	if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
		return nil, 0, err
	}

	q := s.DB.Model(&userModel.UserModel{}).Where("school_id = ?", schoolID)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR full_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

/* ======================= UPDATE / DELETE ======================= */

func (s *UserService) UpdateUser(actor authz.Actor, schoolID, userID uuid.UUID, req *userDTO.UpdateUserRequest) error {
	user, err := s.GetUserInSchool(schoolID, userID)
	if err != nil {
		return err
	}
	// Mutasi user = senior admin; edit diri sendiri diizinkan
	if err := authz.EnsureSelfOrManager(actor, schoolID, user.ID); err != nil {
		return err
	}
	// is_active hanya boleh diubah manajer, bukan diri sendiri
	if req.IsActive != nil && actor.UserID == user.ID && !actor.IsSuperAdmin() {
		return authz.ErrForbidden
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return authz.NewValidationError("tidak ada field yang diubah")
	}

	return s.DB.Model(&userModel.UserModel{}).Where("id = ?", user.ID).Updates(updates).Error
}

// DeleteUser: senior only, tidak boleh hapus diri sendiri.
// Soft delete user + profilnya dalam satu transaksi.
func (s *UserService) DeleteUser(actor authz.Actor, schoolID, userID uuid.UUID) error {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return err
	}
	if actor.UserID == userID {
		return authz.NewValidationError("tidak bisa menghapus akun sendiri")
	}

	user, err := s.GetUserInSchool(schoolID, userID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		switch user.Role {
		case constants.RoleTeacher:
			if err := tx.Where("teacher_user_id = ?", user.ID).
				Delete(&userModel.TeacherModel{}).Error; err != nil {
				return err
			}
		case constants.RoleStudent:
			if err := tx.Where("student_user_id = ?", user.ID).
				Delete(&userModel.StudentModel{}).Error; err != nil {
				return err
			}
		case constants.RoleSeniorAdmin, constants.RoleJuniorAdmin:
			if err := tx.Where("school_admin_user_id = ?", user.ID).
				Delete(&userModel.SchoolAdminModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&userModel.UserModel{}, "id = ?", user.ID).Error
	})
}

/* ======================= ASSIGN SUBJECTS ======================= */

// AssignSubjects mengganti seluruh set mapel ampuan guru (replace, bukan
// append) dalam satu transaksi. Senior admin only — junior tidak
// boleh penugasan kategori mapel.
func (s *UserService) AssignSubjects(actor authz.Actor, schoolID, teacherID uuid.UUID, subjectIDs []uuid.UUID) error {
	if err := authz.EnsureCanAssignSubjects(actor, schoolID); err != nil {
		return err
	}

	var teacher userModel.TeacherModel
	err := s.DB.Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.ErrNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_subject_teacher_id = ?", teacher.TeacherID).
			Delete(&userModel.TeacherSubjectModel{}).Error; err != nil {
			return err
		}
		for _, subjectID := range subjectIDs {
			if err := tx.Create(&userModel.TeacherSubjectModel{
				TeacherSubjectTeacherID: teacher.TeacherID,
				TeacherSubjectSubjectID: subjectID,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
