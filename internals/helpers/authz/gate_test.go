package authz

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

func actorFor(role string, schoolID *uuid.UUID) Actor {
	return Actor{UserID: uuid.New(), Role: role, SchoolID: schoolID}
}

func TestEnsureSameSchool_TenantIsolation(t *testing.T) {
	schoolA := uuid.New()
	schoolB := uuid.New()

	// semua role ber-sekolah ditolak lintas tenant, apapun rolenya
	for _, role := range constants.SchoolScopedRoles {
		a := actorFor(role, &schoolA)
		if err := EnsureSameSchool(a, schoolB); !errors.Is(err, ErrCrossTenant) {
			t.Errorf("role %s: lintas sekolah harus ErrCrossTenant, dapat %v", role, err)
		}
		if err := EnsureSameSchool(a, schoolA); err != nil {
			t.Errorf("role %s: sekolah sendiri harus lolos, dapat %v", role, err)
		}
	}

	// super_admin bebas lintas tenant
	super := actorFor(constants.RoleSuperAdmin, nil)
	if err := EnsureSameSchool(super, schoolB); err != nil {
		t.Errorf("super_admin harus lolos, dapat %v", err)
	}
}

func TestEnsureCanManageUsers(t *testing.T) {
	school := uuid.New()
	tests := []struct {
		role    string
		wantErr error
	}{
		{constants.RoleSeniorAdmin, nil},
		{constants.RoleJuniorAdmin, ErrForbidden},
		{constants.RoleTeacher, ErrForbidden},
		{constants.RoleStudent, ErrForbidden},
	}
	for _, tt := range tests {
		a := actorFor(tt.role, &school)
		err := EnsureCanManageUsers(a, school)
		if tt.wantErr == nil && err != nil {
			t.Errorf("role %s: harus lolos, dapat %v", tt.role, err)
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("role %s: harus %v, dapat %v", tt.role, tt.wantErr, err)
		}
	}
}

func TestJuniorAdmin_ReadYesWriteNo(t *testing.T) {
	school := uuid.New()
	junior := actorFor(constants.RoleJuniorAdmin, &school)

	if err := EnsureAdminRead(junior, school); err != nil {
		t.Errorf("junior admin harus boleh baca, dapat %v", err)
	}
	if err := EnsureCanManageUsers(junior, school); !errors.Is(err, ErrForbidden) {
		t.Errorf("junior admin tidak boleh kelola user, dapat %v", err)
	}
	if err := EnsureCanChangeSubscription(junior, school); !errors.Is(err, ErrForbidden) {
		t.Errorf("junior admin tidak boleh ubah subscription, dapat %v", err)
	}
	if err := EnsureCanAssignSubjects(junior, school); !errors.Is(err, ErrForbidden) {
		t.Errorf("junior admin tidak boleh assign mapel, dapat %v", err)
	}
}

func TestEnsureTeachesPair(t *testing.T) {
	school := uuid.New()
	teacher := actorFor(constants.RoleTeacher, &school)

	class1, class2 := uuid.New(), uuid.New()
	math, physics := uuid.New(), uuid.New()

	assigned := []TeachingPair{
		{ClassLevelID: class1, SubjectID: math},
		{ClassLevelID: class2, SubjectID: physics},
	}

	if err := EnsureTeachesPair(teacher, school, assigned, class1, math); err != nil {
		t.Errorf("pasangan yang diampu harus lolos, dapat %v", err)
	}
	// kombinasi silang dari pasangan valid tetap ditolak
	if err := EnsureTeachesPair(teacher, school, assigned, class1, physics); !errors.Is(err, ErrForbidden) {
		t.Errorf("pasangan yang tidak diampu harus ErrForbidden, dapat %v", err)
	}
	if err := EnsureTeachesPair(teacher, school, nil, class1, math); !errors.Is(err, ErrForbidden) {
		t.Errorf("teacher tanpa class_subjects harus ErrForbidden, dapat %v", err)
	}

	// student tidak pernah boleh lewat gate ini
	student := actorFor(constants.RoleStudent, &school)
	if err := EnsureTeachesPair(student, school, assigned, class1, math); !errors.Is(err, ErrForbidden) {
		t.Errorf("student harus ErrForbidden, dapat %v", err)
	}

	// lintas sekolah kalah duluan sebelum cek pasangan
	otherSchool := uuid.New()
	if err := EnsureTeachesPair(teacher, otherSchool, assigned, class1, math); !errors.Is(err, ErrCrossTenant) {
		t.Errorf("lintas sekolah harus ErrCrossTenant, dapat %v", err)
	}
}

func TestEnsureSelfStudent(t *testing.T) {
	school := uuid.New()
	student := actorFor(constants.RoleStudent, &school)

	if err := EnsureSelfStudent(student, school, student.UserID); err != nil {
		t.Errorf("baris milik sendiri harus lolos, dapat %v", err)
	}
	if err := EnsureSelfStudent(student, school, uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Errorf("baris student lain harus ErrForbidden, dapat %v", err)
	}

	// admin sekolah yang sama boleh lihat
	senior := actorFor(constants.RoleSeniorAdmin, &school)
	if err := EnsureSelfStudent(senior, school, uuid.New()); err != nil {
		t.Errorf("senior admin harus boleh, dapat %v", err)
	}
}

func TestEnsureSelfOrManager(t *testing.T) {
	school := uuid.New()
	teacher := actorFor(constants.RoleTeacher, &school)

	// teacher boleh edit profil sendiri (self-service carve-out)
	if err := EnsureSelfOrManager(teacher, school, teacher.UserID); err != nil {
		t.Errorf("edit profil sendiri harus lolos, dapat %v", err)
	}
	if err := EnsureSelfOrManager(teacher, school, uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Errorf("edit profil orang lain harus ErrForbidden, dapat %v", err)
	}
}

func TestActorValid(t *testing.T) {
	school := uuid.New()
	tests := []struct {
		name string
		a    Actor
		want bool
	}{
		{"super admin tanpa sekolah", Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}, true},
		{"super admin dengan sekolah", Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin, SchoolID: &school}, false},
		{"teacher dengan sekolah", Actor{UserID: uuid.New(), Role: constants.RoleTeacher, SchoolID: &school}, true},
		{"teacher tanpa sekolah", Actor{UserID: uuid.New(), Role: constants.RoleTeacher}, false},
		{"role tidak dikenal", Actor{UserID: uuid.New(), Role: "dkm", SchoolID: &school}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
