// internals/helpers/authz/gate.go
//
// Gate: titik keputusan policy sebelum baca/tulis data ber-tenant.
// Semua fungsi pure (tanpa DB) supaya gampang dites; caller yang load
// data pendukung (mis. daftar pasangan kelas-mapel milik teacher) lalu
// panggil check-nya DI DALAM transaksi yang sama dengan mutasinya.
package authz

import (
	"log"

	"github.com/google/uuid"
)

// TeachingPair = satu entri class_subjects milik seorang teacher.
type TeachingPair struct {
	ClassLevelID uuid.UUID
	SubjectID    uuid.UUID
}

// EnsureSameSchool — rule inti multi-tenancy: selain super_admin, target harus
// satu sekolah dengan actor. Pelanggaran selalu ErrCrossTenant, apapun rolenya.
func EnsureSameSchool(a Actor, targetSchoolID uuid.UUID) error {
	if a.IsSuperAdmin() {
		return nil
	}
	if a.SchoolID == nil || *a.SchoolID != targetSchoolID {
		log.Printf("[AUTHZ] cross-tenant: user=%s role=%s target_school=%s", a.UserID, a.Role, targetSchoolID)
		return ErrCrossTenant
	}
	return nil
}

// EnsureAdminRead — senior & junior admin sama-sama boleh baca data sekolahnya.
func EnsureAdminRead(a Actor, targetSchoolID uuid.UUID) error {
	if err := EnsureSameSchool(a, targetSchoolID); err != nil {
		return err
	}
	if a.IsSuperAdmin() || a.IsSchoolAdmin() {
		return nil
	}
	return ErrForbidden
}

// EnsureCanManageUsers — create/delete user, edit profil orang lain:
// khusus senior_admin. Junior admin ditolak walau satu sekolah.
func EnsureCanManageUsers(a Actor, targetSchoolID uuid.UUID) error {
	if err := EnsureSameSchool(a, targetSchoolID); err != nil {
		return err
	}
	if a.IsSuperAdmin() || a.IsSeniorAdmin() {
		return nil
	}
	return ErrForbidden
}

// EnsureCanChangeSubscription — upgrade/downgrade langganan: senior only.
func EnsureCanChangeSubscription(a Actor, targetSchoolID uuid.UUID) error {
	return EnsureCanManageUsers(a, targetSchoolID)
}

// EnsureCanAssignSubjects — set mapel yang diampu teacher: senior only.
func EnsureCanAssignSubjects(a Actor, targetSchoolID uuid.UUID) error {
	return EnsureCanManageUsers(a, targetSchoolID)
}

// EnsureTeachesPair — teacher hanya boleh menulis nilai/tugas untuk
// pasangan (kelas, mapel) yang ada di class_subjects miliknya.
// Dicek per-write, bukan cuma di UI.
func EnsureTeachesPair(a Actor, targetSchoolID uuid.UUID, assigned []TeachingPair, classLevelID, subjectID uuid.UUID) error {
	if err := EnsureSameSchool(a, targetSchoolID); err != nil {
		return err
	}
	if a.IsSuperAdmin() {
		return nil
	}
	if !a.IsTeacher() {
		return ErrForbidden
	}
	for _, p := range assigned {
		if p.ClassLevelID == classLevelID && p.SubjectID == subjectID {
			return nil
		}
	}
	log.Printf("[AUTHZ] teacher %s tidak mengampu (class=%s, subject=%s)", a.UserID, classLevelID, subjectID)
	return ErrForbidden
}

// EnsureSelfStudent — student cuma boleh menyentuh baris miliknya
// sendiri (target.student.user_id == actor.user_id).
func EnsureSelfStudent(a Actor, targetSchoolID, ownerUserID uuid.UUID) error {
	if err := EnsureSameSchool(a, targetSchoolID); err != nil {
		return err
	}
	if a.IsSuperAdmin() || a.IsSchoolAdmin() {
		return nil
	}
	if a.UserID != ownerUserID {
		return ErrForbidden
	}
	return nil
}

// EnsureSelfOrManager — self-service carve-out: user boleh edit
// profilnya sendiri; selain itu butuh senior_admin.
func EnsureSelfOrManager(a Actor, targetSchoolID, ownerUserID uuid.UUID) error {
	if err := EnsureSameSchool(a, targetSchoolID); err != nil {
		return err
	}
	if a.UserID == ownerUserID {
		return nil
	}
	if a.IsSuperAdmin() || a.IsSeniorAdmin() {
		return nil
	}
	return ErrForbidden
}
