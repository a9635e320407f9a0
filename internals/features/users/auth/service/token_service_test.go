package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func parseClaims(t *testing.T, raw, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	return claims
}

func TestGenerateAccessToken_SchoolClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	schoolID := uuid.New()
	teacher := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "guru01",
		Role:     constants.RoleTeacher,
		SchoolID: &schoolID,
	}

	raw, err := GenerateAccessToken(teacher)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims := parseClaims(t, raw, "test-secret")

	if claims["id"] != teacher.ID.String() {
		t.Errorf("klaim id = %v, want %s", claims["id"], teacher.ID)
	}
	if claims["role"] != constants.RoleTeacher {
		t.Errorf("klaim role = %v", claims["role"])
	}
	// Tenant HANYA dari klaim login — harus ada untuk role sekolah
	if claims["school_id"] != schoolID.String() {
		t.Errorf("klaim school_id = %v, want %s", claims["school_id"], schoolID)
	}
}

func TestGenerateAccessToken_SuperAdminHasNoSchool(t *testing.T) {
	configs.JWTSecret = "test-secret"

	super := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "root",
		Role:     constants.RoleSuperAdmin,
	}

	raw, err := GenerateAccessToken(super)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims := parseClaims(t, raw, "test-secret")

	if _, ok := claims["school_id"]; ok {
		t.Error("super_admin tidak boleh punya klaim school_id")
	}
}

func TestHashRefreshToken(t *testing.T) {
	configs.JWTRefreshSecret = "refresh-secret"

	h1 := HashRefreshToken("token-a")
	h2 := HashRefreshToken("token-a")
	h3 := HashRefreshToken("token-b")

	if h1 != h2 {
		t.Error("hash harus deterministik untuk input sama")
	}
	if h1 == h3 {
		t.Error("input beda tidak boleh menghasilkan hash sama")
	}
	if h1 == "token-a" {
		t.Error("token tidak boleh tersimpan plaintext")
	}
}
