package controller

import (
	"errors"
	"testing"

	"schoolku_backend/internals/helpers/authz"
)

func TestEnsureCurriculumRefs(t *testing.T) {
	tests := []struct {
		name         string
		levelFound   bool
		subjectFound bool
		teacherFound bool
		wantErr      bool
	}{
		{"semua referensi ketemu", true, true, true, false},
		{"tingkat kelas tidak ketemu", false, true, true, true},
		{"mapel tidak ada di katalog", true, false, true, true},
		{"guru tidak ketemu", true, true, false, true},
		{"semua hilang", false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureCurriculumRefs(tt.levelFound, tt.subjectFound, tt.teacherFound)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			// Referensi hilang tidak boleh bocor sebagai forbidden —
			// selalu not found supaya tenant lain tak bisa diraba
			if err != nil && !errors.Is(err, authz.ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
		})
	}
}
