package service

import (
	"reflect"
	"strings"
	"testing"
	"time"

	assignmentModel "schoolku_backend/internals/features/academics/assignment/model"
)

func TestCanSubmitAt(t *testing.T) {
	due := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"jauh sebelum deadline", due.Add(-48 * time.Hour), true},
		{"sesaat sebelum deadline", due.Add(-time.Second), true},
		{"tepat di deadline masih diterima", due, true},
		{"sedetik lewat deadline ditolak", due.Add(time.Second), false},
		{"sehari lewat deadline ditolak", due.Add(24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSubmitAt(due, tt.now); got != tt.want {
				t.Errorf("CanSubmitAt(%v, %v) = %v, want %v", due, tt.now, got, tt.want)
			}
		})
	}
}

func gormColumnName(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

// Raw INSERT fan-out tidak lewat hook create GORM, jadi setiap kolom
// NOT NULL tanpa default DB harus muncul eksplisit di statement —
// kalau tidak, Postgres menolak dan seluruh transaksi create batal.
func TestFanOutSQLFillsRequiredColumns(t *testing.T) {
	tp := reflect.TypeOf(assignmentModel.StudentAssignmentModel{})
	for i := 0; i < tp.NumField(); i++ {
		tag := tp.Field(i).Tag.Get("gorm")
		if !strings.Contains(tag, "not null") || strings.Contains(tag, "default:") {
			continue
		}
		col := gormColumnName(tag)
		if col == "" {
			t.Fatalf("field %s tanpa nama kolom", tp.Field(i).Name)
		}
		if !strings.Contains(fanOutStudentAssignmentsSQL, col) {
			t.Errorf("kolom NOT NULL %s tidak diisi oleh fan-out insert", col)
		}
	}
}
