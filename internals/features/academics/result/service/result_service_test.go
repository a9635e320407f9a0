package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	resultDTO "schoolku_backend/internals/features/academics/result/dto"
	resultModel "schoolku_backend/internals/features/academics/result/model"
)

func TestValidateBatchRow(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		maxScore float64
		wantErr  bool
	}{
		{"skor nol valid", 0, 100, false},
		{"skor di tengah valid", 67.5, 100, false},
		{"skor tepat maksimum valid", 100, 100, false},
		{"skor melebihi maksimum ditolak", 101, 100, true},
		{"skor negatif ditolak", -1, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatchRow(tt.score, tt.maxScore)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBatchRow(%v, %v) err = %v, wantErr %v",
					tt.score, tt.maxScore, err, tt.wantErr)
			}
		})
	}
}

func TestComputePositions(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("urutan menurun", func(t *testing.T) {
		got := ComputePositions([]StudentTotal{
			{StudentID: a, Total: 50},
			{StudentID: b, Total: 90},
			{StudentID: c, Total: 70},
		})
		want := map[uuid.UUID]string{b: "1/3", c: "2/3", a: "3/3"}
		for id, pos := range want {
			if got[id] != pos {
				t.Errorf("posisi %s = %s, want %s", id, got[id], pos)
			}
		}
	})

	t.Run("nilai seri dapat posisi sama", func(t *testing.T) {
		got := ComputePositions([]StudentTotal{
			{StudentID: a, Total: 90},
			{StudentID: b, Total: 90},
			{StudentID: c, Total: 70},
			{StudentID: d, Total: 60},
		})
		if got[a] != "1/4" || got[b] != "1/4" {
			t.Errorf("seri harus sama-sama 1/4, got %s dan %s", got[a], got[b])
		}
		// Ranking kompetisi: setelah dua peringkat 1, berikutnya peringkat 3
		if got[c] != "3/4" {
			t.Errorf("posisi setelah seri = %s, want 3/4", got[c])
		}
		if got[d] != "4/4" {
			t.Errorf("posisi terakhir = %s, want 4/4", got[d])
		}
	})

	t.Run("satu siswa", func(t *testing.T) {
		got := ComputePositions([]StudentTotal{{StudentID: a, Total: 10}})
		if got[a] != "1/1" {
			t.Errorf("posisi = %s, want 1/1", got[a])
		}
	})

	t.Run("kosong", func(t *testing.T) {
		if got := ComputePositions(nil); len(got) != 0 {
			t.Errorf("harusnya kosong, got %v", got)
		}
	})
}

func TestPartitionBatchRows(t *testing.T) {
	t.Run("baris valid tetap lolos di samping baris rusak", func(t *testing.T) {
		// 5 siswa kelas + 2 id asing: 5 siap simpan, tepat 2 error
		inClass := map[uuid.UUID]bool{}
		var rows []resultDTO.BatchResultRow
		for i := 0; i < 5; i++ {
			id := uuid.New()
			inClass[id] = true
			rows = append(rows, resultDTO.BatchResultRow{StudentID: id, ExamType: "ca1", Score: 70})
		}
		strangerA, strangerB := uuid.New(), uuid.New()
		rows = append(rows,
			resultDTO.BatchResultRow{StudentID: strangerA, ExamType: "ca1", Score: 50},
			resultDTO.BatchResultRow{StudentID: strangerB, ExamType: "ca1", Score: 60},
		)

		valid, rowErrs := PartitionBatchRows(rows, 100, inClass)
		if len(valid) != 5 {
			t.Errorf("baris valid = %d, want 5", len(valid))
		}
		if len(rowErrs) != 2 {
			t.Fatalf("baris error = %d, want 2", len(rowErrs))
		}
		if rowErrs[0].Index != 5 || rowErrs[1].Index != 6 {
			t.Errorf("index error = %d,%d, want 5,6", rowErrs[0].Index, rowErrs[1].Index)
		}
	})

	t.Run("skor di luar rentang masuk error", func(t *testing.T) {
		id := uuid.New()
		valid, rowErrs := PartitionBatchRows([]resultDTO.BatchResultRow{
			{StudentID: id, ExamType: "ca1", Score: 120},
		}, 100, map[uuid.UUID]bool{id: true})
		if len(valid) != 0 || len(rowErrs) != 1 {
			t.Errorf("valid=%d errors=%d, want 0 dan 1", len(valid), len(rowErrs))
		}
	})

	t.Run("duplikat student+exam_type dalam satu payload ditolak", func(t *testing.T) {
		id := uuid.New()
		inClass := map[uuid.UUID]bool{id: true}
		valid, rowErrs := PartitionBatchRows([]resultDTO.BatchResultRow{
			{StudentID: id, ExamType: "ca1", Score: 70},
			{StudentID: id, ExamType: "ca1", Score: 80},
			{StudentID: id, ExamType: "ca2", Score: 90},
		}, 100, inClass)
		if len(valid) != 2 {
			t.Errorf("baris valid = %d, want 2", len(valid))
		}
		if len(rowErrs) != 1 || rowErrs[0].Index != 1 {
			t.Errorf("duplikat harus error di index 1, got %+v", rowErrs)
		}
	})

	t.Run("index asli payload terjaga", func(t *testing.T) {
		good, bad := uuid.New(), uuid.New()
		valid, _ := PartitionBatchRows([]resultDTO.BatchResultRow{
			{StudentID: bad, ExamType: "ca1", Score: 50},
			{StudentID: good, ExamType: "ca1", Score: 70},
		}, 100, map[uuid.UUID]bool{good: true})
		if len(valid) != 1 || valid[0].Index != 1 {
			t.Errorf("baris valid harus membawa index 1, got %+v", valid)
		}
	})
}

// Upsert idempoten hanya kalau kolom ON CONFLICT persis sama dengan
// natural key unik di model — dan kolom key itu tidak boleh ikut
// ditimpa saat konflik.
func TestResultUpsertTargetsNaturalKey(t *testing.T) {
	naturalKey := map[string]bool{}
	tp := reflect.TypeOf(resultModel.ResultModel{})
	for i := 0; i < tp.NumField(); i++ {
		tag := tp.Field(i).Tag.Get("gorm")
		if !strings.Contains(tag, "uniqueIndex:idx_results_natural_key") {
			continue
		}
		for _, part := range strings.Split(tag, ";") {
			if strings.HasPrefix(part, "column:") {
				naturalKey[strings.TrimPrefix(part, "column:")] = true
			}
		}
	}

	if len(naturalKey) != 4 {
		t.Fatalf("natural key harus 4 kolom, dapat %d", len(naturalKey))
	}
	if len(resultConflictColumns) != len(naturalKey) {
		t.Fatalf("kolom konflik = %d, want %d", len(resultConflictColumns), len(naturalKey))
	}
	for _, col := range resultConflictColumns {
		if !naturalKey[col.Name] {
			t.Errorf("kolom konflik %s bukan bagian natural key", col.Name)
		}
	}
	for _, col := range resultUpsertColumns {
		if naturalKey[col] {
			t.Errorf("kolom natural key %s tidak boleh ditimpa saat konflik", col)
		}
	}
}

func TestTermOverallExamType(t *testing.T) {
	if got := TermOverallExamType(1); got != "term1_overall" {
		t.Errorf("TermOverallExamType(1) = %s", got)
	}
	if got := TermOverallExamType(3); got != "term3_overall" {
		t.Errorf("TermOverallExamType(3) = %s", got)
	}
}
