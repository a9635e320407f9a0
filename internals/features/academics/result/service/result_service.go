// internals/features/academics/result/service/result_service.go
package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentService "schoolku_backend/internals/features/academics/assignment/service"
	resultDTO "schoolku_backend/internals/features/academics/result/dto"
	resultModel "schoolku_backend/internals/features/academics/result/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/authz"
)

type ResultService struct {
	DB *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{DB: db}
}

// Kolom natural key untuk upsert ON CONFLICT.
var resultConflictColumns = []clause.Column{
	{Name: "result_student_id"},
	{Name: "result_subject_id"},
	{Name: "result_exam_type"},
	{Name: "result_date_taken"},
}

// Kolom yang ditimpa saat konflik — penulis terakhir menang.
var resultUpsertColumns = []string{
	"result_score", "result_max_score", "result_comment",
	"result_recorded_by", "result_position", "result_updated_at",
}

/* ======================= PURE HELPERS ======================= */

// ValidateBatchRow: cek skor terhadap max batch. Baris duplikat
// (student, exam_type) dalam satu batch juga ditolak oleh caller.
func ValidateBatchRow(score, maxScore float64) error {
	if score < 0 {
		return authz.NewValidationError("skor tidak boleh negatif")
	}
	if score > maxScore {
		return authz.NewValidationError("skor melebihi nilai maksimum")
	}
	return nil
}

type StudentTotal struct {
	StudentID uuid.UUID
	Total     float64
}

// ComputePositions: ranking kompetisi standar — nilai sama, posisi sama
// ("1/5, 1/5, 3/5, ..."). Return map student → "posisi/total".
func ComputePositions(totals []StudentTotal) map[uuid.UUID]string {
	sorted := make([]StudentTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})

	positions := make(map[uuid.UUID]string, len(sorted))
	n := len(sorted)
	rank := 0
	for i, st := range sorted {
		if i == 0 || st.Total < sorted[i-1].Total {
			rank = i + 1
		}
		positions[st.StudentID] = fmt.Sprintf("%d/%d", rank, n)
	}
	return positions
}

// TermOverallExamType: nama exam_type sintetis untuk agregat per term.
func TermOverallExamType(term int) string {
	return fmt.Sprintf("term%d_overall", term)
}

// BatchRowRef menjaga index asli baris payload supaya laporan error
// tetap menunjuk posisi yang dikirim caller.
type BatchRowRef struct {
	Index int
	Row   resultDTO.BatchResultRow
}

// PartitionBatchRows memisahkan baris siap simpan dari baris rusak tanpa
// menyentuh DB: siswa di luar kelas, skor di luar rentang, dan duplikat
// (student, exam_type) dalam satu payload masuk daftar error; sisanya
// tetap dipersist (partial success).
func PartitionBatchRows(rows []resultDTO.BatchResultRow, maxScore float64, inClass map[uuid.UUID]bool) ([]BatchRowRef, []resultDTO.BatchRowError) {
	var valid []BatchRowRef
	var rowErrs []resultDTO.BatchRowError
	seen := map[string]bool{}

	for i, row := range rows {
		if !inClass[row.StudentID] {
			rowErrs = append(rowErrs, resultDTO.BatchRowError{
				Index: i, Reason: "siswa tidak terdaftar di tingkat kelas ini",
			})
			continue
		}
		if err := ValidateBatchRow(row.Score, maxScore); err != nil {
			rowErrs = append(rowErrs, resultDTO.BatchRowError{Index: i, Reason: err.Error()})
			continue
		}
		dupKey := row.StudentID.String() + "|" + row.ExamType
		if seen[dupKey] {
			rowErrs = append(rowErrs, resultDTO.BatchRowError{
				Index: i, Reason: "baris duplikat untuk siswa dan jenis ujian yang sama",
			})
			continue
		}
		seen[dupKey] = true
		valid = append(valid, BatchRowRef{Index: i, Row: row})
	}
	return valid, rowErrs
}

/* ======================= SINGLE UPSERT ======================= */

// RecordResult: gate rule guru (pair kelas siswa × mapel harus diampu),
// lalu upsert di natural key — idempoten, input ganda tidak menggandakan
// baris, penulis terakhir menang.
func (s *ResultService) RecordResult(actor authz.Actor, schoolID uuid.UUID, req *resultDTO.RecordResultRequest) error {
	if err := ValidateBatchRow(req.Score, req.MaxScore); err != nil {
		return err
	}

	teacher, err := s.findTeacher(actor.UserID, schoolID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var student userModel.StudentModel
		err := tx.Where("student_id = ? AND student_school_id = ?", req.StudentID, schoolID).
			First(&student).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return authz.ErrNotFound
			}
			return err
		}
		if student.StudentClassLevelID == nil {
			return authz.NewValidationError("siswa belum punya tingkat kelas")
		}

		pairs, err := assignmentService.LoadTeachingPairs(tx, teacher.TeacherID)
		if err != nil {
			return err
		}
		if err := authz.EnsureTeachesPair(actor, schoolID, pairs,
			*student.StudentClassLevelID, req.SubjectID); err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   resultConflictColumns,
			DoUpdates: clause.AssignmentColumns(resultUpsertColumns),
		}).Create(&resultModel.ResultModel{
			ResultSchoolID:   schoolID,
			ResultStudentID:  req.StudentID,
			ResultSubjectID:  req.SubjectID,
			ResultExamType:   req.ExamType,
			ResultDateTaken:  req.DateTaken,
			ResultScore:      req.Score,
			ResultMaxScore:   req.MaxScore,
			ResultComment:    req.Comment,
			ResultRecordedBy: teacher.TeacherID,
		}).Error
	})
}

/* ======================= BATCH ======================= */

// BatchUpload: satu gate check untuk (kelas, mapel) batch, lalu per
// baris — baris rusak dikumpulkan, baris valid tetap masuk. Setelah
// baris tersimpan, agregat term{N}_overall per siswa di-upsert berikut
// posisi peringkat kelas versi batch ini.
func (s *ResultService) BatchUpload(actor authz.Actor, schoolID uuid.UUID, req *resultDTO.BatchUploadRequest) (*resultDTO.BatchUploadResponse, error) {
	teacher, err := s.findTeacher(actor.UserID, schoolID)
	if err != nil {
		return nil, err
	}

	pairs, err := assignmentService.LoadTeachingPairs(s.DB, teacher.TeacherID)
	if err != nil {
		return nil, err
	}
	if err := authz.EnsureTeachesPair(actor, schoolID, pairs, req.ClassLevelID, req.SubjectID); err != nil {
		return nil, err
	}

	// Siswa valid = terdaftar di sekolah DAN tingkat kelas batch
	var classStudents []uuid.UUID
	if err := s.DB.Model(&userModel.StudentModel{}).
		Where("student_school_id = ? AND student_class_level_id = ?", schoolID, req.ClassLevelID).
		Pluck("student_id", &classStudents).Error; err != nil {
		return nil, err
	}
	inClass := make(map[uuid.UUID]bool, len(classStudents))
	for _, id := range classStudents {
		inClass[id] = true
	}

	validRows, rowErrs := PartitionBatchRows(req.Rows, req.MaxScore, inClass)
	resp := &resultDTO.BatchUploadResponse{
		Errors:      rowErrs,
		FailedCount: len(rowErrs),
	}
	totals := map[uuid.UUID]float64{}
	counts := map[uuid.UUID]int{}

	for _, ref := range validRows {
		row := ref.Row
		err := s.DB.Clauses(clause.OnConflict{
			Columns:   resultConflictColumns,
			DoUpdates: clause.AssignmentColumns(resultUpsertColumns),
		}).Create(&resultModel.ResultModel{
			ResultSchoolID:   schoolID,
			ResultStudentID:  row.StudentID,
			ResultSubjectID:  req.SubjectID,
			ResultExamType:   row.ExamType,
			ResultDateTaken:  req.DateTaken,
			ResultScore:      row.Score,
			ResultMaxScore:   req.MaxScore,
			ResultRecordedBy: teacher.TeacherID,
		}).Error
		if err != nil {
			resp.Errors = append(resp.Errors, resultDTO.BatchRowError{
				Index: ref.Index, Reason: "gagal menyimpan baris",
			})
			resp.FailedCount++
			continue
		}
		resp.SavedCount++
		totals[row.StudentID] += row.Score
		counts[row.StudentID]++
	}

	// Agregat + peringkat hanya dari baris yang berhasil
	if len(totals) > 0 {
		studentTotals := make([]StudentTotal, 0, len(totals))
		for id, total := range totals {
			studentTotals = append(studentTotals, StudentTotal{StudentID: id, Total: total})
		}
		positions := ComputePositions(studentTotals)

		overallType := TermOverallExamType(req.Term)
		for _, st := range studentTotals {
			pos := positions[st.StudentID]
			if err := s.DB.Clauses(clause.OnConflict{
				Columns:   resultConflictColumns,
				DoUpdates: clause.AssignmentColumns(resultUpsertColumns),
			}).Create(&resultModel.ResultModel{
				ResultSchoolID:   schoolID,
				ResultStudentID:  st.StudentID,
				ResultSubjectID:  req.SubjectID,
				ResultExamType:   overallType,
				ResultDateTaken:  req.DateTaken,
				ResultScore:      st.Total,
				ResultMaxScore:   req.MaxScore * float64(counts[st.StudentID]),
				ResultPosition:   &pos,
				ResultRecordedBy: teacher.TeacherID,
			}).Error; err != nil {
				return nil, err
			}
		}
	}

	return resp, nil
}

/* ======================= READ ======================= */

// StudentResults: siswa lihat miliknya sendiri, admin lihat siapa pun
// di sekolahnya, guru lihat siswa di kelas yang dia ampu.
func (s *ResultService) StudentResults(actor authz.Actor, schoolID, studentID uuid.UUID) ([]resultDTO.StudentResultRow, error) {
	var student userModel.StudentModel
	err := s.DB.Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrNotFound
		}
		return nil, err
	}

	switch {
	case actor.IsStudent():
		if err := authz.EnsureSelfStudent(actor, schoolID, student.StudentUserID); err != nil {
			return nil, err
		}
	case actor.IsTeacher():
		teacher, err := s.findTeacher(actor.UserID, schoolID)
		if err != nil {
			return nil, err
		}
		pairs, err := assignmentService.LoadTeachingPairs(s.DB, teacher.TeacherID)
		if err != nil {
			return nil, err
		}
		if student.StudentClassLevelID == nil {
			return nil, authz.ErrForbidden
		}
		teachesClass := false
		for _, p := range pairs {
			if p.ClassLevelID == *student.StudentClassLevelID {
				teachesClass = true
				break
			}
		}
		if !teachesClass {
			return nil, authz.ErrForbidden
		}
	default:
		if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
			return nil, err
		}
	}

	var rows []resultDTO.StudentResultRow
	err = s.DB.Model(&resultModel.ResultModel{}).
		Select(`result_id, result_subject_id AS subject_id, result_exam_type AS exam_type,
			result_date_taken AS date_taken, result_score AS score,
			result_max_score AS max_score, result_position AS position,
			result_comment AS comment`).
		Where("result_student_id = ? AND result_school_id = ?", studentID, schoolID).
		Order("result_date_taken DESC, result_exam_type ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ResultService) findTeacher(userID, schoolID uuid.UUID) (*userModel.TeacherModel, error) {
	var teacher userModel.TeacherModel
	err := s.DB.Where("teacher_user_id = ? AND teacher_school_id = ?", userID, schoolID).
		First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrProfileMissing
		}
		return nil, err
	}
	return &teacher, nil
}
