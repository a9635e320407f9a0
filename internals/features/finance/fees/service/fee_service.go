// internals/features/finance/fees/service/fee_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	feeDTO "schoolku_backend/internals/features/finance/fees/dto"
	feeModel "schoolku_backend/internals/features/finance/fees/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/authz"
)

type FeeService struct {
	DB *gorm.DB
}

func NewFeeService(db *gorm.DB) *FeeService {
	return &FeeService{DB: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// GenerateReceiptNo: "RCP-20260301-AB12CD34" — unik global (8 hex uuid).
// Index unik di DB tetap jadi penjaga terakhir.
func GenerateReceiptNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("RCP-%s-%s", now.Format("20060102"), suffix)
}

/* ======================= FEE STRUCTURES ======================= */

// CreateFeeStructure: senior admin; total dihitung server, bukan klien.
func (s *FeeService) CreateFeeStructure(actor authz.Actor, schoolID uuid.UUID, req *feeDTO.CreateFeeStructureRequest) (*feeModel.FeeStructureModel, error) {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return nil, err
	}

	// Tingkat kelas harus milik sekolah actor
	var count int64
	if err := s.DB.Table("class_levels").
		Where("class_level_id = ? AND class_level_school_id = ? AND class_level_deleted_at IS NULL",
			req.ClassLevelID, schoolID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, authz.ErrNotFound
	}

	fs := feeModel.FeeStructureModel{
		FeeStructureSchoolID:       schoolID,
		FeeStructureClassLevelID:   req.ClassLevelID,
		FeeStructureAcademicYear:   req.AcademicYear,
		FeeStructureTuitionIDR:     req.TuitionIDR,
		FeeStructureDevelopmentIDR: req.DevelopmentIDR,
		FeeStructureOtherIDR:       req.OtherIDR,
		FeeStructureTotalIDR:       req.TuitionIDR + req.DevelopmentIDR + req.OtherIDR,
	}
	if err := s.DB.Create(&fs).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, authz.ErrConflict
		}
		return nil, err
	}
	return &fs, nil
}

/* ======================= ASSIGN ======================= */

// AssignStudentFee membuat tagihan siswa dari struktur biaya.
func (s *FeeService) AssignStudentFee(actor authz.Actor, schoolID uuid.UUID, req *feeDTO.AssignStudentFeeRequest) (*feeModel.StudentFeeModel, error) {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return nil, err
	}

	var student userModel.StudentModel
	if err := s.DB.Where("student_id = ? AND student_school_id = ?", req.StudentID, schoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrNotFound
		}
		return nil, err
	}

	var fs feeModel.FeeStructureModel
	if err := s.DB.Where("fee_structure_id = ? AND fee_structure_school_id = ?", req.FeeStructureID, schoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrNotFound
		}
		return nil, err
	}

	due := fs.FeeStructureTotalIDR
	if req.AmountDueIDR != nil {
		due = *req.AmountDueIDR
	}

	sf := feeModel.StudentFeeModel{
		StudentFeeSchoolID:       schoolID,
		StudentFeeStudentID:      student.StudentID,
		StudentFeeFeeStructureID: fs.FeeStructureID,
		StudentFeeAmountDueIDR:   due,
		StudentFeeStatus:         feeModel.FeeStatusPending,
	}
	if err := s.DB.Create(&sf).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, authz.ErrConflict
		}
		return nil, err
	}
	return &sf, nil
}

/* ======================= RECORD PAYMENT ======================= */

// RecordPayment: SELECT ... FOR UPDATE di baris tagihan, insert event
// pembayaran, recompute amount_paid + status — SATU transaksi.
// amount_paid tidak pernah ditulis tanpa baris fee_payments.
func (s *FeeService) RecordPayment(actor authz.Actor, schoolID uuid.UUID, req *feeDTO.RecordPaymentRequest) (*feeDTO.RecordPaymentResponse, error) {
	if err := authz.EnsureCanManageUsers(actor, schoolID); err != nil {
		return nil, err
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	var resp feeDTO.RecordPaymentResponse
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var sf feeModel.StudentFeeModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_fee_id = ? AND student_fee_school_id = ?", req.StudentFeeID, schoolID).
			First(&sf).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return authz.ErrNotFound
			}
			return err
		}

		payment := feeModel.FeePaymentModel{
			FeePaymentStudentFeeID: sf.StudentFeeID,
			FeePaymentReceiptNo:    GenerateReceiptNo(paidAt),
			FeePaymentAmountIDR:    req.AmountIDR,
			FeePaymentMethod:       req.Method,
			FeePaymentRecordedBy:   actor.UserID,
			FeePaymentPaidAt:       paidAt,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		newPaid := sf.StudentFeeAmountPaidIDR + req.AmountIDR
		newStatus := feeModel.ComputeFeeStatus(newPaid, sf.StudentFeeAmountDueIDR)
		if err := tx.Model(&feeModel.StudentFeeModel{}).
			Where("student_fee_id = ?", sf.StudentFeeID).
			Updates(map[string]any{
				"student_fee_amount_paid_idr": newPaid,
				"student_fee_status":          newStatus,
			}).Error; err != nil {
			return err
		}

		resp = feeDTO.RecordPaymentResponse{
			ReceiptNo:      payment.FeePaymentReceiptNo,
			AmountPaidIDR:  newPaid,
			OutstandingIDR: feeModel.OutstandingIDR(newPaid, sf.StudentFeeAmountDueIDR),
			Status:         newStatus,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &resp, nil
}

/* ======================= READ ======================= */

// StudentLedger: tagihan + riwayat pembayaran satu siswa.
// Siswa hanya miliknya sendiri; admin siapa pun di sekolahnya.
func (s *FeeService) StudentLedger(actor authz.Actor, schoolID, studentID uuid.UUID) ([]feeDTO.StudentFeeSummary, []feeModel.FeePaymentModel, error) {
	var student userModel.StudentModel
	if err := s.DB.Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, authz.ErrNotFound
		}
		return nil, nil, err
	}

	if actor.IsStudent() {
		if err := authz.EnsureSelfStudent(actor, schoolID, student.StudentUserID); err != nil {
			return nil, nil, err
		}
	} else if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
		return nil, nil, err
	}

	type feeRow struct {
		StudentFeeID  uuid.UUID
		AcademicYear  string
		AmountDueIDR  int
		AmountPaidIDR int
		Status        string
	}
	var feeRows []feeRow
	if err := s.DB.Table("student_fees").
		Select(`student_fees.student_fee_id,
			fee_structures.fee_structure_academic_year AS academic_year,
			student_fees.student_fee_amount_due_idr AS amount_due_idr,
			student_fees.student_fee_amount_paid_idr AS amount_paid_idr,
			student_fees.student_fee_status AS status`).
		Joins("JOIN fee_structures ON fee_structures.fee_structure_id = student_fees.student_fee_fee_structure_id").
		Where("student_fees.student_fee_student_id = ? AND student_fees.student_fee_deleted_at IS NULL", studentID).
		Order("fee_structures.fee_structure_academic_year DESC").
		Scan(&feeRows).Error; err != nil {
		return nil, nil, err
	}

	summaries := make([]feeDTO.StudentFeeSummary, 0, len(feeRows))
	feeIDs := make([]uuid.UUID, 0, len(feeRows))
	for _, r := range feeRows {
		summaries = append(summaries, feeDTO.StudentFeeSummary{
			StudentFeeID:   r.StudentFeeID,
			AcademicYear:   r.AcademicYear,
			AmountDueIDR:   r.AmountDueIDR,
			AmountPaidIDR:  r.AmountPaidIDR,
			OutstandingIDR: feeModel.OutstandingIDR(r.AmountPaidIDR, r.AmountDueIDR),
			Status:         r.Status,
		})
		feeIDs = append(feeIDs, r.StudentFeeID)
	}

	var payments []feeModel.FeePaymentModel
	if len(feeIDs) > 0 {
		if err := s.DB.Where("fee_payment_student_fee_id IN ?", feeIDs).
			Order("fee_payment_paid_at DESC").
			Find(&payments).Error; err != nil {
			return nil, nil, err
		}
	}

	return summaries, payments, nil
}
