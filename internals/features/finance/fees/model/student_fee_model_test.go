package model

import "testing"

func TestComputeFeeStatus(t *testing.T) {
	tests := []struct {
		name string
		paid int
		due  int
		want string
	}{
		{"belum bayar sama sekali", 0, 1000, FeeStatusPending},
		{"bayar sebagian", 400, 1000, FeeStatusPartial},
		{"lunas tepat", 1000, 1000, FeeStatusPaid},
		{"bayar lebih tetap lunas", 1200, 1000, FeeStatusPaid},
		{"tagihan nol tanpa bayaran", 0, 0, FeeStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeFeeStatus(tt.paid, tt.due); got != tt.want {
				t.Errorf("ComputeFeeStatus(%d, %d) = %s, want %s", tt.paid, tt.due, got, tt.want)
			}
		})
	}
}

func TestOutstandingIDR(t *testing.T) {
	tests := []struct {
		name string
		paid int
		due  int
		want int
	}{
		{"sisa normal", 400, 1000, 600},
		{"lunas", 1000, 1000, 0},
		{"bayar lebih tidak negatif", 1200, 1000, 0},
		{"belum bayar", 0, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutstandingIDR(tt.paid, tt.due); got != tt.want {
				t.Errorf("OutstandingIDR(%d, %d) = %d, want %d", tt.paid, tt.due, got, tt.want)
			}
		})
	}
}
