package service

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateReceiptNo(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	got := GenerateReceiptNo(now)
	if !strings.HasPrefix(got, "RCP-20260301-") {
		t.Errorf("receipt = %s, want prefix RCP-20260301-", got)
	}
	if len(got) != len("RCP-20260301-")+8 {
		t.Errorf("receipt = %s, panjang suffix harus 8", got)
	}

	// Dua nomor beruntun tidak boleh sama
	if other := GenerateReceiptNo(now); other == got {
		t.Errorf("dua kuitansi identik: %s", got)
	}
}
