package utils

import "testing"

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{500000, "Rp 500.000"},
		{1500000, "Rp 1.500.000"},
		{1234567890, "Rp 1.234.567.890"},
		{999.6, "Rp 1.000"},
		{-250000, "-Rp 250.000"},
	}

	for _, tc := range tests {
		if got := FormatIDR(tc.amount); got != tc.want {
			t.Errorf("FormatIDR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
