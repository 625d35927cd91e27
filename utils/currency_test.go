package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{8000, "Rp 8.000"},
		{35000, "Rp 35.000"},
		{78000, "Rp 78.000"},
		{1234567, "Rp 1.234.567"},
		{-5000, "-Rp 5.000"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
