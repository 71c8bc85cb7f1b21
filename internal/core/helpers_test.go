package core

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999.4, "$999"},
		{999.5, "$1,000"},
		{123456, "$123,456"},
		{1234567.89, "$1,234,568"},
	}

	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(133349); got != "133,349" {
		t.Errorf("FormatCount() = %q", got)
	}
	if got := FormatCount(0); got != "0" {
		t.Errorf("FormatCount(0) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(100.0 / 3); got != "33.3%" {
		t.Errorf("FormatPercent() = %q", got)
	}
}

func TestFormatCompactUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500, "$500"},
		{120000, "$120k"},
		{1500000, "$1.5M"},
	}

	for _, tt := range tests {
		if got := FormatCompactUSD(tt.in); got != tt.want {
			t.Errorf("FormatCompactUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
