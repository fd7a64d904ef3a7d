package datetime

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		year    int
		month   time.Month
		wantErr bool
	}{
		{input: "2024-06", year: 2024, month: time.June},
		{input: "2019-12", year: 2019, month: time.December},
		{input: "2024-13", wantErr: true},
		{input: "2024-6-01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Year != tt.year || got.Month != tt.month || got.Day != 1 {
				t.Errorf("ParseMonth(%q) = %v", tt.input, got)
			}
		})
	}
}

func TestFormatMonthRoundTrip(t *testing.T) {
	for _, value := range []string{"2020-01", "2024-09", "2025-12"} {
		if got := FormatMonth(MustParseMonth(value)); got != value {
			t.Errorf("FormatMonth(MustParseMonth(%q)) = %q", value, got)
		}
	}
}

func TestMustParseMonthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid month")
		}
	}()
	MustParseMonth("June 2024")
}
