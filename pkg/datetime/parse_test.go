package datetime

import (
	"testing"
)

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
	}{
		{"Forward one month", "2026-01", 1, "2026-02"},
		{"Forward across year boundary", "2026-11", 3, "2027-02"},
		{"Forward a full term", "2026-01", 120, "2036-01"},
		{"No offset", "2026-06", 0, "2026-06"},
		{"Backward one month", "2026-01", -1, "2025-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if err != nil {
				t.Fatalf("OffsetDate(%q, %d) returned error: %v", tt.date, tt.months, err)
			}
			if result != tt.expected {
				t.Errorf("OffsetDate(%q, %d) = %q, expected %q", tt.date, tt.months, result, tt.expected)
			}
		})
	}
}

func TestOffsetDateInvalid(t *testing.T) {
	if _, err := OffsetDate("January 2026", DateTimeLayout, 1); err == nil {
		t.Error("OffsetDate with a malformed date should have failed")
	}
}

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(DateTimeLayout, "2026-08")
	if parsed.Year() != 2026 || parsed.Month() != 8 {
		t.Errorf("MustParseTime(2026-08) = %v, expected August 2026", parsed)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseTime with a malformed date should panic")
		}
	}()
	MustParseTime(DateTimeLayout, "bogus")
}
