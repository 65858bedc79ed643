package site

import (
	"testing"
	"time"
)

func TestExperienceDuration(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2026, "3+"},
		{2030, "7+"},
		{2023, "1+"}, // never displays "0+"
	}

	for _, tt := range tests {
		now := time.Date(tt.year, 6, 1, 0, 0, 0, 0, time.UTC)
		if got := ExperienceDuration(now); got != tt.want {
			t.Errorf("ExperienceDuration(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestCategoriesNonEmpty(t *testing.T) {
	if len(Categories) == 0 {
		t.Fatal("expected suggested categories")
	}
	seen := make(map[string]bool)
	for _, c := range Categories {
		if c == "" {
			t.Error("empty category in suggestion set")
		}
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
}
