package timeutil

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"90m", 90 * time.Minute},
		{"3d", 72 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{"1y", 365 * 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "x", "3q", "ad"} {
		if _, err := ParseDuration(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"now", now},
		{"today", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"-1d", now.Add(-24 * time.Hour)},
		{"+2h", now.Add(2 * time.Hour)},
		{"2020-01-02", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2020-01-02 03:04:05", time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2020-01-02T03:04:05Z", time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseRelativeTime(tt.in, now)
		if err != nil {
			t.Fatalf("ParseRelativeTime(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("ParseRelativeTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseRelativeTime("yesterday", now); err == nil {
		t.Fatalf("expected error for unsigned relative time")
	}
}

func TestParseRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	from, to, err := ParseRange("", "", "-10d", "now", now)
	if err != nil {
		t.Fatalf("ParseRange defaults: %v", err)
	}
	if !from.Equal(now.Add(-240*time.Hour)) || !to.Equal(now) {
		t.Fatalf("unexpected range %v..%v", from, to)
	}

	if _, _, err := ParseRange("2024-01-02", "2024-01-01", "", "", now); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if _, _, err := ParseRange("soon", "", "", "now", now); err == nil {
		t.Fatalf("expected error for unparseable start")
	}
}
