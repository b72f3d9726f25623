package service

import (
	"testing"
	"time"
)

func TestExpiredCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want time.Time
	}{
		{name: "default seven days", days: 7, want: now.AddDate(0, 0, -7)},
		{name: "custom fourteen days", days: 14, want: now.AddDate(0, 0, -14)},
		{name: "zero falls to default", days: 0, want: now.AddDate(0, 0, -7)},
		{name: "negative falls to default", days: -3, want: now.AddDate(0, 0, -7)},
		{name: "one day", days: 1, want: now.AddDate(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpiredCutoff(now, tt.days); !got.Equal(tt.want) {
				t.Errorf("ExpiredCutoff(%d) = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

func TestExpiredCutoffBoundary(t *testing.T) {
	now := time.Now()
	cutoff := ExpiredCutoff(now, 7)

	// registrasi tepat di cutoff belum kadaluarsa (pakai strictly older)
	createdAtCutoff := cutoff
	if createdAtCutoff.Before(cutoff) {
		t.Error("registration created exactly at cutoff must not count as older")
	}

	older := cutoff.Add(-time.Second)
	if !older.Before(cutoff) {
		t.Error("registration one second older than cutoff must count as older")
	}
}
