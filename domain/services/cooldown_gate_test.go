package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckCooldown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name      string
		last      *time.Time
		interval  time.Duration
		allowed   bool
		remaining time.Duration
	}{
		{"never performed", nil, 24 * time.Hour, true, 0},
		{"just performed", at(0), 24 * time.Hour, false, 24 * time.Hour},
		{"half way", at(30 * time.Minute), time.Hour, false, 30 * time.Minute},
		{"exactly elapsed", at(time.Hour), time.Hour, true, 0},
		{"long ago", at(72 * time.Hour), time.Hour, true, 0},
		{"ungated", at(0), 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckCooldown(tt.last, tt.interval, now)
			assert.Equal(t, tt.allowed, res.Allowed)
			assert.Equal(t, tt.remaining, res.Remaining)
			assert.GreaterOrEqual(t, res.Remaining, time.Duration(0))
		})
	}
}
