package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		balance  int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBalance(tt.balance))
	}
}

func TestFormatBalanceCompact(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		expected string
	}{
		{"Less than 1k", 999, "999"},
		{"Exactly 1k", 1000, "1k"},
		{"1.5k", 1500, "1.5k"},
		{"213.9k", 213901, "213.9k"},
		{"1M", 1000000, "1M"},
		{"1.5B", 1500000000, "1.5B"},
		{"Negative", -2500, "-2.5k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBalanceCompact(tt.balance))
		})
	}
}

func TestFormatSignedCoins(t *testing.T) {
	assert.Equal(t, "+🪙 1,500", FormatSignedCoins(1500))
	assert.Equal(t, "-🪙 50", FormatSignedCoins(-50))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "< 1m", FormatDuration(30*time.Second))
	assert.Equal(t, "45m", FormatDuration(45*time.Minute))
	assert.Equal(t, "3h 45m", FormatDuration(3*time.Hour+45*time.Minute))
	assert.Equal(t, "2d 14h 30m", FormatDuration(62*time.Hour+30*time.Minute))
	assert.Equal(t, "1d", FormatDuration(24*time.Hour))
}

func TestFormatCooldown(t *testing.T) {
	assert.Equal(t, "20s", FormatCooldown(20*time.Second))
	assert.Equal(t, "1s", FormatCooldown(200*time.Millisecond))
	assert.Equal(t, "22h", FormatCooldown(22*time.Hour))
}
