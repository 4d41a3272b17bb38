package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		xp       int64
		perLevel int64
		expected int
	}{
		{0, 100, 1},
		{99, 100, 1},
		{100, 100, 2},
		{399, 100, 2},
		{400, 100, 3},
		{900, 100, 4},
		{50, 0, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CalculateLevel(tt.xp, tt.perLevel), "xp=%d perLevel=%d", tt.xp, tt.perLevel)
	}
}

func TestCalculateLevel_InvertsXPForLevel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 10000).Draw(t, "level")
		perLevel := rapid.Int64Range(1, 100000).Draw(t, "perLevel")

		xp := CalculateXPForLevel(level, perLevel)
		if got := CalculateLevel(xp, perLevel); got != level {
			t.Fatalf("CalculateLevel(%d, %d) = %d, want %d", xp, perLevel, got, level)
		}
		if level > 1 {
			if got := CalculateLevel(xp-1, perLevel); got != level-1 {
				t.Fatalf("one XP short of level %d gave %d", level, got)
			}
		}
	})
}

func TestApplyMultiplier_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Int64Range(1, 1_000_000_000).Draw(t, "reward")
		m := rapid.Float64Range(1, 10).Draw(t, "multiplier")

		if got := ApplyMultiplier(r, m); got < r {
			t.Fatalf("ApplyMultiplier(%d, %f) = %d, below base", r, m, got)
		}
	})
}

func TestApplyMultiplier_Floors(t *testing.T) {
	assert.Equal(t, int64(37), ApplyMultiplier(25, 1.5))
	assert.Equal(t, int64(2000), ApplyMultiplier(1000, 2.0))
	assert.Equal(t, int64(13), ApplyMultiplier(10, 1.3))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "██████████░░░░░░░░░░", ProgressBar(0.5, 20))
	assert.Equal(t, "░░░░", ProgressBar(-1, 4))
	assert.Equal(t, "████", ProgressBar(2, 4))
}
