package utils

import "math"

// CalculateLevel derives the level for an XP total:
// floor(sqrt(xp / xpPerLevel)) + 1
func CalculateLevel(xp, xpPerLevel int64) int {
	if xpPerLevel <= 0 || xp <= 0 {
		return 1
	}
	return int(math.Sqrt(float64(xp)/float64(xpPerLevel))) + 1
}

// CalculateXPForLevel returns the XP at which level starts
func CalculateXPForLevel(level int, xpPerLevel int64) int64 {
	if level <= 1 {
		return 0
	}
	n := int64(level - 1)
	return n * n * xpPerLevel
}

// ApplyMultiplier scales amount by m and floors the result
func ApplyMultiplier(amount int64, m float64) int64 {
	return int64(math.Floor(float64(amount) * m))
}

// ProgressBar renders a fixed-width bar for a fraction in [0,1]
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
