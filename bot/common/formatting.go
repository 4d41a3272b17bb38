package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatBalance formats a balance amount with thousand separators
func FormatBalance(balance int64) string {
	if balance < 0 {
		return "-" + FormatBalance(-balance)
	}
	str := fmt.Sprintf("%d", balance)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatCoins renders an amount with the currency emoji
func FormatCoins(amount int64) string {
	return fmt.Sprintf("%s %s", CoinEmoji, FormatBalance(amount))
}

// FormatSignedCoins renders a delta with an explicit sign
func FormatSignedCoins(delta int64) string {
	if delta >= 0 {
		return "+" + FormatCoins(delta)
	}
	return "-" + FormatCoins(-delta)
}

// FormatBalanceCompact formats a balance amount in compact form (e.g. 100k, 1.5M)
func FormatBalanceCompact(balance int64) string {
	if balance < 0 {
		return "-" + FormatBalanceCompact(-balance)
	}
	switch {
	case balance < 1000:
		return fmt.Sprintf("%d", balance)
	case balance < 1000000:
		return compact(float64(balance)/1000.0, "k")
	case balance < 1000000000:
		return compact(float64(balance)/1000000.0, "M")
	default:
		return compact(float64(balance)/1000000000.0, "B")
	}
}

func compact(v float64, suffix string) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f%s", v, suffix)
	}
	return fmt.Sprintf("%.1f%s", v, suffix)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// FormatDuration formats a duration in a human-readable format
// Examples: "2d 14h 30m", "3h 45m", "45m", "< 1m"
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "< 1m"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	return strings.Join(parts, " ")
}

// FormatCooldown is FormatDuration with second precision below one minute
func FormatCooldown(d time.Duration) string {
	if d < time.Minute {
		secs := int((d + time.Second - 1) / time.Second)
		return fmt.Sprintf("%ds", max(secs, 1))
	}
	return FormatDuration(d)
}
