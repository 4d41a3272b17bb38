package services

import "time"

// CooldownResult is the verdict of the cooldown gate
type CooldownResult struct {
	Allowed   bool
	Remaining time.Duration
}

// CheckCooldown allows an action that was never performed or whose last
// performance is at least interval ago. Otherwise it reports the wait.
func CheckCooldown(last *time.Time, interval time.Duration, now time.Time) CooldownResult {
	if last == nil {
		return CooldownResult{Allowed: true}
	}
	elapsed := now.Sub(*last)
	if elapsed >= interval {
		return CooldownResult{Allowed: true}
	}
	return CooldownResult{Remaining: interval - elapsed}
}
