package entities

import "time"

// VIPGrant is a time-bounded VIP entitlement
type VIPGrant struct {
	GuildID   int64     `json:"guild_id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expiry"`
	GrantedBy int64     `json:"added_by"`
	GrantedAt time.Time `json:"added_at"`
}

// IsActive reports whether now is strictly before the expiry
func (g *VIPGrant) IsActive(now time.Time) bool {
	return now.Before(g.ExpiresAt)
}

// Remaining returns the time left on the grant, zero once expired
func (g *VIPGrant) Remaining(now time.Time) time.Duration {
	if !g.IsActive(now) {
		return 0
	}
	return g.ExpiresAt.Sub(now)
}
