package entities

import "time"

// XPConfig holds the per-guild message XP settings
type XPConfig struct {
	GuildID            int64 `json:"guild_id"`
	MinXP              int64 `json:"base_xp"`
	MaxXP              int64 `json:"xp_per_message"`
	XPPerLevel         int64 `json:"xp_per_level"`
	CooldownSeconds    int64 `json:"cooldown"`
	VIPCooldownSeconds int64 `json:"vip_cooldown"`
}

// DefaultXPConfig returns the XP settings a guild starts with
func DefaultXPConfig(guildID int64) *XPConfig {
	return &XPConfig{
		GuildID:            guildID,
		MinXP:              15,
		MaxXP:              25,
		XPPerLevel:         100,
		CooldownSeconds:    60,
		VIPCooldownSeconds: 30,
	}
}

// Cooldown returns the message XP interval for a member
func (c *XPConfig) Cooldown(isVIP bool) time.Duration {
	if isVIP {
		return time.Duration(c.VIPCooldownSeconds) * time.Second
	}
	return time.Duration(c.CooldownSeconds) * time.Second
}
