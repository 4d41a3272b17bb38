package entities

// VIP bonus categories
const (
	MultiplierXP    = "xp"
	MultiplierCoins = "coins"
	MultiplierDaily = "daily"
)

// VIPConfig holds the per-guild VIP settings
type VIPConfig struct {
	GuildID           int64              `json:"guild_id"`
	RoleID            int64              `json:"vip_role_id,omitempty"`
	Multipliers       map[string]float64 `json:"multipliers"`
	CrimeSuccessBonus int                `json:"crime_success_bonus"`
	RobSuccessBonus   int                `json:"rob_success_bonus"`
}

// DefaultVIPConfig returns the VIP settings a guild starts with
func DefaultVIPConfig(guildID int64) *VIPConfig {
	return &VIPConfig{
		GuildID: guildID,
		Multipliers: map[string]float64{
			MultiplierXP:    2.0,
			MultiplierCoins: 1.5,
			MultiplierDaily: 2.0,
		},
		CrimeSuccessBonus: 15,
		RobSuccessBonus:   15,
	}
}

// Multiplier returns the bonus for category, 1.0 when unset
func (c *VIPConfig) Multiplier(category string) float64 {
	if m, ok := c.Multipliers[category]; ok && m > 0 {
		return m
	}
	return 1.0
}

// IsMultiplierCategory reports whether category is a known bonus category
func IsMultiplierCategory(category string) bool {
	switch category {
	case MultiplierXP, MultiplierCoins, MultiplierDaily:
		return true
	}
	return false
}
