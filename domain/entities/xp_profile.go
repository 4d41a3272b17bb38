package entities

import "time"

// XPProfile is the experience record of a user within a guild
type XPProfile struct {
	GuildID       int64      `json:"guild_id"`
	UserID        int64      `json:"user_id"`
	Experience    int64      `json:"xp"`
	Level         int        `json:"level"`
	Messages      int64      `json:"messages"`
	LastMessageAt *time.Time `json:"last_message,omitempty"`
}

// NewXPProfile returns the default profile: no XP, level 1
func NewXPProfile(guildID, userID int64) *XPProfile {
	return &XPProfile{
		GuildID: guildID,
		UserID:  userID,
		Level:   1,
	}
}

// Reset clears experience back to level 1, keeping the message count
func (p *XPProfile) Reset() {
	p.Experience = 0
	p.Level = 1
	p.LastMessageAt = nil
}
