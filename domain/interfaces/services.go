package interfaces

import (
	"context"
	"time"

	"natanbot/domain/entities"
)

// LedgerService executes actions against the ledger
type LedgerService interface {
	// PerformAction runs one action end to end. Expected failures come back
	// as rejected outcomes; only store failures are returned as errors.
	PerformAction(ctx context.Context, guildID, userID int64, kind entities.ActionKind, params entities.ActionParams) (*entities.ActionOutcome, error)

	// QueryAccount returns a read-only projection for display
	QueryAccount(ctx context.Context, guildID, userID int64) (*entities.AccountSnapshot, error)
}

// VIPStatusProvider answers VIP status questions
type VIPStatusProvider interface {
	IsVIP(ctx context.Context, guildID, userID int64) (bool, error)
	VIPExpiry(ctx context.Context, guildID, userID int64) (*time.Time, error)
}

// VIPService manages VIP grants and settings
type VIPService interface {
	VIPStatusProvider

	// Grant gives userID VIP for the given number of days, replacing any grant
	Grant(ctx context.Context, guildID, userID, grantedBy int64, days int) (*entities.VIPGrant, error)

	// Revoke removes a grant, reporting whether one existed
	Revoke(ctx context.Context, guildID, userID int64) (bool, error)

	// ListActive returns unexpired grants of a guild, soonest expiry first
	ListActive(ctx context.Context, guildID int64) ([]*entities.VIPGrant, error)

	// SweepExpired deletes every expired grant and revokes its role
	SweepExpired(ctx context.Context) ([]*entities.VIPGrant, error)

	GetConfig(ctx context.Context, guildID int64) (*entities.VIPConfig, error)
	SetRole(ctx context.Context, guildID int64, roleID int64) error
	SetMultiplier(ctx context.Context, guildID int64, category string, value float64) error
}

// LeaderboardEntry is one row of the XP leaderboard
type LeaderboardEntry struct {
	Rank       int
	UserID     int64
	Experience int64
	Level      int
	Messages   int64
}

// XPService manages XP settings and rankings
type XPService interface {
	GetConfig(ctx context.Context, guildID int64) (*entities.XPConfig, error)

	// Leaderboard returns a page (1-based) of members sorted by XP and the page count
	Leaderboard(ctx context.Context, guildID int64, page, perPage int) ([]LeaderboardEntry, int, error)

	// Rank returns the 1-based position of userID, 0 when unranked
	Rank(ctx context.Context, guildID, userID int64) (int, error)

	SetXPRange(ctx context.Context, guildID, minXP, maxXP int64) error
	SetXPPerLevel(ctx context.Context, guildID, xpPerLevel int64) error

	// SetCooldown sets the message cooldown; a nil vipSeconds halves the normal one
	SetCooldown(ctx context.Context, guildID, seconds int64, vipSeconds *int64) error

	// ResetUser wipes a member's experience back to level 1
	ResetUser(ctx context.Context, guildID, userID int64) error
}

// EconomyService exposes the economy catalog
type EconomyService interface {
	GetConfig(ctx context.Context, guildID int64) (*entities.GuildEconomyConfig, error)
	ListJobs(ctx context.Context, guildID int64) ([]entities.Job, error)
	ListShop(ctx context.Context, guildID int64) ([]entities.ShopItem, error)
	UpsertShopItem(ctx context.Context, guildID int64, item entities.ShopItem) error

	// SetBalance overwrites a wallet, for operator fix-ups
	SetBalance(ctx context.Context, guildID, userID, balance int64) (*entities.Account, error)
}

// RoleManager grants and removes Discord roles
type RoleManager interface {
	AddRole(ctx context.Context, guildID, userID, roleID int64) error
	RemoveRole(ctx context.Context, guildID, userID, roleID int64) error
}

// AccountLocker serialises mutations of the same account
type AccountLocker interface {
	// Lock acquires every key and returns the release function
	Lock(keys ...string) func()
}
