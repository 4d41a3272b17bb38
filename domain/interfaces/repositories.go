package interfaces

import (
	"context"

	"natanbot/domain/entities"
)

// AccountRepository is the economy side of the ledger store
type AccountRepository interface {
	// Get returns the stored account or a fresh default, which is not persisted
	Get(ctx context.Context, guildID, userID int64) (*entities.Account, error)

	// Save overwrites the given accounts in a single write
	Save(ctx context.Context, accounts ...*entities.Account) error

	// ListByGuild returns every stored account of a guild
	ListByGuild(ctx context.Context, guildID int64) ([]*entities.Account, error)
}

// XPProfileRepository is the XP side of the ledger store
type XPProfileRepository interface {
	// Get returns the stored profile or a fresh default, which is not persisted
	Get(ctx context.Context, guildID, userID int64) (*entities.XPProfile, error)

	// Save overwrites the profile
	Save(ctx context.Context, profile *entities.XPProfile) error

	// ListByGuild returns every stored profile of a guild
	ListByGuild(ctx context.Context, guildID int64) ([]*entities.XPProfile, error)
}

// VIPGrantRepository stores VIP grants
type VIPGrantRepository interface {
	// Get returns the grant or nil when the user has none
	Get(ctx context.Context, guildID, userID int64) (*entities.VIPGrant, error)

	// Set creates or replaces a grant
	Set(ctx context.Context, grant *entities.VIPGrant) error

	// Clear deletes a grant, reporting whether one existed
	Clear(ctx context.Context, guildID, userID int64) (bool, error)

	// ListAll returns grants across every guild
	ListAll(ctx context.Context) ([]*entities.VIPGrant, error)

	// ListByGuild returns the grants of one guild
	ListByGuild(ctx context.Context, guildID int64) ([]*entities.VIPGrant, error)
}

// EconomyConfigRepository stores per-guild economy settings
type EconomyConfigRepository interface {
	// Get returns the stored config or the defaults
	Get(ctx context.Context, guildID int64) (*entities.GuildEconomyConfig, error)
	Save(ctx context.Context, cfg *entities.GuildEconomyConfig) error
}

// XPConfigRepository stores per-guild XP settings
type XPConfigRepository interface {
	// Get returns the stored config or the defaults
	Get(ctx context.Context, guildID int64) (*entities.XPConfig, error)
	Save(ctx context.Context, cfg *entities.XPConfig) error
}

// VIPConfigRepository stores per-guild VIP settings
type VIPConfigRepository interface {
	// Get returns the stored config or the defaults
	Get(ctx context.Context, guildID int64) (*entities.VIPConfig, error)
	Save(ctx context.Context, cfg *entities.VIPConfig) error
}
