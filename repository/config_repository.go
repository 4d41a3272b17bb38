package repository

import (
	"context"

	"natanbot/domain/entities"
	"natanbot/domain/utils"
)

// ConfigRepository stores one settings document per guild and falls back
// to defaults for guilds that never changed anything
type ConfigRepository[T any] struct {
	store    *FileStore[T]
	defaults func(guildID int64) *T
	guildOf  func(*T) int64
}

// NewEconomyConfigRepository creates the economy settings repository
func NewEconomyConfigRepository(store *FileStore[entities.GuildEconomyConfig]) *ConfigRepository[entities.GuildEconomyConfig] {
	return &ConfigRepository[entities.GuildEconomyConfig]{
		store:    store,
		defaults: entities.DefaultGuildEconomyConfig,
		guildOf:  func(c *entities.GuildEconomyConfig) int64 { return c.GuildID },
	}
}

// NewXPConfigRepository creates the XP settings repository
func NewXPConfigRepository(store *FileStore[entities.XPConfig]) *ConfigRepository[entities.XPConfig] {
	return &ConfigRepository[entities.XPConfig]{
		store:    store,
		defaults: entities.DefaultXPConfig,
		guildOf:  func(c *entities.XPConfig) int64 { return c.GuildID },
	}
}

// NewVIPConfigRepository creates the VIP settings repository
func NewVIPConfigRepository(store *FileStore[entities.VIPConfig]) *ConfigRepository[entities.VIPConfig] {
	return &ConfigRepository[entities.VIPConfig]{
		store:    store,
		defaults: entities.DefaultVIPConfig,
		guildOf:  func(c *entities.VIPConfig) int64 { return c.GuildID },
	}
}

// Get returns the stored config or the defaults, which are not persisted
func (r *ConfigRepository[T]) Get(ctx context.Context, guildID int64) (*T, error) {
	cfg, ok, err := r.store.Get(utils.GuildKey(guildID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return r.defaults(guildID), nil
	}
	return cfg, nil
}

func (r *ConfigRepository[T]) Save(ctx context.Context, cfg *T) error {
	return r.store.Put(map[string]*T{
		utils.GuildKey(r.guildOf(cfg)): cfg,
	})
}
