package repository

import (
	"context"

	"natanbot/domain/entities"
	"natanbot/domain/utils"
)

// XPProfileRepository implements the XPProfileRepository interface
type XPProfileRepository struct {
	store *FileStore[entities.XPProfile]
}

// NewXPProfileRepository creates a new XP profile repository
func NewXPProfileRepository(store *FileStore[entities.XPProfile]) *XPProfileRepository {
	return &XPProfileRepository{store: store}
}

func (r *XPProfileRepository) Get(ctx context.Context, guildID, userID int64) (*entities.XPProfile, error) {
	profile, ok, err := r.store.Get(utils.AccountKey(guildID, userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return entities.NewXPProfile(guildID, userID), nil
	}
	profile.GuildID = guildID
	profile.UserID = userID
	if profile.Level < 1 {
		profile.Level = 1
	}
	return profile, nil
}

func (r *XPProfileRepository) Save(ctx context.Context, profile *entities.XPProfile) error {
	return r.store.Put(map[string]*entities.XPProfile{
		utils.AccountKey(profile.GuildID, profile.UserID): profile,
	})
}

func (r *XPProfileRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.XPProfile, error) {
	return r.store.List(utils.GuildPrefix(guildID))
}
