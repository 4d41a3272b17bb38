package repository

import (
	"context"

	"natanbot/domain/entities"
	"natanbot/domain/utils"
)

// VIPGrantRepository implements the VIPGrantRepository interface
type VIPGrantRepository struct {
	store *FileStore[entities.VIPGrant]
}

// NewVIPGrantRepository creates a new VIP grant repository
func NewVIPGrantRepository(store *FileStore[entities.VIPGrant]) *VIPGrantRepository {
	return &VIPGrantRepository{store: store}
}

// Get returns nil when the user has no grant
func (r *VIPGrantRepository) Get(ctx context.Context, guildID, userID int64) (*entities.VIPGrant, error) {
	grant, ok, err := r.store.Get(utils.AccountKey(guildID, userID))
	if err != nil || !ok {
		return nil, err
	}
	return grant, nil
}

func (r *VIPGrantRepository) Set(ctx context.Context, grant *entities.VIPGrant) error {
	return r.store.Put(map[string]*entities.VIPGrant{
		utils.AccountKey(grant.GuildID, grant.UserID): grant,
	})
}

func (r *VIPGrantRepository) Clear(ctx context.Context, guildID, userID int64) (bool, error) {
	n, err := r.store.Delete(utils.AccountKey(guildID, userID))
	return n > 0, err
}

func (r *VIPGrantRepository) ListAll(ctx context.Context) ([]*entities.VIPGrant, error) {
	return r.store.List("")
}

func (r *VIPGrantRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.VIPGrant, error) {
	return r.store.List(utils.GuildPrefix(guildID))
}
