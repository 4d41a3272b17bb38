package repository

import (
	"context"
	"fmt"

	"natanbot/domain/entities"
	"natanbot/domain/utils"
)

// AccountRepository implements the AccountRepository interface
type AccountRepository struct {
	store *FileStore[entities.Account]
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(store *FileStore[entities.Account]) *AccountRepository {
	return &AccountRepository{store: store}
}

// Get returns the stored account or a fresh default
func (r *AccountRepository) Get(ctx context.Context, guildID, userID int64) (*entities.Account, error) {
	account, ok, err := r.store.Get(utils.AccountKey(guildID, userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return entities.NewAccount(guildID, userID), nil
	}
	account.GuildID = guildID
	account.UserID = userID
	account.Normalize()
	return account, nil
}

// Save overwrites the given accounts in a single write
func (r *AccountRepository) Save(ctx context.Context, accounts ...*entities.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	entries := make(map[string]*entities.Account, len(accounts))
	for _, a := range accounts {
		if a == nil {
			return fmt.Errorf("cannot save nil account")
		}
		entries[utils.AccountKey(a.GuildID, a.UserID)] = a
	}
	return r.store.Put(entries)
}

// ListByGuild returns every stored account of a guild
func (r *AccountRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.Account, error) {
	accounts, err := r.store.List(utils.GuildPrefix(guildID))
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		a.Normalize()
	}
	return accounts, nil
}
