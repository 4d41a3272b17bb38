package services

import (
	"context"
	"fmt"
	"strings"

	"natanbot/domain/entities"
	"natanbot/domain/interfaces"
	"natanbot/domain/utils"

	log "github.com/sirupsen/logrus"
)

type economyService struct {
	accounts interfaces.AccountRepository
	configs  interfaces.EconomyConfigRepository
	locker   interfaces.AccountLocker
}

// NewEconomyService creates a new economy service
func NewEconomyService(accounts interfaces.AccountRepository, configs interfaces.EconomyConfigRepository, locker interfaces.AccountLocker) interfaces.EconomyService {
	return &economyService{
		accounts: accounts,
		configs:  configs,
		locker:   locker,
	}
}

func (s *economyService) GetConfig(ctx context.Context, guildID int64) (*entities.GuildEconomyConfig, error) {
	cfg, err := s.configs.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load economy config: %w", err)
	}
	return cfg, nil
}

func (s *economyService) ListJobs(ctx context.Context, guildID int64) ([]entities.Job, error) {
	cfg, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return cfg.Jobs, nil
}

func (s *economyService) ListShop(ctx context.Context, guildID int64) ([]entities.ShopItem, error) {
	cfg, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return cfg.Shop, nil
}

// UpsertShopItem adds or reprices a shop item. Names are stored lower case.
func (s *economyService) UpsertShopItem(ctx context.Context, guildID int64, item entities.ShopItem) error {
	item.Name = strings.ToLower(strings.TrimSpace(item.Name))
	if item.Name == "" {
		return entities.NewValidationError("name", "is required")
	}
	if item.Price <= 0 {
		return entities.NewValidationError("price", "must be positive")
	}

	cfg, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return err
	}
	cfg.UpsertShopItem(item)
	if err := s.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save economy config: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID": guildID,
		"item":    item.Name,
		"price":   item.Price,
	}).Info("Shop item saved")
	return nil
}

func (s *economyService) SetBalance(ctx context.Context, guildID, userID, balance int64) (*entities.Account, error) {
	if balance < 0 {
		return nil, entities.NewValidationError("balance", "cannot be negative")
	}

	unlock := s.locker.Lock(utils.AccountKey(guildID, userID))
	defer unlock()

	account, err := s.accounts.Get(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	old := account.Balance
	account.Balance = balance
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID":    guildID,
		"userID":     userID,
		"oldBalance": old,
		"newBalance": balance,
	}).Warn("Balance overwritten")
	return account, nil
}
