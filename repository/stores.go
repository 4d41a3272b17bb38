package repository

import (
	"fmt"
	"path/filepath"

	"natanbot/domain/entities"
)

// Backing file names inside the data directory
const (
	EconomyDataFile   = "economy_data.json"
	EconomyConfigFile = "economy_config.json"
	XPDataFile        = "xp_data.json"
	XPConfigFile      = "xp_config.json"
	VIPDataFile       = "vip_data.json"
	VIPConfigFile     = "vip_config.json"
)

// Stores bundles the repositories of every data domain
type Stores struct {
	Accounts      *AccountRepository
	XPProfiles    *XPProfileRepository
	VIPGrants     *VIPGrantRepository
	EconomyConfig *ConfigRepository[entities.GuildEconomyConfig]
	XPConfig      *ConfigRepository[entities.XPConfig]
	VIPConfig     *ConfigRepository[entities.VIPConfig]
}

// OpenStores loads every store under dataDir. Any corrupt file aborts.
func OpenStores(dataDir string) (*Stores, error) {
	accounts, err := OpenFileStore[entities.Account](entities.DomainEconomy, filepath.Join(dataDir, EconomyDataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open economy store: %w", err)
	}
	economyConfig, err := OpenFileStore[entities.GuildEconomyConfig](entities.DomainEconomyConfig, filepath.Join(dataDir, EconomyConfigFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open economy config store: %w", err)
	}
	xpProfiles, err := OpenFileStore[entities.XPProfile](entities.DomainXP, filepath.Join(dataDir, XPDataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open XP store: %w", err)
	}
	xpConfig, err := OpenFileStore[entities.XPConfig](entities.DomainXPConfig, filepath.Join(dataDir, XPConfigFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open XP config store: %w", err)
	}
	vipGrants, err := OpenFileStore[entities.VIPGrant](entities.DomainVIP, filepath.Join(dataDir, VIPDataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open VIP store: %w", err)
	}
	vipConfig, err := OpenFileStore[entities.VIPConfig](entities.DomainVIPConfig, filepath.Join(dataDir, VIPConfigFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open VIP config store: %w", err)
	}

	return &Stores{
		Accounts:      NewAccountRepository(accounts),
		XPProfiles:    NewXPProfileRepository(xpProfiles),
		VIPGrants:     NewVIPGrantRepository(vipGrants),
		EconomyConfig: NewEconomyConfigRepository(economyConfig),
		XPConfig:      NewXPConfigRepository(xpConfig),
		VIPConfig:     NewVIPConfigRepository(vipConfig),
	}, nil
}
