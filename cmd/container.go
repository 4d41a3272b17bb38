package cmd

import (
	"fmt"
	"strings"

	"natanbot/config"
	"natanbot/domain/interfaces"
	"natanbot/domain/services"
	"natanbot/domain/utils"
	"natanbot/events"
	"natanbot/infrastructure"
	"natanbot/repository"

	log "github.com/sirupsen/logrus"
)

// container holds the stores and services shared by the bot and the admin subcommands
type container struct {
	stores  *repository.Stores
	bus     *events.Bus
	ledger  *services.ActionExecutor
	economy interfaces.EconomyService
	xp      interfaces.XPService
	vip     interfaces.VIPService
}

// newContainer opens the stores and builds the services. roles may be nil
// when no Discord session is available.
func newContainer(cfg *config.Config, bus *events.Bus, roles interfaces.RoleManager) (*container, error) {
	log.Printf("Opening stores in %s...", cfg.DataDir)
	stores, err := repository.OpenStores(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open stores: %w", err)
	}
	log.Println("Stores opened successfully")

	locker := infrastructure.NewAccountLocker()
	vip := services.NewVIPService(stores.VIPGrants, stores.VIPConfig, roles, bus)

	return &container{
		stores: stores,
		bus:    bus,
		ledger: services.NewActionExecutor(
			stores.Accounts,
			stores.XPProfiles,
			stores.EconomyConfig,
			stores.XPConfig,
			stores.VIPConfig,
			vip,
			services.NewRewardResolver(utils.NewRandomSource()),
			locker,
			bus,
		),
		economy: services.NewEconomyService(stores.Accounts, stores.EconomyConfig, locker),
		xp:      services.NewXPService(stores.XPProfiles, stores.XPConfig, locker),
		vip:     vip,
	}, nil
}

// ConfigureLogging applies the configured logrus level and formatter
func ConfigureLogging(cfg *config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.Warnf("Invalid log level %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
