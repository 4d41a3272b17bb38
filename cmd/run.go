package cmd

import (
	"context"
	"fmt"
	"time"

	"natanbot/application"
	"natanbot/bot"
	"natanbot/config"
	"natanbot/events"
	"natanbot/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	ConfigureLogging(cfg)
	log.Println("Starting natanbot...")

	// Released in reverse order on return, whether startup failed or not
	var cleanup closers
	defer cleanup.run(10 * time.Second)

	// Initialize metrics
	log.Println("Initializing metrics...")
	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	cleanup.add(func(ctx context.Context) {
		if err := observability.ShutdownGlobalMetrics(ctx); err != nil {
			log.Errorf("Error shutting down metrics: %v", err)
		}
	})
	log.Println("Metrics initialized successfully")

	// Initialize event bus
	log.Println("Initializing event bus...")
	eventBus := events.NewBus()
	application.RegisterApplicationSubscriptions(eventBus)
	log.Println("Event bus initialized successfully")

	// The role manager needs the session before the VIP service exists
	session, err := bot.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}

	log.Println("Initializing services...")
	c, err := newContainer(cfg, eventBus, bot.NewRoleManager(session))
	if err != nil {
		return err
	}
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.GuildID,
	}, session, bot.Services{
		Ledger:  c.ledger,
		Economy: c.economy,
		XP:      c.xp,
		VIP:     c.vip,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	cleanup.add(func(context.Context) {
		if err := discordBot.Close(); err != nil {
			log.Errorf("Error closing Discord bot: %v", err)
		}
	})
	log.Println("Discord bot initialized successfully")

	// Start background workers
	log.Println("Starting background workers...")
	scheduler, err := application.NewScheduler()
	if err != nil {
		return err
	}
	vipWorker := application.NewVIPExpiryWorker(c.vip)
	if err := scheduler.Every(ctx, "vip-expiry", cfg.VIPSweepInterval, func(ctx context.Context) {
		vipWorker.Sweep(ctx)
	}); err != nil {
		return err
	}
	if cfg.AutoPingURL != "" {
		pinger := application.NewKeepAliveWorker(cfg.AutoPingURL)
		if err := scheduler.Every(ctx, "keep-alive", cfg.AutoPingInterval, pinger.Run); err != nil {
			return err
		}
	}
	stopScheduler := scheduler.Start()
	cleanup.add(func(context.Context) { stopScheduler() })
	log.Println("Background workers started")

	if cfg.StatusPort > 0 {
		stopStatusAPI := bot.NewStatusAPI(discordBot.GuildCount).Start(cfg.StatusPort)
		cleanup.add(func(ctx context.Context) {
			if err := stopStatusAPI(ctx); err != nil {
				log.Errorf("Error stopping status API: %v", err)
			}
		})
	}

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Println("Shutting down bot...")
	return nil
}

// closers collects shutdown steps as startup acquires resources
type closers []func(ctx context.Context)

func (c *closers) add(f func(ctx context.Context)) {
	*c = append(*c, f)
}

// run calls the steps newest first, sharing one deadline
func (c *closers) run(timeout time.Duration) {
	steps := *c
	if len(steps) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for i := len(steps) - 1; i >= 0; i-- {
		steps[i](ctx)
	}
	log.Println("Shutdown completed")
}
