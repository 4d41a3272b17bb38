package cmd

import (
	"context"
	"fmt"
	"strconv"

	"natanbot/bot"
	"natanbot/config"
	"natanbot/domain/interfaces"
	"natanbot/events"

	log "github.com/sirupsen/logrus"
)

// SetBalance overwrites a member's wallet from the command line
func SetBalance(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: natanbot set-balance <guild-id> <user-id> <amount>")
	}
	guildID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid guild ID %q: %w", args[0], err)
	}
	userID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", args[1], err)
	}
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}

	cfg := config.Get()
	ConfigureLogging(cfg)

	c, err := newContainer(cfg, events.NewBus(), nil)
	if err != nil {
		return err
	}
	account, err := c.economy.SetBalance(ctx, guildID, userID, amount)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guildID": guildID,
		"userID":  userID,
		"balance": account.Balance,
	}).Info("Balance updated")
	return nil
}

// SweepVIP removes expired VIP grants once and takes their roles back.
// The session is only used for REST calls, the gateway stays closed.
func SweepVIP(ctx context.Context) error {
	cfg := config.Get()
	ConfigureLogging(cfg)

	session, err := bot.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}
	return sweepVIP(ctx, cfg, bot.NewRoleManager(session))
}

func sweepVIP(ctx context.Context, cfg *config.Config, roles interfaces.RoleManager) error {
	c, err := newContainer(cfg, events.NewBus(), roles)
	if err != nil {
		return err
	}

	expired, err := c.vip.SweepExpired(ctx)
	log.WithField("removed", len(expired)).Info("VIP sweep completed")
	return err
}
