package application

import (
	"context"

	"natanbot/events"
	"natanbot/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// RegisterApplicationSubscriptions wires the ledger events into metrics and the audit log
func RegisterApplicationSubscriptions(bus *events.Bus) {
	bus.Subscribe(events.EventTypeBalanceChange, handleBalanceChange)
	bus.Subscribe(events.EventTypeLevelUp, handleLevelUp)
	bus.Subscribe(events.EventTypeVIPGranted, handleVIPGranted)
	bus.Subscribe(events.EventTypeVIPExpired, handleVIPExpired)

	log.Info("Application event subscriptions registered successfully")
}

func handleBalanceChange(ctx context.Context, event events.Event) {
	e, ok := event.(events.BalanceChangeEvent)
	if !ok {
		log.Errorf("received %T in balance change handler", event)
		return
	}

	observability.GetMetrics().RecordBalanceTransaction(string(e.Kind))
	log.WithFields(log.Fields{
		"actionID":     e.ActionID,
		"guildID":      e.GuildID,
		"userID":       e.UserID,
		"kind":         e.Kind,
		"oldBalance":   e.OldBalance,
		"newBalance":   e.NewBalance,
		"changeAmount": e.ChangeAmount,
	}).Debug("Balance changed")
}

func handleLevelUp(ctx context.Context, event events.Event) {
	e, ok := event.(events.LevelUpEvent)
	if !ok {
		log.Errorf("received %T in level up handler", event)
		return
	}

	observability.GetMetrics().RecordLevelUp()
	log.WithFields(log.Fields{
		"guildID":  e.GuildID,
		"userID":   e.UserID,
		"oldLevel": e.OldLevel,
		"newLevel": e.NewLevel,
	}).Info("Member leveled up")
}

func handleVIPGranted(ctx context.Context, event events.Event) {
	e, ok := event.(events.VIPGrantedEvent)
	if !ok {
		log.Errorf("received %T in VIP granted handler", event)
		return
	}

	log.WithFields(log.Fields{
		"guildID":   e.Grant.GuildID,
		"userID":    e.Grant.UserID,
		"expiresAt": e.Grant.ExpiresAt,
	}).Debug("VIP grant recorded")
}

func handleVIPExpired(ctx context.Context, event events.Event) {
	e, ok := event.(events.VIPExpiredEvent)
	if !ok {
		log.Errorf("received %T in VIP expired handler", event)
		return
	}

	log.WithFields(log.Fields{
		"guildID":   e.Grant.GuildID,
		"userID":    e.Grant.UserID,
		"expiredAt": e.Grant.ExpiresAt,
	}).Info("VIP grant expired")
}
