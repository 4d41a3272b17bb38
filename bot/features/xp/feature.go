package xp

import (
	"natanbot/bot/common"
	"natanbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the experience commands
type Feature struct {
	ledger interfaces.LedgerService
	xp     interfaces.XPService
	cards  *RankCardGenerator
}

// New creates a new XP feature
func New(ledger interfaces.LedgerService, xp interfaces.XPService) *Feature {
	return &Feature{
		ledger: ledger,
		xp:     xp,
		cards:  NewRankCardGenerator(),
	}
}

// Handles reports whether name is one of this feature's commands
func (f *Feature) Handles(name string) bool {
	switch name {
	case "xp", "topxp", "xpconfig":
		return true
	}
	return false
}

// HandleCommand handles XP slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var err error
	switch name := i.ApplicationCommandData().Name; name {
	case "xp":
		err = f.handleXP(s, i)
	case "topxp":
		err = f.handleLeaderboard(s, i)
	case "xpconfig":
		err = f.handleConfig(s, i)
	default:
		log.Warnf("Unknown xp command: %s", name)
		common.RespondWithError(s, i, "Unknown command")
		return
	}
	if err != nil {
		common.HandleError(s, i, err, false)
	}
}
