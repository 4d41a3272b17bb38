package economy

import (
	"natanbot/bot/common"
	"natanbot/domain/entities"
	"natanbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the economy commands
type Feature struct {
	ledger  interfaces.LedgerService
	economy interfaces.EconomyService
}

// New creates a new economy feature
func New(ledger interfaces.LedgerService, economy interfaces.EconomyService) *Feature {
	return &Feature{
		ledger:  ledger,
		economy: economy,
	}
}

// actionCommands maps slash command names straight onto ledger actions
var actionCommands = map[string]entities.ActionKind{
	"daily":    entities.ActionDaily,
	"work":     entities.ActionWork,
	"crime":    entities.ActionCrime,
	"rob":      entities.ActionRob,
	"bet":      entities.ActionBet,
	"lottery":  entities.ActionLottery,
	"deposit":  entities.ActionDeposit,
	"withdraw": entities.ActionWithdraw,
	"buy":      entities.ActionBuy,
	"sell":     entities.ActionSell,
	"gift":     entities.ActionGift,
	"give":     entities.ActionGive,
	"hire":     entities.ActionHire,
	"fire":     entities.ActionFire,
}

// Handles reports whether name is one of this feature's commands
func (f *Feature) Handles(name string) bool {
	if _, ok := actionCommands[name]; ok {
		return true
	}
	switch name {
	case "balance", "shop", "jobs", "inventory", "economy":
		return true
	}
	return false
}

// HandleCommand handles economy slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	if kind, ok := actionCommands[name]; ok {
		f.handleAction(s, i, kind)
		return
	}

	var err error
	switch name {
	case "balance":
		err = f.handleBalance(s, i)
	case "inventory":
		err = f.handleInventory(s, i)
	case "shop":
		err = f.handleShop(s, i)
	case "jobs":
		err = f.handleJobs(s, i)
	case "economy":
		err = f.handleAdmin(s, i)
	default:
		log.Warnf("Unknown economy command: %s", name)
		common.RespondWithError(s, i, "Unknown command")
		return
	}
	if err != nil {
		common.HandleError(s, i, err, false)
	}
}
