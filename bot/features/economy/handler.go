package economy

import (
	"context"
	"strings"

	"natanbot/bot/common"
	"natanbot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (o options) userID(name string) (int64, bool) {
	opt, ok := o[name]
	if !ok {
		return 0, false
	}
	id, err := common.ParseUserID(opt.UserValue(nil).ID)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (o options) integer(name string) (int64, bool) {
	opt, ok := o[name]
	if !ok {
		return 0, false
	}
	return opt.IntValue(), true
}

func (o options) text(name string) string {
	if opt, ok := o[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return ""
}

// paramsFor builds the action parameters from the command options
func paramsFor(kind entities.ActionKind, opts options) (entities.ActionParams, error) {
	var p entities.ActionParams
	p.TargetUserID, _ = opts.userID("user")
	p.Amount, _ = opts.integer("amount")
	p.Quantity, _ = opts.integer("quantity")
	p.Item = opts.text("item")
	p.CrimeKind = opts.text("kind")

	switch kind {
	case entities.ActionBet, entities.ActionDeposit, entities.ActionWithdraw, entities.ActionGift:
		if err := common.Validate(common.AmountRequest{Amount: p.Amount}); err != nil {
			return p, err
		}
	case entities.ActionBuy, entities.ActionSell:
		if err := common.Validate(common.QuantityRequest{Quantity: p.Quantity}); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (f *Feature) handleAction(s *discordgo.Session, i *discordgo.InteractionCreate, kind entities.ActionKind) {
	ctx := context.Background()

	guildID, userID, err := common.InteractionIDs(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	if kind == entities.ActionGive {
		if err := common.RequireAdmin(s, i); err != nil {
			common.HandleError(s, i, err, false)
			return
		}
	}

	params, err := paramsFor(kind, optionsOf(i.ApplicationCommandData().Options))
	if err != nil {
		common.HandleError(s, i, common.FromServiceError(err, "invalid "+string(kind)+" options"), false)
		return
	}

	outcome, err := f.ledger.PerformAction(ctx, guildID, userID, kind, params)
	if err != nil {
		common.HandleError(s, i, common.FromServiceError(err, "failed to perform "+string(kind)), false)
		return
	}

	if !outcome.IsApplied() {
		common.RespondWithMessage(s, i, RejectionMessage(outcome), true)
		return
	}

	name := common.GetDisplayName(s, i.GuildID, common.InvokerID(i))
	if err := common.RespondWithEmbed(s, i, BuildOutcomeEmbed(outcome, name), false); err != nil {
		log.Errorf("Error responding to %s command: %v", kind, err)
	}
}

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	guildID, userID, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	opts := optionsOf(i.ApplicationCommandData().Options)
	if target, ok := opts.userID("user"); ok {
		userID = target
	}

	snap, err := f.ledger.QueryAccount(ctx, guildID, userID)
	if err != nil {
		return common.NewSystemError(err, "failed to query account")
	}

	name := common.GetDisplayNameInt64(s, i.GuildID, userID)
	return common.RespondWithEmbed(s, i, BuildBalanceEmbed(snap, name), false)
}

func (f *Feature) handleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	guildID, userID, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	snap, err := f.ledger.QueryAccount(ctx, guildID, userID)
	if err != nil {
		return common.NewSystemError(err, "failed to query account")
	}

	name := common.GetDisplayNameInt64(s, i.GuildID, userID)
	return common.RespondWithEmbed(s, i, BuildInventoryEmbed(snap, name), true)
}

func (f *Feature) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, _, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	items, err := f.economy.ListShop(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to list shop")
	}
	return common.RespondWithEmbed(s, i, BuildShopEmbed(items), false)
}

func (f *Feature) handleJobs(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, _, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	jobs, err := f.economy.ListJobs(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to list jobs")
	}
	return common.RespondWithEmbed(s, i, BuildJobsEmbed(jobs), false)
}

// handleAdmin handles /economy subcommands, all administrator only
func (f *Feature) handleAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	if err := common.RequireAdmin(s, i); err != nil {
		return err
	}
	guildID, _, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}

	sub := i.ApplicationCommandData().Options
	if len(sub) == 0 {
		return common.NewUserError("Missing subcommand.", "economy without subcommand")
	}
	opts := optionsOf(sub[0].Options)

	switch sub[0].Name {
	case "set-item":
		price, _ := opts.integer("price")
		req := common.ShopItemRequest{Name: opts.text("item"), Price: price}
		if err := common.Validate(req); err != nil {
			return common.FromServiceError(err, "invalid shop item")
		}
		item := entities.ShopItem{Name: req.Name, Description: opts.text("description"), Price: req.Price}
		if err := f.economy.UpsertShopItem(ctx, guildID, item); err != nil {
			return common.FromServiceError(err, "failed to save shop item")
		}
		return common.RespondWithSuccess(s, i, "Shop item **"+strings.ToLower(req.Name)+"** now costs "+common.FormatCoins(req.Price), true)

	case "set-balance":
		target, ok := opts.userID("user")
		if !ok {
			return common.NewUserError("Pick a member.", "set-balance without user")
		}
		amount, _ := opts.integer("amount")
		account, err := f.economy.SetBalance(ctx, guildID, target, amount)
		if err != nil {
			return common.FromServiceError(err, "failed to set balance")
		}
		return common.RespondWithSuccess(s, i, common.GetUserMention(target)+" now holds "+common.FormatCoins(account.Balance), true)
	}

	return common.NewUserError("Unknown subcommand.", "unknown economy subcommand "+sub[0].Name)
}
