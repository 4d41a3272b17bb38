package vip

import (
	"context"
	"fmt"
	"time"

	"natanbot/bot/common"
	"natanbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /vip command group
type Feature struct {
	vip interfaces.VIPService
	now func() time.Time
}

// New creates a new VIP feature
func New(vip interfaces.VIPService) *Feature {
	return &Feature{
		vip: vip,
		now: time.Now,
	}
}

// Handles reports whether name is one of this feature's commands
func (f *Feature) Handles(name string) bool {
	return name == "vip"
}

// HandleCommand routes /vip subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options
	if len(sub) == 0 {
		common.RespondWithError(s, i, "Missing subcommand")
		return
	}

	var err error
	switch sub[0].Name {
	case "check":
		err = f.handleCheck(s, i, sub[0])
	case "config":
		err = f.handleConfig(s, i)
	case "list":
		err = f.handleList(s, i)
	case "add", "remove", "role", "multiplier":
		if err = common.RequireAdmin(s, i); err == nil {
			err = f.handleAdmin(s, i, sub[0])
		}
	default:
		log.Warnf("Unknown vip subcommand: %s", sub[0].Name)
		common.RespondWithError(s, i, "Unknown subcommand")
		return
	}
	if err != nil {
		common.HandleError(s, i, err, false)
	}
}

func (f *Feature) handleCheck(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	guildID, userID, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	for _, opt := range sub.Options {
		if opt.Name == "user" {
			if userID, err = common.ParseUserID(opt.UserValue(nil).ID); err != nil {
				return common.NewUserError("Invalid member.", "bad user option")
			}
		}
	}

	expiry, err := f.vip.VIPExpiry(ctx, guildID, userID)
	if err != nil {
		return common.NewSystemError(err, "failed to check vip")
	}
	return common.RespondWithEmbed(s, i, BuildStatusEmbed(userID, expiry, f.now()), true)
}

func (f *Feature) handleConfig(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, _, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	cfg, err := f.vip.GetConfig(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to load vip config")
	}
	return common.RespondWithEmbed(s, i, BuildConfigEmbed(cfg), true)
}

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, _, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	grants, err := f.vip.ListActive(context.Background(), guildID)
	if err != nil {
		return common.NewSystemError(err, "failed to list vip grants")
	}
	return common.RespondWithEmbed(s, i, BuildListEmbed(grants, common.VIPListLimit, f.now()), true)
}

func (f *Feature) handleAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	guildID, adminID, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}

	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, o := range sub.Options {
		opts[o.Name] = o
	}
	targetID := func() (int64, error) {
		opt, ok := opts["user"]
		if !ok {
			return 0, common.NewUserError("Pick a member.", "vip without user")
		}
		return common.ParseUserID(opt.UserValue(nil).ID)
	}

	switch sub.Name {
	case "add":
		userID, err := targetID()
		if err != nil {
			return err
		}
		var days int64
		if opt, ok := opts["days"]; ok {
			days = opt.IntValue()
		}
		if err := common.Validate(common.VIPGrantRequest{Days: int(days)}); err != nil {
			return common.FromServiceError(err, "invalid vip days")
		}
		grant, err := f.vip.Grant(ctx, guildID, userID, adminID, int(days))
		if err != nil {
			return common.FromServiceError(err, "failed to grant vip")
		}
		return common.RespondWithEmbed(s, i, BuildGrantedEmbed(grant), false)

	case "remove":
		userID, err := targetID()
		if err != nil {
			return err
		}
		removed, err := f.vip.Revoke(ctx, guildID, userID)
		if err != nil {
			return common.FromServiceError(err, "failed to revoke vip")
		}
		if !removed {
			return common.NewUserError(common.GetUserMention(userID)+" is not a VIP.", "revoke without grant")
		}
		return common.RespondWithSuccess(s, i, "Removed VIP from "+common.GetUserMention(userID)+".", false)

	case "role":
		opt, ok := opts["role"]
		if !ok {
			return common.NewUserError("Pick a role.", "vip role without role")
		}
		roleID, err := common.ParseUserID(opt.RoleValue(nil, i.GuildID).ID)
		if err != nil {
			return common.NewUserError("Invalid role.", "bad role option")
		}
		if err := f.vip.SetRole(ctx, guildID, roleID); err != nil {
			return common.FromServiceError(err, "failed to set vip role")
		}
		return common.RespondWithSuccess(s, i, "VIP members now receive "+common.GetRoleMention(roleID)+".", true)

	case "multiplier":
		req := common.MultiplierRequest{}
		if opt, ok := opts["category"]; ok {
			req.Category = opt.StringValue()
		}
		if opt, ok := opts["value"]; ok {
			req.Value = opt.FloatValue()
		}
		if err := common.Validate(req); err != nil {
			return common.FromServiceError(err, "invalid multiplier")
		}
		if err := f.vip.SetMultiplier(ctx, guildID, req.Category, req.Value); err != nil {
			return common.FromServiceError(err, "failed to set multiplier")
		}
		return common.RespondWithSuccess(s, i, fmt.Sprintf("VIP %s multiplier set to ×%.2g.", req.Category, req.Value), true)
	}

	return common.NewUserError("Unknown subcommand.", "unknown vip subcommand "+sub.Name)
}
