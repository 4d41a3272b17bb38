package xp

import (
	"bytes"
	"context"
	"fmt"

	"natanbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (f *Feature) handleXP(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	guildID, userID, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	if opt, ok := optionMap(i.ApplicationCommandData().Options)["user"]; ok {
		if userID, err = common.ParseUserID(opt.UserValue(nil).ID); err != nil {
			return common.NewUserError("Invalid member.", "bad user option")
		}
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		return common.NewSystemError(err, "failed to defer xp response")
	}

	snap, err := f.ledger.QueryAccount(ctx, guildID, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to query account"), true)
		return nil
	}
	rank, err := f.xp.Rank(ctx, guildID, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to compute rank"), true)
		return nil
	}

	name := common.GetDisplayNameInt64(s, i.GuildID, userID)
	embed := BuildProfileEmbed(snap, name, rank)

	png, err := f.cards.Generate(name, snap, rank)
	if err != nil {
		// Fall back to the plain embed
		log.WithError(err).Warn("Failed to render rank card")
		_, err = common.FollowUpWithEmbed(s, i, embed, false)
		return logFollowUp(err)
	}

	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + RankCardFilename}
	_, err = common.FollowUpWithEmbed(s, i, embed, false, &discordgo.File{
		Name:        RankCardFilename,
		ContentType: "image/png",
		Reader:      bytes.NewReader(png),
	})
	return logFollowUp(err)
}

func logFollowUp(err error) error {
	if err != nil {
		log.Errorf("Error sending xp follow-up: %v", err)
	}
	return nil
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, _, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}

	page := 1
	if opt, ok := optionMap(i.ApplicationCommandData().Options)["page"]; ok {
		page = int(opt.IntValue())
	}

	entries, pages, err := f.xp.Leaderboard(context.Background(), guildID, page, common.LeaderboardPerPage)
	if err != nil {
		return common.NewSystemError(err, "failed to load leaderboard")
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	return common.RespondWithEmbed(s, i, BuildLeaderboardEmbed(entries, page, pages), false)
}

// handleConfig handles /xpconfig subcommands; everything but show is admin only
func (f *Feature) handleConfig(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	guildID, _, err := common.InteractionIDs(i)
	if err != nil {
		return err
	}
	sub := i.ApplicationCommandData().Options
	if len(sub) == 0 {
		return common.NewUserError("Missing subcommand.", "xpconfig without subcommand")
	}
	opts := optionMap(sub[0].Options)

	if sub[0].Name == "show" {
		cfg, err := f.xp.GetConfig(ctx, guildID)
		if err != nil {
			return common.NewSystemError(err, "failed to load xp config")
		}
		return common.RespondWithEmbed(s, i, BuildConfigEmbed(cfg), true)
	}

	if err := common.RequireAdmin(s, i); err != nil {
		return err
	}

	var msg string
	switch sub[0].Name {
	case "set-range":
		req := common.XPRangeRequest{Min: intOpt(opts, "min"), Max: intOpt(opts, "max")}
		if err := common.Validate(req); err != nil {
			return common.FromServiceError(err, "invalid xp range")
		}
		if err := f.xp.SetXPRange(ctx, guildID, req.Min, req.Max); err != nil {
			return common.FromServiceError(err, "failed to set xp range")
		}
		msg = fmt.Sprintf("Messages now earn %d-%d XP.", req.Min, req.Max)

	case "set-per-level":
		amount := intOpt(opts, "amount")
		if err := f.xp.SetXPPerLevel(ctx, guildID, amount); err != nil {
			return common.FromServiceError(err, "failed to set xp per level")
		}
		msg = fmt.Sprintf("Levels now scale with %d XP.", amount)

	case "set-cooldown":
		seconds := intOpt(opts, "seconds")
		var vipSeconds *int64
		if _, ok := opts["vip_seconds"]; ok {
			v := intOpt(opts, "vip_seconds")
			vipSeconds = &v
		}
		if err := f.xp.SetCooldown(ctx, guildID, seconds, vipSeconds); err != nil {
			return common.FromServiceError(err, "failed to set xp cooldown")
		}
		msg = fmt.Sprintf("Message cooldown set to %ds.", seconds)

	case "reset":
		opt, ok := opts["user"]
		if !ok {
			return common.NewUserError("Pick a member.", "reset without user")
		}
		target, err := common.ParseUserID(opt.UserValue(nil).ID)
		if err != nil {
			return common.NewUserError("Invalid member.", "bad user option")
		}
		if err := f.xp.ResetUser(ctx, guildID, target); err != nil {
			return common.FromServiceError(err, "failed to reset xp")
		}
		msg = fmt.Sprintf("Reset the experience of %s.", common.GetUserMention(target))

	default:
		return common.NewUserError("Unknown subcommand.", "unknown xpconfig subcommand "+sub[0].Name)
	}

	return common.RespondWithSuccess(s, i, msg, true)
}

func intOpt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	if opt, ok := opts[name]; ok {
		return opt.IntValue()
	}
	return 0
}
