package xp

import (
	"fmt"
	"strings"

	"natanbot/bot/common"
	"natanbot/domain/entities"
	"natanbot/domain/interfaces"
	"natanbot/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// BuildProfileEmbed shows level, rank and progress towards the next level
func BuildProfileEmbed(snap *entities.AccountSnapshot, name string, rank int) *discordgo.MessageEmbed {
	rankText := "Unranked"
	if rank > 0 {
		rankText = fmt.Sprintf("#%d", rank)
	}

	progress := snap.LevelProgress()
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Experience", name),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", snap.Level), Inline: true},
			{Name: "Rank", Value: rankText, Inline: true},
			{Name: "Messages", Value: common.FormatBalance(snap.Messages), Inline: true},
			{
				Name: "Progress",
				Value: fmt.Sprintf("`%s` %d%%\n%s / %s XP",
					utils.ProgressBar(progress, common.ProgressBarWidth),
					int(progress*100),
					common.FormatBalance(snap.Experience),
					common.FormatBalance(snap.NextLevelXP)),
				Inline: false,
			},
		},
	}
	if snap.IsVIP {
		embed.Color = common.ColorGold
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "👑 VIP"}
	}
	return embed
}

// BuildLeaderboardEmbed renders one page of the XP ranking
func BuildLeaderboardEmbed(entries []interfaces.LeaderboardEntry, page, pages int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  "🏆 XP Leaderboard",
		Color:  common.ColorGold,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Page %d/%d", page, pages)},
	}
	if len(entries) == 0 {
		embed.Description = "Nobody has earned experience yet."
		return embed
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		prefix := fmt.Sprintf("**%d.**", e.Rank)
		switch e.Rank {
		case 1:
			prefix = "🥇"
		case 2:
			prefix = "🥈"
		case 3:
			prefix = "🥉"
		}
		lines = append(lines, fmt.Sprintf("%s %s · level %d · %s XP",
			prefix, common.GetUserMention(e.UserID), e.Level, common.FormatBalance(e.Experience)))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}

// BuildConfigEmbed shows the guild's XP settings
func BuildConfigEmbed(cfg *entities.XPConfig) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "⚙️ XP Settings",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "XP per Message", Value: fmt.Sprintf("%d-%d", cfg.MinXP, cfg.MaxXP), Inline: true},
			{Name: "XP per Level", Value: fmt.Sprintf("%d", cfg.XPPerLevel), Inline: true},
			{Name: "Cooldown", Value: fmt.Sprintf("%ds (VIP %ds)", cfg.CooldownSeconds, cfg.VIPCooldownSeconds), Inline: true},
		},
	}
}

// BuildLevelUpEmbed announces a level-up in the channel the message was sent to
func BuildLevelUpEmbed(userID int64, level int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎉 Level Up!",
		Color:       common.ColorSuccess,
		Description: fmt.Sprintf("%s reached **level %d**!", common.GetUserMention(userID), level),
	}
}
