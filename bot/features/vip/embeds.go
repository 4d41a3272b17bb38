package vip

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"natanbot/bot/common"
	"natanbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// BuildStatusEmbed answers /vip check
func BuildStatusEmbed(userID int64, expiry *time.Time, now time.Time) *discordgo.MessageEmbed {
	if expiry == nil {
		return &discordgo.MessageEmbed{
			Title:       "VIP Status",
			Color:       common.ColorInfo,
			Description: fmt.Sprintf("%s is not a VIP.", common.GetUserMention(userID)),
		}
	}
	return &discordgo.MessageEmbed{
		Title:       "👑 VIP Status",
		Color:       common.ColorGold,
		Description: fmt.Sprintf("%s is a VIP.", common.GetUserMention(userID)),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Expires", Value: common.FormatDiscordTimestamp(*expiry, "F"), Inline: true},
			{Name: "Remaining", Value: common.FormatDuration(expiry.Sub(now)), Inline: true},
		},
	}
}

// BuildGrantedEmbed confirms a new grant
func BuildGrantedEmbed(grant *entities.VIPGrant) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "👑 VIP Granted",
		Color:       common.ColorGold,
		Description: fmt.Sprintf("%s is now a VIP!", common.GetUserMention(grant.UserID)),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Expires", Value: common.FormatDiscordTimestamp(grant.ExpiresAt, "R"), Inline: true},
			{Name: "Granted By", Value: common.GetUserMention(grant.GrantedBy), Inline: true},
		},
	}
}

// BuildConfigEmbed shows role and multipliers
func BuildConfigEmbed(cfg *entities.VIPConfig) *discordgo.MessageEmbed {
	role := "not set"
	if cfg.RoleID != 0 {
		role = common.GetRoleMention(cfg.RoleID)
	}

	categories := make([]string, 0, len(cfg.Multipliers))
	for c := range cfg.Multipliers {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("**%s** ×%g", c, cfg.Multiplier(c)))
	}
	multipliers := "none"
	if len(lines) > 0 {
		multipliers = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title: "⚙️ VIP Settings",
		Color: common.ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Role", Value: role, Inline: true},
			{Name: "Crime / Rob Bonus", Value: fmt.Sprintf("+%d%% / +%d%%", cfg.CrimeSuccessBonus, cfg.RobSuccessBonus), Inline: true},
			{Name: "Multipliers", Value: multipliers, Inline: false},
		},
	}
}

// BuildListEmbed lists active grants, at most limit of them
func BuildListEmbed(grants []*entities.VIPGrant, limit int, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("👑 VIP Members (%d)", len(grants)),
		Color: common.ColorGold,
	}
	if len(grants) == 0 {
		embed.Description = "No active VIPs."
		return embed
	}

	shown := grants
	if len(shown) > limit {
		shown = shown[:limit]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, g := range shown {
		lines = append(lines, fmt.Sprintf("%s · %s left", common.GetUserMention(g.UserID), common.FormatDuration(g.Remaining(now))))
	}
	if len(grants) > limit {
		lines = append(lines, fmt.Sprintf("...and %d more", len(grants)-limit))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}
