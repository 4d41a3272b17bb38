package bot

import (
	"fmt"

	"natanbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

var adminPermission int64 = discordgo.PermissionAdministrator

func userOption(description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: description,
		Required:    required,
	}
}

func amountOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: description,
		Required:    true,
	}
}

func itemOptions(verb string) []*discordgo.ApplicationCommandOption {
	minQty := float64(1)
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "item",
			Description: fmt.Sprintf("Item to %s", verb),
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "quantity",
			Description: "How many (default 1)",
			MinValue:    &minQty,
			MaxValue:    entities.MaxItemQuantity,
		},
	}
}

// Commands returns every slash command the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check a wallet, bank and net worth",
			Options:     []*discordgo.ApplicationCommandOption{userOption("Member to look up", false)},
		},
		{Name: "daily", Description: "Collect your daily reward"},
		{Name: "work", Description: "Work a shift at your job"},
		{
			Name:        "crime",
			Description: "Commit a crime for a chance at a big payout",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kind",
					Description: "Crime to commit (random when omitted)",
				},
			},
		},
		{
			Name:        "rob",
			Description: "Try to rob another member",
			Options:     []*discordgo.ApplicationCommandOption{userOption("Member to rob", true)},
		},
		{
			Name:        "bet",
			Description: "Bet coins on a coin flip",
			Options:     []*discordgo.ApplicationCommandOption{amountOption("Coins to bet")},
		},
		{Name: "lottery", Description: "Buy a lottery ticket"},
		{
			Name:        "deposit",
			Description: "Move coins from your wallet to the bank",
			Options:     []*discordgo.ApplicationCommandOption{amountOption("Coins to deposit")},
		},
		{
			Name:        "withdraw",
			Description: "Move coins from the bank to your wallet",
			Options:     []*discordgo.ApplicationCommandOption{amountOption("Coins to withdraw")},
		},
		{Name: "shop", Description: "Show the shop"},
		{Name: "buy", Description: "Buy an item from the shop", Options: itemOptions("buy")},
		{Name: "sell", Description: "Sell an item back to the shop", Options: itemOptions("sell")},
		{Name: "inventory", Description: "Show your items"},
		{Name: "jobs", Description: "List the available jobs"},
		{
			Name:        "gift",
			Description: "Give some of your coins to another member",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to gift", true),
				amountOption("Coins to gift"),
			},
		},
		{
			Name:                     "give",
			Description:              "Add or remove coins from a member",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to adjust", true),
				amountOption("Coins to add, negative to remove"),
			},
		},
		{
			Name:        "hire",
			Description: "Hire a member into your business",
			Options:     []*discordgo.ApplicationCommandOption{userOption("Member to hire", true)},
		},
		{
			Name:        "fire",
			Description: "Let one of your employees go",
			Options:     []*discordgo.ApplicationCommandOption{userOption("Employee to fire", true)},
		},
		{
			Name:                     "economy",
			Description:              "Economy administration",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-item",
					Description: "Add or reprice a shop item",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "item", Description: "Item name", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "price", Description: "Price in coins", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "Shop description"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-balance",
					Description: "Overwrite a member's wallet",
					Options: []*discordgo.ApplicationCommandOption{
						userOption("Member to fix", true),
						amountOption("New wallet balance"),
					},
				},
			},
		},
		{
			Name:        "xp",
			Description: "Show level, rank and progress",
			Options:     []*discordgo.ApplicationCommandOption{userOption("Member to look up", false)},
		},
		{
			Name:        "topxp",
			Description: "Show the XP leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "page", Description: "Page number"},
			},
		},
		{
			Name:                     "xpconfig",
			Description:              "XP administration",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "show", Description: "Show the XP settings"},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-range",
					Description: "Set the XP earned per message",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "min", Description: "Minimum XP", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "max", Description: "Maximum XP", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-per-level",
					Description: "Set the XP scale of levels",
					Options:     []*discordgo.ApplicationCommandOption{amountOption("XP per level")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-cooldown",
					Description: "Set the message XP cooldown",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "seconds", Description: "Cooldown in seconds", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "vip_seconds", Description: "VIP cooldown (half when omitted)"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset a member's experience",
					Options:     []*discordgo.ApplicationCommandOption{userOption("Member to reset", true)},
				},
			},
		},
		{
			Name:        "vip",
			Description: "VIP membership",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Grant VIP to a member",
					Options: []*discordgo.ApplicationCommandOption{
						userOption("Member to grant", true),
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "days", Description: "Duration in days", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Revoke a member's VIP",
					Options:     []*discordgo.ApplicationCommandOption{userOption("Member to revoke", true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "role",
					Description: "Set the role given to VIP members",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "VIP role", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "multiplier",
					Description: "Set a VIP bonus multiplier",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Bonus category",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "XP", Value: "xp"},
								{Name: "Coins", Value: "coins"},
								{Name: "Daily", Value: "daily"},
							},
						},
						{Type: discordgo.ApplicationCommandOptionNumber, Name: "value", Description: "Multiplier, 1 to 10", Required: true},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "config", Description: "Show the VIP settings"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "List active VIP members"},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "check",
					Description: "Check VIP status",
					Options:     []*discordgo.ApplicationCommandOption{userOption("Member to check", false)},
				},
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range Commands() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	return nil
}
