package bot

import (
	"context"
	"fmt"
	"strconv"

	"natanbot/bot/common"
	"natanbot/bot/features/economy"
	"natanbot/bot/features/vip"
	"natanbot/bot/features/xp"
	"natanbot/domain/entities"
	"natanbot/domain/interfaces"
	"natanbot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token string
	// GuildID registers commands to a single guild when set
	GuildID string
}

// Services are the domain services the features talk to
type Services struct {
	Ledger  interfaces.LedgerService
	Economy interfaces.EconomyService
	XP      interfaces.XPService
	VIP     interfaces.VIPService
}

// feature is a module owning one or more slash commands
type feature interface {
	Handles(name string) bool
	HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate)
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config   Config
	session  *discordgo.Session
	ledger   interfaces.LedgerService
	features []feature
}

// NewSession creates a Discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent
	return dg, nil
}

// New creates the bot, opens the gateway connection and registers commands
func New(config Config, dg *discordgo.Session, services Services) (*Bot, error) {
	bot := &Bot{
		config:  config,
		session: dg,
		ledger:  services.Ledger,
		features: []feature{
			economy.New(services.Ledger, services.Economy),
			xp.New(services.Ledger, services.XP),
			vip.New(services.VIP),
		},
	}

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleMessageCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close shuts down the gateway connection
func (b *Bot) Close() error {
	return b.session.Close()
}

// GuildCount returns how many guilds the session currently sees
func (b *Bot) GuildCount() int {
	if b.session.State == nil {
		return 0
	}
	b.session.State.RLock()
	defer b.session.State.RUnlock()
	return len(b.session.State.Guilds)
}

// handleCommands routes slash commands to the owning feature
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	for _, f := range b.features {
		if f.Handles(name) {
			f.HandleCommand(s, i)
			return
		}
	}
	log.Warnf("No feature handles command %s", name)
}

// handleGuildCreate logs guilds becoming available
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.WithFields(log.Fields{
		"guildID": g.ID,
		"name":    g.Name,
		"members": g.MemberCount,
	}).Info("Guild available")
}

// handleMessageCreate awards message XP and announces level-ups
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		log.Debugf("Skipping message %s - not from a guild (possibly a DM)", m.ID)
		return
	}

	observability.GetMetrics().RecordMessageRead("guild_message")

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}
	userID, err := common.ParseUserID(m.Author.ID)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", m.Author.ID, err)
		return
	}

	outcome, err := b.ledger.PerformAction(context.Background(), guildID, userID, entities.ActionMessageXP, entities.ActionParams{})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guild_id":   m.GuildID,
			"channel_id": m.ChannelID,
			"message_id": m.ID,
		}).Error("Failed to award message XP")
		return
	}

	if outcome.LeveledUp {
		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, xp.BuildLevelUpEmbed(userID, outcome.NewLevel)); err != nil {
			log.Errorf("Failed to announce level up in channel %s: %v", m.ChannelID, err)
		}
	}
}
