package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pugbot/internal/common/logger"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// sender is the part of a Discord session used to deliver replies
type sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	sender     sender
	router     *Router
	pugService pugService.Service
	players    *directory
	commands   map[string]SlashCommand
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	log        *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// ChannelID limits the bot to one channel; empty means every channel
	ChannelID string

	// CommandPrefix starts a text command, e.g. ";"
	CommandPrefix string

	// Router handles parsed commands
	Router *Router

	// PugService receives identity changes
	PugService pugService.Service

	// Logger is optional; nil disables logging
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Router == nil {
		return nil, errors.New("router cannot be nil")
	}

	if cfg.PugService == nil {
		return nil, errors.New("pug service cannot be nil")
	}

	if cfg.CommandPrefix == "" {
		cfg.CommandPrefix = ";"
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildMembers |
		discordgo.IntentMessageContent

	bot := newBot(cfg, session)
	bot.session = session

	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handleGuildMemberUpdate)
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

func newBot(cfg *Config, s sender) *Bot {
	return &Bot{
		sender:     s,
		router:     cfg.Router,
		pugService: cfg.PugService,
		players:    newDirectory(),
		commands:   make(map[string]SlashCommand),
		commandIDs: make(map[string]string),
		config:     cfg,
		log:        logger.OrNop(cfg.Logger),
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewPugCommand(b)); err != nil {
		return fmt.Errorf("failed to register pug command: %w", err)
	}

	b.log.Info("bot is running", zap.String("prefix", b.config.CommandPrefix))
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID, guildID := b.commandScope()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.log.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd SlashCommand) error {
	appID, guildID := b.commandScope()
	def := cmd.Definition()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, def)
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", def.Name, err)
	}

	b.commands[def.Name] = cmd
	b.commandIDs[def.Name] = createdCmd.ID
	b.log.Info("registered command",
		zap.String("command", def.Name),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild", guildID))

	return nil
}

// commandScope returns the application and guild commands are registered under.
// An empty guild registers globally.
func (b *Bot) commandScope() (string, string) {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// OnStaged announces a draft that was staged on a timer
func (b *Bot) OnStaged(ctx context.Context, channelID string, draft *pugService.DraftView) {
	replies, err := b.router.StagedReplies(ctx, channelID, draft)
	if err != nil {
		b.log.Error("failed to build staged replies",
			zap.String("channel", channelID),
			zap.Error(err))
		return
	}
	b.deliver(ctx, replies)
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.log.Error("failed to handle command",
				zap.String("command", name),
				zap.Error(err))
		}
	}
}

// handleMessageCreate runs prefixed text commands
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.onMessage(context.Background(), m.Message)
}

func (b *Bot) onMessage(ctx context.Context, m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" || !b.watches(m.ChannelID) {
		return
	}

	cmd, ok := ParseCommand(b.config.CommandPrefix, m.Content)
	if !ok {
		return
	}

	name := displayName(m.Member, m.Author)
	req := &Request{
		ChannelID: m.ChannelID,
		PlayerID:  name,
		Command:   cmd,
	}

	var replies []Reply
	err := b.observe(ctx, m.Author.ID, name, "")
	if err != nil {
		replies, err = b.router.ErrorReplies(ctx, req, err)
	} else {
		replies, err = b.router.Route(ctx, req)
	}
	if err != nil {
		b.log.Error("failed to route command",
			zap.String("channel", m.ChannelID),
			zap.String("player", name),
			zap.String("command", cmd.Name),
			zap.Error(err))
		return
	}

	b.deliver(ctx, replies)
}

// handleGuildMemberUpdate follows nickname changes into every pug
func (b *Bot) handleGuildMemberUpdate(s *discordgo.Session, u *discordgo.GuildMemberUpdate) {
	if u.Member == nil || u.User == nil {
		return
	}

	before := ""
	if u.BeforeUpdate != nil {
		before = displayName(u.BeforeUpdate, u.User)
	}

	name := displayName(u.Member, u.User)
	if err := b.observe(context.Background(), u.User.ID, name, before); err != nil {
		b.log.Warn("member took a name another player uses, keeping the old one",
			zap.String("user", u.User.ID),
			zap.String("player", before),
			zap.String("new_player", name))
	}
}

// observe records a user's current display name and renames them in every
// pug when it changed. before is the previous name when the event carries it.
// A name another user already plays under is refused with ErrNameTaken.
func (b *Bot) observe(ctx context.Context, userID, name, before string) error {
	prior, known, err := b.players.Observe(userID, name)
	if err != nil {
		return err
	}
	if !known {
		prior = before
	}
	if prior == "" || prior == name {
		return nil
	}

	if _, err := b.pugService.Rename(ctx, &pugService.RenameInput{
		OldID: prior,
		NewID: name,
	}); err != nil {
		b.log.Error("failed to rename player",
			zap.String("player", prior),
			zap.String("new_player", name),
			zap.Error(err))
	}
	return nil
}

// watches reports whether the bot runs pugs in channelID
func (b *Bot) watches(channelID string) bool {
	return b.config.ChannelID == "" || b.config.ChannelID == channelID
}

// deliver sends replies, opening a DM channel for player replies
func (b *Bot) deliver(ctx context.Context, replies []Reply) {
	for _, reply := range replies {
		channelID := reply.ChannelID

		if reply.PlayerID != "" {
			userID, ok := b.players.UserID(reply.PlayerID)
			if !ok {
				b.log.Warn("no Discord user for player", zap.String("player", reply.PlayerID))
				continue
			}
			dm, err := b.sender.UserChannelCreate(userID)
			if err != nil {
				b.log.Error("failed to open DM channel",
					zap.String("player", reply.PlayerID),
					zap.Error(err))
				continue
			}
			channelID = dm.ID
		}

		if _, err := b.sender.ChannelMessageSend(channelID, reply.Text); err != nil {
			b.log.Error("failed to send message",
				zap.String("channel", channelID),
				zap.Error(err))
		}
	}
}
