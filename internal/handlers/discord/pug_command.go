package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// SlashCommand is an application command the bot registers and answers
type SlashCommand interface {
	// Definition returns what is registered with Discord
	Definition() *discordgo.ApplicationCommand

	// Handle answers an interaction for this command
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// PugCommand handles the /pug command, the slash form of the text commands
type PugCommand struct {
	definition *discordgo.ApplicationCommand
	bot        *Bot
}

// NewPugCommand creates a new pug command handler
func NewPugCommand(bot *Bot) *PugCommand {
	return &PugCommand{
		definition: &discordgo.ApplicationCommand{
			Name:        "pug",
			Description: "Pickup game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        CommandAdd,
					Description: "Add yourself to the next pug",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "roles",
							Description: "Roles you can play, separated by spaces",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        captainFlag,
							Description: "Willing to captain",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        CommandRemove,
					Description: "Remove yourself from the next pug",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        CommandPick,
					Description: "Pick a player for your team",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player",
							Description: "Player to pick",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "role",
							Description: "Role they will play",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        CommandAbort,
					Description: "Call off the running draft, captains only",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        CommandNeed,
					Description: "Show what the pug still needs",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        CommandStatus,
					Description: "Show the pug status",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        CommandLast,
					Description: "Show the last match",
				},
			},
		},
		bot: bot,
	}
}

// Definition returns the /pug command with one subcommand per text command
func (c *PugCommand) Definition() *discordgo.ApplicationCommand {
	return c.definition
}

// Handle processes a Discord interaction for the pug command
func (c *PugCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.definition.Name {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return respond(s, i, "Pugs can only be played in a server channel", true)
	}
	if !c.bot.watches(i.ChannelID) {
		return respond(s, i, "Pugs are not run in this channel", true)
	}

	cmd, err := commandFromInteraction(data)
	if err != nil {
		return respond(s, i, err.Error(), true)
	}

	ctx := context.Background()
	name := displayName(i.Member, i.Member.User)
	req := &Request{
		ChannelID: i.ChannelID,
		PlayerID:  name,
		Command:   cmd,
	}

	if err := c.bot.observe(ctx, i.Member.User.ID, name, ""); err != nil {
		rejected, replyErr := c.bot.router.ErrorReplies(ctx, req, err)
		if replyErr != nil || len(rejected) == 0 {
			return respond(s, i, "Something went wrong, try again", true)
		}
		return respond(s, i, rejected[0].Text, true)
	}

	replies, err := c.bot.router.Route(ctx, req)
	if err != nil {
		c.bot.log.Error("failed to route pug command",
			zap.String("channel", i.ChannelID),
			zap.String("player", name),
			zap.Error(err))
		return respond(s, i, "Something went wrong, try again", true)
	}

	// Replies for this channel answer the interaction, the rest are sent normally
	var inline []string
	var rest []Reply
	for _, reply := range replies {
		if reply.PlayerID == "" && reply.ChannelID == i.ChannelID {
			inline = append(inline, reply.Text)
			continue
		}
		rest = append(rest, reply)
	}

	if len(inline) == 0 {
		err = respond(s, i, "Done", true)
	} else {
		err = respond(s, i, strings.Join(inline, "\n"), false)
	}
	c.bot.deliver(ctx, rest)
	return err
}

// respond answers an interaction with text. Ephemeral answers are only shown
// to the caller.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, text string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{Content: text}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// commandFromInteraction converts a /pug subcommand into a text command
func commandFromInteraction(data discordgo.ApplicationCommandInteractionData) (*Command, error) {
	if len(data.Options) == 0 {
		return nil, errors.New("missing subcommand")
	}

	sub := data.Options[0]
	cmd := &Command{
		Name: sub.Name,
		Args: []string{},
	}

	switch sub.Name {
	case CommandAdd:
		for _, opt := range sub.Options {
			switch opt.Name {
			case "roles":
				cmd.Args = append(cmd.Args, strings.Fields(opt.StringValue())...)
			case captainFlag:
				if opt.BoolValue() {
					cmd.Args = append(cmd.Args, captainFlag)
				}
			}
		}
	case CommandPick:
		var player, role string
		for _, opt := range sub.Options {
			switch opt.Name {
			case "player":
				player = opt.StringValue()
			case "role":
				role = opt.StringValue()
			}
		}
		cmd.Args = append(cmd.Args, player, role)
	case CommandRemove, CommandAbort, CommandNeed, CommandStatus, CommandLast:
	default:
		return nil, errors.New("unknown subcommand")
	}

	return cmd, nil
}
