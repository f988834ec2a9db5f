package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/pugbot/internal/common/logger"
	"github.com/KirkDiggler/pugbot/internal/models"
	pugCore "github.com/KirkDiggler/pugbot/internal/pug"
	"github.com/KirkDiggler/pugbot/internal/services/messaging"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	"go.uber.org/zap"
)

// Reply is a message the bot should send. A reply with a PlayerID is a
// direct message to that player, otherwise it goes to ChannelID.
type Reply struct {
	ChannelID string
	PlayerID  string
	Text      string
}

// Request is a command issued by a player in a channel
type Request struct {
	ChannelID string
	PlayerID  string
	Command   *Command
}

// RouterConfig holds the dependencies of a Router
type RouterConfig struct {
	PugService       pugService.Service
	MessagingService messaging.Service
	Logger           *zap.Logger
}

// Router turns commands into pug service calls and the replies they produce
type Router struct {
	pugService pugService.Service
	messaging  messaging.Service
	log        *zap.Logger
}

// NewRouter creates a router
func NewRouter(cfg *RouterConfig) (*Router, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.PugService == nil {
		return nil, errors.New("pug service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Router{
		pugService: cfg.PugService,
		messaging:  cfg.MessagingService,
		log:        logger.OrNop(cfg.Logger),
	}, nil
}

// Route runs a command. Rejections by the pug service come back as replies;
// the error is only set when no reply could be built.
func (r *Router) Route(ctx context.Context, req *Request) ([]Reply, error) {
	if req == nil || req.Command == nil {
		return nil, errors.New("request and command cannot be nil")
	}

	switch req.Command.Name {
	case CommandAdd:
		return r.handleAdd(ctx, req)
	case CommandRemove:
		return r.handleRemove(ctx, req)
	case CommandPick:
		return r.handlePick(ctx, req)
	case CommandAbort:
		return r.handleAbort(ctx, req)
	case CommandNeed:
		return r.handleNeed(ctx, req)
	case CommandStatus:
		return r.handleStatus(ctx, req)
	case CommandLast:
		return r.handleLast(ctx, req)
	default:
		return r.usage(ctx, req)
	}
}

// StagedReplies announces a draft that was staged on a timer
func (r *Router) StagedReplies(ctx context.Context, channelID string, draft *pugService.DraftView) ([]Reply, error) {
	return r.stagedReplies(ctx, channelID, draft)
}

func (r *Router) handleAdd(ctx context.Context, req *Request) ([]Reply, error) {
	roles, captain := splitAddArgs(req.Command.Args)

	out, err := r.pugService.Add(ctx, &pugService.AddInput{
		ChannelID: req.ChannelID,
		PlayerID:  req.PlayerID,
		Roles:     roles,
		Captain:   captain,
	})
	if err != nil {
		return r.errorReply(ctx, req, err)
	}

	var replies []Reply
	if len(out.IgnoredRoles) > 0 {
		replies = append(replies, Reply{
			ChannelID: req.ChannelID,
			Text:      fmt.Sprintf("%s, ignored unknown roles: %s", req.PlayerID, strings.Join(out.IgnoredRoles, ", ")),
		})
	}

	if out.Staged != nil {
		staged, err := r.stagedReplies(ctx, req.ChannelID, out.Staged)
		if err != nil {
			return nil, err
		}
		return append(replies, staged...), nil
	}

	added, err := r.messaging.GetPlayersAddedMessage(ctx, &messaging.GetPlayersAddedMessageInput{
		Players: out.Unstaged,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build players message: %w", err)
	}
	replies = append(replies, Reply{ChannelID: req.ChannelID, Text: added.Message})

	if out.StageScheduled {
		replies = append(replies, Reply{ChannelID: req.ChannelID, Text: "The pug will be staged shortly"})
	}

	return replies, nil
}

func (r *Router) handleRemove(ctx context.Context, req *Request) ([]Reply, error) {
	out, err := r.pugService.Remove(ctx, &pugService.RemoveInput{
		ChannelID: req.ChannelID,
		PlayerID:  req.PlayerID,
	})
	if err != nil {
		return r.errorReply(ctx, req, err)
	}

	if out.Staged != nil {
		return r.stagedReplies(ctx, req.ChannelID, out.Staged)
	}

	added, err := r.messaging.GetPlayersAddedMessage(ctx, &messaging.GetPlayersAddedMessageInput{
		Players: out.Unstaged,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build players message: %w", err)
	}

	replies := []Reply{{ChannelID: req.ChannelID, Text: added.Message}}
	if out.StageCancelled {
		replies = append(replies, Reply{ChannelID: req.ChannelID, Text: "Staging cancelled, the pug is no longer full"})
	}
	if out.StageScheduled {
		replies = append(replies, Reply{ChannelID: req.ChannelID, Text: "The pug will be staged shortly"})
	}
	return replies, nil
}

func (r *Router) handlePick(ctx context.Context, req *Request) ([]Reply, error) {
	args := req.Command.Args
	if len(args) < 2 {
		return r.usage(ctx, req)
	}

	// Display names may contain spaces, the role is always the last word
	out, err := r.pugService.Pick(ctx, &pugService.PickInput{
		ChannelID: req.ChannelID,
		CaptainID: req.PlayerID,
		PlayerID:  strings.Join(args[:len(args)-1], " "),
		Role:      args[len(args)-1],
	})
	if err != nil {
		return r.errorReply(ctx, req, err)
	}

	if out.Match == nil {
		prompt, err := r.messaging.GetPickPromptMessage(ctx, &messaging.GetPickPromptMessageInput{
			Draft: out.Draft,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build pick prompt: %w", err)
		}
		return []Reply{{ChannelID: req.ChannelID, Text: prompt.Message}}, nil
	}

	replies, err := r.matchReplies(ctx, req.ChannelID, out.Match)
	if err != nil {
		return nil, err
	}

	if out.Staged != nil {
		staged, err := r.stagedReplies(ctx, req.ChannelID, out.Staged)
		if err != nil {
			return nil, err
		}
		replies = append(replies, staged...)
	}

	return replies, nil
}

func (r *Router) handleAbort(ctx context.Context, req *Request) ([]Reply, error) {
	out, err := r.pugService.Abort(ctx, &pugService.AbortInput{
		ChannelID: req.ChannelID,
		PlayerID:  req.PlayerID,
	})
	if err != nil {
		return r.errorReply(ctx, req, err)
	}

	aborted, err := r.messaging.GetDraftAbortedMessage(ctx, &messaging.GetDraftAbortedMessageInput{
		CaptainID: req.PlayerID,
		Players:   out.Unstaged,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build abort message: %w", err)
	}

	return []Reply{{ChannelID: req.ChannelID, Text: aborted.Message}}, nil
}

func (r *Router) handleNeed(ctx context.Context, req *Request) ([]Reply, error) {
	out, err := r.pugService.Need(ctx, &pugService.NeedInput{
		ChannelID: req.ChannelID,
	})
	if err != nil {
		return r.errorReply(ctx, req, err)
	}

	need, err := r.messaging.GetNeedMessage(ctx, &messaging.GetNeedMessageInput{
		Need:     out.Need,
		Drafting: out.Drafting,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build need message: %w", err)
	}

	return []Reply{{ChannelID: req.ChannelID, Text: need.Message}}, nil
}

func (r *Router) handleStatus(ctx context.Context, req *Request) ([]Reply, error) {
	out, err := r.pugService.Status(ctx, &pugService.StatusInput{
		ChannelID: req.ChannelID,
	})
	if err != nil {
		return r.errorReply(ctx, req, err)
	}

	status, err := r.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Status: out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build status message: %w", err)
	}

	return []Reply{{ChannelID: req.ChannelID, Text: status.Message}}, nil
}

func (r *Router) handleLast(ctx context.Context, req *Request) ([]Reply, error) {
	out, err := r.pugService.LastMatch(ctx, &pugService.LastMatchInput{
		ChannelID: req.ChannelID,
	})
	if err != nil {
		return r.errorReply(ctx, req, err)
	}

	teams, err := r.messaging.GetTeamMessages(ctx, &messaging.GetTeamMessagesInput{
		Match: out.Match,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build team messages: %w", err)
	}

	replies := []Reply{{
		ChannelID: req.ChannelID,
		Text:      fmt.Sprintf("Last match, %s:", out.Match.CreatedAt.UTC().Format("2006-01-02 15:04 MST")),
	}}
	for _, line := range teams.Messages {
		replies = append(replies, Reply{ChannelID: req.ChannelID, Text: line})
	}
	return replies, nil
}

// stagedReplies announces the captains and prompts the first pick
func (r *Router) stagedReplies(ctx context.Context, channelID string, draft *pugService.DraftView) ([]Reply, error) {
	staged, err := r.messaging.GetStagedMessage(ctx, &messaging.GetStagedMessageInput{
		Draft: draft,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build staged message: %w", err)
	}

	prompt, err := r.messaging.GetPickPromptMessage(ctx, &messaging.GetPickPromptMessageInput{
		Draft: draft,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build pick prompt: %w", err)
	}

	return []Reply{
		{ChannelID: channelID, Text: staged.Message},
		{ChannelID: channelID, Text: prompt.Message},
	}, nil
}

// matchReplies posts the teams and tells every player their role
func (r *Router) matchReplies(ctx context.Context, channelID string, match *models.Match) ([]Reply, error) {
	teams, err := r.messaging.GetTeamMessages(ctx, &messaging.GetTeamMessagesInput{
		Match: match,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build team messages: %w", err)
	}

	var replies []Reply
	for _, line := range teams.Messages {
		replies = append(replies, Reply{ChannelID: channelID, Text: line})
	}

	for _, team := range match.Teams {
		for _, slot := range team.Slots {
			dm, err := r.messaging.GetPlayerPickedMessage(ctx, &messaging.GetPlayerPickedMessageInput{
				Role:  slot.Role,
				Color: team.Color,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to build picked message: %w", err)
			}
			replies = append(replies, Reply{PlayerID: slot.PlayerID, Text: dm.Message})
		}
	}

	return replies, nil
}

// ErrorReplies explains to the player why their command was refused
func (r *Router) ErrorReplies(ctx context.Context, req *Request, err error) ([]Reply, error) {
	if req == nil || req.Command == nil {
		return nil, errors.New("request and command cannot be nil")
	}
	return r.errorReply(ctx, req, err)
}

func (r *Router) errorReply(ctx context.Context, req *Request, err error) ([]Reply, error) {
	var serviceErr pugService.ServiceError
	var coreErr pugCore.Error
	if !errors.As(err, &serviceErr) && !errors.As(err, &coreErr) {
		r.log.Error("pug command failed",
			zap.String("channel", req.ChannelID),
			zap.String("player", req.PlayerID),
			zap.String("command", req.Command.Name),
			zap.Error(err))
	}

	msg, msgErr := r.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		PlayerID: req.PlayerID,
		Err:      err,
	})
	if msgErr != nil {
		return nil, fmt.Errorf("failed to build error message: %w", msgErr)
	}

	return []Reply{{ChannelID: req.ChannelID, Text: msg.Message}}, nil
}

func (r *Router) usage(ctx context.Context, req *Request) ([]Reply, error) {
	msg, err := r.messaging.GetUsageMessage(ctx, &messaging.GetUsageMessageInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build usage message: %w", err)
	}
	return []Reply{{ChannelID: req.ChannelID, Text: msg.Message}}, nil
}
