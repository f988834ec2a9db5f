package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	pugCore "github.com/KirkDiggler/pugbot/internal/pug"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
)

const (
	playersAddedTemplate = "Players added: %s"
	teamTemplate         = "%s team: %s"
	slotTemplate         = "%s on %s"
	playerPickedTemplate = "You have been picked as %s for %s team."
	draftAbortedTemplate = "Draft aborted by %s. Players are back in the queue: %s"
)

var errNilInput = errors.New("input cannot be nil")

// service implements the Service interface
type service struct {
	roles  []string
	prefix string
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	prefix := config.CommandPrefix
	if prefix == "" {
		prefix = ";"
	}

	roles := make([]string, len(config.Roles))
	copy(roles, config.Roles)

	return &service{
		roles:  roles,
		prefix: prefix,
	}, nil
}

// GetPlayersAddedMessage lists who is waiting for the next pug
func (s *service) GetPlayersAddedMessage(ctx context.Context, input *GetPlayersAddedMessageInput) (*GetPlayersAddedMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	if len(input.Players) == 0 {
		return &GetPlayersAddedMessageOutput{
			Message: "No players added",
		}, nil
	}

	return &GetPlayersAddedMessageOutput{
		Message: fmt.Sprintf(playersAddedTemplate, strings.Join(input.Players, ", ")),
	}, nil
}

// GetNeedMessage describes what the waiting roster still lacks
func (s *service) GetNeedMessage(ctx context.Context, input *GetNeedMessageInput) (*GetNeedMessageOutput, error) {
	if input == nil || input.Need == nil {
		return nil, errNilInput
	}

	if input.Need.Satisfied() {
		return &GetNeedMessageOutput{
			Message: "Nothing needed, the next pug is ready",
		}, nil
	}

	label := "Need"
	if input.Drafting {
		label = "Need for the next pug"
	}

	return &GetNeedMessageOutput{
		Message: fmt.Sprintf("%s: %s", label, formatNeed(input.Need)),
	}, nil
}

// GetStagedMessage announces a new draft and its captains
func (s *service) GetStagedMessage(ctx context.Context, input *GetStagedMessageInput) (*GetStagedMessageOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errNilInput
	}

	captains := make([]string, 0, pugCore.NumTeams)
	for _, team := range input.Draft.Teams {
		captains = append(captains, fmt.Sprintf("%s captain: %s", title(team.Color), team.Captain))
	}

	return &GetStagedMessageOutput{
		Message: fmt.Sprintf("Pug is staged. %s.", strings.Join(captains, ". ")),
	}, nil
}

// GetPickPromptMessage tells the picking captain who is still available
func (s *service) GetPickPromptMessage(ctx context.Context, input *GetPickPromptMessageInput) (*GetPickPromptMessageOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errNilInput
	}

	draft := input.Draft
	color := title(draft.Teams[draft.PickingTeam].Color)

	available := make([]string, 0, len(draft.Staged))
	for _, p := range draft.Staged {
		available = append(available, fmt.Sprintf("%s (%s)", p.ID, titleAll(p.Roles)))
	}

	return &GetPickPromptMessageOutput{
		Message: fmt.Sprintf("%s, your pick for %s team (%spick <player> <role>). Available: %s",
			draft.PickingCaptain, color, s.prefix, strings.Join(available, ", ")),
	}, nil
}

// GetDraftAbortedMessage announces that a captain called the draft off
func (s *service) GetDraftAbortedMessage(ctx context.Context, input *GetDraftAbortedMessageInput) (*GetDraftAbortedMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	return &GetDraftAbortedMessageOutput{
		Message: fmt.Sprintf(draftAbortedTemplate, input.CaptainID, strings.Join(input.Players, ", ")),
	}, nil
}

// GetTeamMessages returns one line per team of a finished match
func (s *service) GetTeamMessages(ctx context.Context, input *GetTeamMessagesInput) (*GetTeamMessagesOutput, error) {
	if input == nil || input.Match == nil {
		return nil, errNilInput
	}

	messages := make([]string, 0, len(input.Match.Teams))
	for _, team := range input.Match.Teams {
		slots := make([]string, 0, len(team.Slots))
		for _, slot := range team.Slots {
			slots = append(slots, fmt.Sprintf(slotTemplate, slot.PlayerID, title(slot.Role)))
		}
		messages = append(messages, fmt.Sprintf(teamTemplate, title(team.Color), strings.Join(slots, ", ")))
	}

	return &GetTeamMessagesOutput{
		Messages: messages,
	}, nil
}

// GetPlayerPickedMessage is the direct message sent to every player of a made game
func (s *service) GetPlayerPickedMessage(ctx context.Context, input *GetPlayerPickedMessageInput) (*GetPlayerPickedMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	return &GetPlayerPickedMessageOutput{
		Message: fmt.Sprintf(playerPickedTemplate, title(input.Role), title(input.Color)),
	}, nil
}

// GetStatusMessage summarizes a channel's pug, one line per part
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil || input.Status == nil {
		return nil, errNilInput
	}

	status := input.Status
	var lines []string

	if status.Draft != nil {
		for _, team := range status.Draft.Teams {
			picks := []string{fmt.Sprintf("%s (captain)", team.Captain)}
			for _, slot := range team.Picks {
				picks = append(picks, fmt.Sprintf(slotTemplate, slot.PlayerID, title(slot.Role)))
			}
			lines = append(lines, fmt.Sprintf(teamTemplate, title(team.Color), strings.Join(picks, ", ")))
		}
		lines = append(lines, fmt.Sprintf("%s to pick", status.Draft.PickingCaptain))
	}

	ids := make([]string, 0, len(status.Unstaged))
	for _, p := range status.Unstaged {
		ids = append(ids, p.ID)
	}
	added, err := s.GetPlayersAddedMessage(ctx, &GetPlayersAddedMessageInput{Players: ids})
	if err != nil {
		return nil, err
	}
	lines = append(lines, added.Message)

	if status.Need != nil {
		need, err := s.GetNeedMessage(ctx, &GetNeedMessageInput{
			Need:     status.Need,
			Drafting: status.Draft != nil,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, need.Message)
	}

	if status.StagePending {
		lines = append(lines, "The pug will be staged shortly")
	}

	return &GetStatusMessageOutput{
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errNilInput
	}

	var text string
	switch {
	case errors.Is(input.Err, pugService.ErrNotDrafting):
		text = "pug is not ready for picking"
	case errors.Is(input.Err, pugService.ErrNotCaptain):
		text = "only captains can pick"
	case errors.Is(input.Err, pugService.ErrNotYourPick):
		text = "it is not your pick"
	case errors.Is(input.Err, pugService.ErrPlayerNotStaged):
		text = "that player is not available to pick"
	case errors.Is(input.Err, pugService.ErrNotAbortCaptain):
		text = "only captains can abort the draft"
	case errors.Is(input.Err, pugService.ErrNameTaken):
		text = "that name is already used by another player, change your nickname to add"
	case errors.Is(input.Err, pugService.ErrUnknownRole), errors.Is(input.Err, pugCore.ErrUnknownRole):
		text = fmt.Sprintf("unknown role, pick one of: %s", strings.Join(s.roles, ", "))
	case errors.Is(input.Err, pugService.ErrPlayerInDraft):
		text = "you are in the running draft"
	case errors.Is(input.Err, pugCore.ErrMissingRole):
		text = fmt.Sprintf("add with at least one role: %s", strings.Join(s.roles, ", "))
	case errors.Is(input.Err, pugCore.ErrUnknownPlayer):
		text = "you are not added"
	case errors.Is(input.Err, pugCore.ErrRoleAlreadyPicked):
		text = "your team already has that role"
	case errors.Is(input.Err, pugService.ErrNoMatch):
		text = "no match has been played here yet"
	default:
		text = "something went wrong, try again"
	}

	return &GetErrorMessageOutput{
		Message: addressed(input.PlayerID, text),
	}, nil
}

// GetUsageMessage lists the available commands
func (s *service) GetUsageMessage(ctx context.Context, input *GetUsageMessageInput) (*GetUsageMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	commands := []string{
		fmt.Sprintf("%sadd <roles...> [captain]", s.prefix),
		fmt.Sprintf("%sremove", s.prefix),
		fmt.Sprintf("%spick <player> <role>", s.prefix),
		fmt.Sprintf("%sabort", s.prefix),
		fmt.Sprintf("%sneed", s.prefix),
		fmt.Sprintf("%sstatus", s.prefix),
		fmt.Sprintf("%slast", s.prefix),
	}

	return &GetUsageMessageOutput{
		Message: addressed(input.PlayerID, fmt.Sprintf("commands: %s", strings.Join(commands, ", "))),
	}, nil
}

func formatNeed(need *pugService.NeedView) string {
	var parts []string
	switch need.Captains {
	case 0:
	case 1:
		parts = append(parts, "1 captain")
	default:
		parts = append(parts, fmt.Sprintf("%d captains", need.Captains))
	}
	for _, r := range need.Roles {
		parts = append(parts, fmt.Sprintf("%d %s", r.Count, title(r.Role)))
	}
	return strings.Join(parts, ", ")
}

// addressed prefixes text with the player's name, capitalizing it otherwise
func addressed(playerID, text string) string {
	if playerID == "" {
		return title(text)
	}
	return fmt.Sprintf("%s, %s", playerID, text)
}

// title upper-cases the first letter of s
func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func titleAll(values []string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, title(v))
	}
	return strings.Join(out, ", ")
}
