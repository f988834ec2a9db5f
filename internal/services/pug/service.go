package pug

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/pugbot/internal/common/clock"
	"github.com/KirkDiggler/pugbot/internal/common/logger"
	"github.com/KirkDiggler/pugbot/internal/common/uuid"
	"github.com/KirkDiggler/pugbot/internal/draw"
	"github.com/KirkDiggler/pugbot/internal/models"
	pugCore "github.com/KirkDiggler/pugbot/internal/pug"
	matchRepo "github.com/KirkDiggler/pugbot/internal/repositories/match"
	"go.uber.org/zap"
)

// channel is the pug state of a single chat channel
type channel struct {
	id  string
	pug *pugCore.Pug

	// pending is the scheduled stage, nil when none is pending
	pending *pendingStage
}

// pendingStage identifies one scheduled stage so a stale timer can tell it was superseded
type pendingStage struct {
	timer clock.Timer
}

// service implements the Service interface
type service struct {
	mu sync.Mutex

	pugConfig     *pugCore.Config
	stageDelay    time.Duration
	matchRepo     matchRepo.Repository
	sampler       draw.Sampler
	clock         clock.Clock
	uuidGenerator uuid.Generator
	listener      Listener
	log           *zap.Logger

	channels map[string]*channel
}

// New creates a new pug service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.PugConfig == nil {
		return nil, ErrNilPugConfig
	}
	if err := cfg.PugConfig.Validate(); err != nil {
		return nil, err
	}
	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}
	if cfg.Sampler == nil {
		return nil, ErrNilSampler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.StageDelay < 0 {
		return nil, errors.New("stage delay cannot be negative")
	}

	return &service{
		pugConfig:     cfg.PugConfig,
		stageDelay:    cfg.StageDelay,
		matchRepo:     cfg.MatchRepo,
		sampler:       cfg.Sampler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		listener:      cfg.Listener,
		log:           logger.OrNop(cfg.Logger),
		channels:      make(map[string]*channel),
	}, nil
}

// SetListener registers who is told about delayed stages
func (s *service) SetListener(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = listener
}

// Close cancels every pending stage
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.channels {
		s.cancelStage(ch)
	}
}

// Add queues a player and stages the pug once it is ready
func (s *service) Add(ctx context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}
	if input.PlayerID == "" {
		return nil, ErrMissingPlayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.getOrCreate(input.ChannelID)
	if err != nil {
		return nil, err
	}

	if ch.pug.InDraft(input.PlayerID) {
		return nil, ErrPlayerInDraft
	}

	valid, ignored := s.pugConfig.FilterRoles(parseRoles(input.Roles))
	if err := ch.pug.Add(input.PlayerID, valid, input.Captain); err != nil {
		return nil, err
	}

	s.log.Debug("player added",
		zap.String("channel", ch.id),
		zap.String("player", input.PlayerID),
		zap.Strings("roles", roleNames(valid)),
		zap.Bool("captain", input.Captain))

	staged, scheduled, err := s.maybeStage(ch)
	if err != nil {
		return nil, err
	}

	return &AddOutput{
		Roles:          roleNames(valid),
		IgnoredRoles:   roleNames(ignored),
		Unstaged:       ch.pug.UnstagedIDs(),
		Need:           needView(s.pugConfig, ch.pug.Need()),
		Staged:         staged,
		StageScheduled: scheduled,
	}, nil
}

// Remove takes a player off the waiting roster
func (s *service) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}
	if input.PlayerID == "" {
		return nil, ErrMissingPlayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.getOrCreate(input.ChannelID)
	if err != nil {
		return nil, err
	}

	if ch.pug.InDraft(input.PlayerID) {
		return nil, ErrPlayerInDraft
	}

	if err := ch.pug.Remove(input.PlayerID); err != nil {
		return nil, err
	}

	s.log.Debug("player removed",
		zap.String("channel", ch.id),
		zap.String("player", input.PlayerID))

	cancelled := false
	if ch.pending != nil && !ch.pug.CanStage() {
		s.cancelStage(ch)
		cancelled = true
		s.log.Info("pending stage cancelled", zap.String("channel", ch.id))
	}

	// A roster left ready by an aborted draft stages once it is touched
	staged, scheduled, err := s.maybeStage(ch)
	if err != nil {
		return nil, err
	}

	return &RemoveOutput{
		Unstaged:       ch.pug.UnstagedIDs(),
		Need:           needView(s.pugConfig, ch.pug.Need()),
		StageCancelled: cancelled,
		Staged:         staged,
		StageScheduled: scheduled,
	}, nil
}

// Abort lets a captain call off the running draft. Everyone in it goes back
// to the waiting roster; the roster is staged again on the next add or remove.
func (s *service) Abort(ctx context.Context, input *AbortInput) (*AbortOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.channels[input.ChannelID]
	if !ok || !ch.pug.Drafting() {
		return nil, ErrNotDrafting
	}

	captains, _ := ch.pug.Captains()
	if input.PlayerID != captains[0] && input.PlayerID != captains[1] {
		return nil, ErrNotAbortCaptain
	}

	if err := ch.pug.Abort(); err != nil {
		return nil, err
	}

	s.log.Info("draft aborted",
		zap.String("channel", ch.id),
		zap.String("player", input.PlayerID))

	return &AbortOutput{
		Unstaged: ch.pug.UnstagedIDs(),
		Need:     needView(s.pugConfig, ch.pug.Need()),
	}, nil
}

// Rename follows an identity change through one or every channel
func (s *service) Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error) {
	if input == nil || input.OldID == "" || input.NewID == "" {
		return nil, ErrMissingPlayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var targets []*channel
	if input.ChannelID != "" {
		if ch, ok := s.channels[input.ChannelID]; ok {
			targets = append(targets, ch)
		}
	} else {
		for _, ch := range s.channels {
			targets = append(targets, ch)
		}
	}

	renamed := []string{}
	for _, ch := range targets {
		if !ch.pug.InDraft(input.OldID) && !containsID(ch.pug.UnstagedIDs(), input.OldID) {
			continue
		}
		ch.pug.Rename(input.OldID, input.NewID)
		renamed = append(renamed, ch.id)
	}
	sort.Strings(renamed)

	if len(renamed) > 0 {
		s.log.Info("player renamed",
			zap.String("player", input.OldID),
			zap.String("new_player", input.NewID),
			zap.Strings("channels", renamed))
	}

	return &RenameOutput{
		Channels: renamed,
	}, nil
}

// Pick checks that the caller may make this pick and applies it
func (s *service) Pick(ctx context.Context, input *PickInput) (*PickOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.channels[input.ChannelID]
	if !ok || !ch.pug.Drafting() {
		return nil, ErrNotDrafting
	}

	team, err := s.authorizePick(ch, input)
	if err != nil {
		return nil, err
	}
	role := pugCore.Role(strings.ToLower(input.Role))

	if err := ch.pug.Pick(input.PlayerID, role); err != nil {
		return nil, err
	}

	s.log.Info("player picked",
		zap.String("channel", ch.id),
		zap.String("captain", input.CaptainID),
		zap.String("player", input.PlayerID),
		zap.String("role", string(role)))

	output := &PickOutput{
		Team:  team,
		Color: s.pugConfig.TeamColor(team),
		Role:  string(role),
	}

	if !ch.pug.CanStart() {
		output.Draft = draftView(ch.pug)
		return output, nil
	}

	game, err := ch.pug.MakeGame()
	if err != nil {
		return nil, err
	}

	match := s.newMatch(ch.id, game)
	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
		// The game is made either way; only the history entry is lost
		s.log.Error("failed to save match",
			zap.String("channel", ch.id),
			zap.String("match_id", match.ID),
			zap.Error(err))
	} else {
		s.log.Info("match made",
			zap.String("channel", ch.id),
			zap.String("match_id", match.ID))
	}
	output.Match = match

	staged, scheduled, err := s.maybeStage(ch)
	if err != nil {
		return nil, err
	}
	output.Staged = staged
	output.StageScheduled = scheduled

	return output, nil
}

// authorizePick returns the picking team once every check has passed
func (s *service) authorizePick(ch *channel, input *PickInput) (int, error) {
	captains, _ := ch.pug.Captains()
	if input.CaptainID != captains[0] && input.CaptainID != captains[1] {
		return 0, ErrNotCaptain
	}

	picking, _ := ch.pug.PickingCaptain()
	if input.CaptainID != picking {
		return 0, ErrNotYourPick
	}

	role := pugCore.Role(strings.ToLower(input.Role))
	if !s.pugConfig.IsRole(role) {
		return 0, ErrUnknownRole
	}

	// Any staged player may fill any open role, whatever they added for
	if _, ok := ch.pug.StagedPlayer(input.PlayerID); !ok {
		return 0, ErrPlayerNotStaged
	}

	team, _ := ch.pug.PickingTeam()
	return team, nil
}

// Need reports what the waiting roster still lacks
func (s *service) Need(ctx context.Context, input *NeedInput) (*NeedOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.getOrCreate(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return &NeedOutput{
		Need:     needView(s.pugConfig, ch.pug.Need()),
		Drafting: ch.pug.Drafting(),
	}, nil
}

// Status describes a channel's pug
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.getOrCreate(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return &StatusOutput{
		ChannelID:    ch.id,
		Unstaged:     playerViews(ch.pug.UnstagedPlayers()),
		Need:         needView(s.pugConfig, ch.pug.Need()),
		Draft:        draftView(ch.pug),
		StagePending: ch.pending != nil,
	}, nil
}

// LastMatch returns the most recent match of a channel
func (s *service) LastMatch(ctx context.Context, input *LastMatchInput) (*LastMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	match, err := s.matchRepo.GetLastMatch(ctx, &matchRepo.GetLastMatchInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to get last match: %w", err)
	}

	return &LastMatchOutput{
		Match: match,
	}, nil
}

// getOrCreate returns the channel's pug, creating an idle one on first use.
// Callers hold s.mu.
func (s *service) getOrCreate(channelID string) (*channel, error) {
	if ch, ok := s.channels[channelID]; ok {
		return ch, nil
	}

	p, err := pugCore.New(s.pugConfig, s.sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to create pug: %w", err)
	}

	ch := &channel{
		id:  channelID,
		pug: p,
	}
	s.channels[channelID] = ch
	return ch, nil
}

// maybeStage stages a ready roster now or schedules it, depending on the
// configured delay. Callers hold s.mu.
func (s *service) maybeStage(ch *channel) (*DraftView, bool, error) {
	if ch.pug.Drafting() || !ch.pug.CanStage() {
		return nil, false, nil
	}

	if s.stageDelay == 0 {
		if err := s.stage(ch); err != nil {
			return nil, false, err
		}
		return draftView(ch.pug), false, nil
	}

	if ch.pending == nil {
		pending := &pendingStage{}
		pending.timer = s.clock.AfterFunc(s.stageDelay, func() {
			s.fireStage(ch, pending)
		})
		ch.pending = pending
		s.log.Info("stage scheduled",
			zap.String("channel", ch.id),
			zap.Duration("delay", s.stageDelay))
	}
	return nil, true, nil
}

// fireStage runs a delayed stage. A timer that was cancelled or replaced
// after it fired does nothing.
func (s *service) fireStage(ch *channel, pending *pendingStage) {
	s.mu.Lock()

	if ch.pending != pending {
		s.mu.Unlock()
		return
	}
	ch.pending = nil

	if ch.pug.Drafting() || !ch.pug.CanStage() {
		s.mu.Unlock()
		return
	}

	if err := s.stage(ch); err != nil {
		s.mu.Unlock()
		s.log.Error("delayed stage failed",
			zap.String("channel", ch.id),
			zap.Error(err))
		return
	}

	view := draftView(ch.pug)
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener.OnStaged(context.Background(), ch.id, view)
	}
}

// stage starts the draft. Callers hold s.mu.
func (s *service) stage(ch *channel) error {
	if err := ch.pug.Stage(); err != nil {
		return fmt.Errorf("failed to stage pug: %w", err)
	}

	captains, _ := ch.pug.Captains()
	s.log.Info("pug staged",
		zap.String("channel", ch.id),
		zap.Strings("captains", captains[:]))
	return nil
}

// cancelStage stops a pending stage timer. Callers hold s.mu.
func (s *service) cancelStage(ch *channel) {
	if ch.pending == nil {
		return
	}
	if ch.pending.timer != nil {
		ch.pending.timer.Stop()
	}
	ch.pending = nil
}

func (s *service) newMatch(channelID string, game *pugCore.Game) *models.Match {
	match := &models.Match{
		ID:        s.uuidGenerator.NewMatchID(),
		ChannelID: channelID,
		Captains:  game.Captains,
		Teams:     make([]models.MatchTeam, 0, pugCore.NumTeams),
		CreatedAt: s.clock.Now(),
	}

	for i, team := range game.Teams {
		mt := models.MatchTeam{
			Color:   s.pugConfig.TeamColor(i),
			Captain: game.Captains[i],
			Slots:   make([]models.MatchSlot, 0, len(s.pugConfig.Roles)),
		}
		for _, role := range s.pugConfig.Roles {
			mt.Slots = append(mt.Slots, models.MatchSlot{
				Role:     string(role),
				PlayerID: team[role],
			})
		}
		match.Teams = append(match.Teams, mt)
	}

	return match
}

func draftView(p *pugCore.Pug) *DraftView {
	if !p.Drafting() {
		return nil
	}

	cfg := p.Config()
	captains, _ := p.Captains()
	teams, _ := p.Teams()
	picking, _ := p.PickingTeam()
	pickingCaptain, _ := p.PickingCaptain()

	view := &DraftView{
		Captains:       captains,
		PickingTeam:    picking,
		PickingCaptain: pickingCaptain,
		Staged:         playerViews(p.StagedPlayers()),
	}

	for i, team := range teams {
		tv := TeamView{
			Color:   cfg.TeamColor(i),
			Captain: captains[i],
			Picks:   []Slot{},
		}
		for _, role := range cfg.Roles {
			if id, ok := team[role]; ok {
				tv.Picks = append(tv.Picks, Slot{Role: string(role), PlayerID: id})
			}
		}
		view.Teams[i] = tv
	}

	return view
}

func needView(cfg *pugCore.Config, report pugCore.NeedReport) *NeedView {
	view := &NeedView{
		Captains: report.Captains,
		Roles:    []RoleNeed{},
	}
	for _, d := range report.Deficits(cfg) {
		view.Roles = append(view.Roles, RoleNeed{Role: string(d.Role), Count: d.Count})
	}
	return view
}

func playerViews(players map[string]pugCore.Player) []PlayerView {
	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, PlayerView{
			ID:      p.ID,
			Roles:   roleNames(p.Roles),
			Captain: p.Captain,
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].ID < views[j].ID
	})
	return views
}

func parseRoles(names []string) []pugCore.Role {
	roles := make([]pugCore.Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, pugCore.Role(strings.ToLower(strings.TrimSpace(name))))
	}
	return roles
}

func roleNames(roles []pugCore.Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return names
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
