package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/pugbot/internal/models"
	pugCore "github.com/KirkDiggler/pugbot/internal/pug"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
	draft   *pugService.DraftView
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{
		Roles:         []string{"scout", "medic"},
		CommandPrefix: ";",
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()

	s.draft = &pugService.DraftView{
		Captains: [pugCore.NumTeams]string{"alice", "bob"},
		Teams: [pugCore.NumTeams]pugService.TeamView{
			{Color: "red", Captain: "alice", Picks: []pugService.Slot{{Role: "medic", PlayerID: "carol"}}},
			{Color: "blue", Captain: "bob", Picks: []pugService.Slot{}},
		},
		PickingTeam:    1,
		PickingCaptain: "bob",
		Staged: []pugService.PlayerView{
			{ID: "dave", Roles: []string{"medic", "scout"}},
			{ID: "erin", Roles: []string{"scout"}},
		},
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewService_NilConfig() {
	_, err := NewService(nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetPlayersAddedMessage() {
	out, err := s.service.GetPlayersAddedMessage(s.ctx, &GetPlayersAddedMessageInput{
		Players: []string{"alice", "bob"},
	})
	s.Require().NoError(err)
	s.Equal("Players added: alice, bob", out.Message)

	out, err = s.service.GetPlayersAddedMessage(s.ctx, &GetPlayersAddedMessageInput{})
	s.Require().NoError(err)
	s.Equal("No players added", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetNeedMessage() {
	out, err := s.service.GetNeedMessage(s.ctx, &GetNeedMessageInput{
		Need: &pugService.NeedView{
			Captains: 2,
			Roles:    []pugService.RoleNeed{{Role: "scout", Count: 1}, {Role: "medic", Count: 2}},
		},
	})
	s.Require().NoError(err)
	s.Equal("Need: 2 captains, 1 Scout, 2 Medic", out.Message)

	out, err = s.service.GetNeedMessage(s.ctx, &GetNeedMessageInput{
		Need:     &pugService.NeedView{Captains: 1},
		Drafting: true,
	})
	s.Require().NoError(err)
	s.Equal("Need for the next pug: 1 captain", out.Message)

	out, err = s.service.GetNeedMessage(s.ctx, &GetNeedMessageInput{
		Need: &pugService.NeedView{},
	})
	s.Require().NoError(err)
	s.Equal("Nothing needed, the next pug is ready", out.Message)

	_, err = s.service.GetNeedMessage(s.ctx, &GetNeedMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetStagedMessage() {
	out, err := s.service.GetStagedMessage(s.ctx, &GetStagedMessageInput{Draft: s.draft})
	s.Require().NoError(err)
	s.Equal("Pug is staged. Red captain: alice. Blue captain: bob.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetPickPromptMessage() {
	out, err := s.service.GetPickPromptMessage(s.ctx, &GetPickPromptMessageInput{Draft: s.draft})
	s.Require().NoError(err)
	s.Equal("bob, your pick for Blue team (;pick <player> <role>). Available: dave (Medic, Scout), erin (Scout)", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetTeamMessages() {
	match := &models.Match{
		Teams: []models.MatchTeam{
			{Color: "red", Slots: []models.MatchSlot{{Role: "scout", PlayerID: "alice"}, {Role: "medic", PlayerID: "carol"}}},
			{Color: "blue", Slots: []models.MatchSlot{{Role: "scout", PlayerID: "bob"}, {Role: "medic", PlayerID: "dave"}}},
		},
	}

	out, err := s.service.GetTeamMessages(s.ctx, &GetTeamMessagesInput{Match: match})
	s.Require().NoError(err)
	s.Equal([]string{
		"Red team: alice on Scout, carol on Medic",
		"Blue team: bob on Scout, dave on Medic",
	}, out.Messages)
}

func (s *MessagingServiceTestSuite) TestGetPlayerPickedMessage() {
	out, err := s.service.GetPlayerPickedMessage(s.ctx, &GetPlayerPickedMessageInput{
		Role:  "scout",
		Color: "red",
	})
	s.Require().NoError(err)
	s.Equal("You have been picked as Scout for Red team.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetDraftAbortedMessage() {
	out, err := s.service.GetDraftAbortedMessage(s.ctx, &GetDraftAbortedMessageInput{
		CaptainID: "bob",
		Players:   []string{"alice", "bob", "carol"},
	})
	s.Require().NoError(err)
	s.Equal("Draft aborted by bob. Players are back in the queue: alice, bob, carol", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetStatusMessage_Drafting() {
	out, err := s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{
		Status: &pugService.StatusOutput{
			Unstaged: []pugService.PlayerView{{ID: "frank"}},
			Need:     &pugService.NeedView{Captains: 1},
			Draft:    s.draft,
		},
	})
	s.Require().NoError(err)
	s.Equal("Red team: alice (captain), carol on Medic\n"+
		"Blue team: bob (captain)\n"+
		"bob to pick\n"+
		"Players added: frank\n"+
		"Need for the next pug: 1 captain", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetStatusMessage_Idle() {
	out, err := s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{
		Status: &pugService.StatusOutput{
			Need:         &pugService.NeedView{},
			StagePending: true,
		},
	})
	s.Require().NoError(err)
	s.Equal("No players added\nNothing needed, the next pug is ready\nThe pug will be staged shortly", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	cases := []struct {
		err  error
		want string
	}{
		{err: pugService.ErrNotDrafting, want: "alice, pug is not ready for picking"},
		{err: pugService.ErrNotCaptain, want: "alice, only captains can pick"},
		{err: pugService.ErrNotYourPick, want: "alice, it is not your pick"},
		{err: pugService.ErrUnknownRole, want: "alice, unknown role, pick one of: scout, medic"},
		{err: pugCore.ErrMissingRole, want: "alice, add with at least one role: scout, medic"},
		{err: fmt.Errorf("%w: %q", pugCore.ErrRoleAlreadyPicked, "scout"), want: "alice, your team already has that role"},
		{err: pugService.ErrNotAbortCaptain, want: "alice, only captains can abort the draft"},
		{err: pugService.ErrNameTaken, want: "alice, that name is already used by another player, change your nickname to add"},
		{err: errors.New("boom"), want: "alice, something went wrong, try again"},
	}

	for _, tc := range cases {
		s.Run(tc.err.Error(), func() {
			out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
				PlayerID: "alice",
				Err:      tc.err,
			})
			s.Require().NoError(err)
			s.Equal(tc.want, out.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_Unaddressed() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: pugService.ErrNoMatch,
	})
	s.Require().NoError(err)
	s.Equal("No match has been played here yet", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetUsageMessage() {
	out, err := s.service.GetUsageMessage(s.ctx, &GetUsageMessageInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Equal("alice, commands: ;add <roles...> [captain], ;remove, ;pick <player> <role>, ;abort, ;need, ;status, ;last", out.Message)
}
