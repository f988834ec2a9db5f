package discord

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/pugbot/internal/services/messaging"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	pugMocks "github.com/KirkDiggler/pugbot/internal/services/pug/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type sentMessage struct {
	ChannelID string
	Content   string
}

// fakeSender records what the bot sends instead of calling Discord
type fakeSender struct {
	mu     sync.Mutex
	sent   []sentMessage
	dmErr  error
	opened []string
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{ChannelID: channelID, Content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSender) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dmErr != nil {
		return nil, f.dmErr
	}
	f.opened = append(f.opened, recipientID)
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

type BotTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPugService *pugMocks.MockService
	sender         *fakeSender
	bot            *Bot
	ctx            context.Context

	testChannelID string
	testGuildID   string
}

func (s *BotTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPugService = pugMocks.NewMockService(s.mockCtrl)
	s.sender = &fakeSender{}
	s.ctx = context.Background()
	s.testChannelID = "pug-channel"
	s.testGuildID = "guild"

	msgs, err := messaging.NewService(&messaging.ServiceConfig{
		Roles:         []string{"scout", "medic"},
		CommandPrefix: ";",
	})
	s.Require().NoError(err)

	log := zaptest.NewLogger(s.T())
	router, err := NewRouter(&RouterConfig{
		PugService:       s.mockPugService,
		MessagingService: msgs,
		Logger:           log,
	})
	s.Require().NoError(err)

	s.bot = newBot(&Config{
		ChannelID:     s.testChannelID,
		CommandPrefix: ";",
		Router:        router,
		PugService:    s.mockPugService,
		Logger:        log,
	}, s.sender)
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) message(userID, username, nick, content string) *discordgo.Message {
	return &discordgo.Message{
		ChannelID: s.testChannelID,
		GuildID:   s.testGuildID,
		Content:   content,
		Author:    &discordgo.User{ID: userID, Username: username},
		Member:    &discordgo.Member{Nick: nick},
	}
}

func (s *BotTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)

	_, err = New(&Config{Token: "token"})
	s.Error(err)
}

func (s *BotTestSuite) TestOnMessage_RoutesCommandAsDisplayName() {
	s.mockPugService.EXPECT().
		Need(s.ctx, &pugService.NeedInput{ChannelID: s.testChannelID}).
		Return(&pugService.NeedOutput{Need: &pugService.NeedView{Captains: 2}}, nil)

	s.bot.onMessage(s.ctx, s.message("user-1", "alice_account", "", ";need"))

	s.Equal([]sentMessage{{ChannelID: s.testChannelID, Content: "Need: 2 captains"}}, s.sender.sent)
}

func (s *BotTestSuite) TestOnMessage_Ignored() {
	// Plain chat
	s.bot.onMessage(s.ctx, s.message("user-1", "alice", "", "hello"))

	// Other bots
	msg := s.message("user-2", "robot", "", ";need")
	msg.Author.Bot = true
	s.bot.onMessage(s.ctx, msg)

	// Other channels
	msg = s.message("user-1", "alice", "", ";need")
	msg.ChannelID = "elsewhere"
	s.bot.onMessage(s.ctx, msg)

	// Direct messages
	msg = s.message("user-1", "alice", "", ";need")
	msg.GuildID = ""
	s.bot.onMessage(s.ctx, msg)

	s.bot.onMessage(s.ctx, nil)

	s.Empty(s.sender.sent)
}

func (s *BotTestSuite) TestOnMessage_NickChangeRenames() {
	s.mockPugService.EXPECT().
		Add(s.ctx, gomock.Any()).
		Return(&pugService.AddOutput{Unstaged: []string{"alice"}, Need: &pugService.NeedView{}}, nil)
	s.bot.onMessage(s.ctx, s.message("user-1", "alice_account", "alice", ";add scout"))

	s.mockPugService.EXPECT().
		Rename(s.ctx, &pugService.RenameInput{OldID: "alice", NewID: "alicia"}).
		Return(&pugService.RenameOutput{Channels: []string{s.testChannelID}}, nil)
	s.mockPugService.EXPECT().
		Status(s.ctx, gomock.Any()).
		Return(&pugService.StatusOutput{Unstaged: []pugService.PlayerView{{ID: "alicia"}}, Need: &pugService.NeedView{}}, nil)
	s.bot.onMessage(s.ctx, s.message("user-1", "alice_account", "alicia", ";status"))

	id, ok := s.bot.players.UserID("alicia")
	s.True(ok)
	s.Equal("user-1", id)
	_, ok = s.bot.players.UserID("alice")
	s.False(ok)
}

func (s *BotTestSuite) TestOnMessage_NameTakenByAnotherUser() {
	s.mockPugService.EXPECT().
		Add(s.ctx, gomock.Any()).
		Return(&pugService.AddOutput{Unstaged: []string{"Bob"}, Need: &pugService.NeedView{}}, nil)
	s.bot.onMessage(s.ctx, s.message("user-1", "bob_one", "Bob", ";add scout"))

	// A second account showing the same name never reaches the pug service
	s.bot.onMessage(s.ctx, s.message("user-2", "bob_two", "Bob", ";add medic"))

	s.Equal([]sentMessage{
		{ChannelID: s.testChannelID, Content: "Players added: Bob"},
		{ChannelID: s.testChannelID, Content: "Bob, that name is already used by another player, change your nickname to add"},
	}, s.sender.sent)

	id, ok := s.bot.players.UserID("Bob")
	s.True(ok)
	s.Equal("user-1", id)

	s.bot.deliver(s.ctx, []Reply{{PlayerID: "Bob", Text: "You have been picked as Scout for Red team."}})
	s.Equal([]string{"user-1"}, s.sender.opened)
}

func (s *BotTestSuite) TestGuildMemberUpdate_NameTakenKeepsOldName() {
	s.bot.players.Observe("user-1", "Bob")
	s.bot.players.Observe("user-2", "Robert")

	user := &discordgo.User{ID: "user-2", Username: "robert_account"}
	s.bot.handleGuildMemberUpdate(nil, &discordgo.GuildMemberUpdate{
		Member:       &discordgo.Member{User: user, Nick: "Bob"},
		BeforeUpdate: &discordgo.Member{User: user, Nick: "Robert"},
	})

	id, ok := s.bot.players.UserID("Bob")
	s.True(ok)
	s.Equal("user-1", id)
	id, ok = s.bot.players.UserID("Robert")
	s.True(ok)
	s.Equal("user-2", id)
}

func (s *BotTestSuite) TestGuildMemberUpdate_UsesBeforeUpdate() {
	s.mockPugService.EXPECT().
		Rename(gomock.Any(), &pugService.RenameInput{OldID: "alice", NewID: "alicia"}).
		Return(&pugService.RenameOutput{}, nil)

	user := &discordgo.User{ID: "user-1", Username: "alice_account"}
	s.bot.handleGuildMemberUpdate(nil, &discordgo.GuildMemberUpdate{
		Member:       &discordgo.Member{User: user, Nick: "alicia"},
		BeforeUpdate: &discordgo.Member{User: user, Nick: "alice"},
	})
}

func (s *BotTestSuite) TestGuildMemberUpdate_FirstSightingDoesNotRename() {
	user := &discordgo.User{ID: "user-1", Username: "alice"}
	s.bot.handleGuildMemberUpdate(nil, &discordgo.GuildMemberUpdate{
		Member: &discordgo.Member{User: user},
	})

	id, ok := s.bot.players.UserID("alice")
	s.True(ok)
	s.Equal("user-1", id)
}

func (s *BotTestSuite) TestDeliver_DirectMessages() {
	s.bot.players.Observe("user-1", "alice")

	s.bot.deliver(s.ctx, []Reply{
		{ChannelID: s.testChannelID, Text: "Red team: alice on Scout"},
		{PlayerID: "alice", Text: "You have been picked as Scout for Red team."},
		{PlayerID: "stranger", Text: "never sent"},
	})

	s.Equal([]string{"user-1"}, s.sender.opened)
	s.Equal([]sentMessage{
		{ChannelID: s.testChannelID, Content: "Red team: alice on Scout"},
		{ChannelID: "dm-user-1", Content: "You have been picked as Scout for Red team."},
	}, s.sender.sent)
}

func (s *BotTestSuite) TestDeliver_DirectMessageFailure() {
	s.bot.players.Observe("user-1", "alice")
	s.sender.dmErr = errors.New("dms closed")

	s.bot.deliver(s.ctx, []Reply{
		{PlayerID: "alice", Text: "You have been picked as Scout for Red team."},
		{ChannelID: s.testChannelID, Text: "still sent"},
	})

	s.Equal([]sentMessage{{ChannelID: s.testChannelID, Content: "still sent"}}, s.sender.sent)
}

func (s *BotTestSuite) TestOnStaged() {
	draft := &pugService.DraftView{
		Captains: [2]string{"alice", "bob"},
		Teams: [2]pugService.TeamView{
			{Color: "red", Captain: "alice"},
			{Color: "blue", Captain: "bob"},
		},
		PickingCaptain: "alice",
	}

	s.bot.OnStaged(s.ctx, s.testChannelID, draft)

	s.Require().Len(s.sender.sent, 2)
	s.Equal("Pug is staged. Red captain: alice. Blue captain: bob.", s.sender.sent[0].Content)
}

func (s *BotTestSuite) TestCommandFromInteraction() {
	cases := []struct {
		name string
		data discordgo.ApplicationCommandInteractionData
		want *Command
	}{
		{
			name: "add with captain",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "pug",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{{
					Name: CommandAdd,
					Type: discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandInteractionDataOption{
						{Name: "roles", Type: discordgo.ApplicationCommandOptionString, Value: "scout  medic"},
						{Name: captainFlag, Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
					},
				}},
			},
			want: &Command{Name: CommandAdd, Args: []string{"scout", "medic", "captain"}},
		},
		{
			name: "pick",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "pug",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{{
					Name: CommandPick,
					Type: discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandInteractionDataOption{
						{Name: "role", Type: discordgo.ApplicationCommandOptionString, Value: "medic"},
						{Name: "player", Type: discordgo.ApplicationCommandOptionString, Value: "carol"},
					},
				}},
			},
			want: &Command{Name: CommandPick, Args: []string{"carol", "medic"}},
		},
		{
			name: "abort",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "pug",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{{
					Name: CommandAbort,
					Type: discordgo.ApplicationCommandOptionSubCommand,
				}},
			},
			want: &Command{Name: CommandAbort, Args: []string{}},
		},
		{
			name: "status",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "pug",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{{
					Name: CommandStatus,
					Type: discordgo.ApplicationCommandOptionSubCommand,
				}},
			},
			want: &Command{Name: CommandStatus, Args: []string{}},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, err := commandFromInteraction(tc.data)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}

	_, err := commandFromInteraction(discordgo.ApplicationCommandInteractionData{Name: "pug"})
	s.Error(err)

	_, err = commandFromInteraction(discordgo.ApplicationCommandInteractionData{
		Name:    "pug",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{{Name: "dance"}},
	})
	s.Error(err)
}

func (s *BotTestSuite) TestDisplayName() {
	user := &discordgo.User{Username: "account", GlobalName: "Global"}
	s.Equal("Nick", displayName(&discordgo.Member{Nick: "Nick"}, user))
	s.Equal("Global", displayName(&discordgo.Member{}, user))
	s.Equal("account", displayName(nil, &discordgo.User{Username: "account"}))
	s.Equal("", displayName(nil, nil))
}

func (s *BotTestSuite) TestPugCommandDefinition() {
	def := NewPugCommand(s.bot).Definition()
	s.Equal("pug", def.Name)

	var subcommands []string
	for _, opt := range def.Options {
		s.Equal(discordgo.ApplicationCommandOptionSubCommand, opt.Type)
		subcommands = append(subcommands, opt.Name)
	}
	s.Equal([]string{CommandAdd, CommandRemove, CommandPick, CommandAbort, CommandNeed, CommandStatus, CommandLast}, subcommands)
}
