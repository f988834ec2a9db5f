package match

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/pugbot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newMatch(id, channelID string, createdAt time.Time) *models.Match {
	return &models.Match{
		ID:        id,
		ChannelID: channelID,
		Captains:  [2]string{"alice", "bob"},
		Teams: []models.MatchTeam{
			{
				Color:   "Red",
				Captain: "alice",
				Slots: []models.MatchSlot{
					{Role: "scout", PlayerID: "carol"},
					{Role: "medic", PlayerID: "alice"},
				},
			},
			{
				Color:   "Blue",
				Captain: "bob",
				Slots: []models.MatchSlot{
					{Role: "scout", PlayerID: "bob"},
					{Role: "medic", PlayerID: "dave"},
				},
			},
		},
		CreatedAt: createdAt,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetMatch() {
	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: s.newMatch("match-1", "channel-1", s.testNow),
	})
	s.Require().NoError(err)

	got, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "match-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal("match-1", got.ID)
	s.Equal("channel-1", got.ChannelID)
	s.Equal([2]string{"alice", "bob"}, got.Captains)
	s.Require().Len(got.Teams, 2)
	s.Equal("Red", got.Teams[0].Color)
	player, ok := got.Teams[0].PlayerFor("scout")
	s.True(ok)
	s.Equal("carol", player)
	s.Equal([]string{"bob", "dave"}, got.Teams[1].Players())
	s.Equal(s.testNow.Unix(), got.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveMatch_InvalidInput() {
	s.Error(s.repo.SaveMatch(context.Background(), nil))
	s.Error(s.repo.SaveMatch(context.Background(), &SaveMatchInput{}))
	s.Error(s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: &models.Match{ChannelID: "channel-1"},
	}))
}

func (s *RedisRepositoryTestSuite) TestGetMatch_NotFound() {
	_, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "missing",
	})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetLastMatch() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("older", "channel-1", s.testNow),
	}))
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("newer", "channel-1", s.testNow.Add(time.Hour)),
	}))
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("elsewhere", "channel-2", s.testNow.Add(2*time.Hour)),
	}))

	got, err := s.repo.GetLastMatch(ctx, &GetLastMatchInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Equal("newer", got.ID)
}

func (s *RedisRepositoryTestSuite) TestGetLastMatch_NoMatches() {
	_, err := s.repo.GetLastMatch(context.Background(), &GetLastMatchInput{
		ChannelID: "empty-channel",
	})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestListMatches() {
	ctx := context.Background()
	for i, id := range []string{"first", "second", "third"} {
		s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
			Match: s.newMatch(id, "channel-1", s.testNow.Add(time.Duration(i)*time.Minute)),
		}))
	}

	out, err := s.repo.ListMatches(ctx, &ListMatchesInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Matches, 3)
	s.Equal("third", out.Matches[0].ID)
	s.Equal("second", out.Matches[1].ID)
	s.Equal("first", out.Matches[2].ID)

	out, err = s.repo.ListMatches(ctx, &ListMatchesInput{
		ChannelID: "channel-1",
		Limit:     2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Matches, 2)
	s.Equal("third", out.Matches[0].ID)
	s.Equal("second", out.Matches[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListMatches_SkipsMissingBodies() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("kept", "channel-1", s.testNow),
	}))
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("dropped", "channel-1", s.testNow.Add(time.Minute)),
	}))
	s.mr.Del(matchKey("dropped"))

	out, err := s.repo.ListMatches(ctx, &ListMatchesInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Matches, 1)
	s.Equal("kept", out.Matches[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListMatches_Empty() {
	out, err := s.repo.ListMatches(context.Background(), &ListMatchesInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Empty(out.Matches)

	_, err = s.repo.ListMatches(context.Background(), &ListMatchesInput{
		ChannelID: "channel-1",
		Limit:     -1,
	})
	s.Error(err)
}
