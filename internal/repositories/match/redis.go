package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pugbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	channelKeyPrefix = "channel_matches:"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func matchKey(id string) string {
	return fmt.Sprintf("%s%s", matchKeyPrefix, id)
}

func channelKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelKeyPrefix, channelID)
}

// SaveMatch persists a match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}
	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, matchKey(input.Match.ID), matchJSON, 0)

	// Index by channel, scored by creation time so the newest sorts last
	if input.Match.ChannelID != "" {
		pipe.ZAdd(ctx, channelKey(input.Match.ChannelID), redis.Z{
			Score:  float64(input.Match.CreatedAt.UnixNano()),
			Member: input.Match.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKey(input.MatchID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.Match
	if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetLastMatch retrieves the newest match for a channel from Redis
func (r *redisRepository) GetLastMatch(ctx context.Context, input *GetLastMatchInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	ids, err := r.client.ZRevRange(ctx, channelKey(input.ChannelID), 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get last match ID for channel: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrMatchNotFound
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: ids[0],
	})
}

// ListMatches retrieves a channel's matches from Redis, newest first
func (r *redisRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}
	if input.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	ids, err := r.client.ZRevRange(ctx, channelKey(input.ChannelID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list match IDs for channel: %w", err)
	}

	if len(ids) == 0 {
		return &ListMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	// Fetch all matches in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, matchKey(id))
	}

	// redis.Nil from a single GET surfaces here; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(ids))
	for i, cmd := range cmds {
		matchJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Index entry without a match body
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", ids[i], err)
		}

		var match models.Match
		if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", ids[i], err)
		}

		matches = append(matches, &match)
	}

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}
