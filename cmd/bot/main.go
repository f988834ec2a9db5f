package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/pugbot/internal/common/clock"
	"github.com/KirkDiggler/pugbot/internal/common/logger"
	"github.com/KirkDiggler/pugbot/internal/common/uuid"
	"github.com/KirkDiggler/pugbot/internal/draw"
	"github.com/KirkDiggler/pugbot/internal/handlers/discord"
	"github.com/KirkDiggler/pugbot/internal/httpapi"
	pugCore "github.com/KirkDiggler/pugbot/internal/pug"
	matchRepo "github.com/KirkDiggler/pugbot/internal/repositories/match"
	"github.com/KirkDiggler/pugbot/internal/services/messaging"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// A missing .env file is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	zlog, err := logger.New(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		zlog.Fatal("DISCORD_TOKEN environment variable is required")
	}

	stageDelay, err := getEnvDuration("STAGE_DELAY", 0)
	if err != nil {
		zlog.Fatal("invalid STAGE_DELAY", zap.Error(err))
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		zlog.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		zlog.Fatal("failed to create match repository", zap.Error(err))
	}

	pugConfig := pugCore.DefaultConfig()

	// Initialize pug service
	pugSvc, err := pugService.New(&pugService.Config{
		PugConfig:     pugConfig,
		StageDelay:    stageDelay,
		MatchRepo:     matches,
		Sampler:       draw.New(&draw.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        zlog.Named("pug"),
	})
	if err != nil {
		zlog.Fatal("failed to create pug service", zap.Error(err))
	}
	defer pugSvc.Close()

	roles := make([]string, 0, len(pugConfig.Roles))
	for _, role := range pugConfig.Roles {
		roles = append(roles, string(role))
	}

	prefix := getEnv("COMMAND_PREFIX", ";")

	msgs, err := messaging.NewService(&messaging.ServiceConfig{
		Roles:         roles,
		CommandPrefix: prefix,
	})
	if err != nil {
		zlog.Fatal("failed to create messaging service", zap.Error(err))
	}

	router, err := discord.NewRouter(&discord.RouterConfig{
		PugService:       pugSvc,
		MessagingService: msgs,
		Logger:           zlog.Named("router"),
	})
	if err != nil {
		zlog.Fatal("failed to create command router", zap.Error(err))
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: getEnv("DISCORD_APP_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		ChannelID:     getEnv("PUG_CHANNEL_ID", ""),
		CommandPrefix: prefix,
		Router:        router,
		PugService:    pugSvc,
		Logger:        zlog.Named("discord"),
	})
	if err != nil {
		zlog.Fatal("failed to create Discord bot", zap.Error(err))
	}
	pugSvc.SetListener(bot)

	// Start the bot
	if err := bot.Start(); err != nil {
		zlog.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// HTTP_ADDR set to an empty value disables the status API
	addr, ok := os.LookupEnv("HTTP_ADDR")
	if !ok {
		addr = ":8080"
	}

	var server *http.Server
	if addr != "" {
		handler, err := httpapi.SetupRoutes(&httpapi.Config{
			PugService: pugSvc,
			MatchRepo:  matches,
			Logger:     zlog.Named("http"),
		})
		if err != nil {
			zlog.Fatal("failed to create status API", zap.Error(err))
		}

		server = &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			zlog.Info("status API listening", zap.String("addr", addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zlog.Error("status API stopped", zap.Error(err))
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if server != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := server.Shutdown(shutdownCtx); err != nil {
			zlog.Warn("error stopping status API", zap.Error(err))
		}
		shutdownCancel()
	}

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		zlog.Warn("error stopping bot", zap.Error(err))
	}

	zlog.Info("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration parses an environment variable as a Go duration
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}
