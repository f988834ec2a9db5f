package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/pugbot/internal/common/logger"
	matchRepo "github.com/KirkDiggler/pugbot/internal/repositories/match"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Config holds the dependencies of the status API
type Config struct {
	PugService pugService.Service
	MatchRepo  matchRepo.Repository

	// Logger is optional; nil disables logging
	Logger *zap.Logger
}

// SetupRoutes builds the read-only status API
func SetupRoutes(cfg *Config) (http.Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PugService == nil {
		return nil, errors.New("pug service cannot be nil")
	}

	if cfg.MatchRepo == nil {
		return nil, errors.New("match repository cannot be nil")
	}

	a := &api{
		pugService: cfg.PugService,
		matchRepo:  cfg.MatchRepo,
		log:        logger.OrNop(cfg.Logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(a.log))

	r.Get("/healthz", Healthz)
	r.Route("/channels/{channelID}", func(r chi.Router) {
		r.Get("/", a.GetStatus)
		r.Get("/last", a.GetLastMatch)
		r.Get("/matches", a.ListMatches)
	})
	r.Get("/matches/{matchID}", a.GetMatch)

	return r, nil
}

// requestLogger logs each request at debug level
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
