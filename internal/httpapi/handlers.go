package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/pugbot/internal/models"
	matchRepo "github.com/KirkDiggler/pugbot/internal/repositories/match"
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultMatchLimit = 10

type api struct {
	pugService pugService.Service
	matchRepo  matchRepo.Repository
	log        *zap.Logger
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetStatus reports a channel's waiting roster and running draft
func (a *api) GetStatus(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	out, err := a.pugService.Status(r.Context(), &pugService.StatusInput{
		ChannelID: channelID,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newStatusResponse(out))
}

// GetLastMatch returns the most recent match made in a channel
func (a *api) GetLastMatch(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	out, err := a.pugService.LastMatch(r.Context(), &pugService.LastMatchInput{
		ChannelID: channelID,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, out.Match)
}

// ListMatches returns a channel's match history, newest first
func (a *api) ListMatches(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	limit := defaultMatchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive number"})
			return
		}
		limit = n
	}

	out, err := a.matchRepo.ListMatches(r.Context(), &matchRepo.ListMatchesInput{
		ChannelID: channelID,
		Limit:     limit,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	matches := out.Matches
	if matches == nil {
		matches = []*models.Match{}
	}
	a.writeJSON(w, http.StatusOK, matches)
}

// GetMatch returns one match by ID
func (a *api) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	match, err := a.matchRepo.GetMatch(r.Context(), &matchRepo.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, match)
}

func (a *api) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pugService.ErrNoMatch), errors.Is(err, matchRepo.ErrMatchNotFound):
		a.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, pugService.ErrMissingChannel):
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		a.log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		a.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Warn("failed to write response", zap.Error(err))
	}
}
