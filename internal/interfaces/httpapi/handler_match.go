package httpapi

import (
	"net/http"
	"strings"

	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
)

func (h *Handler) RecomputeMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeMatchStats")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	result, err := h.matchStatsService.RecomputeMatchStats(ctx, matchID)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute match stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recomputeToDTO(result))
}

func (h *Handler) RecordMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchEvents")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordMatchEventsRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]matchevent.Event, 0, len(req.Events))
	for _, e := range req.Events {
		inputs = append(inputs, e.toDomain())
	}

	events, err := h.matchStatsService.RecordEvents(ctx, matchID, inputs)
	if err != nil {
		h.logger.ErrorContext(ctx, "record match events failed", "match_id", matchID, "events", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventsToDTO(events))
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	events, err := h.matchStatsService.ListEvents(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match events failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToDTO(events))
}

func (h *Handler) SetPlayerRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerRating")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req setPlayerRatingRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchStatsService.SetPlayerRating(ctx, matchID, playerID, req.Rating); err != nil {
		h.logger.ErrorContext(ctx, "set player rating failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"match_id":  matchID,
		"player_id": playerID,
		"rating":    req.Rating,
	})
}

func (h *Handler) RecomputeTournamentStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeTournamentStats")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	result, err := h.matchStatsService.RecomputeTournamentStats(ctx, tournamentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute tournament stats failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentRecomputeToDTO(result))
}
