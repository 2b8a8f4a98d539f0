package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) RecalculateStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateStandings")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	result, err := h.standingsService.RecalculateStandings(ctx, tournamentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsResultToDTO(result))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	items, err := h.standingsService.ListStandings(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(items))
}

func (h *Handler) CalculatePrizes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CalculatePrizes")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	result, err := h.prizeService.CalculatePrizes(ctx, tournamentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "calculate prizes failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prizeResultDTO{
		TournamentID: result.TournamentID,
		Prizes:       prizesToDTO(result.Prizes),
		ManualKept:   result.ManualKept,
	})
}

func (h *Handler) SetPlayerOfTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerOfTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	var req setPlayerOfTournamentRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	prize, err := h.prizeService.SetPlayerOfTournament(ctx, tournamentID, req.PlayerID, req.TeamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "set player of tournament failed",
			"tournament_id", tournamentID,
			"player_id", req.PlayerID,
			"team_id", req.TeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prizeToDTO(prize))
}

func (h *Handler) ListPrizes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPrizes")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	items, err := h.prizeService.ListPrizes(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list prizes failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prizesToDTO(items))
}

func (h *Handler) ListPlayerScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerScores")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	items, err := h.prizeService.ListPlayerScores(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player scores failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerScoresToDTO(items))
}
