package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
	"github.com/devShamim/match-stats-sub000/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	matchStatsService  *usecase.MatchStatsService
	playerStatsService *usecase.PlayerStatsService
	leaderboardService *usecase.LeaderboardService
	standingsService   *usecase.StandingsService
	prizeService       *usecase.PrizeService
	logger             *logging.Logger
	validator          *validator.Validate
}

type HandlerDeps struct {
	MatchStats   *usecase.MatchStatsService
	PlayerStats  *usecase.PlayerStatsService
	Leaderboards *usecase.LeaderboardService
	Standings    *usecase.StandingsService
	Prizes       *usecase.PrizeService
	Logger       *logging.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchStatsService:  deps.MatchStats,
		playerStatsService: deps.PlayerStats,
		leaderboardService: deps.Leaderboards,
		standingsService:   deps.Standings,
		prizeService:       deps.Prizes,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseLimit reads an optional positive ?limit= value. Zero means "use the default".
func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput)
	}
	return limit, nil
}
