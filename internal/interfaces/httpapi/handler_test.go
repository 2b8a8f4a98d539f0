package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	"github.com/devShamim/match-stats-sub000/internal/infrastructure/repository/memory"
	"github.com/devShamim/match-stats-sub000/internal/platform/cache"
	"github.com/devShamim/match-stats-sub000/internal/platform/id"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
	"github.com/devShamim/match-stats-sub000/internal/usecase"
)

const testAdminToken = "test-admin-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := memory.NewDB(memory.SeedDataset(time.Now()))
	players := memory.NewPlayerRepository(db)
	matches := memory.NewMatchRepository(db)
	rosters := memory.NewRosterRepository(db)
	stats := memory.NewStatRepository(db)
	events := memory.NewEventRepository(db)
	teams := memory.NewTeamRepository(db)
	tournaments := memory.NewTournamentRepository(db)
	standings := memory.NewStandingRepository(db)
	prizes := memory.NewPrizeRepository(db)
	logger := logging.NewNop()

	leaderboards := usecase.NewLeaderboardService(usecase.LeaderboardDeps{
		Players: players, Rosters: rosters, Matches: matches, Stats: stats, Events: events,
		Cache: cache.NewStore(time.Minute), Logger: logger,
	})
	handler := NewHandler(HandlerDeps{
		MatchStats: usecase.NewMatchStatsService(usecase.MatchStatsDeps{
			Matches: matches, Rosters: rosters, Events: events, Stats: stats, Tournaments: tournaments,
			IDs: id.NewSequenceGenerator("ev"), Logger: logger, Invalidator: leaderboards,
		}),
		PlayerStats: usecase.NewPlayerStatsService(usecase.PlayerStatsDeps{
			Players: players, Rosters: rosters, Matches: matches, Stats: stats, Events: events, Logger: logger,
		}),
		Leaderboards: leaderboards,
		Standings: usecase.NewStandingsService(usecase.StandingsDeps{
			Tournaments: tournaments, Standings: standings, Matches: matches, Teams: teams,
			IDs: id.NewSequenceGenerator("st"), Logger: logger, Invalidator: leaderboards,
		}),
		Prizes: usecase.NewPrizeService(usecase.PrizeDeps{
			Tournaments: tournaments, Standings: standings, Prizes: prizes, Matches: matches,
			Rosters: rosters, Stats: stats, Events: events, Teams: teams, Players: players,
			IDs: id.NewSequenceGenerator("pz"), Logger: logger,
		}),
		Logger: logger,
	})

	return NewRouter(handler, logger, nil, testAdminToken)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, admin bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(adminTokenHeader, testAdminToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	return rec, decoded
}

func TestHandler_Healthz(t *testing.T) {
	rec, body := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestHandler_PlayerStats(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/v1/players/p-caleb/stats", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "p-caleb", data["player_id"])
	assert.Equal(t, "Caleb Stone", data["display_name"])

	rec, body = doRequest(t, router, http.MethodGet, "/v1/players/nobody/stats", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestHandler_Leaderboards(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/v1/leaderboards?limit=0", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])

	rec, body = doRequest(t, router, http.MethodGet, "/v1/leaderboards?limit=2", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	scorers := data["top_scorers"].([]any)
	assert.LessOrEqual(t, len(scorers), 2)

	rec, body = doRequest(t, router, http.MethodGet, "/v1/stats/overview", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := body["data"].(map[string]any)
	assert.Contains(t, overview, "total_goals")
	assert.Contains(t, overview, "upcoming_matches")
}

func TestHandler_AdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPost, "/v1/admin/matches/m-1/stats/recompute", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])

	rec, body = doRequest(t, router, http.MethodPost, "/v1/admin/matches/m-1/stats/recompute", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "m-1", data["match_id"])
	assert.Len(t, data["rows"].([]any), 6)

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/admin/matches/missing/stats/recompute", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_RecordEvents(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/admin/matches/m-1/events", map[string]any{
		"events": []map[string]any{{"type": "penalty", "player": "Caleb Stone"}},
	}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := doRequest(t, router, http.MethodPost, "/v1/admin/matches/m-1/events", map[string]any{
		"events": []map[string]any{{"type": "goal", "scorer": "Caleb Stone", "assist": "Bruno Vale", "minute": 88}},
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)
	created := body["data"].([]any)
	require.Len(t, created, 1)
	event := created[0].(map[string]any)
	assert.Equal(t, "p-caleb", event["scorer_id"])
	assert.Equal(t, "p-bruno", event["assist_id"])

	rec, body = doRequest(t, router, http.MethodGet, "/v1/matches/m-1/events", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["data"])
}

func TestHandler_SetPlayerRating(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPut, "/v1/admin/matches/m-1/players/p-caleb/rating", map[string]any{"rating": 11}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/admin/matches/m-1/players/p-caleb/rating", map[string]any{"rating": 8.5}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 8.5, body["data"].(map[string]any)["rating"])
}

func TestHandler_TournamentFlow(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/admin/tournaments/" + memory.SeedTournamentID

	rec, body := doRequest(t, router, http.MethodPost, base+"/stats/recompute", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 4, body["data"].(map[string]any)["success_count"])

	rec, body = doRequest(t, router, http.MethodPost, base+"/standings/recalculate", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"].(map[string]any)["standings"].([]any), 4)

	rec, body = doRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.SeedTournamentID+"/standings", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"].([]any), 4)

	rec, body = doRequest(t, router, http.MethodPost, base+"/prizes/calculate", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["data"].(map[string]any)["prizes"])

	rec, _ = doRequest(t, router, http.MethodPut, base+"/prizes/player-of-tournament", map[string]any{"player_id": "p-caleb"}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doRequest(t, router, http.MethodPut, base+"/prizes/player-of-tournament", map[string]any{
		"player_id": "p-caleb",
		"team_id":   "team-riverside",
	}, true)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)
	prize := body["data"].(map[string]any)
	assert.Equal(t, tournament.CategoryPlayerOfTournament, prize["category"])
	assert.Equal(t, "p-caleb", prize["recipient_player_id"])

	rec, body = doRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.SeedTournamentID+"/player-scores", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["data"])
}

func TestHandler_RecoversPanics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	router := recoverPanic(logging.NewNop(), mux)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
