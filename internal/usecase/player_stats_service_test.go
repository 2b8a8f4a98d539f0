package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/scoring"
	matcheventmock "github.com/devShamim/match-stats-sub000/internal/mocks/domain/matchevent"
)

func newTestPlayerStatsService(repos testRepos, events matchevent.Repository, autoCleanSheet bool) *PlayerStatsService {
	return NewPlayerStatsService(PlayerStatsDeps{
		Players:        repos.players,
		Rosters:        repos.rosters,
		Matches:        repos.matches,
		Stats:          repos.stats,
		Events:         events,
		Policy:         scoring.DefaultPolicy(),
		AutoCleanSheet: autoCleanSheet,
		Logger:         testLogger(),
	})
}

func recomputeAll(t *testing.T, repos testRepos) {
	t.Helper()

	svc := newTestMatchStatsService(repos, nil)
	_, err := svc.RecomputeTournamentStats(context.Background(), testTournamentID)
	require.NoError(t, err)
}

func TestPlayerStatsService_GetPlayerStats(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(testDataset())
	recomputeAll(t, repos)

	rating := 7.0
	require.NoError(t, repos.stats.SetRating(ctx, "m2-alice", &rating))

	svc := newTestPlayerStatsService(repos, repos.events, false)
	summary, err := svc.GetPlayerStats(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice", summary.DisplayName)
	assert.Equal(t, 2, summary.MatchesPlayed)
	assert.Equal(t, 2, summary.TotalGoals)
	assert.Equal(t, 1, summary.TotalAssists)
	assert.Equal(t, 180, summary.TotalMinutes)
	assert.Equal(t, 7.0, summary.AverageRating)
	require.Len(t, summary.RecentMatches, 2)
	assert.Equal(t, "m2", summary.RecentMatches[0].MatchID)
	assert.Equal(t, "m1", summary.RecentMatches[1].MatchID)
}

func TestPlayerStatsService_DefaultsWithoutStatRows(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(testDataset())
	svc := newTestPlayerStatsService(repos, repos.events, false)

	summary, err := svc.GetPlayerStats(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MatchesPlayed)
	assert.Equal(t, 90, summary.TotalMinutes)
	assert.Zero(t, summary.TotalGoals)
	assert.Zero(t, summary.AverageRating)
}

func TestPlayerStatsService_SavesIncludeLegacyNameRows(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(testDataset())
	svc := newTestPlayerStatsService(repos, repos.events, false)

	summary, err := svc.GetPlayerStats(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSaves)
	assert.Zero(t, summary.TotalCleanSheets)
}

func TestPlayerStatsService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlayerStatsService(newTestRepos(testDataset()), nil, false)

	_, err := svc.GetPlayerStats(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetPlayerStats(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlayerStatsService_EventFailureDegrades(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(testDataset())
	events := matcheventmock.NewRepository(t)
	events.On("ListForPlayer", mock.Anything, "dave", "Dave", matchevent.TypeSave).
		Return(nil, errors.New("events unavailable")).Once()
	events.On("ListForPlayer", mock.Anything, "dave", "Dave", matchevent.TypeCleanSheet).
		Return([]matchevent.Event{{ID: "cs", MatchID: "m2", Type: matchevent.TypeCleanSheet, PlayerID: "dave"}}, nil).Once()

	svc := newTestPlayerStatsService(repos, events, false)
	summary, err := svc.GetPlayerStats(ctx, "dave")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalSaves)
	assert.Equal(t, 1, summary.TotalCleanSheets)
	assert.Equal(t, 2, summary.MatchesPlayed)
}

func TestPlayerStatsService_AutoCleanSheet(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(testDataset())

	tests := []struct {
		name     string
		enabled  bool
		playerID string
		want     int
	}{
		{name: "disabled", enabled: false, playerID: "carl", want: 0},
		{name: "defender on shutout side", enabled: true, playerID: "carl", want: 1},
		{name: "non defender", enabled: true, playerID: "alice", want: 0},
		{name: "conceding side", enabled: true, playerID: "dave", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestPlayerStatsService(repos, repos.events, tc.enabled)
			summary, err := svc.GetPlayerStats(ctx, tc.playerID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, summary.TotalCleanSheets)
		})
	}
}

func TestPlayerStatsService_AmbiguousLegacyNameIsDropped(t *testing.T) {
	ctx := context.Background()
	ds := testDataset()
	ds.Players = append(ds.Players, player.Player{ID: "dave2", DisplayName: "Dave", Position: "Defender"})
	ds.Roster = append(ds.Roster, roster.Entry{ID: "m2-dave2", MatchID: "m2", PlayerID: "dave2", TeamID: "m2-b"})
	repos := newTestRepos(ds)
	recomputeAll(t, repos)

	svc := newTestPlayerStatsService(repos, repos.events, false)
	dave, err := svc.GetPlayerStats(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, 1, dave.TotalSaves)

	dave2, err := svc.GetPlayerStats(ctx, "dave2")
	require.NoError(t, err)
	assert.Zero(t, dave2.TotalSaves)

	boards, err := newTestLeaderboardService(repos, repos.events, nil).GetLeaderboards(ctx, 0)
	require.NoError(t, err)
	saves := make(map[string]int)
	for _, row := range boards.TopSaves {
		saves[row.PlayerID] = row.Saves
	}
	assert.Equal(t, dave.TotalSaves, saves["dave"])
	assert.Equal(t, dave2.TotalSaves, saves["dave2"])
}

func TestPlayerStatsService_LegacyNameFromOtherRosterIgnored(t *testing.T) {
	ctx := context.Background()
	ds := testDataset()
	ds.Players = append(ds.Players, player.Player{ID: "dave2", DisplayName: "Dave", Position: "Goalkeeper"})
	ds.Roster = append(ds.Roster, roster.Entry{ID: "m3-dave2", MatchID: "m3", PlayerID: "dave2", TeamID: "m3-b"})
	ds.Matches = append(ds.Matches, testMatch("m3", ds.Matches[1].Date.AddDate(0, 0, 7), 0, 0))
	ds.MatchTeams = append(ds.MatchTeams,
		match.Team{ID: "m3-a", MatchID: "m3", Name: "Reds"},
		match.Team{ID: "m3-b", MatchID: "m3", Name: "Blues"},
	)
	ds.Events = append(ds.Events, matchevent.Event{ID: "e8", MatchID: "m3", Type: matchevent.TypeSave, Player: "Dave"})
	repos := newTestRepos(ds)

	svc := newTestPlayerStatsService(repos, repos.events, false)
	dave, err := svc.GetPlayerStats(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, 2, dave.TotalSaves)

	dave2, err := svc.GetPlayerStats(ctx, "dave2")
	require.NoError(t, err)
	assert.Equal(t, 1, dave2.TotalSaves)
}
