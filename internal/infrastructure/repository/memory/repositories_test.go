package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
)

func TestStatRepository_UpsertKeepsMinutesAndRating(t *testing.T) {
	ctx := context.Background()
	minutes := 45
	rating := 7.5
	db := NewDB(Dataset{Stats: []matchstat.Row{{RosterEntryID: "r1", Goals: 3, MinutesPlayed: &minutes, Rating: &rating}}})
	repo := NewStatRepository(db)

	fresh := matchstat.DefaultMinutes
	err := repo.UpsertCounters(ctx, []matchstat.Row{
		{RosterEntryID: "r1", Goals: 1, MinutesPlayed: &fresh},
		{RosterEntryID: "r2", Assists: 2, MinutesPlayed: &fresh},
	})
	require.NoError(t, err)

	rows, err := repo.ListByRosterEntries(ctx, []string{"r1", "r2", "missing"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Goals)
	require.NotNil(t, rows[0].MinutesPlayed)
	assert.Equal(t, 45, *rows[0].MinutesPlayed)
	require.NotNil(t, rows[0].Rating)
	assert.Equal(t, 7.5, *rows[0].Rating)

	assert.Equal(t, 2, rows[1].Assists)
	assert.Equal(t, matchstat.DefaultMinutes, *rows[1].MinutesPlayed)
	assert.Nil(t, rows[1].Rating)
}

func TestStatRepository_SetRatingCreatesRow(t *testing.T) {
	ctx := context.Background()
	repo := NewStatRepository(NewDB(Dataset{}))

	rating := 8.0
	require.NoError(t, repo.SetRating(ctx, "r9", &rating))

	rows, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Goals)
	assert.Equal(t, matchstat.DefaultMinutes, *rows[0].MinutesPlayed)
	assert.Equal(t, 8.0, *rows[0].Rating)

	require.NoError(t, repo.SetRating(ctx, "r9", nil))
	rows, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, rows[0].Rating)
}

func TestRosterRepository_JoinsPlayerAndSide(t *testing.T) {
	ctx := context.Background()
	db := NewDB(Dataset{
		Players:    []player.Player{{ID: "p1", DisplayName: "Alice", Position: "CB"}},
		MatchTeams: []match.Team{{ID: "m1-a", MatchID: "m1", Name: "Reds"}},
		Roster: []roster.Entry{
			{ID: "r1", MatchID: "m1", PlayerID: "p1", TeamID: "m1-a"},
			{ID: "r2", MatchID: "m1", PlayerID: "gone", TeamID: "m1-a"},
		},
	})
	repo := NewRosterRepository(db)

	members, err := repo.ListMembersByMatch(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].Player.DisplayName)
	assert.Equal(t, "Reds", members[0].TeamName)

	byIDs, err := repo.ListMembersByIDs(ctx, []string{"r1", "r2"})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)

	byPlayer, err := repo.ListMembersByPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, byPlayer, 1)
}

func TestEventRepository_ListForPlayerByIDOrLegacyName(t *testing.T) {
	ctx := context.Background()
	db := NewDB(Dataset{Events: []matchevent.Event{
		{ID: "e1", MatchID: "m1", Type: matchevent.TypeSave, PlayerID: "p1", Player: "Alice"},
		{ID: "e2", MatchID: "m1", Type: matchevent.TypeSave, Player: "Alice"},
		{ID: "e3", MatchID: "m1", Type: matchevent.TypeSave, PlayerID: "p2", Player: "Alice"},
		{ID: "e4", MatchID: "m2", Type: matchevent.TypeCleanSheet, PlayerID: "p1"},
		{ID: "e5", MatchID: "m2", Type: matchevent.TypeGoal, ScorerID: "p1"},
	}})
	repo := NewEventRepository(db)

	events, err := repo.ListForPlayer(ctx, "p1", "Alice", matchevent.TypeSave, matchevent.TypeCleanSheet)
	require.NoError(t, err)
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e4"}, ids)

	byMatches, err := repo.ListByMatches(ctx, []string{"m2"}, "GOAL")
	require.NoError(t, err)
	require.Len(t, byMatches, 1)
	assert.Equal(t, "e5", byMatches[0].ID)

	require.NoError(t, repo.Append(ctx, []matchevent.Event{{ID: "e6", MatchID: "m1", Type: matchevent.TypeCard}}))
	all, err := repo.ListByMatch(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMatchRepository_RecentUpcomingAndCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	db := NewDB(SeedDataset(now))
	repo := NewMatchRepository(db)

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "m-4", recent[0].ID)
	assert.Equal(t, "m-3", recent[1].ID)

	upcoming, err := repo.ListUpcoming(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "m-5", upcoming[0].ID)

	completed, err := repo.CountByStatus(ctx, match.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 4, completed)

	final := match.Match{ID: "m-final", TournamentID: SeedTournamentID, Round: match.RoundFinal, Date: now}
	require.NoError(t, repo.CreateWithTeams(ctx, final, []match.Team{{ID: "f-a", Name: "Riverside FC"}}))
	require.ErrorIs(t, repo.CreateWithTeams(ctx, final, nil), match.ErrAlreadyExists)

	got, ok, err := repo.GetByID(ctx, "m-final")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, match.RoundFinal, got.Round)
}

func TestStandingRepository_FindOrCreateByKey(t *testing.T) {
	ctx := context.Background()
	repo := NewStandingRepository(NewDB(Dataset{}))

	first, err := repo.FindOrCreate(ctx, tournament.Standing{ID: "s1", TournamentID: "t1", TeamID: "x"})
	require.NoError(t, err)
	assert.Equal(t, "s1", first.ID)

	again, err := repo.FindOrCreate(ctx, tournament.Standing{ID: "s2", TournamentID: "t1", TeamID: "x"})
	require.NoError(t, err)
	assert.Equal(t, "s1", again.ID)

	group := "A"
	grouped, err := repo.FindOrCreate(ctx, tournament.Standing{ID: "s3", TournamentID: "t1", TeamID: "x", GroupName: &group})
	require.NoError(t, err)
	assert.Equal(t, "s3", grouped.ID)

	again.Points = 9
	require.NoError(t, repo.Update(ctx, again))
	assert.Error(t, repo.Update(ctx, tournament.Standing{ID: "missing"}))

	rows, err := repo.ListByTournament(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 9, rows[0].Points)
}

func TestPrizeRepository_ReplaceAutomaticKeepsManual(t *testing.T) {
	ctx := context.Background()
	db := NewDB(Dataset{Prizes: []tournament.Prize{
		{ID: "old-goals", TournamentID: "t1", Category: tournament.CategoryTopGoals},
		{ID: "manual", TournamentID: "t1", Category: tournament.CategoryPlayerOfTournament, Description: "Player of the Tournament (Manual Selection)"},
		{ID: "other", TournamentID: "t2", Category: tournament.CategoryTopGoals},
	}})
	repo := NewPrizeRepository(db)

	require.NoError(t, repo.ReplaceAutomatic(ctx, "t1", []tournament.Prize{{ID: "new-goals", TournamentID: "t1", Category: tournament.CategoryTopGoals}}))

	prizes, err := repo.ListByTournament(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, prizes, 2)
	assert.Equal(t, "manual", prizes[0].ID)
	assert.Equal(t, "new-goals", prizes[1].ID)

	require.NoError(t, repo.ReplacePlayerOfTournament(ctx, "t1", tournament.Prize{ID: "manual-2", TournamentID: "t1", Category: tournament.CategoryPlayerOfTournament}))
	prizes, err = repo.ListByTournament(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, prizes, 2)
	assert.Equal(t, "manual-2", prizes[1].ID)

	others, err := repo.ListByTournament(ctx, "t2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestSeedDataset_IsConsistent(t *testing.T) {
	ctx := context.Background()
	db := NewDB(SeedDataset(time.Now()))

	count, err := NewPlayerRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	teams, err := NewTeamRepository(db).ListByTournament(ctx, SeedTournamentID)
	require.NoError(t, err)
	assert.Len(t, teams, 4)

	members, err := NewRosterRepository(db).ListMembersByMatch(ctx, "m-1")
	require.NoError(t, err)
	assert.Len(t, members, 6)

	events, err := NewEventRepository(db).ListByMatch(ctx, "m-4")
	require.NoError(t, err)
	for _, e := range events {
		assert.NoError(t, e.Validate())
	}
}
