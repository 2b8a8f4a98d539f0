package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	"github.com/devShamim/match-stats-sub000/internal/infrastructure/repository/memory"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
)

const testTournamentID = "t1"

// testDataset is two completed group matches between Reds and Blues.
//
//	m1: Reds 2-1 Blues. Alice scores, Bob scores from Alice, Carl own goal, Bob booked, Dave saves.
//	m2: Reds 1-0 Blues. Alice scores, Dave saves (legacy name-only row).
func testDataset() memory.Dataset {
	players := []player.Player{
		{ID: "alice", DisplayName: "Alice", Position: "Forward"},
		{ID: "bob", DisplayName: "Bob", Position: "Midfielder"},
		{ID: "carl", DisplayName: "Carl", Position: "CB"},
		{ID: "dave", DisplayName: "Dave", Position: "Goalkeeper"},
		{ID: "erin", DisplayName: "Erin", Position: "Striker"},
	}

	ds := memory.Dataset{
		Players:     players,
		Tournaments: []tournament.Tournament{{ID: testTournamentID, Name: "Cup", Type: tournament.TypeRoundRobin}},
		Teams: []team.Team{
			{ID: "team-reds", Name: "Reds", PlayerIDs: []string{"alice", "bob", "carl"}},
			{ID: "team-blues", Name: "Blues", PlayerIDs: []string{"dave", "erin"}},
		},
		TournamentTeams: []memory.TournamentTeam{
			{TournamentID: testTournamentID, TeamID: "team-reds"},
			{TournamentID: testTournamentID, TeamID: "team-blues"},
		},
		Matches: []match.Match{
			testMatch("m1", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC), 2, 1),
			testMatch("m2", time.Date(2026, 3, 8, 18, 0, 0, 0, time.UTC), 1, 0),
		},
		MatchTeams: []match.Team{
			{ID: "m1-a", MatchID: "m1", Name: "Reds"},
			{ID: "m1-b", MatchID: "m1", Name: "Blues"},
			{ID: "m2-a", MatchID: "m2", Name: "Reds"},
			{ID: "m2-b", MatchID: "m2", Name: "Blues"},
		},
		Roster: []roster.Entry{
			{ID: "m1-alice", MatchID: "m1", PlayerID: "alice", TeamID: "m1-a"},
			{ID: "m1-bob", MatchID: "m1", PlayerID: "bob", TeamID: "m1-a"},
			{ID: "m1-carl", MatchID: "m1", PlayerID: "carl", TeamID: "m1-a"},
			{ID: "m1-dave", MatchID: "m1", PlayerID: "dave", TeamID: "m1-b"},
			{ID: "m1-erin", MatchID: "m1", PlayerID: "erin", TeamID: "m1-b"},
			{ID: "m2-alice", MatchID: "m2", PlayerID: "alice", TeamID: "m2-a"},
			{ID: "m2-carl", MatchID: "m2", PlayerID: "carl", TeamID: "m2-a"},
			{ID: "m2-dave", MatchID: "m2", PlayerID: "dave", TeamID: "m2-b"},
		},
		Events: []matchevent.Event{
			{ID: "e1", MatchID: "m1", Type: matchevent.TypeGoal, Scorer: "Alice"},
			{ID: "e2", MatchID: "m1", Type: matchevent.TypeGoal, Scorer: "Bob", Assist: "Alice"},
			{ID: "e3", MatchID: "m1", Type: matchevent.TypeOwnGoal, Scorer: "Carl"},
			{ID: "e4", MatchID: "m1", Type: matchevent.TypeCard, Player: "Bob", CardType: matchevent.CardYellow},
			{ID: "e5", MatchID: "m1", Type: matchevent.TypeSave, Player: "Dave", PlayerID: "dave"},
			{ID: "e6", MatchID: "m2", Type: matchevent.TypeGoal, Scorer: "Alice", ScorerID: "alice"},
			{ID: "e7", MatchID: "m2", Type: matchevent.TypeSave, Player: "Dave"},
		},
	}
	return ds
}

func testMatch(id string, date time.Time, scoreA, scoreB int) match.Match {
	return match.Match{
		ID:           id,
		TournamentID: testTournamentID,
		Date:         date,
		Status:       match.StatusCompleted,
		Type:         match.TypeInternal,
		Round:        match.RoundGroupStage,
		TeamAName:    "Reds",
		TeamBName:    "Blues",
		ScoreTeamA:   scoreA,
		ScoreTeamB:   scoreB,
	}
}

type testRepos struct {
	db          *memory.DB
	players     *memory.PlayerRepository
	matches     *memory.MatchRepository
	rosters     *memory.RosterRepository
	stats       *memory.StatRepository
	events      *memory.EventRepository
	teams       *memory.TeamRepository
	tournaments *memory.TournamentRepository
	standings   *memory.StandingRepository
	prizes      *memory.PrizeRepository
}

func newTestRepos(ds memory.Dataset) testRepos {
	db := memory.NewDB(ds)
	return testRepos{
		db:          db,
		players:     memory.NewPlayerRepository(db),
		matches:     memory.NewMatchRepository(db),
		rosters:     memory.NewRosterRepository(db),
		stats:       memory.NewStatRepository(db),
		events:      memory.NewEventRepository(db),
		teams:       memory.NewTeamRepository(db),
		tournaments: memory.NewTournamentRepository(db),
		standings:   memory.NewStandingRepository(db),
		prizes:      memory.NewPrizeRepository(db),
	}
}

type countingInvalidator struct {
	calls atomic.Int32
}

func (c *countingInvalidator) InvalidateStats(context.Context) {
	c.calls.Add(1)
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}
