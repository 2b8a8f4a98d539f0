package memory

import (
	"fmt"
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
)

const SeedTournamentID = "t-summer-cup"

type seedTeam struct {
	id      string
	name    string
	players [3]player.Player
}

// SeedDataset returns a small round-robin tournament: four teams, four completed group
// matches with events, and two scheduled fixtures after now.
func SeedDataset(now time.Time) Dataset {
	base := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, time.UTC).AddDate(0, 0, -10)

	teams := []seedTeam{
		{id: "team-riverside", name: "Riverside FC", players: [3]player.Player{
			{ID: "p-amir", DisplayName: "Amir Hale", Position: "Goalkeeper", JerseyNumber: 1},
			{ID: "p-bruno", DisplayName: "Bruno Vale", Position: "CB", JerseyNumber: 4},
			{ID: "p-caleb", DisplayName: "Caleb Stone", Position: "Forward", JerseyNumber: 9},
		}},
		{id: "team-hilltop", name: "Hilltop United", players: [3]player.Player{
			{ID: "p-dario", DisplayName: "Dario Fenn", Position: "GK", JerseyNumber: 1},
			{ID: "p-elias", DisplayName: "Elias Ward", Position: "Defender", JerseyNumber: 5},
			{ID: "p-felix", DisplayName: "Felix Ort", Position: "Midfielder", JerseyNumber: 8},
		}},
		{id: "team-harbor", name: "Harbor Athletic", players: [3]player.Player{
			{ID: "p-goran", DisplayName: "Goran Ilic", Position: "Goalkeeper", JerseyNumber: 12},
			{ID: "p-hugo", DisplayName: "Hugo Marsh", Position: "DM", JerseyNumber: 6},
			{ID: "p-ivan", DisplayName: "Ivan Roos", Position: "Striker", JerseyNumber: 11},
		}},
		{id: "team-northgate", name: "Northgate Rovers", players: [3]player.Player{
			{ID: "p-jonas", DisplayName: "Jonas Kerr", Position: "GK", JerseyNumber: 1},
			{ID: "p-kofi", DisplayName: "Kofi Asante", Position: "LB", JerseyNumber: 3},
			{ID: "p-luca", DisplayName: "Luca Brandt", Position: "Winger", JerseyNumber: 7},
		}},
	}

	ds := Dataset{
		Tournaments: []tournament.Tournament{{ID: SeedTournamentID, Name: "Summer Cup", Type: tournament.TypeRoundRobin}},
	}
	for _, t := range teams {
		ids := make([]string, 0, len(t.players))
		for _, p := range t.players {
			ds.Players = append(ds.Players, p)
			ids = append(ids, p.ID)
		}
		ds.Teams = append(ds.Teams, team.Team{ID: t.id, Name: t.name, CaptainID: ids[0], PlayerIDs: ids})
		ds.TournamentTeams = append(ds.TournamentTeams, TournamentTeam{TournamentID: SeedTournamentID, TeamID: t.id})
	}

	fixtures := []struct {
		home, away int
		scoreA     int
		scoreB     int
		completed  bool
	}{
		{0, 1, 2, 1, true},
		{2, 3, 0, 0, true},
		{0, 2, 1, 1, true},
		{1, 3, 3, 2, true},
		{0, 3, 0, 0, false},
		{1, 2, 0, 0, false},
	}

	for i, f := range fixtures {
		home, away := teams[f.home], teams[f.away]
		matchID := fmt.Sprintf("m-%d", i+1)
		m := match.Match{
			ID:           matchID,
			TournamentID: SeedTournamentID,
			Date:         base.AddDate(0, 0, i*3),
			Status:       match.StatusScheduled,
			Type:         match.TypeInternal,
			Round:        match.RoundGroupStage,
			TeamAName:    home.name,
			TeamBName:    away.name,
		}
		if f.completed {
			m.Status = match.StatusCompleted
			m.ScoreTeamA = f.scoreA
			m.ScoreTeamB = f.scoreB
		}
		ds.Matches = append(ds.Matches, m)

		for side, t := range []seedTeam{home, away} {
			sideID := fmt.Sprintf("%s-%c", matchID, 'a'+side)
			ds.MatchTeams = append(ds.MatchTeams, match.Team{ID: sideID, MatchID: matchID, Name: t.name})
			if !f.completed {
				continue
			}
			for _, p := range t.players {
				ds.Roster = append(ds.Roster, roster.Entry{
					ID:       fmt.Sprintf("r-%s-%s", matchID, p.ID),
					MatchID:  matchID,
					PlayerID: p.ID,
					TeamID:   sideID,
					Position: p.Position,
				})
			}
		}
	}

	minute := func(v int) *int { return &v }
	goal := func(id, matchID string, scorer player.Player, assist *player.Player, at int) matchevent.Event {
		e := matchevent.Event{
			ID: id, MatchID: matchID, Type: matchevent.TypeGoal,
			Scorer: scorer.DisplayName, ScorerID: scorer.ID,
			Minute: minute(at), CreatedAt: base,
		}
		if assist != nil {
			e.Assist = assist.DisplayName
			e.AssistID = assist.ID
		}
		return e
	}
	single := func(id, matchID, kind string, p player.Player, card string) matchevent.Event {
		return matchevent.Event{
			ID: id, MatchID: matchID, Type: kind,
			Player: p.DisplayName, PlayerID: p.ID, CardType: card, CreatedAt: base,
		}
	}

	riv, hil, har, nor := teams[0].players, teams[1].players, teams[2].players, teams[3].players
	ds.Events = []matchevent.Event{
		goal("e-1", "m-1", riv[2], &riv[1], 12),
		goal("e-2", "m-1", riv[2], nil, 55),
		goal("e-3", "m-1", hil[2], &hil[1], 71),
		single("e-4", "m-1", matchevent.TypeCard, hil[1], matchevent.CardYellow),
		single("e-5", "m-1", matchevent.TypeSave, riv[0], ""),
		single("e-6", "m-2", matchevent.TypeCleanSheet, har[0], ""),
		single("e-7", "m-2", matchevent.TypeCleanSheet, nor[0], ""),
		single("e-8", "m-2", matchevent.TypeSave, nor[0], ""),
		goal("e-9", "m-3", riv[2], &riv[1], 30),
		goal("e-10", "m-3", har[2], &har[1], 64),
		single("e-11", "m-3", matchevent.TypeCard, riv[1], matchevent.CardRed),
		goal("e-12", "m-4", hil[2], nil, 8),
		goal("e-13", "m-4", hil[2], &hil[1], 40),
		{ID: "e-14", MatchID: "m-4", Type: matchevent.TypeOwnGoal, Scorer: nor[1].DisplayName, ScorerID: nor[1].ID, Minute: minute(52), CreatedAt: base},
		goal("e-15", "m-4", nor[2], &nor[1], 77),
		goal("e-16", "m-4", nor[2], nil, 88),
		single("e-17", "m-4", matchevent.TypeSave, hil[0], ""),
	}

	return ds
}
