package memory

import (
	"sync"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
)

// TournamentTeam registers a persistent team to a tournament.
type TournamentTeam struct {
	TournamentID string
	TeamID       string
}

// Dataset is the initial content of a DB.
type Dataset struct {
	Players         []player.Player
	Matches         []match.Match
	MatchTeams      []match.Team
	Roster          []roster.Entry
	Stats           []matchstat.Row
	Events          []matchevent.Event
	Teams           []team.Team
	TournamentTeams []TournamentTeam
	Tournaments     []tournament.Tournament
	Standings       []tournament.Standing
	Prizes          []tournament.Prize
}

// DB holds every table behind one lock so joins and multi-table writes stay consistent.
type DB struct {
	mu sync.RWMutex

	players         []player.Player
	matches         []match.Match
	matchTeams      []match.Team
	roster          []roster.Entry
	stats           map[string]matchstat.Row
	statOrder       []string
	events          []matchevent.Event
	teams           []team.Team
	tournamentTeams []TournamentTeam
	tournaments     []tournament.Tournament
	standings       []tournament.Standing
	prizes          []tournament.Prize
}

func NewDB(ds Dataset) *DB {
	db := &DB{
		players:         append([]player.Player(nil), ds.Players...),
		matches:         append([]match.Match(nil), ds.Matches...),
		matchTeams:      append([]match.Team(nil), ds.MatchTeams...),
		roster:          append([]roster.Entry(nil), ds.Roster...),
		stats:           make(map[string]matchstat.Row, len(ds.Stats)),
		events:          append([]matchevent.Event(nil), ds.Events...),
		teams:           append([]team.Team(nil), ds.Teams...),
		tournamentTeams: append([]TournamentTeam(nil), ds.TournamentTeams...),
		tournaments:     append([]tournament.Tournament(nil), ds.Tournaments...),
		standings:       append([]tournament.Standing(nil), ds.Standings...),
		prizes:          append([]tournament.Prize(nil), ds.Prizes...),
	}
	for _, row := range ds.Stats {
		db.putStat(row)
	}
	return db
}

func (db *DB) putStat(row matchstat.Row) {
	if _, ok := db.stats[row.RosterEntryID]; !ok {
		db.statOrder = append(db.statOrder, row.RosterEntryID)
	}
	db.stats[row.RosterEntryID] = cloneRow(row)
}

func (db *DB) playerByID(playerID string) (player.Player, bool) {
	for _, p := range db.players {
		if p.ID == playerID {
			return p, true
		}
	}
	return player.Player{}, false
}

func (db *DB) matchTeamName(teamID string) string {
	for _, t := range db.matchTeams {
		if t.ID == teamID {
			return t.Name
		}
	}
	return ""
}

// member joins an entry to its player and side name. Entries without a player are dropped.
func (db *DB) member(entry roster.Entry) (roster.Member, bool) {
	p, ok := db.playerByID(entry.PlayerID)
	if !ok {
		return roster.Member{}, false
	}
	return roster.Member{Entry: entry, Player: p, TeamName: db.matchTeamName(entry.TeamID)}, true
}

func cloneRow(row matchstat.Row) matchstat.Row {
	if row.MinutesPlayed != nil {
		v := *row.MinutesPlayed
		row.MinutesPlayed = &v
	}
	if row.Rating != nil {
		v := *row.Rating
		row.Rating = &v
	}
	return row
}

func cloneStanding(s tournament.Standing) tournament.Standing {
	if s.GroupName != nil {
		v := *s.GroupName
		s.GroupName = &v
	}
	return s
}

func clonePrize(p tournament.Prize) tournament.Prize {
	if p.Rank != nil {
		v := *p.Rank
		p.Rank = &v
	}
	return p
}

func stringSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}
