package leaderboard

import "github.com/devShamim/match-stats-sub000/internal/domain/match"

// PlayerTotals is one player's league-wide aggregate.
type PlayerTotals struct {
	PlayerID    string
	DisplayName string
	Position    string
	PhotoURL    string
	Matches     int
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	Minutes     int
	CleanSheets int
	Saves       int
}

func (p PlayerTotals) Contributions() int { return p.Goals + p.Assists }

func (p PlayerTotals) Cards() int { return p.YellowCards + p.RedCards }

// Limits bound each board. Zero means unbounded.
type Limits struct {
	TopScorers     int
	TopAssists     int
	TopPerformers  int
	MostActive     int
	MostCards      int
	TopCleanSheets int
	TopSaves       int
}

// DefaultLimits uses scorerLimit for the scorer and assist boards.
func DefaultLimits(scorerLimit int) Limits {
	if scorerLimit <= 0 {
		scorerLimit = 10
	}
	return Limits{
		TopScorers:     scorerLimit,
		TopAssists:     scorerLimit,
		TopPerformers:  5,
		MostActive:     10,
		MostCards:      10,
		TopCleanSheets: 5,
		TopSaves:       5,
	}
}

// Boards holds independently sorted and truncated projections of the same totals.
type Boards struct {
	TopScorers     []PlayerTotals
	TopAssists     []PlayerTotals
	TopPerformers  []PlayerTotals
	MostActive     []PlayerTotals
	MostCards      []PlayerTotals
	TopCleanSheets []PlayerTotals
	TopSaves       []PlayerTotals
}

// Overview is the public stats page payload.
type Overview struct {
	TotalGoals      int
	TotalAssists    int
	TotalMatches    int
	TotalPlayers    int
	Boards          Boards
	RecentMatches   []match.Match
	UpcomingMatches []match.Match
}
