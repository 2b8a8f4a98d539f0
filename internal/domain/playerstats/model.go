package playerstats

import "time"

// RecentMatchesLimit bounds Summary.RecentMatches.
const RecentMatchesLimit = 5

// Summary is a player's career aggregate.
type Summary struct {
	PlayerID         string
	DisplayName      string
	Position         string
	TotalGoals       int
	TotalAssists     int
	TotalYellowCards int
	TotalRedCards    int
	TotalOwnGoals    int
	TotalMinutes     int
	TotalCleanSheets int
	TotalSaves       int
	AverageRating    float64
	MatchesPlayed    int
	RecentMatches    []MatchLine
}

// MatchLine is one match's contribution to a Summary.
type MatchLine struct {
	MatchID     string
	Date        time.Time
	TeamAName   string
	TeamBName   string
	ScoreTeamA  int
	ScoreTeamB  int
	Status      string
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	OwnGoals    int
	Minutes     int
	CleanSheets int
	Saves       int
	Rating      *float64
}

// EventCounts are the event-log sourced numbers for one match.
type EventCounts struct {
	Saves       int
	CleanSheets int
}
