package tournament

import (
	"strings"
	"time"
)

const (
	TypeRoundRobin       = "round_robin"
	TypeDoubleRoundRobin = "double_round_robin"
	TypeKnockout         = "knockout"
	TypeGroupKnockout    = "group_knockout"
)

// Tournament carries the point weights used for its standings.
type Tournament struct {
	ID            string
	Name          string
	Type          string
	PointsPerWin  *int
	PointsPerDraw *int
	PointsPerLoss *int
}

// Weights are the points awarded per result.
type Weights struct {
	Win  int
	Draw int
	Loss int
}

func DefaultWeights() Weights {
	return Weights{Win: 3, Draw: 1, Loss: 0}
}

// Weights falls back to 3/1/0 for any weight the tournament does not set.
func (t Tournament) Weights() Weights {
	w := DefaultWeights()
	if t.PointsPerWin != nil {
		w.Win = *t.PointsPerWin
	}
	if t.PointsPerDraw != nil {
		w.Draw = *t.PointsPerDraw
	}
	if t.PointsPerLoss != nil {
		w.Loss = *t.PointsPerLoss
	}
	return w
}

// GeneratesFinal reports whether a final is scheduled automatically after the group stage.
func (t Tournament) GeneratesFinal() bool {
	switch strings.ToLower(strings.TrimSpace(t.Type)) {
	case TypeRoundRobin, TypeDoubleRoundRobin:
		return true
	default:
		return false
	}
}

// Standing is one team row keyed by (TournamentID, TeamID, GroupName).
type Standing struct {
	ID             string
	TournamentID   string
	TeamID         string
	GroupName      *string
	MatchesPlayed  int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	UpdatedAt      time.Time
}

const (
	CategoryTeamRank           = "team_rank"
	CategoryTopGoals           = "top_goals"
	CategoryTopAssists         = "top_assists"
	CategoryMostSaves          = "most_saves"
	CategoryMostValuablePlayer = "most_valuable_player"
	CategoryPlayerOfTournament = "player_of_tournament"
	CategoryBestGoalkeeper     = "best_goalkeeper"
	CategoryTopPerformer       = "top_performer"
)

const (
	RecipientTeam   = "team"
	RecipientPlayer = "player"
)

// ManualSelectionMarker tags prize rows set by hand. Tagged rows survive automatic recompute.
const ManualSelectionMarker = "Manual Selection"

// Prize is one awarded category row.
type Prize struct {
	ID                string
	TournamentID      string
	Category          string
	Rank              *int
	RecipientType     string
	RecipientTeamID   string
	RecipientPlayerID string
	Description       string
	CreatedAt         time.Time
}

// IsManual reports whether the row is a hand-picked player of the tournament.
func (p Prize) IsManual() bool {
	return p.Category == CategoryPlayerOfTournament && strings.Contains(p.Description, ManualSelectionMarker)
}

// HasManualPlayerOfTournament reports whether any row in prizes is a manual override.
func HasManualPlayerOfTournament(prizes []Prize) bool {
	for _, p := range prizes {
		if p.IsManual() {
			return true
		}
	}
	return false
}
