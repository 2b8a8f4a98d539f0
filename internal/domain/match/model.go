package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	TypeInternal = "internal"
	TypeExternal = "external"
)

const (
	RoundGroupStage = "group_stage"
	RoundFinal      = "final"
)

// Match is one fixture. Scores are only meaningful once Status is completed.
type Match struct {
	ID           string
	TournamentID string
	Date         time.Time
	Status       string
	Type         string
	Round        string
	TeamAName    string
	TeamBName    string
	ScoreTeamA   int
	ScoreTeamB   int
}

// Team is the per-match side record. It is not the persistent team.
type Team struct {
	ID      string
	MatchID string
	Name    string
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func (m Match) IsCompleted() bool {
	return NormalizeStatus(m.Status) == StatusCompleted
}

// IsGroupStage treats a missing round as group stage.
func (m Match) IsGroupStage() bool {
	round := strings.ToLower(strings.TrimSpace(m.Round))
	return round == "" || round == RoundGroupStage
}

func (m Match) IsFinal() bool {
	return strings.ToLower(strings.TrimSpace(m.Round)) == RoundFinal
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.TeamAName) == "" || strings.TrimSpace(m.TeamBName) == "" {
		return fmt.Errorf("match team names are required")
	}
	switch NormalizeStatus(m.Status) {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
	default:
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	if m.ScoreTeamA < 0 || m.ScoreTeamB < 0 {
		return fmt.Errorf("match scores must be >= 0")
	}

	return nil
}
