package tournament

import (
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
)

// PlanFinal decides whether the group stage is over and a final should be scheduled.
// It returns the final between the top two teams of rows, dated one day after the
// latest match, or false when any condition is unmet:
// the tournament type generates finals, at least one group-stage match exists, every
// group-stage match is completed, and no final exists yet.
func PlanFinal(t Tournament, matches []match.Match, rows []Standing, teams []team.Team) (match.Match, bool) {
	if !t.GeneratesFinal() || len(rows) < 2 {
		return match.Match{}, false
	}

	var (
		groupStage int
		latest     time.Time
		matchType  string
	)
	for _, m := range matches {
		if m.IsFinal() {
			return match.Match{}, false
		}
		if m.Date.After(latest) {
			latest = m.Date
		}
		if !m.IsGroupStage() {
			continue
		}
		if !m.IsCompleted() {
			return match.Match{}, false
		}
		groupStage++
		if matchType == "" {
			matchType = m.Type
		}
	}
	if groupStage == 0 {
		return match.Match{}, false
	}

	names := make(map[string]string, len(teams))
	for _, tm := range teams {
		names[tm.ID] = tm.Name
	}
	top := Sorted(rows)
	first, okFirst := names[top[0].TeamID]
	second, okSecond := names[top[1].TeamID]
	if !okFirst || !okSecond {
		return match.Match{}, false
	}
	if matchType == "" {
		matchType = match.TypeInternal
	}

	return match.Match{
		TournamentID: t.ID,
		Date:         latest.AddDate(0, 0, 1),
		Status:       match.StatusScheduled,
		Type:         matchType,
		Round:        match.RoundFinal,
		TeamAName:    first,
		TeamBName:    second,
	}, true
}
