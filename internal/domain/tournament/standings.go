package tournament

import (
	"sort"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
)

// Table is the result of replaying completed matches.
type Table struct {
	// Rows holds one row per registered team, in registration order.
	Rows []Standing
	// Skipped lists completed matches with a side that matched no registered team.
	Skipped []match.Match
}

// BuildTable replays completed matches against the registered teams. Matches with a side
// that does not resolve to a registered team are skipped.
func BuildTable(tournamentID string, teams []team.Team, matches []match.Match, w Weights) Table {
	rows := make([]Standing, 0, len(teams))
	rowIndex := make(map[string]int, len(teams))
	for _, t := range teams {
		if _, dup := rowIndex[t.ID]; dup {
			continue
		}
		rowIndex[t.ID] = len(rows)
		rows = append(rows, Standing{TournamentID: tournamentID, TeamID: t.ID})
	}
	byName := team.IndexByName(teams)

	var skipped []match.Match
	for _, m := range matches {
		if !m.IsCompleted() {
			continue
		}
		teamA, okA := byName[team.NormalizeName(m.TeamAName)]
		teamB, okB := byName[team.NormalizeName(m.TeamBName)]
		if !okA || !okB {
			skipped = append(skipped, m)
			continue
		}

		a := &rows[rowIndex[teamA]]
		b := &rows[rowIndex[teamB]]
		applyResult(a, m.ScoreTeamA, m.ScoreTeamB)
		applyResult(b, m.ScoreTeamB, m.ScoreTeamA)
	}

	for i := range rows {
		r := &rows[i]
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		r.Points = r.Wins*w.Win + r.Draws*w.Draw + r.Losses*w.Loss
	}

	return Table{Rows: rows, Skipped: skipped}
}

func applyResult(s *Standing, scored, conceded int) {
	s.MatchesPlayed++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		s.Wins++
	case scored == conceded:
		s.Draws++
	default:
		s.Losses++
	}
}

// Sort orders rows by points, goal difference, then goals for, all descending.
// Remaining ties keep their input order.
func Sort(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})
}

// Sorted returns a sorted copy of rows.
func Sorted(rows []Standing) []Standing {
	out := append([]Standing(nil), rows...)
	Sort(out)
	return out
}
