package playerstats

import (
	"sort"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
)

// Appearance is one roster entry with its match, optional stat row and event counts.
type Appearance struct {
	Match  match.Match
	Row    *matchstat.Row
	Events EventCounts
}

// Accumulate folds appearances into totals. Saves and clean sheets come from the event
// counts whether or not a stat row exists; only rated rows enter the rating average.
func Accumulate(summary Summary, appearances []Appearance) Summary {
	var (
		ratingSum   float64
		ratingCount int
	)
	lines := make([]MatchLine, 0, len(appearances))

	for _, a := range appearances {
		line := matchstat.Resolve(a.Row)

		summary.TotalGoals += line.Goals
		summary.TotalAssists += line.Assists
		summary.TotalYellowCards += line.YellowCards
		summary.TotalRedCards += line.RedCards
		summary.TotalOwnGoals += line.OwnGoals
		summary.TotalMinutes += line.Minutes
		summary.TotalSaves += a.Events.Saves
		summary.TotalCleanSheets += a.Events.CleanSheets
		if line.Rating != nil {
			ratingSum += *line.Rating
			ratingCount++
		}

		lines = append(lines, MatchLine{
			MatchID:     a.Match.ID,
			Date:        a.Match.Date,
			TeamAName:   a.Match.TeamAName,
			TeamBName:   a.Match.TeamBName,
			ScoreTeamA:  a.Match.ScoreTeamA,
			ScoreTeamB:  a.Match.ScoreTeamB,
			Status:      a.Match.Status,
			Goals:       line.Goals,
			Assists:     line.Assists,
			YellowCards: line.YellowCards,
			RedCards:    line.RedCards,
			OwnGoals:    line.OwnGoals,
			Minutes:     line.Minutes,
			CleanSheets: a.Events.CleanSheets,
			Saves:       a.Events.Saves,
			Rating:      line.Rating,
		})
	}

	summary.MatchesPlayed += len(appearances)
	if ratingCount > 0 {
		summary.AverageRating = ratingSum / float64(ratingCount)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.After(lines[j].Date)
	})
	if len(lines) > RecentMatchesLimit {
		lines = lines[:RecentMatchesLimit]
	}
	summary.RecentMatches = lines
	return summary
}
