package leaderboard

import "sort"

// Build projects totals into every board. Sorting is by the board metric, descending;
// ties are broken by display name and then player id.
func Build(totals []PlayerTotals, limits Limits) Boards {
	return Boards{
		TopScorers:     project(totals, func(p PlayerTotals) int { return p.Goals }, false, limits.TopScorers),
		TopAssists:     project(totals, func(p PlayerTotals) int { return p.Assists }, false, limits.TopAssists),
		TopPerformers:  project(totals, PlayerTotals.Contributions, true, limits.TopPerformers),
		MostActive:     project(totals, func(p PlayerTotals) int { return p.Minutes }, false, limits.MostActive),
		MostCards:      project(totals, PlayerTotals.Cards, true, limits.MostCards),
		TopCleanSheets: project(totals, func(p PlayerTotals) int { return p.CleanSheets }, true, limits.TopCleanSheets),
		TopSaves:       project(totals, func(p PlayerTotals) int { return p.Saves }, true, limits.TopSaves),
	}
}

func project(totals []PlayerTotals, metric func(PlayerTotals) int, positiveOnly bool, limit int) []PlayerTotals {
	out := make([]PlayerTotals, 0, len(totals))
	for _, p := range totals {
		if positiveOnly && metric(p) <= 0 {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		mi, mj := metric(out[i]), metric(out[j])
		if mi != mj {
			return mi > mj
		}
		if out[i].DisplayName != out[j].DisplayName {
			return out[i].DisplayName < out[j].DisplayName
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
