package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
)

func TestPickPlayerOfTournament(t *testing.T) {
	tests := []struct {
		name   string
		scores []PlayerScore
		mvpID  string
		hasMVP bool
		want   string
		wantOK bool
	}{
		{
			name: "prefers a candidate other than the mvp",
			scores: []PlayerScore{
				{PlayerID: "ana", Matches: 3, Goals: 4, Score: 25},
				{PlayerID: "ben", Matches: 3, Goals: 1, Assists: 1, Score: 15},
			},
			mvpID: "ana", hasMVP: true,
			want: "ben", wantOK: true,
		},
		{
			name: "falls back to the mvp when nobody else qualifies",
			scores: []PlayerScore{
				{PlayerID: "ana", Matches: 3, Goals: 4, Score: 25},
				{PlayerID: "ben", Matches: 1, Goals: 2, Score: 18},
			},
			mvpID: "ana", hasMVP: true,
			want: "ana", wantOK: true,
		},
		{
			name: "needs at least two matches",
			scores: []PlayerScore{
				{PlayerID: "ana", Matches: 1, Goals: 3, Score: 20},
			},
			mvpID: "ana", hasMVP: true,
			wantOK: false,
		},
		{
			name: "needs a goal contribution",
			scores: []PlayerScore{
				{PlayerID: "gk", Matches: 4, Saves: 12, Score: 30},
				{PlayerID: "ben", Matches: 2, Assists: 1, Score: 6},
			},
			wantOK: true, want: "ben",
		},
		{
			name: "equal scores fall to contributions",
			scores: []PlayerScore{
				{PlayerID: "cal", Matches: 2, Goals: 1, Score: 10},
				{PlayerID: "dan", Matches: 2, Goals: 2, Assists: 1, Score: 10},
				{PlayerID: "mvp", Matches: 1, Goals: 5, Score: 16},
			},
			mvpID: "mvp", hasMVP: true,
			want: "dan", wantOK: true,
		},
		{
			name: "no mvp takes the top candidate",
			scores: []PlayerScore{
				{PlayerID: "cal", Matches: 2, Goals: 1, Score: 8},
				{PlayerID: "dan", Matches: 2, Goals: 2, Score: 12},
			},
			want: "dan", wantOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := pickPlayerOfTournament(tc.scores, tc.mvpID, tc.hasMVP)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got.PlayerID)
			}
		})
	}
}

func TestBuildPrizes_TiedCategories(t *testing.T) {
	tests := []struct {
		name        string
		scores      []PlayerScore
		category    string
		winners     []string
		description string
	}{
		{
			name: "best goalkeeper",
			scores: []PlayerScore{
				{PlayerID: "gk1", Saves: 3, CleanSheets: 1},
				{PlayerID: "gk2", Saves: 2, CleanSheets: 2},
				{PlayerID: "def", CleanSheets: 1},
			},
			category:    tournament.CategoryBestGoalkeeper,
			winners:     []string{"gk1", "gk2"},
			description: "Tied Best Goalkeeper (4 saves and clean sheets)",
		},
		{
			name: "most saves",
			scores: []PlayerScore{
				{PlayerID: "gk1", Saves: 5},
				{PlayerID: "gk2", Saves: 5},
				{PlayerID: "gk3", Saves: 1},
			},
			category:    tournament.CategoryMostSaves,
			winners:     []string{"gk1", "gk2"},
			description: "Tied Most Saves (5 saves)",
		},
		{
			name: "top performer",
			scores: []PlayerScore{
				{PlayerID: "ana", Score: 12.5},
				{PlayerID: "ben", Score: 9},
				{PlayerID: "cal", Score: 12.5},
			},
			category:    tournament.CategoryTopPerformer,
			winners:     []string{"ana", "cal"},
			description: "Tied Top Performer (score 12.5)",
		},
		{
			name: "single winner is not tied",
			scores: []PlayerScore{
				{PlayerID: "gk1", Saves: 6},
				{PlayerID: "gk2", Saves: 2},
			},
			category:    tournament.CategoryMostSaves,
			winners:     []string{"gk1"},
			description: "Most Saves (6 saves)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prizes := prizesByCategory(buildPrizes(testTournamentID, nil, tc.scores, false))[tc.category]
			require.Len(t, prizes, len(tc.winners))

			got := make([]string, 0, len(prizes))
			for _, p := range prizes {
				got = append(got, p.RecipientPlayerID)
				assert.Equal(t, tc.description, p.Description)
				assert.Equal(t, tournament.RecipientPlayer, p.RecipientType)
			}
			assert.Equal(t, tc.winners, got)
		})
	}
}

func TestBuildPrizes_PlayerOfTournamentSkipsMVP(t *testing.T) {
	scores := []PlayerScore{
		{PlayerID: "ana", Matches: 3, Goals: 4, Assists: 1, Score: 24},
		{PlayerID: "ben", Matches: 3, Goals: 1, Score: 11},
	}

	byCategory := prizesByCategory(buildPrizes(testTournamentID, nil, scores, false))
	require.Len(t, byCategory[tournament.CategoryMostValuablePlayer], 1)
	assert.Equal(t, "ana", byCategory[tournament.CategoryMostValuablePlayer][0].RecipientPlayerID)
	require.Len(t, byCategory[tournament.CategoryPlayerOfTournament], 1)
	assert.Equal(t, "ben", byCategory[tournament.CategoryPlayerOfTournament][0].RecipientPlayerID)
	assert.Equal(t, "Player of the Tournament (score 11.0)", byCategory[tournament.CategoryPlayerOfTournament][0].Description)

	manual := prizesByCategory(buildPrizes(testTournamentID, nil, scores, true))
	assert.Empty(t, manual[tournament.CategoryPlayerOfTournament])
}
