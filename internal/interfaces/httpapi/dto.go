package httpapi

import (
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/leaderboard"
	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/playerstats"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	"github.com/devShamim/match-stats-sub000/internal/usecase"
)

type matchEventRequest struct {
	Type     string `json:"type" validate:"required,oneof=goal own_goal card save clean_sheet"`
	Scorer   string `json:"scorer" validate:"omitempty,max=100"`
	ScorerID string `json:"scorer_id" validate:"omitempty,max=64"`
	Assist   string `json:"assist" validate:"omitempty,max=100"`
	AssistID string `json:"assist_id" validate:"omitempty,max=64"`
	Player   string `json:"player" validate:"omitempty,max=100"`
	PlayerID string `json:"player_id" validate:"omitempty,max=64"`
	CardType string `json:"card_type" validate:"omitempty,oneof=yellow red"`
	Minute   *int   `json:"minute" validate:"omitempty,gte=0,lte=150"`
}

type recordMatchEventsRequest struct {
	Events []matchEventRequest `json:"events" validate:"required,min=1,max=200,dive"`
}

type setPlayerRatingRequest struct {
	Rating *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

type setPlayerOfTournamentRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
}

func (r matchEventRequest) toDomain() matchevent.Event {
	return matchevent.Event{
		Type:     r.Type,
		Scorer:   r.Scorer,
		ScorerID: r.ScorerID,
		Assist:   r.Assist,
		AssistID: r.AssistID,
		Player:   r.Player,
		PlayerID: r.PlayerID,
		CardType: r.CardType,
		Minute:   r.Minute,
	}
}

type matchEventDTO struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	Type      string    `json:"type"`
	Scorer    string    `json:"scorer,omitempty"`
	ScorerID  string    `json:"scorer_id,omitempty"`
	Assist    string    `json:"assist,omitempty"`
	AssistID  string    `json:"assist_id,omitempty"`
	Player    string    `json:"player,omitempty"`
	PlayerID  string    `json:"player_id,omitempty"`
	CardType  string    `json:"card_type,omitempty"`
	Minute    *int      `json:"minute,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func eventsToDTO(events []matchevent.Event) []matchEventDTO {
	out := make([]matchEventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, matchEventDTO{
			ID:        e.ID,
			MatchID:   e.MatchID,
			Type:      e.Type,
			Scorer:    e.Scorer,
			ScorerID:  e.ScorerID,
			Assist:    e.Assist,
			AssistID:  e.AssistID,
			Player:    e.Player,
			PlayerID:  e.PlayerID,
			CardType:  e.CardType,
			Minute:    e.Minute,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

type statRowDTO struct {
	RosterEntryID string   `json:"match_player_id"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	YellowCards   int      `json:"yellow_cards"`
	RedCards      int      `json:"red_cards"`
	OwnGoals      int      `json:"own_goals"`
	MinutesPlayed *int     `json:"minutes_played,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

type recomputeDTO struct {
	MatchID string       `json:"match_id"`
	Rows    []statRowDTO `json:"rows"`
	Dropped int          `json:"dropped_events"`
}

func recomputeToDTO(result usecase.RecomputeResult) recomputeDTO {
	rows := make([]statRowDTO, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, statRowToDTO(r))
	}
	return recomputeDTO{MatchID: result.MatchID, Rows: rows, Dropped: result.Dropped}
}

func statRowToDTO(r matchstat.Row) statRowDTO {
	return statRowDTO{
		RosterEntryID: r.RosterEntryID,
		Goals:         r.Goals,
		Assists:       r.Assists,
		YellowCards:   r.YellowCards,
		RedCards:      r.RedCards,
		OwnGoals:      r.OwnGoals,
		MinutesPlayed: r.MinutesPlayed,
		Rating:        r.Rating,
	}
}

type matchRecomputeStatusDTO struct {
	MatchID    string `json:"match_id"`
	Status     string `json:"status"`
	Rows       int    `json:"rows"`
	Dropped    int    `json:"dropped_events"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type tournamentRecomputeDTO struct {
	TournamentID string                    `json:"tournament_id"`
	WorkerCount  int                       `json:"worker_count"`
	SuccessCount int                       `json:"success_count"`
	FailedCount  int                       `json:"failed_count"`
	Matches      []matchRecomputeStatusDTO `json:"matches"`
}

func tournamentRecomputeToDTO(result usecase.TournamentRecompute) tournamentRecomputeDTO {
	matches := make([]matchRecomputeStatusDTO, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, matchRecomputeStatusDTO(m))
	}
	return tournamentRecomputeDTO{
		TournamentID: result.TournamentID,
		WorkerCount:  result.WorkerCount,
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		Matches:      matches,
	}
}

type playerMatchLineDTO struct {
	MatchID     string    `json:"match_id"`
	Date        time.Time `json:"date"`
	TeamAName   string    `json:"team_a_name"`
	TeamBName   string    `json:"team_b_name"`
	ScoreTeamA  int       `json:"score_team_a"`
	ScoreTeamB  int       `json:"score_team_b"`
	Status      string    `json:"status"`
	Goals       int       `json:"goals"`
	Assists     int       `json:"assists"`
	YellowCards int       `json:"yellow_cards"`
	RedCards    int       `json:"red_cards"`
	OwnGoals    int       `json:"own_goals"`
	Minutes     int       `json:"minutes"`
	CleanSheets int       `json:"clean_sheets"`
	Saves       int       `json:"saves"`
	Rating      *float64  `json:"rating,omitempty"`
}

type playerStatsDTO struct {
	PlayerID         string               `json:"player_id"`
	DisplayName      string               `json:"display_name"`
	Position         string               `json:"position,omitempty"`
	TotalGoals       int                  `json:"total_goals"`
	TotalAssists     int                  `json:"total_assists"`
	TotalYellowCards int                  `json:"total_yellow_cards"`
	TotalRedCards    int                  `json:"total_red_cards"`
	TotalOwnGoals    int                  `json:"total_own_goals"`
	TotalMinutes     int                  `json:"total_minutes"`
	TotalCleanSheets int                  `json:"total_clean_sheets"`
	TotalSaves       int                  `json:"total_saves"`
	AverageRating    float64              `json:"average_rating"`
	MatchesPlayed    int                  `json:"matches_played"`
	RecentMatches    []playerMatchLineDTO `json:"recent_matches"`
}

func playerStatsToDTO(s playerstats.Summary) playerStatsDTO {
	recent := make([]playerMatchLineDTO, 0, len(s.RecentMatches))
	for _, m := range s.RecentMatches {
		recent = append(recent, playerMatchLineDTO(m))
	}
	return playerStatsDTO{
		PlayerID:         s.PlayerID,
		DisplayName:      s.DisplayName,
		Position:         s.Position,
		TotalGoals:       s.TotalGoals,
		TotalAssists:     s.TotalAssists,
		TotalYellowCards: s.TotalYellowCards,
		TotalRedCards:    s.TotalRedCards,
		TotalOwnGoals:    s.TotalOwnGoals,
		TotalMinutes:     s.TotalMinutes,
		TotalCleanSheets: s.TotalCleanSheets,
		TotalSaves:       s.TotalSaves,
		AverageRating:    s.AverageRating,
		MatchesPlayed:    s.MatchesPlayed,
		RecentMatches:    recent,
	}
}

type playerTotalsDTO struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Position    string `json:"position,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Matches     int    `json:"matches"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
	Minutes     int    `json:"minutes"`
	CleanSheets int    `json:"clean_sheets"`
	Saves       int    `json:"saves"`
}

type boardsDTO struct {
	TopScorers     []playerTotalsDTO `json:"top_scorers"`
	TopAssists     []playerTotalsDTO `json:"top_assists"`
	TopPerformers  []playerTotalsDTO `json:"top_performers"`
	MostActive     []playerTotalsDTO `json:"most_active"`
	MostCards      []playerTotalsDTO `json:"most_cards"`
	TopCleanSheets []playerTotalsDTO `json:"top_clean_sheets"`
	TopSaves       []playerTotalsDTO `json:"top_saves"`
}

func boardsToDTO(b leaderboard.Boards) boardsDTO {
	return boardsDTO{
		TopScorers:     totalsToDTO(b.TopScorers),
		TopAssists:     totalsToDTO(b.TopAssists),
		TopPerformers:  totalsToDTO(b.TopPerformers),
		MostActive:     totalsToDTO(b.MostActive),
		MostCards:      totalsToDTO(b.MostCards),
		TopCleanSheets: totalsToDTO(b.TopCleanSheets),
		TopSaves:       totalsToDTO(b.TopSaves),
	}
}

func totalsToDTO(items []leaderboard.PlayerTotals) []playerTotalsDTO {
	out := make([]playerTotalsDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerTotalsDTO(p))
	}
	return out
}

type matchDTO struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournament_id,omitempty"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
	Round        string    `json:"round,omitempty"`
	TeamAName    string    `json:"team_a_name"`
	TeamBName    string    `json:"team_b_name"`
	ScoreTeamA   *int      `json:"score_team_a,omitempty"`
	ScoreTeamB   *int      `json:"score_team_b,omitempty"`
}

func matchToDTO(m match.Match) matchDTO {
	out := matchDTO{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		Date:         m.Date,
		Status:       match.NormalizeStatus(m.Status),
		Round:        m.Round,
		TeamAName:    m.TeamAName,
		TeamBName:    m.TeamBName,
	}
	if m.IsCompleted() {
		a, b := m.ScoreTeamA, m.ScoreTeamB
		out.ScoreTeamA, out.ScoreTeamB = &a, &b
	}
	return out
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

type overviewDTO struct {
	TotalGoals      int        `json:"total_goals"`
	TotalAssists    int        `json:"total_assists"`
	TotalMatches    int        `json:"total_matches"`
	TotalPlayers    int        `json:"total_players"`
	Leaderboards    boardsDTO  `json:"leaderboards"`
	RecentMatches   []matchDTO `json:"recent_matches"`
	UpcomingMatches []matchDTO `json:"upcoming_matches"`
}

func overviewToDTO(o leaderboard.Overview) overviewDTO {
	return overviewDTO{
		TotalGoals:      o.TotalGoals,
		TotalAssists:    o.TotalAssists,
		TotalMatches:    o.TotalMatches,
		TotalPlayers:    o.TotalPlayers,
		Leaderboards:    boardsToDTO(o.Boards),
		RecentMatches:   matchesToDTO(o.RecentMatches),
		UpcomingMatches: matchesToDTO(o.UpcomingMatches),
	}
}

type standingDTO struct {
	ID             string    `json:"id"`
	TournamentID   string    `json:"tournament_id"`
	TeamID         string    `json:"team_id"`
	GroupName      *string   `json:"group_name,omitempty"`
	MatchesPlayed  int       `json:"matches_played"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	Points         int       `json:"points"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func standingsToDTO(items []tournament.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, s := range items {
		out = append(out, standingDTO(s))
	}
	return out
}

type standingsResultDTO struct {
	TournamentID   string        `json:"tournament_id"`
	Status         string        `json:"status"`
	Message        string        `json:"message,omitempty"`
	Standings      []standingDTO `json:"standings"`
	SkippedMatches []string      `json:"skipped_matches,omitempty"`
	FinalMatch     *matchDTO     `json:"final_match,omitempty"`
}

func standingsResultToDTO(result usecase.StandingsResult) standingsResultDTO {
	out := standingsResultDTO{
		TournamentID:   result.TournamentID,
		Status:         result.Status,
		Message:        result.Message,
		Standings:      standingsToDTO(result.Standings),
		SkippedMatches: result.SkippedMatches,
	}
	if result.FinalMatch != nil {
		final := matchToDTO(*result.FinalMatch)
		out.FinalMatch = &final
	}
	return out
}

type prizeDTO struct {
	ID                string    `json:"id"`
	TournamentID      string    `json:"tournament_id"`
	Category          string    `json:"category"`
	Rank              *int      `json:"rank,omitempty"`
	RecipientType     string    `json:"recipient_type"`
	RecipientTeamID   string    `json:"recipient_team_id,omitempty"`
	RecipientPlayerID string    `json:"recipient_player_id,omitempty"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"created_at"`
}

func prizeToDTO(p tournament.Prize) prizeDTO {
	return prizeDTO(p)
}

func prizesToDTO(items []tournament.Prize) []prizeDTO {
	out := make([]prizeDTO, 0, len(items))
	for _, p := range items {
		out = append(out, prizeToDTO(p))
	}
	return out
}

type prizeResultDTO struct {
	TournamentID string     `json:"tournament_id"`
	Prizes       []prizeDTO `json:"prizes"`
	ManualKept   bool       `json:"manual_player_of_tournament_kept"`
}

type playerScoreDTO struct {
	PlayerID      string  `json:"player_id"`
	DisplayName   string  `json:"display_name"`
	Position      string  `json:"position,omitempty"`
	TeamID        string  `json:"team_id,omitempty"`
	Matches       int     `json:"matches"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	OwnGoals      int     `json:"own_goals"`
	Saves         int     `json:"saves"`
	CleanSheets   int     `json:"clean_sheets"`
	RatedMatches  int     `json:"rated_matches"`
	AverageRating float64 `json:"average_rating"`
	IsDefender    bool    `json:"is_defender"`
	Score         float64 `json:"score"`
}

func playerScoresToDTO(items []usecase.PlayerScore) []playerScoreDTO {
	out := make([]playerScoreDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerScoreDTO(p))
	}
	return out
}
