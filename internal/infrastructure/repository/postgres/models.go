package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type playerTableModel struct {
	ID           string         `db:"id"`
	DisplayName  string         `db:"display_name"`
	Position     sql.NullString `db:"position"`
	JerseyNumber sql.NullInt64  `db:"jersey_number"`
	PhotoURL     sql.NullString `db:"photo_url"`
}

type matchTableModel struct {
	ID           string         `db:"id"`
	TournamentID sql.NullString `db:"tournament_id"`
	MatchDate    time.Time      `db:"match_date"`
	Status       string         `db:"status"`
	MatchType    sql.NullString `db:"match_type"`
	Round        sql.NullString `db:"round"`
	TeamAName    string         `db:"team_a_name"`
	TeamBName    string         `db:"team_b_name"`
	ScoreTeamA   int            `db:"score_team_a"`
	ScoreTeamB   int            `db:"score_team_b"`
}

type matchTeamTableModel struct {
	ID      string `db:"id"`
	MatchID string `db:"match_id"`
	Name    string `db:"name"`
}

type memberRowModel struct {
	ID             string         `db:"id"`
	MatchID        string         `db:"match_id"`
	PlayerID       string         `db:"player_id"`
	TeamID         sql.NullString `db:"team_id"`
	EntryPosition  sql.NullString `db:"entry_position"`
	DisplayName    string         `db:"display_name"`
	PlayerPosition sql.NullString `db:"player_position"`
	JerseyNumber   sql.NullInt64  `db:"jersey_number"`
	PhotoURL       sql.NullString `db:"photo_url"`
	TeamName       string         `db:"team_name"`
}

type statTableModel struct {
	MatchPlayerID string          `db:"match_player_id"`
	Goals         int             `db:"goals"`
	Assists       int             `db:"assists"`
	YellowCards   int             `db:"yellow_cards"`
	RedCards      int             `db:"red_cards"`
	OwnGoals      int             `db:"own_goals"`
	MinutesPlayed sql.NullInt64   `db:"minutes_played"`
	Rating        sql.NullFloat64 `db:"rating"`
}

type eventTableModel struct {
	ID        string         `db:"id"`
	MatchID   string         `db:"match_id"`
	EventType string         `db:"event_type"`
	Scorer    sql.NullString `db:"scorer"`
	ScorerID  sql.NullString `db:"scorer_id"`
	Assist    sql.NullString `db:"assist"`
	AssistID  sql.NullString `db:"assist_id"`
	Player    sql.NullString `db:"player"`
	PlayerID  sql.NullString `db:"player_id"`
	CardType  sql.NullString `db:"card_type"`
	Minute    sql.NullInt64  `db:"minute"`
	CreatedAt time.Time      `db:"created_at"`
}

type teamRowModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	CaptainID sql.NullString `db:"captain_id"`
	PlayerIDs pq.StringArray `db:"player_ids"`
}

type tournamentTableModel struct {
	ID            string        `db:"id"`
	Name          string        `db:"name"`
	Type          string        `db:"tournament_type"`
	PointsPerWin  sql.NullInt64 `db:"points_per_win"`
	PointsPerDraw sql.NullInt64 `db:"points_per_draw"`
	PointsPerLoss sql.NullInt64 `db:"points_per_loss"`
}

type standingTableModel struct {
	ID             string         `db:"id"`
	TournamentID   string         `db:"tournament_id"`
	TeamID         string         `db:"team_id"`
	GroupName      sql.NullString `db:"group_name"`
	MatchesPlayed  int            `db:"matches_played"`
	Wins           int            `db:"wins"`
	Draws          int            `db:"draws"`
	Losses         int            `db:"losses"`
	GoalsFor       int            `db:"goals_for"`
	GoalsAgainst   int            `db:"goals_against"`
	GoalDifference int            `db:"goal_difference"`
	Points         int            `db:"points"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type prizeTableModel struct {
	ID                string         `db:"id"`
	TournamentID      string         `db:"tournament_id"`
	Category          string         `db:"category"`
	Rank              sql.NullInt64  `db:"prize_rank"`
	RecipientType     string         `db:"recipient_type"`
	RecipientTeamID   sql.NullString `db:"recipient_team_id"`
	RecipientPlayerID sql.NullString `db:"recipient_player_id"`
	Description       string         `db:"description"`
	CreatedAt         time.Time      `db:"created_at"`
}
