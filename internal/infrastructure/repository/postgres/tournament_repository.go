package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	qb "github.com/devShamim/match-stats-sub000/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *DB
}

func NewTournamentRepository(db *DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select(
		"id",
		"name",
		"tournament_type",
		"points_per_win",
		"points_per_draw",
		"points_per_loss",
	).From("tournaments").
		Where(qb.Eq("id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament query: %w", err)
	}

	var row tournamentTableModel
	err = r.db.run("select tournament", func() error {
		return r.db.x.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament: %w", err)
	}

	return tournament.Tournament{
		ID:            row.ID,
		Name:          row.Name,
		Type:          row.Type,
		PointsPerWin:  intPtr(row.PointsPerWin),
		PointsPerDraw: intPtr(row.PointsPerDraw),
		PointsPerLoss: intPtr(row.PointsPerLoss),
	}, true, nil
}

type StandingRepository struct {
	db *DB
}

var standingSelectColumns = []string{
	"id",
	"tournament_id",
	"team_id",
	"group_name",
	"matches_played",
	"wins",
	"draws",
	"losses",
	"goals_for",
	"goals_against",
	"goal_difference",
	"points",
	"updated_at",
}

func NewStandingRepository(db *DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListByTournament(ctx context.Context, tournamentID string) ([]tournament.Standing, error) {
	query, args, err := qb.Select(standingSelectColumns...).From("tournament_standings").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("points DESC", "goal_difference DESC", "goals_for DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingTableModel
	err = r.db.run("select standings", func() error {
		return r.db.x.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]tournament.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingFromRow(row))
	}
	return out, nil
}

func (r *StandingRepository) FindOrCreate(ctx context.Context, candidate tournament.Standing) (tournament.Standing, error) {
	insertQuery, insertArgs, err := qb.InsertModel("tournament_standings", standingModel(candidate),
		"ON CONFLICT (tournament_id, team_id, (COALESCE(group_name, ''))) DO NOTHING")
	if err != nil {
		return tournament.Standing{}, fmt.Errorf("build insert standing query: %w", err)
	}

	group := ""
	if candidate.GroupName != nil {
		group = *candidate.GroupName
	}
	selectQuery, selectArgs, err := qb.Select(standingSelectColumns...).From("tournament_standings").
		Where(
			qb.Eq("tournament_id", candidate.TournamentID),
			qb.Eq("team_id", candidate.TeamID),
			qb.Expr("COALESCE(group_name, '') = ?", group),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Standing{}, fmt.Errorf("build select standing query: %w", err)
	}

	var row standingTableModel
	err = r.db.inTx(ctx, "find or create standing", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert standing: %w", err)
		}
		if err := tx.GetContext(ctx, &row, selectQuery, selectArgs...); err != nil {
			return fmt.Errorf("select standing: %w", err)
		}
		return nil
	})
	if err != nil {
		return tournament.Standing{}, err
	}
	return standingFromRow(row), nil
}

func (r *StandingRepository) Update(ctx context.Context, standing tournament.Standing) error {
	query, args, err := qb.Update("tournament_standings").
		Set("matches_played", standing.MatchesPlayed).
		Set("wins", standing.Wins).
		Set("draws", standing.Draws).
		Set("losses", standing.Losses).
		Set("goals_for", standing.GoalsFor).
		Set("goals_against", standing.GoalsAgainst).
		Set("goal_difference", standing.GoalDifference).
		Set("points", standing.Points).
		Set("updated_at", standing.UpdatedAt).
		Where(qb.Eq("id", standing.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update standing query: %w", err)
	}

	err = r.db.run("update standing", func() error {
		_, execErr := r.db.x.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("update standing id=%s: %w", standing.ID, err)
	}
	return nil
}

func standingModel(s tournament.Standing) standingTableModel {
	model := standingTableModel{
		ID:             s.ID,
		TournamentID:   s.TournamentID,
		TeamID:         s.TeamID,
		MatchesPlayed:  s.MatchesPlayed,
		Wins:           s.Wins,
		Draws:          s.Draws,
		Losses:         s.Losses,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.GroupName != nil {
		model.GroupName = nullString(*s.GroupName)
	}
	return model
}

func standingFromRow(row standingTableModel) tournament.Standing {
	return tournament.Standing{
		ID:             row.ID,
		TournamentID:   row.TournamentID,
		TeamID:         row.TeamID,
		GroupName:      stringPtr(row.GroupName),
		MatchesPlayed:  row.MatchesPlayed,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		UpdatedAt:      row.UpdatedAt,
	}
}

type PrizeRepository struct {
	db *DB
}

var prizeSelectColumns = []string{
	"id",
	"tournament_id",
	"category",
	"prize_rank",
	"recipient_type",
	"recipient_team_id",
	"recipient_player_id",
	"description",
	"created_at",
}

func NewPrizeRepository(db *DB) *PrizeRepository {
	return &PrizeRepository{db: db}
}

func (r *PrizeRepository) ListByTournament(ctx context.Context, tournamentID string) ([]tournament.Prize, error) {
	query, args, err := qb.Select(prizeSelectColumns...).From("tournament_prizes").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("created_at", "seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select prizes query: %w", err)
	}

	var rows []prizeTableModel
	err = r.db.run("select prizes", func() error {
		return r.db.x.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select prizes: %w", err)
	}

	out := make([]tournament.Prize, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournament.Prize{
			ID:                row.ID,
			TournamentID:      row.TournamentID,
			Category:          row.Category,
			Rank:              intPtr(row.Rank),
			RecipientType:     row.RecipientType,
			RecipientTeamID:   row.RecipientTeamID.String,
			RecipientPlayerID: row.RecipientPlayerID.String,
			Description:       row.Description,
			CreatedAt:         row.CreatedAt,
		})
	}
	return out, nil
}

func (r *PrizeRepository) ReplaceAutomatic(ctx context.Context, tournamentID string, prizes []tournament.Prize) error {
	deleteQuery, deleteArgs, err := qb.DeleteFrom("tournament_prizes").
		Where(
			qb.Eq("tournament_id", tournamentID),
			qb.Expr("NOT (category = ? AND description LIKE ?)",
				tournament.CategoryPlayerOfTournament, "%"+tournament.ManualSelectionMarker+"%"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete automatic prizes query: %w", err)
	}

	return r.db.inTx(ctx, "replace prizes", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("delete automatic prizes: %w", err)
		}
		return insertPrizes(ctx, tx, prizes)
	})
}

func (r *PrizeRepository) ReplacePlayerOfTournament(ctx context.Context, tournamentID string, prize tournament.Prize) error {
	deleteQuery, deleteArgs, err := qb.DeleteFrom("tournament_prizes").
		Where(
			qb.Eq("tournament_id", tournamentID),
			qb.Eq("category", tournament.CategoryPlayerOfTournament),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player of the tournament query: %w", err)
	}

	return r.db.inTx(ctx, "replace player of the tournament", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("delete player of the tournament: %w", err)
		}
		return insertPrizes(ctx, tx, []tournament.Prize{prize})
	})
}

func insertPrizes(ctx context.Context, tx *sqlx.Tx, prizes []tournament.Prize) error {
	if len(prizes) == 0 {
		return nil
	}

	models := make([]prizeTableModel, 0, len(prizes))
	for _, p := range prizes {
		models = append(models, prizeTableModel{
			ID:                p.ID,
			TournamentID:      p.TournamentID,
			Category:          p.Category,
			Rank:              nullInt(p.Rank),
			RecipientType:     p.RecipientType,
			RecipientTeamID:   nullString(p.RecipientTeamID),
			RecipientPlayerID: nullString(p.RecipientPlayerID),
			Description:       p.Description,
			CreatedAt:         p.CreatedAt,
		})
	}
	query, args, err := qb.InsertModels("tournament_prizes", models, "")
	if err != nil {
		return fmt.Errorf("build insert prizes query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert prizes: %w", err)
	}
	return nil
}
