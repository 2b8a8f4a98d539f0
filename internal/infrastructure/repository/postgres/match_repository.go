package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	qb "github.com/devShamim/match-stats-sub000/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *DB
}

var matchSelectColumns = []string{
	"id",
	"tournament_id",
	"match_date",
	"status",
	"match_type",
	"round",
	"team_a_name",
	"team_b_name",
	"score_team_a",
	"score_team_b",
}

func NewMatchRepository(db *DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	err = r.db.run("select match", func() error {
		return r.db.x.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListByIDs(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	if len(matchIDs) == 0 {
		return []match.Match{}, nil
	}
	return r.list(ctx, "select matches by ids", qb.Select(matchSelectColumns...).From("matches").
		Where(qb.In("id", stringSliceToAny(matchIDs))).
		OrderBy("match_date", "id"))
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	return r.list(ctx, "select matches by tournament", qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("match_date", "id"))
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit int) ([]match.Match, error) {
	return r.list(ctx, "select recent matches", qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("status", match.StatusCompleted)).
		OrderBy("match_date DESC", "id").
		Limit(limit))
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]match.Match, error) {
	return r.list(ctx, "select upcoming matches", qb.Select(matchSelectColumns...).From("matches").
		Where(
			qb.Eq("status", match.StatusScheduled),
			qb.Expr("match_date >= ?", from),
		).
		OrderBy("match_date", "id").
		Limit(limit))
}

func (r *MatchRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(qb.Eq("status", match.NormalizeStatus(status))).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var count int
	err = r.db.run("count matches", func() error {
		return r.db.x.GetContext(ctx, &count, query, args...)
	})
	if err != nil {
		return 0, fmt.Errorf("count matches by status: %w", err)
	}
	return count, nil
}

func (r *MatchRepository) CreateWithTeams(ctx context.Context, m match.Match, teams []match.Team) error {
	matchQuery, matchArgs, err := qb.InsertModel("matches", matchTableModel{
		ID:           m.ID,
		TournamentID: nullString(m.TournamentID),
		MatchDate:    m.Date,
		Status:       match.NormalizeStatus(m.Status),
		MatchType:    nullString(m.Type),
		Round:        nullString(m.Round),
		TeamAName:    m.TeamAName,
		TeamBName:    m.TeamBName,
		ScoreTeamA:   m.ScoreTeamA,
		ScoreTeamB:   m.ScoreTeamB,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	sides := make([]matchTeamTableModel, 0, len(teams))
	for _, t := range teams {
		sides = append(sides, matchTeamTableModel{ID: t.ID, MatchID: m.ID, Name: t.Name})
	}

	return r.db.inTx(ctx, "create match", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, matchQuery, matchArgs...); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}
		if len(sides) == 0 {
			return nil
		}
		sidesQuery, sidesArgs, err := qb.InsertModels("match_teams", sides, "")
		if err != nil {
			return fmt.Errorf("build insert match teams query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sidesQuery, sidesArgs...); err != nil {
			return fmt.Errorf("insert match teams: %w", err)
		}
		return nil
	})
}

func (r *MatchRepository) list(ctx context.Context, op string, builder *qb.SelectBuilder) ([]match.Match, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []matchTableModel
	err = r.db.run(op, func() error {
		return r.db.x.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.ID,
		TournamentID: row.TournamentID.String,
		Date:         row.MatchDate,
		Status:       match.NormalizeStatus(row.Status),
		Type:         row.MatchType.String,
		Round:        row.Round.String,
		TeamAName:    row.TeamAName,
		TeamBName:    row.TeamBName,
		ScoreTeamA:   row.ScoreTeamA,
		ScoreTeamB:   row.ScoreTeamB,
	}
}
