package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	qb "github.com/devShamim/match-stats-sub000/internal/platform/querybuilder"
)

type StatRepository struct {
	db *DB
}

var statSelectColumns = []string{
	"match_player_id",
	"goals",
	"assists",
	"yellow_cards",
	"red_cards",
	"own_goals",
	"minutes_played",
	"rating",
}

// Counter upserts never touch minutes_played or rating on an existing row.
const upsertCountersSuffix = `ON CONFLICT (match_player_id) DO UPDATE SET
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    own_goals = EXCLUDED.own_goals,
    updated_at = NOW()`

const setRatingSuffix = `ON CONFLICT (match_player_id) DO UPDATE SET
    rating = EXCLUDED.rating,
    updated_at = NOW()`

func NewStatRepository(db *DB) *StatRepository {
	return &StatRepository{db: db}
}

func (r *StatRepository) ListByRosterEntries(ctx context.Context, rosterEntryIDs []string) ([]matchstat.Row, error) {
	if len(rosterEntryIDs) == 0 {
		return []matchstat.Row{}, nil
	}
	return r.list(ctx, "select stats by roster entries", qb.Select(statSelectColumns...).From("player_stats").
		Where(qb.In("match_player_id", stringSliceToAny(rosterEntryIDs))).
		OrderBy("match_player_id"))
}

func (r *StatRepository) ListAll(ctx context.Context) ([]matchstat.Row, error) {
	return r.list(ctx, "select all stats", qb.Select(statSelectColumns...).From("player_stats").
		OrderBy("match_player_id"))
}

func (r *StatRepository) UpsertCounters(ctx context.Context, rows []matchstat.Row) error {
	if len(rows) == 0 {
		return nil
	}

	models := make([]statTableModel, 0, len(rows))
	for _, row := range rows {
		models = append(models, statModelFromRow(row))
	}
	query, args, err := qb.InsertModels("player_stats", models, upsertCountersSuffix)
	if err != nil {
		return fmt.Errorf("build upsert stats query: %w", err)
	}

	return r.db.inTx(ctx, "upsert stats", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player stats: %w", err)
		}
		return nil
	})
}

func (r *StatRepository) SetRating(ctx context.Context, rosterEntryID string, rating *float64) error {
	minutes := matchstat.DefaultMinutes
	query, args, err := qb.InsertModel("player_stats", statModelFromRow(matchstat.Row{
		RosterEntryID: rosterEntryID,
		MinutesPlayed: &minutes,
		Rating:        rating,
	}), setRatingSuffix)
	if err != nil {
		return fmt.Errorf("build set rating query: %w", err)
	}

	err = r.db.run("set rating", func() error {
		_, execErr := r.db.x.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("set player rating: %w", err)
	}
	return nil
}

func (r *StatRepository) list(ctx context.Context, op string, builder *qb.SelectBuilder) ([]matchstat.Row, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []statTableModel
	err = r.db.run(op, func() error {
		return r.db.x.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]matchstat.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchstat.Row{
			RosterEntryID: row.MatchPlayerID,
			Goals:         row.Goals,
			Assists:       row.Assists,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
			OwnGoals:      row.OwnGoals,
			MinutesPlayed: intPtr(row.MinutesPlayed),
			Rating:        floatPtr(row.Rating),
		})
	}
	return out, nil
}

func statModelFromRow(row matchstat.Row) statTableModel {
	return statTableModel{
		MatchPlayerID: row.RosterEntryID,
		Goals:         row.Goals,
		Assists:       row.Assists,
		YellowCards:   row.YellowCards,
		RedCards:      row.RedCards,
		OwnGoals:      row.OwnGoals,
		MinutesPlayed: nullInt(row.MinutesPlayed),
		Rating:        nullFloat(row.Rating),
	}
}
