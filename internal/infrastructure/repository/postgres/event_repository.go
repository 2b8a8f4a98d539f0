package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	qb "github.com/devShamim/match-stats-sub000/internal/platform/querybuilder"
)

type EventRepository struct {
	db *DB
}

var eventSelectColumns = []string{
	"id",
	"match_id",
	"event_type",
	"scorer",
	"scorer_id",
	"assist",
	"assist_id",
	"player",
	"player_id",
	"card_type",
	"minute",
	"created_at",
}

// Goals and own goals keep their subject in the scorer columns, every other type in the
// player columns. Rows without an id are matched by display name.
const eventSubjectCondition = `((event_type IN ('goal', 'own_goal') AND (scorer_id = ? OR (scorer_id IS NULL AND scorer = ?)))
  OR (event_type NOT IN ('goal', 'own_goal') AND (player_id = ? OR (player_id IS NULL AND player = ?))))`

func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID string) ([]matchevent.Event, error) {
	return r.list(ctx, "select match events", qb.Eq("match_id", matchID))
}

func (r *EventRepository) ListByMatches(ctx context.Context, matchIDs []string, types ...string) ([]matchevent.Event, error) {
	if len(matchIDs) == 0 {
		return []matchevent.Event{}, nil
	}
	conds := append([]qb.Condition{qb.In("match_id", stringSliceToAny(matchIDs))}, typeConditions(types)...)
	return r.list(ctx, "select events by matches", conds...)
}

func (r *EventRepository) ListByTypes(ctx context.Context, types ...string) ([]matchevent.Event, error) {
	return r.list(ctx, "select events by types", typeConditions(types)...)
}

func (r *EventRepository) ListForPlayer(ctx context.Context, playerID, displayName string, types ...string) ([]matchevent.Event, error) {
	displayName = strings.TrimSpace(displayName)
	conds := append(typeConditions(types), qb.Expr(eventSubjectCondition, playerID, displayName, playerID, displayName))
	return r.list(ctx, "select player events", conds...)
}

func (r *EventRepository) Append(ctx context.Context, events []matchevent.Event) error {
	if len(events) == 0 {
		return nil
	}

	models := make([]eventTableModel, 0, len(events))
	for _, e := range events {
		models = append(models, eventTableModel{
			ID:        e.ID,
			MatchID:   e.MatchID,
			EventType: matchevent.NormalizeType(e.Type),
			Scorer:    nullString(e.Scorer),
			ScorerID:  nullString(e.ScorerID),
			Assist:    nullString(e.Assist),
			AssistID:  nullString(e.AssistID),
			Player:    nullString(e.Player),
			PlayerID:  nullString(e.PlayerID),
			CardType:  nullString(e.CardType),
			Minute:    nullInt(e.Minute),
			CreatedAt: e.CreatedAt,
		})
	}
	query, args, err := qb.InsertModels("match_events", models, "")
	if err != nil {
		return fmt.Errorf("build insert match events query: %w", err)
	}

	err = r.db.run("insert match events", func() error {
		_, execErr := r.db.x.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("insert match events: %w", err)
	}
	return nil
}

func (r *EventRepository) list(ctx context.Context, op string, conds ...qb.Condition) ([]matchevent.Event, error) {
	query, args, err := qb.Select(eventSelectColumns...).From("match_events").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []eventTableModel
	err = r.db.run(op, func() error {
		return r.db.x.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchevent.Event{
			ID:        row.ID,
			MatchID:   row.MatchID,
			Type:      row.EventType,
			Scorer:    row.Scorer.String,
			ScorerID:  row.ScorerID.String,
			Assist:    row.Assist.String,
			AssistID:  row.AssistID.String,
			Player:    row.Player.String,
			PlayerID:  row.PlayerID.String,
			CardType:  row.CardType.String,
			Minute:    intPtr(row.Minute),
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func typeConditions(types []string) []qb.Condition {
	if len(types) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(types))
	for _, t := range types {
		normalized = append(normalized, matchevent.NormalizeType(t))
	}
	return []qb.Condition{qb.In("event_type", stringSliceToAny(normalized))}
}
