package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qb "github.com/devShamim/match-stats-sub000/internal/platform/querybuilder"
)

func TestPlayerEventQueryPlaceholders(t *testing.T) {
	conds := append(typeConditions([]string{" SAVE ", "clean_sheet"}), qb.Expr(eventSubjectCondition, "p1", "Alice", "p1", "Alice"))
	query, args, err := qb.Select(eventSelectColumns...).From("match_events").Where(conds...).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, query, "event_type IN ($1, $2)")
	assert.Contains(t, query, "scorer_id = $3 OR (scorer_id IS NULL AND scorer = $4)")
	assert.Contains(t, query, "player_id = $5 OR (player_id IS NULL AND player = $6)")
	assert.Equal(t, []any{"save", "clean_sheet", "p1", "Alice", "p1", "Alice"}, args)
}

func TestTypeConditionsEmpty(t *testing.T) {
	assert.Nil(t, typeConditions(nil))
}
