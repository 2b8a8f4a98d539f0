package memory

import (
	"context"

	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
)

type StatRepository struct {
	db *DB
}

func NewStatRepository(db *DB) *StatRepository {
	return &StatRepository{db: db}
}

func (r *StatRepository) ListByRosterEntries(_ context.Context, rosterEntryIDs []string) ([]matchstat.Row, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]matchstat.Row, 0, len(rosterEntryIDs))
	for _, id := range rosterEntryIDs {
		row, ok := r.db.stats[id]
		if !ok {
			continue
		}
		out = append(out, cloneRow(row))
	}
	return out, nil
}

func (r *StatRepository) ListAll(_ context.Context) ([]matchstat.Row, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]matchstat.Row, 0, len(r.db.statOrder))
	for _, id := range r.db.statOrder {
		out = append(out, cloneRow(r.db.stats[id]))
	}
	return out, nil
}

func (r *StatRepository) UpsertCounters(_ context.Context, rows []matchstat.Row) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, row := range rows {
		existing, ok := r.db.stats[row.RosterEntryID]
		if ok {
			row.MinutesPlayed = existing.MinutesPlayed
			row.Rating = existing.Rating
		}
		r.db.putStat(row)
	}
	return nil
}

func (r *StatRepository) SetRating(_ context.Context, rosterEntryID string, rating *float64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	row, ok := r.db.stats[rosterEntryID]
	if !ok {
		minutes := matchstat.DefaultMinutes
		row = matchstat.Row{RosterEntryID: rosterEntryID, MinutesPlayed: &minutes}
	}
	row.Rating = rating
	r.db.putStat(row)
	return nil
}
