package matchstat

import "context"

// Repository describes stat row persistence.
type Repository interface {
	ListByRosterEntries(ctx context.Context, rosterEntryIDs []string) ([]Row, error)
	ListAll(ctx context.Context) ([]Row, error)
	// UpsertCounters writes event counters keyed by roster entry in one transaction.
	// Existing minutes and ratings are kept; a new row gets the row's minutes.
	UpsertCounters(ctx context.Context, rows []Row) error
	// SetRating creates the row with default counters when it does not exist.
	SetRating(ctx context.Context, rosterEntryID string, rating *float64) error
}
