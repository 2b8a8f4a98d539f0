package matchevent

import "context"

// Repository describes match event log access. Events are never updated in place.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Event, error)
	// ListByMatches filters by type when types is non-empty.
	ListByMatches(ctx context.Context, matchIDs []string, types ...string) ([]Event, error)
	ListByTypes(ctx context.Context, types ...string) ([]Event, error)
	// ListForPlayer returns events whose subject is the player, by id or, for rows
	// without an id, by display name.
	ListForPlayer(ctx context.Context, playerID, displayName string, types ...string) ([]Event, error)
	Append(ctx context.Context, events []Event) error
}
