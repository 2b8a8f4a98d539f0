package roster

import "context"

// Repository describes match roster access.
type Repository interface {
	ListMembersByMatch(ctx context.Context, matchID string) ([]Member, error)
	ListMembersByMatches(ctx context.Context, matchIDs []string) ([]Member, error)
	ListMembersByPlayer(ctx context.Context, playerID string) ([]Member, error)
	// ListMembersByIDs skips entries whose player no longer exists.
	ListMembersByIDs(ctx context.Context, entryIDs []string) ([]Member, error)
}
