package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// ListByTournament returns the teams registered to a tournament.
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
}
