package tournament

import "context"

type Repository interface {
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
}

// StandingRepository stores standings rows. Rows are located by key and updated in place;
// they are never blindly inserted.
type StandingRepository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Standing, error)
	// FindOrCreate returns the row for the candidate's key, inserting the candidate
	// (with its ID) when none exists.
	FindOrCreate(ctx context.Context, candidate Standing) (Standing, error)
	Update(ctx context.Context, standing Standing) error
}

type PrizeRepository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Prize, error)
	// ReplaceAutomatic deletes every row except manual player-of-tournament rows and
	// inserts prizes, in one transaction.
	ReplaceAutomatic(ctx context.Context, tournamentID string, prizes []Prize) error
	// ReplacePlayerOfTournament deletes all player-of-tournament rows and inserts prize.
	ReplacePlayerOfTournament(ctx context.Context, tournamentID string, prize Prize) error
}
