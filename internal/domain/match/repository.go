package match

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// ErrAlreadyExists is returned by CreateWithTeams when the match id is taken.
var ErrAlreadyExists = crerr.New("match already exists")

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByIDs(ctx context.Context, matchIDs []string) ([]Match, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	// ListRecent returns completed matches, newest first.
	ListRecent(ctx context.Context, limit int) ([]Match, error)
	// ListUpcoming returns scheduled matches dated at or after from, soonest first.
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]Match, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	// CreateWithTeams inserts a match and its per-match side records atomically.
	CreateWithTeams(ctx context.Context, m Match, teams []Team) error
}
