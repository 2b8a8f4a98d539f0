package memory

import (
	"context"

	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
)

type RosterRepository struct {
	db *DB
}

func NewRosterRepository(db *DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListMembersByMatch(ctx context.Context, matchID string) ([]roster.Member, error) {
	return r.ListMembersByMatches(ctx, []string{matchID})
}

func (r *RosterRepository) ListMembersByMatches(_ context.Context, matchIDs []string) ([]roster.Member, error) {
	wanted := stringSet(matchIDs)
	return r.collect(func(e roster.Entry) bool {
		_, ok := wanted[e.MatchID]
		return ok
	}), nil
}

func (r *RosterRepository) ListMembersByPlayer(_ context.Context, playerID string) ([]roster.Member, error) {
	return r.collect(func(e roster.Entry) bool { return e.PlayerID == playerID }), nil
}

func (r *RosterRepository) ListMembersByIDs(_ context.Context, entryIDs []string) ([]roster.Member, error) {
	wanted := stringSet(entryIDs)
	return r.collect(func(e roster.Entry) bool {
		_, ok := wanted[e.ID]
		return ok
	}), nil
}

func (r *RosterRepository) collect(keep func(roster.Entry) bool) []roster.Member {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]roster.Member, 0)
	for _, e := range r.db.roster {
		if !keep(e) {
			continue
		}
		if m, ok := r.db.member(e); ok {
			out = append(out, m)
		}
	}
	return out
}
