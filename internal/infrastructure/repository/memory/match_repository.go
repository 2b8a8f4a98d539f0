package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
)

type MatchRepository struct {
	db *DB
}

func NewMatchRepository(db *DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, m := range r.db.matches {
		if m.ID == matchID {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) ListByIDs(_ context.Context, matchIDs []string) ([]match.Match, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	wanted := stringSet(matchIDs)
	out := make([]match.Match, 0, len(matchIDs))
	for _, m := range r.db.matches {
		if _, ok := wanted[m.ID]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.db.matches {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (r *MatchRepository) ListRecent(_ context.Context, limit int) ([]match.Match, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.db.matches {
		if m.IsCompleted() {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return truncateMatches(out, limit), nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context, from time.Time, limit int) ([]match.Match, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.db.matches {
		if match.NormalizeStatus(m.Status) == match.StatusScheduled && !m.Date.Before(from) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return truncateMatches(out, limit), nil
}

func (r *MatchRepository) CountByStatus(_ context.Context, status string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	status = match.NormalizeStatus(status)
	count := 0
	for _, m := range r.db.matches {
		if match.NormalizeStatus(m.Status) == status {
			count++
		}
	}
	return count, nil
}

func (r *MatchRepository) CreateWithTeams(_ context.Context, m match.Match, teams []match.Team) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.matches {
		if existing.ID == m.ID {
			return fmt.Errorf("%w: %s", match.ErrAlreadyExists, m.ID)
		}
	}
	r.db.matches = append(r.db.matches, m)
	for _, t := range teams {
		t.MatchID = m.ID
		r.db.matchTeams = append(r.db.matchTeams, t)
	}
	return nil
}

func truncateMatches(items []match.Match, limit int) []match.Match {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
