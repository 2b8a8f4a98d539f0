package memory

import (
	"context"
	"fmt"

	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
)

type TournamentRepository struct {
	db *DB
}

func NewTournamentRepository(db *DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, t := range r.db.tournaments {
		if t.ID == tournamentID {
			return t, true, nil
		}
	}
	return tournament.Tournament{}, false, nil
}

type StandingRepository struct {
	db *DB
}

func NewStandingRepository(db *DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListByTournament(_ context.Context, tournamentID string) ([]tournament.Standing, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]tournament.Standing, 0)
	for _, s := range r.db.standings {
		if s.TournamentID == tournamentID {
			out = append(out, cloneStanding(s))
		}
	}
	tournament.Sort(out)
	return out, nil
}

func (r *StandingRepository) FindOrCreate(_ context.Context, candidate tournament.Standing) (tournament.Standing, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, s := range r.db.standings {
		if s.TournamentID == candidate.TournamentID && s.TeamID == candidate.TeamID && sameGroup(s.GroupName, candidate.GroupName) {
			return cloneStanding(s), nil
		}
	}
	r.db.standings = append(r.db.standings, cloneStanding(candidate))
	return cloneStanding(candidate), nil
}

func (r *StandingRepository) Update(_ context.Context, standing tournament.Standing) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, s := range r.db.standings {
		if s.ID == standing.ID {
			r.db.standings[i] = cloneStanding(standing)
			return nil
		}
	}
	return fmt.Errorf("standing %s not found", standing.ID)
}

func sameGroup(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type PrizeRepository struct {
	db *DB
}

func NewPrizeRepository(db *DB) *PrizeRepository {
	return &PrizeRepository{db: db}
}

func (r *PrizeRepository) ListByTournament(_ context.Context, tournamentID string) ([]tournament.Prize, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]tournament.Prize, 0)
	for _, p := range r.db.prizes {
		if p.TournamentID == tournamentID {
			out = append(out, clonePrize(p))
		}
	}
	return out, nil
}

func (r *PrizeRepository) ReplaceAutomatic(_ context.Context, tournamentID string, prizes []tournament.Prize) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.prizes = r.keep(func(p tournament.Prize) bool {
		return p.TournamentID != tournamentID || p.IsManual()
	})
	for _, p := range prizes {
		r.db.prizes = append(r.db.prizes, clonePrize(p))
	}
	return nil
}

func (r *PrizeRepository) ReplacePlayerOfTournament(_ context.Context, tournamentID string, prize tournament.Prize) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.prizes = r.keep(func(p tournament.Prize) bool {
		return p.TournamentID != tournamentID || p.Category != tournament.CategoryPlayerOfTournament
	})
	r.db.prizes = append(r.db.prizes, clonePrize(prize))
	return nil
}

func (r *PrizeRepository) keep(fn func(tournament.Prize) bool) []tournament.Prize {
	out := make([]tournament.Prize, 0, len(r.db.prizes))
	for _, p := range r.db.prizes {
		if fn(p) {
			out = append(out, p)
		}
	}
	return out
}
