package memory

import (
	"context"

	"github.com/devShamim/match-stats-sub000/internal/domain/team"
)

type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, reg := range r.db.tournamentTeams {
		if reg.TournamentID != tournamentID {
			continue
		}
		for _, t := range r.db.teams {
			if t.ID == reg.TeamID {
				t.PlayerIDs = append([]string(nil), t.PlayerIDs...)
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}
