package postgres

import (
	"context"
	"fmt"

	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	qb "github.com/devShamim/match-stats-sub000/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	query, args, err := qb.Select(
		"t.id",
		"t.name",
		"t.captain_id",
		"ARRAY(SELECT tp.player_id FROM team_players tp WHERE tp.team_id = t.id ORDER BY tp.player_id) AS player_ids",
	).From("tournament_teams tt").
		Join("JOIN teams t ON t.id = tt.team_id").
		Where(qb.Eq("tt.tournament_id", tournamentID)).
		OrderBy("tt.registered_at", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournament teams query: %w", err)
	}

	var rows []teamRowModel
	err = r.db.run("select tournament teams", func() error {
		return r.db.x.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select tournament teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:        row.ID,
			Name:      row.Name,
			CaptainID: row.CaptainID.String,
			PlayerIDs: []string(row.PlayerIDs),
		})
	}
	return out, nil
}
