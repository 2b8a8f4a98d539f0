package postgres

import (
	"context"
	"fmt"

	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	qb "github.com/devShamim/match-stats-sub000/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *DB
}

var memberSelectColumns = []string{
	"mp.id",
	"mp.match_id",
	"mp.player_id",
	"mp.team_id",
	"mp.position AS entry_position",
	"p.display_name",
	"p.position AS player_position",
	"p.jersey_number",
	"p.photo_url",
	"COALESCE(mt.name, '') AS team_name",
}

func NewRosterRepository(db *DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListMembersByMatch(ctx context.Context, matchID string) ([]roster.Member, error) {
	return r.list(ctx, "select match roster", qb.Eq("mp.match_id", matchID))
}

func (r *RosterRepository) ListMembersByMatches(ctx context.Context, matchIDs []string) ([]roster.Member, error) {
	if len(matchIDs) == 0 {
		return []roster.Member{}, nil
	}
	return r.list(ctx, "select match rosters", qb.In("mp.match_id", stringSliceToAny(matchIDs)))
}

func (r *RosterRepository) ListMembersByPlayer(ctx context.Context, playerID string) ([]roster.Member, error) {
	return r.list(ctx, "select player roster entries", qb.Eq("mp.player_id", playerID))
}

func (r *RosterRepository) ListMembersByIDs(ctx context.Context, entryIDs []string) ([]roster.Member, error) {
	if len(entryIDs) == 0 {
		return []roster.Member{}, nil
	}
	return r.list(ctx, "select roster entries", qb.In("mp.id", stringSliceToAny(entryIDs)))
}

// list inner-joins players, so entries whose player was removed never surface.
func (r *RosterRepository) list(ctx context.Context, op string, cond qb.Condition) ([]roster.Member, error) {
	query, args, err := qb.Select(memberSelectColumns...).From("match_players mp").
		Join("JOIN players p ON p.id = mp.player_id").
		Join("LEFT JOIN match_teams mt ON mt.id = mp.team_id").
		Where(cond).
		OrderBy("mp.match_id", "mp.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []memberRowModel
	err = r.db.run(op, func() error {
		return r.db.x.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]roster.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Member{
			Entry: roster.Entry{
				ID:       row.ID,
				MatchID:  row.MatchID,
				PlayerID: row.PlayerID,
				TeamID:   row.TeamID.String,
				Position: row.EntryPosition.String,
			},
			Player: player.Player{
				ID:           row.PlayerID,
				DisplayName:  row.DisplayName,
				Position:     row.PlayerPosition.String,
				JerseyNumber: int(row.JerseyNumber.Int64),
				PhotoURL:     row.PhotoURL.String,
			},
			TeamName: row.TeamName,
		})
	}
	return out, nil
}
