package querybuilder

import "testing"

func TestSelectBuilderWithJoin(t *testing.T) {
	query, args, err := Select("s.match_player_id", "mp.player_id").
		From("stats s").
		Join("JOIN match_players mp ON mp.id = s.match_player_id").
		Where(Eq("mp.match_id", "m1"), Eq("mp.team_id", "t1")).
		OrderBy("mp.id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT s.match_player_id, mp.player_id FROM stats s JOIN match_players mp ON mp.id = s.match_player_id WHERE mp.match_id = $1 AND mp.team_id = $2 ORDER BY mp.id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "m1" || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderInAndExpr(t *testing.T) {
	query, args, err := Select("id").
		From("match_events").
		Where(
			In("match_id", []any{"m1", "m2"}),
			Expr("(player_id = ? OR (player_id IS NULL AND player = ?))", "p1", "Alice"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM match_events WHERE match_id IN ($1, $2) AND (player_id = $3 OR (player_id IS NULL AND player = $4))"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "Alice" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("stats").
		Columns("match_player_id", "goals").
		Values("mp1", 2).
		Suffix("ON CONFLICT (match_player_id) DO UPDATE SET goals = EXCLUDED.goals").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO stats (match_player_id, goals) VALUES ($1, $2) ON CONFLICT (match_player_id) DO UPDATE SET goals = EXCLUDED.goals"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "mp1" || args[1] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		ID       string `db:"id"`
		Category string `db:"category"`
		Skip     string `db:"-"`
	}

	query, args, err := InsertModels("tournament_prizes", []row{
		{ID: "a", Category: "top_goals"},
		{ID: "b", Category: "top_goals"},
	}, "")
	if err != nil {
		t.Fatalf("build insert models: %v", err)
	}

	wantQuery := "INSERT INTO tournament_prizes (id, category) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "b" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[row]("tournament_prizes", nil, ""); err == nil {
		t.Fatalf("expected error for empty models")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("tournament_standings").
		Set("points", 9).
		Set("wins", 3).
		Where(Eq("id", "s1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE tournament_standings SET points = $1, wins = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 9 || args[1] != 3 || args[2] != "s1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("tournament_prizes").
		Where(Eq("tournament_id", "t1"), Expr("NOT (category = ? AND description LIKE ?)", "player_of_tournament", "%Manual Selection%")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM tournament_prizes WHERE tournament_id = $1 AND NOT (category = $2 AND description LIKE $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("tournament_prizes").ToSQL(); err == nil {
		t.Fatalf("expected error for unscoped delete")
	}
}
