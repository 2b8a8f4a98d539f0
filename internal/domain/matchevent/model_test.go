package matchevent

import "testing"

func TestEventValidate(t *testing.T) {
	t.Parallel()

	minute := -1
	tests := []struct {
		name    string
		event   Event
		wantErr bool
	}{
		{name: "goal by name", event: Event{MatchID: "m1", Type: TypeGoal, Scorer: "Alice"}},
		{name: "goal by id", event: Event{MatchID: "m1", Type: " GOAL ", ScorerID: "p1"}},
		{name: "goal without scorer", event: Event{MatchID: "m1", Type: TypeGoal, Assist: "Bob"}, wantErr: true},
		{name: "card", event: Event{MatchID: "m1", Type: TypeCard, Player: "Bob", CardType: "Yellow"}},
		{name: "card bad type", event: Event{MatchID: "m1", Type: TypeCard, Player: "Bob", CardType: "green"}, wantErr: true},
		{name: "save", event: Event{MatchID: "m1", Type: TypeSave, PlayerID: "p9"}},
		{name: "clean sheet without player", event: Event{MatchID: "m1", Type: TypeCleanSheet}, wantErr: true},
		{name: "unknown type", event: Event{MatchID: "m1", Type: "penalty", Player: "Bob"}, wantErr: true},
		{name: "missing match", event: Event{Type: TypeGoal, Scorer: "Alice"}, wantErr: true},
		{name: "negative minute", event: Event{MatchID: "m1", Type: TypeSave, Player: "Bob", Minute: &minute}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.event.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEventSubjectAndResolution(t *testing.T) {
	t.Parallel()

	goal := Event{Type: TypeGoal, Scorer: "Alice", ScorerID: "p1", Assist: "Bob"}
	if id, name := goal.Subject(); id != "p1" || name != "Alice" {
		t.Fatalf("unexpected goal subject: %s %s", id, name)
	}
	if goal.IsResolved() {
		t.Fatalf("goal with unresolved assist must not be resolved")
	}
	goal.AssistID = "p2"
	if !goal.IsResolved() {
		t.Fatalf("expected resolved goal")
	}

	save := Event{Type: TypeSave, Player: "Gina"}
	if id, name := save.Subject(); id != "" || name != "Gina" {
		t.Fatalf("unexpected save subject: %s %s", id, name)
	}
	if save.IsResolved() {
		t.Fatalf("save without id must not be resolved")
	}
}
