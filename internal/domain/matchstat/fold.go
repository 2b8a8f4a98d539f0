package matchstat

import (
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
)

// Counters are the event-derived part of a Row.
type Counters struct {
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	OwnGoals    int
}

// Drop describes an event reference that could not be attributed.
type Drop struct {
	EventID string
	Role    string
	Err     error
}

// Fold replays a match event log into counters per player id. References that do not
// resolve against the roster are reported in drops and otherwise ignored. Saves and
// clean sheets are not folded; they are read from the log directly.
func Fold(events []matchevent.Event, index *roster.NameIndex) (map[string]*Counters, []Drop) {
	out := make(map[string]*Counters)
	var drops []Drop

	touch := func(playerID string) *Counters {
		c, ok := out[playerID]
		if !ok {
			c = &Counters{}
			out[playerID] = c
		}
		return c
	}
	resolve := func(e matchevent.Event, role, playerID, name string) (string, bool) {
		resolved, err := index.ResolveRef(playerID, name)
		if err != nil {
			drops = append(drops, Drop{EventID: e.ID, Role: role, Err: err})
			return "", false
		}
		return resolved, true
	}

	for _, e := range events {
		switch matchevent.NormalizeType(e.Type) {
		case matchevent.TypeGoal:
			if id, ok := resolve(e, "scorer", e.ScorerID, e.Scorer); ok {
				touch(id).Goals++
			}
			if e.HasAssist() {
				if id, ok := resolve(e, "assist", e.AssistID, e.Assist); ok {
					touch(id).Assists++
				}
			}
		case matchevent.TypeOwnGoal:
			if id, ok := resolve(e, "scorer", e.ScorerID, e.Scorer); ok {
				touch(id).OwnGoals++
			}
		case matchevent.TypeCard:
			id, ok := resolve(e, "player", e.PlayerID, e.Player)
			if !ok {
				continue
			}
			switch matchevent.NormalizeCardType(e.CardType) {
			case matchevent.CardYellow:
				touch(id).YellowCards++
			case matchevent.CardRed:
				touch(id).RedCards++
			}
		}
	}

	return out, drops
}

// RowsForRoster turns folded counters into one Row per roster member, in roster order.
// Members without events get zero counters so stale counts are cleared on rerun.
func RowsForRoster(members []roster.Member, counters map[string]*Counters) []Row {
	rows := make([]Row, 0, len(members))
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, dup := seen[m.Entry.ID]; dup || m.Entry.ID == "" {
			continue
		}
		seen[m.Entry.ID] = struct{}{}

		minutes := DefaultMinutes
		row := Row{RosterEntryID: m.Entry.ID, MinutesPlayed: &minutes}
		if c, ok := counters[m.Entry.PlayerID]; ok {
			row.Goals = c.Goals
			row.Assists = c.Assists
			row.YellowCards = c.YellowCards
			row.RedCards = c.RedCards
			row.OwnGoals = c.OwnGoals
		}
		rows = append(rows, row)
	}
	return rows
}
