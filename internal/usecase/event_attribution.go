package usecase

import (
	"context"
	"fmt"

	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
)

// attributedEvent is an event with its subject resolved to a player id.
type attributedEvent struct {
	matchevent.Event
	SubjectID string
}

// attributeEvents resolves event subjects to player ids. Events that already carry an id
// are used as is; older name-only rows are resolved against their own match roster.
// Unresolvable rows are logged and dropped.
func attributeEvents(
	ctx context.Context,
	rosterRepo roster.Repository,
	logger *logging.Logger,
	events []matchevent.Event,
) ([]attributedEvent, error) {
	out := make([]attributedEvent, 0, len(events))
	var pendingMatches []string
	pendingSeen := make(map[string]struct{})
	for _, e := range events {
		if id, _ := e.Subject(); id != "" {
			continue
		}
		if _, ok := pendingSeen[e.MatchID]; ok {
			continue
		}
		pendingSeen[e.MatchID] = struct{}{}
		pendingMatches = append(pendingMatches, e.MatchID)
	}

	indexes := make(map[string]*roster.NameIndex, len(pendingMatches))
	if len(pendingMatches) > 0 {
		members, err := rosterRepo.ListMembersByMatches(ctx, pendingMatches)
		if err != nil {
			return nil, fmt.Errorf("list rosters for event attribution: %w", err)
		}
		byMatch := make(map[string][]roster.Member, len(pendingMatches))
		for _, m := range members {
			byMatch[m.Entry.MatchID] = append(byMatch[m.Entry.MatchID], m)
		}
		for _, matchID := range pendingMatches {
			indexes[matchID] = roster.NewNameIndex(byMatch[matchID])
		}
	}

	for _, e := range events {
		subjectID, name := e.Subject()
		if subjectID == "" {
			resolved, err := indexes[e.MatchID].Resolve(name)
			if err != nil {
				logger.WarnContext(ctx, "event subject not attributable",
					"match_id", e.MatchID,
					"event_id", e.ID,
					"event_type", e.Type,
					"error", err,
				)
				continue
			}
			subjectID = resolved
		}
		out = append(out, attributedEvent{Event: e, SubjectID: subjectID})
	}
	return out, nil
}

// countEvents groups save and clean-sheet counts by player id, then match id.
func countEvents(events []attributedEvent) map[string]map[string]eventTally {
	out := make(map[string]map[string]eventTally)
	for _, e := range events {
		byMatch, ok := out[e.SubjectID]
		if !ok {
			byMatch = make(map[string]eventTally)
			out[e.SubjectID] = byMatch
		}
		tally := byMatch[e.MatchID]
		switch matchevent.NormalizeType(e.Type) {
		case matchevent.TypeSave:
			tally.Saves++
		case matchevent.TypeCleanSheet:
			tally.CleanSheets++
		}
		byMatch[e.MatchID] = tally
	}
	return out
}

type eventTally struct {
	Saves       int
	CleanSheets int
}

func sumTallies(byMatch map[string]eventTally) eventTally {
	var total eventTally
	for _, t := range byMatch {
		total.Saves += t.Saves
		total.CleanSheets += t.CleanSheets
	}
	return total
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
