package memory

import (
	"context"
	"strings"

	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
)

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByMatch(_ context.Context, matchID string) ([]matchevent.Event, error) {
	return r.collect(func(e matchevent.Event) bool { return e.MatchID == matchID }), nil
}

func (r *EventRepository) ListByMatches(_ context.Context, matchIDs []string, types ...string) ([]matchevent.Event, error) {
	wanted := stringSet(matchIDs)
	typeOK := typeFilter(types)
	return r.collect(func(e matchevent.Event) bool {
		_, ok := wanted[e.MatchID]
		return ok && typeOK(e)
	}), nil
}

func (r *EventRepository) ListByTypes(_ context.Context, types ...string) ([]matchevent.Event, error) {
	return r.collect(typeFilter(types)), nil
}

func (r *EventRepository) ListForPlayer(_ context.Context, playerID, displayName string, types ...string) ([]matchevent.Event, error) {
	typeOK := typeFilter(types)
	displayName = strings.TrimSpace(displayName)
	return r.collect(func(e matchevent.Event) bool {
		if !typeOK(e) {
			return false
		}
		id, name := e.Subject()
		if strings.TrimSpace(id) != "" {
			return id == playerID
		}
		return displayName != "" && strings.TrimSpace(name) == displayName
	}), nil
}

func (r *EventRepository) Append(_ context.Context, events []matchevent.Event) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.events = append(r.db.events, events...)
	return nil
}

func (r *EventRepository) collect(keep func(matchevent.Event) bool) []matchevent.Event {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]matchevent.Event, 0)
	for _, e := range r.db.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func typeFilter(types []string) func(matchevent.Event) bool {
	if len(types) == 0 {
		return func(matchevent.Event) bool { return true }
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[matchevent.NormalizeType(t)] = struct{}{}
	}
	return func(e matchevent.Event) bool {
		_, ok := set[matchevent.NormalizeType(e.Type)]
		return ok
	}
}
