package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	"github.com/devShamim/match-stats-sub000/internal/platform/id"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
)

const defaultRecomputeWorkers = 4

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"
)

// StatsCacheInvalidator drops derived aggregates after stat rows change.
type StatsCacheInvalidator interface {
	InvalidateStats(ctx context.Context)
}

type MatchStatsService struct {
	matchRepo      match.Repository
	rosterRepo     roster.Repository
	eventRepo      matchevent.Repository
	statRepo       matchstat.Repository
	tournamentRepo tournament.Repository
	idGen          id.Generator
	logger         *logging.Logger
	invalidator    StatsCacheInvalidator
	maxWorkers     int
	now            func() time.Time
}

type MatchStatsDeps struct {
	Matches     match.Repository
	Rosters     roster.Repository
	Events      matchevent.Repository
	Stats       matchstat.Repository
	Tournaments tournament.Repository
	IDs         id.Generator
	Logger      *logging.Logger
	Invalidator StatsCacheInvalidator
	MaxWorkers  int
}

func NewMatchStatsService(deps MatchStatsDeps) *MatchStatsService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	idGen := deps.IDs
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	maxWorkers := deps.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultRecomputeWorkers
	}

	return &MatchStatsService{
		matchRepo:      deps.Matches,
		rosterRepo:     deps.Rosters,
		eventRepo:      deps.Events,
		statRepo:       deps.Stats,
		tournamentRepo: deps.Tournaments,
		idGen:          idGen,
		logger:         logger,
		invalidator:    deps.Invalidator,
		maxWorkers:     maxWorkers,
		now:            time.Now,
	}
}

// RecomputeResult describes one match recompute.
type RecomputeResult struct {
	MatchID string
	Rows    []matchstat.Row
	Dropped int
}

// RecomputeMatchStats replays the match event log into stat rows. Reruns over unchanged
// events write identical rows.
func (s *MatchStatsService) RecomputeMatchStats(ctx context.Context, matchID string) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatsService.RecomputeMatchStats")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return RecomputeResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return RecomputeResult{}, err
	}

	result, err := s.recompute(ctx, matchID)
	if err != nil {
		return RecomputeResult{}, err
	}
	s.invalidate(ctx)
	return result, nil
}

func (s *MatchStatsService) recompute(ctx context.Context, matchID string) (RecomputeResult, error) {
	members, err := s.rosterRepo.ListMembersByMatch(ctx, matchID)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list match roster: %w", err)
	}
	events, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list match events: %w", err)
	}

	counters, drops := matchstat.Fold(events, roster.NewNameIndex(members))
	for _, d := range drops {
		s.logger.WarnContext(ctx, "match event reference dropped",
			"match_id", matchID,
			"event_id", d.EventID,
			"role", d.Role,
			"error", d.Err,
		)
	}

	rows := matchstat.RowsForRoster(members, counters)
	if len(rows) > 0 {
		if err := s.statRepo.UpsertCounters(ctx, rows); err != nil {
			return RecomputeResult{}, fmt.Errorf("upsert match stats: %w", err)
		}
	}

	return RecomputeResult{MatchID: matchID, Rows: rows, Dropped: len(drops)}, nil
}

// RecordEvents validates events, resolves every player reference to an id against the
// match roster, appends them to the log, then recomputes the match stat rows.
func (s *MatchStatsService) RecordEvents(ctx context.Context, matchID string, inputs []matchevent.Event) ([]matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatsService.RecordEvents")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one event is required", ErrInvalidInput)
	}
	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	members, err := s.rosterRepo.ListMembersByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match roster: %w", err)
	}
	index := roster.NewNameIndex(members)
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.Entry.PlayerID] = m.Player.DisplayName
	}

	now := s.now().UTC()
	events := make([]matchevent.Event, 0, len(inputs))
	for i, in := range inputs {
		e := in
		e.MatchID = matchID
		e.Type = matchevent.NormalizeType(e.Type)
		e.CardType = matchevent.NormalizeCardType(e.CardType)
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", ErrInvalidInput, i, err)
		}

		switch e.Type {
		case matchevent.TypeGoal, matchevent.TypeOwnGoal:
			playerID, err := index.ResolveRef(e.ScorerID, e.Scorer)
			if err != nil {
				return nil, fmt.Errorf("%w: event %d scorer: %v", ErrInvalidInput, i, err)
			}
			e.ScorerID, e.Scorer = playerID, names[playerID]
			if e.Type == matchevent.TypeGoal && e.HasAssist() {
				assistID, err := index.ResolveRef(e.AssistID, e.Assist)
				if err != nil {
					return nil, fmt.Errorf("%w: event %d assist: %v", ErrInvalidInput, i, err)
				}
				if assistID == playerID {
					return nil, fmt.Errorf("%w: event %d: scorer cannot assist own goal", ErrInvalidInput, i)
				}
				e.AssistID, e.Assist = assistID, names[assistID]
			} else {
				e.AssistID, e.Assist = "", ""
			}
		default:
			playerID, err := index.ResolveRef(e.PlayerID, e.Player)
			if err != nil {
				return nil, fmt.Errorf("%w: event %d player: %v", ErrInvalidInput, i, err)
			}
			e.PlayerID, e.Player = playerID, names[playerID]
		}

		eventID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate event id: %w", err)
		}
		e.ID = eventID
		e.CreatedAt = now
		events = append(events, e)
	}

	if err := s.eventRepo.Append(ctx, events); err != nil {
		return nil, fmt.Errorf("append match events: %w", err)
	}
	if _, err := s.recompute(ctx, matchID); err != nil {
		return nil, fmt.Errorf("recompute after append: %w", err)
	}
	s.invalidate(ctx)

	return events, nil
}

func (s *MatchStatsService) ListEvents(ctx context.Context, matchID string) ([]matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatsService.ListEvents")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	return events, nil
}

// SetPlayerRating stores a manual rating on the player's stat row for the match.
// A nil rating clears it.
func (s *MatchStatsService) SetPlayerRating(ctx context.Context, matchID, playerID string, rating *float64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatsService.SetPlayerRating")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if rating != nil && !matchstat.ValidRating(*rating) {
		return fmt.Errorf("%w: rating must be between 0 and 10", ErrInvalidInput)
	}
	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return err
	}

	members, err := s.rosterRepo.ListMembersByMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("list match roster: %w", err)
	}
	entryID, ok := roster.NewNameIndex(members).EntryID(playerID)
	if !ok {
		return fmt.Errorf("%w: player=%s is not on match=%s roster", ErrNotFound, playerID, matchID)
	}

	if err := s.statRepo.SetRating(ctx, entryID, rating); err != nil {
		return fmt.Errorf("set player rating: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// TournamentRecompute reports a batch recompute over a tournament's completed matches.
type TournamentRecompute struct {
	TournamentID string
	WorkerCount  int
	SuccessCount int
	FailedCount  int
	Matches      []MatchRecomputeStatus
}

type MatchRecomputeStatus struct {
	MatchID    string
	Status     string
	Rows       int
	Dropped    int
	Message    string
	DurationMs int64
}

// RecomputeTournamentStats recomputes every completed match of a tournament on a bounded
// worker pool. A failed match does not stop the others.
func (s *MatchStatsService) RecomputeTournamentStats(ctx context.Context, tournamentID string) (TournamentRecompute, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatsService.RecomputeTournamentStats")
	defer span.End()

	t, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return TournamentRecompute{}, err
	}
	tournamentID = t.ID

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return TournamentRecompute{}, fmt.Errorf("list tournament matches: %w", err)
	}
	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.IsCompleted() {
			matchIDs = append(matchIDs, m.ID)
		}
	}

	result := TournamentRecompute{
		TournamentID: tournamentID,
		Matches:      make([]MatchRecomputeStatus, 0, len(matchIDs)),
	}
	if len(matchIDs) == 0 {
		return result, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(matchIDs) {
		workerCount = len(matchIDs)
	}
	result.WorkerCount = workerCount

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return TournamentRecompute{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	statuses := make(chan MatchRecomputeStatus, len(matchIDs))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, matchID := range matchIDs {
		matchID := matchID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := MatchRecomputeStatus{MatchID: matchID}
			recomputed, err := s.recompute(ctx, matchID)
			if err != nil {
				failedCount.Add(1)
				row.Status = recomputeStatusFailed
				row.Message = err.Error()
				s.logger.WarnContext(ctx, "recompute match stats failed", "tournament_id", tournamentID, "match_id", matchID, "error", err)
			} else {
				successCount.Add(1)
				row.Status = recomputeStatusSuccess
				row.Rows = len(recomputed.Rows)
				row.Dropped = recomputed.Dropped
			}
			row.DurationMs = time.Since(start).Milliseconds()
			statuses <- row
		}); err != nil {
			workers.Done()
			return TournamentRecompute{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(statuses)

	for row := range statuses {
		result.Matches = append(result.Matches, row)
	}
	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].MatchID < result.Matches[j].MatchID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	if result.SuccessCount > 0 {
		s.invalidate(ctx)
	}
	return result, nil
}

func (s *MatchStatsService) requireMatch(ctx context.Context, matchID string) (match.Match, error) {
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchStatsService) invalidate(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.InvalidateStats(ctx)
	}
}
