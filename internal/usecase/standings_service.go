package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	"github.com/devShamim/match-stats-sub000/internal/platform/id"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
)

const (
	StandingsStatusUpdated             = "updated"
	StandingsStatusNoCompletedMatches  = "no_completed_matches"
	standingsNoCompletedMatchesMessage = "no completed matches"
)

type StandingsService struct {
	tournamentRepo tournament.Repository
	standingRepo   tournament.StandingRepository
	matchRepo      match.Repository
	teamRepo       team.Repository
	idGen          id.Generator
	logger         *logging.Logger
	invalidator    StatsCacheInvalidator
	now            func() time.Time
}

type StandingsDeps struct {
	Tournaments tournament.Repository
	Standings   tournament.StandingRepository
	Matches     match.Repository
	Teams       team.Repository
	IDs         id.Generator
	Logger      *logging.Logger
	Invalidator StatsCacheInvalidator
}

func NewStandingsService(deps StandingsDeps) *StandingsService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	idGen := deps.IDs
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}

	return &StandingsService{
		tournamentRepo: deps.Tournaments,
		standingRepo:   deps.Standings,
		matchRepo:      deps.Matches,
		teamRepo:       deps.Teams,
		idGen:          idGen,
		logger:         logger,
		invalidator:    deps.Invalidator,
		now:            time.Now,
	}
}

// StandingsResult reports one recalculation.
type StandingsResult struct {
	TournamentID   string
	Status         string
	Message        string
	Standings      []tournament.Standing
	SkippedMatches []string
	FinalMatch     *match.Match
}

// RecalculateStandings replays completed matches into the standings table and schedules
// the final once the group stage is complete. Without completed matches the stored
// standings are left untouched.
func (s *StandingsService) RecalculateStandings(ctx context.Context, tournamentID string) (StandingsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecalculateStandings")
	defer span.End()

	t, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return StandingsResult{}, err
	}

	matches, err := s.matchRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return StandingsResult{}, fmt.Errorf("list tournament matches: %w", err)
	}
	completed := 0
	for _, m := range matches {
		if m.IsCompleted() {
			completed++
		}
	}
	if completed == 0 {
		return StandingsResult{
			TournamentID: t.ID,
			Status:       StandingsStatusNoCompletedMatches,
			Message:      standingsNoCompletedMatchesMessage,
		}, nil
	}

	teams, err := s.teamRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return StandingsResult{}, fmt.Errorf("list tournament teams: %w", err)
	}

	table := tournament.BuildTable(t.ID, teams, matches, t.Weights())
	result := StandingsResult{TournamentID: t.ID, Status: StandingsStatusUpdated}
	for _, m := range table.Skipped {
		s.logger.WarnContext(ctx, "match skipped in standings, team name not registered",
			"tournament_id", t.ID,
			"match_id", m.ID,
			"team_a", m.TeamAName,
			"team_b", m.TeamBName,
		)
		result.SkippedMatches = append(result.SkippedMatches, m.ID)
	}

	now := s.now().UTC()
	for i := range table.Rows {
		candidateID, err := s.idGen.NewID()
		if err != nil {
			return StandingsResult{}, fmt.Errorf("generate standing id: %w", err)
		}
		candidate := tournament.Standing{ID: candidateID, TournamentID: t.ID, TeamID: table.Rows[i].TeamID, UpdatedAt: now}
		stored, err := s.standingRepo.FindOrCreate(ctx, candidate)
		if err != nil {
			return StandingsResult{}, fmt.Errorf("find or create standing team=%s: %w", candidate.TeamID, err)
		}

		table.Rows[i].ID = stored.ID
		table.Rows[i].GroupName = stored.GroupName
		table.Rows[i].UpdatedAt = now
		if err := s.standingRepo.Update(ctx, table.Rows[i]); err != nil {
			return StandingsResult{}, fmt.Errorf("update standing team=%s: %w", candidate.TeamID, err)
		}
	}
	result.Standings = tournament.Sorted(table.Rows)

	final, ok := tournament.PlanFinal(t, matches, table.Rows, teams)
	if ok {
		created, err := s.createFinal(ctx, final)
		if err != nil {
			return StandingsResult{}, err
		}
		s.logger.InfoContext(ctx, "final scheduled",
			"tournament_id", t.ID,
			"match_id", created.ID,
			"team_a", created.TeamAName,
			"team_b", created.TeamBName,
		)
		result.FinalMatch = &created
		if s.invalidator != nil {
			s.invalidator.InvalidateStats(ctx)
		}
	}

	return result, nil
}

func (s *StandingsService) createFinal(ctx context.Context, final match.Match) (match.Match, error) {
	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate final match id: %w", err)
	}
	final.ID = matchID

	sides := make([]match.Team, 0, 2)
	for _, name := range []string{final.TeamAName, final.TeamBName} {
		sideID, err := s.idGen.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate final side id: %w", err)
		}
		sides = append(sides, match.Team{ID: sideID, MatchID: matchID, Name: name})
	}

	if err := s.matchRepo.CreateWithTeams(ctx, final, sides); err != nil {
		if errors.Is(err, match.ErrAlreadyExists) {
			return match.Match{}, fmt.Errorf("%w: final match %s: %v", ErrConflict, matchID, err)
		}
		return match.Match{}, fmt.Errorf("create final match: %w", err)
	}
	return final, nil
}

// ListStandings returns stored standings in display order.
func (s *StandingsService) ListStandings(ctx context.Context, tournamentID string) ([]tournament.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListStandings")
	defer span.End()

	t, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.standingRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	return tournament.Sorted(rows), nil
}

func requireTournament(ctx context.Context, repo tournament.Repository, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, exists, err := repo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return t, nil
}
