package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/scoring"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	"github.com/devShamim/match-stats-sub000/internal/domain/tournament"
	"github.com/devShamim/match-stats-sub000/internal/platform/id"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
)

const (
	minMatchesForPlayerOfTournament = 2
	manualPlayerOfTournamentLabel   = "Player of the Tournament (" + tournament.ManualSelectionMarker + ")"
)

var teamRankLabels = []string{"Champion", "Runner-up", "Third Place"}

// PlayerScore is one player's tournament line with the unified score.
type PlayerScore struct {
	PlayerID      string
	DisplayName   string
	Position      string
	TeamID        string
	Matches       int
	Goals         int
	Assists       int
	OwnGoals      int
	Saves         int
	CleanSheets   int
	RatedMatches  int
	AverageRating float64
	IsDefender    bool
	Score         float64
}

func (p PlayerScore) Contributions() int { return p.Goals + p.Assists }

type PrizeService struct {
	tournamentRepo tournament.Repository
	standingRepo   tournament.StandingRepository
	prizeRepo      tournament.PrizeRepository
	matchRepo      match.Repository
	rosterRepo     roster.Repository
	statRepo       matchstat.Repository
	eventRepo      matchevent.Repository
	teamRepo       team.Repository
	playerRepo     player.Repository
	policy         scoring.Policy
	idGen          id.Generator
	logger         *logging.Logger
	now            func() time.Time
}

type PrizeDeps struct {
	Tournaments tournament.Repository
	Standings   tournament.StandingRepository
	Prizes      tournament.PrizeRepository
	Matches     match.Repository
	Rosters     roster.Repository
	Stats       matchstat.Repository
	Events      matchevent.Repository
	Teams       team.Repository
	Players     player.Repository
	Policy      scoring.Policy
	IDs         id.Generator
	Logger      *logging.Logger
}

func NewPrizeService(deps PrizeDeps) *PrizeService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	idGen := deps.IDs
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	policy := deps.Policy
	if len(policy.DefenderTokens) == 0 {
		policy = scoring.DefaultPolicy()
	}

	return &PrizeService{
		tournamentRepo: deps.Tournaments,
		standingRepo:   deps.Standings,
		prizeRepo:      deps.Prizes,
		matchRepo:      deps.Matches,
		rosterRepo:     deps.Rosters,
		statRepo:       deps.Stats,
		eventRepo:      deps.Events,
		teamRepo:       deps.Teams,
		playerRepo:     deps.Players,
		policy:         policy,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// PrizeResult reports one automatic prize run.
type PrizeResult struct {
	TournamentID string
	Prizes       []tournament.Prize
	// ManualKept is true when a manual player-of-the-tournament row blocked the
	// automatic pick and was preserved.
	ManualKept bool
}

// CalculatePrizes recomputes every automatic category and replaces the stored prizes.
// A manual player-of-the-tournament row survives and suppresses the automatic pick.
func (s *PrizeService) CalculatePrizes(ctx context.Context, tournamentID string) (PrizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PrizeService.CalculatePrizes")
	defer span.End()

	t, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return PrizeResult{}, err
	}

	existing, err := s.prizeRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return PrizeResult{}, fmt.Errorf("list prizes: %w", err)
	}
	manualKept := tournament.HasManualPlayerOfTournament(existing)

	scores, err := s.playerScores(ctx, t.ID)
	if err != nil {
		return PrizeResult{}, err
	}
	standings, err := s.standingRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return PrizeResult{}, fmt.Errorf("list standings: %w", err)
	}

	prizes := buildPrizes(t.ID, tournament.Sorted(standings), scores, manualKept)
	now := s.now().UTC()
	for i := range prizes {
		prizeID, err := s.idGen.NewID()
		if err != nil {
			return PrizeResult{}, fmt.Errorf("generate prize id: %w", err)
		}
		prizes[i].ID = prizeID
		prizes[i].CreatedAt = now
	}

	if err := s.prizeRepo.ReplaceAutomatic(ctx, t.ID, prizes); err != nil {
		return PrizeResult{}, fmt.Errorf("replace prizes: %w", err)
	}

	stored, err := s.prizeRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return PrizeResult{}, fmt.Errorf("list prizes: %w", err)
	}
	return PrizeResult{TournamentID: t.ID, Prizes: stored, ManualKept: manualKept}, nil
}

// SetPlayerOfTournament replaces any player-of-the-tournament row with a manual pick.
// teamID is optional but must be registered to the tournament when given.
func (s *PrizeService) SetPlayerOfTournament(ctx context.Context, tournamentID, playerID, teamID string) (tournament.Prize, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PrizeService.SetPlayerOfTournament")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	teamID = strings.TrimSpace(teamID)
	if playerID == "" {
		return tournament.Prize{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	t, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return tournament.Prize{}, err
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return tournament.Prize{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return tournament.Prize{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if teamID != "" {
		teams, err := s.teamRepo.ListByTournament(ctx, t.ID)
		if err != nil {
			return tournament.Prize{}, fmt.Errorf("list tournament teams: %w", err)
		}
		registered := false
		for _, tm := range teams {
			if tm.ID == teamID {
				registered = true
				break
			}
		}
		if !registered {
			return tournament.Prize{}, fmt.Errorf("%w: team=%s is not registered to tournament=%s", ErrInvalidInput, teamID, t.ID)
		}
	}

	prizeID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Prize{}, fmt.Errorf("generate prize id: %w", err)
	}
	prize := tournament.Prize{
		ID:                prizeID,
		TournamentID:      t.ID,
		Category:          tournament.CategoryPlayerOfTournament,
		RecipientType:     tournament.RecipientPlayer,
		RecipientPlayerID: playerID,
		RecipientTeamID:   teamID,
		Description:       manualPlayerOfTournamentLabel,
		CreatedAt:         s.now().UTC(),
	}
	if err := s.prizeRepo.ReplacePlayerOfTournament(ctx, t.ID, prize); err != nil {
		return tournament.Prize{}, fmt.Errorf("replace player of the tournament: %w", err)
	}
	return prize, nil
}

func (s *PrizeService) ListPrizes(ctx context.Context, tournamentID string) ([]tournament.Prize, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PrizeService.ListPrizes")
	defer span.End()

	t, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}
	prizes, err := s.prizeRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list prizes: %w", err)
	}
	return prizes, nil
}

// ListPlayerScores returns the tournament's player lines ordered by unified score.
func (s *PrizeService) ListPlayerScores(ctx context.Context, tournamentID string) ([]PlayerScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PrizeService.ListPlayerScores")
	defer span.End()

	t, err := requireTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}
	scores, err := s.playerScores(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores, nil
}

// playerScores aggregates every completed tournament match per player. Any failed read
// aborts; prize persistence must not run on partial data.
func (s *PrizeService) playerScores(ctx context.Context, tournamentID string) ([]PlayerScore, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list tournament matches: %w", err)
	}
	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.IsCompleted() {
			matchIDs = append(matchIDs, m.ID)
		}
	}
	if len(matchIDs) == 0 {
		return nil, nil
	}

	members, err := s.rosterRepo.ListMembersByMatches(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list tournament rosters: %w", err)
	}
	entryIDs := make([]string, 0, len(members))
	for _, m := range members {
		entryIDs = append(entryIDs, m.Entry.ID)
	}
	rows, err := s.statRepo.ListByRosterEntries(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("list tournament stat rows: %w", err)
	}
	rowByEntry := make(map[string]matchstat.Row, len(rows))
	for _, r := range rows {
		rowByEntry[r.RosterEntryID] = r
	}

	events, err := s.eventRepo.ListByMatches(ctx, matchIDs, matchevent.TypeSave, matchevent.TypeCleanSheet)
	if err != nil {
		return nil, fmt.Errorf("list tournament save and clean sheet events: %w", err)
	}
	attributed, err := attributeEvents(ctx, s.rosterRepo, s.logger, events)
	if err != nil {
		return nil, err
	}
	tallies := countEvents(attributed)

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list tournament teams: %w", err)
	}
	teamByName := team.IndexByName(teams)

	type accumulator struct {
		score     PlayerScore
		ratingSum float64
		position  string
	}
	byPlayer := make(map[string]*accumulator)
	order := make([]string, 0)
	for _, m := range members {
		playerID := m.Player.ID
		if playerID == "" {
			continue
		}
		acc, ok := byPlayer[playerID]
		if !ok {
			acc = &accumulator{score: PlayerScore{PlayerID: playerID, DisplayName: m.Player.DisplayName}}
			byPlayer[playerID] = acc
			order = append(order, playerID)
		}
		if acc.position == "" {
			acc.position = m.EffectivePosition()
		}
		if acc.score.TeamID == "" {
			acc.score.TeamID = teamByName[team.NormalizeName(m.TeamName)]
		}

		acc.score.Matches++
		if row, ok := rowByEntry[m.Entry.ID]; ok {
			acc.score.Goals += row.Goals
			acc.score.Assists += row.Assists
			acc.score.OwnGoals += row.OwnGoals
			if row.Rating != nil {
				acc.ratingSum += *row.Rating
				acc.score.RatedMatches++
			}
		}
	}

	out := make([]PlayerScore, 0, len(order))
	for _, playerID := range order {
		acc := byPlayer[playerID]
		sum := sumTallies(tallies[playerID])
		p := acc.score
		p.Position = acc.position
		p.Saves = sum.Saves
		p.CleanSheets = sum.CleanSheets
		p.AverageRating = scoring.Average(acc.ratingSum, p.RatedMatches)
		p.IsDefender = s.policy.IsDefender(acc.position)
		p.Score = s.policy.Score(scoring.Line{
			Goals:         p.Goals,
			Assists:       p.Assists,
			Saves:         p.Saves,
			CleanSheets:   p.CleanSheets,
			OwnGoals:      p.OwnGoals,
			AverageRating: p.AverageRating,
			Defender:      p.IsDefender,
		})
		out = append(out, p)
	}
	return out, nil
}

// buildPrizes derives every automatic category. Ties share a category except for the
// most valuable player, where the first in order wins.
func buildPrizes(tournamentID string, standings []tournament.Standing, scores []PlayerScore, manualKept bool) []tournament.Prize {
	var prizes []tournament.Prize

	for i := 0; i < len(standings) && i < len(teamRankLabels); i++ {
		rank := i + 1
		prizes = append(prizes, tournament.Prize{
			TournamentID:    tournamentID,
			Category:        tournament.CategoryTeamRank,
			Rank:            &rank,
			RecipientType:   tournament.RecipientTeam,
			RecipientTeamID: standings[i].TeamID,
			Description:     teamRankLabels[i],
		})
	}

	playerPrize := func(category, description string, p PlayerScore) tournament.Prize {
		return tournament.Prize{
			TournamentID:      tournamentID,
			Category:          category,
			RecipientType:     tournament.RecipientPlayer,
			RecipientPlayerID: p.PlayerID,
			RecipientTeamID:   p.TeamID,
			Description:       description,
		}
	}
	tiedCategory := func(category, label string, value func(PlayerScore) float64, format func(float64) string) {
		winners, best := scoring.TopTied(scores, value)
		description := label + " (" + format(best) + ")"
		if len(winners) > 1 {
			description = "Tied " + description
		}
		for _, w := range winners {
			prizes = append(prizes, playerPrize(category, description, w))
		}
	}
	count := func(unit string) func(float64) string {
		return func(v float64) string { return fmt.Sprintf("%d %s", int(v), unit) }
	}

	tiedCategory(tournament.CategoryTopGoals, "Top Scorer", func(p PlayerScore) float64 { return float64(p.Goals) }, count("goals"))
	tiedCategory(tournament.CategoryTopAssists, "Top Assists", func(p PlayerScore) float64 { return float64(p.Assists) }, count("assists"))
	tiedCategory(tournament.CategoryMostSaves, "Most Saves", func(p PlayerScore) float64 { return float64(p.Saves) }, count("saves"))

	contributions := func(p PlayerScore) float64 { return float64(p.Contributions()) }
	mvp, hasMVP := scoring.TopOne(scores, contributions)
	if hasMVP {
		prizes = append(prizes, playerPrize(tournament.CategoryMostValuablePlayer,
			fmt.Sprintf("Most Valuable Player (%d goal contributions)", mvp.Contributions()), mvp))
	}

	if !manualKept {
		if pot, ok := pickPlayerOfTournament(scores, mvp.PlayerID, hasMVP); ok {
			prizes = append(prizes, playerPrize(tournament.CategoryPlayerOfTournament,
				fmt.Sprintf("Player of the Tournament (score %.1f)", pot.Score), pot))
		}
	}

	tiedCategory(tournament.CategoryBestGoalkeeper, "Best Goalkeeper",
		func(p PlayerScore) float64 { return float64(p.Saves + p.CleanSheets) }, count("saves and clean sheets"))
	tiedCategory(tournament.CategoryTopPerformer, "Top Performer",
		func(p PlayerScore) float64 { return p.Score },
		func(v float64) string { return fmt.Sprintf("score %.1f", v) })

	return prizes
}

// pickPlayerOfTournament ranks eligible players by unified score, then contributions,
// and prefers someone other than the MVP.
func pickPlayerOfTournament(scores []PlayerScore, mvpID string, hasMVP bool) (PlayerScore, bool) {
	candidates := make([]PlayerScore, 0, len(scores))
	for _, p := range scores {
		if p.Matches >= minMatchesForPlayerOfTournament && p.Contributions() > 0 {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return PlayerScore{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Contributions() > candidates[j].Contributions()
	})
	if hasMVP {
		for _, c := range candidates {
			if c.PlayerID != mvpID {
				return c, true
			}
		}
	}
	return candidates[0], true
}
