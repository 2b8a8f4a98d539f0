package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/playerstats"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/domain/scoring"
	"github.com/devShamim/match-stats-sub000/internal/domain/team"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
)

type PlayerStatsService struct {
	playerRepo     player.Repository
	rosterRepo     roster.Repository
	matchRepo      match.Repository
	statRepo       matchstat.Repository
	eventRepo      matchevent.Repository
	policy         scoring.Policy
	autoCleanSheet bool
	logger         *logging.Logger
}

type PlayerStatsDeps struct {
	Players player.Repository
	Rosters roster.Repository
	Matches match.Repository
	Stats   matchstat.Repository
	Events  matchevent.Repository
	Policy  scoring.Policy
	// AutoCleanSheet credits a defender with a clean sheet for a completed match the
	// opponent did not score in, when no explicit clean-sheet event exists for it.
	AutoCleanSheet bool
	Logger         *logging.Logger
}

func NewPlayerStatsService(deps PlayerStatsDeps) *PlayerStatsService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	policy := deps.Policy
	if len(policy.DefenderTokens) == 0 {
		policy = scoring.DefaultPolicy()
	}

	return &PlayerStatsService{
		playerRepo:     deps.Players,
		rosterRepo:     deps.Rosters,
		matchRepo:      deps.Matches,
		statRepo:       deps.Stats,
		eventRepo:      deps.Events,
		policy:         policy,
		autoCleanSheet: deps.AutoCleanSheet,
		logger:         logger,
	}
}

func (s *PlayerStatsService) GetPlayerStats(ctx context.Context, playerID string) (playerstats.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetPlayerStats")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return playerstats.Summary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return playerstats.Summary{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return playerstats.Summary{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	members, err := s.rosterRepo.ListMembersByPlayer(ctx, playerID)
	if err != nil {
		return playerstats.Summary{}, fmt.Errorf("list player roster entries: %w", err)
	}

	matchIDs := make([]string, 0, len(members))
	entryIDs := make([]string, 0, len(members))
	for _, m := range members {
		matchIDs = append(matchIDs, m.Entry.MatchID)
		entryIDs = append(entryIDs, m.Entry.ID)
	}

	matches, err := s.matchRepo.ListByIDs(ctx, uniqueStrings(matchIDs))
	if err != nil {
		return playerstats.Summary{}, fmt.Errorf("list player matches: %w", err)
	}
	matchByID := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}

	rows, err := s.statRepo.ListByRosterEntries(ctx, entryIDs)
	if err != nil {
		return playerstats.Summary{}, fmt.Errorf("list player stat rows: %w", err)
	}
	rowByEntry := make(map[string]matchstat.Row, len(rows))
	for _, r := range rows {
		rowByEntry[r.RosterEntryID] = r
	}

	counts := s.eventCounts(ctx, p)

	appearances := make([]playerstats.Appearance, 0, len(members))
	for _, member := range members {
		m, ok := matchByID[member.Entry.MatchID]
		if !ok {
			continue
		}
		appearance := playerstats.Appearance{Match: m, Events: counts[m.ID]}
		if row, ok := rowByEntry[member.Entry.ID]; ok {
			row := row
			appearance.Row = &row
		}
		if s.autoCleanSheet && appearance.Events.CleanSheets == 0 && s.earnsAutoCleanSheet(member, m) {
			appearance.Events.CleanSheets = 1
		}
		appearances = append(appearances, appearance)
	}

	return playerstats.Accumulate(playerstats.Summary{
		PlayerID:    p.ID,
		DisplayName: p.DisplayName,
		Position:    p.Position,
	}, appearances), nil
}

// eventCounts fetches saves and clean sheets concurrently. Either fetch failing leaves
// that count empty. Name-only rows count only when the player's own match roster
// resolves the name to them.
func (s *PlayerStatsService) eventCounts(ctx context.Context, p player.Player) map[string]playerstats.EventCounts {
	var (
		saves       []matchevent.Event
		cleanSheets []matchevent.Event
		savesErr    error
		cleanErr    error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		saves, savesErr = s.eventRepo.ListForPlayer(ctx, p.ID, p.DisplayName, matchevent.TypeSave)
	})
	wg.Go(func() {
		cleanSheets, cleanErr = s.eventRepo.ListForPlayer(ctx, p.ID, p.DisplayName, matchevent.TypeCleanSheet)
	})
	wg.Wait()

	if savesErr != nil {
		s.logger.WarnContext(ctx, "list player saves failed, continuing without saves", "player_id", p.ID, "error", savesErr)
		saves = nil
	}
	if cleanErr != nil {
		s.logger.WarnContext(ctx, "list player clean sheets failed, continuing without clean sheets", "player_id", p.ID, "error", cleanErr)
		cleanSheets = nil
	}

	candidates := make([]matchevent.Event, 0, len(saves)+len(cleanSheets))
	candidates = append(candidates, saves...)
	candidates = append(candidates, cleanSheets...)

	attributed, err := attributeEvents(ctx, s.rosterRepo, s.logger, candidates)
	if err != nil {
		s.logger.WarnContext(ctx, "attribute player events failed, counting id rows only", "player_id", p.ID, "error", err)
		attributed = attributed[:0]
		for _, e := range candidates {
			if id, _ := e.Subject(); id != "" {
				attributed = append(attributed, attributedEvent{Event: e, SubjectID: id})
			}
		}
	}

	out := make(map[string]playerstats.EventCounts)
	for matchID, tally := range countEvents(attributed)[p.ID] {
		out[matchID] = playerstats.EventCounts{Saves: tally.Saves, CleanSheets: tally.CleanSheets}
	}
	return out
}

func (s *PlayerStatsService) earnsAutoCleanSheet(member roster.Member, m match.Match) bool {
	if !m.IsCompleted() || !s.policy.IsDefender(member.EffectivePosition()) {
		return false
	}

	side := team.NormalizeName(member.TeamName)
	switch side {
	case "":
		return false
	case team.NormalizeName(m.TeamAName):
		return m.ScoreTeamB == 0
	case team.NormalizeName(m.TeamBName):
		return m.ScoreTeamA == 0
	default:
		return false
	}
}
