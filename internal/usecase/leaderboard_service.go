package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devShamim/match-stats-sub000/internal/domain/leaderboard"
	"github.com/devShamim/match-stats-sub000/internal/domain/match"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchevent"
	"github.com/devShamim/match-stats-sub000/internal/domain/matchstat"
	"github.com/devShamim/match-stats-sub000/internal/domain/player"
	"github.com/devShamim/match-stats-sub000/internal/domain/roster"
	"github.com/devShamim/match-stats-sub000/internal/platform/cache"
	"github.com/devShamim/match-stats-sub000/internal/platform/logging"
)

const (
	statsCachePrefix      = "stats:"
	statsTotalsCacheKey   = statsCachePrefix + "totals"
	statsOverviewCacheKey = statsCachePrefix + "overview"

	publicBoardLimit   = 5
	overviewMatchLimit = 5
	maxBoardLimit      = 100
)

type LeaderboardService struct {
	playerRepo   player.Repository
	rosterRepo   roster.Repository
	matchRepo    match.Repository
	statRepo     matchstat.Repository
	eventRepo    matchevent.Repository
	cache        *cache.Store
	defaultLimit int
	logger       *logging.Logger
	now          func() time.Time
}

type LeaderboardDeps struct {
	Players      player.Repository
	Rosters      roster.Repository
	Matches      match.Repository
	Stats        matchstat.Repository
	Events       matchevent.Repository
	Cache        *cache.Store
	DefaultLimit int
	Logger       *logging.Logger
}

func NewLeaderboardService(deps LeaderboardDeps) *LeaderboardService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	limit := deps.DefaultLimit
	if limit <= 0 {
		limit = 10
	}

	return &LeaderboardService{
		playerRepo:   deps.Players,
		rosterRepo:   deps.Rosters,
		matchRepo:    deps.Matches,
		statRepo:     deps.Stats,
		eventRepo:    deps.Events,
		cache:        deps.Cache,
		defaultLimit: limit,
		logger:       logger,
		now:          time.Now,
	}
}

// GetLeaderboards builds every board. limit bounds the scorer and assist boards; zero
// uses the configured default.
func (s *LeaderboardService) GetLeaderboards(ctx context.Context, limit int) (leaderboard.Boards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboards")
	defer span.End()

	if limit < 0 || limit > maxBoardLimit {
		return leaderboard.Boards{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxBoardLimit)
	}
	if limit == 0 {
		limit = s.defaultLimit
	}

	totals, err := s.totals(ctx)
	if err != nil {
		return leaderboard.Boards{}, err
	}
	return leaderboard.Build(totals, leaderboard.DefaultLimits(limit)), nil
}

// GetPublicOverview returns the public stats page: five-row boards, league counters and
// recent and upcoming matches.
func (s *LeaderboardService) GetPublicOverview(ctx context.Context) (leaderboard.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetPublicOverview")
	defer span.End()

	return cache.Load(ctx, s.cache, statsOverviewCacheKey, s.loadOverview)
}

func (s *LeaderboardService) loadOverview(ctx context.Context) (leaderboard.Overview, error) {
	totals, err := s.totals(ctx)
	if err != nil {
		return leaderboard.Overview{}, err
	}

	overview := leaderboard.Overview{Boards: leaderboard.Build(totals, leaderboard.DefaultLimits(publicBoardLimit))}
	for _, t := range totals {
		overview.TotalGoals += t.Goals
		overview.TotalAssists += t.Assists
	}

	if overview.TotalMatches, err = s.matchRepo.CountByStatus(ctx, match.StatusCompleted); err != nil {
		return leaderboard.Overview{}, fmt.Errorf("count completed matches: %w", err)
	}
	if overview.TotalPlayers, err = s.playerRepo.Count(ctx); err != nil {
		return leaderboard.Overview{}, fmt.Errorf("count players: %w", err)
	}
	if overview.RecentMatches, err = s.matchRepo.ListRecent(ctx, overviewMatchLimit); err != nil {
		return leaderboard.Overview{}, fmt.Errorf("list recent matches: %w", err)
	}
	if overview.UpcomingMatches, err = s.matchRepo.ListUpcoming(ctx, s.now().UTC(), overviewMatchLimit); err != nil {
		return leaderboard.Overview{}, fmt.Errorf("list upcoming matches: %w", err)
	}

	return overview, nil
}

// InvalidateStats drops cached totals and overview.
func (s *LeaderboardService) InvalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, statsCachePrefix)
	s.logger.DebugContext(ctx, "stats cache invalidated", "prefix", statsCachePrefix, "remaining_entries", s.cache.Len())
}

func (s *LeaderboardService) totals(ctx context.Context) ([]leaderboard.PlayerTotals, error) {
	totals, err := cache.Load(ctx, s.cache, statsTotalsCacheKey, s.loadTotals)
	if err != nil {
		return nil, err
	}
	return append([]leaderboard.PlayerTotals(nil), totals...), nil
}

// loadTotals aggregates every stat row by player. Rows whose roster entry or player is
// gone are skipped. Saves and clean sheets come from the event log; if that read fails
// they are left at zero.
func (s *LeaderboardService) loadTotals(ctx context.Context) ([]leaderboard.PlayerTotals, error) {
	rows, err := s.statRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stat rows: %w", err)
	}

	entryIDs := make([]string, 0, len(rows))
	for _, r := range rows {
		entryIDs = append(entryIDs, r.RosterEntryID)
	}
	members, err := s.rosterRepo.ListMembersByIDs(ctx, uniqueStrings(entryIDs))
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}
	memberByEntry := make(map[string]roster.Member, len(members))
	for _, m := range members {
		memberByEntry[m.Entry.ID] = m
	}

	byPlayer := make(map[string]*leaderboard.PlayerTotals)
	for _, r := range rows {
		member, ok := memberByEntry[r.RosterEntryID]
		if !ok || member.Player.ID == "" {
			continue
		}
		t := byPlayer[member.Player.ID]
		if t == nil {
			t = newPlayerTotals(member.Player)
			byPlayer[member.Player.ID] = t
		}

		row := r
		line := matchstat.Resolve(&row)
		t.Matches++
		t.Goals += line.Goals
		t.Assists += line.Assists
		t.YellowCards += line.YellowCards
		t.RedCards += line.RedCards
		t.Minutes += line.Minutes
	}

	s.addEventTotals(ctx, byPlayer)

	out := make([]leaderboard.PlayerTotals, 0, len(byPlayer))
	for _, t := range byPlayer {
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (s *LeaderboardService) addEventTotals(ctx context.Context, byPlayer map[string]*leaderboard.PlayerTotals) {
	events, err := s.eventRepo.ListByTypes(ctx, matchevent.TypeSave, matchevent.TypeCleanSheet)
	if err != nil {
		s.logger.WarnContext(ctx, "list save and clean sheet events failed, boards continue without them", "error", err)
		return
	}
	attributed, err := attributeEvents(ctx, s.rosterRepo, s.logger, events)
	if err != nil {
		s.logger.WarnContext(ctx, "attribute save and clean sheet events failed, boards continue without them", "error", err)
		return
	}
	tallies := countEvents(attributed)

	var missing []string
	for playerID := range tallies {
		if _, ok := byPlayer[playerID]; !ok {
			missing = append(missing, playerID)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		players, err := s.playerRepo.GetByIDs(ctx, missing)
		if err != nil {
			s.logger.WarnContext(ctx, "load players for event totals failed", "error", err)
		}
		for _, p := range players {
			byPlayer[p.ID] = newPlayerTotals(p)
		}
	}

	for playerID, byMatch := range tallies {
		t, ok := byPlayer[playerID]
		if !ok {
			continue
		}
		sum := sumTallies(byMatch)
		t.Saves += sum.Saves
		t.CleanSheets += sum.CleanSheets
	}
}

func newPlayerTotals(p player.Player) *leaderboard.PlayerTotals {
	return &leaderboard.PlayerTotals{
		PlayerID:    p.ID,
		DisplayName: p.DisplayName,
		Position:    p.Position,
		PhotoURL:    p.PhotoURL,
	}
}
