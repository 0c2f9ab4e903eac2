package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/platform/cache"
	idgen "github.com/delilt/football-dashboard/internal/platform/id"
	"github.com/delilt/football-dashboard/internal/platform/logging"
	"github.com/delilt/football-dashboard/internal/stats"
)

// Snapshot is one full pull of the upstream collections, already normalized
// into the canonical domain shape.
type Snapshot struct {
	Teams          []team.Team
	Matches        []match.Match
	DroppedRecords int
}

// SnapshotFetcher loads both upstream collections atomically: either the
// whole snapshot arrives or an error does, never partial data.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context) (Snapshot, error)
}

type SyncResult struct {
	RunID           string
	Teams           int
	Matches         int
	DroppedRecords  int
	DefaultedScores int
	UnknownDates    int
	WarmedTeams     int
}

// SyncService replaces the stored snapshot with a fresh upstream pull,
// invalidates every cached view and pre-warms the per-team records.
type SyncService struct {
	fetcher     SnapshotFetcher
	teamRepo    team.Repository
	matchRepo   match.Repository
	cache       *cache.Store
	idGen       idgen.Generator
	workerCount int
	logger      *logging.Logger
}

func NewSyncService(
	fetcher SnapshotFetcher,
	teamRepo team.Repository,
	matchRepo match.Repository,
	cacheStore *cache.Store,
	idGen idgen.Generator,
	workerCount int,
	logger *logging.Logger,
) *SyncService {
	if workerCount < 1 {
		workerCount = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &SyncService{
		fetcher:     fetcher,
		teamRepo:    teamRepo,
		matchRepo:   matchRepo,
		cache:       cacheStore,
		idGen:       idGen,
		workerCount: workerCount,
		logger:      logger,
	}
}

func (s *SyncService) Refresh(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Refresh")
	defer span.End()

	if s.fetcher == nil {
		return SyncResult{}, fmt.Errorf("%w: no upstream data source is configured", ErrDependencyUnavailable)
	}

	runID := ""
	if s.idGen != nil {
		if generated, err := s.idGen.NewID(); err == nil {
			runID = generated
		}
	}

	snapshot, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch snapshot: %w", err)
	}

	if err := s.teamRepo.ReplaceAll(ctx, snapshot.Teams); err != nil {
		return SyncResult{}, fmt.Errorf("replace teams: %w", err)
	}
	if err := s.matchRepo.ReplaceAll(ctx, snapshot.Matches); err != nil {
		return SyncResult{}, fmt.Errorf("replace matches: %w", err)
	}

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, viewKeyPrefix)
	}

	report := stats.Audit(snapshot.Matches)
	if !report.Clean() {
		s.logger.WarnContext(ctx, "snapshot contains degraded records",
			"run_id", runID,
			"defaulted_scores", len(report.DefaultedScores),
			"unknown_dates", len(report.UnknownDates),
		)
	}

	warmed := s.warmTeamRecords(ctx, snapshot)

	s.logger.InfoContext(ctx, "snapshot refreshed",
		"run_id", runID,
		"teams", len(snapshot.Teams),
		"matches", len(snapshot.Matches),
		"dropped_records", snapshot.DroppedRecords,
		"warmed_teams", warmed,
	)

	return SyncResult{
		RunID:           runID,
		Teams:           len(snapshot.Teams),
		Matches:         len(snapshot.Matches),
		DroppedRecords:  snapshot.DroppedRecords,
		DefaultedScores: len(report.DefaultedScores),
		UnknownDates:    len(report.UnknownDates),
		WarmedTeams:     warmed,
	}, nil
}

// warmTeamRecords precomputes every team's unfiltered record so the first
// dashboard views after a refresh hit the cache. Best effort: a pool failure
// only costs warm starts.
func (s *SyncService) warmTeamRecords(ctx context.Context, snapshot Snapshot) int {
	if s.cache == nil || len(snapshot.Teams) == 0 {
		return 0
	}

	workers, err := ants.NewPool(s.workerCount)
	if err != nil {
		s.logger.WarnContext(ctx, "skip record warm-up: worker pool unavailable", "error", err)
		return 0
	}
	defer workers.Release()

	var wg sync.WaitGroup
	warmed := 0
	var mu sync.Mutex

	for _, t := range snapshot.Teams {
		teamID := t.ID
		wg.Add(1)
		submitErr := workers.Submit(func() {
			defer wg.Done()
			record := stats.ComputeRecord(snapshot.Matches, teamID)
			s.cache.Set(ctx, teamRecordKey(teamID), record)
			mu.Lock()
			warmed++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
		}
	}
	wg.Wait()

	return warmed
}
