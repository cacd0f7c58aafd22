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

	"github.com/hoopsight/hoopsight/internal/platform/logging"
)

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"

	defaultWarmWorkers = 4
	maxWarmWorkers     = 16
)

type WarmInput struct {
	TeamIDs    []string
	SeasonYear int
	MaxWorkers int
}

type WarmResult struct {
	TeamCount    int              `json:"team_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	Tasks        []WarmTaskResult `json:"tasks"`
}

type WarmTaskResult struct {
	TeamID     string `json:"team_id"`
	SeasonYear int    `json:"season_year"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type viewBuilder interface {
	BuildTeamView(ctx context.Context, q TeamViewQuery) (TeamView, error)
}

// WarmService pre-builds team views for a set of teams so the cache is
// hot before traffic arrives, e.g. ahead of a game day. Teams warm in
// parallel on a bounded worker pool. defaultWorkers is the configured
// pool size used when a job does not ask for one.
type WarmService struct {
	builder        viewBuilder
	defaultWorkers int
	logger         *logging.Logger
}

func NewWarmService(builder viewBuilder, defaultWorkers int, logger *logging.Logger) *WarmService {
	if defaultWorkers <= 0 {
		defaultWorkers = defaultWarmWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmService{
		builder:        builder,
		defaultWorkers: defaultWorkers,
		logger:         logger,
	}
}

func (s *WarmService) Run(ctx context.Context, input WarmInput) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmService.Run")
	defer span.End()

	teamIDs := dedupeTeamIDs(input.TeamIDs)
	if len(teamIDs) == 0 {
		return WarmResult{}, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}
	if input.SeasonYear < 0 {
		return WarmResult{}, fmt.Errorf("%w: season year must not be negative", ErrInvalidInput)
	}

	workerCount := normalizeWarmWorkerCount(input.MaxWorkers, s.defaultWorkers, len(teamIDs))
	result := WarmResult{
		TeamCount:   len(teamIDs),
		WorkerCount: workerCount,
		Tasks:       make([]WarmTaskResult, 0, len(teamIDs)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmTaskResult, len(teamIDs))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, teamID := range teamIDs {
		teamID := teamID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmTaskResult{
				TeamID:     teamID,
				SeasonYear: input.SeasonYear,
			}

			_, buildErr := s.builder.BuildTeamView(ctx, TeamViewQuery{
				TeamID:     teamID,
				SeasonYear: input.SeasonYear,
			})
			row.DurationMs = time.Since(start).Milliseconds()
			if buildErr != nil {
				row.Status = warmStatusFailed
				row.Message = buildErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = warmStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return WarmResult{}, fmt.Errorf("submit warm task: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].TeamID < result.Tasks[j].TeamID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "cache warm finished",
		"teams", result.TeamCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func dedupeTeamIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeWarmWorkerCount(requested, fallback, taskCount int) int {
	count := requested
	if count <= 0 {
		count = fallback
	}
	if count <= 0 {
		count = defaultWarmWorkers
	}
	if count > maxWarmWorkers {
		count = maxWarmWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	return count
}
