package usecase

import (
	"context"
	"fmt"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/platform/cache"
)

const (
	defaultPowerRankingLimit = 25
	maxPowerRankingLimit     = 100
)

// AnalyticsService exposes the backend's model-driven rankings and
// betting edges.
type AnalyticsService struct {
	backend DataBackend
	store   *cache.Store
}

func NewAnalyticsService(backend DataBackend, store *cache.Store) *AnalyticsService {
	return &AnalyticsService{
		backend: backend,
		store:   store,
	}
}

func (s *AnalyticsService) PowerRankings(ctx context.Context, year, limit int) ([]analytics.PowerRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PowerRankings")
	defer span.End()

	if year < 0 {
		return nil, fmt.Errorf("%w: season year must not be negative", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultPowerRankingLimit
	}
	if limit > maxPowerRankingLimit {
		limit = maxPowerRankingLimit
	}

	key := fmt.Sprintf("backend:rankings:%d:%d", year, limit)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.backend.PowerRankings(ctx, year, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("power rankings: %w", err)
	}

	rankings, _ := v.([]analytics.PowerRanking)
	return rankings, nil
}

func (s *AnalyticsService) BettingEdges(ctx context.Context, date string, minEdge float64) ([]analytics.BettingEdge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.BettingEdges")
	defer span.End()

	if minEdge < 0 {
		return nil, fmt.Errorf("%w: minimum edge must not be negative", ErrInvalidInput)
	}

	key := fmt.Sprintf("backend:edges:%s:%.3f", date, minEdge)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.backend.BettingEdges(ctx, date, minEdge)
	})
	if err != nil {
		return nil, fmt.Errorf("betting edges: %w", err)
	}

	edges, _ := v.([]analytics.BettingEdge)
	return edges, nil
}

func (s *AnalyticsService) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.store == nil {
		return loader(ctx)
	}
	return s.store.GetOrLoad(ctx, key, loader)
}
