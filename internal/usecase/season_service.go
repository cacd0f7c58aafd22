package usecase

import (
	"context"
	"fmt"

	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/platform/cache"
)

const (
	cacheKeySeasonList    = "backend:seasons"
	cacheKeySeasonCurrent = "backend:seasons:current"
)

// SeasonService serves the season directory used by season pickers and
// by the team view's season resolution.
type SeasonService struct {
	backend DataBackend
	store   *cache.Store
}

func NewSeasonService(backend DataBackend, store *cache.Store) *SeasonService {
	return &SeasonService{
		backend: backend,
		store:   store,
	}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	v, err := s.cached(ctx, cacheKeySeasonList, func(ctx context.Context) (any, error) {
		return s.backend.Seasons(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	seasons, _ := v.([]season.Season)
	return seasons, nil
}

func (s *SeasonService) Current(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Current")
	defer span.End()

	v, err := s.cached(ctx, cacheKeySeasonCurrent, func(ctx context.Context) (any, error) {
		return s.backend.CurrentSeason(ctx)
	})
	if err != nil {
		return season.Season{}, fmt.Errorf("current season: %w", err)
	}

	current, _ := v.(season.Season)
	return current, nil
}

func (s *SeasonService) ByYear(ctx context.Context, year int) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ByYear")
	defer span.End()

	if year <= 0 {
		return season.Season{}, fmt.Errorf("%w: season year must be positive", ErrInvalidInput)
	}

	v, err := s.cached(ctx, fmt.Sprintf("backend:seasons:%d", year), func(ctx context.Context) (any, error) {
		return s.backend.SeasonByYear(ctx, year)
	})
	if err != nil {
		return season.Season{}, fmt.Errorf("season %d: %w", year, err)
	}

	found, _ := v.(season.Season)
	return found, nil
}

func (s *SeasonService) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.store == nil {
		return loader(ctx)
	}
	return s.store.GetOrLoad(ctx, key, loader)
}
