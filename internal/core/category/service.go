package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/ductran/syllabase/pkg/uuidv7"
)

// listCacheTTL bounds staleness after out-of-band database edits.
const listCacheTTL = 10 * time.Minute

type Service struct {
	repo   Repository
	cache  ListCache
	logger *slog.Logger
}

func NewService(repo Repository, cache ListCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns all categories, preferring the Redis cache.
//
// Cache failures are logged and absorbed: the database remains the source of
// truth and a degraded cache must never fail a read.
func (service *Service) List(ctx context.Context) ([]Category, error) {
	if categories, err := service.cache.Get(ctx); err == nil {
		return categories, nil
	}

	categories, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(ctx, categories, listCacheTTL); err != nil {
		service.logger.Warn("category_cache_refresh_failed", slog.Any("error", err))
	}

	return categories, nil
}

// Create persists a new category and drops the stale list cache.
func (service *Service) Create(ctx context.Context, name string) (*Category, error) {
	category := &Category{
		ID:        uuidv7.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := service.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	if err := service.cache.Invalidate(ctx); err != nil {
		service.logger.Warn("category_cache_invalidate_failed", slog.Any("error", err))
	}

	return category, nil
}
