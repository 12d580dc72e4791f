package category

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category *Category) error
}

// ListCache is the volatile read-through cache in front of [Repository.List].
//
// A cache miss is signalled by an [apperr.AppError] with NOT_FOUND semantics;
// any other error means the cache backend itself is unhealthy.
type ListCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
