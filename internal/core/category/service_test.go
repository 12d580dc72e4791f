package category_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ductran/syllabase/internal/core/category"
	"github.com/ductran/syllabase/internal/platform/apperr"
)

type fakeRepository struct {
	categories []category.Category
	listCalls  int
	createErr  error
}

func (f *fakeRepository) List(context.Context) ([]category.Category, error) {
	f.listCalls++
	return f.categories, nil
}

func (f *fakeRepository) Create(_ context.Context, c *category.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.categories = append(f.categories, *c)
	return nil
}

type fakeCache struct {
	entries     []category.Category
	populated   bool
	getErr      error
	setErr      error
	invalidated int
}

func (f *fakeCache) Get(context.Context) ([]category.Category, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if !f.populated {
		return nil, apperr.NotFound("category list")
	}
	return f.entries, nil
}

func (f *fakeCache) Set(_ context.Context, categories []category.Category, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries = categories
	f.populated = true
	return nil
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.invalidated++
	f.populated = false
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

/*
TestService_List verifies read-through behavior: a cold cache hits the
database once and warms the cache; a warm cache answers without touching
the database; a broken cache degrades to database reads instead of failing.
*/
func TestService_List(t *testing.T) {
	seeded := []category.Category{
		{ID: "1", Name: "Art"},
		{ID: "2", Name: "Tech"},
		{ID: "3", Name: "Science"},
	}

	t.Run("cold_cache_warms", func(t *testing.T) {
		repo := &fakeRepository{categories: seeded}
		cache := &fakeCache{}
		service := category.NewService(repo, cache, testLogger())

		got, err := service.List(t.Context())
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, 1, repo.listCalls)
		assert.True(t, cache.populated)

		// Second read is served from cache.
		_, err = service.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, repo.listCalls)
	})

	t.Run("unhealthy_cache_degrades_to_db", func(t *testing.T) {
		repo := &fakeRepository{categories: seeded}
		cache := &fakeCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
		service := category.NewService(repo, cache, testLogger())

		got, err := service.List(t.Context())
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, 1, repo.listCalls)
	})
}

/*
TestService_Create verifies that creating a category persists it with a
generated identifier and drops the cached list so the next read sees it.
*/
func TestService_Create(t *testing.T) {
	repo := &fakeRepository{}
	cache := &fakeCache{entries: []category.Category{{Name: "Art"}}, populated: true}
	service := category.NewService(repo, cache, testLogger())

	created, err := service.Create(t.Context(), "History")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "History", created.Name)

	assert.Equal(t, 1, cache.invalidated)
	assert.False(t, cache.populated)
}

/*
TestService_Create_RepositoryError verifies storage failures propagate and
leave the cache untouched.
*/
func TestService_Create_RepositoryError(t *testing.T) {
	repo := &fakeRepository{createErr: apperr.Conflict("Category already exists")}
	cache := &fakeCache{populated: true}
	service := category.NewService(repo, cache, testLogger())

	_, err := service.Create(t.Context(), "Art")
	require.Error(t, err)
	assert.Equal(t, 0, cache.invalidated)
	assert.True(t, cache.populated)
}
