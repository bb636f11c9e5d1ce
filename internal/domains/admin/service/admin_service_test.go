package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualbiblio-backend/internal/domains/admin/model"
)

type fakeRepo struct {
	stats *model.DashboardStats
	calls int
}

func (f *fakeRepo) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	f.calls++
	return f.stats, nil
}

// memoryCache is a map-backed cache.Cache for tests.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (m *memoryCache) Ping(ctx context.Context) error                          { return nil }

func TestDashboardStatsIsCached(t *testing.T) {
	repo := &fakeRepo{stats: &model.DashboardStats{TotalBooks: 42, TotalUsers: 7}}
	svc := NewAdminService(repo, newMemoryCache())

	first, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, first.TotalBooks)

	second, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, second.TotalBooks)
	assert.Equal(t, 1, repo.calls, "second read comes from the cache")
}
