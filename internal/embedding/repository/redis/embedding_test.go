package redis

import (
	"context"
	"testing"
	"time"

	"pharma-search-srv/internal/embedding/repository"
	"pharma-search-srv/pkg/log"
	pkgRedis "pharma-search-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, ttl time.Duration) (repository.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return New(pkgRedis.NewFromClient(client), ttl, log.NewNop()), mr
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t, 0)

	vec := []float32{0.1, -0.2, 0.3}
	require.NoError(t, repo.Save(ctx, repository.SaveOptions{Model: "voyage-3", TextHash: "abc", Vector: vec}))

	got, err := repo.Get(ctx, repository.GetOptions{Model: "voyage-3", TextHash: "abc"})
	require.NoError(t, err)
	assert.Equal(t, vec, got)

	assert.Equal(t, DefaultTTL, mr.TTL("embedding:voyage-3:abc"))
}

func TestGetIsScopedByModel(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t, 0)

	require.NoError(t, repo.Save(ctx, repository.SaveOptions{Model: "voyage-3", TextHash: "abc", Vector: []float32{1}}))

	got, err := repo.Get(ctx, repository.GetOptions{Model: "voyage-3-large", TextHash: "abc"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetMiss(t *testing.T) {
	repo, _ := newTestRepo(t, 0)

	got, err := repo.Get(context.Background(), repository.GetOptions{Model: "m", TextHash: "missing"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetCorruptEntry(t *testing.T) {
	repo, mr := newTestRepo(t, 0)
	require.NoError(t, mr.Set("embedding:m:bad", "abc"))

	got, err := repo.Get(context.Background(), repository.GetOptions{Model: "m", TextHash: "bad"})
	assert.ErrorIs(t, err, errCorruptVector)
	assert.Nil(t, got)
}

func TestSaveConfiguredTTL(t *testing.T) {
	repo, mr := newTestRepo(t, time.Minute)

	require.NoError(t, repo.Save(context.Background(), repository.SaveOptions{Model: "m", TextHash: "k", Vector: []float32{1}}))
	assert.Equal(t, time.Minute, mr.TTL("embedding:m:k"))
}
