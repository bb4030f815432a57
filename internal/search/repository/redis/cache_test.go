package redis

import (
	"context"
	"testing"
	"time"

	"pharma-search-srv/internal/search/repository"
	"pharma-search-srv/pkg/log"
	pkgRedis "pharma-search-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (repository.CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return New(pkgRedis.NewFromClient(client), log.NewNop()), mr
}

func TestSearchResultsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	require.NoError(t, repo.SaveSearchResults(ctx, repository.SaveSearchResultsOptions{Key: "k1", Data: []byte(`{"a":1}`)}))

	got, err := repo.GetSearchResults(ctx, repository.GetSearchResultsOptions{Key: "k1"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
	assert.Equal(t, DefaultTTL, mr.TTL(Prefix+PayloadVersion+":k1"))
}

func TestSearchResultsMiss(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.GetSearchResults(context.Background(), repository.GetSearchResultsOptions{Key: "nope"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearchResultsExpire(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	require.NoError(t, repo.SaveSearchResults(ctx, repository.SaveSearchResultsOptions{Key: "k", Data: []byte("x"), TTL: time.Minute}))
	mr.FastForward(2 * time.Minute)

	got, err := repo.GetSearchResults(ctx, repository.GetSearchResultsOptions{Key: "k"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearchResultsUnavailable(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Close()

	_, err := repo.GetSearchResults(context.Background(), repository.GetSearchResultsOptions{Key: "k"})
	assert.ErrorIs(t, err, repository.ErrCacheGetFailed)
}
