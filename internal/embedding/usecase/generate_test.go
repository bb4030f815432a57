package usecase

import (
	"context"
	"errors"
	"testing"

	"pharma-search-srv/internal/embedding"
	"pharma-search-srv/internal/embedding/repository"
	"pharma-search-srv/internal/model"
	"pharma-search-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Get(ctx context.Context, opt repository.GetOptions) ([]float32, error) {
	args := m.Called(ctx, opt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *mockRepo) Save(ctx context.Context, opt repository.SaveOptions) error {
	return m.Called(ctx, opt).Error(0)
}

type mockVoyage struct {
	mock.Mock
}

func (m *mockVoyage) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips voyage", func(t *testing.T) {
		repo, v := new(mockRepo), new(mockVoyage)
		repo.On("Get", mock.Anything, mock.Anything).Return([]float32{0.5}, nil)

		out, err := New(repo, v, 0, log.NewNop()).Generate(ctx, embedding.GenerateInput{Text: "pfizer oncology"})
		require.NoError(t, err)
		assert.True(t, out.CacheHit)
		assert.Equal(t, []float32{0.5}, out.Vector)
		v.AssertNotCalled(t, "Embed", mock.Anything, mock.Anything)
	})

	t.Run("miss embeds normalized text and caches", func(t *testing.T) {
		repo, v := new(mockRepo), new(mockVoyage)
		repo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		v.On("Embed", mock.Anything, []string{"pfizer oncology"}).Return([][]float32{{0.1, 0.2}}, nil)

		out, err := New(repo, v, 0, log.NewNop()).Generate(ctx, embedding.GenerateInput{Text: "  pfizer   oncology "})
		require.NoError(t, err)
		assert.False(t, out.CacheHit)
		assert.Equal(t, []float32{0.1, 0.2}, out.Vector)
		repo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("voyage failure is upstream unavailable", func(t *testing.T) {
		repo, v := new(mockRepo), new(mockVoyage)
		repo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		v.On("Embed", mock.Anything, mock.Anything).Return(nil, errors.New("503"))

		_, err := New(repo, v, 0, log.NewNop()).Generate(ctx, embedding.GenerateInput{Text: "q"})
		assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
	})

	t.Run("cache save failure still returns vector", func(t *testing.T) {
		repo, v := new(mockRepo), new(mockVoyage)
		repo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("redis down"))
		v.On("Embed", mock.Anything, mock.Anything).Return([][]float32{{1}}, nil)

		out, err := New(repo, v, 0, log.NewNop()).Generate(ctx, embedding.GenerateInput{Text: "q"})
		require.NoError(t, err)
		assert.Equal(t, []float32{1}, out.Vector)
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := New(new(mockRepo), new(mockVoyage), 0, log.NewNop()).Generate(ctx, embedding.GenerateInput{Text: "  "})
		assert.ErrorIs(t, err, embedding.ErrEmptyText)
	})
}
