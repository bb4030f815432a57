package consumer

import (
	"context"
	"testing"
	"time"

	"pharma-search-srv/internal/analytics"
	"pharma-search-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Record(ctx context.Context, input analytics.RecordInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *mockUseCase) ListPopular(ctx context.Context, input analytics.ListPopularInput) (analytics.ListPopularOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(analytics.ListPopularOutput), args.Error(1)
}

func newConsumer(uc analytics.UseCase) *consumer {
	return &consumer{l: log.NewNop(), uc: uc}
}

func TestHandleSearchPerformedMessage(t *testing.T) {
	created := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	tcs := map[string]struct {
		value   string
		setup   func(m *mockUseCase)
		wantErr bool
	}{
		"recorded": {
			value: `{"search_id":"s1","query":"pfizer","intent":"search","total_found":3,"confidence":0.5,"created_at":"2026-10-16T09:00:00Z"}`,
			setup: func(m *mockUseCase) {
				m.On("Record", mock.Anything, analytics.RecordInput{
					SearchID: "s1", Query: "pfizer", Intent: "search", TotalFound: 3, Confidence: 0.5, CreatedAt: created,
				}).Return(nil)
			},
		},
		"poison json skipped": {
			value: `{not json`,
		},
		"invalid event skipped": {
			value: `{"query":"pfizer"}`,
			setup: func(m *mockUseCase) {
				m.On("Record", mock.Anything, mock.Anything).Return(analytics.ErrInvalidEvent)
			},
		},
		"store failure returned": {
			value: `{"search_id":"s1","query":"pfizer"}`,
			setup: func(m *mockUseCase) {
				m.On("Record", mock.Anything, mock.Anything).Return(analytics.ErrStoreFailed)
			},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tc.setup != nil {
				tc.setup(uc)
			}

			err := newConsumer(uc).handleSearchPerformedMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(tc.value)})

			if tc.wantErr {
				assert.ErrorIs(t, err, analytics.ErrStoreFailed)
			} else {
				assert.NoError(t, err)
			}
			uc.AssertExpectations(t)
		})
	}
}
