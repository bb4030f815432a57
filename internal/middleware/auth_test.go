package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharma-search-srv/pkg/log"
	"pharma-search-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockManager struct {
	mock.Mock
}

func (m *mockManager) Verify(token string) (scope.Payload, error) {
	args := m.Called(token)
	return args.Get(0).(scope.Payload), args.Error(1)
}

func newRouter(mgr scope.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(log.NewNop(), mgr).Auth())
	r.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, scope.GetScopeFromContext(c.Request.Context()).UserID)
	})
	return r
}

func TestAuth(t *testing.T) {
	tcs := map[string]struct {
		header   string
		setup    func(m *mockManager)
		wantCode int
		wantBody string
	}{
		"anonymous": {
			wantCode: http.StatusOK,
			wantBody: "",
		},
		"bearer token": {
			header: "Bearer good",
			setup: func(m *mockManager) {
				m.On("Verify", "good").Return(scope.Payload{UserID: "u1"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "u1",
		},
		"plain token": {
			header: "good",
			setup: func(m *mockManager) {
				m.On("Verify", "good").Return(scope.Payload{UserID: "u2"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "u2",
		},
		"invalid token": {
			header: "Bearer bad",
			setup: func(m *mockManager) {
				m.On("Verify", "bad").Return(scope.Payload{}, errors.New("expired"))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			mgr := new(mockManager)
			if tc.setup != nil {
				tc.setup(mgr)
			}

			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newRouter(mgr).ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
			mgr.AssertExpectations(t)
		})
	}
}

func TestAuthWithoutManager(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	w := httptest.NewRecorder()

	newRouter(nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Body.String())
}
