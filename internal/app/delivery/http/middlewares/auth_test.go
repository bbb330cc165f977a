package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionService struct {
	sessions map[string]string
}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	return "", nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, ok := s.sessions[sessionID]
	if !ok {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	const jwtSecret = "test-secret"

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret, ExpTimeInHour: 1},
	}
	sessionService := &stubSessionService{sessions: map[string]string{
		"sess-1": `{"session_id":"sess-1","user_id":"pat-1","name":"Alice","role":"patient"}`,
	}}
	m := New(zap.NewNop(), sessionService, internalConfig)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		assert.True(t, ok)
		assert.Contains(t, sessionData, "pat-1")
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid bearer token passes through with session data", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", jwtSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(nextHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing authorization header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		rr := httptest.NewRecorder()

		m.Authenticate(nextHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("non-bearer authorization header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abc")
		rr := httptest.NewRecorder()

		m.Authenticate(nextHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		m.Authenticate(nextHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(nextHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token for an expired session is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-gone", jwtSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(nextHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := New(zap.NewNop(), nil, &config.InternalConfig{})

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps the client supplied id", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
	})
}
