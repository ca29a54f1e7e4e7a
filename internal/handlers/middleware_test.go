package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mtw/paperstore/internal/utils/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdminAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	token, err := jwtManager.Generate()
	require.NoError(t, err)

	middleware := AdminAuthMiddleware(jwtManager)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		otherToken, err := jwt.NewManager("other-secret", time.Hour).Generate()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+otherToken)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCartTokenMiddleware(t *testing.T) {
	middleware := CartTokenMiddleware()

	t.Run("Issues new token", func(t *testing.T) {
		var gotCartID string
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID, ok := GetCartID(r.Context())
			require.True(t, ok)
			gotCartID = cartID
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		issued := w.Header().Get(CartTokenHeader)
		assert.Equal(t, issued, gotCartID)
		_, err := uuid.Parse(issued)
		assert.NoError(t, err)
	})

	t.Run("Echoes existing token", func(t *testing.T) {
		token := uuid.New().String()
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID, ok := GetCartID(r.Context())
			require.True(t, ok)
			assert.Equal(t, token, cartID)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set(CartTokenHeader, token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, token, w.Header().Get(CartTokenHeader))
	})

	t.Run("Replaces invalid token", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set(CartTokenHeader, "not-a-uuid")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		issued := w.Header().Get(CartTokenHeader)
		assert.NotEqual(t, "not-a-uuid", issued)
		_, err := uuid.Parse(issued)
		assert.NoError(t, err)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middleware := RequestIDMiddleware()
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(RequestIDKey).(string)
		assert.True(t, ok)
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRecoveryMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	middleware := RecoveryMiddleware(logger)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetCartID(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), CartIDKey, "cart-1")
		cartID, ok := GetCartID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "cart-1", cartID)
	})

	t.Run("Missing", func(t *testing.T) {
		_, ok := GetCartID(context.Background())
		assert.False(t, ok)
	})
}
