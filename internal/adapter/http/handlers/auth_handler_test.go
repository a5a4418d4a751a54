package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/adapter/http/handlers/mocks"
	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
	"github.com/Pivvot-Consulting/billing-form/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleSession() entities.OperatorSession {
	return entities.OperatorSession{
		Operator: entities.Operator{
			ID:     "op-1",
			Email:  "ana@pivvot.co",
			Name:   "Ana",
			Active: true,
		},
		AccessToken:  "access-token-1",
		RefreshToken: "refresh-token-1",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "ana@pivvot.co", "secret123").Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
			bytes.NewBufferString(`{"correo":"ana@pivvot.co","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["access_token"] != "access-token-1" || body["refresh_token"] != "refresh-token-1" {
			t.Fatalf("tokens missing from response: %v", body)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
			bytes.NewBufferString(`{"correo":"ana@pivvot.co"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "ana@pivvot.co", "nope").Return(
			entities.OperatorSession{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
			bytes.NewBufferString(`{"correo":"ana@pivvot.co","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "AUTH_ERROR" {
			t.Fatalf("unexpected error code %q", body.Code)
		}
	})

	t.Run("inactive operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "ana@pivvot.co", "secret123").Return(
			entities.OperatorSession{}, usecase.ErrOperatorInactive)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
			bytes.NewBufferString(`{"correo":"ana@pivvot.co","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestAuthHandler_CurrentSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bearer header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/session", h.CurrentSession)

		uc.EXPECT().CurrentSession(gomock.Any(), "access-token-1").Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
		req.Header.Set("Authorization", "Bearer access-token-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("query fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/session", h.CurrentSession)

		uc.EXPECT().CurrentSession(gomock.Any(), "access-token-1").Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/session?access_token=access-token-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/session", h.CurrentSession)

		uc.EXPECT().CurrentSession(gomock.Any(), "stale").Return(
			entities.OperatorSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
		req.Header.Set("Authorization", "Bearer stale")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/logout", h.Logout)

	uc.EXPECT().Logout(gomock.Any(), "access-token-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer access-token-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestAuthHandler_RefreshSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rotates tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/refresh", h.RefreshSession)

		rotated := sampleSession()
		rotated.AccessToken = "access-token-2"
		rotated.RefreshToken = "refresh-token-2"
		uc.EXPECT().RefreshSession(gomock.Any(), "refresh-token-1").Return(rotated, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh",
			bytes.NewBufferString(`{"refresh_token":"refresh-token-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["access_token"] != "access-token-2" {
			t.Fatalf("expected rotated access token, got %v", body)
		}
	})

	t.Run("unknown refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/refresh", h.RefreshSession)

		uc.EXPECT().RefreshSession(gomock.Any(), "bogus").Return(
			entities.OperatorSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh",
			bytes.NewBufferString(`{"refresh_token":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
