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

func operatorContext(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetOperator(c, entities.Operator{ID: "op-1"})
		h(c)
	}
}

func freshCode(id int64) entities.OperatorCode {
	now := time.Now().UTC()
	return entities.OperatorCode{
		ID:         id,
		OperatorID: "op-1",
		Code:       "4321",
		CreatedAt:  now,
		ExpiresAt:  now.Add(30 * time.Minute),
	}
}

func TestOperatorCodeHandler_GenerateCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults on empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/operator/codes", operatorContext(h.GenerateCode))

		uc.EXPECT().GenerateCode(gomock.Any(), "op-1", 0, 0).Return(freshCode(1), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/operator/codes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("custom parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/operator/codes", operatorContext(h.GenerateCode))

		uc.EXPECT().GenerateCode(gomock.Any(), "op-1", 6, 10).Return(freshCode(2), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/operator/codes",
			bytes.NewBufferString(`{"length":6,"expiration_minutes":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid length maps to GENERATION_ERROR", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/operator/codes", operatorContext(h.GenerateCode))

		uc.EXPECT().GenerateCode(gomock.Any(), "op-1", 2, 0).Return(
			entities.OperatorCode{}, usecase.ErrInvalidCodeLength)

		req := httptest.NewRequest(http.MethodPost, "/v1/operator/codes",
			bytes.NewBufferString(`{"length":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "GENERATION_ERROR" {
			t.Fatalf("expected GENERATION_ERROR, got %q", body.Code)
		}
	})

	t.Run("negative expiration maps to GENERATION_ERROR", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/operator/codes", operatorContext(h.GenerateCode))

		uc.EXPECT().GenerateCode(gomock.Any(), "op-1", 4, -5).Return(
			entities.OperatorCode{}, usecase.ErrInvalidCodeExpiration)

		req := httptest.NewRequest(http.MethodPost, "/v1/operator/codes",
			bytes.NewBufferString(`{"length":4,"expiration_minutes":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusBadRequest || body.Code != "GENERATION_ERROR" {
			t.Fatalf("expected 400 GENERATION_ERROR, got %d %q", w.Code, body.Code)
		}
	})
}

func TestOperatorCodeHandler_GetActiveCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
	h := NewOperatorCodeHandler(uc)

	r := gin.New()
	r.GET("/v1/operator/codes/active", operatorContext(h.GetActiveCode))

	uc.EXPECT().GetOrCreateActiveCode(gomock.Any(), "op-1").Return(freshCode(3), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/operator/codes/active", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["codigo"] != "4321" {
		t.Fatalf("expected codigo 4321, got %v", body["codigo"])
	}
	if _, ok := body["minutos_restantes"]; !ok {
		t.Fatalf("expected derived minutos_restantes field, got %v", body)
	}
}

func TestOperatorCodeHandler_InvalidateCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.DELETE("/v1/operator/codes/:id", operatorContext(h.InvalidateCode))

		uc.EXPECT().InvalidateCode(gomock.Any(), "op-1", int64(7)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/operator/codes/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.DELETE("/v1/operator/codes/:id", operatorContext(h.InvalidateCode))

		req := httptest.NewRequest(http.MethodDelete, "/v1/operator/codes/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.DELETE("/v1/operator/codes/:id", operatorContext(h.InvalidateCode))

		uc.EXPECT().InvalidateCode(gomock.Any(), "op-1", int64(99)).Return(usecase.ErrCodeNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/operator/codes/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOperatorCodeHandler_ValidateCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/codes/validate", h.ValidateCode)

		uc.EXPECT().ValidateCode(gomock.Any(), "4321").Return(true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/codes/validate",
			bytes.NewBufferString(`{"codigo":" 4321 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["valido"] != true {
			t.Fatalf("expected valido=true, got %v", body)
		}
		if len(body) != 1 {
			t.Fatalf("validation must not leak extra fields, got %v", body)
		}
	})

	t.Run("missing code field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperatorCodeUseCase(ctrl)
		h := NewOperatorCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/codes/validate", h.ValidateCode)

		req := httptest.NewRequest(http.MethodPost, "/v1/codes/validate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
