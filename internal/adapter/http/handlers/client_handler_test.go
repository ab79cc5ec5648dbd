package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"barbearia_matheus/internal/adapter/http/handlers/mocks"
	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid cpf maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/", h.Register)

		uc.EXPECT().Register(gomock.Any(), "Ana", "123", "81999990000", "").Return(entities.Client{}, usecase.ErrInvalidCPF)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/", bytes.NewBufferString(`{"name":"Ana","cpf":"123","phone":"81999990000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate cpf maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/", h.Register)

		uc.EXPECT().Register(gomock.Any(), "Ana", "111.444.777-35", "81999990000", "").Return(entities.Client{}, usecase.ErrClientAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/", bytes.NewBufferString(`{"name":"Ana","cpf":"111.444.777-35","phone":"81999990000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/", h.Register)

		uc.EXPECT().Register(gomock.Any(), "Ana", "111.444.777-35", "(81) 99999-0000", "ana@example.com").Return(
			entities.Client{ID: "c-1", Name: "Ana", CPF: "11144477735", Phone: "81999990000", Status: entities.ClientStatusActive}, nil)

		body := `{"name":"Ana","cpf":"111.444.777-35","phone":"(81) 99999-0000","email":"ana@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/clients/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestClientHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.GET("/v1/clients/", h.List)

	uc.EXPECT().ListByStatus(gomock.Any(), "inactive").Return([]entities.Client{
		{ID: "c-1", Name: "Ana", Status: entities.ClientStatusInactive},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/clients/?status=inactive", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 1 || body[0].Status != "inactive" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestClientHandler_AutoInactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.POST("/v1/clients/auto-inactivate", h.AutoInactivate)

	uc.EXPECT().AutoInactivate(gomock.Any()).Return(3, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/clients/auto-inactivate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Inactivated int `json:"inactivated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Inactivated != 3 {
		t.Fatalf("expected 3, got %d", body.Inactivated)
	}
}

func TestClientHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "c-9").Return(usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
