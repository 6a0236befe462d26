package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lista_presentes/internal/adapter/http/handlers/mocks"
	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase"
	mock_interfaces "lista_presentes/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newGiftItemRouter(h *GiftItemHandler) *gin.Engine {
	r := gin.New()
	r.GET("/produtos", h.ListGiftItems)
	r.GET("/produtos/:id", h.GetGiftItem)
	r.POST("/produtos", h.CreateGiftItem)
	r.PUT("/produtos/:id", h.UpdateGiftItem)
	r.DELETE("/produtos/:id", h.DeleteGiftItem)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestGiftItemHandler_ListGiftItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		cat := "Cozinha"
		uc.EXPECT().List(gomock.Any()).Return([]entities.GiftItem{
			{ID: 1, Category: &cat, Name: "Panela", Description: "Panela de pressão", Price: 150, PurchaseLink: "http://x"},
			{ID: 2, Name: "Toalha", Description: "Jogo de toalhas", Price: 80.5, PurchaseLink: "http://y", Purchased: true},
		}, nil)

		w := serve(r, http.MethodGet, "/produtos", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got))
		}
		if got[1]["categoria"] != nil {
			t.Fatalf("expected null categoria, got %v", got[1]["categoria"])
		}
		if got[1]["comprado"] != true {
			t.Fatalf("expected comprado true, got %v", got[1]["comprado"])
		}
	})

	t.Run("empty list renders array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := serve(r, http.MethodGet, "/produtos", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("store failure hides detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("pq: connection refused"))

		w := serve(r, http.MethodGet, "/produtos", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body["code"] != "INTERNAL_ERROR" || body["message"] != "An internal error occurred" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestGiftItemHandler_GetGiftItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		for _, id := range []string{"abc", "-3", "1.5"} {
			w := serve(r, http.MethodGet, "/produtos/"+id, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("id %q: expected 400, got %d", id, w.Code)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.GiftItem{}, usecase.ErrGiftItemNotFound)

		w := serve(r, http.MethodGet, "/produtos/42", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(entities.GiftItem{ID: 1, Name: "Panela", Description: "Panela de pressão", Price: 150, PurchaseLink: "http://x"}, nil)

		w := serve(r, http.MethodGet, "/produtos/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["id"] != float64(1) || got["nome"] != "Panela" || got["valor"] != float64(150) || got["comprado"] != false {
			t.Fatalf("unexpected body: %v", got)
		}
		if v, ok := got["categoria"]; !ok || v != nil {
			t.Fatalf("expected categoria null, got %v", got)
		}
	})
}

func TestGiftItemHandler_CreateGiftItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		w := serve(r, http.MethodPost, "/produtos", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		w := serve(r, http.MethodPost, "/produtos", `{"nome":"Panela","descricao":"Panela de pressão","link_compra":"http://x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body["code"] != "MISSING_REQUIRED_FIELDS" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item entities.GiftItem) (entities.GiftItem, error) {
			if item.ID != 1 || item.Name != "Panela" || item.Price != 150 || item.Category != nil {
				t.Fatalf("unexpected item: %+v", item)
			}
			return item, nil
		})

		w := serve(r, http.MethodPost, "/produtos", `{"id":1,"nome":"Panela","descricao":"Panela de pressão","valor":150.0,"link_compra":"http://x"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.String() != msgGiftItemCreated {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GiftItem{}, usecase.ErrInvalidGiftItemPrice)

		w := serve(r, http.MethodPost, "/produtos", `{"nome":"Panela","descricao":"d","valor":-1,"link_compra":"http://x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GiftItem{}, errors.New("duplicate key value violates unique constraint"))

		w := serve(r, http.MethodPost, "/produtos", `{"id":1,"nome":"Panela","descricao":"d","valor":1,"link_compra":"http://x"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("duplicate")) {
			t.Fatalf("driver detail leaked: %s", w.Body.String())
		}
	})
}

func TestGiftItemHandler_UpdateGiftItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		body string
	}{
		{name: "missing flag", body: `{}`},
		{name: "non boolean flag", body: `{"comprado":"sim"}`},
		{name: "invalid json", body: `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIGiftItemUseCase(ctrl)
			r := newGiftItemRouter(NewGiftItemHandler(uc))

			w := serve(r, http.MethodPut, "/produtos/1", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().UpdatePurchased(gomock.Any(), int64(7), true).Return(nil)

		w := serve(r, http.MethodPut, "/produtos/7", `{"comprado":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["message"] != msgGiftItemUpdated {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().UpdatePurchased(gomock.Any(), int64(7), false).Return(errors.New("boom"))

		w := serve(r, http.MethodPut, "/produtos/7", `{"comprado":false}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestGiftItemHandler_DeleteGiftItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		w := serve(r, http.MethodDelete, "/produtos/3", "")
		if w.Code != http.StatusOK || w.Body.String() != msgGiftItemDeleted {
			t.Fatalf("expected 200 %q, got %d %q", msgGiftItemDeleted, w.Code, w.Body.String())
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGiftItemUseCase(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(uc))

		w := serve(r, http.MethodDelete, "/produtos/x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGiftItemHandler_IDZeroBehavesAsMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIGiftItemUseCase(ctrl)
	r := newGiftItemRouter(NewGiftItemHandler(uc))

	uc.EXPECT().UpdatePurchased(gomock.Any(), int64(0), true).Return(nil)
	uc.EXPECT().Delete(gomock.Any(), int64(0)).Return(nil)
	uc.EXPECT().GetByID(gomock.Any(), int64(0)).Return(entities.GiftItem{}, usecase.ErrGiftItemNotFound)

	if w := serve(r, http.MethodPut, "/produtos/0", `{"comprado":true}`); w.Code != http.StatusOK {
		t.Fatalf("PUT: expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodDelete, "/produtos/0", ""); w.Code != http.StatusOK {
		t.Fatalf("DELETE: expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/produtos/0", ""); w.Code != http.StatusNotFound {
		t.Fatalf("GET: expected 404, got %d", w.Code)
	}
}

func TestGiftItemHandler_CreateStoresFieldsAsSent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("whitespace and empty values round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIGiftItemRepository(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(usecase.NewGiftItemUseCase(repo)))

		var stored entities.GiftItem
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item entities.GiftItem) (entities.GiftItem, error) {
			stored = item
			return item, nil
		})
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (entities.GiftItem, error) {
			return stored, nil
		})

		w := serve(r, http.MethodPost, "/produtos", `{"id":1,"categoria":" ","nome":" Panela ","descricao":"","valor":0,"link_compra":"http://x"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}

		w = serve(r, http.MethodGet, "/produtos/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["nome"] != " Panela " || got["categoria"] != " " || got["descricao"] != "" || got["valor"] != float64(0) {
			t.Fatalf("values changed on the way through: %v", got)
		}
	})

	t.Run("null required field is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIGiftItemRepository(ctrl)
		r := newGiftItemRouter(NewGiftItemHandler(usecase.NewGiftItemUseCase(repo)))

		w := serve(r, http.MethodPost, "/produtos", `{"nome":null,"descricao":"d","valor":1,"link_compra":"http://x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
