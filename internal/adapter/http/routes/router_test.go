package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lista_presentes/internal/adapter/http/handlers"
	"lista_presentes/internal/adapter/http/handlers/mocks"
	"lista_presentes/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	auth         *mocks.MockIAuthUseCase
	items        *mocks.MockIGiftItemUseCase
	notification *mocks.MockINotificationUseCase
	router       *gin.Engine
}

func newRouterFixture(t *testing.T, opts Options, withEmail bool) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := routerFixture{
		auth:         mocks.NewMockIAuthUseCase(ctrl),
		items:        mocks.NewMockIGiftItemUseCase(ctrl),
		notification: mocks.NewMockINotificationUseCase(ctrl),
	}
	h := Handlers{
		Auth:     handlers.NewAuthHandler(f.auth),
		GiftItem: handlers.NewGiftItemHandler(f.items),
	}
	if withEmail {
		h.Notification = handlers.NewNotificationHandler(f.notification)
	}
	f.router = NewRouter(opts, f.auth, h)
	return f
}

func (f routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	f := newRouterFixture(t, Options{AuthRequired: true, AllowedOrigin: "*"}, false)

	w := f.do(http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_ItemsRequireBearerWhenAuthRequired(t *testing.T) {
	f := newRouterFixture(t, Options{AuthRequired: true, AllowedOrigin: "*"}, false)

	for _, path := range []string{"/produtos", "/lista_de_presentes", "/produtos/1"} {
		w := f.do(http.MethodGet, path, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}

	f.auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.TokenClaims{ID: "j", Subject: "admin"}, nil).Times(2)
	f.items.EXPECT().List(gomock.Any()).Return([]entities.GiftItem{}, nil).Times(2)

	for _, path := range []string{"/produtos", "/lista_de_presentes"} {
		w := f.do(http.MethodGet, path, "tok")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestRouter_ItemsOpenWhenAuthDisabled(t *testing.T) {
	f := newRouterFixture(t, Options{AuthRequired: false, AllowedOrigin: "*"}, false)

	f.items.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)

	w := f.do(http.MethodDelete, "/lista_de_presentes/9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_SendEmailMountedOnlyWhenEnabled(t *testing.T) {
	disabled := newRouterFixture(t, Options{AuthRequired: true, AllowedOrigin: "*"}, false)
	if w := disabled.do(http.MethodPost, "/send-email", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", w.Code)
	}

	enabled := newRouterFixture(t, Options{AuthRequired: false, AllowedOrigin: "*"}, true)
	if w := enabled.do(http.MethodPost, "/send-email", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestRouter_LogoutRequiresBearer(t *testing.T) {
	f := newRouterFixture(t, Options{AuthRequired: false, AllowedOrigin: "*"}, false)

	if w := f.do(http.MethodPost, "/logout", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	f.auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.TokenClaims{ID: "j", Subject: "admin"}, nil)
	f.auth.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

	if w := f.do(http.MethodPost, "/logout", "tok"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_CORS(t *testing.T) {
	f := newRouterFixture(t, Options{AuthRequired: true, AllowedOrigin: "https://lista.example.com"}, false)

	req := httptest.NewRequest(http.MethodOptions, "/produtos", nil)
	req.Header.Set("Origin", "https://lista.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://lista.example.com" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}

func TestCorsConfig(t *testing.T) {
	if cfg := corsConfig("*"); !cfg.AllowAllOrigins {
		t.Fatalf("expected all origins allowed")
	}
	cfg := corsConfig(" https://a.example, https://b.example ")
	if cfg.AllowAllOrigins || len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
