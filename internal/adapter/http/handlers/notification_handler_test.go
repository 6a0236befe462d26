package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lista_presentes/internal/adapter/http/handlers/mocks"
	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_SendEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := gin.New()
		r.POST("/send-email", NewNotificationHandler(uc).SendEmail)

		w := serve(r, http.MethodPost, "/send-email", `{"nome_usuario":"Ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank fields rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := gin.New()
		r.POST("/send-email", NewNotificationHandler(uc).SendEmail)

		uc.EXPECT().SendPurchaseConfirmation(gomock.Any(), entities.PurchaseConfirmation{UserName: " ", ProductName: "Panela"}).
			Return(usecase.ErrInvalidConfirmation)

		w := serve(r, http.MethodPost, "/send-email", `{"nome_usuario":" ","nome_produto":"Panela"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := gin.New()
		r.POST("/send-email", NewNotificationHandler(uc).SendEmail)

		uc.EXPECT().SendPurchaseConfirmation(gomock.Any(), entities.PurchaseConfirmation{UserName: "Ana", ProductName: "Panela"}).Return(nil)

		w := serve(r, http.MethodPost, "/send-email", `{"nome_usuario":"Ana","nome_produto":"Panela"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("smtp failure is generic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := gin.New()
		r.POST("/send-email", NewNotificationHandler(uc).SendEmail)

		uc.EXPECT().SendPurchaseConfirmation(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("smtp send: %w", errors.New("535 authentication failed")))

		w := serve(r, http.MethodPost, "/send-email", `{"nome_usuario":"Ana","nome_produto":"Panela"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("535")) {
			t.Fatalf("smtp detail leaked: %s", w.Body.String())
		}
		if body := decodeError(t, w); body["code"] != "EMAIL_SEND_FAILED" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
