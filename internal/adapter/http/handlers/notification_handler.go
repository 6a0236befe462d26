package handlers

import (
	"errors"
	request "lista_presentes/internal/adapter/http/dto/request"
	response "lista_presentes/internal/adapter/http/dto/response"
	"lista_presentes/internal/usecase"
	"lista_presentes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidConfirmation = pkg.NewDomainErrorSimple("INVALID_EMAIL_REQUEST", "nome_usuario e nome_produto são obrigatórios", http.StatusBadRequest)

// NotificationHandler handles the purchase confirmation email.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendEmail godoc
// @Summary  Email the registry owner that a gift was bought
// @Tags     email
// @Accept   json
// @Produce  json
// @Param    body body     request.PurchaseConfirmationRequest true "Confirmation"
// @Success  200  {object} response.MessageResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  500  {object} pkg.HTTPError
// @Security Bearer
// @Router   /send-email [post]
func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var payload request.PurchaseConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidConfirmation)
		return
	}

	if err := h.usecase.SendPurchaseConfirmation(c.Request.Context(), payload.ToPurchaseConfirmation()); err != nil {
		abortWithError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Email enviado com sucesso"})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfirmation):
		return errInvalidConfirmation
	case errors.Is(err, usecase.ErrNotifierNotConfigured):
		return pkg.NewDomainError("EMAIL_NOT_CONFIGURED", "Email notifications are not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("EMAIL_SEND_FAILED", "Failed to send email", err, http.StatusInternalServerError)
	}
}
