package handlers

import (
	"errors"
	request "lista_presentes/internal/adapter/http/dto/request"
	response "lista_presentes/internal/adapter/http/dto/response"
	"lista_presentes/internal/adapter/http/middleware"
	"lista_presentes/internal/usecase"
	"lista_presentes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Credenciais inválidas", http.StatusUnauthorized)

// AuthHandler handles login and logout.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Exchange the configured credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body     request.LoginRequest true "Credentials"
// @Success  200  {object} response.LoginResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  401  {object} pkg.HTTPError
// @Router   /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		abortWithError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAccessToken(token))
}

// Logout godoc
// @Summary  Revoke the presented bearer token
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.MessageResponse
// @Failure  401 {object} pkg.HTTPError
// @Security Bearer
// @Router   /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextKeyToken)
	if err := h.usecase.Logout(c.Request.Context(), token); err != nil {
		abortWithError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout realizado com sucesso"})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrRevokedToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}
