package middleware

import (
	"errors"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/usecase"
	"lista_presentes/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeySubject = "auth_subject"
	ContextKeyToken   = "auth_token"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errAuthFailure  = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// BearerAuth rejects requests without a valid, unrevoked access token.
// On success the token subject and the raw token are stored in the context.
func BearerAuth(uc usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := uc.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidToken) || errors.Is(err, usecase.ErrRevokedToken) {
				c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
				return
			}
			logging.Log.Errorf("[auth][middleware] token check failed err=%v", err)
			c.AbortWithStatusJSON(errAuthFailure.HTTPStatus, errAuthFailure.ToHTTPError())
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyToken, token)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
