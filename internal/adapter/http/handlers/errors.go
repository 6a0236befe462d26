package handlers

import (
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidItemID  = pkg.NewDomainErrorSimple("INVALID_GIFT_ITEM_ID", "Invalid gift item id", http.StatusBadRequest)
)

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// abortWithError writes the public part of appErr. Server errors keep their
// cause in the log only.
func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.Log.WithFields(logrus.Fields{
			"code":   appErr.Code,
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Errorf("[http][handler] request failed err=%v", appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
