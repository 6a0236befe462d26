package routes

import (
	"lista_presentes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProdutos         = "/produtos"
	PathListaDePresentes = "/lista_de_presentes"
	PathLogin            = "/login"
	PathLogout           = "/logout"
	PathSendEmail        = "/send-email"
)

func addGiftItemRoutes(rg *gin.RouterGroup, h *handlers.GiftItemHandler, guards ...gin.HandlerFunc) {
	// Both prefixes expose the same item routes.
	for _, prefix := range []string{PathProdutos, PathListaDePresentes} {
		items := rg.Group(prefix, guards...)
		{
			items.GET("", h.ListGiftItems)
			items.POST("", h.CreateGiftItem)
			items.GET("/:id", h.GetGiftItem)
			items.PUT("/:id", h.UpdateGiftItem)
			items.DELETE("/:id", h.DeleteGiftItem)
		}
	}
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, bearer gin.HandlerFunc) {
	rg.POST(PathLogin, h.Login)
	rg.POST(PathLogout, bearer, h.Logout)
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler, bearer gin.HandlerFunc) {
	rg.POST(PathSendEmail, bearer, h.SendEmail)
}
