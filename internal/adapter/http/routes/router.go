package routes

import (
	"net/http"
	"strings"

	_ "lista_presentes/docs"
	"lista_presentes/internal/adapter/http/handlers"
	"lista_presentes/internal/adapter/http/middleware"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options are the capability toggles applied when building the router.
type Options struct {
	AuthRequired  bool
	AllowedOrigin string
}

// Handlers groups the HTTP handlers. Notification is nil when email
// notifications are disabled, and /send-email is then not mounted.
type Handlers struct {
	Auth         *handlers.AuthHandler
	GiftItem     *handlers.GiftItemHandler
	Notification *handlers.NotificationHandler
}

func NewRouter(opts Options, authUseCase usecase.IAuthUseCase, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	bearer := middleware.BearerAuth(authUseCase)

	addPingRoutes(&router.RouterGroup)
	addAuthRoutes(&router.RouterGroup, h.Auth, bearer)

	var itemGuards []gin.HandlerFunc
	if opts.AuthRequired {
		itemGuards = append(itemGuards, bearer)
	}
	addGiftItemRoutes(&router.RouterGroup, h.GiftItem, itemGuards...)

	if h.Notification != nil {
		addNotificationRoutes(&router.RouterGroup, h.Notification, bearer)
	}
	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(gin.LoggerWithWriter(logging.Writer()))
	router.Use(gin.CustomRecoveryWithWriter(logging.Writer(), func(c *gin.Context, recovered any) {
		logging.Log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(opts.AllowedOrigin)))
}

func corsConfig(origins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowed
	return cfg
}
