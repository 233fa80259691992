package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"letter-backend/internal/account"
	googleauth "letter-backend/internal/auth"
	"letter-backend/internal/credits"
	"letter-backend/internal/documents"
	"letter-backend/internal/letters"
	"letter-backend/internal/shared/config"
	"letter-backend/internal/shared/server/middleware"
	"letter-backend/internal/shared/server/respond"
	"letter-backend/internal/tasks"
	"letter-backend/internal/uploads"
	"letter-backend/internal/users"
)

// RouterDeps carries the constructed handlers wired into the engine.
type RouterDeps struct {
	Config          config.Config
	AccountHandler  *account.Handler
	CreditHandler   *credits.Handler
	DocumentHandler *documents.Handler
	LetterHandler   *letters.Handler
	TaskHandler     *tasks.Handler
	UserHandler     *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

const rateLimitGroupGenerate = "GENERATE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupGenerate: {Rate: 0.5, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/letters/generate") {
					return rateLimitGroupGenerate
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.LetterHandler != nil {
		deps.LetterHandler.RegisterRoutes(api)
	}
	if deps.CreditHandler != nil {
		deps.CreditHandler.RegisterRoutes(api)
	}
	if deps.TaskHandler != nil {
		deps.TaskHandler.RegisterRoutes(api)
	}
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(api)
	}
	uploads.RegisterRoutes(api)

	if deps.Config.Env == "dev" || deps.Config.Env == "local" {
		dev := api.Group("/dev")
		if deps.CreditHandler != nil {
			deps.CreditHandler.RegisterDevRoutes(dev)
		}
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
