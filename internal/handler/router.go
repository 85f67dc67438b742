package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gig-negotiation/internal/handler/api"
	"gig-negotiation/internal/handler/middleware"
	"gig-negotiation/internal/pkg/config"
	"gig-negotiation/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	orderRequestHandler *api.OrderRequestHandler,
	notificationHandler *api.NotificationHandler,
	sweepHandler *api.SweepHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, orderRequestHandler, notificationHandler, sweepHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderRequestHandler *api.OrderRequestHandler,
	notificationHandler *api.NotificationHandler,
	sweepHandler *api.SweepHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/order-requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: orderRequestHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: orderRequestHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: orderRequestHandler.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: orderRequestHandler.Accept},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: orderRequestHandler.Decline},
				{Method: http.MethodPost, Path: "/:id/counter", Handler: orderRequestHandler.Counter},
				{Method: http.MethodPost, Path: "/:id/fulfill", Handler: orderRequestHandler.Fulfill,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleEscrow)}},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.List},
				{Method: http.MethodPost, Path: "/:id/read", Handler: notificationHandler.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: notificationHandler.MarkAllRead},
			})
		}

		internal := apiGroup.Group("/internal")
		internal.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RoleEscrow))
		{
			addRoutes(internal, []route{
				{Method: http.MethodPost, Path: "/sweep", Handler: sweepHandler.TriggerSweep},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
