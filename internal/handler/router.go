package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reservation-portal/internal/handler/api"
	"reservation-portal/internal/handler/middleware"
	"reservation-portal/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	scheduleHandler *api.ScheduleHandler,
	bookingHandler *api.BookingHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg, sessionMiddleware)
	setupRoutes(engine, authHandler, scheduleHandler, bookingHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, sessionMiddleware *middleware.SessionMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(sessionMiddleware.Load())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	scheduleHandler *api.ScheduleHandler,
	bookingHandler *api.BookingHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/rooms/:roomId/login", Handler: authHandler.Login},
			})

			sessionRequired := auth.Group("")
			sessionRequired.Use(sessionMiddleware.RequireSession())
			addRoutes(sessionRequired, []route{
				{Method: http.MethodGet, Path: "/session", Handler: authHandler.Session},
				{Method: http.MethodPut, Path: "/session/room", Handler: authHandler.SelectRoom},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: scheduleHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:roomId/schedule", Handler: scheduleHandler.DaySchedule},
				{Method: http.MethodGet, Path: "/:roomId/occupancy", Handler: scheduleHandler.Occupancy},
			})

			blocks := rooms.Group("")
			blocks.Use(sessionMiddleware.RequireSession())
			addRoutes(blocks, []route{
				{Method: http.MethodPost, Path: "/:roomId/blocks", Handler: bookingHandler.BlockSlot},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateReservation},
			})

			adminOnly := reservations.Group("")
			adminOnly.Use(sessionMiddleware.RequireSession())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "/:id/approve", Handler: bookingHandler.ApproveReservation},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: bookingHandler.RejectReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteReservation},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/status", Handler: bookingHandler.SendingStatus},
		})
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
