package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stay-marketplace/internal/handler/api"
	"stay-marketplace/internal/handler/httperr"
	"stay-marketplace/internal/handler/middleware"
	"stay-marketplace/internal/infra/telemetry"
	"stay-marketplace/internal/pkg/config"
)

const healthTimeout = 2 * time.Second

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// HealthChecker is satisfied by *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Listing *api.ListingHandler
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
	Payment *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware, health HealthChecker) {
	setupMiddleware(engine, cfg, logger, authMiddleware)
	setupRoutes(engine, handlers, health)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, authMiddleware *middleware.AuthMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Telemetry.Enabled {
		engine.Use(telemetry.GinMiddleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(authMiddleware.Authenticate())
}

func setupRoutes(engine *gin.Engine, h Handlers, health HealthChecker) {
	engine.GET("/health", healthCheck(health))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/listings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Listing.List},
			{Method: http.MethodPost, Path: "", Handler: h.Listing.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Listing.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Listing.Update},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Listing.PartialUpdate},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Listing.Delete},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Update},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.PartialUpdate},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete},
		})

		// static segments win over :id in gin's tree
		addRoutes(apiGroup.Group("/reviews"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Review.List},
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			{Method: http.MethodGet, Path: "/my_reviews", Handler: h.Review.MyReviews},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Review.PartialUpdate},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
		})

		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
			{Method: http.MethodPost, Path: "", Handler: h.Payment.Create},
			{Method: http.MethodPost, Path: "/webhook", Handler: h.Payment.Webhook},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.Get},
		})
	}
}

// @Summary Health check
// @Description Check that the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.DetailBody
// @Router /health [get]
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := health.Ping(ctx); err != nil {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Database unavailable.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
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
