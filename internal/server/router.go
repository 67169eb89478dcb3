package server

import (
	"net/http"

	"github.com/Rrahullkumar/shushiman/internal/handler"
	"github.com/Rrahullkumar/shushiman/internal/middleware"
	"github.com/Rrahullkumar/shushiman/internal/service"
	"github.com/Rrahullkumar/shushiman/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the HTTP layer is built from
type Deps struct {
	Log           logrus.FieldLogger
	FrontendURL   string
	ExposeDetails bool // add internal error text to 500 responses

	JWT    *utils.JWTUtil
	Auth   service.AuthService
	Menu   service.MenuService
	Orders service.OrderService
	DB     handler.Pinger

	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer

	// RateLimiter throttles the auth endpoints; nil disables it.
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Log))
	router.Use(middleware.CORSMiddleware(d.FrontendURL))
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
	}

	errs := handler.NewErrorResponder(d.Log, d.ExposeDetails)
	jwtAuthMW := middleware.JWTAuthMiddleware(d.JWT)
	ownerMW := middleware.OwnerMiddleware()

	var throttle []gin.HandlerFunc
	if d.RateLimiter != nil {
		throttle = append(throttle, d.RateLimiter.Middleware())
	}

	apiGroup := router.Group("/api")
	handler.NewAuthHandler(d.Auth, errs).RegisterAuthRoutes(apiGroup, jwtAuthMW, throttle...)
	handler.NewMenuHandler(d.Menu, errs).RegisterMenuRoutes(apiGroup, jwtAuthMW, ownerMW)
	handler.NewOrderHandler(d.Orders, errs).RegisterOrderRoutes(apiGroup, jwtAuthMW, ownerMW)

	router.GET("/health", handler.NewHealthHandler(d.DB).Health)
	if d.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return router
}
