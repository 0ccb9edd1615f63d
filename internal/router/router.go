package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/hospitalsys/records-api/internal/handler"
	"github.com/hospitalsys/records-api/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

func DefaultConfig() Config {
	return Config{
		RateLimit:  100,
		RateBurst:  200,
		CORSConfig: middleware.DefaultCORSConfig(),
	}
}

type Router struct {
	engine  *gin.Engine
	metrics *routerMetrics
}

type routerMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

// NewRouter builds the gin engine with the shared middleware stack and
// registers every handler at the root. Unmatched paths and methods get the
// fixed JSON error bodies clients depend on.
func NewRouter(config Config, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:  engine,
		metrics: initRouterMetrics("hospital_records"),
	}

	engine.Use(
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(config.CORSConfig),
		r.metricsMiddleware(),
	)

	if config.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(config.RateLimit, config.RateBurst)
		engine.Use(limiter.RateLimit())
	}

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("Invalid endpoint"))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handler.NewErrorResponse("Method not allowed"))
	})

	engine.GET("/health", handler.HealthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		r.metrics.registry, promhttp.HandlerOpts{})))

	root := engine.Group("")
	for _, h := range handlers {
		h.RegisterRoutes(root)
	}

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// Each router carries its own registry so repeated construction, as in
// tests, never double-registers collectors.
func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	m.registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
