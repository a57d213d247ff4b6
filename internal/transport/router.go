package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Router wraps the gin engine with the explorer routes.
type Router struct {
	engine  *gin.Engine
	handler *ExplorerHandler
	logger  *zap.Logger
}

func NewRouter(handler *ExplorerHandler, logger *zap.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:  gin.New(),
		handler: handler,
		logger:  logger.Named("http"),
	}
	r.setupMiddleware()
	r.setupRoutes()
	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(recovery(r.logger))
	r.engine.Use(requestLogger(r.logger))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/", r.handler.Home)
	r.engine.GET("/blocks", r.handler.Blocks)
	r.engine.GET("/transactions", r.handler.Transactions)
	r.engine.GET("/address", r.handler.Address)
	r.engine.GET("/mempool", r.handler.Mempool)
	r.engine.GET("/status", r.handler.Status)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.engine.NoRoute(r.handler.NotFound)
}

// Handler returns the engine wrapped with CORS. No origins allows any origin.
func (r *Router) Handler(origins []string) http.Handler {
	if len(origins) == 0 {
		return cors.Default().Handler(r.engine)
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}).Handler(r.engine)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered", zap.Any("panic", err), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, Page{
					Page:  "error",
					Theme: theme,
					Error: "internal server error",
				})
			}
		}()
		c.Next()
	}
}
