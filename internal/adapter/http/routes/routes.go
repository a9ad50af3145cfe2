package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "dispatch_service/docs" // swag generated
	"dispatch_service/internal/adapter/http/handlers"
	"dispatch_service/internal/adapter/http/middleware"
	"dispatch_service/internal/app"
	"dispatch_service/internal/config"
	"dispatch_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run wires the application, starts the suggestion sweeper and serves HTTP
// until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	go a.Sweeper.Run(ctx, cfg.SweepInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine for a wired application.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, a.Config)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	tenant := v1.Group("", middleware.BusinessContext(a.Config.JWTSecret))
	addTechnicianRoutes(tenant, handlers.NewTechnicianHandler(a.Technicians))
	addScheduleRoutes(tenant, handlers.NewScheduleHandler(a.Schedule), handlers.NewRouteHandler(a.Routes))
	addSuggestionRoutes(tenant, handlers.NewSuggestionHandler(a.Suggestions))
	tenant.GET(PathEvents, handlers.NewEventsHandler(a.Broker).Stream)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.RequestLogger(cfg.SlowRequestThreshold))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
