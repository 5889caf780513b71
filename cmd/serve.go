package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ormcheatsheet/config"
	"ormcheatsheet/controllers"
	_ "ormcheatsheet/docs"
	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/services/job"
	"ormcheatsheet/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default command)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("Starting ormcheatsheet with log level: %s", config.Cfg.LogLevel)

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	controllers.SetQueryService(a.Queries)
	controllers.SetTableService(a.Tables)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.Cfg.Port,
		Handler: newRouter(a.History),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server at port %s", config.Cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Infof("Received shutdown signal, stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
		return err
	}
	logger.Infof("Application shutdown complete")
	return nil
}

func newRouter(history *job.RunHistory) *gin.Engine {
	gin.SetMode(config.Cfg.GinMode)

	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	api := router.Group("/api")
	{
		controllers.RegisterQueryRoutes(api)
		controllers.RegisterTableRoutes(api)
		controllers.RegisterRunStatusRoutes(api, history)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
