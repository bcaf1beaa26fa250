package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coolduebtn/stock-rating-checker/config"
	"github.com/coolduebtn/stock-rating-checker/consensus"
	"github.com/coolduebtn/stock-rating-checker/database"
	"github.com/coolduebtn/stock-rating-checker/handlers"
	"github.com/coolduebtn/stock-rating-checker/logger"
	"github.com/coolduebtn/stock-rating-checker/lookup"
	"github.com/coolduebtn/stock-rating-checker/provider"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	db, err := database.InitDB(database.Config{
		Path:        cfg.DatabasePath,
		AutoMigrate: cfg.AutoMigrate,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	svc := lookup.NewService(provider.NewStore(db, log), consensus.Engine{Empty: cfg.EmptyPolicy}, log)

	if cfg.DevMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := handlers.NewRouter(handlers.New(svc, cfg.Version, log), handlers.RouterConfig{
		SecureHeaders:      cfg.SecureHeaders,
		RateLimitPerMinute: cfg.RateLimit(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting stock rating server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}
