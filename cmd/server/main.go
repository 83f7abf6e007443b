package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pricetracker/internal/config"
	"pricetracker/internal/database"
	"pricetracker/internal/router"
	"pricetracker/internal/tracker"
)

func main() {
	_ = godotenv.Load() // load .env if present; not fatal if missing

	log := logrus.New()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()
	log.Info("connected to postgres")

	repo := tracker.NewRepository(pool)
	svc := tracker.NewService(repo, log)
	h := tracker.NewHandler(svc, log)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
	r := router.New(h)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Infof("server started on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server ListenAndServe")
		}
	}()

	// wait for interrupt
	<-ctx.Done()
	log.Info("shutdown signal received")

	// stop accepting new requests, allow 15s to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}

	log.Info("graceful shutdown complete")
}
