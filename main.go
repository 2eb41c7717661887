package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"suite46-pickup/config"
	"suite46-pickup/handlers"
	"suite46-pickup/middleware"
	"suite46-pickup/remote"
	"suite46-pickup/routes"
	"suite46-pickup/storage"
	"suite46-pickup/submission"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := config.NewLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg.DBPath, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	log.WithField("path", cfg.DBPath).Info("database connected and migrated")

	var intake submission.Intake
	if cfg.OrderEndpoint != "" {
		intake = remote.NewIntakeClient(cfg.OrderEndpoint, nil)
	} else {
		log.Warn("ORDER_ENDPOINT not set, orders are kept in the local order log")
	}
	checkout := remote.NewCheckoutClient(cfg.CheckoutEndpoint, nil)

	storefront, err := handlers.NewStorefront(cfg, storage.NewGorm(db), intake, checkout, log)
	if err != nil {
		log.WithError(err).Fatal("failed to build storefront")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to " + cfg.StoreName + " pickup ordering",
			"menu":    "/api/menu",
			"health":  "/health",
		})
	})
	routes.SetupRoutes(r, storefront, cfg.SessionSecret)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Port).Infof("%s storefront listening", cfg.StoreName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.SubmitTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
