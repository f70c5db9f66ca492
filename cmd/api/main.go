package main

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/SirClappington/seo-architect/internal/api"
	"github.com/SirClappington/seo-architect/internal/app"
	"github.com/SirClappington/seo-architect/internal/config"
	"github.com/SirClappington/seo-architect/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Log)
	gin.SetMode(cfg.Server.Mode)

	container, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize services: %v", err)
	}
	defer container.Close()

	r := api.NewRouter(api.Dependencies{
		Listings:    container.Listings,
		Competitors: container.Competitors,
		Categories:  container.Categories,
		Archive:     container.Archive,
		Logger:      logger.WithField("service", "api"),
	})

	logger.WithField("addr", cfg.Server.Addr()).Info("Starting SEO architect API")
	if err := r.Run(cfg.Server.Addr()); err != nil {
		logger.Fatalf("Server exited with error: %v", err)
	}
}
