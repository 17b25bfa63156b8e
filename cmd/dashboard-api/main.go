package main

import (
	"log"

	"suicide-analytics-service/internal/api"
	"suicide-analytics-service/internal/api/handler"
	"suicide-analytics-service/internal/config"
	"suicide-analytics-service/internal/engine"
	"suicide-analytics-service/internal/session"
	"suicide-analytics-service/internal/store"
	"suicide-analytics-service/pkg/router"

	_ "suicide-analytics-service/docs"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	mapping := engine.DefaultColumnMapping()
	if cfg.ColumnMapFile != "" {
		mapping, err = engine.LoadColumnMapping(cfg.ColumnMapFile)
		if err != nil {
			log.Fatalf("❌ Failed to load column mapping: %v", err)
		}
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("❌ Failed to open upload registry: %v", err)
	}
	defer store.Close()

	sessions := session.NewManager()
	h := handler.NewDatasetHandler(sessions, mapping, cfg.MaxUploadBytes)

	r := router.New()
	api.RegisterRoutes(r, h)

	log.Fatal(r.Start(cfg.ListenAddr))
}
