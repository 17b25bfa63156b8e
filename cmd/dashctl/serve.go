package main

import (
	"github.com/spf13/cobra"

	"suicide-analytics-service/internal/api"
	"suicide-analytics-service/internal/api/handler"
	"suicide-analytics-service/internal/config"
	"suicide-analytics-service/internal/engine"
	"suicide-analytics-service/internal/session"
	"suicide-analytics-service/internal/store"
	"suicide-analytics-service/pkg/router"

	_ "suicide-analytics-service/docs"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		mapping := engine.DefaultColumnMapping()
		if cfg.ColumnMapFile != "" {
			mapping, err = engine.LoadColumnMapping(cfg.ColumnMapFile)
			if err != nil {
				return err
			}
		}

		if err := store.InitDB(cfg.DBPath); err != nil {
			return err
		}
		defer store.Close()

		h := handler.NewDatasetHandler(session.NewManager(), mapping, cfg.MaxUploadBytes)
		r := router.New()
		api.RegisterRoutes(r, h)
		return r.Start(cfg.ListenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
