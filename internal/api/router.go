package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"suicide-analytics-service/internal/api/handler"
	"suicide-analytics-service/pkg/router"
)

// RegisterRoutes mounts the dataset API under /api/v1. Specific routes come
// before the wildcard dataset route.
func RegisterRoutes(r *router.Router, h *handler.DatasetHandler) {
	r.POST("/api/v1/datasets", h.UploadDataset)
	r.GET("/api/v1/datasets", h.ListDatasets)
	r.GET("/api/v1/datasets/*/summary", h.GetSummary)
	r.GET("/api/v1/datasets/*/stats", h.GetStatistics)
	r.GET("/api/v1/datasets/*/map", h.GetMapTotals)
	r.GET("/api/v1/datasets/*/warnings", h.GetWarnings)
	r.GET("/api/v1/datasets/*/export", h.ExportDataset)
	r.GET("/api/v1/datasets/*", h.GetDataset)
	r.PUT("/api/v1/datasets/*", h.ReplaceDataset)
	r.DELETE("/api/v1/datasets/*", h.DeleteDataset)

	r.GET("/swagger/**", router.HandlerFunc(httpSwagger.WrapHandler))
}
