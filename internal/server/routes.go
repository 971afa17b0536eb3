package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Dashboard pages
	s.echo.GET("/", s.handleHome)
	s.echo.POST("/analyze", s.handleAnalyze)
	s.echo.GET("/dataset", s.handleDatasetPage)
	s.echo.POST("/dataset/upload", s.handleUpload)
	s.echo.POST("/dataset/analyze", s.handleAnalyzeDataset)
	s.echo.GET("/dataset/review/:id", s.handleReview)
	s.echo.GET("/dataset/reviews", s.handleBatchReviews)

	// JSON API mirroring the pages
	s.echo.POST("/api/analyze", s.handleAPIAnalyze)
	s.echo.POST("/api/dataset", s.handleAPILoadDataset)
	s.echo.POST("/api/dataset/analyze", s.handleAPIAnalyzeDataset)
	s.echo.GET("/api/dataset", s.handleAPIDataset)
	s.echo.GET("/api/dataset/reviews", s.handleAPIBatchReviews)
	s.echo.GET("/api/dataset/:id", s.handleAPIReview)
}
