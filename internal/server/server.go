// Package server is the presentation layer: an echo app that renders the
// dashboard pages and a small JSON API over the same operations. It keeps
// one in-memory working set per process; the core packages stay stateless.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/adwaithak112-byte/emotion-dashboard/config"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
)

// Scorer is the slice of the analysis layer the handlers consume.
// ScoreSentiment never fails; ScoreEmotions always returns a non-empty
// sequence sorted by descending confidence, so its first element is the
// top emotion.
type Scorer interface {
	ScoreSentiment(text string) models.SentimentResult
	ScoreEmotions(text string) []models.LabeledScore
}

// errNoDataset gates every dataset operation until an upload succeeds.
var errNoDataset = errors.New("no dataset loaded")

type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	scorer  Scorer
	backend string

	homeTemplate    *template.Template
	datasetTemplate *template.Template
	reviewTemplate  *template.Template
	batchTemplate   *template.Template

	// The working set lives for the process lifetime and is replaced
	// wholesale on upload. Echo serves handlers concurrently, so access
	// goes through mu even though the dashboard is single-session.
	mu       sync.Mutex
	records  []models.ReviewRecord
	analyzed bool
}

func NewServer(cfg *config.Config, scorer Scorer, backend string) (*Server, error) {
	homeTmpl, err := template.ParseFiles(filepath.Join(cfg.TemplatesDir, "home.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse home template: %w", err)
	}
	datasetTmpl, err := template.ParseFiles(filepath.Join(cfg.TemplatesDir, "dataset.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset template: %w", err)
	}
	reviewTmpl, err := template.ParseFiles(filepath.Join(cfg.TemplatesDir, "review.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse review template: %w", err)
	}
	batchTmpl, err := template.ParseFiles(filepath.Join(cfg.TemplatesDir, "batch.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:            e,
		cfg:             cfg,
		scorer:          scorer,
		backend:         backend,
		homeTemplate:    homeTmpl,
		datasetTemplate: datasetTmpl,
		reviewTemplate:  reviewTmpl,
		batchTemplate:   batchTmpl,
	}
	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// setRecords replaces the working set, discarding any previous analysis.
func (s *Server) setRecords(records []models.ReviewRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.analyzed = false
}

func (s *Server) snapshotRecords() ([]models.ReviewRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ReviewRecord(nil), s.records...), s.analyzed
}
