package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/dataset"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/textutil"
)

func (s *Server) renderHome(c echo.Context, view homeView) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return s.homeTemplate.Execute(c.Response(), view)
}

func (s *Server) renderDataset(c echo.Context, view datasetView) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return s.datasetTemplate.Execute(c.Response(), view)
}

func (s *Server) handleHome(c echo.Context) error {
	return s.renderHome(c, homeView{})
}

func (s *Server) handleAnalyze(c echo.Context) error {
	text := textutil.Clean(c.FormValue("text"))
	if text == "" {
		return s.renderHome(c, homeView{Warning: "Please enter some text."})
	}

	sentiment := s.scorer.ScoreSentiment(text)
	emotions := s.scorer.ScoreEmotions(text)
	analysesTotal.WithLabelValues("single").Inc()

	rows := buildEmotionRows(emotions)
	return s.renderHome(c, homeView{
		Text:           text,
		HasResult:      true,
		Sentiment:      sentiment,
		SentimentEmoji: emojiForSentiment(sentiment.Label),
		TopEmotion:     rows[0],
		Emotions:       rows,
	})
}

func (s *Server) handleDatasetPage(c echo.Context) error {
	records, analyzed := s.snapshotRecords()
	view := datasetView{
		Loaded:   len(records) > 0,
		Analyzed: analyzed,
		Filter:   dataset.ParseFilterChoice(c.QueryParam("filter")),
		Total:    len(records),
	}

	if !view.Loaded {
		return s.renderDataset(c, view)
	}

	shown := records
	if analyzed {
		filtered, err := dataset.FilterBySentiment(records, view.Filter)
		if err != nil {
			view.Warning = "No reviews match this filter. Try selecting All."
			return s.renderDataset(c, view)
		}
		shown = filtered
	}

	view.Rows = buildDatasetRows(shown)
	return s.renderDataset(c, view)
}

func (s *Server) handleUpload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return s.renderDataset(c, datasetView{Warning: "Please choose a CSV file to upload."})
	}

	f, err := fileHeader.Open()
	if err != nil {
		slog.Error("[Server] Failed to open uploaded file", slog.String("error", err.Error()))
		return s.renderDataset(c, datasetView{Warning: "Could not read the uploaded file."})
	}
	defer f.Close()

	records, err := loadCSVRecords(f)
	if err != nil {
		return s.renderDataset(c, datasetView{Warning: uploadWarning(err)})
	}

	s.setRecords(records)
	datasetUploadsTotal.Inc()
	return c.Redirect(http.StatusFound, "/dataset")
}

func loadCSVRecords(f io.Reader) ([]models.ReviewRecord, error) {
	rows, err := dataset.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	return dataset.Load(rows)
}

func uploadWarning(err error) string {
	var schemaErr *dataset.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		datasetRejectionsTotal.WithLabelValues("schema").Inc()
		return "Your CSV must contain a column named review."
	case errors.Is(err, dataset.ErrEmptyDataset):
		datasetRejectionsTotal.WithLabelValues("empty").Inc()
		return "No valid reviews found (empty or blank). Please upload a proper dataset."
	default:
		datasetRejectionsTotal.WithLabelValues("malformed").Inc()
		slog.Warn("[Server] Dataset upload rejected", slog.String("error", err.Error()))
		return "Could not parse the uploaded CSV."
	}
}

func (s *Server) handleAnalyzeDataset(c echo.Context) error {
	s.mu.Lock()
	if len(s.records) == 0 {
		s.mu.Unlock()
		return s.renderDataset(c, datasetView{Warning: "Upload a dataset first."})
	}
	dataset.AnalyzeAll(s.scorer, s.records)
	s.analyzed = true
	s.mu.Unlock()

	analysesTotal.WithLabelValues("dataset").Inc()
	return c.Redirect(http.StatusFound, "/dataset")
}

func (s *Server) handleReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid review id")
	}

	record, err := s.analyzeReview(id)
	if err != nil {
		return c.String(http.StatusNotFound, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return s.reviewTemplate.Execute(c.Response(), buildReviewView(record))
}

const (
	defaultBatchReviews = 5
	maxBatchReviews     = 10
)

func parseBatchLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultBatchReviews
	}
	if limit > maxBatchReviews {
		return maxBatchReviews
	}
	return limit
}

// handleBatchReviews gives the first N records of the filtered working
// set the full emotion breakdown in one page.
func (s *Server) handleBatchReviews(c echo.Context) error {
	choice := dataset.ParseFilterChoice(c.QueryParam("filter"))
	limit := parseBatchLimit(c.QueryParam("limit"))

	records, err := s.analyzeBatch(choice, limit)
	if err != nil {
		if errors.Is(err, errNoDataset) {
			return s.renderDataset(c, datasetView{Warning: "Upload a dataset first."})
		}
		return s.renderDataset(c, datasetView{Warning: "No reviews match this filter. Try selecting All."})
	}
	analysesTotal.WithLabelValues("batch").Inc()

	views := make([]reviewView, 0, len(records))
	for _, record := range records {
		views = append(views, buildReviewView(record))
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return s.batchTemplate.Execute(c.Response(), batchView{
		Filter:  choice,
		Total:   len(views),
		Reviews: views,
	})
}

// analyzeReview scores one record of the working set on demand, storing
// the result back so revisiting an id does not re-run inference.
func (s *Server) analyzeReview(id int) (models.ReviewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzeReviewLocked(id)
}

// analyzeBatch analyzes the first limit records of the filtered working
// set, reusing stored results where present.
func (s *Server) analyzeBatch(choice dataset.FilterChoice, limit int) ([]models.ReviewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return nil, errNoDataset
	}

	filtered, err := dataset.FilterBySentiment(s.records, choice)
	if err != nil {
		return nil, err
	}
	if limit > len(filtered) {
		limit = len(filtered)
	}

	out := make([]models.ReviewRecord, 0, limit)
	for _, r := range filtered[:limit] {
		record, err := s.analyzeReviewLocked(r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *Server) analyzeReviewLocked(id int) (models.ReviewRecord, error) {
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if s.records[i].Sentiment == nil {
			result := s.scorer.ScoreSentiment(s.records[i].Review)
			s.records[i].Sentiment = &result
		}
		if s.records[i].Emotions == nil {
			s.records[i].Emotions = s.scorer.ScoreEmotions(s.records[i].Review)
			analysesTotal.WithLabelValues("review").Inc()
		}
		return s.records[i], nil
	}
	return models.ReviewRecord{}, &dataset.NotFoundError{ID: id}
}
