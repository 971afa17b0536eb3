package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/dataset"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/textutil"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Sentiment  models.SentimentResult `json:"sentiment"`
	TopEmotion models.LabeledScore    `json:"top_emotion"`
	Emotions   []models.LabeledScore  `json:"emotions"`
}

type datasetResponse struct {
	Total   int                   `json:"total"`
	Records []models.ReviewRecord `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAPIAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	text := textutil.Clean(req.Text)
	if text == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text must not be empty"})
	}

	sentiment := s.scorer.ScoreSentiment(text)
	emotions := s.scorer.ScoreEmotions(text)
	analysesTotal.WithLabelValues("single").Inc()

	return c.JSON(http.StatusOK, analyzeResponse{
		Sentiment:  sentiment,
		TopEmotion: emotions[0],
		Emotions:   emotions,
	})
}

func (s *Server) handleAPILoadDataset(c echo.Context) error {
	var rows []dataset.RawRow
	if err := c.Bind(&rows); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	records, err := dataset.Load(rows)
	if err != nil {
		return datasetErrorJSON(c, err)
	}

	s.setRecords(records)
	datasetUploadsTotal.Inc()
	return c.JSON(http.StatusOK, datasetResponse{Total: len(records), Records: records})
}

func (s *Server) handleAPIAnalyzeDataset(c echo.Context) error {
	s.mu.Lock()
	if len(s.records) == 0 {
		s.mu.Unlock()
		return c.JSON(http.StatusConflict, errorResponse{Error: "no dataset loaded"})
	}
	dataset.AnalyzeAll(s.scorer, s.records)
	s.analyzed = true
	records := append([]models.ReviewRecord(nil), s.records...)
	s.mu.Unlock()

	analysesTotal.WithLabelValues("dataset").Inc()
	return c.JSON(http.StatusOK, datasetResponse{Total: len(records), Records: records})
}

func (s *Server) handleAPIDataset(c echo.Context) error {
	records, _ := s.snapshotRecords()
	if len(records) == 0 {
		return c.JSON(http.StatusConflict, errorResponse{Error: "no dataset loaded"})
	}

	choice := dataset.ParseFilterChoice(c.QueryParam("filter"))
	filtered, err := dataset.FilterBySentiment(records, choice)
	if err != nil {
		return datasetErrorJSON(c, err)
	}
	return c.JSON(http.StatusOK, datasetResponse{Total: len(filtered), Records: filtered})
}

func (s *Server) handleAPIBatchReviews(c echo.Context) error {
	choice := dataset.ParseFilterChoice(c.QueryParam("filter"))
	limit := parseBatchLimit(c.QueryParam("limit"))

	records, err := s.analyzeBatch(choice, limit)
	if err != nil {
		if errors.Is(err, errNoDataset) {
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		return datasetErrorJSON(c, err)
	}
	analysesTotal.WithLabelValues("batch").Inc()

	return c.JSON(http.StatusOK, datasetResponse{Total: len(records), Records: records})
}

func (s *Server) handleAPIReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid review id"})
	}

	record, err := s.analyzeReview(id)
	if err != nil {
		return datasetErrorJSON(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// datasetErrorJSON maps the dataset error taxonomy onto HTTP statuses.
// Every failure is local to the request; nothing is fatal to the process.
func datasetErrorJSON(c echo.Context, err error) error {
	var schemaErr *dataset.SchemaError
	var notFound *dataset.NotFoundError
	switch {
	case errors.As(err, &schemaErr):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: schemaErr.Error()})
	case errors.Is(err, dataset.ErrEmptyDataset):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, dataset.ErrEmptyFilterResult):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: notFound.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
