// Package dataset builds and queries the in-memory working set of review
// records. Nothing here persists past the process.
package dataset

import (
	"strconv"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/textutil"
)

// ReviewColumn is the one required input column.
const ReviewColumn = "review"

// RawRow is one source row keyed by column name. Values are untyped so
// the same path serves CSV cells and JSON objects; columns other than
// "review" and "id" are ignored.
type RawRow map[string]any

// SentimentScorer is the slice of the Scorer the aggregator needs.
type SentimentScorer interface {
	ScoreSentiment(text string) models.SentimentResult
}

// Load turns raw rows into the working set. Ids are assigned 1..N in
// source order before empty reviews are dropped, so a dataset with blank
// rows keeps gaps in its ids; rows that carry their own id keep it.
// Returns *SchemaError when the review column is absent and
// ErrEmptyDataset when nothing survives sanitization.
func Load(rows []RawRow) ([]models.ReviewRecord, error) {
	if len(rows) > 0 {
		if _, ok := rows[0][ReviewColumn]; !ok {
			return nil, &SchemaError{Column: ReviewColumn}
		}
	}

	records := make([]models.ReviewRecord, 0, len(rows))
	for i, row := range rows {
		id := i + 1
		if v, ok := row["id"]; ok {
			if parsed, ok := coerceID(v); ok {
				id = parsed
			}
		}

		review := textutil.Clean(row[ReviewColumn])
		if review == "" {
			continue
		}
		records = append(records, models.ReviewRecord{ID: id, Review: review})
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

// AnalyzeAll populates sentiment for every record, sequentially and in
// input order. Records are updated in place and also returned.
func AnalyzeAll(scorer SentimentScorer, records []models.ReviewRecord) []models.ReviewRecord {
	for i := range records {
		result := scorer.ScoreSentiment(records[i].Review)
		records[i].Sentiment = &result
	}
	return records
}

// FilterChoice selects a slice of the analyzed working set.
type FilterChoice string

const (
	FilterAll      FilterChoice = "All"
	FilterPositive FilterChoice = "Positive"
	FilterNegative FilterChoice = "Negative"
)

// ParseFilterChoice maps user input onto a filter; anything unrecognized
// falls back to All.
func ParseFilterChoice(s string) FilterChoice {
	switch FilterChoice(s) {
	case FilterPositive:
		return FilterPositive
	case FilterNegative:
		return FilterNegative
	default:
		return FilterAll
	}
}

// FilterBySentiment returns the records whose sentiment label matches the
// choice, preserving input order. All is the identity. Returns
// ErrEmptyFilterResult when nothing matches.
func FilterBySentiment(records []models.ReviewRecord, choice FilterChoice) ([]models.ReviewRecord, error) {
	if choice == FilterAll {
		return records, nil
	}

	want := models.SentimentPositive
	if choice == FilterNegative {
		want = models.SentimentNegative
	}

	out := make([]models.ReviewRecord, 0, len(records))
	for _, r := range records {
		if r.Sentiment != nil && r.Sentiment.Label == want {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyFilterResult
	}
	return out, nil
}

// SelectByID finds the record with an exact id match.
func SelectByID(records []models.ReviewRecord, id int) (models.ReviewRecord, error) {
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.ReviewRecord{}, &NotFoundError{ID: id}
}

func coerceID(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		parsed, err := strconv.Atoi(textutil.Clean(t))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
