package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
)

// stubScorer labels reviews by keyword so aggregation tests run without
// real models.
type stubScorer struct {
	calls int
}

func (s *stubScorer) ScoreSentiment(text string) models.SentimentResult {
	s.calls++
	if strings.Contains(strings.ToLower(text), "love") {
		return models.SentimentResult{Label: models.SentimentPositive, Score: 0.99}
	}
	return models.SentimentResult{Label: models.SentimentNegative, Score: 0.95}
}

func TestLoadRequiresReviewColumn(t *testing.T) {
	_, err := Load([]RawRow{{"comment": "nice"}})

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "review", schemaErr.Column)
}

func TestLoadAssignsIDsBeforeFiltering(t *testing.T) {
	records, err := Load([]RawRow{
		{"review": "a"},
		{"review": ""},
		{"review": "b"},
	})
	require.NoError(t, err)

	// Ids are handed out in source order before empty rows drop, so the
	// blank row leaves a gap.
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0].ID)
	require.Equal(t, "a", records[0].Review)
	require.Equal(t, 3, records[1].ID)
	require.Equal(t, "b", records[1].Review)
}

func TestLoadKeepsProvidedIDs(t *testing.T) {
	records, err := Load([]RawRow{
		{"id": "7", "review": "first"},
		{"id": 9, "review": "second"},
		{"id": "junk", "review": "third"},
	})
	require.NoError(t, err)

	require.Equal(t, 7, records[0].ID)
	require.Equal(t, 9, records[1].ID)
	require.Equal(t, 3, records[2].ID) // unparseable id falls back to position
}

func TestLoadSanitizesReviews(t *testing.T) {
	records, err := Load([]RawRow{
		{"review": "  spaced  "},
		{"review": nil},
		{"review": 42},
	})
	require.NoError(t, err)

	require.Len(t, records, 2)
	require.Equal(t, "spaced", records[0].Review)
	require.Equal(t, "42", records[1].Review)
}

func TestLoadEmptyDataset(t *testing.T) {
	_, err := Load([]RawRow{{"review": ""}, {"review": "   "}})
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestAnalyzeAllPopulatesInOrder(t *testing.T) {
	scorer := &stubScorer{}
	records := []models.ReviewRecord{
		{ID: 1, Review: "I love this!"},
		{ID: 2, Review: "Terrible, awful."},
	}

	got := AnalyzeAll(scorer, records)

	require.Equal(t, 2, scorer.calls)
	require.Equal(t, models.SentimentPositive, got[0].Sentiment.Label)
	require.Equal(t, models.SentimentNegative, got[1].Sentiment.Label)
	// Updated in place, not copied.
	require.Same(t, got[0].Sentiment, records[0].Sentiment)
}

func TestFilterBySentiment(t *testing.T) {
	positive := &models.SentimentResult{Label: models.SentimentPositive}
	negative := &models.SentimentResult{Label: models.SentimentNegative}
	records := []models.ReviewRecord{
		{ID: 1, Sentiment: positive},
		{ID: 2, Sentiment: negative},
		{ID: 3, Sentiment: positive},
	}

	all, err := FilterBySentiment(records, FilterAll)
	require.NoError(t, err)
	require.Equal(t, records, all)

	pos, err := FilterBySentiment(records, FilterPositive)
	require.NoError(t, err)
	require.Len(t, pos, 2)
	require.Equal(t, 1, pos[0].ID)
	require.Equal(t, 3, pos[1].ID)

	neg, err := FilterBySentiment(records, FilterNegative)
	require.NoError(t, err)
	require.Len(t, neg, 1)
	require.Equal(t, 2, neg[0].ID)
}

func TestFilterBySentimentEmptyResult(t *testing.T) {
	records := []models.ReviewRecord{
		{ID: 1, Sentiment: &models.SentimentResult{Label: models.SentimentPositive}},
	}

	_, err := FilterBySentiment(records, FilterNegative)
	require.ErrorIs(t, err, ErrEmptyFilterResult)
}

func TestFilterSkipsUnanalyzedRecords(t *testing.T) {
	records := []models.ReviewRecord{{ID: 1}, {ID: 2}}

	_, err := FilterBySentiment(records, FilterPositive)
	require.ErrorIs(t, err, ErrEmptyFilterResult)
}

func TestParseFilterChoice(t *testing.T) {
	require.Equal(t, FilterPositive, ParseFilterChoice("Positive"))
	require.Equal(t, FilterNegative, ParseFilterChoice("Negative"))
	require.Equal(t, FilterAll, ParseFilterChoice("All"))
	require.Equal(t, FilterAll, ParseFilterChoice(""))
	require.Equal(t, FilterAll, ParseFilterChoice("bogus"))
}

func TestSelectByID(t *testing.T) {
	records := []models.ReviewRecord{{ID: 1, Review: "a"}, {ID: 3, Review: "b"}}

	got, err := SelectByID(records, 3)
	require.NoError(t, err)
	require.Equal(t, "b", got.Review)

	_, err = SelectByID(records, 2)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, 2, notFound.ID)
}

func TestEndToEndNegativeFilter(t *testing.T) {
	records, err := Load([]RawRow{
		{"id": 1, "review": "I love this!"},
		{"id": 2, "review": "Terrible, awful."},
	})
	require.NoError(t, err)

	AnalyzeAll(&stubScorer{}, records)

	neg, err := FilterBySentiment(records, FilterNegative)
	require.NoError(t, err)
	require.Len(t, neg, 1)
	require.Equal(t, 2, neg[0].ID)
	require.Equal(t, models.SentimentNegative, neg[0].Sentiment.Label)
}
