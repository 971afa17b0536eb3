package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
)

func record(label string, score float64) map[string]any {
	return map[string]any{"label": label, "score": score}
}

func TestNormalizeSingleRecord(t *testing.T) {
	got := Normalize(record("joy", 0.9))
	require.Equal(t, []models.LabeledScore{{Label: "joy", Score: 0.9}}, got)
}

func TestNormalizeFlatList(t *testing.T) {
	raw := []any{record("sadness", 0.2), record("joy", 0.7), record("anger", 0.1)}

	got := Normalize(raw)
	require.Equal(t, []models.LabeledScore{
		{Label: "joy", Score: 0.7},
		{Label: "sadness", Score: 0.2},
		{Label: "anger", Score: 0.1},
	}, got)
}

func TestNormalizeBatchedList(t *testing.T) {
	// Batched-call shape: the first element holds the record list.
	raw := []any{[]any{record("fear", 0.4), record("joy", 0.6)}}

	got := Normalize(raw)
	require.Equal(t, []models.LabeledScore{
		{Label: "joy", Score: 0.6},
		{Label: "fear", Score: 0.4},
	}, got)
}

func TestNormalizeTypedShapes(t *testing.T) {
	single := models.LabeledScore{Label: "joy", Score: 0.8}
	require.Equal(t, []models.LabeledScore{single}, Normalize(single))

	flat := []models.LabeledScore{{Label: "a", Score: 0.1}, {Label: "b", Score: 0.9}}
	require.Equal(t, []models.LabeledScore{{Label: "b", Score: 0.9}, {Label: "a", Score: 0.1}}, Normalize(flat))

	batched := [][]models.LabeledScore{{{Label: "c", Score: 0.5}}}
	require.Equal(t, []models.LabeledScore{{Label: "c", Score: 0.5}}, Normalize(batched))
}

func TestNormalizeFallback(t *testing.T) {
	fallback := []models.LabeledScore{{Label: "neutral", Score: 1.0}}

	tests := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"empty list", []any{}},
		{"empty typed list", []models.LabeledScore{}},
		{"wrong shape", "not a record"},
		{"number", 42},
		{"records without label or score", []any{map[string]any{"text": "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, fallback, Normalize(tt.raw))
		})
	}
}

func TestNormalizeDefaultsMissingFields(t *testing.T) {
	raw := []any{
		map[string]any{"score": 0.4},    // no label
		map[string]any{"label": "joy"},  // no score
		map[string]any{"comment": "??"}, // neither, dropped
	}

	got := Normalize(raw)
	require.Equal(t, []models.LabeledScore{
		{Label: "neutral", Score: 0.4},
		{Label: "joy", Score: 0.0},
	}, got)
}

func TestNormalizeCoercesScoreTypes(t *testing.T) {
	raw := []any{
		map[string]any{"label": "a", "score": json.Number("0.25")},
		map[string]any{"label": "b", "score": "0.75"},
		map[string]any{"label": "c", "score": 1},
		map[string]any{"label": "d", "score": "garbage"},
	}

	got := Normalize(raw)
	require.Equal(t, []models.LabeledScore{
		{Label: "c", Score: 1.0},
		{Label: "b", Score: 0.75},
		{Label: "a", Score: 0.25},
		{Label: "d", Score: 0.0},
	}, got)
}

func TestSortScoresStableAndIdempotent(t *testing.T) {
	scores := []models.LabeledScore{
		{Label: "first", Score: 0.5},
		{Label: "second", Score: 0.5},
		{Label: "top", Score: 0.9},
	}

	SortScores(scores)
	want := []models.LabeledScore{
		{Label: "top", Score: 0.9},
		{Label: "first", Score: 0.5},
		{Label: "second", Score: 0.5},
	}
	require.Equal(t, want, scores)

	// Re-sorting an already sorted sequence changes nothing.
	SortScores(scores)
	require.Equal(t, want, scores)
}

func TestTopScore(t *testing.T) {
	require.Equal(t, models.NeutralScore(), TopScore(nil))
	require.Equal(t, models.LabeledScore{Label: "joy", Score: 0.9},
		TopScore([]models.LabeledScore{{Label: "joy", Score: 0.9}, {Label: "fear", Score: 0.1}}))
}
