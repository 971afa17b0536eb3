// Package analysis turns heterogeneous classifier output into stable,
// sorted score sequences and applies them to user text.
package analysis

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/classifier"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
)

// Normalize resolves a raw classifier result into a non-empty sequence of
// LabeledScore sorted descending by score (stable, so ties keep their
// original relative order). Classifiers return one of three shapes
// depending on invocation mode: a single record, a flat list of records,
// or a batched list whose first element is the record list. Anything
// else, including empty or malformed output, yields the single fallback
// record {neutral, 1.0}.
func Normalize(raw classifier.Output) []models.LabeledScore {
	out := make([]models.LabeledScore, 0, 8)
	for _, rec := range resolveShape(raw) {
		if ls, ok := coerceRecord(rec); ok {
			out = append(out, ls)
		}
	}
	if len(out) == 0 {
		return []models.LabeledScore{models.NeutralScore()}
	}
	SortScores(out)
	return out
}

// SortScores orders scores descending, stable on ties. Sorting an already
// sorted sequence is a no-op.
func SortScores(scores []models.LabeledScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}

// TopScore returns the highest-confidence record of a normalized sequence.
func TopScore(scores []models.LabeledScore) models.LabeledScore {
	if len(scores) == 0 {
		return models.NeutralScore()
	}
	return scores[0]
}

// resolveShape flattens the three accepted shapes into a list of candidate
// records. Unknown shapes come back empty and fall through to the
// neutral fallback in Normalize.
func resolveShape(raw classifier.Output) []any {
	switch t := raw.(type) {
	case nil:
		return nil
	case models.LabeledScore:
		return []any{t}
	case *models.LabeledScore:
		if t == nil {
			return nil
		}
		return []any{*t}
	case map[string]any:
		return []any{t}
	case []models.LabeledScore:
		return toAnySlice(t)
	case [][]models.LabeledScore:
		if len(t) == 0 {
			return nil
		}
		return toAnySlice(t[0])
	case []any:
		if len(t) == 0 {
			return nil
		}
		// Batched-call shape: the first element is itself the record
		// list for the one text that was submitted.
		switch first := t[0].(type) {
		case []any:
			return first
		case []models.LabeledScore:
			return toAnySlice(first)
		}
		return t
	default:
		return nil
	}
}

func toAnySlice(scores []models.LabeledScore) []any {
	out := make([]any, len(scores))
	for i, s := range scores {
		out[i] = s
	}
	return out
}

// coerceRecord turns one candidate element into a LabeledScore. Elements
// lacking both a usable label and score are dropped; a missing label
// defaults to the neutral sentinel and a missing or malformed score to 0.
func coerceRecord(v any) (models.LabeledScore, bool) {
	switch t := v.(type) {
	case models.LabeledScore:
		if t.Label == "" {
			t.Label = models.NeutralLabel
		}
		return t, true
	case map[string]any:
		label, hasLabel := t["label"]
		score, hasScore := t["score"]
		if !hasLabel && !hasScore {
			return models.LabeledScore{}, false
		}
		return models.LabeledScore{
			Label: coerceLabel(label),
			Score: coerceScore(score),
		}, true
	default:
		return models.LabeledScore{}, false
	}
}

func coerceLabel(v any) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return models.NeutralLabel
}

func coerceScore(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
