package models

import "strings"

// NeutralLabel is the sentinel category used whenever a classifier record
// arrives without a usable label, and for the fallback emotion record.
const NeutralLabel = "neutral"

// LabeledScore is one classifier record: a category plus the model's
// confidence that it applies, in [0,1].
type LabeledScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NeutralScore returns the fallback record emitted when classifier output
// is empty or malformed.
func NeutralScore() LabeledScore {
	return LabeledScore{Label: NeutralLabel, Score: 1.0}
}

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// ParseSentimentLabel maps a raw classifier label onto the sentiment enum.
// Anything unrecognized resolves to NEUTRAL.
func ParseSentimentLabel(raw string) SentimentLabel {
	switch SentimentLabel(strings.ToUpper(strings.TrimSpace(raw))) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// SentimentResult is the single polarity verdict produced per text.
type SentimentResult struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}
