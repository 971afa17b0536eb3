package analysis

import (
	"log/slog"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/classifier"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/textutil"
)

// Scorer applies the injected classifiers to sanitized text. It holds no
// state of its own and caches nothing; the backends own model lifetime.
type Scorer struct {
	sentiment classifier.Sentiment
	emotion   classifier.Emotion
}

func NewScorer(sentiment classifier.Sentiment, emotion classifier.Emotion) *Scorer {
	return &Scorer{sentiment: sentiment, emotion: emotion}
}

// ScoreSentiment classifies the polarity of text. Empty input resolves to
// {NEUTRAL, 0.0} without touching the classifier. Sentiment models are
// single-label, so only the first usable record of the raw output is
// read; a failed or malformed call degrades to the same neutral default.
func (s *Scorer) ScoreSentiment(text string) models.SentimentResult {
	clean := textutil.Clean(text)
	if clean == "" {
		return models.SentimentResult{Label: models.SentimentNeutral, Score: 0.0}
	}

	raw, err := s.sentiment.ClassifySentiment(clean)
	if err != nil {
		slog.Warn("[Scorer] Sentiment classification failed",
			slog.String("error", err.Error()))
		return models.SentimentResult{Label: models.SentimentNeutral, Score: 0.0}
	}

	rec, ok := firstRecord(raw)
	if !ok {
		return models.SentimentResult{Label: models.SentimentNeutral, Score: 0.0}
	}
	return models.SentimentResult{
		Label: models.ParseSentimentLabel(rec.Label),
		Score: rec.Score,
	}
}

// ScoreEmotions classifies text over the emotion categories and returns
// the normalized sequence, highest confidence first. Empty input and
// failed calls resolve to the neutral fallback without an external call
// or error.
func (s *Scorer) ScoreEmotions(text string) []models.LabeledScore {
	clean := textutil.Clean(text)
	if clean == "" {
		return []models.LabeledScore{models.NeutralScore()}
	}

	raw, err := s.emotion.ClassifyEmotion(clean)
	if err != nil {
		slog.Warn("[Scorer] Emotion classification failed",
			slog.String("error", err.Error()))
		return []models.LabeledScore{models.NeutralScore()}
	}
	return Normalize(raw)
}

// firstRecord shape-resolves raw output and picks the leading usable
// record, without the neutral-fallback and sorting the emotion path needs.
func firstRecord(raw classifier.Output) (models.LabeledScore, bool) {
	for _, rec := range resolveShape(raw) {
		if ls, ok := coerceRecord(rec); ok {
			return ls, true
		}
	}
	return models.LabeledScore{}, false
}
