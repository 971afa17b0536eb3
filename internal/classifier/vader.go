package classifier

import (
	"math"

	"github.com/jonreiter/govader"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/textutil"
)

const (
	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

// VaderBackend scores sentiment with the VADER lexicon. It needs no model
// files or ONNX runtime, which makes it the fallback backend for
// environments where the transformer models cannot load. VADER has no
// emotion taxonomy, so emotion requests resolve to the neutral record.
type VaderBackend struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *VaderBackend {
	return &VaderBackend{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (b *VaderBackend) ClassifySentiment(text string) (Output, error) {
	plain := textutil.StripMarkup(text)
	compound := b.analyzer.PolarityScores(plain).Compound

	label := models.SentimentNeutral
	if compound >= positiveThreshold {
		label = models.SentimentPositive
	} else if compound <= negativeThreshold {
		label = models.SentimentNegative
	}

	return models.LabeledScore{
		Label: string(label),
		Score: math.Abs(compound),
	}, nil
}

func (b *VaderBackend) ClassifyEmotion(string) (Output, error) {
	return nil, nil
}
