package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
)

func TestVaderClassifySentiment(t *testing.T) {
	backend := NewVader()

	tests := []struct {
		name string
		text string
		want models.SentimentLabel
	}{
		{"positive", "I love this, it is wonderful and great!", models.SentimentPositive},
		{"negative", "Terrible, awful, the worst thing I have ever bought.", models.SentimentNegative},
		{"neutral", "The package arrived on a Tuesday.", models.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := backend.ClassifySentiment(tt.text)
			require.NoError(t, err)

			rec, ok := raw.(models.LabeledScore)
			require.True(t, ok)
			require.Equal(t, string(tt.want), rec.Label)
			require.GreaterOrEqual(t, rec.Score, 0.0)
			require.LessOrEqual(t, rec.Score, 1.0)
		})
	}
}

func TestVaderStripsMarkup(t *testing.T) {
	backend := NewVader()

	plain, err := backend.ClassifySentiment("I **love** this, see [review](https://example.com/r)")
	require.NoError(t, err)
	require.Equal(t, string(models.SentimentPositive), plain.(models.LabeledScore).Label)
}

func TestVaderClassifyEmotion(t *testing.T) {
	backend := NewVader()

	// No lexicon emotion model exists; the normalizer turns nil into the
	// neutral fallback downstream.
	raw, err := backend.ClassifyEmotion("anything")
	require.NoError(t, err)
	require.Nil(t, raw)
}
