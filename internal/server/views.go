package server

import (
	"strings"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/dataset"
	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
)

var emotionEmoji = map[string]string{
	"joy":      "😄",
	"sadness":  "😢",
	"anger":    "😡",
	"fear":     "😱",
	"disgust":  "🤢",
	"surprise": "😲",
	"neutral":  "😐",
}

var sentimentEmoji = map[models.SentimentLabel]string{
	models.SentimentPositive: "👍😊",
	models.SentimentNegative: "👎😞",
	models.SentimentNeutral:  "😐",
}

type emotionRow struct {
	Label   string
	Emoji   string
	Score   float64
	Percent float64
}

func buildEmotionRows(scores []models.LabeledScore) []emotionRow {
	rows := make([]emotionRow, 0, len(scores))
	for _, s := range scores {
		label := strings.ToLower(s.Label)
		emoji, ok := emotionEmoji[label]
		if !ok {
			emoji = "🙂"
		}
		rows = append(rows, emotionRow{
			Label:   strings.ToUpper(label),
			Emoji:   emoji,
			Score:   s.Score,
			Percent: s.Score * 100,
		})
	}
	return rows
}

func emojiForSentiment(label models.SentimentLabel) string {
	if emoji, ok := sentimentEmoji[label]; ok {
		return emoji
	}
	return "🙂"
}

type homeView struct {
	Text           string
	Warning        string
	HasResult      bool
	Sentiment      models.SentimentResult
	SentimentEmoji string
	TopEmotion     emotionRow
	Emotions       []emotionRow
}

type datasetRow struct {
	ID        int
	Review    string
	Sentiment *models.SentimentResult
	Emoji     string
}

type datasetView struct {
	Loaded   bool
	Analyzed bool
	Warning  string
	Filter   dataset.FilterChoice
	Total    int
	Rows     []datasetRow
}

type reviewView struct {
	ID             int
	Review         string
	Sentiment      models.SentimentResult
	SentimentEmoji string
	TopEmotion     emotionRow
	Emotions       []emotionRow
}

type batchView struct {
	Filter  dataset.FilterChoice
	Total   int
	Reviews []reviewView
}

// buildReviewView assumes the record has been analyzed (sentiment and
// emotions populated).
func buildReviewView(record models.ReviewRecord) reviewView {
	rows := buildEmotionRows(record.Emotions)
	return reviewView{
		ID:             record.ID,
		Review:         record.Review,
		Sentiment:      *record.Sentiment,
		SentimentEmoji: emojiForSentiment(record.Sentiment.Label),
		TopEmotion:     rows[0],
		Emotions:       rows,
	}
}

func buildDatasetRows(records []models.ReviewRecord) []datasetRow {
	rows := make([]datasetRow, 0, len(records))
	for _, r := range records {
		row := datasetRow{ID: r.ID, Review: r.Review, Sentiment: r.Sentiment}
		if r.Sentiment != nil {
			row.Emoji = emojiForSentiment(r.Sentiment.Label)
		}
		rows = append(rows, row)
	}
	return rows
}
