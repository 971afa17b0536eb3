package classifier

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/adwaithak112-byte/emotion-dashboard/internal/models"
)

const (
	sentimentModelID = "distilbert-base-uncased-finetuned-sst-2-english"
	emotionModelID   = "j-hartmann/emotion-english-distilroberta-base"
)

var (
	onnxInstance *ONNXBackend
	onnxErr      error
	onnxOnce     sync.Once
)

// ONNXBackend runs both classifiers locally through hugot ORT pipelines.
// It implements Sentiment and Emotion.
type ONNXBackend struct {
	session   *hugot.Session
	sentiment *pipelines.TextClassificationPipeline
	emotion   *pipelines.TextClassificationPipeline
}

// LoadONNX initializes the process-wide backend on first use and returns
// the same instance for the remainder of the process lifetime. There is no
// reload path.
func LoadONNX(modelDir string) (*ONNXBackend, error) {
	onnxOnce.Do(func() {
		onnxInstance, onnxErr = newONNXBackend(modelDir)
	})
	return onnxInstance, onnxErr
}

func newONNXBackend(modelDir string) (*ONNXBackend, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating model directory: %w", err)
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("initializing ORT session: %w", err)
	}

	sentimentPath, err := ensureModel(modelDir, sentimentModelID)
	if err != nil {
		session.Destroy()
		return nil, err
	}
	emotionPath, err := ensureModel(modelDir, emotionModelID)
	if err != nil {
		session.Destroy()
		return nil, err
	}

	sentimentPipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: sentimentPath,
		Name:      "sentimentPipeline",
	})
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("initializing sentiment pipeline: %w", err)
	}

	emotionPipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: emotionPath,
		Name:      "emotionPipeline",
	})
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("initializing emotion pipeline: %w", err)
	}

	slog.Info("[ONNXBackend] Models loaded",
		slog.String("sentiment_model", sentimentModelID),
		slog.String("emotion_model", emotionModelID))

	return &ONNXBackend{
		session:   session,
		sentiment: sentimentPipeline,
		emotion:   emotionPipeline,
	}, nil
}

// ensureModel returns the local path for a model, downloading it on first
// use if it is not already present under modelDir.
func ensureModel(modelDir, modelID string) (string, error) {
	local := filepath.Join(modelDir, strings.ReplaceAll(modelID, "/", "_"))
	if _, err := os.Stat(local); err == nil {
		slog.Info("[ONNXBackend] Using existing model", slog.String("path", local))
		return local, nil
	}

	slog.Info("[ONNXBackend] Model not found, downloading...",
		slog.String("model", modelID))
	path, err := hugot.DownloadModel(modelID, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("downloading model %s: %w", modelID, err)
	}
	slog.Info("[ONNXBackend] Model downloaded successfully", slog.String("path", path))
	return path, nil
}

func (b *ONNXBackend) ClassifySentiment(text string) (Output, error) {
	return runTextClassification(b.sentiment, text)
}

func (b *ONNXBackend) ClassifyEmotion(text string) (Output, error) {
	return runTextClassification(b.emotion, text)
}

// runTextClassification feeds one text through a pipeline and converts
// the result for the normalizer.
func runTextClassification(p *pipelines.TextClassificationPipeline, text string) (Output, error) {
	output, err := p.RunPipeline([]string{text})
	if err != nil {
		return nil, err
	}
	return convertBatchOutput(output.GetOutput()), nil
}

// convertBatchOutput unwraps hugot's batch dimension (one text was
// submitted, so the first element holds its records) and maps the
// pipeline's typed records onto the shared score type. Unrecognized
// shapes pass through untouched for the normalizer to absorb.
func convertBatchOutput(batch []any) Output {
	if len(batch) == 0 {
		return nil
	}
	records, ok := batch[0].([]pipelines.ClassificationOutput)
	if !ok {
		return batch
	}

	scores := make([]models.LabeledScore, len(records))
	for i, r := range records {
		scores[i] = models.LabeledScore{Label: r.Label, Score: float64(r.Score)}
	}
	return scores
}

// Close releases the ORT session. Only meaningful at process shutdown.
func (b *ONNXBackend) Close() {
	if b.session != nil {
		b.session.Destroy()
	}
}
