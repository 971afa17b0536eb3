// Package classifier wraps the pre-trained text-classification models the
// dashboard consumes. Model loading, tokenization, and inference belong to
// the backends; callers only see raw classification output.
package classifier

// Output is one raw classifier result. Depending on the backend and how
// the model was exported, a call can yield a single label/score record, a
// flat list of records, or a batched list of lists. The value is left
// untyped here and shape-resolved exactly once by analysis.Normalize.
type Output any

// Sentiment yields a polarity label (POSITIVE/NEGATIVE, optionally
// NEUTRAL) plus a confidence score for a piece of text.
type Sentiment interface {
	ClassifySentiment(text string) (Output, error)
}

// Emotion yields confidence scores over a small fixed set of emotion
// categories. Backends may return the top category only or all of them.
type Emotion interface {
	ClassifyEmotion(text string) (Output, error)
}
