package models

// ReviewRecord is one row of an uploaded dataset plus its computed
// analysis. Sentiment and Emotions stay nil until analysis is requested;
// nothing is persisted beyond the process.
type ReviewRecord struct {
	ID        int              `json:"id"`
	Review    string           `json:"review"`
	Sentiment *SentimentResult `json:"sentiment,omitempty"`
	Emotions  []LabeledScore   `json:"emotions,omitempty"`
}
