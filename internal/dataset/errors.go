package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset means no rows survived sanitization. The upload is
	// rejected but the session continues.
	ErrEmptyDataset = errors.New("no valid reviews found after sanitization")

	// ErrEmptyFilterResult means the sentiment filter matched nothing.
	ErrEmptyFilterResult = errors.New("no reviews match the selected filter")
)

// SchemaError reports a missing required column.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required column %q", e.Column)
}

// NotFoundError reports a select-by-id miss. The UI only offers ids drawn
// from the presented list, so this mostly guards the JSON API.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no review with id %d", e.ID)
}
