package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadCSV decodes delimited text into raw rows keyed by the header. The
// review column is required; extra columns ride along and are ignored by
// Load. Short rows are tolerated, a missing header is a schema error.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make([]string, len(header))
	hasReview := false
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
		if columns[i] == ReviewColumn {
			hasReview = true
		}
	}
	if !hasReview {
		return nil, &SchemaError{Column: ReviewColumn}
	}

	var rows []RawRow
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		row := make(RawRow, len(columns))
		for i, name := range columns {
			if i < len(fields) {
				row[name] = fields[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	return rows, nil
}
