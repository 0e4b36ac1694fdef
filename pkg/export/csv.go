package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dmitrymomot/formkit/pkg/submission"
)

// CSVExporter writes records as CSV. The header is taken from the first
// record: application id, submitted at, then its user-facing fields.
type CSVExporter struct {
	comma   rune
	listSep string
	labels  Labeler
}

type CSVOption func(*CSVExporter)

// WithComma sets the field separator. Default ','.
func WithComma(r rune) CSVOption {
	return func(e *CSVExporter) {
		if r != 0 && r != '"' && r != '\r' && r != '\n' {
			e.comma = r
		}
	}
}

// WithListSeparator sets how multi-value fields are joined.
func WithListSeparator(sep string) CSVOption {
	return func(e *CSVExporter) {
		if sep != "" {
			e.listSep = sep
		}
	}
}

// WithCSVLabels uses labels instead of raw field names in the header row.
func WithCSVLabels(l Labeler) CSVOption {
	return func(e *CSVExporter) {
		e.labels = l
	}
}

func NewCSVExporter(opts ...CSVOption) *CSVExporter {
	e := &CSVExporter{
		comma:   ',',
		listSep: submission.DefaultListSeparator,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Write writes a header row and one row per record. Values containing the
// separator, quotes or newlines are quoted.
func (e *CSVExporter) Write(w io.Writer, records ...*submission.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	for _, r := range records {
		if r == nil {
			return ErrNilRecord
		}
	}

	fields := records[0].FormFields()
	cw := csv.NewWriter(w)
	cw.Comma = e.comma

	header := make([]string, 0, len(fields)+2)
	header = append(header, submission.KeyApplicationID, submission.KeySubmittedAt)
	for _, name := range fields {
		if e.labels != nil {
			name = e.labels(name)
		}
		header = append(header, name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	for _, r := range records {
		row := make([]string, 0, len(header))
		row = append(row, r.ApplicationID(), r.Timestamp())
		for _, name := range fields {
			v, _ := r.Value(name)
			row = append(row, submission.FormatValue(v, e.listSep))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return nil
}
