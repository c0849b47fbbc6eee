package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes quotes as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes {"quotes": [...]}
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	docs := make([]QuoteDocument, 0, len(report.Quotes))
	for _, q := range report.Quotes {
		docs = append(docs, NewQuoteDocument(q, report.Explain))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Quotes []QuoteDocument `json:"quotes"`
	}{docs})
}
