// Package output provides output formatting interfaces.
// This package produces human and machine-readable quotes.
package output

import (
	"io"
	"sort"
	"sync"

	"wrapquote/core/explanation"
	"wrapquote/core/quote"
	"wrapquote/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is one or more quotes ready to render
type Report struct {
	Quotes []*quote.Quote

	// Explain includes the line item breakdown
	Explain bool
}

// QuoteDocument is the serialized form of a quote
type QuoteDocument struct {
	*quote.Quote
	Valid     bool                       `json:"valid"`
	LineItems []*explanation.Explanation `json:"line_items,omitempty"`
}

// NewQuoteDocument wraps q for serialization
func NewQuoteDocument(q *quote.Quote, explain bool) QuoteDocument {
	doc := QuoteDocument{Quote: q, Valid: q.Valid()}
	if explain {
		doc.LineItems = q.LineItems()
	}
	return doc
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry returns a registry holding the CLI and JSON formatters
func NewRegistry(noColor bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(NewCLIFormatter(noColor))
	_ = r.Register(NewJSONFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return errors.Newf(errors.TypeConfig, "formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.InvalidCategory("output format", string(format))
	}
	return f, nil
}

// Formats returns the registered formats, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
