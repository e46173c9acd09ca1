package parser

import (
	"sort"

	"github.com/insightdelivered/mae-pdf-processing/internal/extractor"
	"github.com/insightdelivered/mae-pdf-processing/internal/models"
)

// Handler converts one uploaded document into a transaction table. It
// fails with a descriptive error when extraction yields zero rows or a
// required statement year cannot be resolved.
type Handler func(data []byte, filename string) (*models.Table, error)

// Registry maps statement format identifiers to their handlers. It is
// built once at process start and passed to consumers; there is no
// package-level mutable mapping.
type Registry struct {
	handlers map[models.Mode]Handler
}

// NewRegistry wires every supported format to its assembler pipeline.
func NewRegistry() *Registry {
	return &Registry{handlers: map[models.Mode]Handler{
		models.ModeMaybankDebit:  fromPDF(parseMaybankDebitLines),
		models.ModeMaybankCredit: fromPDF(parseMaybankCreditLines),
		models.ModeCIMBDebit:     fromPDF(parseCIMBDebitLines),
		models.ModeM2UDebit:      fromPDF(parseM2UDebitLines),
		models.ModeRHBFlex:       fromPDF(parseRHBFlexLines),
	}}
}

// Get returns the handler for a format identifier.
func (r *Registry) Get(mode models.Mode) (Handler, bool) {
	h, ok := r.handlers[mode]
	return h, ok
}

// Modes returns the sorted list of registered format identifiers.
func (r *Registry) Modes() []string {
	modes := make([]string, 0, len(r.handlers))
	for m := range r.handlers {
		modes = append(modes, string(m))
	}
	sort.Strings(modes)
	return modes
}

// fromPDF chains PDF text extraction in front of a line-level assembler.
func fromPDF(parse func(lines []string, filename string) (*models.Table, error)) Handler {
	return func(data []byte, filename string) (*models.Table, error) {
		lines, err := extractor.Lines(data)
		if err != nil {
			return nil, err
		}
		return parse(lines, filename)
	}
}
