// Package importer parses transaction CSV files for bulk upload to the
// expense API.
package importer

import (
	"io"
	"strings"

	"github.com/trackwise-dev/trackwise/internal/model"
)

// Parser converts a CSV file into transactions ready to create.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	var formats []string
	for name := range r.parsers {
		formats = append(formats, name)
	}
	return formats
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	r.Register(&ChaseParser{})
	return r
}
