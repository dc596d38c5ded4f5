package export

import (
	"fmt"
	"strings"

	"github.com/gorewood/wikiexport/internal/traverse"
)

// ValidationError reports unusable options. Nothing has been written.
type ValidationError struct {
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid options: " + e.Err.Error()
}

// Unwrap returns the underlying validation errors.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StructureError reports the structural problems found while assembling a
// document, in the order they were found.
type StructureError struct {
	Problems []traverse.Problem
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	messages := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		messages = append(messages, p.Message)
	}
	return fmt.Sprintf("wiki has %d structural problem(s): %s", len(e.Problems), strings.Join(messages, "; "))
}
