// Package logging builds the leveled logger used by wikiexport.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is shown in front of every log line.
const Prefix = "wikiexport"

// New returns a logger writing to w at the given level ("debug", "info",
// "warn" or "error"). An empty level means "warn".
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
