package export

import (
	"fmt"
	"io"

	"github.com/gorewood/wikiexport/internal/options"
	"github.com/gorewood/wikiexport/internal/traverse"
)

// Outline is the page structure an export of the same options would write.
type Outline struct {
	Title    string             `json:"title"`
	Entries  []traverse.Entry   `json:"entries"`
	Problems []traverse.Problem `json:"problems,omitempty"`
}

// prepareSource tidies the options and validates everything but the target.
func (e *Exporter) prepareSource(opts options.Options) (options.Options, error) {
	opts.Tidy(e.fs)
	if err := opts.ValidateSource(e.fs); err != nil {
		return opts, &ValidationError{Err: err}
	}
	return opts, nil
}

// Outline traverses the source without writing anything. Structural
// problems are part of the outline, not an error.
func (e *Exporter) Outline(opts options.Options) (*Outline, error) {
	opts, err := e.prepareSource(opts)
	if err != nil {
		return nil, err
	}

	assembled, err := e.Assemble(&opts, io.Discard)
	if err != nil {
		return nil, err
	}
	return &Outline{
		Title:    options.NewResolver(&opts, e.fs).DocumentTitle(),
		Entries:  assembled.Entries,
		Problems: assembled.Problems,
	}, nil
}

// Render writes the document to w as an export would before its attachment
// pass: front matter, then the body with links left as they are in the wiki.
func (e *Exporter) Render(opts options.Options, w io.Writer) (*traverse.Result, error) {
	opts, err := e.prepareSource(opts)
	if err != nil {
		return nil, err
	}

	meta := e.metadata(&opts, options.NewResolver(&opts, e.fs).DocumentTitle())
	if _, err := io.WriteString(w, FormatFrontMatter(meta)); err != nil {
		return nil, fmt.Errorf("writing front matter: %w", err)
	}
	return e.Assemble(&opts, w)
}
