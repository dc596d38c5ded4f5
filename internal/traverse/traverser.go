package traverse

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gorewood/wikiexport/internal/logging"
	"github.com/gorewood/wikiexport/internal/options"
	"github.com/gorewood/wikiexport/internal/wiki"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// Kind classifies an entry of the wiki.
type Kind string

// Entry kinds.
const (
	KindPage       Kind = "page"
	KindAppendix   Kind = "appendix"
	KindAppendices Kind = "appendices"
)

// Entry is a page visited during traversal, in output order.
type Entry struct {
	Dir   string `json:"dir"`
	Name  string `json:"name"`
	Title string `json:"title"`
	// Level is the effective heading level of the page.
	Level int  `json:"level"`
	Kind  Kind `json:"kind"`
	// Missing is set when the page is listed but its .md file is absent.
	Missing bool `json:"missing,omitempty"`
}

// Problem is a structural problem found in the wiki.
type Problem struct {
	Path    string `json:"path"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// String returns the problem message.
func (p Problem) String() string {
	return p.Message
}

// Result collects what a traversal found.
type Result struct {
	Entries  []Entry
	Problems []Problem
}

// OK reports whether the traversal found no structural problems.
func (r *Result) OK() bool {
	return len(r.Problems) == 0
}

// Messages returns the problem messages in the order they were found.
func (r *Result) Messages() []string {
	messages := make([]string, 0, len(r.Problems))
	for _, p := range r.Problems {
		messages = append(messages, p.Message)
	}
	return messages
}

// Traverser writes wiki pages to a single output stream.
type Traverser struct {
	fs     wikifs.FileSystem
	opts   *options.Options
	w      io.Writer
	logger *log.Logger
	result Result
}

// New creates a Traverser writing to w. A nil logger discards log output.
func New(fsys wikifs.FileSystem, opts *options.Options, w io.Writer, logger *log.Logger) *Traverser {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Traverser{fs: fsys, opts: opts, w: w, logger: logger}
}

// Result returns the entries and problems recorded so far.
func (t *Traverser) Result() *Result {
	return &t.result
}

// AddDirectory writes every page listed in the .order file of path, in order.
func (t *Traverser) AddDirectory(path string, level int) error {
	orderFile := wiki.OrderFile(path)
	if !t.fs.Exists(orderFile) {
		t.problem(path, "", fmt.Sprintf("No %s file in '%s'", wiki.OrderFileName, path))
		return nil
	}

	lines, err := t.fs.ReadAllLines(orderFile)
	if err != nil {
		return fmt.Errorf("reading order file: %w", err)
	}

	t.logger.Debug("adding directory", "path", path, "level", level)
	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if err := t.AddFile(path, name, level); err != nil {
			return err
		}
	}
	return nil
}

// AddFile writes the page name in path, then its child pages from the
// same-named subdirectory one level deeper.
func (t *Traverser) AddFile(path, name string, level int) error {
	if t.opts.AutoHeading && level > 0 && t.opts.AppendixProcessing && wiki.IsAppendix(name) {
		// Appendices are flattened to a fixed level, their children follow from there.
		level = t.opts.AppendixLevel
	}

	entry := Entry{
		Dir:   path,
		Name:  name,
		Title: t.opts.PageTitle(name),
		Level: level,
		Kind:  kindOf(name),
	}

	sourceFile := wiki.ContentFile(path, name)
	if t.fs.Exists(sourceFile) {
		if err := t.writePage(sourceFile, name, level); err != nil {
			return err
		}
	} else {
		entry.Missing = true
		t.problem(path, name, fmt.Sprintf("No %s%s in '%s'", name, wiki.ContentExt, path))
	}
	t.result.Entries = append(t.result.Entries, entry)

	subdir := filepath.Join(path, name)
	if t.fs.IsDirectory(subdir) {
		return t.AddDirectory(subdir, level+1)
	}
	return nil
}

// writePage writes the heading, the demoted content and a blank separator line.
func (t *Traverser) writePage(sourceFile, name string, level int) error {
	if t.opts.AutoHeading && level > 0 {
		if _, err := fmt.Fprintln(t.w, t.opts.FileHeading(name, level)); err != nil {
			return fmt.Errorf("writing heading: %w", err)
		}
	}

	lines, err := t.fs.ReadAllLines(sourceFile)
	if err != nil {
		return fmt.Errorf("reading page: %w", err)
	}

	demote := ""
	if t.opts.AutoLevel && level > 1 {
		demote = strings.Repeat("#", level-1)
	}

	for _, line := range lines {
		if demote != "" && strings.HasPrefix(line, "#") {
			line = demote + line
		}
		if _, err := fmt.Fprintln(t.w, line); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
	}

	if _, err := fmt.Fprintln(t.w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}

func (t *Traverser) problem(path, name, message string) {
	t.logger.Error(message)
	t.result.Problems = append(t.result.Problems, Problem{Path: path, Name: name, Message: message})
}

func kindOf(name string) Kind {
	title := wiki.Decode(name)
	switch {
	case wiki.IsAppendixSection(title):
		return KindAppendices
	case wiki.IsAppendix(title):
		return KindAppendix
	default:
		return KindPage
	}
}
