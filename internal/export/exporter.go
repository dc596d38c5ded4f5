package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gorewood/wikiexport/internal/attachments"
	"github.com/gorewood/wikiexport/internal/logging"
	"github.com/gorewood/wikiexport/internal/options"
	"github.com/gorewood/wikiexport/internal/traverse"
	"github.com/gorewood/wikiexport/internal/wiki"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// AttachmentsSuffix is appended to the document name to form its attachments directory.
const AttachmentsSuffix = "-attachments"

// Result describes a finished (or failed) export.
type Result struct {
	Title           string             `json:"title"`
	Document        string             `json:"document"`
	AttachmentsPath string             `json:"attachments_path"`
	Attachments     []string           `json:"attachments,omitempty"`
	Warnings        []string           `json:"warnings,omitempty"`
	Problems        []traverse.Problem `json:"problems,omitempty"`
	Entries         []traverse.Entry   `json:"-"`
}

// Exporter writes wiki trees as single Markdown documents.
type Exporter struct {
	fs     wikifs.FileSystem
	logger *log.Logger
	now    func() time.Time
}

// New creates an Exporter. A nil logger discards log output; a nil now uses
// the current UTC time for the document date.
func New(fsys wikifs.FileSystem, logger *log.Logger, now func() time.Time) *Exporter {
	if logger == nil {
		logger = logging.Discard()
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Exporter{fs: fsys, logger: logger, now: now}
}

// Prepare tidies and validates the options. The returned options are the ones
// an export would use.
func (e *Exporter) Prepare(opts options.Options) (options.Options, error) {
	opts.Tidy(e.fs)
	if err := opts.Validate(e.fs); err != nil {
		e.logger.Error("invalid options", "error", err)
		return opts, &ValidationError{Err: err}
	}
	return opts, nil
}

// Export writes the document selected by opts and copies its attachments.
// The returned Result is non-nil once the document has been started, even
// when an error is returned.
func (e *Exporter) Export(ctx context.Context, opts options.Options) (*Result, error) {
	opts, err := e.Prepare(opts)
	if err != nil {
		return nil, err
	}

	resolver := options.NewResolver(&opts, e.fs)
	targetFile := resolver.SelectTargetFile()
	if targetFile == "" {
		err := &ValidationError{Err: errors.New("cannot derive a target file name, set one explicitly")}
		e.logger.Error(err.Error())
		return nil, err
	}

	if err := e.fs.CreateDirectory(opts.TargetPath); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	e.logger.Info("creating output directory", "path", opts.TargetPath)

	result := &Result{
		Title:           resolver.DocumentTitle(),
		Document:        wiki.ContentFile(opts.TargetPath, targetFile),
		AttachmentsPath: filepath.Join(opts.TargetPath, targetFile+AttachmentsSuffix),
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("export canceled: %w", err)
	}

	assembled, err := e.writeDocument(&opts, result)
	if assembled != nil {
		result.Entries = assembled.Entries
		result.Problems = assembled.Problems
	}
	if err != nil {
		return result, err
	}
	if !assembled.OK() {
		return result, &StructureError{Problems: assembled.Problems}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("export canceled: %w", err)
	}

	if err := e.fixAttachments(&opts, resolver, result); err != nil {
		return result, err
	}

	e.logger.Info("exported wiki", "document", result.Document, "attachments", len(result.Attachments))
	return result, nil
}

// Assemble writes the body of the document selected by opts to w: the whole
// source directory, or the source file and its children. opts must already be
// tidied.
func (e *Exporter) Assemble(opts *options.Options, w io.Writer) (*traverse.Result, error) {
	trav := traverse.New(e.fs, opts, w, e.logger)

	var err error
	if opts.SourceFile == "" {
		// Every page gets a heading, so start at level one.
		err = trav.AddDirectory(opts.SourcePath, 1)
	} else {
		// The selected page is the document itself.
		err = trav.AddFile(opts.SourcePath, opts.SourceFile, 0)
	}
	return trav.Result(), err
}

// writeDocument writes front matter and body to the document file. The file
// is closed before returning, whatever happened.
func (e *Exporter) writeDocument(opts *options.Options, result *Result) (assembled *traverse.Result, err error) {
	w, err := e.fs.Create(result.Document)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing document: %w", closeErr)
		}
	}()

	if _, err := io.WriteString(w, FormatFrontMatter(e.metadata(opts, result.Title))); err != nil {
		return nil, fmt.Errorf("writing front matter: %w", err)
	}

	assembled, err = e.Assemble(opts, w)
	if err != nil {
		return assembled, fmt.Errorf("assembling document: %w", err)
	}
	return assembled, nil
}

func (e *Exporter) metadata(opts *options.Options, title string) Metadata {
	return Metadata{
		Title:           title,
		Author:          opts.Author,
		Date:            e.now(),
		TableOfContents: opts.TableOfContents,
	}
}

// fixAttachments rewrites the attachment links of the closed document and
// copies the attachments next to it.
func (e *Exporter) fixAttachments(opts *options.Options, resolver *options.Resolver, result *Result) error {
	e.logger.Info("attachments will be output", "path", result.AttachmentsPath)

	text, err := e.fs.ReadAllText(result.Document)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	fixer := attachments.NewFixer(e.fs, resolver.AttachmentPath(), result.AttachmentsPath, opts.RetainCaption, e.logger)
	fixed, err := fixer.Fix(text)
	if err != nil {
		return fmt.Errorf("fixing attachments: %w", err)
	}
	result.Attachments = fixed.Copied
	result.Warnings = fixed.Warnings

	if err := e.fs.WriteAllText(result.Document, fixed.Text); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
