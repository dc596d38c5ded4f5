package options

import (
	"path/filepath"
	"strings"

	"github.com/gorewood/wikiexport/internal/wiki"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// Resolver derives export names from options and the layout of the wiki on disk.
type Resolver struct {
	opts *Options
	fs   wikifs.FileSystem
}

// NewResolver creates a Resolver for the given options.
func NewResolver(opts *Options, fsys wikifs.FileSystem) *Resolver {
	return &Resolver{opts: opts, fs: fsys}
}

// WikiRoot returns the root of the wiki holding the source path, or "".
func (r *Resolver) WikiRoot() string {
	return wiki.Root(r.fs, r.opts.SourcePath)
}

// IsRoot reports whether the source path is the wiki root.
func (r *Resolver) IsRoot() bool {
	root := r.WikiRoot()
	return root != "" && root == absPath(r.opts.SourcePath)
}

// ProjectName returns the explicit project, or the wiki root directory name
// up to its first dot ("Sample.wiki" gives "Sample"). Returns "" outside a wiki.
func (r *Resolver) ProjectName() string {
	if r.opts.Project != "" {
		return r.opts.Project
	}

	root := r.WikiRoot()
	if root == "" {
		return ""
	}
	name, _, _ := strings.Cut(filepath.Base(root), ".")
	return name
}

// DocumentTitleBase returns the undecoded title of the document before the
// title format is applied.
func (r *Resolver) DocumentTitleBase() string {
	switch {
	case r.opts.Title != "":
		return r.opts.Title
	case r.opts.SourceFile != "":
		return r.opts.SourceFile
	case r.IsRoot():
		// Without the project in the title, the root would have no title at all.
		if !r.opts.ProjectInTitle() {
			return r.ProjectName()
		}
		return ""
	default:
		return filepath.Base(absPath(r.opts.SourcePath))
	}
}

// DocumentTitle returns the display title of the document.
func (r *Resolver) DocumentTitle() string {
	title := wiki.Decode(r.DocumentTitleBase())
	if r.opts.ProjectInTitle() {
		title = r.opts.FormatTitle(wiki.Decode(r.ProjectName()), title)
	}
	return strings.TrimSpace(title)
}

// SelectTargetFile returns the document file name without extension.
func (r *Resolver) SelectTargetFile() string {
	if r.opts.TargetFile != "" {
		return r.opts.TargetFile
	}
	return r.DocumentTitle()
}

// AttachmentPath returns the wiki .attachments directory, or "" outside a wiki.
func (r *Resolver) AttachmentPath() string {
	return wiki.AttachmentPath(r.fs, r.opts.SourcePath)
}

// absPath returns an absolute, cleaned path, falling back to a cleaned path.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
