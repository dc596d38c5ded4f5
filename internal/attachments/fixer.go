// Package attachments rewrites attachment references in an exported document
// and copies the referenced files next to it.
package attachments

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gorewood/wikiexport/internal/logging"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// referencePattern matches [caption](prefix/.attachments/name) on a single line.
// Caption and prefix are greedy, so name follows the last .attachments/ before
// the closing parenthesis.
var referencePattern = regexp.MustCompile(`\[(?P<caption>.*)\]\((?P<path>.*/?\.attachments)/(?P<name>.+)\)`)

var (
	captionIndex = referencePattern.SubexpIndex("caption")
	nameIndex    = referencePattern.SubexpIndex("name")
)

// Reference is an attachment reference found in a document.
type Reference struct {
	Caption string
	// Name is the attachment name as written in the link, still URL encoded.
	Name string
	// FileName is the decoded name relative to the attachments directory.
	FileName string
}

// Result describes the outcome of a Fix pass.
type Result struct {
	Text       string
	References []Reference
	// Copied lists the target paths of the copied files, in document order.
	Copied   []string
	Warnings []string
}

// Fixer copies attachments from a wiki to an export directory and rewrites
// the links pointing at them.
type Fixer struct {
	fs            wikifs.FileSystem
	sourcePath    string
	targetPath    string
	retainCaption bool
	logger        *log.Logger
}

// NewFixer creates a Fixer. sourcePath is the wiki .attachments directory and
// may be empty when the source is not inside a wiki; targetPath is the
// directory the attachments are copied to. A nil logger discards log output.
func NewFixer(fsys wikifs.FileSystem, sourcePath, targetPath string, retainCaption bool, logger *log.Logger) *Fixer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Fixer{
		fs:            fsys,
		sourcePath:    sourcePath,
		targetPath:    targetPath,
		retainCaption: retainCaption,
		logger:        logger,
	}
}

// Fix rewrites every attachment reference in text to point at the target
// directory and copies the referenced files. A missing attachment is reported
// as a warning and its link is still rewritten. Errors are returned only when
// a copy fails.
func (f *Fixer) Fix(text string) (*Result, error) {
	result := &Result{}
	linkDir := filepath.Base(f.targetPath)

	var fixErr error
	fixed := referencePattern.ReplaceAllStringFunc(text, func(match string) string {
		if fixErr != nil {
			return match
		}
		groups := referencePattern.FindStringSubmatch(match)
		ref := f.parse(groups)
		result.References = append(result.References, ref)

		copied, warning, err := f.copy(ref)
		switch {
		case err != nil:
			fixErr = err
			return match
		case warning != "":
			result.Warnings = append(result.Warnings, warning)
		default:
			result.Copied = append(result.Copied, copied)
		}

		caption := ""
		if f.retainCaption {
			caption = ref.Caption
		}
		return fmt.Sprintf("[%s](%s/%s)", caption, linkDir, ref.Name)
	})
	if fixErr != nil {
		return nil, fixErr
	}

	result.Text = fixed
	return result, nil
}

// parse builds a Reference from the submatches of referencePattern.
func (f *Fixer) parse(groups []string) Reference {
	name := groups[nameIndex]
	fileName, err := url.QueryUnescape(name)
	if err != nil {
		f.logger.Debug("attachment name is not URL encoded", "name", name, "error", err)
		fileName = name
	}
	return Reference{
		Caption:  groups[captionIndex],
		Name:     name,
		FileName: fileName,
	}
}

// copy copies a referenced attachment into the target directory, creating
// any subdirectories it lives in. Returns the target path, or a warning when
// the source file does not exist or the name leaves either attachments directory.
func (f *Fixer) copy(ref Reference) (string, string, error) {
	rel := filepath.FromSlash(ref.FileName)
	if f.sourcePath == "" {
		warning := fmt.Sprintf("No attachments directory for '%s'", ref.FileName)
		f.logger.Warn(warning)
		return "", warning, nil
	}

	source := filepath.Join(f.sourcePath, rel)
	target := filepath.Join(f.targetPath, rel)
	if !within(f.sourcePath, source) || !within(f.targetPath, target) {
		warning := fmt.Sprintf("Attachment '%s' is outside '%s'", ref.FileName, f.sourcePath)
		f.logger.Warn(warning)
		return "", warning, nil
	}

	if !f.fs.Exists(source) {
		warning := fmt.Sprintf("Missing attachment '%s' in '%s'", ref.FileName, f.sourcePath)
		f.logger.Warn(warning)
		return "", warning, nil
	}

	if err := f.fs.CreateDirectory(filepath.Dir(target)); err != nil {
		return "", "", fmt.Errorf("creating attachment directory: %w", err)
	}
	if err := f.fs.CopyFile(source, target, true); err != nil {
		return "", "", fmt.Errorf("copying attachment %s: %w", ref.FileName, err)
	}
	f.logger.Debug("copied attachment", "name", ref.FileName, "target", target)
	return target, "", nil
}

// within reports whether path is base or lies below it.
func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
