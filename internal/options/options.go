// Package options holds the export options and derives the names an export
// needs from them: project name, document title and target file.
package options

import (
	"strings"

	"github.com/gorewood/wikiexport/internal/wiki"
)

// Title format placeholders. The positional forms are kept for older configs.
const (
	ProjectPlaceholder = "{project}"
	TitlePlaceholder   = "{title}"

	legacyProjectPlaceholder = "{0}"
	legacyTitlePlaceholder   = "{1}"
)

const (
	// DefaultTitleFormat puts the project name in front of the title.
	DefaultTitleFormat = ProjectPlaceholder + " " + TitlePlaceholder
	// TitleOnlyFormat leaves the project out of the document title.
	TitleOnlyFormat = TitlePlaceholder
	// DefaultAppendixLevel is the heading level appendices are flattened to.
	DefaultAppendixLevel = 1
	// DefaultLogLevel is the threshold for log output.
	DefaultLogLevel = "warn"
)

// LogLevels lists the accepted values of Options.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Options configures an export. Build it with Default, overlay configuration,
// then call Tidy once before use.
type Options struct {
	// SourcePath is the wiki directory to export.
	SourcePath string `json:"source" yaml:"source,omitempty" mapstructure:"source"`
	// SourceFile selects a single page (and its children) within SourcePath.
	SourceFile string `json:"file" yaml:"file,omitempty" mapstructure:"file"`
	// TargetPath is the directory the document is written to.
	TargetPath string `json:"target" yaml:"target,omitempty" mapstructure:"target"`
	// TargetFile names the document, without extension. Defaults to the document title.
	TargetFile string `json:"target_file" yaml:"target_file,omitempty" mapstructure:"target_file"`

	Project     string `json:"project" yaml:"project,omitempty" mapstructure:"project"`
	Title       string `json:"title" yaml:"title,omitempty" mapstructure:"title"`
	TitleFormat string `json:"title_format" yaml:"title_format" mapstructure:"title_format"`
	Author      string `json:"author" yaml:"author,omitempty" mapstructure:"author"`

	// AutoHeading adds a heading for each page below the top level.
	AutoHeading bool `json:"auto_heading" yaml:"auto_heading" mapstructure:"auto_heading"`
	// AutoLevel demotes the headings inside a page to its nesting level.
	AutoLevel bool `json:"auto_level" yaml:"auto_level" mapstructure:"auto_level"`
	// RetainCaption keeps the captions of attachment links.
	RetainCaption bool `json:"retain_caption" yaml:"retain_caption" mapstructure:"retain_caption"`
	// AppendixProcessing flattens appendix pages to AppendixLevel and strips their label.
	AppendixProcessing bool `json:"appendix" yaml:"appendix" mapstructure:"appendix"`
	AppendixLevel      int  `json:"appendix_level" yaml:"appendix_level" mapstructure:"appendix_level"`
	// TableOfContents asks the document renderer for a table of contents.
	TableOfContents bool `json:"toc" yaml:"toc" mapstructure:"toc"`

	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		TitleFormat:        DefaultTitleFormat,
		AutoHeading:        true,
		AutoLevel:          true,
		AppendixProcessing: true,
		AppendixLevel:      DefaultAppendixLevel,
		LogLevel:           DefaultLogLevel,
	}
}

// ProjectInTitle reports whether the title format has a project placeholder.
func (o *Options) ProjectInTitle() bool {
	return strings.Contains(o.TitleFormat, ProjectPlaceholder) ||
		strings.Contains(o.TitleFormat, legacyProjectPlaceholder)
}

// FormatTitle substitutes project and title into the title format.
func (o *Options) FormatTitle(project, title string) string {
	replacer := strings.NewReplacer(
		ProjectPlaceholder, project,
		legacyProjectPlaceholder, project,
		TitlePlaceholder, title,
		legacyTitlePlaceholder, title,
	)
	return replacer.Replace(o.TitleFormat)
}

// PageTitle returns the display title of a page name, without the appendix
// label when appendix processing is on.
func (o *Options) PageTitle(name string) string {
	title := wiki.Decode(name)
	if o.AppendixProcessing {
		title = wiki.AppendixName(title)
	}
	return title
}

// FileHeading returns the Markdown heading for a page at the given level.
func (o *Options) FileHeading(name string, level int) string {
	return strings.Repeat("#", level) + " " + o.PageTitle(name)
}
