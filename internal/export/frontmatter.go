package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// DateLayout formats the export date in the front matter, e.g. "2 January 2006".
const DateLayout = "2 January 2006"

// Metadata is written as the front matter of an exported document.
type Metadata struct {
	Title           string
	Author          string
	Date            time.Time
	TableOfContents bool
}

// FormatFrontMatter returns the front matter block for a document.
// Values are written as is; pandoc reads them as plain scalars.
func FormatFrontMatter(meta Metadata) string {
	var builder strings.Builder

	builder.WriteString("---\n")
	fmt.Fprintf(&builder, "title: %s\n", meta.Title)
	fmt.Fprintf(&builder, "author: %s\n", meta.Author)
	fmt.Fprintf(&builder, "date: %s\n", meta.Date.Format(DateLayout))
	if meta.TableOfContents {
		builder.WriteString("toc: yes\n")
	}
	builder.WriteString("---\n")

	return builder.String()
}

type frontMatterEnvelope struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
	TOC    string `yaml:"toc"`
}

// ParseFrontMatter splits a document written by an export into its metadata
// and body. A date that does not match DateLayout is left zero.
func ParseFrontMatter(source []byte) (Metadata, []byte, error) {
	var envelope frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &envelope)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("parse front matter: %w", err)
	}

	meta := Metadata{
		Title:           envelope.Title,
		Author:          envelope.Author,
		TableOfContents: envelope.TOC == "yes" || envelope.TOC == "true",
	}
	if date, err := time.Parse(DateLayout, envelope.Date); err == nil {
		meta.Date = date
	}
	return meta, body, nil
}
