package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/wikiexport/internal/export"
	"github.com/gorewood/wikiexport/internal/options"
)

// --- Export tool ---

// ExportInput is the input for the export_wiki tool.
type ExportInput struct {
	Source          string `json:"source"                   jsonschema:"wiki directory to export"`
	File            string `json:"file,omitempty"           jsonschema:"page in the source directory to export with its children, without .md"`
	Target          string `json:"target,omitempty"         jsonschema:"output directory, outside the source (default from config)"`
	TargetFile      string `json:"target_file,omitempty"    jsonschema:"document name without .md (default: the document title)"`
	Project         string `json:"project,omitempty"        jsonschema:"project name (default: wiki root directory name)"`
	Title           string `json:"title,omitempty"          jsonschema:"document title (default: derived from the source)"`
	TitleFormat     string `json:"title_format,omitempty"   jsonschema:"title format with {project} and {title} placeholders"`
	Author          string `json:"author,omitempty"         jsonschema:"author written to the front matter"`
	RetainCaption   *bool  `json:"retain_caption,omitempty" jsonschema:"keep captions of attachment links"`
	TableOfContents *bool  `json:"toc,omitempty"            jsonschema:"ask the renderer for a table of contents"`
	AppendixLevel   int    `json:"appendix_level,omitempty" jsonschema:"heading level for appendix pages (default 1)"`
}

// ExportOutput is the output for the export_wiki tool.
type ExportOutput struct {
	Title           string   `json:"title"                 jsonschema:"document title"`
	Document        string   `json:"document"              jsonschema:"path of the written document"`
	AttachmentsPath string   `json:"attachments_path"      jsonschema:"directory attachments are copied to"`
	Attachments     []string `json:"attachments,omitempty" jsonschema:"copied attachment files"`
	Warnings        []string `json:"warnings,omitempty"    jsonschema:"missing attachments and other non-fatal problems"`
}

func (in ExportInput) options(defaults options.Options) options.Options {
	opts := defaults
	opts.SourcePath = in.Source
	opts.SourceFile = in.File
	opts.TargetFile = in.TargetFile
	setString(&opts.TargetPath, in.Target)
	setString(&opts.Project, in.Project)
	setString(&opts.Title, in.Title)
	setString(&opts.TitleFormat, in.TitleFormat)
	setString(&opts.Author, in.Author)
	if in.RetainCaption != nil {
		opts.RetainCaption = *in.RetainCaption
	}
	if in.TableOfContents != nil {
		opts.TableOfContents = *in.TableOfContents
	}
	if in.AppendixLevel != 0 {
		opts.AppendixLevel = in.AppendixLevel
	}
	return opts
}

func handleExport(exporter *export.Exporter, defaults options.Options) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		result, err := exporter.Export(ctx, input.options(defaults))
		if err != nil {
			var structErr *export.StructureError
			if errors.As(err, &structErr) {
				return nil, ExportOutput{}, fmt.Errorf("document %s is incomplete: %w", result.Document, err)
			}
			return nil, ExportOutput{}, fmt.Errorf("exporting wiki: %w", err)
		}

		out := ExportOutput{
			Title:           result.Title,
			Document:        result.Document,
			AttachmentsPath: result.AttachmentsPath,
			Attachments:     result.Attachments,
			Warnings:        result.Warnings,
		}
		return nil, out, nil
	}
}

// --- Outline tool ---

// OutlineInput is the input for the outline_wiki tool.
type OutlineInput struct {
	Source      string `json:"source"                 jsonschema:"wiki directory to outline"`
	File        string `json:"file,omitempty"         jsonschema:"page in the source directory to outline with its children, without .md"`
	Project     string `json:"project,omitempty"      jsonschema:"project name (default: wiki root directory name)"`
	Title       string `json:"title,omitempty"        jsonschema:"document title (default: derived from the source)"`
	TitleFormat string `json:"title_format,omitempty" jsonschema:"title format with {project} and {title} placeholders"`
}

// Page is one page of an outline.
type Page struct {
	Level   int    `json:"level"             jsonschema:"heading level in the document, 0 for the selected page itself"`
	Title   string `json:"title"             jsonschema:"page heading text"`
	Name    string `json:"name"              jsonschema:"page name as listed in the .order file"`
	Kind    string `json:"kind"              jsonschema:"page, appendix or appendices"`
	Missing bool   `json:"missing,omitempty" jsonschema:"listed in .order but the .md file is absent"`
}

// OutlineOutput is the output for the outline_wiki tool.
type OutlineOutput struct {
	Title    string   `json:"title"              jsonschema:"document title"`
	Pages    []Page   `json:"pages"              jsonschema:"pages in document order"`
	Problems []string `json:"problems,omitempty" jsonschema:"structural problems that would fail an export"`
}

func (in OutlineInput) options(defaults options.Options) options.Options {
	opts := defaults
	opts.SourcePath = in.Source
	opts.SourceFile = in.File
	setString(&opts.Project, in.Project)
	setString(&opts.Title, in.Title)
	setString(&opts.TitleFormat, in.TitleFormat)
	return opts
}

func handleOutline(exporter *export.Exporter, defaults options.Options) mcp.ToolHandlerFor[OutlineInput, OutlineOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input OutlineInput) (*mcp.CallToolResult, OutlineOutput, error) {
		outline, err := exporter.Outline(input.options(defaults))
		if err != nil {
			return nil, OutlineOutput{}, fmt.Errorf("outlining wiki: %w", err)
		}

		out := OutlineOutput{
			Title: outline.Title,
			Pages: make([]Page, 0, len(outline.Entries)),
		}
		for _, entry := range outline.Entries {
			out.Pages = append(out.Pages, Page{
				Level:   entry.Level,
				Title:   entry.Title,
				Name:    entry.Name,
				Kind:    string(entry.Kind),
				Missing: entry.Missing,
			})
		}
		for _, p := range outline.Problems {
			out.Problems = append(out.Problems, p.Message)
		}
		return nil, out, nil
	}
}

// setString overwrites dst when value is not empty.
func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
