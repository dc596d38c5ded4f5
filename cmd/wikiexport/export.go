package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/wikiexport/internal/export"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	return newExportCmdInternal(wikifs.NewOS(), nil)
}

// newExportCmdInternal creates the export command with an injected file
// system and clock. A nil clock uses the current time.
func newExportCmdInternal(fsys wikifs.FileSystem, now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Merge a wiki into one Markdown document",
		Long: `Merge a wiki directory, or one page and its children, into one Markdown document.

The document starts with front matter (title, author, date) and is written to
<target>/<target-file>.md. Attachments are copied to <target>/<target-file>-attachments
and their links rewritten. Every page listed in an .order file must exist; all
missing pages are reported together.

Examples:
  wikiexport export -s ./MyProject.wiki -t ./out                 # Export the whole wiki
  wikiexport export -s ./MyProject.wiki -f Design -t ./out       # Export one page and its children
  wikiexport export -s ./MyProject.wiki -t ./out --toc -a "Docs" # With author and table of contents
  wikiexport export -s ./MyProject.wiki -t ./out --json          # Report the result as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, fsys, now)
		},
	}
	addOptionFlags(cmd)
	return cmd
}

// exportSummary is the JSON result of the export command.
type exportSummary struct {
	Title           string   `json:"title"`
	Document        string   `json:"document"`
	AttachmentsPath string   `json:"attachments_path"`
	Attachments     []string `json:"attachments"`
	Warnings        []string `json:"warnings"`
}

func runExport(cmd *cobra.Command, fsys wikifs.FileSystem, now func() time.Time) error {
	printer, opts, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	result, err := export.New(fsys, logger, now).Export(cmd.Context(), opts)
	if err != nil {
		var structErr *export.StructureError
		if errors.As(err, &structErr) && !printer.IsJSON() {
			messages := make([]string, 0, len(structErr.Problems))
			for _, p := range structErr.Problems {
				messages = append(messages, p.Message)
			}
			printer.List("Problems", messages)
		}
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(exportSummary{
			Title:           result.Title,
			Document:        result.Document,
			AttachmentsPath: result.AttachmentsPath,
			Attachments:     nonNil(result.Attachments),
			Warnings:        nonNil(result.Warnings),
		})
	}

	if err := printer.Success(fmt.Sprintf("Exported %s", result.Title), nil); err != nil {
		return err
	}
	printer.KeyValue("Document", result.Document)
	printer.KeyValue("Attachments", fmt.Sprintf("%d copied to %s", len(result.Attachments), result.AttachmentsPath))
	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}
	return nil
}

// nonNil returns an empty slice for nil so JSON shows [] instead of null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
