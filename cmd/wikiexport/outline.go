package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/wikiexport/internal/export"
	"github.com/gorewood/wikiexport/internal/output"
	"github.com/gorewood/wikiexport/internal/traverse"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// newOutlineCmd creates the outline command.
func newOutlineCmd() *cobra.Command {
	return newOutlineCmdInternal(wikifs.NewOS())
}

// newOutlineCmdInternal creates the outline command with an injected file system.
func newOutlineCmdInternal(fsys wikifs.FileSystem) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Show the pages an export would include",
		Long: `Show the pages an export would include, in document order, with their heading
levels. Nothing is written. Missing pages and .order files are listed and make
the command fail, as they would fail an export.

Examples:
  wikiexport outline -s ./MyProject.wiki            # Outline the whole wiki
  wikiexport outline -s ./MyProject.wiki -f Design  # Outline one page and its children
  wikiexport outline -s ./MyProject.wiki --json     # Outline as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOutline(cmd, fsys)
		},
	}
	addOptionFlags(cmd)
	return cmd
}

func runOutline(cmd *cobra.Command, fsys wikifs.FileSystem) error {
	printer, opts, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	outline, err := export.New(fsys, logger, nil).Outline(opts)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(outline); err != nil {
			return err
		}
	} else {
		printOutline(printer, outline)
	}

	if len(outline.Problems) > 0 {
		exitErr := toExitError(&export.StructureError{Problems: outline.Problems})
		if !printer.IsJSON() {
			printer.Error(exitErr)
		}
		return exitErr
	}
	return nil
}

func printOutline(printer *output.Printer, outline *export.Outline) {
	printer.KeyValue("Title", outline.Title)
	printer.Println()

	rows := make([][]string, 0, len(outline.Entries))
	for _, entry := range outline.Entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Level),
			indent(entry) + entry.Title,
			string(entry.Kind),
			entryStatus(entry),
		})
	}
	printer.Table([]string{"LEVEL", "TITLE", "KIND", "STATUS"}, rows)

	messages := make([]string, 0, len(outline.Problems))
	for _, p := range outline.Problems {
		messages = append(messages, p.Message)
	}
	printer.List(fmt.Sprintf("Problems (%d)", len(messages)), messages)
}

func indent(entry traverse.Entry) string {
	if entry.Level <= 1 {
		return ""
	}
	return strings.Repeat("  ", entry.Level-1)
}

func entryStatus(entry traverse.Entry) string {
	if entry.Missing {
		return "missing"
	}
	return "ok"
}
