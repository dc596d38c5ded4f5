package main

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/gorewood/wikiexport/internal/export"
	"github.com/gorewood/wikiexport/internal/output"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	return newPreviewCmdInternal(wikifs.NewOS())
}

// newPreviewCmdInternal creates the preview command with an injected file system.
func newPreviewCmdInternal(fsys wikifs.FileSystem) *cobra.Command {
	var widthFlag int
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the merged document in the terminal",
		Long: `Assemble the merged document in memory and render it in the terminal.
Nothing is written and attachment links are shown as they are in the wiki.
When the output is not a terminal, or with --raw, the Markdown is printed as is.

Examples:
  wikiexport preview -s ./MyProject.wiki -f Design   # Render one page and its children
  wikiexport preview -s ./MyProject.wiki --raw       # Print the merged Markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, fsys, widthFlag, rawFlag)
		},
	}
	addOptionFlags(cmd)
	cmd.Flags().IntVar(&widthFlag, "width", 100, "Word wrap width for rendering")
	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print Markdown without rendering")
	return cmd
}

// previewResult is the JSON result of the preview command.
type previewResult struct {
	Title    string   `json:"title"`
	Markdown string   `json:"markdown"`
	Problems []string `json:"problems"`
}

func runPreview(cmd *cobra.Command, fsys wikifs.FileSystem, width int, raw bool) error {
	printer, opts, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	assembled, err := export.New(fsys, logger, nil).Render(opts, &buf)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	// Titles are written unquoted and may not parse back as YAML.
	meta, body, err := export.ParseFrontMatter(buf.Bytes())
	if err != nil {
		logger.Warn("showing front matter as text", "error", err)
		meta, body = export.Metadata{}, buf.Bytes()
	}

	if printer.IsJSON() {
		return printer.WriteJSON(previewResult{
			Title:    meta.Title,
			Markdown: string(body),
			Problems: nonNil(assembled.Messages()),
		})
	}

	for _, message := range assembled.Messages() {
		printer.Warn("%s", message)
	}

	if raw || !printer.IsTTY() {
		printer.Print("%s", buf.String())
		return nil
	}

	rendered, err := renderMarkdown(string(body), width)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(fmt.Sprintf("rendering preview: %v", err), err)
		printer.Error(exitErr)
		return exitErr
	}
	if meta.Title != "" {
		printer.Section(meta.Title)
	}
	printer.Print("%s", rendered)
	return nil
}

// renderMarkdown renders Markdown for the terminal using glamour.
func renderMarkdown(markdown string, width int) (string, error) {
	rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
