package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gorewood/wikiexport/internal/config"
	"github.com/gorewood/wikiexport/internal/export"
	"github.com/gorewood/wikiexport/internal/logging"
	"github.com/gorewood/wikiexport/internal/options"
	"github.com/gorewood/wikiexport/internal/output"
)

// addOptionFlags registers the export option flags on cmd. Flag defaults
// match options.Default; config files and the environment override them
// unless the flag is given.
func addOptionFlags(cmd *cobra.Command) {
	d := options.Default()
	flags := cmd.Flags()

	flags.StringP("source", "s", d.SourcePath, "Wiki directory to export")
	flags.StringP("file", "f", d.SourceFile, "Page in the source directory to export with its children")
	flags.StringP("target", "t", d.TargetPath, "Output directory, outside the source")
	flags.StringP("target-file", "u", d.TargetFile, "Document name without .md (default: the document title)")

	flags.StringP("project", "p", d.Project, "Project name (default: wiki root directory name)")
	flags.Bool("project-in-title", true, "Put the project name in the document title")
	flags.String("title", d.Title, "Document title (default: derived from the source)")
	flags.String("title-format", d.TitleFormat, "Title format with {project} and {title} placeholders")
	flags.StringP("author", "a", d.Author, "Author written to the front matter")

	flags.Bool("auto-heading", d.AutoHeading, "Add a heading for each page")
	flags.Bool("auto-level", d.AutoLevel, "Demote page headings to the page's nesting level")
	flags.BoolP("retain-caption", "c", d.RetainCaption, "Keep captions of attachment links")
	flags.Bool("appendix", d.AppendixProcessing, "Flatten appendix pages and strip their label")
	flags.Int("appendix-level", d.AppendixLevel, "Heading level for appendix pages")
	flags.Bool("toc", d.TableOfContents, "Ask the renderer for a table of contents")
	flags.String("log-level", d.LogLevel, "Log level: "+strings.Join(options.LogLevels, ", "))
}

// loadOptions resolves options from config files, the environment and the
// flags set on cmd.
func loadOptions(cmd *cobra.Command) (*config.Loaded, error) {
	loaded, err := config.Load(config.LoadOptions{Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("project-in-title") && !flags.Changed("title-format") {
		inTitle, _ := flags.GetBool("project-in-title")
		opts := &loaded.Options
		switch {
		case !inTitle:
			opts.TitleFormat = options.TitleOnlyFormat
		case !opts.ProjectInTitle():
			opts.TitleFormat = options.DefaultTitleFormat
		}
	}
	return loaded, nil
}

// setup loads options and creates the logger and printer for a command.
// Failures are printed and returned as exit errors.
func setup(cmd *cobra.Command) (*output.Printer, options.Options, *log.Logger, error) {
	printer := newPrinter(cmd)

	loaded, err := loadOptions(cmd)
	if err != nil {
		exitErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return printer, options.Options{}, nil, exitErr
	}

	logger, err := logging.New(cmd.ErrOrStderr(), loaded.Options.LogLevel)
	if err != nil {
		exitErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return printer, options.Options{}, nil, exitErr
	}
	return printer, loaded.Options, logger, nil
}

// toExitError maps export errors to exit codes: invalid options and broken
// wikis are user errors, everything else is a system error.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var valErr *export.ValidationError
	var structErr *export.StructureError
	if errors.As(err, &valErr) || errors.As(err, &structErr) {
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}
