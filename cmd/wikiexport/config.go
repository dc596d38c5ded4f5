package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/wikiexport/internal/config"
	"github.com/gorewood/wikiexport/internal/options"
	"github.com/gorewood/wikiexport/internal/output"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	var writeFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the options an export would use after merging defaults, config files,
WIKIEXPORT_* environment variables and flags.

Config files, lowest precedence first:
  <config dir>/config.yaml   ($WIKIEXPORT_CONFIG_HOME or $XDG_CONFIG_HOME/wikiexport)
  ./.wikiexport.yaml

Examples:
  wikiexport config                                  # Show the effective configuration
  wikiexport config -s ./MyProject.wiki -t ./out --write  # Save options to ./.wikiexport.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, writeFlag)
		},
	}
	addOptionFlags(cmd)
	cmd.Flags().BoolVar(&writeFlag, "write", false, "Save the effective configuration to "+config.LocalFileName)
	return cmd
}

// configResult is the JSON result of the config command.
type configResult struct {
	Options options.Options `json:"options"`
	Files   []string        `json:"files"`
	Written string          `json:"written,omitempty"`
}

func runConfig(cmd *cobra.Command, write bool) error {
	printer := newPrinter(cmd)

	loaded, err := loadOptions(cmd)
	if err != nil {
		exitErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	result := configResult{Options: loaded.Options, Files: nonNil(loaded.Files)}
	if write {
		if err := config.Write(config.LocalFileName, loaded.Options); err != nil {
			exitErr := output.NewSystemErrorWithCause(err.Error(), err)
			printer.Error(exitErr)
			return exitErr
		}
		result.Written = config.LocalFileName
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	data, err := config.Marshal(loaded.Options)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}
	printer.Print("%s", data)

	for _, file := range result.Files {
		printer.Stderr("Loaded %s\n", file)
	}
	if result.Written != "" {
		return printer.Success(fmt.Sprintf("Saved %s", result.Written), nil)
	}
	return nil
}
