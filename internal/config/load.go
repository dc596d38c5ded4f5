package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/wikiexport/internal/options"
)

const (
	// AppName is the application name.
	AppName = "wikiexport"
	// FileName is the name of the config file in Dir.
	FileName = "config.yaml"
	// LocalFileName is the config file looked up in the working directory.
	LocalFileName = ".wikiexport.yaml"
	// EnvPrefix prefixes the environment variables read for options.
	EnvPrefix = "WIKIEXPORT"
)

// FlagNames maps option keys to the command line flags that set them.
var FlagNames = map[string]string{
	"source":         "source",
	"file":           "file",
	"target":         "target",
	"target_file":    "target-file",
	"project":        "project",
	"title":          "title",
	"title_format":   "title-format",
	"author":         "author",
	"auto_heading":   "auto-heading",
	"auto_level":     "auto-level",
	"retain_caption": "retain-caption",
	"appendix":       "appendix",
	"appendix_level": "appendix-level",
	"toc":            "toc",
	"log_level":      "log-level",
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// Dir overrides the configuration directory. Defaults to Dir().
	Dir string
	// WorkDir holds the local config file. Defaults to the current directory.
	WorkDir string
	// Flags are bound by their names in FlagNames. Only flags set on the
	// command line override other sources.
	Flags *pflag.FlagSet
}

// Loaded is the result of Load.
type Loaded struct {
	Options options.Options
	// Files lists the config files read, lowest precedence first.
	Files []string
}

// Load builds options from, in increasing precedence: defaults, the config
// file in the configuration directory, the local config file, WIKIEXPORT_*
// environment variables and flags.
func Load(lo LoadOptions) (*Loaded, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, options.Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	dir := lo.Dir
	if dir == "" {
		dir = Dir()
	}

	loaded := &Loaded{}
	for _, path := range configFiles(dir, lo.WorkDir) {
		ok, err := mergeFile(v, path)
		if err != nil {
			return nil, err
		}
		if ok {
			loaded.Files = append(loaded.Files, path)
		}
	}

	if lo.Flags != nil {
		for key, name := range FlagNames {
			flag := lo.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if err := v.Unmarshal(&loaded.Options); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return loaded, nil
}

func configFiles(dir, workDir string) []string {
	var files []string
	if dir != "" {
		files = append(files, filepath.Join(dir, FileName))
	}
	return append(files, filepath.Join(workDir, LocalFileName))
}

// mergeFile merges a YAML config file into v. A missing file is skipped.
func mergeFile(v *viper.Viper, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return false, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return true, nil
}

func setDefaults(v *viper.Viper, d options.Options) {
	v.SetDefault("source", d.SourcePath)
	v.SetDefault("file", d.SourceFile)
	v.SetDefault("target", d.TargetPath)
	v.SetDefault("target_file", d.TargetFile)
	v.SetDefault("project", d.Project)
	v.SetDefault("title", d.Title)
	v.SetDefault("title_format", d.TitleFormat)
	v.SetDefault("author", d.Author)
	v.SetDefault("auto_heading", d.AutoHeading)
	v.SetDefault("auto_level", d.AutoLevel)
	v.SetDefault("retain_caption", d.RetainCaption)
	v.SetDefault("appendix", d.AppendixProcessing)
	v.SetDefault("appendix_level", d.AppendixLevel)
	v.SetDefault("toc", d.TableOfContents)
	v.SetDefault("log_level", d.LogLevel)
}

// Marshal renders options as a config file.
func Marshal(opts options.Options) ([]byte, error) {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Write saves options as a config file at path.
func Write(path string, opts options.Options) error {
	data, err := Marshal(opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
