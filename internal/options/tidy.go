package options

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gorewood/wikiexport/internal/wiki"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// Tidy normalizes user input. Paths and page names given in display form
// ("My Section") are replaced by their wiki encoding when only the encoded
// form exists on disk. A trailing .md is dropped from file names.
func (o *Options) Tidy(fsys wikifs.FileSystem) {
	o.SourcePath = cleanPath(o.SourcePath)
	o.TargetPath = cleanPath(o.TargetPath)
	o.SourceFile = strings.TrimSuffix(strings.TrimSpace(o.SourceFile), wiki.ContentExt)
	o.TargetFile = strings.TrimSuffix(strings.TrimSpace(o.TargetFile), wiki.ContentExt)
	o.LogLevel = strings.ToLower(strings.TrimSpace(o.LogLevel))

	if o.SourcePath != "" && !fsys.Exists(o.SourcePath) {
		if encoded := wiki.FixupPath(wiki.Encode(o.SourcePath)); fsys.Exists(encoded) {
			o.SourcePath = encoded
		}
	}

	if o.SourceFile != "" && !fsys.Exists(wiki.ContentFile(o.SourcePath, o.SourceFile)) {
		if encoded := wiki.Encode(o.SourceFile); fsys.Exists(wiki.ContentFile(o.SourcePath, encoded)) {
			o.SourceFile = encoded
		}
	}
}

func cleanPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// Validate checks the option combination before anything is written.
func (o *Options) Validate(fsys wikifs.FileSystem) error {
	rules := append(o.sourceRules(fsys),
		validation.Field(&o.TargetPath,
			validation.Required.Error("target path is required"),
			validation.By(o.outsideSource),
		),
	)
	return validation.ValidateStruct(o, rules...)
}

// ValidateSource checks the options needed to read the wiki. The target is
// not checked.
func (o *Options) ValidateSource(fsys wikifs.FileSystem) error {
	return validation.ValidateStruct(o, o.sourceRules(fsys)...)
}

func (o *Options) sourceRules(fsys wikifs.FileSystem) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&o.SourcePath,
			validation.Required.Error("source path is required"),
			validation.By(directoryExists(fsys)),
		),
		validation.Field(&o.AppendixLevel,
			validation.Required.Error("must be at least 1"),
			validation.Min(1).Error("must be at least 1"),
		),
		validation.Field(&o.LogLevel,
			validation.In(toAny(LogLevels)...).Error("must be one of "+strings.Join(LogLevels, ", ")),
		),
	}
}

func directoryExists(fsys wikifs.FileSystem) validation.RuleFunc {
	return func(value any) error {
		path, _ := value.(string)
		if !fsys.IsDirectory(path) {
			return fmt.Errorf("source directory '%s' does not exist", path)
		}
		return nil
	}
}

// outsideSource rejects a target that is the source or lies inside it.
func (o *Options) outsideSource(value any) error {
	target, _ := value.(string)
	if o.SourcePath == "" {
		return nil
	}

	source := absPath(o.SourcePath)
	rel, err := filepath.Rel(source, absPath(target))
	if err != nil {
		return nil //nolint:nilerr // different volumes cannot nest
	}
	if rel == "." {
		return errors.New("target path must differ from the source path")
	}
	if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.New("target path must not be inside the source path")
	}
	return nil
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
