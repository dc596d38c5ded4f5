// Package wikifs provides the filesystem capabilities the exporter consumes.
//
// The exporter never touches the os package directly; it works against
// FileSystem so traversal and attachment handling can be tested with a mock.
package wikifs

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_file_system.go -package=mocks github.com/gorewood/wikiexport/internal/wikifs FileSystem

import "io"

// FileSystem is the set of file operations used during an export.
type FileSystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool
	// IsDirectory reports whether path is an existing directory.
	IsDirectory(path string) bool
	// ReadAllLines returns the lines of a text file without line terminators.
	ReadAllLines(path string) ([]string, error)
	// ReadAllText returns the full content of a text file.
	ReadAllText(path string) (string, error)
	// WriteAllText replaces the content of a file, creating it if needed.
	WriteAllText(path string, text string) error
	// CreateDirectory creates a directory and any missing parents.
	CreateDirectory(path string) error
	// CopyFile copies src to dst. An existing dst is replaced only when overwrite is set.
	CopyFile(src, dst string, overwrite bool) error
	// Create opens a file for writing, truncating any existing content.
	Create(path string) (io.WriteCloser, error)
}
