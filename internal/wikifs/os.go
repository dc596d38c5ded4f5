package wikifs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// maxLineSize bounds a single line of a wiki page (embedded images can be long).
	maxLineSize = 4 * 1024 * 1024
)

// utf8BOM is written by some Windows editors at the start of .order and page files.
const utf8BOM = "\ufeff"

// OS is a FileSystem backed by the local disk.
type OS struct{}

// NewOS returns a FileSystem for the local disk.
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether a file or directory exists at path.
func (*OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory reports whether path is an existing directory.
func (*OS) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadAllLines returns the lines of a text file without \n or \r\n terminators.
func (*OS) ReadAllLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// ReadAllText returns the full content of a text file.
func (*OS) ReadAllText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteAllText replaces the content of a file, creating it if needed.
func (*OS) WriteAllText(path string, text string) error {
	if err := os.WriteFile(path, []byte(text), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CreateDirectory creates a directory and any missing parents.
func (*OS) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// CopyFile copies src to dst. When overwrite is false an existing dst is an error.
func (*OS) CopyFile(src, dst string, overwrite bool) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close() //nolint:errcheck // best-effort close on read-only file

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(dst, flags, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, filepath.Base(dst), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// Create opens a file for writing, truncating any existing content.
// Writes are buffered; the buffer is flushed by Close.
func (*OS) Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &bufferedFile{file: file, Writer: bufio.NewWriter(file)}, nil
}

type bufferedFile struct {
	*bufio.Writer
	file *os.File
}

// Close flushes pending writes and closes the file. The file is closed even
// when the flush fails.
func (b *bufferedFile) Close() error {
	flushErr := b.Flush()
	closeErr := b.file.Close()
	return errors.Join(flushErr, closeErr)
}
