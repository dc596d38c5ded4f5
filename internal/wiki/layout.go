package wiki

import (
	"path/filepath"

	"github.com/gorewood/wikiexport/internal/wikifs"
)

const (
	// OrderFileName is the manifest listing the pages of a section in display order.
	OrderFileName = ".order"
	// AttachmentsDirName is the directory under the wiki root holding attachments.
	AttachmentsDirName = ".attachments"
	// ContentExt is the extension of a page file.
	ContentExt = ".md"
)

// OrderFile returns the path of the .order file for a directory.
func OrderFile(dir string) string {
	return filepath.Join(dir, OrderFileName)
}

// ContentFile returns the path of the page file for name within dir.
func ContentFile(dir, name string) string {
	return filepath.Join(dir, name+ContentExt)
}

// HasOrderFile reports whether dir contains an .order file.
func HasOrderFile(fsys wikifs.FileSystem, dir string) bool {
	return fsys.Exists(OrderFile(dir))
}

// Root walks upward from path while each directory has an .order file and
// returns the topmost one. Returns "" when path itself has no .order file.
func Root(fsys wikifs.FileSystem, path string) string {
	candidate, err := filepath.Abs(path)
	if err != nil {
		candidate = filepath.Clean(path)
	}

	root := ""
	for HasOrderFile(fsys, candidate) {
		root = candidate
		parent := filepath.Dir(candidate)
		if parent == candidate {
			break
		}
		candidate = parent
	}
	return root
}

// AttachmentPath returns the .attachments directory of the wiki holding path,
// or "" when path is not inside a wiki. The directory may not exist.
func AttachmentPath(fsys wikifs.FileSystem, path string) string {
	root := Root(fsys, path)
	if root == "" {
		return ""
	}
	return filepath.Join(root, AttachmentsDirName)
}
