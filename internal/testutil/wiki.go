// Package testutil builds wiki trees on disk for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates files under dir. Keys are slash separated paths relative
// to dir; a key ending in "/" creates an empty directory.
func WriteTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("creating dir %s: %v", path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating dir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
}

// SampleFiles is a small wiki export and a plain wiki next to a directory
// that is not a wiki:
//
//	Samples/              no .order
//	  Sample.wiki/        S1, S2
//	    S1/               SS1
//	      SS1/            SSS1
//	    S2/               SS2
//	  Sample2/            Overview, Appendix-A%3A-Glossary
var SampleFiles = map[string]string{
	"Samples/Readme.md": "Not part of a wiki\n",

	"Samples/Sample.wiki/.order":               "S1\nS2\n",
	"Samples/Sample.wiki/S1.md":                "S1 content\n",
	"Samples/Sample.wiki/S2.md":                "S2 content\n![Picture](/.attachments/pic.png)\n",
	"Samples/Sample.wiki/S1/.order":            "SS1\n",
	"Samples/Sample.wiki/S1/SS1.md":            "# SS1 heading\nSS1 content\n",
	"Samples/Sample.wiki/S1/SS1/.order":        "SSS1\n",
	"Samples/Sample.wiki/S1/SS1/SSS1.md":       "SSS1 content\n",
	"Samples/Sample.wiki/S1/My-Section.md":     "Not listed\n",
	"Samples/Sample.wiki/S2/.order":            "SS2\n",
	"Samples/Sample.wiki/S2/SS2.md":            "SS2 content\n",
	"Samples/Sample.wiki/.attachments/pic.png": "png",

	"Samples/Sample2/.order":                     "Overview\nAppendix-A%3A-Glossary\n",
	"Samples/Sample2/Overview.md":                "Overview content\n![Diagram](./.attachments/diagram%201.png)\n![Gone](./.attachments/missing.png)\n",
	"Samples/Sample2/Appendix-A%3A-Glossary.md":  "## Terms\n",
	"Samples/Sample2/.attachments/diagram 1.png": "png",
}

// SampleWiki writes SampleFiles into a temporary directory and returns the
// path of its Samples directory.
func SampleWiki(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteTree(t, dir, SampleFiles)
	return filepath.Join(dir, "Samples")
}
