package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/gorewood/wikiexport/internal/output"
	"github.com/gorewood/wikiexport/internal/testutil"
	"github.com/gorewood/wikiexport/internal/wikifs/mocks"
)

func TestExportCommand_JSON(t *testing.T) {
	isolateConfig(t)
	samples := testutil.SampleWiki(t)
	target := t.TempDir()

	stdout, _, err := execute(t, "export", "--json",
		"-s", filepath.Join(samples, "Sample.wiki"),
		"-t", target,
		"-a", "Docs Team",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result exportSummary
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if result.Title != "Sample" {
		t.Errorf("title = %q, want %q", result.Title, "Sample")
	}
	if result.Document != filepath.Join(target, "Sample.md") {
		t.Errorf("document = %q", result.Document)
	}
	if len(result.Attachments) != 1 {
		t.Errorf("attachments = %v, want 1", result.Attachments)
	}

	data, err := os.ReadFile(result.Document)
	if err != nil {
		t.Fatalf("reading document: %v", err)
	}
	if !strings.HasPrefix(string(data), "---\ntitle: Sample\nauthor: Docs Team\n") {
		t.Errorf("document front matter = %q", data)
	}
}

func TestExportCommand_Human(t *testing.T) {
	isolateConfig(t)
	samples := testutil.SampleWiki(t)
	target := t.TempDir()

	stdout, stderr, err := execute(t, "export", "--color", "never",
		"-s", filepath.Join(samples, "Sample2"),
		"-t", target,
		"-u", "Guide",
		"--project-in-title=false",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"Exported Sample2", "Document: " + filepath.Join(target, "Guide.md"), "Attachments: 1 copied"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout should contain %q: %q", want, stdout)
		}
	}
	if !strings.Contains(stderr, "Warning: Missing attachment 'missing.png'") {
		t.Errorf("stderr should warn about the missing attachment: %q", stderr)
	}
}

func TestExportCommand_StructureProblems(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"W/.order": "One\nTwo\n",
	})

	stdout, stderr, err := execute(t, "export", "-s", filepath.Join(dir, "W"), "-t", filepath.Join(dir, "out"))
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d (err = %v)", code, output.ExitUserError, err)
	}
	for _, want := range []string{"No One.md", "No Two.md"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout should list problem %q: %q", want, stdout)
		}
	}
	if !strings.Contains(stderr, "2 structural problem(s)") {
		t.Errorf("stderr = %q, want structural error", stderr)
	}
}

func TestExportCommand_InvalidOptions(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, "export", "--json", "-s", filepath.Join(t.TempDir(), "missing"))
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d (err = %v)", code, output.ExitUserError, err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	msg, _ := result["error"].(string)
	if !strings.Contains(msg, "does not exist") || !strings.Contains(msg, "target path is required") {
		t.Errorf("error = %q, want source and target problems", msg)
	}
}

func TestExportCommand_SourceFromEnvironment(t *testing.T) {
	isolateConfig(t)
	samples := testutil.SampleWiki(t)
	target := t.TempDir()
	t.Setenv("WIKIEXPORT_SOURCE", filepath.Join(samples, "Sample.wiki"))
	t.Setenv("WIKIEXPORT_FILE", "S1")

	if _, _, err := execute(t, "export", "-t", target); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "Sample S1.md")); err != nil {
		t.Errorf("document not written: %v", err)
	}
}

func TestExportCommand_SystemError(t *testing.T) {
	isolateConfig(t)
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)

	fsys.EXPECT().Exists(gomock.Any()).Return(true).AnyTimes()
	fsys.EXPECT().IsDirectory(gomock.Any()).Return(true).AnyTimes()
	fsys.EXPECT().CreateDirectory(gomock.Any()).Return(errors.New("read-only file system"))

	cmd := newExportCmdInternal(fsys, time.Now)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"-s", "/wiki", "-t", "/out", "-p", "Docs", "--title", "Guide", "-u", "Guide"})

	err := cmd.Execute()
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Fatalf("exit code = %d, want %d (err = %v)", code, output.ExitSystemError, err)
	}
	if !strings.Contains(stderr.String(), "read-only") {
		t.Errorf("stderr = %q, want the system error", stderr.String())
	}
}
