package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/wikiexport/internal/testutil"
)

func TestPreviewCommand_RawWhenNotTTY(t *testing.T) {
	isolateConfig(t)
	samples := testutil.SampleWiki(t)

	stdout, _, err := execute(t, "preview", "-s", filepath.Join(samples, "Sample.wiki"), "-f", "S2", "-a", "Docs Team")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"title: Sample S2\nauthor: Docs Team\n",
		"S2 content\n![Picture](/.attachments/pic.png)\n\n# SS2\nSS2 content\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("preview should contain %q:\n%s", want, stdout)
		}
	}
}

func TestPreviewCommand_JSON(t *testing.T) {
	isolateConfig(t)
	samples := testutil.SampleWiki(t)

	stdout, _, err := execute(t, "preview", "--json", "-s", filepath.Join(samples, "Sample2"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result previewResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if result.Title != "Sample2" {
		t.Errorf("title = %q, want %q", result.Title, "Sample2")
	}
	if !strings.Contains(result.Markdown, "# Glossary\n## Terms\n") {
		t.Errorf("markdown = %q", result.Markdown)
	}
	if strings.Contains(result.Markdown, "title:") {
		t.Errorf("markdown should not contain front matter: %q", result.Markdown)
	}
	if len(result.Problems) != 0 {
		t.Errorf("problems = %v, want none", result.Problems)
	}
}

func TestRenderMarkdown(t *testing.T) {
	rendered, err := renderMarkdown("# Overview\n\nSome *text*.\n", 40)
	if err != nil {
		t.Fatalf("renderMarkdown() error = %v", err)
	}
	if !strings.Contains(rendered, "Overview") || !strings.Contains(rendered, "text") {
		t.Errorf("rendered = %q", rendered)
	}
}

func TestPreviewCommand_TitleWithColon(t *testing.T) {
	isolateConfig(t)
	samples := testutil.SampleWiki(t)

	stdout, _, err := execute(t, "preview", "--json", "-s", filepath.Join(samples, "Sample2"), "-f", "Appendix A: Glossary")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result previewResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if !strings.Contains(result.Markdown, "## Terms") {
		t.Errorf("markdown = %q", result.Markdown)
	}
}
