package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProgramPageMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--format", "md"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	assertContains(t, out, "GRCLI 1 \"grout "+groutVersion+"\"")
	assertContains(t, out, "**grcli** -- grout command line interface")
	assertContains(t, out, "# OPTIONS")
	assertContains(t, out, "#### **GROUT_SOCK_PATH**")
}

func TestCommandPageMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--format", "md", "address"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	assertContains(t, out, "GRCLI-address 1 \"grout "+groutVersion+"\"")
	assertContains(t, out, "# ARGUMENTS")
	assertContains(t, out, "**grcli-interface**(1)")
}

func TestManFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--format", "man", "route"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, buf.String(), ".TH")
}

func TestOutputFlagWritesFile(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "grcli-address.1.md")
	if err := run([]string{"-o", target, "address"}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	assertContains(t, string(content), "# NAME")
	assertContains(t, string(content), "**grcli-address**")
}

func TestGrammarFlag(t *testing.T) {
	var buf bytes.Buffer
	args := []string{"--format", "md", "--grammar", filepath.Join("testdata", "grammar.toml"), "peer"}
	if err := run(args, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, buf.String(), "**peer** add _IP_")
}

func TestUnknownCommandFails(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"--format", "md", "bogus"}, &buf)
	if err == nil {
		t.Fatal("expected an error")
	}
	assertContains(t, err.Error(), "unknown command")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTermFormatRenders(t *testing.T) {
	opts := options{format: "term"}
	out, err := formatPage(opts, []byte("# SYNOPSIS\n\n**grcli**\n"))
	if err != nil {
		t.Fatalf("formatPage: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected rendered output")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := formatPage(options{format: "pdf"}, []byte("x")); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestHelpFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--help"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	assertContains(t, out, "grcli-man [flags] [command]")
	assertContains(t, out, "--grammar")
	assertContains(t, out, "completion  Generate shell completion scripts")
}

func TestVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--version"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, buf.String(), Version)
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"completion", "bash"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected completion output")
	}
	assertContains(t, buf.String(), "__start_grcli-man")
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	if err := run([]string{"gen-docs", tmp}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	files, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("expected CLI docs to be written")
	}
	var foundRoot bool
	for _, f := range files {
		if f.Name() == "grcli-man.md" {
			foundRoot = true
			break
		}
	}
	if !foundRoot {
		t.Fatalf("expected grcli-man.md in docs output, got %v", files)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output not to contain %q\n\n%s", needle, haystack)
	}
}
