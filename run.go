package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/cpuguy83/go-md2man/v2/md2man"
	"golang.org/x/term"
)

type options struct {
	outputPath  string
	format      string
	grammarPath string
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(args []string) error {
	commands := node(builtinCommands())
	if app.opts.grammarPath != "" {
		loaded, err := loadGrammarFile(app.opts.grammarPath)
		if err != nil {
			return err
		}
		commands = loaded
	}

	// Pages are rendered into memory first so that a failed lookup never
	// leaks a partial document to the output.
	var page bytes.Buffer
	if len(args) == 0 {
		renderProgramPage(&page, builtinOptions())
	} else if err := renderCommandPage(&page, commands, args[0]); err != nil {
		return err
	}

	out, err := formatPage(app.opts, page.Bytes())
	if err != nil {
		return err
	}
	return writeOutput(app.opts.outputPath, app.stdout, out)
}

// resolveFormat picks the concrete output format. "auto" renders for the
// terminal when stdout is one, and falls back to raw markdown otherwise;
// file output is always raw markdown unless a format is forced.
func resolveFormat(opts options) string {
	if opts.format != "" && opts.format != "auto" {
		return opts.format
	}
	if opts.outputPath != "" && opts.outputPath != "-" {
		return "md"
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "term"
	}
	return "md"
}

func formatPage(opts options, markdown []byte) ([]byte, error) {
	switch format := resolveFormat(opts); format {
	case "md":
		return markdown, nil
	case "man":
		return md2man.Render(markdown), nil
	case "term":
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return nil, fmt.Errorf("initialize terminal renderer: %w", err)
		}
		return renderer.RenderBytes(markdown)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
