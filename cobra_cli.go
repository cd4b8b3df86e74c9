package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
grcli-man renders manual pages for grcli, the grout command line interface, from its
command grammar tree. Without arguments it emits the grcli(1) program page; with a
command name it emits that command's page, e.g. grcli-address(1).

Pages are man-flavored Markdown by default, ready for go-md2man. The --format flag can
convert them on the fly:

  • md    raw Markdown (default when piping or writing to a file)
  • man   roff output, ready for man(1)
  • term  styled output for reading directly in the terminal
  • auto  term when stdout is a terminal, md otherwise

An alternative command grammar can be loaded from a TOML file with --grammar, so pages
can be generated for grammars produced by other grout builds.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "grcli-man [flags] [command]",
		Short:         "Render grcli manual pages from the command grammar",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write output to file instead of stdout")
	flags.StringVarP(&app.opts.format, "format", "t", "auto", "output format: md, man, term or auto")
	flags.StringVarP(&app.opts.grammarPath, "grammar", "g", "", "load the command grammar from a TOML file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for grcli-man.

The output should be evaluated by your shell. For example:

  # bash
  grcli-man completion bash > /usr/local/etc/bash_completion.d/grcli-man

  # zsh
  grcli-man completion zsh > "${fpath[1]}/_grcli-man"

  # fish
  grcli-man completion fish | source

  # PowerShell
  grcli-man completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  grcli-man gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
