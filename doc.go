// # grcli-man
//
// `grcli-man` generates the manual pages of `grcli`, the grout command line
// interface, from its command grammar tree. The grammar describes every piece
// of command syntax as a tree of typed nodes (literals, typed argument leaves,
// alternations, sequences, optional and repeated groups); grcli-man walks that
// tree and projects it into man-flavored Markdown that go-md2man turns into
// the installed grcli(1), grcli-interface(1), grcli-address(1), ... pages.
//
// Key capabilities:
//
//   - render the whole-program page with the option synopsis and option list
//     derived from the options grammar, plus the fixed ENVIRONMENT, SEE ALSO
//     and REPORTING BUGS sections.
//   - render one page per command group, with a synopsis line per variant, a
//     deduplicated argument glossary, and SEE ALSO cross-references inferred
//     from the argument names a command touches (interface-, address-,
//     nexthop- and VRF-shaped arguments each link their page).
//   - render standalone command pages for leaf commands such as `quit`.
//   - convert the Markdown on the fly: `--format man` (roff via go-md2man),
//     `--format term` (styled terminal output via glamour), `--format md`.
//   - load an alternative command grammar from a TOML file via `--grammar`,
//     so pages can be generated for grammars from other grout builds.
//   - ship a Cobra-powered CLI with `--help`, `--version`, shell completion,
//     and a `gen-docs` helper for publishing the CLI reference itself.
//
// ## Usage
//
//	grcli-man [flags] [command]
//
// Examples:
//
//   - Render the grcli(1) program page to stdout:
//
//     grcli-man
//
//   - Render the address page as roff and view it:
//
//     grcli-man --format man address | man -l -
//
//   - Write every Markdown page for packaging:
//
//     grcli-man -o docs/grcli.1.md
//     grcli-man -o docs/grcli-address.1.md address
//
//   - Render a page for an external grammar description:
//
//     grcli-man --grammar grammar.toml peer
//
// ## Grammar files
//
// `--grammar` accepts a TOML description of the command tree: each top-level
// `[[node]]` table is one child of the root, with `type`, `id`, `text`,
// `help`, and nested `[[node.children]]` tables for subtrees. Node types
// mirror the grammar library's vocabulary (`str`, `uint`, `int`, `dyn`, `re`,
// `or`, `seq`, `cmd`, `option`, `many`, `subset`); unrecognized types are
// kept and simply render as nothing.
//
// ## Shell Completion
//
// Autocompletion for grcli-man's own flags and arguments is provided via
// Cobra's generators:
//
//	grcli-man completion bash        # bash
//	grcli-man completion zsh         # zsh
//	grcli-man completion fish | source
//	grcli-man completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `grcli-man` can generate Markdown for each CLI command via `gen-docs`:
//
//	grcli-man gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
