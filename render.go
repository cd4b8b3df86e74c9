package main

import (
	"fmt"
	"io"
	"strings"
)

// childNodes returns the resolvable children of n in order. Children that
// fail to resolve are skipped; a missing child never aborts rendering.
func childNodes(n node) []node {
	out := make([]node, 0, n.ChildCount())
	for i := 0; i < n.ChildCount(); i++ {
		child, err := n.Child(i)
		if err != nil {
			continue
		}
		out = append(out, child)
	}
	return out
}

// renderSynopsis writes the inline synopsis fragment for n. Every emitted
// token is prefixed with a single separating space, so fragments concatenate
// cleanly after a command name. Unknown kinds contribute nothing.
func renderSynopsis(w io.Writer, n node) {
	switch classify(n) {
	case kindStr:
		if desc := n.Desc(); desc != "" {
			fmt.Fprintf(w, " %s", desc)
		}
	case kindUint, kindInt:
		fmt.Fprintf(w, " _%s_", placeholderName(n, "NUM"))
	case kindDyn, kindRe:
		fmt.Fprintf(w, " _%s_", placeholderName(n, "ARG"))
	case kindOr:
		if n.ChildCount() == 0 {
			return
		}
		fmt.Fprint(w, " (")
		for i, child := range childNodes(n) {
			if i > 0 {
				fmt.Fprint(w, " |")
			}
			renderSynopsis(w, child)
		}
		fmt.Fprint(w, " )")
	case kindSeq, kindCmd:
		for _, child := range childNodes(n) {
			renderSynopsis(w, child)
		}
	case kindOption, kindMany:
		if n.ChildCount() == 0 {
			return
		}
		fmt.Fprint(w, " [")
		for _, child := range childNodes(n) {
			renderSynopsis(w, child)
		}
		fmt.Fprint(w, " ]")
	case kindSubset:
		// Each member is independently optional, so each gets its own
		// brackets instead of sharing one pair.
		for _, child := range childNodes(n) {
			fmt.Fprint(w, " [")
			renderSynopsis(w, child)
			fmt.Fprint(w, " ]")
		}
	}
}

func placeholderName(n node, fallback string) string {
	if id := n.ID(); id != "" {
		return strings.ToUpper(id)
	}
	return fallback
}

// syntaxMode selects between the compact form used in the program SYNOPSIS
// (first flag alias only, wrapped in brackets) and the detailed form used in
// the OPTIONS section (all aliases, heading plus help paragraph).
type syntaxMode int

const (
	synopsisMode syntaxMode = iota
	optionMode
)

// renderOptionSyntax writes one top-level option of the program grammar.
// An option node wraps either an alternation of flag literals, or a sequence
// of such an alternation followed by the option's argument leaf. Nodes that
// match neither shape are skipped silently.
func renderOptionSyntax(w io.Writer, opt node, mode syntaxMode) {
	child, err := opt.Child(0)
	if err != nil {
		return
	}

	var aliases node
	var argName string

	switch classify(child) {
	case kindOr:
		aliases = child
	case kindSeq:
		if child.ChildCount() < 2 {
			return
		}
		first, err := child.Child(0)
		if err != nil {
			return
		}
		if classify(first) == kindOr {
			aliases = first
		}
		if arg, err := child.Child(1); err == nil && arg.ID() != "" {
			argName = arg.ID()
		}
	default:
		return
	}

	if mode == synopsisMode {
		fmt.Fprint(w, "[")
	} else {
		fmt.Fprint(w, "#### ")
	}

	if aliases != nil {
		first := true
		for _, alias := range childNodes(aliases) {
			desc := alias.Desc()
			if desc == "" {
				continue
			}
			if mode == synopsisMode && !first {
				continue
			}
			if !first {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "**%s**", desc)
			first = false
		}
	}

	if argName != "" {
		fmt.Fprintf(w, " _%s_", strings.ToUpper(argName))
	}

	if mode == synopsisMode {
		fmt.Fprint(w, "]\n")
		return
	}
	fmt.Fprint(w, "\n\n")
	if help := opt.Help(); help != "" {
		fmt.Fprintf(w, "%s\n\n", help)
	}
}
