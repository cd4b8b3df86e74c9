package main

import (
	"fmt"
	"io"
	"strings"
)

// argEntry is one uniquely identified argument leaf gathered from a command
// subtree, kept only for the duration of a single page render.
type argEntry struct {
	id   string
	node node
}

var argumentKinds = map[kind]bool{
	kindUint: true,
	kindInt:  true,
	kindDyn:  true,
	kindRe:   true,
}

// collectArguments walks n depth-first in pre-order and appends every
// identified argument leaf whose identifier has not been seen yet. When the
// same identifier appears under two different nodes, the first occurrence
// wins and later ones are skipped, help text and all.
func collectArguments(n node, args []argEntry) []argEntry {
	if id := n.ID(); id != "" && argumentKinds[classify(n)] && !hasArgument(args, id) {
		args = append(args, argEntry{id: id, node: n})
	}
	for _, child := range childNodes(n) {
		args = collectArguments(child, args)
	}
	return args
}

func hasArgument(args []argEntry, id string) bool {
	for _, a := range args {
		if a.id == id {
			return true
		}
	}
	return false
}

// argCategory is the inferred domain classification of an argument
// identifier. It only drives SEE ALSO cross-references; identifiers outside
// the table have no category.
type argCategory int

const (
	catNone argCategory = iota
	catInterface
	catAddress
	catNexthop
	catVRF
)

var argCategories = map[string]argCategory{
	"IFACE":   catInterface,
	"NAME":    catInterface,
	"ADDR":    catAddress,
	"IP":      catAddress,
	"DEST":    catAddress,
	"NH":      catNexthop,
	"NH_ID":   catNexthop,
	"SEGLIST": catNexthop,
	"VRF":     catVRF,
}

func writeSeeAlso(w io.Writer, name string, args []argEntry) {
	var hasIface, hasAddress, hasNexthop, hasVRF bool
	for _, a := range args {
		switch argCategories[a.id] {
		case catInterface:
			hasIface = true
		case catAddress:
			hasAddress = true
		case catNexthop:
			hasNexthop = true
		case catVRF:
			hasVRF = true
		}
	}

	fmt.Fprint(w, "# SEE ALSO\n\n")
	fmt.Fprintf(w, "**%s**(1)", progName)

	// Never cross-reference the page being rendered. VRF arguments point at
	// the route page, which is where VRFs are documented.
	if hasIface && name != "interface" {
		fmt.Fprintf(w, ", **%s-interface**(1)", progName)
	}
	if hasAddress && name != "address" {
		fmt.Fprintf(w, ", **%s-address**(1)", progName)
	}
	if hasNexthop && name != "nexthop" {
		fmt.Fprintf(w, ", **%s-nexthop**(1)", progName)
	}
	if hasVRF && name != "route" {
		fmt.Fprintf(w, ", **%s-route**(1)", progName)
	}
	fmt.Fprint(w, "\n")
}

func writeArgumentHelp(w io.Writer, n node) {
	fmt.Fprintf(w, "#### _%s_\n\n", n.ID())

	if help := n.Help(); help != "" {
		fmt.Fprintf(w, "%s\n\n", help)
		return
	}

	switch classify(n) {
	case kindUint:
		fmt.Fprint(w, "Unsigned integer.\n\n")
	case kindInt:
		fmt.Fprint(w, "Integer.\n\n")
	case kindDyn:
		fmt.Fprint(w, "Dynamic value.\n\n")
	}
}

// groupHelp returns the help text of the first alternative that has one.
func groupHelp(orNode node) string {
	for _, child := range childNodes(orNode) {
		if help := child.Help(); help != "" {
			return help
		}
	}
	return ""
}

// writeGroupPage renders the page of a command group: one synopsis line per
// alternative, a deduplicated argument glossary across all alternatives, and
// the cross-references inferred from the collected argument categories.
func writeGroupPage(w io.Writer, name string, orNode node, withHeader bool) {
	if withHeader {
		fmt.Fprintf(w, "# %s\n\n", name)
		if help := groupHelp(orNode); help != "" {
			fmt.Fprintf(w, "%s\n\n", help)
		}
	}

	fmt.Fprint(w, "# SYNOPSIS\n\n")
	for _, alt := range childNodes(orNode) {
		var help string
		if classify(alt) == kindSeq {
			if alt.ChildCount() >= 2 {
				if first, err := alt.Child(0); err == nil {
					help = first.Help()
				}
			}
		} else {
			help = alt.Help()
		}

		fmt.Fprintf(w, "**%s**", name)
		renderSynopsis(w, alt)
		fmt.Fprint(w, "\n")
		if help != "" {
			fmt.Fprintf(w, "    %s\n", help)
		}
		fmt.Fprint(w, "\n")
	}

	fmt.Fprint(w, "# ARGUMENTS\n\n")
	var args []argEntry
	for _, alt := range childNodes(orNode) {
		args = collectArguments(alt, args)
	}
	for _, a := range args {
		writeArgumentHelp(w, a.node)
	}

	writeSeeAlso(w, name, args)
}

// writeStandalonePage renders the page of a single leaf command whose
// identifier is the full command phrase, e.g. "show version".
func writeStandalonePage(w io.Writer, name string, cmdNode node, withHeader bool) {
	if withHeader {
		fmt.Fprintf(w, "# %s\n\n", name)
		if help := cmdNode.Help(); help != "" {
			fmt.Fprintf(w, "%s\n\n", help)
		}
	}

	fmt.Fprint(w, "# SYNOPSIS\n\n")
	full := cmdNode.ID()
	if idx := strings.IndexByte(full, ' '); idx >= 0 {
		fmt.Fprintf(w, "**%s**%s\n\n", full[:idx], full[idx:])
	} else {
		fmt.Fprintf(w, "**%s**\n\n", full)
	}

	fmt.Fprint(w, "# SEE ALSO\n\n")
	fmt.Fprintf(w, "**%s**(1)\n", progName)
}

func writeTitleUnderline(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(title)))
}

func writePageHeader(w io.Writer, cmdName, helpText string) {
	title := fmt.Sprintf("%s-%s 1 \"grout %s\"", strings.ToUpper(progName), cmdName, groutVersion)
	fmt.Fprintf(w, "%s\n", title)
	writeTitleUnderline(w, title)
	fmt.Fprint(w, "# NAME\n\n")
	fmt.Fprintf(w, "**%s-%s** -- %s\n\n", progName, cmdName, helpText)
}

// renderProgramPage writes the whole-program manual page: name, synopsis and
// option list derived from the options grammar, the fixed environment and
// footer sections.
func renderProgramPage(w io.Writer, optionsTree node) {
	title := fmt.Sprintf("%s 1 \"grout %s\"", strings.ToUpper(progName), groutVersion)
	fmt.Fprintf(w, "%s\n", title)
	writeTitleUnderline(w, title)
	fmt.Fprint(w, "# NAME\n\n")
	fmt.Fprintf(w, "**%s** -- grout command line interface\n\n", progName)

	fmt.Fprint(w, "# SYNOPSIS\n\n")
	fmt.Fprintf(w, "**%s**\n", progName)
	for _, opt := range childNodes(optionsTree) {
		renderOptionSyntax(w, opt, synopsisMode)
	}
	fmt.Fprint(w, "...\n\n")

	fmt.Fprint(w, "# OPTIONS\n\n")
	for _, opt := range childNodes(optionsTree) {
		renderOptionSyntax(w, opt, optionMode)
	}

	fmt.Fprint(w, "# ENVIRONMENT\n\n")
	fmt.Fprint(w, "#### **DPRC**\n\n")
	fmt.Fprintf(w, "%s\n\n", envDPRCDescription)
	fmt.Fprint(w, "#### **GROUT_SOCK_PATH**\n\n")
	fmt.Fprintf(w, "Path to the control plane API socket. If not set, defaults to _%s_.\n\n", defaultSockPath)

	fmt.Fprint(w, "# SEE ALSO\n\n")
	fmt.Fprint(w, "**grout**(8)\n\n")

	fmt.Fprint(w, "# REPORTING BUGS\n\n")
	fmt.Fprintf(w, "%s\n", reportingBugs)
}

// renderCommandPage locates requestedCmd among root's immediate children and
// writes its manual page. A sequence child matches when its second child is
// the group alternation carrying the requested identifier; a command child
// matches when its identifier up to the first space equals the request. The
// first match wins and at most one page is written. When nothing matches, an
// error is returned and no output is produced.
func renderCommandPage(w io.Writer, root node, requestedCmd string) error {
	for _, child := range childNodes(root) {
		switch classify(child) {
		case kindSeq:
			if writeMatchingGroupPage(w, child, requestedCmd) {
				return nil
			}
		case kindCmd:
			if writeMatchingStandalonePage(w, child, requestedCmd) {
				return nil
			}
		}
	}
	return fmt.Errorf("unknown command %q", requestedCmd)
}

func writeMatchingGroupPage(w io.Writer, n node, requestedCmd string) bool {
	if n.ChildCount() < 2 {
		return false
	}
	strNode, err := n.Child(0)
	if err != nil {
		return false
	}
	orNode, err := n.Child(1)
	if err != nil {
		return false
	}
	name := orNode.ID()
	if name == "" || name != requestedCmd {
		return false
	}

	writePageHeader(w, requestedCmd, strNode.Help())
	writeGroupPage(w, name, orNode, false)
	return true
}

func writeMatchingStandalonePage(w io.Writer, n node, requestedCmd string) bool {
	full := n.ID()
	if full == "" {
		return false
	}
	name := full
	if idx := strings.IndexByte(full, ' '); idx >= 0 {
		name = full[:idx]
	}
	if name != requestedCmd {
		return false
	}

	writePageHeader(w, requestedCmd, n.Help())
	writeStandalonePage(w, name, n, false)
	return true
}
