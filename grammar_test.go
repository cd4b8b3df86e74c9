package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := map[string]kind{
		"str":     kindStr,
		"uint":    kindUint,
		"int":     kindInt,
		"dyn":     kindDyn,
		"re":      kindRe,
		"or":      kindOr,
		"seq":     kindSeq,
		"cmd":     kindCmd,
		"option":  kindOption,
		"many":    kindMany,
		"subset":  kindSubset,
		"sh_lex":  kindUnknown,
		"":        kindUnknown,
		"STR":     kindUnknown, // exact match only
		"strings": kindUnknown,
	}
	for typeName, want := range cases {
		assert.Equal(t, want, classify(&grammarNode{typeName: typeName}), "type %q", typeName)
	}
}

func TestChildOutOfRange(t *testing.T) {
	n := seq(lit("a"), lit("b"))

	child, err := n.Child(1)
	require.NoError(t, err)
	assert.Equal(t, "b", child.Desc())

	_, err = n.Child(2)
	assert.Error(t, err)
	_, err = n.Child(-1)
	assert.Error(t, err)
}

func TestCollectArgumentsOrderAndDedup(t *testing.T) {
	tree := seq(
		dyn("IFACE"),
		or(
			uintArg("VRF"),
			dyn("IFACE"), // duplicate, skipped
			seq(lit("via"), dyn("NH")),
		),
		intArg("METRIC"),
	)

	args := collectArguments(tree, nil)

	ids := make([]string, len(args))
	for i, a := range args {
		ids[i] = a.id
	}
	assert.Equal(t, []string{"IFACE", "VRF", "NH", "METRIC"}, ids)
}

func TestCollectArgumentsIgnoresNonArgumentKinds(t *testing.T) {
	tree := seq(
		lit("show"),
		cmd("interface show", dyn("IFACE")),
		or().withID("interface"),
	)

	args := collectArguments(tree, nil)

	require.Len(t, args, 1)
	assert.Equal(t, "IFACE", args[0].id)
}

func TestCollectArgumentsSkipsUnidentifiedLeaves(t *testing.T) {
	tree := seq(dyn(""), uintArg(""), dyn("ADDR"))

	args := collectArguments(tree, nil)

	require.Len(t, args, 1)
	assert.Equal(t, "ADDR", args[0].id)
}

func TestLoadGrammarFile(t *testing.T) {
	root, err := loadGrammarFile(filepath.Join("testdata", "grammar.toml"))
	require.NoError(t, err)

	out := commandPageOf(t, root, "peer")
	assertContains(t, out, "GRCLI-peer 1 \"grout "+groutVersion+"\"\n")
	assertContains(t, out, "**peer** add _IP_\n    Register a peer.\n")
	assertContains(t, out, "**peer** del _IP_\n    Forget a peer.\n")
	assertContains(t, out, "#### _IP_\n\nPeer address.\n")
	// IP is an address-shaped argument on a non-address page.
	assertContains(t, out, "**grcli-address**(1)")

	out = commandPageOf(t, root, "ping")
	assertContains(t, out, "# SYNOPSIS\n\n**ping**\n\n")
}

func TestLoadGrammarFileErrors(t *testing.T) {
	_, err := loadGrammarFile(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)

	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing here\n"), 0o644))
	_, err = loadGrammarFile(empty)
	assert.ErrorContains(t, err, "defines no nodes")

	untyped := filepath.Join(dir, "untyped.toml")
	require.NoError(t, os.WriteFile(untyped, []byte("[[node]]\nid = \"x\"\n"), 0o644))
	_, err = loadGrammarFile(untyped)
	assert.ErrorContains(t, err, "without a type")
}
