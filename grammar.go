package main

import "fmt"

// node is the read-only view of one element of the command grammar tree.
// The tree is built elsewhere (builtin.go, grammar_toml.go, or a future
// external producer); the renderer only ever consumes this interface and
// never mutates anything behind it.
//
// An empty ID means the node carries no identifier. An empty Help or Desc
// means the attribute is absent.
type node interface {
	TypeName() string
	ID() string
	ChildCount() int
	Child(i int) (node, error)
	Help() string
	Desc() string
}

// kind is the closed classification of a node's syntactic role. Grammar
// producers tag nodes with free-form type-name strings; classify folds them
// into this enum so rendering can switch exhaustively.
type kind int

const (
	kindUnknown kind = iota
	kindStr
	kindUint
	kindInt
	kindDyn
	kindRe
	kindOr
	kindSeq
	kindCmd
	kindOption
	kindMany
	kindSubset
)

var kindNames = map[string]kind{
	"str":    kindStr,
	"uint":   kindUint,
	"int":    kindInt,
	"dyn":    kindDyn,
	"re":     kindRe,
	"or":     kindOr,
	"seq":    kindSeq,
	"cmd":    kindCmd,
	"option": kindOption,
	"many":   kindMany,
	"subset": kindSubset,
}

// classify maps a node to its kind. Unrecognized type names classify as
// kindUnknown; they render as nothing rather than aborting a page.
func classify(n node) kind {
	return kindNames[n.TypeName()]
}

// grammarNode is the in-repo node implementation. It is immutable after
// construction; the with* helpers return the receiver only to keep grammar
// literals readable.
type grammarNode struct {
	typeName string
	id       string
	help     string
	desc     string
	children []*grammarNode
}

func (n *grammarNode) TypeName() string { return n.typeName }
func (n *grammarNode) ID() string       { return n.id }
func (n *grammarNode) ChildCount() int  { return len(n.children) }
func (n *grammarNode) Help() string     { return n.help }
func (n *grammarNode) Desc() string     { return n.desc }

func (n *grammarNode) Child(i int) (node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("child index %d out of range (%d children)", i, len(n.children))
	}
	return n.children[i], nil
}

func (n *grammarNode) withHelp(help string) *grammarNode {
	n.help = help
	return n
}

func (n *grammarNode) withID(id string) *grammarNode {
	n.id = id
	return n
}

// Constructors mirror the node vocabulary of the grammar library the trees
// originate from: literals, typed argument leaves, and the combinators.

func lit(text string) *grammarNode {
	return &grammarNode{typeName: "str", desc: text}
}

func uintArg(id string) *grammarNode {
	return &grammarNode{typeName: "uint", id: id}
}

func intArg(id string) *grammarNode {
	return &grammarNode{typeName: "int", id: id}
}

func dyn(id string) *grammarNode {
	return &grammarNode{typeName: "dyn", id: id}
}

func re(id string) *grammarNode {
	return &grammarNode{typeName: "re", id: id}
}

func or(children ...*grammarNode) *grammarNode {
	return &grammarNode{typeName: "or", children: children}
}

func seq(children ...*grammarNode) *grammarNode {
	return &grammarNode{typeName: "seq", children: children}
}

func cmd(id string, children ...*grammarNode) *grammarNode {
	return &grammarNode{typeName: "cmd", id: id, children: children}
}

func option(children ...*grammarNode) *grammarNode {
	return &grammarNode{typeName: "option", children: children}
}

func many(children ...*grammarNode) *grammarNode {
	return &grammarNode{typeName: "many", children: children}
}

func subset(children ...*grammarNode) *grammarNode {
	return &grammarNode{typeName: "subset", children: children}
}
