package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// grammarFile is the on-disk TOML form of a command grammar. Each top-level
// [[node]] table becomes one child of the root alternation; subtrees nest
// through repeated [[node.children]] tables.
type grammarFile struct {
	Node []nodeSpec `toml:"node"`
}

type nodeSpec struct {
	Type     string     `toml:"type"`
	ID       string     `toml:"id"`
	Text     string     `toml:"text"`
	Help     string     `toml:"help"`
	Children []nodeSpec `toml:"children"`
}

// loadGrammarFile reads a command grammar from a TOML file and returns it as
// the root node the page renderer dispatches over. Node types are kept
// verbatim; unknown types classify as unknown and render as nothing.
func loadGrammarFile(path string) (node, error) {
	var file grammarFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parse grammar file: %w", err)
	}
	if len(file.Node) == 0 {
		return nil, fmt.Errorf("grammar file %s defines no nodes", path)
	}

	children := make([]*grammarNode, 0, len(file.Node))
	for _, spec := range file.Node {
		built, err := buildNode(spec)
		if err != nil {
			return nil, err
		}
		children = append(children, built)
	}
	return or(children...), nil
}

func buildNode(spec nodeSpec) (*grammarNode, error) {
	if spec.Type == "" {
		return nil, errors.New("grammar node without a type")
	}
	children := make([]*grammarNode, 0, len(spec.Children))
	for _, child := range spec.Children {
		built, err := buildNode(child)
		if err != nil {
			return nil, err
		}
		children = append(children, built)
	}
	return &grammarNode{
		typeName: spec.Type,
		id:       spec.ID,
		help:     spec.Help,
		desc:     spec.Text,
		children: children,
	}, nil
}
