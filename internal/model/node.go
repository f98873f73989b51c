package model

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Node is the minimal node representation used by the formatting pipeline.
//
// Type/Name/Server/Port are the only fields the pipeline reads. Doc keeps the
// original YAML mapping so every other field survives verbatim, in its original
// order; the pipeline only ever writes the name back (no map round-trip, to
// keep behavior deterministic).
type Node struct {
	Type string

	// Name comes from the subscription document. It may be empty and is not
	// guaranteed to be unique; the pipeline normalizes and disambiguates it.
	Name string

	Server string
	Port   int

	// Doc is the mapping node this Node was decoded from. nil marks an entry
	// that was not a structured record; the sanitize stage drops those.
	Doc *yaml.Node
}

// Valid reports whether the entry is a structured node record.
func (n Node) Valid() bool {
	return n.Doc != nil && n.Doc.Kind == yaml.MappingNode
}

// SetName rewrites the display name on both the struct and the underlying
// mapping. A missing name key is appended at the end of the mapping.
func (n *Node) SetName(name string) {
	n.Name = name
	if n.Doc == nil || n.Doc.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Doc.Content); i += 2 {
		if n.Doc.Content[i].Value == "name" {
			n.Doc.Content[i+1] = scalarNode(name)
			return
		}
	}
	n.Doc.Content = append(n.Doc.Content, scalarNode("name"), scalarNode(name))
}

// AddrKey is the server:port:type dedupe key.
func (n Node) AddrKey() string {
	return n.Server + ":" + strconv.Itoa(n.Port) + ":" + n.Type
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
