// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grassmann/core"
)

type yamlDoc struct {
	Directed   bool       `yaml:"directed"`
	Multigraph bool       `yaml:"multigraph,omitempty"`
	Loops      bool       `yaml:"loops,omitempty"`
	Nodes      []yamlNode `yaml:"nodes"`
	Edges      []yamlEdge `yaml:"edges"`
}

type yamlNode struct {
	ID   string         `yaml:"id"`
	Meta map[string]any `yaml:"meta,omitempty"`
}

type yamlEdge struct {
	ID   string `yaml:"id"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

func writeYAML(w io.Writer, g *core.Graph) error {
	doc := yamlDoc{
		Directed:   g.Directed(),
		Multigraph: g.Multigraph(),
		Loops:      g.Looped(),
		Nodes:      []yamlNode{},
		Edges:      []yamlEdge{},
	}
	for _, id := range g.Vertices() {
		m, err := g.VertexMeta(id)
		if err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		doc.Nodes = append(doc.Nodes, yamlNode{ID: id, Meta: m})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, yamlEdge{ID: e.ID, From: e.From, To: e.To})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}

	return enc.Close()
}

func readYAML(r io.Reader) (*core.Graph, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml: %w: %w", ErrMalformed, err)
	}

	opts := []core.GraphOption{core.WithDirected(doc.Directed)}
	if doc.Multigraph {
		opts = append(opts, core.WithMultiEdges())
	}
	if doc.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, n := range doc.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("yaml: node %q: %w: %w", n.ID, ErrMalformed, err)
		}
		for k, v := range n.Meta {
			if err := g.SetVertexMeta(n.ID, k, v); err != nil {
				return nil, fmt.Errorf("yaml: %w", err)
			}
		}
	}
	for _, e := range doc.Edges {
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			return nil, fmt.Errorf("yaml: edge %q→%q: %w: %w", e.From, e.To, ErrMalformed, core.ErrVertexNotFound)
		}
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	}

	return g, nil
}
