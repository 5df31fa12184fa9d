// SPDX-License-Identifier: MIT

package grassmann

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/grassmann/core"
	"github.com/katalvlaran/grassmann/export"
	"github.com/katalvlaran/grassmann/poset"
)

// Vertex metadata keys set by Graph.
const (
	MetaRank  = poset.MetaRank // dimension of the subspace
	MetaDim   = "dim"          // same value, kept under the geometric name
	MetaLayer = "layer"        // longest-path depth in the Hasse diagram
	MetaIndex = "index"        // element index
	MetaLabel = "label"        // canonical basis string
)

// HasseDiagram returns a copy of the directed covering graph whose vertex IDs
// are decimal element indices.
func (c *Complex) HasseDiagram() *core.Graph { return c.poset.HasseDiagram() }

// Graph returns the Hasse diagram relabeled by canonical basis strings
// ("[[1,0,2],[0,1,1]]", the zero subspace is "[]"). Each vertex carries
// MetaRank, MetaDim, MetaLayer, MetaIndex and MetaLabel.
func (c *Complex) Graph() (*core.Graph, error) {
	g := c.poset.HasseDiagram()
	layers, err := c.poset.Layers()
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}
	mapping := make(map[string]string, len(c.subs))
	for layer, elems := range layers {
		for _, e := range elems {
			id, label := poset.ID(e), Label(c.subs[e].Rows()).String()
			mapping[id] = label
			meta := map[string]any{
				MetaDim:   c.subs[e].Dim(),
				MetaLayer: layer,
				MetaIndex: e,
				MetaLabel: label,
			}
			for k, v := range meta {
				if err := g.SetVertexMeta(id, k, v); err != nil {
					return nil, fmt.Errorf("Graph: %w", err)
				}
			}
		}
	}
	out, err := core.RelabelView(g, mapping)
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}

	return out, nil
}

// Export writes Graph() to path; the extension picks the format
// (.graphml/.xml or .yaml/.yml). Unknown extensions yield export.ErrUnknownFormat.
func (c *Complex) Export(path string) error {
	g, err := c.Graph()
	if err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	if err := export.WriteFile(path, g); err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	c.log.Info("complex exported", zap.String("path", path),
		zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	return nil
}
