// SPDX-License-Identifier: MIT

package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/grassmann/core"
)

const graphmlNS = "http://graphml.graphdrawing.org/xmlns"

// GraphML attr.type values.
const (
	gmlString  = "string"
	gmlInt     = "int"
	gmlLong    = "long"
	gmlDouble  = "double"
	gmlBoolean = "boolean"
)

type gmlDoc struct {
	XMLName xml.Name `xml:"graphml"`
	XMLNS   string   `xml:"xmlns,attr"`
	Keys    []gmlKey `xml:"key"`
	Graph   gmlGraph `xml:"graph"`
}

type gmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type gmlGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []gmlNode `xml:"node"`
	Edges       []gmlEdge `xml:"edge"`
}

type gmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []gmlData `xml:"data"`
}

type gmlEdge struct {
	ID     string `xml:"id,attr,omitempty"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type gmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// gmlType maps a metadata value to its GraphML attr.type.
func gmlType(v any) string {
	switch v.(type) {
	case int, int8, int16, int32, uint8, uint16:
		return gmlInt
	case int64, uint32, uint64, uint:
		return gmlLong
	case float32, float64:
		return gmlDouble
	case bool:
		return gmlBoolean
	default:
		return gmlString
	}
}

// parseGML converts character data back into a Go value of the declared type.
func parseGML(typ, s string) (any, error) {
	switch typ {
	case gmlInt:
		v, err := strconv.Atoi(s)
		return v, err
	case gmlLong:
		return strconv.ParseInt(s, 10, 64)
	case gmlDouble, "float":
		return strconv.ParseFloat(s, 64)
	case gmlBoolean:
		return strconv.ParseBool(s)
	default:
		return s, nil
	}
}

func writeGraphML(w io.Writer, g *core.Graph) error {
	ids := g.Vertices()
	metas := make([]map[string]any, len(ids))
	keyType := make(map[string]string)
	for i, id := range ids {
		m, err := g.VertexMeta(id)
		if err != nil {
			return fmt.Errorf("graphml: %w", err)
		}
		metas[i] = m
		for k, v := range m {
			if _, ok := keyType[k]; !ok {
				keyType[k] = gmlType(v)
			}
		}
	}
	names := make([]string, 0, len(keyType))
	for k := range keyType {
		names = append(names, k)
	}
	sort.Strings(names)

	doc := gmlDoc{XMLNS: graphmlNS, Graph: gmlGraph{ID: "G", EdgeDefault: "undirected"}}
	if g.Directed() {
		doc.Graph.EdgeDefault = "directed"
	}
	keyID := make(map[string]string, len(names))
	for i, name := range names {
		keyID[name] = "d" + strconv.Itoa(i)
		doc.Keys = append(doc.Keys, gmlKey{ID: keyID[name], For: "node", Name: name, Type: keyType[name]})
	}
	for i, id := range ids {
		node := gmlNode{ID: id}
		for _, name := range names {
			if v, ok := metas[i][name]; ok {
				node.Data = append(node.Data, gmlData{Key: keyID[name], Value: fmt.Sprint(v)})
			}
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}
	for _, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, gmlEdge{ID: e.ID, Source: e.From, Target: e.To})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("graphml: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphml: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("graphml: %w", err)
	}

	return nil
}

func readGraphML(r io.Reader) (*core.Graph, error) {
	var doc gmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphml: %w: %w", ErrMalformed, err)
	}
	keys := make(map[string]gmlKey, len(doc.Keys))
	for _, k := range doc.Keys {
		keys[k.ID] = k
	}

	g := core.NewGraph(
		core.WithDirected(doc.Graph.EdgeDefault == "directed"),
		core.WithMultiEdges(),
		core.WithLoops(),
	)
	for _, n := range doc.Graph.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("graphml: node %q: %w: %w", n.ID, ErrMalformed, err)
		}
		for _, d := range n.Data {
			k, ok := keys[d.Key]
			if !ok {
				return nil, fmt.Errorf("graphml: node %q: undeclared key %q: %w", n.ID, d.Key, ErrMalformed)
			}
			v, err := parseGML(k.Type, d.Value)
			if err != nil {
				return nil, fmt.Errorf("graphml: node %q key %q: %w: %w", n.ID, k.Name, ErrMalformed, err)
			}
			if err := g.SetVertexMeta(n.ID, k.Name, v); err != nil {
				return nil, fmt.Errorf("graphml: %w", err)
			}
		}
	}
	for _, e := range doc.Graph.Edges {
		if !g.HasVertex(e.Source) || !g.HasVertex(e.Target) {
			return nil, fmt.Errorf("graphml: edge %q→%q: %w: %w", e.Source, e.Target, ErrMalformed, core.ErrVertexNotFound)
		}
		if _, err := g.AddEdge(e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("graphml: %w", err)
		}
	}

	return g, nil
}
