package converters

import (
	"io"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EdgeDoc is one undirected edge of a graph document.
type EdgeDoc struct {
	From   int     `yaml:"from" toml:"from"`
	To     int     `yaml:"to" toml:"to"`
	Weight float64 `yaml:"weight" toml:"weight"`
}

// Document is the YAML/TOML shape of a graph.
//
// Edges are mirrored on load. Adjacency is taken verbatim, so each edge must
// already appear at both endpoints; it is YAML only and cannot be combined
// with Edges.
type Document struct {
	Vertices  int                 `yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges     []EdgeDoc           `yaml:"edges,omitempty" toml:"edges,omitempty"`
	Adjacency map[int][][]float64 `yaml:"adjacency,omitempty" toml:"-"`
}

// NewDocument describes g as a Document with one entry per undirected edge.
func NewDocument(g *core.AdjacencyList) Document {
	edges := g.Edges()
	doc := Document{Vertices: g.Len(), Edges: make([]EdgeDoc, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
	}

	return doc
}

// Graph builds and validates the graph the document describes. Without
// Vertices the count is the largest id plus one, and never below one. Counts
// above MaxVertices are rejected with ErrTooManyVertices.
func (d Document) Graph() (*core.AdjacencyList, error) {
	if d.Adjacency != nil {
		if len(d.Edges) > 0 {
			return nil, errors.Wrap(ErrSyntax, "document sets both edges and adjacency")
		}
		return d.adjacencyGraph()
	}

	n := d.Vertices
	if n == 0 {
		n = 1
		for _, e := range d.Edges {
			n = max(n, min(e.From, MaxVertices)+1, min(e.To, MaxVertices)+1)
		}
	}
	if err := checkVertexCount(n); err != nil {
		return nil, errors.Wrap(err, "vertices")
	}
	g, err := core.NewAdjacencyList(n)
	if err != nil {
		return nil, errors.Wrap(err, "vertices")
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edges[%d]", i)
		}
	}

	return g, nil
}

func (d Document) adjacencyGraph() (*core.AdjacencyList, error) {
	if err := checkVertexCount(d.Vertices); err != nil {
		return nil, errors.Wrap(err, "vertices")
	}
	m := make(map[int][]core.Neighbor, len(d.Adjacency))
	for v, pairs := range d.Adjacency {
		nbrs := make([]core.Neighbor, 0, len(pairs))
		for i, p := range pairs {
			if len(p) != 2 || p[0] != math.Trunc(p[0]) {
				return nil, errors.Wrapf(ErrSyntax, "adjacency[%d][%d]: expected [neighbor, weight]", v, i)
			}
			if math.Abs(p[0]) > math.MaxInt32 {
				return nil, errors.Wrapf(core.ErrInvalidVertex, "adjacency[%d][%d]: neighbor %v", v, i, p[0])
			}
			nbrs = append(nbrs, core.Neighbor{To: int(p[0]), Weight: p[1]})
		}
		m[v] = nbrs
	}
	// Vertices listed with an empty sequence may be omitted from the mapping.
	for v := 0; v < d.Vertices; v++ {
		if _, ok := m[v]; !ok {
			m[v] = nil
		}
	}

	return core.FromMap(m)
}

// ReadYAML decodes a YAML graph document. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*core.AdjacencyList, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrSyntax, "yaml: %v", err)
	}

	return doc.Graph()
}

// ReadTOML decodes a TOML graph document. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*core.AdjacencyList, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "toml: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Wrapf(ErrSyntax, "toml: unknown keys %s", strings.Join(keys, ", "))
	}

	return doc.Graph()
}

// WriteYAML encodes g as a YAML Document with two-space indentation.
func WriteYAML(w io.Writer, g *core.AdjacencyList) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(g)); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}

	return errors.Wrap(enc.Close(), "encoding yaml")
}

// WriteTOML encodes g as a TOML Document with [[edges]] tables.
func WriteTOML(w io.Writer, g *core.AdjacencyList) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(NewDocument(g)), "encoding toml")
}
