package converters

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
)

// EdgeCountPrompt is written before the edge count when a prompt writer is set.
const EdgeCountPrompt = "Enter number of edges: "

// EdgeListOption configures ReadEdgeList.
type EdgeListOption func(*edgeListConfig)

type edgeListConfig struct {
	prompt   io.Writer
	vertices int
}

// WithPrompt writes EdgeCountPrompt to w before the edge count is read.
// Used when a person types the graph on a terminal.
func WithPrompt(w io.Writer) EdgeListOption {
	return func(c *edgeListConfig) {
		c.prompt = w
	}
}

// WithVertices sets the vertex count, so vertices that no edge mentions
// still exist in the graph. A "# vertices: N" line in the input does the same.
func WithVertices(n int) EdgeListOption {
	return func(c *edgeListConfig) {
		c.vertices = n
	}
}

// vertexDirective is the comment WriteEdgeList emits ahead of the edge count.
const vertexDirective = "vertices:"

// maxPrealloc bounds the edge slice allocated up front from the announced count.
const maxPrealloc = 1 << 12

type parsedEdge struct {
	u, v int
	w    float64
	line int
}

// ReadEdgeList parses the edge count m followed by m lines "u v w".
// Reading stops after the m-th edge, so trailing input is left unread.
//
// The graph has n = max(distinct endpoints, declared count, 1) vertices,
// where the count is declared with WithVertices or a "# vertices: N" comment.
// Vertex ids must fall in 0..n-1, so without a declared count the endpoints
// themselves have to form a dense range. Every edge is inserted at both
// endpoints.
//
// Errors carry the 1-based line number: ErrSyntax for malformed lines,
// ErrEdgeCount when input ends early, core.ErrInvalidVertex for ids outside
// the range, ErrTooManyVertices for a declared count above MaxVertices, and
// core weight errors for negative or non-finite weights.
func ReadEdgeList(r io.Reader, opts ...EdgeListOption) (*core.AdjacencyList, error) {
	cfg := edgeListConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkVertexCount(cfg.vertices); err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	line := 0
	var directiveErr error
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			text := sc.Text()
			if i := strings.IndexByte(text, '#'); i >= 0 {
				n, ok, err := parseDirective(text[i+1:], line)
				if err != nil {
					directiveErr = err
					return "", false
				}
				if ok {
					cfg.vertices = max(cfg.vertices, n)
				}
				text = text[:i]
			}
			if text = strings.TrimSpace(text); text != "" {
				return text, true
			}
		}
		return "", false
	}
	// failure explains why next returned false.
	failure := func(fallback error) error {
		if directiveErr != nil {
			return directiveErr
		}
		if err := sc.Err(); err != nil {
			return errors.Wrap(err, "reading edge list")
		}
		return fallback
	}

	if cfg.prompt != nil {
		fmt.Fprint(cfg.prompt, EdgeCountPrompt)
	}
	head, ok := next()
	if !ok {
		return nil, failure(errors.Wrap(ErrEdgeCount, "missing edge count"))
	}
	m, err := strconv.Atoi(head)
	if err != nil || m < 0 {
		return nil, errors.Wrapf(ErrSyntax, "line %d: edge count %q is not a non-negative integer", line, head)
	}

	edges := make([]parsedEdge, 0, min(m, maxPrealloc))
	seen := make(map[int]struct{})
	for len(edges) < m {
		text, ok := next()
		if !ok {
			return nil, failure(errors.Wrapf(ErrEdgeCount, "expected %d edges, got %d", m, len(edges)))
		}
		e, err := parseEdgeLine(text, line)
		if err != nil {
			return nil, err
		}
		seen[e.u] = struct{}{}
		seen[e.v] = struct{}{}
		edges = append(edges, e)
	}

	n := max(len(seen), cfg.vertices, 1)
	for _, e := range edges {
		if id := max(e.u, e.v); id >= n {
			return nil, errors.Wrapf(core.ErrInvalidVertex,
				"line %d: vertex %d outside 0..%d (declare the count with \"# %s N\")", e.line, id, n-1, vertexDirective)
		}
	}

	g, err := core.NewAdjacencyList(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			return nil, errors.Wrapf(err, "line %d", e.line)
		}
	}

	return g, nil
}

// parseDirective recognizes "vertices: N" inside a comment.
func parseDirective(comment string, line int) (int, bool, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(comment), vertexDirective)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 1 {
		return 0, false, errors.Wrapf(ErrSyntax, "line %d: vertex count %q is not a positive integer", line, strings.TrimSpace(rest))
	}
	if err := checkVertexCount(n); err != nil {
		return 0, false, errors.Wrapf(err, "line %d", line)
	}

	return n, true, nil
}

func parseEdgeLine(text string, line int) (parsedEdge, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return parsedEdge{}, errors.Wrapf(ErrSyntax, "line %d: expected \"u v w\", got %d field(s)", line, len(fields))
	}
	u, err := parseVertex(fields[0])
	if err != nil {
		return parsedEdge{}, errors.Wrapf(ErrSyntax, "line %d: %v", line, err)
	}
	v, err := parseVertex(fields[1])
	if err != nil {
		return parsedEdge{}, errors.Wrapf(ErrSyntax, "line %d: %v", line, err)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return parsedEdge{}, errors.Wrapf(ErrSyntax, "line %d: weight %q is not a number", line, fields[2])
	}

	return parsedEdge{u: u, v: v, w: w, line: line}, nil
}

func parseVertex(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("vertex %q is not a non-negative integer", s)
	}

	return id, nil
}

// WriteEdgeList writes g in the format ReadEdgeList accepts: a
// "# vertices: N" comment, the edge count, then one line per undirected edge
// in core.Edges order. The comment keeps isolated vertices in the graph.
func WriteEdgeList(w io.Writer, g *core.AdjacencyList) error {
	edges := g.Edges()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s %d\n", vertexDirective, g.Len())
	fmt.Fprintf(bw, "%d\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return errors.Wrap(bw.Flush(), "writing edge list")
}
