package converters

import "github.com/pkg/errors"

// MaxVertices is the largest vertex count a graph file may declare or imply.
const MaxVertices = 1 << 22

func checkVertexCount(n int) error {
	if n > MaxVertices {
		return errors.Wrapf(ErrTooManyVertices, "%d > %d", n, MaxVertices)
	}

	return nil
}

var (
	// ErrSyntax indicates malformed input; the wrapped message names the line.
	ErrSyntax = errors.New("converters: syntax error")

	// ErrEdgeCount indicates that an edge list ended before the announced
	// number of edges was read.
	ErrEdgeCount = errors.New("converters: edge count mismatch")

	// ErrTooManyVertices indicates a declared vertex count or vertex id above
	// MaxVertices.
	ErrTooManyVertices = errors.New("converters: too many vertices")

	// ErrUnknownFormat indicates a format name that is not edgelist, yaml or toml
	// (or, for results, not text or yaml).
	ErrUnknownFormat = errors.New("converters: unknown format")
)
