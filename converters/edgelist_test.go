package converters_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/spantree/converters"
	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceEdgeList = `# six-vertex reference graph
9
0 1 1
0 3 3
1 2 6
1 3 5
1 4 1
2 4 5
2 5 2
3 4 1
4 5 4
`

func TestReadEdgeList_Reference(t *testing.T) {
	g, err := converters.ReadEdgeList(strings.NewReader(referenceEdgeList))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 9, g.EdgeCount())
	assert.NoError(t, g.Validate())

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 0, Weight: 1}, {To: 2, Weight: 6}, {To: 3, Weight: 5}, {To: 4, Weight: 1}}, nbrs)
}

func TestReadEdgeList_CommentsAndBlanks(t *testing.T) {
	in := "\n  # header\n2   # two edges\n\n0 1 2.5\n# between\n1 2 1e-3\n"
	g, err := converters.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 2.5}, {From: 1, To: 2, Weight: 0.001}}, g.Edges())
}

func TestReadEdgeList_StopsAfterCount(t *testing.T) {
	g, err := converters.ReadEdgeList(strings.NewReader("1\n0 1 1\nnot an edge\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestReadEdgeList_ZeroEdges(t *testing.T) {
	g, err := converters.ReadEdgeList(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	g, err = converters.ReadEdgeList(strings.NewReader("0\n"), converters.WithVertices(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	_, err = converters.ReadEdgeList(strings.NewReader("0\n"), converters.WithVertices(converters.MaxVertices+1))
	assert.ErrorIs(t, err, converters.ErrTooManyVertices)
}

func TestReadEdgeList_DeclaredVertices(t *testing.T) {
	// Vertex 3 is only reachable as an id because the count is declared.
	in := "# vertices: 6\n2\n0 1 1\n1 3 2\n"
	g, err := converters.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 2, g.EdgeCount())

	g, err = converters.ReadEdgeList(strings.NewReader("2\n0 1 1\n1 3 2\n"), converters.WithVertices(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestReadEdgeList_Prompt(t *testing.T) {
	var prompt bytes.Buffer
	_, err := converters.ReadEdgeList(strings.NewReader("1\n0 1 1\n"), converters.WithPrompt(&prompt))
	require.NoError(t, err)
	assert.Equal(t, converters.EdgeCountPrompt, prompt.String())
}

func TestReadEdgeList_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		msg  string
	}{
		{"Empty", "", converters.ErrEdgeCount, "missing edge count"},
		{"BadCount", "two\n", converters.ErrSyntax, "line 1"},
		{"NegativeCount", "-1\n", converters.ErrSyntax, "line 1"},
		{"ShortInput", "3\n0 1 1\n", converters.ErrEdgeCount, "expected 3 edges, got 1"},
		{"TwoFields", "1\n\n0 1\n", converters.ErrSyntax, "line 3"},
		{"BadVertex", "1\n0 x 1\n", converters.ErrSyntax, "line 2"},
		{"NegativeVertex", "1\n-1 0 1\n", converters.ErrSyntax, "line 2"},
		{"BadWeight", "1\n0 1 w\n", converters.ErrSyntax, "line 2"},
		{"NegativeWeight", "2\n0 1 1\n1 2 -4\n", core.ErrNegativeWeight, "line 3"},
		{"NaNWeight", "1\n0 1 NaN\n", core.ErrInvalidWeight, "line 2"},
		{"HugeCount", "9223372036854775807\n0 1 1\n", converters.ErrEdgeCount, "got 1"},
		{"HugeVertex", "1\n0 1099511627776 1\n", core.ErrInvalidVertex, "line 2"},
		{"GapInIDs", "2\n0 1 1\n1 3 1\n", core.ErrInvalidVertex, "vertex 3 outside 0..2"},
		{"BadDirective", "# vertices: many\n1\n0 1 1\n", converters.ErrSyntax, "line 1"},
		{"HugeDirective", "# vertices: 1099511627776\n0\n", converters.ErrTooManyVertices, "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := converters.ReadEdgeList(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	g, err := converters.ReadEdgeList(strings.NewReader(referenceEdgeList))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, converters.WriteEdgeList(&buf, g))
	assert.True(t, strings.HasPrefix(buf.String(), "# vertices: 6\n9\n0 1 1\n0 3 3\n"))

	back, err := converters.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestWriteEdgeList_KeepsIsolatedVertices(t *testing.T) {
	g, err := core.NewAdjacencyList(7)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	var buf bytes.Buffer
	require.NoError(t, converters.WriteEdgeList(&buf, g))
	back, err := converters.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, back.Len())
	assert.Equal(t, g.Edges(), back.Edges())
}
