package converters_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/spantree/converters"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatPairs(t *testing.T) {
	assert.Equal(t, "[]", converters.FormatPairs(nil))
	assert.Equal(t, "[(0, 1), (1, 4)]", converters.FormatPairs([]core.Edge{{From: 0, To: 1}, {From: 1, To: 4}}))
}

func TestWriteResult_Text(t *testing.T) {
	res := prim_kruskal.Result{
		Edges:      []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 0.5}},
		Total:      1.5,
		Components: 1,
		Unreached:  []int{3, 4},
	}
	var buf bytes.Buffer
	require.NoError(t, converters.WriteResult(&buf, res, converters.OutputText))
	assert.Equal(t, "[(0, 1), (1, 2)]\ntotal: 1.5\nunreached: 3, 4\n", buf.String())

	res.Unreached = nil
	res.Components = 2
	buf.Reset()
	require.NoError(t, converters.WriteResult(&buf, res, converters.OutputText))
	assert.Equal(t, "[(0, 1), (1, 2)]\ntotal: 1.5\ncomponents: 2\n", buf.String())
}

func TestWriteResult_YAML(t *testing.T) {
	res := prim_kruskal.Result{
		Edges:      []core.Edge{{From: 0, To: 1, Weight: 1}},
		Total:      1,
		Components: 1,
	}
	var buf bytes.Buffer
	require.NoError(t, converters.WriteResult(&buf, res, converters.OutputYAML))

	var got struct {
		Edges    []converters.EdgeDoc `yaml:"edges"`
		Total    float64              `yaml:"total"`
		Spanning bool                 `yaml:"spanning"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []converters.EdgeDoc{{From: 0, To: 1, Weight: 1}}, got.Edges)
	assert.Equal(t, 1.0, got.Total)
	assert.True(t, got.Spanning)

	err := converters.WriteResult(&buf, res, "xml")
	assert.ErrorIs(t, err, converters.ErrUnknownFormat)
}
