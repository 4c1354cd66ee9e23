package converters

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Result output formats accepted by WriteResult.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// FormatPairs renders edges as a list of (source, child) tuples, e.g.
// [(0, 1), (1, 4)]. An empty tree is [].
func FormatPairs(edges []core.Edge) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range edges {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d, %d)", e.From, e.To)
	}
	sb.WriteByte(']')

	return sb.String()
}

type resultDoc struct {
	Edges      []EdgeDoc `yaml:"edges"`
	Total      float64   `yaml:"total"`
	Components int       `yaml:"components"`
	Spanning   bool      `yaml:"spanning"`
	Unreached  []int     `yaml:"unreached,omitempty"`
}

// WriteResult writes res in the named output format.
//
// Text output is the pairs line followed by "total: <weight>"; a forest adds
// "components: <k>" and an incomplete tree adds "unreached: <ids>".
func WriteResult(w io.Writer, res prim_kruskal.Result, output string) error {
	switch output {
	case OutputText:
		return writeResultText(w, res)
	case OutputYAML:
		doc := resultDoc{
			Edges:      make([]EdgeDoc, len(res.Edges)),
			Total:      res.Total,
			Components: res.Components,
			Spanning:   res.Spanning(),
			Unreached:  res.Unreached,
		}
		for i, e := range res.Edges {
			doc.Edges[i] = EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding result")
		}
		return errors.Wrap(enc.Close(), "encoding result")
	}

	return errors.Wrapf(ErrUnknownFormat, "output %q", output)
}

func writeResultText(w io.Writer, res prim_kruskal.Result) error {
	var sb strings.Builder
	sb.WriteString(FormatPairs(res.Edges))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "total: %s\n", strconv.FormatFloat(res.Total, 'g', -1, 64))
	if res.Components > 1 {
		fmt.Fprintf(&sb, "components: %d\n", res.Components)
	}
	if len(res.Unreached) > 0 {
		ids := make([]string, len(res.Unreached))
		for i, v := range res.Unreached {
			ids[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(&sb, "unreached: %s\n", strings.Join(ids, ", "))
	}

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "writing result")
}
