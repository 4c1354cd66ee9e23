package converters

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
)

// Format names a graph serialization.
type Format string

const (
	FormatEdgeList Format = "edgelist"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
)

// ParseFormat maps a user-supplied name to a Format. Matching is
// case-insensitive and accepts the "yml" and "txt" aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "edgelist", "edges", "txt", "text":
		return FormatEdgeList, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "graph format %q", name)
}

// FormatFromPath guesses the format from the file extension. Anything that is
// not .yaml, .yml or .toml is read as an edge list.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatEdgeList
	}
}

// Read decodes a graph in format f. Edge-list options are ignored by the
// document formats.
func Read(r io.Reader, f Format, opts ...EdgeListOption) (*core.AdjacencyList, error) {
	switch f {
	case FormatEdgeList:
		return ReadEdgeList(r, opts...)
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "graph format %q", f)
}

// Write encodes g in format f.
func Write(w io.Writer, g *core.AdjacencyList, f Format) error {
	switch f {
	case FormatEdgeList:
		return WriteEdgeList(w, g)
	case FormatYAML:
		return WriteYAML(w, g)
	case FormatTOML:
		return WriteTOML(w, g)
	}

	return errors.Wrapf(ErrUnknownFormat, "graph format %q", f)
}
