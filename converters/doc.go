// Package converters reads graphs into *core.AdjacencyList and writes graphs
// and spanning-tree results back out.
//
// Supported graph formats:
//   - edge list text: the edge count m on the first line, then m lines "u v w".
//     Blank lines and '#' comments are skipped; every edge is mirrored.
//   - YAML (gopkg.in/yaml.v3): `vertices`, `edges: [{from, to, weight}]`, or an
//     `adjacency` mapping listed at both endpoints.
//   - TOML (github.com/BurntSushi/toml): `vertices` and `[[edges]]` tables.
//
// Results are rendered as a pairs line such as [(0, 1), (1, 4)] followed by a
// short summary, or as a YAML document.
package converters
