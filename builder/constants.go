// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Method names prefix errors with the constructor name for context.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodComplete          = "Complete"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomConnected   = "RandomConnected"
	MethodWheel             = "Wheel"
	MethodCompleteBipartite = "CompleteBipartite"
)

// MinPathNodes is the smallest size for a path; a single vertex is a valid
// (edgeless) path and the smallest graph the MST algorithms accept.
const MinPathNodes = 1

// MinCycleNodes is the smallest size for a simple cycle.
const MinCycleNodes = 3

// MinStarNodes is the smallest size for a star: center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest wheel: a triangle rim plus the hub.
const MinWheelNodes = 4

// MinPartitionSize is the smallest side of a complete bipartite graph.
const MinPartitionSize = 1

// MinCompleteNodes is the smallest size for K_n.
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed grid dimension (rows or cols).
const MinGridDim = 1

// MinProbability and MaxProbability bound p in RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
