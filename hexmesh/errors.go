package hexmesh

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed input: wrong array shapes, node
// indices out of range, or a degenerate cell with repeated nodes.
type ValidationError struct {
	Cell int // offending cell index, -1 when not cell-specific
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Cell >= 0 {
		return fmt.Sprintf("validation: cell %d: %s", e.Cell, e.Msg)
	}
	return "validation: " + e.Msg
}

// TopologyError reports non-manifold adjacency, i.e. a face claimed by
// more than two cells. The mesh cannot be repaired automatically.
type TopologyError struct {
	FaceNodes []int // sorted node tuple of the offending face
	Cells     []int // cells claiming the face
	Msg       string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topology: %s (face nodes %v, cells %v)",
		e.Msg, e.FaceNodes, e.Cells)
}

// NumericError reports degenerate or inverted geometry detected during a
// quadrature-based query, with the offending entity indices.
type NumericError struct {
	Kind    EntityKind
	Indices []int
	Msg     string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("numeric: %s: %s %s", e.Msg,
		strings.ToLower(e.Kind.String()), fmt.Sprint(e.Indices))
}

// ConfigError reports an invalid request parameter, such as an
// interpolation order below one or a quadrature request for nodes.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }
