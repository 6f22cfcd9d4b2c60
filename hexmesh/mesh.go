package hexmesh

import (
	"fmt"

	"github.com/notargets/hexmesh/quadrature"
)

// Mesh is an unstructured hexahedral mesh with fully derived topology.
// All entity and adjacency tables are built once by NewMesh and are
// immutable afterwards; accessors hand out copies so callers can never
// alias the internal store.
type Mesh struct {
	nodes [][]float64 // [NN][3] coordinates
	cells [][]int     // [NC][8] cell to node connectivity

	// Derived entity tables, canonical orientation fixed at build time
	edges [][]int // [NE][2]
	faces [][]int // [NF][4]

	// Adjacency
	cellToFace [][]int // [NC][6]
	cellToEdge [][]int // [NC][12]
	faceToEdge [][]int // [NF][4]
	faceToCell [][]int // [NF][4]: cell0, cell1, slot0, slot1; cell1 = -1 on boundary
	cellToCell [][]int // [NC][6], -1 across boundary faces
	edgeToCell [][]int // [NE][variable]
	edgeToFace [][]int // [NE][variable]

	// EToP maps cells to partitions after Partition has run, nil before.
	EToP []int

	quad Integrator

	// Interpolation point tables are memoized per order.
	e2ipCache map[int][][]int
	f2ipCache map[int][][]int
	c2ipCache map[int][][]int
	ipCache   map[int][][]float64
}

// NewMesh builds a mesh from node coordinates (NN x 3) and cell
// connectivity (NC x 8, reference-hexahedron local vertex order). The
// constructor is atomic: any validation or topology failure returns an
// error and no mesh.
func NewMesh(nodes [][]float64, cells [][]int) (*Mesh, error) {
	for i, nd := range nodes {
		if len(nd) != 3 {
			return nil, &ValidationError{Cell: -1,
				Msg: fmt.Sprintf("node %d has %d coordinates, want 3", i, len(nd))}
		}
	}
	m := &Mesh{
		nodes:     copyFloats(nodes),
		cells:     copyInts(cells),
		quad:      GaussIntegrator{},
		e2ipCache: make(map[int][][]int),
		f2ipCache: make(map[int][][]int),
		c2ipCache: make(map[int][][]int),
		ipCache:   make(map[int][][]float64),
	}
	if err := m.buildTopology(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) NumberOfNodes() int { return len(m.nodes) }
func (m *Mesh) NumberOfEdges() int { return len(m.edges) }
func (m *Mesh) NumberOfFaces() int { return len(m.faces) }
func (m *Mesh) NumberOfCells() int { return len(m.cells) }

// NumberOfEntities returns the entity count for the given kind.
func (m *Mesh) NumberOfEntities(kind EntityKind) int {
	switch kind {
	case Node:
		return m.NumberOfNodes()
	case Edge:
		return m.NumberOfEdges()
	case Face:
		return m.NumberOfFaces()
	default:
		return m.NumberOfCells()
	}
}

// Nodes returns a copy of the node coordinate array.
func (m *Mesh) Nodes() [][]float64 { return copyFloats(m.nodes) }

// Cells returns a copy of the cell to node connectivity.
func (m *Mesh) Cells() [][]int { return copyInts(m.cells) }

// Edges returns a copy of the canonical edge table (node pairs).
func (m *Mesh) Edges() [][]int { return copyInts(m.edges) }

// Faces returns a copy of the canonical face table (node quads in the
// orientation fixed by the first registering cell).
func (m *Mesh) Faces() [][]int { return copyInts(m.faces) }

// Entity returns a copy of the connectivity table for Edge, Face or Cell.
// Node coordinates live on a different value type; use Nodes for those.
func (m *Mesh) Entity(kind EntityKind) ([][]int, error) {
	switch kind {
	case Edge:
		return m.Edges(), nil
	case Face:
		return m.Faces(), nil
	case Cell:
		return m.Cells(), nil
	default:
		return nil, &ConfigError{Msg: "Entity serves Edge, Face and Cell; use Nodes for node coordinates"}
	}
}

func (m *Mesh) CellToFace() [][]int { return copyInts(m.cellToFace) }
func (m *Mesh) CellToEdge() [][]int { return copyInts(m.cellToEdge) }
func (m *Mesh) FaceToEdge() [][]int { return copyInts(m.faceToEdge) }
func (m *Mesh) EdgeToCell() [][]int { return copyInts(m.edgeToCell) }
func (m *Mesh) EdgeToFace() [][]int { return copyInts(m.edgeToFace) }

// FaceToCell returns rows of [cell0, cell1, slot0, slot1]: the cells on
// either side of each face and the local face slot the face occupies in
// each. cell1 and slot1 are -1 for boundary faces.
func (m *Mesh) FaceToCell() [][]int { return copyInts(m.faceToCell) }

// CellToCell returns the neighbor cell across each of the 6 local face
// slots, -1 where the face is on the boundary.
func (m *Mesh) CellToCell() [][]int { return copyInts(m.cellToCell) }

// IsBoundaryFace reports whether face f has exactly one adjacent cell.
func (m *Mesh) IsBoundaryFace(f int) bool { return m.faceToCell[f][1] < 0 }

// NumberOfBoundaryFaces counts faces with a single adjacent cell.
func (m *Mesh) NumberOfBoundaryFaces() (n int) {
	for f := range m.faces {
		if m.IsBoundaryFace(f) {
			n++
		}
	}
	return
}

// UseIntegrator replaces the quadrature rule provider. The default is
// GaussIntegrator.
func (m *Mesh) UseIntegrator(q Integrator) { m.quad = q }

// Integrator returns a quadrature rule on the unit reference entity of
// the given kind, delegating to the installed rule provider.
func (m *Mesh) Integrator(order int, kind EntityKind) (quadrature.Rule, error) {
	return m.quad.Rule(order, kind)
}

// UniformRefine is a documented gap: refinement must invalidate and
// rebuild every entity, adjacency and numbering table, which this engine
// does not implement. Construct a new mesh from refined connectivity
// instead.
func (m *Mesh) UniformRefine() error {
	return &ConfigError{Msg: "uniform refinement is not implemented; rebuild the mesh from refined connectivity"}
}

func copyInts(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, row := range src {
		out[i] = append([]int(nil), row...)
	}
	return out
}

func copyFloats(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
