package hexmesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleHexahedron_Counts(t *testing.T) {
	m, err := NewFromSingleHexahedron()
	require.NoError(t, err)

	assert.Equal(t, 8, m.NumberOfNodes())
	assert.Equal(t, 12, m.NumberOfEdges())
	assert.Equal(t, 6, m.NumberOfFaces())
	assert.Equal(t, 1, m.NumberOfCells())
	assert.Equal(t, 6, m.NumberOfBoundaryFaces())

	for f := 0; f < m.NumberOfFaces(); f++ {
		assert.True(t, m.IsBoundaryFace(f))
	}
}

func TestBoxMesh_Counts(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 2, 2, 2, nil)
	require.NoError(t, err)

	// Structured 2x2x2 grid: 27 nodes, 8 cells, 54 edges, 36 faces of
	// which 24 lie on the box surface.
	assert.Equal(t, 27, m.NumberOfNodes())
	assert.Equal(t, 8, m.NumberOfCells())
	assert.Equal(t, 54, m.NumberOfEdges())
	assert.Equal(t, 36, m.NumberOfFaces())
	assert.Equal(t, 24, m.NumberOfBoundaryFaces())

	assert.Equal(t, 27, m.NumberOfEntities(Node))
	assert.Equal(t, 54, m.NumberOfEntities(Edge))
	assert.Equal(t, 36, m.NumberOfEntities(Face))
	assert.Equal(t, 8, m.NumberOfEntities(Cell))
}

func TestBoundaryFlag_MatchesAdjacency(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 3, 2, 2, nil)
	require.NoError(t, err)

	f2c := m.FaceToCell()
	interior, boundary := 0, 0
	for f, row := range f2c {
		if row[1] < 0 {
			boundary++
			assert.True(t, m.IsBoundaryFace(f))
		} else {
			interior++
			assert.False(t, m.IsBoundaryFace(f))
			assert.NotEqual(t, row[0], row[1])
		}
	}
	assert.Equal(t, m.NumberOfBoundaryFaces(), boundary)
	assert.Equal(t, m.NumberOfFaces(), interior+boundary)
}

func TestCellFace_MutualInverse(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 2, 2, 2, nil)
	require.NoError(t, err)

	c2f := m.CellToFace()
	f2c := m.FaceToCell()
	cells := m.Cells()
	faces := m.Faces()

	for c, row := range c2f {
		for slot, f := range row {
			// The face must list (c, slot) on one of its two sides.
			side := -1
			if f2c[f][0] == c && f2c[f][2] == slot {
				side = 0
			} else if f2c[f][1] == c && f2c[f][3] == slot {
				side = 1
			}
			require.GreaterOrEqual(t, side, 0,
				"cell %d slot %d not recorded on face %d", c, slot, f)

			// Same node set, up to the permutation recorded implicitly by
			// the canonical orientation.
			want := map[int]bool{}
			for _, lv := range localFace[slot] {
				want[cells[c][lv]] = true
			}
			for _, n := range faces[f] {
				assert.True(t, want[n],
					"face %d node %d missing from cell %d slot %d", f, n, c, slot)
			}
		}
	}
}

func TestFaceToEdge_EndpointConsistency(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 2, 1, 1, nil)
	require.NoError(t, err)

	faces := m.Faces()
	edges := m.Edges()
	f2e := m.FaceToEdge()

	for f, row := range f2e {
		for i, e := range row {
			a := faces[f][faceEdge[i][0]]
			b := faces[f][faceEdge[i][1]]
			ok := (edges[e][0] == a && edges[e][1] == b) ||
				(edges[e][0] == b && edges[e][1] == a)
			assert.True(t, ok,
				"face %d local edge %d: canonical edge %v, face traversal %d->%d",
				f, i, edges[e], a, b)
		}
	}
}

func TestEdgeAdjacency_Reverse(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 2, 2, 1, nil)
	require.NoError(t, err)

	e2f := m.EdgeToFace()
	f2e := m.FaceToEdge()
	for e, fl := range e2f {
		for _, f := range fl {
			found := false
			for _, fe := range f2e[f] {
				if fe == e {
					found = true
				}
			}
			assert.True(t, found, "edge %d listed on face %d but not back", e, f)
		}
	}

	e2c := m.EdgeToCell()
	c2e := m.CellToEdge()
	for e, cl := range e2c {
		for _, c := range cl {
			found := false
			for _, ce := range c2e[c] {
				if ce == e {
					found = true
				}
			}
			assert.True(t, found, "edge %d listed on cell %d but not back", e, c)
		}
	}
}

func TestCellToCell_Neighbors(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 2, 0, 1, 0, 1}, 2, 1, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumberOfCells())

	c2c := m.CellToCell()
	// Cells stack along x; slot 3 is the u=1 face, slot 2 the u=0 face.
	assert.Equal(t, 1, c2c[0][3])
	assert.Equal(t, 0, c2c[1][2])

	// All other slots face the boundary.
	for c := 0; c < 2; c++ {
		count := 0
		for _, n := range c2c[c] {
			if n >= 0 {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestNewMesh_DegenerateCell(t *testing.T) {
	nodes := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	cells := [][]int{{0, 1, 2, 3, 4, 5, 6, 6}} // node 6 repeated

	_, err := NewMesh(nodes, cells)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.Cell)
}

func TestNewMesh_NodeIndexOutOfRange(t *testing.T) {
	nodes := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	cells := [][]int{{0, 1, 2, 3, 4, 5, 6, 99}}

	_, err := NewMesh(nodes, cells)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestNewMesh_NonManifoldFace(t *testing.T) {
	// Three hexahedra all claiming the quad {0,1,2,3} as a face.
	nodes := make([][]float64, 16)
	for i := range nodes {
		nodes[i] = []float64{float64(i), float64(i % 3), float64(i % 5)}
	}
	cells := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{0, 1, 2, 3, 8, 9, 10, 11},
		{0, 1, 2, 3, 12, 13, 14, 15},
	}

	_, err := NewMesh(nodes, cells)
	var terr *TopologyError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, []int{0, 1, 2, 3}, terr.FaceNodes)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	m, err := NewFromSingleHexahedron()
	require.NoError(t, err)

	cells := m.Cells()
	cells[0][0] = 99
	assert.Equal(t, 0, m.Cells()[0][0], "caller mutation must not alias the mesh")

	nodes := m.Nodes()
	nodes[0][0] = 42
	assert.Equal(t, 0.0, m.Nodes()[0][0])
}

func TestEntity_Dispatch(t *testing.T) {
	m, err := NewFromSingleHexahedron()
	require.NoError(t, err)

	for _, kind := range []EntityKind{Edge, Face, Cell} {
		tbl, err := m.Entity(kind)
		require.NoError(t, err)
		assert.Len(t, tbl, m.NumberOfEntities(kind))
	}

	_, err = m.Entity(Node)
	var cerr *ConfigError
	assert.True(t, errors.As(err, &cerr))
}

func TestUniformRefine_Unimplemented(t *testing.T) {
	m, err := NewFromSingleHexahedron()
	require.NoError(t, err)
	assert.Error(t, m.UniformRefine())
}
