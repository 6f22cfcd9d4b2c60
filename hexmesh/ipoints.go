package hexmesh

import (
	"fmt"
	"sort"
)

// Interpolation point numbering for polynomial order p. Global indices
// are assigned contiguously by entity-dimension tier: all node points
// first, then edge interiors, face interiors and cell interiors. External
// assembly code depends on this ordering.
//
// The hard invariant: a point on a shared face or edge receives the same
// global index, at the geometrically matching local position, from every
// cell that touches it. Shared-entity orientation is resolved purely
// combinatorially, by composing sort permutations of vertex tuples, so
// the agreement is exact regardless of floating point.

func checkOrder(p int) error {
	if p < 1 {
		return &ConfigError{Msg: fmt.Sprintf("interpolation order %d, want >= 1", p)}
	}
	return nil
}

// NumberOfLocalIpoints returns the point count a single entity of the
// given kind carries, boundary points included.
func (m *Mesh) NumberOfLocalIpoints(p int, kind EntityKind) (int, error) {
	if err := checkOrder(p); err != nil {
		return 0, err
	}
	n := 1
	for d := 0; d < kind.Dim(); d++ {
		n *= p + 1
	}
	return n, nil
}

// NumberOfGlobalIpoints returns the total number of global interpolation
// points at order p.
func (m *Mesh) NumberOfGlobalIpoints(p int) (int, error) {
	if err := checkOrder(p); err != nil {
		return 0, err
	}
	pm1 := p - 1
	return m.NumberOfNodes() +
		m.NumberOfEdges()*pm1 +
		m.NumberOfFaces()*pm1*pm1 +
		m.NumberOfCells()*pm1*pm1*pm1, nil
}

// EdgeToIpoint returns the (p+1) global point indices along each edge,
// traversed from the edge's first canonical endpoint to its second.
func (m *Mesh) EdgeToIpoint(p int) ([][]int, error) {
	t, err := m.edgeToIpoint(p)
	if err != nil {
		return nil, err
	}
	return copyInts(t), nil
}

func (m *Mesh) edgeToIpoint(p int) ([][]int, error) {
	if err := checkOrder(p); err != nil {
		return nil, err
	}
	if t, ok := m.e2ipCache[p]; ok {
		return t, nil
	}
	NN := m.NumberOfNodes()
	t := make([][]int, m.NumberOfEdges())
	for e, ed := range m.edges {
		row := make([]int, p+1)
		row[0], row[p] = ed[0], ed[1]
		for i := 1; i < p; i++ {
			row[i] = NN + e*(p-1) + i - 1
		}
		t[e] = row
	}
	m.e2ipCache[p] = t
	return t, nil
}

// FaceToIpoint returns the (p+1)^2 global point indices of each face on
// its canonical row-major grid: position (r,c) is stored at r*(p+1)+c,
// with grid corners (0,0), (p,0), (p,p), (0,p) at the face's canonical
// vertices 0, 1, 2, 3.
func (m *Mesh) FaceToIpoint(p int) ([][]int, error) {
	t, err := m.faceToIpoint(p)
	if err != nil {
		return nil, err
	}
	return copyInts(t), nil
}

func (m *Mesh) faceToIpoint(p int) ([][]int, error) {
	if t, ok := m.f2ipCache[p]; ok {
		return t, nil
	}
	e2ip, err := m.edgeToIpoint(p)
	if err != nil {
		return nil, err
	}
	var (
		NN       = m.NumberOfNodes()
		NE       = m.NumberOfEdges()
		np1      = p + 1
		faceBase = NN + NE*(p-1)
	)
	t := make([][]int, m.NumberOfFaces())
	for f := range m.faces {
		row := make([]int, np1*np1)

		// Edge-boundary subsets come from the edge's own global table so
		// the interior edge points are assigned exactly once. When the
		// canonical edge runs against the face-local traversal, the
		// sequence is read reversed.
		for i := 0; i < NumEdgesPerFace; i++ {
			ge := m.faceToEdge[f][i]
			pts := e2ip[ge]
			reversed := m.faces[f][faceEdge[i][0]] != m.edges[ge][0]
			for s := 0; s <= p; s++ {
				v := pts[s]
				if reversed {
					v = pts[p-s]
				}
				r, c := faceEdgePos(i, s, p)
				row[r*np1+c] = v
			}
		}

		// Interior block, fresh contiguous indices in grid order.
		idx := faceBase + f*(p-1)*(p-1)
		for r := 1; r < p; r++ {
			for c := 1; c < p; c++ {
				row[r*np1+c] = idx
				idx++
			}
		}
		t[f] = row
	}
	m.f2ipCache[p] = t
	return t, nil
}

// faceEdgePos places the s-th point of face-local edge i on the face
// grid, following the faceEdge traversal directions.
func faceEdgePos(i, s, p int) (r, c int) {
	switch i {
	case 0: // vertex 0 -> 1
		return s, 0
	case 1: // vertex 1 -> 2
		return p, s
	case 2: // vertex 3 -> 2
		return s, p
	default: // vertex 0 -> 3
		return 0, s
	}
}

// CellToIpoint returns the (p+1)^3 global point indices of each cell on
// its reference grid: the point with multi-index (u,v,w), each running
// 0..p along the reference axes, is stored at (u*(p+1)+v)*(p+1)+w.
func (m *Mesh) CellToIpoint(p int) ([][]int, error) {
	t, err := m.cellToIpoint(p)
	if err != nil {
		return nil, err
	}
	return copyInts(t), nil
}

func (m *Mesh) cellToIpoint(p int) ([][]int, error) {
	if t, ok := m.c2ipCache[p]; ok {
		return t, nil
	}
	f2ip, err := m.faceToIpoint(p)
	if err != nil {
		return nil, err
	}
	var (
		NN       = m.NumberOfNodes()
		NE       = m.NumberOfEdges()
		NF       = m.NumberOfFaces()
		np1      = p + 1
		pm1      = p - 1
		cellBase = NN + NE*pm1 + NF*pm1*pm1
	)
	// Grid positions of the four face corners, in the corner order used
	// by gridFaceCorner and by the canonical face tuple.
	P := [4][2]int{{0, 0}, {p, 0}, {p, p}, {0, p}}

	t := make([][]int, m.NumberOfCells())
	for c, cell := range m.cells {
		row := make([]int, np1*np1*np1)

		// Every boundary grid point of the cell lies on one of the six
		// faces, so pulling each face's full (p+1)^2 table through the
		// orientation-reconciling grid map fills the entire shell.
		for s := 0; s < NumFacesPerCell; s++ {
			f := m.cellToFace[c][s]
			var L, G [4]int
			for k := 0; k < 4; k++ {
				L[k] = cell[gridFaceCorner[s][k]]
				G[k] = m.faces[f][k]
			}
			sigma := matchCorners(L, G)

			// Dihedral grid transform sending cell-enumeration corner k
			// to face-grid corner sigma[k].
			O := P[sigma[0]]
			ua := (P[sigma[1]][0] - O[0]) / p
			ub := (P[sigma[1]][1] - O[1]) / p
			va := (P[sigma[3]][0] - O[0]) / p
			vb := (P[sigma[3]][1] - O[1]) / p

			fRow := f2ip[f]
			for a := 0; a <= p; a++ {
				for b := 0; b <= p; b++ {
					r := O[0] + a*ua + b*va
					cc := O[1] + a*ub + b*vb
					row[cellGridIndex(s, a, b, np1)] = fRow[r*np1+cc]
				}
			}
		}

		// Cell interior block, assigned exactly once per cell.
		idx := cellBase + c*pm1*pm1*pm1
		for u := 1; u < p; u++ {
			for v := 1; v < p; v++ {
				for w := 1; w < p; w++ {
					row[(u*np1+v)*np1+w] = idx
					idx++
				}
			}
		}
		t[c] = row
	}
	m.c2ipCache[p] = t
	return t, nil
}

// cellGridIndex maps the (a,b) coordinates of local face slot s to the
// flattened cell grid index. Slots fix one reference axis at 0 or p; the
// remaining axes keep their reference order, slower one first.
func cellGridIndex(s, a, b, np1 int) int {
	p := np1 - 1
	var u, v, w int
	switch s {
	case 0:
		u, v, w = a, b, 0
	case 1:
		u, v, w = a, b, p
	case 2:
		u, v, w = 0, a, b
	case 3:
		u, v, w = p, a, b
	case 4:
		u, v, w = a, 0, b
	default:
		u, v, w = a, p, b
	}
	return (u*np1+v)*np1 + w
}

// matchCorners returns sigma with G[sigma[k]] == L[k], computed by
// composing the sort permutations of the two tuples. Both tuples hold the
// same four distinct node indices.
func matchCorners(L, G [4]int) (sigma [4]int) {
	idxG := sortPerm(G)
	rankL := invPerm(sortPerm(L))
	for k := range sigma {
		sigma[k] = idxG[rankL[k]]
	}
	return
}

func sortPerm(t [4]int) (perm [4]int) {
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm[:], func(a, b int) bool { return t[perm[a]] < t[perm[b]] })
	return
}

func invPerm(perm [4]int) (inv [4]int) {
	for i, v := range perm {
		inv[v] = i
	}
	return
}

// InterpolationPoints returns the physical coordinates of every global
// interpolation point, indexed by global point index. Shared points are
// written once per adjacent cell; the writes agree because the numbering
// is orientation-consistent.
func (m *Mesh) InterpolationPoints(p int) ([][]float64, error) {
	if t, ok := m.ipCache[p]; ok {
		return copyFloats(t), nil
	}
	c2ip, err := m.cellToIpoint(p)
	if err != nil {
		return nil, err
	}
	gp, err := m.NumberOfGlobalIpoints(p)
	if err != nil {
		return nil, err
	}
	var (
		np1 = p + 1
		fp  = float64(p)
	)
	t := make([][]float64, gp)
	for c, cell := range m.cells {
		row := c2ip[c]
		for u := 0; u <= p; u++ {
			for v := 0; v <= p; v++ {
				for w := 0; w <= p; w++ {
					n := trilinear(float64(u)/fp, float64(v)/fp, float64(w)/fp)
					x := make([]float64, 3)
					for v8 := 0; v8 < NumVertsPerCell; v8++ {
						nd := m.nodes[cell[v8]]
						for d := 0; d < 3; d++ {
							x[d] += n[v8] * nd[d]
						}
					}
					t[row[(u*np1+v)*np1+w]] = x
				}
			}
		}
	}
	m.ipCache[p] = t
	return copyFloats(t), nil
}
