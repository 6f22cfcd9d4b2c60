package hexmesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// trilinear evaluates the eight trilinear shape functions at reference
// point (u,v,w) in [0,1]^3, indexed by hexahedron local vertex.
func trilinear(u, v, w float64) (n [NumVertsPerCell]float64) {
	l := [2][3]float64{{1 - u, 1 - v, 1 - w}, {u, v, w}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				n[trilinearVert[i*4+j*2+k]] = l[i][0] * l[j][1] * l[k][2]
			}
		}
	}
	return
}

// gradTrilinear evaluates the reference gradients of the trilinear shape
// functions, g[vertex][axis].
func gradTrilinear(u, v, w float64) (g [NumVertsPerCell][3]float64) {
	l := [2][3]float64{{1 - u, 1 - v, 1 - w}, {u, v, w}}
	d := [2]float64{-1, 1}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				v8 := trilinearVert[i*4+j*2+k]
				g[v8][0] = d[i] * l[j][1] * l[k][2]
				g[v8][1] = l[i][0] * d[j] * l[k][2]
				g[v8][2] = l[i][0] * l[j][1] * d[k]
			}
		}
	}
	return
}

// bilinear evaluates the four bilinear shape functions at (u,v) in
// [0,1]^2, indexed by face-local vertex.
func bilinear(u, v float64) (n [NumVertsPerFace]float64) {
	l := [2][2]float64{{1 - u, 1 - v}, {u, v}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			n[bilinearVert[i*2+j]] = l[i][0] * l[j][1]
		}
	}
	return
}

func gradBilinear(u, v float64) (g [NumVertsPerFace][2]float64) {
	l := [2][2]float64{{1 - u, 1 - v}, {u, v}}
	d := [2]float64{-1, 1}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v4 := bilinearVert[i*2+j]
			g[v4][0] = d[i] * l[j][1]
			g[v4][1] = l[i][0] * d[j]
		}
	}
	return
}

// CellJacobian evaluates the 3x3 Jacobian of the reference-to-physical
// map at every reference point for every selected cell. The result is
// indexed [point][cell]; column m of each Jacobian is the tangent along
// reference axis m. A nil selection means all cells.
func (m *Mesh) CellJacobian(pts [][]float64, cells []int) ([][]*mat.Dense, error) {
	cells, err := m.selection(cells, Cell)
	if err != nil {
		return nil, err
	}
	J := make([][]*mat.Dense, len(pts))
	for q, pt := range pts {
		if len(pt) != 3 {
			return nil, &ValidationError{Cell: -1,
				Msg: fmt.Sprintf("reference point %d has %d coordinates, want 3", q, len(pt))}
		}
		g := gradTrilinear(pt[0], pt[1], pt[2])
		J[q] = make([]*mat.Dense, len(cells))
		for ci, c := range cells {
			jm := mat.NewDense(3, 3, nil)
			for v := 0; v < NumVertsPerCell; v++ {
				x := m.nodes[m.cells[c][v]]
				for d := 0; d < 3; d++ {
					for a := 0; a < 3; a++ {
						jm.Set(d, a, jm.At(d, a)+x[d]*g[v][a])
					}
				}
			}
			J[q][ci] = jm
		}
	}
	return J, nil
}

// FaceJacobian evaluates the 3x2 surface Jacobians of the selected faces
// at every reference point, indexed [point][face].
func (m *Mesh) FaceJacobian(pts [][]float64, faces []int) ([][]*mat.Dense, error) {
	faces, err := m.selection(faces, Face)
	if err != nil {
		return nil, err
	}
	J := make([][]*mat.Dense, len(pts))
	for q, pt := range pts {
		if len(pt) != 2 {
			return nil, &ValidationError{Cell: -1,
				Msg: fmt.Sprintf("reference point %d has %d coordinates, want 2", q, len(pt))}
		}
		g := gradBilinear(pt[0], pt[1])
		J[q] = make([]*mat.Dense, len(faces))
		for fi, f := range faces {
			jm := mat.NewDense(3, 2, nil)
			for v := 0; v < NumVertsPerFace; v++ {
				x := m.nodes[m.faces[f][v]]
				for d := 0; d < 3; d++ {
					for a := 0; a < 2; a++ {
						jm.Set(d, a, jm.At(d, a)+x[d]*g[v][a])
					}
				}
			}
			J[q][fi] = jm
		}
	}
	return J, nil
}

// FirstFundamentalForm returns G = J^T J, the metric of a (surface)
// Jacobian.
func FirstFundamentalForm(J *mat.Dense) *mat.SymDense {
	rows, dim := J.Dims()
	G := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			var s float64
			for d := 0; d < rows; d++ {
				s += J.At(d, i) * J.At(d, j)
			}
			G.SetSym(i, j, s)
		}
	}
	return G
}

// CellVolume integrates det(J) over each cell. The determinant sign is
// not forced; an inverted cell integrates negative (see
// CheckCellJacobians).
func (m *Mesh) CellVolume() ([]float64, error) {
	rule, err := m.Integrator(2, Cell)
	if err != nil {
		return nil, err
	}
	J, err := m.CellJacobian(rule.Points, nil)
	if err != nil {
		return nil, err
	}
	vol := make([]float64, m.NumberOfCells())
	for q, w := range rule.Weights {
		for c := range vol {
			vol[c] += w * mat.Det(J[q][c])
		}
	}
	return vol, nil
}

// FaceArea integrates the surface measure, the norm of the cross product
// of the two tangent columns, over each face.
func (m *Mesh) FaceArea() ([]float64, error) {
	rule, err := m.Integrator(2, Face)
	if err != nil {
		return nil, err
	}
	J, err := m.FaceJacobian(rule.Points, nil)
	if err != nil {
		return nil, err
	}
	area := make([]float64, m.NumberOfFaces())
	for q, w := range rule.Weights {
		for f := range area {
			jm := J[q][f]
			cx := jm.At(1, 0)*jm.At(2, 1) - jm.At(2, 0)*jm.At(1, 1)
			cy := jm.At(2, 0)*jm.At(0, 1) - jm.At(0, 0)*jm.At(2, 1)
			cz := jm.At(0, 0)*jm.At(1, 1) - jm.At(1, 0)*jm.At(0, 1)
			area[f] += w * math.Sqrt(cx*cx+cy*cy+cz*cz)
		}
	}
	return area, nil
}

// EdgeLength returns the length of each (straight) edge.
func (m *Mesh) EdgeLength() []float64 {
	out := make([]float64, m.NumberOfEdges())
	for e, ed := range m.edges {
		x0, x1 := m.nodes[ed[0]], m.nodes[ed[1]]
		var s float64
		for d := 0; d < 3; d++ {
			diff := x1[d] - x0[d]
			s += diff * diff
		}
		out[e] = math.Sqrt(s)
	}
	return out
}

// CheckCellJacobians evaluates det(J) at the points of an order-q cell
// rule and reports every cell with a non-positive determinant. Degenerate
// or inverted cells are surfaced, never clamped.
func (m *Mesh) CheckCellJacobians(order int) error {
	rule, err := m.Integrator(order, Cell)
	if err != nil {
		return err
	}
	J, err := m.CellJacobian(rule.Points, nil)
	if err != nil {
		return err
	}
	bad := make(map[int]bool)
	for q := range rule.Weights {
		for c := 0; c < m.NumberOfCells(); c++ {
			if mat.Det(J[q][c]) <= 0 {
				bad[c] = true
			}
		}
	}
	if len(bad) == 0 {
		return nil
	}
	idx := make([]int, 0, len(bad))
	for c := 0; c < m.NumberOfCells(); c++ {
		if bad[c] {
			idx = append(idx, c)
		}
	}
	return &NumericError{Kind: Cell, Indices: idx,
		Msg: "non-positive Jacobian determinant"}
}

// CellBcToPoint maps reference points to physical coordinates in each
// selected cell, indexed [point][cell][3].
func (m *Mesh) CellBcToPoint(pts [][]float64, cells []int) ([][][]float64, error) {
	cells, err := m.selection(cells, Cell)
	if err != nil {
		return nil, err
	}
	out := make([][][]float64, len(pts))
	for q, pt := range pts {
		if len(pt) != 3 {
			return nil, &ValidationError{Cell: -1,
				Msg: fmt.Sprintf("reference point %d has %d coordinates, want 3", q, len(pt))}
		}
		n := trilinear(pt[0], pt[1], pt[2])
		out[q] = make([][]float64, len(cells))
		for ci, c := range cells {
			x := make([]float64, 3)
			for v := 0; v < NumVertsPerCell; v++ {
				nd := m.nodes[m.cells[c][v]]
				for d := 0; d < 3; d++ {
					x[d] += n[v] * nd[d]
				}
			}
			out[q][ci] = x
		}
	}
	return out, nil
}

// FaceBcToPoint maps reference points on the unit quad to physical
// coordinates on each selected face, indexed [point][face][3].
func (m *Mesh) FaceBcToPoint(pts [][]float64, faces []int) ([][][]float64, error) {
	faces, err := m.selection(faces, Face)
	if err != nil {
		return nil, err
	}
	out := make([][][]float64, len(pts))
	for q, pt := range pts {
		if len(pt) != 2 {
			return nil, &ValidationError{Cell: -1,
				Msg: fmt.Sprintf("reference point %d has %d coordinates, want 2", q, len(pt))}
		}
		n := bilinear(pt[0], pt[1])
		out[q] = make([][]float64, len(faces))
		for fi, f := range faces {
			x := make([]float64, 3)
			for v := 0; v < NumVertsPerFace; v++ {
				nd := m.nodes[m.faces[f][v]]
				for d := 0; d < 3; d++ {
					x[d] += n[v] * nd[d]
				}
			}
			out[q][fi] = x
		}
	}
	return out, nil
}

// Barycenter returns the vertex-average center of every entity of the
// given kind. For nodes it is a copy of the coordinates.
func (m *Mesh) Barycenter(kind EntityKind) [][]float64 {
	if kind == Node {
		return m.Nodes()
	}
	var conn [][]int
	switch kind {
	case Edge:
		conn = m.edges
	case Face:
		conn = m.faces
	default:
		conn = m.cells
	}
	out := make([][]float64, len(conn))
	for i, verts := range conn {
		bc := make([]float64, 3)
		for _, n := range verts {
			for d := 0; d < 3; d++ {
				bc[d] += m.nodes[n][d]
			}
		}
		for d := 0; d < 3; d++ {
			bc[d] /= float64(len(verts))
		}
		out[i] = bc
	}
	return out
}

// selection validates an entity index selection, expanding nil to all.
func (m *Mesh) selection(sel []int, kind EntityKind) ([]int, error) {
	n := m.NumberOfEntities(kind)
	if sel == nil {
		sel = make([]int, n)
		for i := range sel {
			sel[i] = i
		}
		return sel, nil
	}
	for _, i := range sel {
		if i < 0 || i >= n {
			return nil, &ValidationError{Cell: -1,
				Msg: fmt.Sprintf("%s index %d out of range [0,%d)", kind, i, n)}
		}
	}
	return sel, nil
}
