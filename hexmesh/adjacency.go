package hexmesh

import "github.com/james-bowman/sparse"

// Sparse incidence and adjacency matrices for callers that consume
// topology algebraically (graph partitioners, smoothers, reordering).
// Built on demand; the product construction mirrors the incidence
// algebra used to derive element connectivity in DG codes.

// CellToFaceMatrix returns the NC x NF cell-face incidence matrix.
func (m *Mesh) CellToFaceMatrix() *sparse.CSR {
	dok := sparse.NewDOK(m.NumberOfCells(), m.NumberOfFaces())
	for c, row := range m.cellToFace {
		for _, f := range row {
			dok.Set(c, f, 1)
		}
	}
	return dok.ToCSR()
}

// CellToCellMatrix returns the NC x NC cell adjacency matrix: entry
// (i,j) is 1 when cells i and j share a face. Computed as the incidence
// product C*C^T with the diagonal (always the per-cell face count)
// removed.
func (m *Mesh) CellToCellMatrix() *sparse.CSR {
	NC := m.NumberOfCells()
	ctf := m.CellToFaceMatrix()
	adj := sparse.NewCSR(NC, NC, nil, nil, nil)
	adj.Mul(ctf, ctf.T())
	for c := 0; c < NC; c++ {
		v := adj.At(c, c)
		adj.Set(c, c, v-float64(NumFacesPerCell))
	}
	return adj
}

// NodeToNodeMatrix returns the symmetric NN x NN node adjacency matrix
// with a 1 wherever two nodes are joined by an edge.
func (m *Mesh) NodeToNodeMatrix() *sparse.CSR {
	dok := sparse.NewDOK(m.NumberOfNodes(), m.NumberOfNodes())
	for _, ed := range m.edges {
		dok.Set(ed[0], ed[1], 1)
		dok.Set(ed[1], ed[0], 1)
	}
	return dok.ToCSR()
}
