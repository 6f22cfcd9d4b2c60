package hexmesh

import (
	"fmt"
	"sort"
)

// buildTopology derives the canonical edge and face tables and every
// adjacency mapping from the raw cell connectivity in a single pass over
// the cells. De-duplication uses sorted node tuples as map keys; the
// canonical orientation of a shared entity is the local order of the
// first cell that registers it, so the pass must visit cells in
// ascending index order to stay deterministic.
func (m *Mesh) buildTopology() error {
	var (
		NN = len(m.nodes)
		NC = len(m.cells)
	)

	m.cellToFace = make([][]int, NC)
	m.cellToEdge = make([][]int, NC)

	edgeIndex := make(map[[2]int]int, NC*NumEdgesPerCell/4)
	faceIndex := make(map[[4]int]int, NC*NumFacesPerCell/2)

	for c := 0; c < NC; c++ {
		cell := m.cells[c]
		if err := validateCell(c, cell, NN); err != nil {
			return err
		}

		// Edges first: face-to-edge below needs this cell's edge row.
		m.cellToEdge[c] = make([]int, NumEdgesPerCell)
		for le := 0; le < NumEdgesPerCell; le++ {
			n0, n1 := cell[localEdge[le][0]], cell[localEdge[le][1]]
			key := [2]int{n0, n1}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			e, ok := edgeIndex[key]
			if !ok {
				e = len(m.edges)
				edgeIndex[key] = e
				m.edges = append(m.edges, []int{n0, n1})
				m.edgeToCell = append(m.edgeToCell, nil)
			}
			m.cellToEdge[c][le] = e
			m.edgeToCell[e] = append(m.edgeToCell[e], c)
		}

		m.cellToFace[c] = make([]int, NumFacesPerCell)
		for lf := 0; lf < NumFacesPerCell; lf++ {
			fv := make([]int, NumVertsPerFace)
			for k := 0; k < NumVertsPerFace; k++ {
				fv[k] = cell[localFace[lf][k]]
			}
			var key [4]int
			copy(key[:], fv)
			sort.Ints(key[:])

			f, ok := faceIndex[key]
			if !ok {
				// First registrant fixes the canonical orientation and
				// donates its edge mapping.
				f = len(m.faces)
				faceIndex[key] = f
				m.faces = append(m.faces, fv)
				m.faceToCell = append(m.faceToCell, []int{c, -1, lf, -1})
				f2e := make([]int, NumEdgesPerFace)
				for i := 0; i < NumEdgesPerFace; i++ {
					f2e[i] = m.cellToEdge[c][localFaceEdge[lf][i]]
				}
				m.faceToEdge = append(m.faceToEdge, f2e)
			} else {
				f2c := m.faceToCell[f]
				if f2c[1] >= 0 {
					return &TopologyError{
						FaceNodes: key[:],
						Cells:     []int{f2c[0], f2c[1], c},
						Msg:       "non-manifold mesh, face claimed by more than two cells",
					}
				}
				// A second registrant must see the shared quad as a
				// rotation or reflection of the canonical order; anything
				// else means the two cells disagree on the face's
				// diagonal structure.
				var lv, gv [4]int
				copy(lv[:], fv)
				copy(gv[:], m.faces[f])
				sigma := matchCorners(lv, gv)
				if (sigma[0]+2)%4 != sigma[2] || (sigma[1]+2)%4 != sigma[3] {
					return &TopologyError{
						FaceNodes: key[:],
						Cells:     []int{f2c[0], c},
						Msg:       "cells disagree on shared face orientation",
					}
				}
				f2c[1], f2c[3] = c, lf
			}
			m.cellToFace[c][lf] = f
		}
	}

	// Reverse mappings derived from the canonical tables.
	m.edgeToFace = make([][]int, len(m.edges))
	for f, f2e := range m.faceToEdge {
		for _, e := range f2e {
			m.edgeToFace[e] = append(m.edgeToFace[e], f)
		}
	}

	m.cellToCell = make([][]int, NC)
	for c := range m.cellToCell {
		m.cellToCell[c] = []int{-1, -1, -1, -1, -1, -1}
	}
	for _, f2c := range m.faceToCell {
		c0, c1, s0, s1 := f2c[0], f2c[1], f2c[2], f2c[3]
		if c1 >= 0 {
			m.cellToCell[c0][s0] = c1
			m.cellToCell[c1][s1] = c0
		}
	}

	return nil
}

func validateCell(c int, cell []int, NN int) error {
	if len(cell) != NumVertsPerCell {
		return &ValidationError{Cell: c,
			Msg: fmt.Sprintf("has %d nodes, want %d", len(cell), NumVertsPerCell)}
	}
	var seen [NumVertsPerCell]int
	copy(seen[:], cell)
	sort.Ints(seen[:])
	for i, n := range seen {
		if n < 0 || n >= NN {
			return &ValidationError{Cell: c,
				Msg: fmt.Sprintf("node index %d out of range [0,%d)", n, NN)}
		}
		if i > 0 && n == seen[i-1] {
			return &ValidationError{Cell: c,
				Msg: fmt.Sprintf("degenerate connectivity, node %d repeated", n)}
		}
	}
	return nil
}
