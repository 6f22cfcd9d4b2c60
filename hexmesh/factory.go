package hexmesh

import "fmt"

// NewFromSingleHexahedron builds the one-cell mesh of the unit cube.
func NewFromSingleHexahedron() (*Mesh, error) {
	nodes := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	cells := [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}
	return NewMesh(nodes, cells)
}

// NewFromBox builds a structured nx x ny x nz hexahedral mesh of the box
// [x0,x1] x [y0,y1] x [z0,z1]. The optional drop callback receives each
// cell's barycenter and returns true to exclude that cell; unreferenced
// nodes are compacted away afterwards.
func NewFromBox(box [6]float64, nx, ny, nz int, drop func(x, y, z float64) bool) (*Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, &ValidationError{Cell: -1,
			Msg: fmt.Sprintf("box divisions %dx%dx%d, want all >= 1", nx, ny, nz)}
	}

	var (
		NN    = (nx + 1) * (ny + 1) * (nz + 1)
		NC    = nx * ny * nz
		nodes = make([][]float64, 0, NN)
		cells = make([][]int, 0, NC)
	)
	hx := (box[1] - box[0]) / float64(nx)
	hy := (box[3] - box[2]) / float64(ny)
	hz := (box[5] - box[4]) / float64(nz)

	// Node index (i,j,k) -> i*(ny+1)*(nz+1) + j*(nz+1) + k
	for i := 0; i <= nx; i++ {
		for j := 0; j <= ny; j++ {
			for k := 0; k <= nz; k++ {
				nodes = append(nodes, []float64{
					box[0] + float64(i)*hx,
					box[2] + float64(j)*hy,
					box[4] + float64(k)*hz,
				})
			}
		}
	}

	nyz := (ny + 1) * (nz + 1)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				v0 := i*nyz + j*(nz+1) + k
				v1 := v0 + nyz
				v2 := v1 + nz + 1
				v3 := v0 + nz + 1
				cells = append(cells, []int{
					v0, v1, v2, v3,
					v0 + 1, v1 + 1, v2 + 1, v3 + 1,
				})
			}
		}
	}

	if drop != nil {
		kept := cells[:0]
		for _, cell := range cells {
			var bx, by, bz float64
			for _, n := range cell {
				bx += nodes[n][0]
				by += nodes[n][1]
				bz += nodes[n][2]
			}
			f := float64(len(cell))
			if !drop(bx/f, by/f, bz/f) {
				kept = append(kept, cell)
			}
		}
		cells = kept
		if len(cells) == 0 {
			return nil, &ValidationError{Cell: -1, Msg: "cell filter removed every cell"}
		}
		nodes, cells = compactNodes(nodes, cells)
	}

	return NewMesh(nodes, cells)
}

// compactNodes renumbers nodes so only referenced ones remain, keeping
// the original ascending order.
func compactNodes(nodes [][]float64, cells [][]int) ([][]float64, [][]int) {
	used := make([]bool, len(nodes))
	for _, cell := range cells {
		for _, n := range cell {
			used[n] = true
		}
	}
	remap := make([]int, len(nodes))
	var kept [][]float64
	for n, u := range used {
		remap[n] = -1
		if u {
			remap[n] = len(kept)
			kept = append(kept, nodes[n])
		}
	}
	out := make([][]int, len(cells))
	for c, cell := range cells {
		out[c] = make([]int, len(cell))
		for i, n := range cell {
			out[c][i] = remap[n]
		}
	}
	return kept, out
}
