package hexmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMetisGraph(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 2, 1, 1, nil)
	require.NoError(t, err)

	xadj, adjncy := m.buildMetisGraph()
	assert.Equal(t, []int32{0, 1, 2}, xadj)
	assert.Equal(t, []int32{1, 0}, adjncy)
}

func TestBuildMetisGraph_Symmetric(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 2, 2, 2, nil)
	require.NoError(t, err)

	xadj, adjncy := m.buildMetisGraph()
	require.Len(t, xadj, m.NumberOfCells()+1)

	// Every adjacency entry appears in both directions.
	edges := map[[2]int32]bool{}
	for c := 0; c < m.NumberOfCells(); c++ {
		for i := xadj[c]; i < xadj[c+1]; i++ {
			edges[[2]int32{int32(c), adjncy[i]}] = true
		}
	}
	for e := range edges {
		assert.True(t, edges[[2]int32{e[1], e[0]}], "missing reverse of %v", e)
	}
	// Interior face count x2 directed entries.
	interior := m.NumberOfFaces() - m.NumberOfBoundaryFaces()
	assert.Len(t, adjncy, 2*interior)
}

func TestPartition_Trivial(t *testing.T) {
	m, err := NewFromBox([6]float64{0, 1, 0, 1, 0, 1}, 2, 2, 1, nil)
	require.NoError(t, err)

	part, err := m.Partition(DefaultPartitionConfig(1))
	require.NoError(t, err)
	require.Len(t, part, m.NumberOfCells())
	for _, p := range part {
		assert.Equal(t, 0, p)
	}
	assert.NotNil(t, m.EToP)
}

func TestPartition_BadConfig(t *testing.T) {
	m, err := NewFromSingleHexahedron()
	require.NoError(t, err)

	var cerr *ConfigError
	_, err = m.Partition(nil)
	assert.ErrorAs(t, err, &cerr)
	_, err = m.Partition(DefaultPartitionConfig(0))
	assert.ErrorAs(t, err, &cerr)
}
