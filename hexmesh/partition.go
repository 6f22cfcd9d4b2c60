package hexmesh

import (
	"fmt"
	"log"

	metis "github.com/notargets/go-metis"
)

// PartitionConfig holds configuration for cell-graph partitioning.
type PartitionConfig struct {
	NumPartitions   int32
	ImbalanceFactor float32 // e.g. 1.05 for 5% imbalance
	Objective       string  // "cut" or "vol"
}

// DefaultPartitionConfig returns the default partitioning configuration.
func DefaultPartitionConfig(nparts int32) *PartitionConfig {
	return &PartitionConfig{
		NumPartitions:   nparts,
		ImbalanceFactor: 1.05,
		Objective:       "vol",
	}
}

// Partition splits the face-adjacency cell graph into parts with METIS
// and stores the assignment in EToP. This is mesh preprocessing only;
// nothing in the engine consumes the partitioning.
func (m *Mesh) Partition(cfg *PartitionConfig) ([]int, error) {
	NC := m.NumberOfCells()
	if cfg == nil {
		return nil, &ConfigError{Msg: "nil partition config"}
	}
	if cfg.NumPartitions < 1 {
		return nil, &ConfigError{
			Msg: fmt.Sprintf("partition count %d, want >= 1", cfg.NumPartitions)}
	}
	if cfg.NumPartitions == 1 {
		m.EToP = make([]int, NC)
		return append([]int(nil), m.EToP...), nil
	}

	log.Printf("Partitioning mesh with %d cells into %d parts",
		NC, cfg.NumPartitions)

	xadj, adjncy := m.buildMetisGraph()

	opts := make([]int32, metis.NoOptions)
	if err := metis.SetDefaultOptions(opts); err != nil {
		return nil, fmt.Errorf("failed to set METIS options: %w", err)
	}
	if cfg.Objective == "vol" {
		opts[metis.OptionObjType] = metis.ObjTypeVol
	} else {
		opts[metis.OptionObjType] = metis.ObjTypeCut
	}
	ubvec := []float32{cfg.ImbalanceFactor}

	// Cells are uniform hexahedra, so vertex and edge weights stay nil.
	part, objval, err := metis.PartGraphKwayWeighted(
		xadj, adjncy, nil, nil,
		cfg.NumPartitions, nil, ubvec, opts,
	)
	if err != nil {
		return nil, fmt.Errorf("METIS partitioning failed: %w", err)
	}

	m.EToP = make([]int, NC)
	for i := 0; i < NC; i++ {
		m.EToP[i] = int(part[i])
	}
	log.Printf("Partition objective value: %d", objval)

	return append([]int(nil), m.EToP...), nil
}

// buildMetisGraph converts the cell adjacency to METIS CSR format.
func (m *Mesh) buildMetisGraph() (xadj, adjncy []int32) {
	NC := m.NumberOfCells()
	xadj = make([]int32, NC+1)
	adjncy = []int32{}
	for c := 0; c < NC; c++ {
		for _, neighbor := range m.cellToCell[c] {
			if neighbor >= 0 {
				adjncy = append(adjncy, int32(neighbor))
			}
		}
		xadj[c+1] = int32(len(adjncy))
	}
	return
}
