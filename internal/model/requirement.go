package model

import "sort"

// Joint topology constants for the rectangular frame.
const (
	// CornerConnections is 4 corners with 2 connections each.
	CornerConnections = 8
	// BasePlateConnections is 2 base plates with 1 connection each.
	BasePlateConnections = 2
	// ConnectionJoints is the fixed structural joint count of the frame
	// topology, independent of how the edges decompose.
	ConnectionJoints = CornerConnections + BasePlateConnections
)

// Hardware multipliers per joint.
const (
	CouplersPerJoint = 4
	PinsPerJoint     = 8
	ClipsPerJoint    = 8
)

// RequirementTable maps a module length in mm to a required piece count.
// Iteration order over the map is unspecified; use Lengths for the
// canonical descending order.
type RequirementTable map[int]int

// Lengths returns the table keys sorted descending by length.
func (rt RequirementTable) Lengths() []int {
	lengths := make([]int, 0, len(rt))
	for l := range rt {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	return lengths
}

// TotalPieces returns the summed piece count across all lengths.
func (rt RequirementTable) TotalPieces() int {
	total := 0
	for _, c := range rt {
		total += c
	}
	return total
}

// WeightedSum returns the total linear length in mm (length x count).
func (rt RequirementTable) WeightedSum() int {
	total := 0
	for l, c := range rt {
		total += l * c
	}
	return total
}

// JointTally holds the derived joint counts for a frame. It is always
// recomputed from segment counts, never stored.
type JointTally struct {
	Internal   int `json:"internal"`   // joints between consecutive pieces on an edge
	Connection int `json:"connection"` // fixed corner and base plate joints
	Total      int `json:"total"`
}

// HardwareTally holds the fastener counts derived from the joint tally.
type HardwareTally struct {
	Couplers int `json:"couplers"`
	Pins     int `json:"pins"`
	Clips    int `json:"clips"`
}

// Requirement bundles everything needed to build one frame: the piece
// table, the two per-axis decompositions, and the joint and hardware
// tallies.
type Requirement struct {
	Table     RequirementTable `json:"table"`
	HSegments []SegmentCount   `json:"h_segments"` // width decomposition, one edge
	VSegments []SegmentCount   `json:"v_segments"` // height decomposition, one edge
	Joints    JointTally       `json:"joints"`
	Hardware  HardwareTally    `json:"hardware"`
}

// Aggregate computes the total module requirement for a width x height
// frame. Each axis decomposition is counted twice: two horizontal beams and
// two vertical columns. Custom remainder pieces appear in the table under
// their exact cut length.
func Aggregate(width, height int) (Requirement, error) {
	hSegments, err := Decompose(width)
	if err != nil {
		return Requirement{}, err
	}
	vSegments, err := Decompose(height)
	if err != nil {
		return Requirement{}, err
	}

	table := RequirementTable{}
	totalH, totalV := 0, 0
	for _, sc := range hSegments {
		table[sc.Length] += sc.Count * 2
		totalH += sc.Count
	}
	for _, sc := range vSegments {
		table[sc.Length] += sc.Count * 2
		totalV += sc.Count
	}

	internal := max(0, totalH-1)*2 + max(0, totalV-1)*2
	joints := JointTally{
		Internal:   internal,
		Connection: ConnectionJoints,
		Total:      internal + ConnectionJoints,
	}

	hardware := HardwareTally{
		Couplers: joints.Total * CouplersPerJoint,
		Pins:     joints.Total * PinsPerJoint,
		Clips:    joints.Total * ClipsPerJoint,
	}

	return Requirement{
		Table:     table,
		HSegments: hSegments,
		VSegments: vSegments,
		Joints:    joints,
		Hardware:  hardware,
	}, nil
}
