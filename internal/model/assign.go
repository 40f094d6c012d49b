package model

// Assign walks an ordered segment sequence and marks each piece owned or
// missing by consuming a private working copy of the inventory. Assignment
// is first-come-first-served in sequence order with no backtracking: a 250
// piece can come up missing even when a 500 is in stock, because
// substitution across sizes is not modeled. The caller's inventory is
// never mutated.
func Assign(sequence []int, inv Inventory) []AssignedSegment {
	working := inv.Clone()
	return assignConsuming(sequence, working)
}

// assignConsuming is Assign against a shared working copy that the caller
// threads across multiple edges.
func assignConsuming(sequence []int, working Inventory) []AssignedSegment {
	segments := make([]AssignedSegment, 0, len(sequence))
	for _, length := range sequence {
		if working[length] > 0 {
			working[length]--
			segments = append(segments, newAssignedSegment(length, StatusOwned))
		} else {
			segments = append(segments, newAssignedSegment(length, StatusMissing))
		}
	}
	return segments
}

// AssignFrame produces the full plan for a frame: it aggregates the
// requirement, then assigns all four edges against a single working copy
// of the inventory, consumed in EdgeOrder (top, bottom, left, right). Top
// and bottom share the width sequence, left and right the height sequence,
// so the second edge of a pair can starve even when the first was fully
// covered. Buildable is the holistic table-vs-inventory check and may
// disagree with the per-edge outcome in either direction.
func AssignFrame(width, height int, inv Inventory) (FramePlan, error) {
	req, err := Aggregate(width, height)
	if err != nil {
		return FramePlan{}, err
	}

	hList, err := DecomposeList(width)
	if err != nil {
		return FramePlan{}, err
	}
	vList, err := DecomposeList(height)
	if err != nil {
		return FramePlan{}, err
	}

	sequences := map[Edge][]int{
		EdgeTop:    hList,
		EdgeBottom: hList,
		EdgeLeft:   vList,
		EdgeRight:  vList,
	}

	working := inv.Clone()
	edges := make([]EdgeLayout, 0, len(EdgeOrder))
	for _, e := range EdgeOrder {
		edges = append(edges, EdgeLayout{
			Edge:     e,
			Segments: assignConsuming(sequences[e], working),
		})
	}

	return FramePlan{
		Frame:       Frame{Width: width, Height: height},
		Requirement: req,
		Edges:       edges,
		Buildable:   IsBuildable(req.Table, inv),
	}, nil
}
