package model

import "github.com/google/uuid"

// Catalog is the fixed set of standard module lengths in mm, sorted
// descending. The greedy decomposer depends on this ordering.
var Catalog = []int{1000, 500, 250}

// IsCatalogLength reports whether the given length is a standard module size.
func IsCatalogLength(length int) bool {
	for _, s := range Catalog {
		if s == length {
			return true
		}
	}
	return false
}

// Frame represents the target frame dimensions in mm.
// Depth is carried for labeling and presets only; it is never decomposed.
type Frame struct {
	Width  int `json:"width"`  // mm
	Height int `json:"height"` // mm
	Depth  int `json:"depth"`  // mm, metadata only
}

func NewFrame(width, height, depth int) Frame {
	return Frame{Width: width, Height: height, Depth: depth}
}

// Validate checks that the decomposable dimensions are positive.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return ErrInvalidDimension
	}
	return nil
}

// Perimeter returns the total linear module length needed in mm.
func (f Frame) Perimeter() int {
	return 2*f.Width + 2*f.Height
}

// Area returns the frame face area in square mm.
func (f Frame) Area() int {
	return f.Width * f.Height
}

// SegmentCount is one entry of a decomposition summary: a module length and
// how many pieces of it are needed. Custom marks a non-catalog remainder
// piece that has to be cut to size.
type SegmentCount struct {
	Length int  `json:"length"` // mm
	Count  int  `json:"count"`
	Custom bool `json:"custom,omitempty"`
}

// TotalLength returns length * count in mm.
func (sc SegmentCount) TotalLength() int {
	return sc.Length * sc.Count
}

// SegmentStatus is the inventory outcome for one physical piece.
type SegmentStatus string

const (
	StatusOwned   SegmentStatus = "owned"
	StatusMissing SegmentStatus = "missing"
)

// AssignedSegment is one physical piece at a specific position along an
// edge, with its inventory status. The ID is used for piece labels.
type AssignedSegment struct {
	ID     string        `json:"id"`
	Length int           `json:"length"` // mm
	Status SegmentStatus `json:"status"`
	Custom bool          `json:"custom,omitempty"`
}

func newAssignedSegment(length int, status SegmentStatus) AssignedSegment {
	return AssignedSegment{
		ID:     uuid.New().String()[:8],
		Length: length,
		Status: status,
		Custom: !IsCatalogLength(length),
	}
}

// Edge identifies one of the four frame edges.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// EdgeOrder is the fixed order in which edges consume inventory during
// assignment. The order is load-bearing: a later edge can starve even when
// an earlier identical edge was fully covered.
var EdgeOrder = []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

// EdgeLayout holds the per-position assignment outcome for one edge.
type EdgeLayout struct {
	Edge     Edge              `json:"edge"`
	Segments []AssignedSegment `json:"segments"`
}

// OwnedCount returns how many pieces on this edge are covered by inventory.
func (el EdgeLayout) OwnedCount() int {
	n := 0
	for _, s := range el.Segments {
		if s.Status == StatusOwned {
			n++
		}
	}
	return n
}

// MissingCount returns how many pieces on this edge are not in inventory.
func (el EdgeLayout) MissingCount() int {
	return len(el.Segments) - el.OwnedCount()
}

// TotalLength returns the summed piece length of this edge in mm.
func (el EdgeLayout) TotalLength() int {
	total := 0
	for _, s := range el.Segments {
		total += s.Length
	}
	return total
}

// FramePlan is the full planning result for one frame: the requirement,
// the four assigned edges, and the holistic feasibility verdict. It is the
// unit consumed by the export and persistence layers.
type FramePlan struct {
	Frame       Frame        `json:"frame"`
	Requirement Requirement  `json:"requirement"`
	Edges       []EdgeLayout `json:"edges"`
	Buildable   bool         `json:"buildable"`
}

// EdgeLayout returns the layout for the given edge, or nil if absent.
func (p *FramePlan) EdgeLayout(e Edge) *EdgeLayout {
	for i := range p.Edges {
		if p.Edges[i].Edge == e {
			return &p.Edges[i]
		}
	}
	return nil
}

// MissingPieces returns the total number of missing pieces across all edges.
// Note this is the greedy per-edge view; it can disagree with Buildable,
// which compares aggregate demand against inventory.
func (p *FramePlan) MissingPieces() int {
	n := 0
	for _, el := range p.Edges {
		n += el.MissingCount()
	}
	return n
}

// TotalPieces returns the number of physical pieces across all edges.
func (p *FramePlan) TotalPieces() int {
	n := 0
	for _, el := range p.Edges {
		n += len(el.Segments)
	}
	return n
}
