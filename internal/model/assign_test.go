package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignConsumesInOrder(t *testing.T) {
	inv := Inventory{1000: 2, 500: 0}
	segments := Assign([]int{1000, 1000, 1000, 500}, inv)

	require.Len(t, segments, 4)
	wantStatus := []SegmentStatus{StatusOwned, StatusOwned, StatusMissing, StatusMissing}
	for i, want := range wantStatus {
		assert.Equal(t, want, segments[i].Status, "segment %d", i)
	}
}

func TestAssignDoesNotMutateCaller(t *testing.T) {
	inv := Inventory{1000: 3, 500: 1}
	Assign([]int{1000, 1000, 500}, inv)

	assert.Equal(t, 3, inv[1000])
	assert.Equal(t, 1, inv[500])
}

func TestAssignNoCrossSizeSubstitution(t *testing.T) {
	// A 500 in stock must not cover a 250 position.
	inv := Inventory{500: 1}
	segments := Assign([]int{250}, inv)
	assert.Equal(t, StatusMissing, segments[0].Status, "250 piece must be missing even though a 500 is in stock")
}

func TestAssignMarksCustomPieces(t *testing.T) {
	segments := Assign([]int{1000, 100}, Inventory{1000: 1})
	assert.False(t, segments[0].Custom, "1000 is a catalog length")
	assert.True(t, segments[1].Custom, "100 is not a catalog length")
}

func TestAssignFrameEdgeOrder(t *testing.T) {
	plan, err := AssignFrame(3000, 2500, Inventory{})
	require.NoError(t, err)
	require.Len(t, plan.Edges, 4)

	wantOrder := []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	for i, want := range wantOrder {
		assert.Equal(t, want, plan.Edges[i].Edge, "edge %d", i)
	}
}

func TestAssignFrameSecondEdgeStarves(t *testing.T) {
	// Exactly enough 1000s for the top beam: the bottom beam gets nothing.
	plan, err := AssignFrame(3000, 2500, Inventory{1000: 3})
	require.NoError(t, err)

	assert.Equal(t, 0, plan.EdgeLayout(EdgeTop).MissingCount(), "top edge should be fully owned")
	assert.Equal(t, 0, plan.EdgeLayout(EdgeBottom).OwnedCount(), "bottom edge should be starved")
}

func TestAssignFrameSharedWorkingCopyAcrossAxes(t *testing.T) {
	// 2500 decomposes to [1000, 1000, 500]. With 1000x7 the left column
	// takes two of the three remaining after top+bottom and the right
	// column only one.
	plan, err := AssignFrame(2000, 2500, Inventory{1000: 7})
	require.NoError(t, err)

	assert.Equal(t, 2, plan.EdgeLayout(EdgeLeft).OwnedCount(), "left column")
	assert.Equal(t, 1, plan.EdgeLayout(EdgeRight).OwnedCount(), "right column")
}

func TestAssignFrameEdgeLengthsMatchDimensions(t *testing.T) {
	plan, err := AssignFrame(3250, 1750, Inventory{})
	require.NoError(t, err)

	for _, e := range []Edge{EdgeTop, EdgeBottom} {
		assert.Equal(t, 3250, plan.EdgeLayout(e).TotalLength(), "%s edge", e)
	}
	for _, e := range []Edge{EdgeLeft, EdgeRight} {
		assert.Equal(t, 1750, plan.EdgeLayout(e).TotalLength(), "%s edge", e)
	}
}

func TestAssignFrameInvalidDimension(t *testing.T) {
	_, err := AssignFrame(0, 1000, Inventory{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestAssignDeterministicStatuses(t *testing.T) {
	inv := Inventory{1000: 2, 500: 1}
	seq := []int{1000, 1000, 1000, 500, 250}

	first := Assign(seq, inv)
	for i := 0; i < 5; i++ {
		again := Assign(seq, inv)
		for j := range first {
			require.Equal(t, first[j].Status, again[j].Status, "repeated assignment diverged")
			require.Equal(t, first[j].Length, again[j].Length, "repeated assignment diverged")
		}
	}
}

func TestAssignOwnedBoundedByStock(t *testing.T) {
	inv := Inventory{1000: 2}
	segments := Assign([]int{1000, 1000, 1000, 1000}, inv)

	owned := 0
	for _, s := range segments {
		if s.Status == StatusOwned {
			owned++
		}
	}
	assert.LessOrEqual(t, owned, inv.TotalPieces())
}
