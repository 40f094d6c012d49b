package model

import "errors"

// ErrInvalidDimension is returned when a length to decompose is not positive.
var ErrInvalidDimension = errors.New("dimension must be a positive number of mm")

// Decompose breaks a dimension into standard module lengths using greedy
// largest-first covering over the Catalog. If a remainder is left after the
// full catalog has been applied, it is appended as a single custom piece, so
// the returned entries always sum exactly to length.
//
// The greedy strategy is piece-count minimal for the {1000, 500, 250}
// catalog because each size divides the next larger one evenly; it is not a
// general optimal coin-change solver.
func Decompose(length int) ([]SegmentCount, error) {
	if length <= 0 {
		return nil, ErrInvalidDimension
	}

	var segments []SegmentCount
	remaining := length
	for _, size := range Catalog {
		count := remaining / size
		if count > 0 {
			segments = append(segments, SegmentCount{Length: size, Count: count})
			remaining -= count * size
		}
	}

	if remaining > 0 {
		segments = append(segments, SegmentCount{Length: remaining, Count: 1, Custom: true})
	}

	return segments, nil
}

// DecomposeList is Decompose materialized as a flat ordered list with one
// entry per physical piece, preserving largest-first order. The matcher
// needs this per-position form.
func DecomposeList(length int) ([]int, error) {
	segments, err := Decompose(length)
	if err != nil {
		return nil, err
	}

	var list []int
	for _, sc := range segments {
		for i := 0; i < sc.Count; i++ {
			list = append(list, sc.Length)
		}
	}
	return list, nil
}
