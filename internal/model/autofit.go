package model

// Fallback dimensions returned when no grid candidate is feasible. The
// fallback is deliberately not validated against inventory; callers must
// not assume it is buildable.
const (
	FallbackWidth  = 1000
	FallbackHeight = 1000
)

// FitBounds describes the candidate grid for the auto-fit search, in mm.
type FitBounds struct {
	MinWidth  int `json:"min_width"`
	MaxWidth  int `json:"max_width"`
	MinHeight int `json:"min_height"`
	MaxHeight int `json:"max_height"`
	Step      int `json:"step"`
}

// DefaultFitBounds returns the standard search grid: width 1000..6000,
// height 1000..4000, stepped by 250 (21 x 13 = 273 candidates).
func DefaultFitBounds() FitBounds {
	return FitBounds{
		MinWidth:  1000,
		MaxWidth:  6000,
		MinHeight: 1000,
		MaxHeight: 4000,
		Step:      250,
	}
}

// Valid reports whether the bounds describe a non-empty ascending grid.
func (b FitBounds) Valid() bool {
	return b.Step > 0 &&
		b.MinWidth > 0 && b.MinWidth <= b.MaxWidth &&
		b.MinHeight > 0 && b.MinHeight <= b.MaxHeight
}

// AutoFit scans the candidate grid for the largest-area frame the
// inventory can build. Width is the outer loop and height the inner, both
// ascending; the comparison is strict, so the first candidate of a given
// area wins ties (lowest width, then lowest height). Each candidate is
// checked against the same original inventory; nothing is consumed. When
// no candidate is feasible, the fixed fallback (1000, 1000) is returned.
func AutoFit(inv Inventory, bounds FitBounds) (int, int) {
	if !bounds.Valid() {
		bounds = DefaultFitBounds()
	}

	bestWidth, bestHeight := FallbackWidth, FallbackHeight
	bestArea := 0

	for width := bounds.MinWidth; width <= bounds.MaxWidth; width += bounds.Step {
		for height := bounds.MinHeight; height <= bounds.MaxHeight; height += bounds.Step {
			req, err := Aggregate(width, height)
			if err != nil {
				continue
			}
			if !IsBuildable(req.Table, inv) {
				continue
			}
			if area := width * height; area > bestArea {
				bestArea = area
				bestWidth, bestHeight = width, height
			}
		}
	}

	return bestWidth, bestHeight
}
