package model

import "sort"

// Inventory maps a module length in mm to the owned piece count. The
// planning functions never mutate a caller's inventory; they operate on
// working copies taken via Clone.
type Inventory map[int]int

// NewInventory returns an empty inventory.
func NewInventory() Inventory {
	return Inventory{}
}

// DefaultInventory returns an inventory with a zero entry for every
// catalog length, so persisted files list all standard sizes.
func DefaultInventory() Inventory {
	inv := Inventory{}
	for _, s := range Catalog {
		inv[s] = 0
	}
	return inv
}

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	cp := make(Inventory, len(inv))
	for l, c := range inv {
		cp[l] = c
	}
	return cp
}

// Count returns the owned count for a length; missing keys count as 0.
func (inv Inventory) Count(length int) int {
	return inv[length]
}

// Set stores a count for a length. Negative counts are clamped to 0: the
// engine never accepts negative stock.
func (inv Inventory) Set(length, count int) {
	if count < 0 {
		count = 0
	}
	inv[length] = count
}

// Add increases the count for a length, clamping the result at 0.
func (inv Inventory) Add(length, count int) {
	inv.Set(length, inv[length]+count)
}

// Normalize clamps any negative counts to 0 in place and returns the
// number of entries that were clamped. Counts loaded from external files
// pass through here before use.
func (inv Inventory) Normalize() int {
	clamped := 0
	for l, c := range inv {
		if c < 0 {
			inv[l] = 0
			clamped++
		}
	}
	return clamped
}

// TotalPieces returns the total number of owned pieces.
func (inv Inventory) TotalPieces() int {
	total := 0
	for _, c := range inv {
		total += c
	}
	return total
}

// TotalLength returns the total owned linear length in mm.
func (inv Inventory) TotalLength() int {
	total := 0
	for l, c := range inv {
		total += l * c
	}
	return total
}

// Lengths returns the inventory keys sorted descending by length.
func (inv Inventory) Lengths() []int {
	lengths := make([]int, 0, len(inv))
	for l := range inv {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	return lengths
}
