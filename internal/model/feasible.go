package model

// IsBuildable reports whether the inventory covers every entry of the
// requirement table. Missing inventory keys count as 0. The check is
// holistic across all four edges combined, so it can return true while
// the greedy per-edge assignment flags pieces missing, and vice versa.
func IsBuildable(required RequirementTable, inv Inventory) bool {
	for length, count := range required {
		if inv.Count(length) < count {
			return false
		}
	}
	return true
}

// Shortfall returns the per-length counts the inventory is short of, as a
// table containing only lengths with a positive deficit. An empty table
// means the requirement is buildable.
func Shortfall(required RequirementTable, inv Inventory) RequirementTable {
	missing := RequirementTable{}
	for length, count := range required {
		if deficit := count - inv.Count(length); deficit > 0 {
			missing[length] = deficit
		}
	}
	return missing
}
