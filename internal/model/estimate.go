package model

import "math"

// PurchaseEstimate holds the results of a shortfall purchasing calculation.
type PurchaseEstimate struct {
	MissingPieces   int     `json:"missing_pieces"`    // Total pieces to buy
	MissingLengthMM int     `json:"missing_length_mm"` // Total linear length to buy (mm)
	MissingLengthM  float64 `json:"missing_length_m"`  // Total linear length to buy (m)
	EstimatedCost   float64 `json:"estimated_cost"`    // Total cost if pricing available
	PricedPieces    int     `json:"priced_pieces"`     // Pieces that had a price entry
	UnpricedPieces  int     `json:"unpriced_pieces"`   // Pieces without a price entry
}

// CalculatePurchaseEstimate computes what it would cost to cover a
// shortfall table. Prices map module length to unit price; lengths without
// a price entry are counted but contribute no cost. Custom-cut lengths are
// priced per mm against the smallest catalog module when absent from the
// price list, rounded up to whole currency units.
func CalculatePurchaseEstimate(shortfall RequirementTable, prices map[int]float64) PurchaseEstimate {
	est := PurchaseEstimate{}

	smallest := Catalog[len(Catalog)-1]
	perMM := 0.0
	if p, ok := prices[smallest]; ok && smallest > 0 {
		perMM = p / float64(smallest)
	}

	for _, length := range shortfall.Lengths() {
		count := shortfall[length]
		est.MissingPieces += count
		est.MissingLengthMM += length * count

		if price, ok := prices[length]; ok {
			est.EstimatedCost += price * float64(count)
			est.PricedPieces += count
		} else if !IsCatalogLength(length) && perMM > 0 {
			est.EstimatedCost += math.Ceil(perMM * float64(length) * float64(count))
			est.PricedPieces += count
		} else {
			est.UnpricedPieces += count
		}
	}

	est.MissingLengthM = float64(est.MissingLengthMM) / 1000.0
	return est
}
