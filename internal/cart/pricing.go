package cart

import "math"

// EffectivePrice returns the per-unit price actually charged for a line.
//
// The reference price is the MRP whenever it exceeds the listed price,
// otherwise the listed price; a positive discount percentage is then applied
// to that reference and the result rounded to the nearest unit. So with
// price=1000, mrp=1200, discount=10% the charge is 1080, not 900. This
// reference-then-discount precedence is the one contract for the whole
// codebase; the listed price alone is never discounted.
func EffectivePrice(l Line) float64 {
	reference := l.Price
	if l.MRP > l.Price {
		reference = l.MRP
	}
	if l.DiscountPct > 0 {
		return math.Round(reference * (1 - l.DiscountPct/100))
	}
	return reference
}
