package ledger

import "math"

// Round2 rounds to two decimal places, the precision every monetary column uses.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// RecomputeTotals re-derives the header totals from the given (non-deleted)
// line items. It always re-sums from scratch rather than applying incremental
// deltas, so repeated edits cannot drift the stored totals.
func (l *Ledger) RecomputeTotals(items []LineItem) {
	var subTotal float64
	for _, it := range items {
		subTotal += it.Amount
	}
	l.SubTotalAmount = Round2(subTotal)
	l.Amount = Round2(l.SubTotalAmount + l.AdjustmentAmount - l.DiscountAmount)
}

// ComputeAmount derives a line item's amount from its hours and rates.
func (li *LineItem) ComputeAmount() {
	li.Amount = Round2(li.Hours*li.Rate + li.OTHours*li.OTRate)
}
