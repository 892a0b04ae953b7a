package simulation

// BuyAndHold computes the profit of buying on the first day and selling
// on the last, as a baseline for model-driven strategies. Returns the
// final value and the profit; both equal the inputs when the series is
// empty.
func BuyAndHold(closes []float64, initialCapital float64) (finalValue, profit float64) {
	if len(closes) == 0 || closes[0] == 0 {
		return initialCapital, 0
	}
	coins := initialCapital / closes[0]
	finalValue = coins * closes[len(closes)-1]
	return finalValue, finalValue - initialCapital
}
