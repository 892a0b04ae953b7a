package simulation

import "sort"

// ModelProfit summarizes one model's simulated run for comparison.
type ModelProfit struct {
	Name       string
	Trajectory Trajectory
}

// Comparison ranks simulated strategies against each other and the
// buy-and-hold baseline.
type Comparison struct {
	Ranked          []ModelProfit // best profit first
	Best            string
	ProfitSpread    float64 // best minus worst profit
	BuyHoldProfit   float64
	BeatsBuyAndHold bool
}

// Compare ranks the given model runs by final profit. The buy-and-hold
// profit is computed from the same close series the simulations saw.
func Compare(runs []ModelProfit, closes []float64, initialCapital float64) Comparison {
	ranked := append([]ModelProfit(nil), runs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Trajectory.Profit > ranked[j].Trajectory.Profit
	})

	cmp := Comparison{Ranked: ranked}
	if len(ranked) > 0 {
		cmp.Best = ranked[0].Name
		cmp.ProfitSpread = ranked[0].Trajectory.Profit - ranked[len(ranked)-1].Trajectory.Profit
	}
	_, cmp.BuyHoldProfit = BuyAndHold(closes, initialCapital)
	if len(ranked) > 0 {
		cmp.BeatsBuyAndHold = ranked[0].Trajectory.Profit > cmp.BuyHoldProfit
	}
	return cmp
}
