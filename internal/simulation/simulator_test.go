package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSeries(closes []float64, predicted []float64) []PredictionPoint {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	series := make([]PredictionPoint, len(closes))
	for i := range closes {
		series[i] = PredictionPoint{
			Date:          start.AddDate(0, 0, i),
			ActualClose:   closes[i],
			PredictedNext: predicted[i],
		}
	}
	return series
}

// TestSimulate_AllHoldStaysFlat tests that pessimistic predictions
// never trade
func TestSimulate_AllHoldStaysFlat(t *testing.T) {
	closes := []float64{100, 120, 90, 130, 80}
	predicted := make([]float64, len(closes))
	for i, c := range closes {
		predicted[i] = c * 0.9 // always predicts a drop
	}

	traj := Simulate(makeSeries(closes, predicted), 1000)

	require.Len(t, traj.Points, len(closes))
	for _, p := range traj.Points {
		assert.Equal(t, 1000.0, p.Capital)
	}
	assert.Equal(t, 1000.0, traj.FinalCapital)
	assert.Zero(t, traj.Profit)
	assert.Zero(t, traj.DaysInvested)
	assert.Equal(t, len(closes)-1, traj.DaysHeld)
}

// TestSimulate_CompoundingOnRisingPrices tests full reinvestment math
func TestSimulate_CompoundingOnRisingPrices(t *testing.T) {
	closes := []float64{100, 200, 400}
	predicted := []float64{150, 300, 600} // always predicts a rise

	traj := Simulate(makeSeries(closes, predicted), 1000)

	require.Len(t, traj.Points, 3)
	assert.Equal(t, 1000.0, traj.Points[0].Capital)
	assert.InDelta(t, 2000.0, traj.Points[1].Capital, 1e-9)
	assert.InDelta(t, 4000.0, traj.Points[2].Capital, 1e-9)
	assert.InDelta(t, 3000.0, traj.Profit, 1e-9)
	assert.InDelta(t, 300.0, traj.ProfitPct, 1e-9)
	assert.Equal(t, 2, traj.DaysInvested)
}

// TestSimulate_MixedDecisions tests hold days carrying capital flat
func TestSimulate_MixedDecisions(t *testing.T) {
	closes := []float64{100, 110, 100, 105}
	// Day 0: predicts rise (invests, +10%). Day 1: predicts fall
	// (holds through the drop). Day 2: predicts rise (invests, +5%).
	predicted := []float64{105, 100, 102, 0}

	traj := Simulate(makeSeries(closes, predicted), 1000)

	require.Len(t, traj.Points, 4)
	assert.InDelta(t, 1100.0, traj.Points[1].Capital, 1e-9)
	assert.InDelta(t, 1100.0, traj.Points[2].Capital, 1e-9)
	assert.InDelta(t, 1155.0, traj.Points[3].Capital, 1e-9)
	assert.Equal(t, 2, traj.DaysInvested)
	assert.Equal(t, 1, traj.DaysHeld)
}

// TestSimulate_Deterministic tests identical trajectories for identical
// inputs
func TestSimulate_Deterministic(t *testing.T) {
	closes := []float64{100, 103, 99, 108, 104, 111}
	predicted := []float64{104, 101, 104, 102, 115, 100}
	series := makeSeries(closes, predicted)

	first := Simulate(series, 1000)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Simulate(series, 1000))
	}
}

// TestSimulate_CapitalStaysPositive tests the no-leverage guarantee
// through a crash
func TestSimulate_CapitalStaysPositive(t *testing.T) {
	closes := []float64{100, 10, 1, 0.1, 0.01}
	predicted := []float64{200, 20, 2, 0.2, 0.02} // always wrong

	traj := Simulate(makeSeries(closes, predicted), 1000)
	for _, p := range traj.Points {
		assert.Greater(t, p.Capital, 0.0)
	}
}

// TestSimulate_ShortSeries tests the fewer-than-two-days edge case
func TestSimulate_ShortSeries(t *testing.T) {
	traj := Simulate(nil, 500)
	require.Len(t, traj.Points, 1)
	assert.Equal(t, 500.0, traj.Points[0].Capital)

	single := makeSeries([]float64{100}, []float64{120})
	traj = Simulate(single, 500)
	require.Len(t, traj.Points, 1)
	assert.Equal(t, 500.0, traj.FinalCapital)
	assert.Zero(t, traj.DaysInvested)
}

// TestBuyAndHold tests the baseline strategy
func TestBuyAndHold(t *testing.T) {
	finalValue, profit := BuyAndHold([]float64{100, 120, 150}, 1000)
	assert.InDelta(t, 1500.0, finalValue, 1e-9)
	assert.InDelta(t, 500.0, profit, 1e-9)

	finalValue, profit = BuyAndHold(nil, 1000)
	assert.Equal(t, 1000.0, finalValue)
	assert.Zero(t, profit)
}

// TestCompare_RanksByProfit tests the model comparison ordering
func TestCompare_RanksByProfit(t *testing.T) {
	runs := []ModelProfit{
		{Name: "linear", Trajectory: Trajectory{Profit: 50}},
		{Name: "mlp", Trajectory: Trajectory{Profit: 200}},
		{Name: "poly", Trajectory: Trajectory{Profit: -30}},
	}

	cmp := Compare(runs, []float64{100, 110}, 1000)

	assert.Equal(t, "mlp", cmp.Best)
	assert.Equal(t, []string{"mlp", "linear", "poly"}, []string{
		cmp.Ranked[0].Name, cmp.Ranked[1].Name, cmp.Ranked[2].Name,
	})
	assert.InDelta(t, 230.0, cmp.ProfitSpread, 1e-9)
	assert.InDelta(t, 100.0, cmp.BuyHoldProfit, 1e-9)
	assert.True(t, cmp.BeatsBuyAndHold)
}
