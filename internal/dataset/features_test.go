package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCandles(closes []float64) []Candle {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]Candle, len(closes))
	for i, c := range closes {
		candles[i] = Candle{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 100 + float64(i),
		}
	}
	return candles
}

// TestBuildFeatures_WarmupDropped tests that rows without complete
// window history are excluded rather than imputed
func TestBuildFeatures_WarmupDropped(t *testing.T) {
	candles := makeCandles(seq(1, 20))
	rows := BuildFeatures(candles)

	require.Len(t, rows, 20-WarmupRows)
	assert.Equal(t, candles[WarmupRows].Date, rows[0].Date)
}

// TestBuildFeatures_TooShort tests behavior when history is shorter
// than the warm-up window
func TestBuildFeatures_TooShort(t *testing.T) {
	assert.Empty(t, BuildFeatures(makeCandles(seq(1, 13))))
	assert.Empty(t, BuildFeatures(nil))
}

// TestBuildFeatures_MovingAverage tests the 7-day moving average value
func TestBuildFeatures_MovingAverage(t *testing.T) {
	// Closes 1..20: MA7 of the first feature row (index 13, close 14)
	// covers closes 8..14, mean 11.
	rows := BuildFeatures(makeCandles(seq(1, 20)))
	assert.InDelta(t, 11.0, rows[0].MA7, 1e-9)
}

// TestBuildFeatures_VolatilityZeroWhenFlat tests that constant prices
// have zero volatility
func TestBuildFeatures_VolatilityZeroWhenFlat(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 10
	}
	rows := BuildFeatures(makeCandles(closes))

	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Zero(t, r.Volatility7)
		assert.Zero(t, r.DailyReturn)
		assert.Zero(t, r.PriceUp)
	}
}

// TestBuildFeatures_DailyReturn tests percentage return on doubling prices
func TestBuildFeatures_DailyReturn(t *testing.T) {
	closes := make([]float64, 16)
	closes[0] = 1
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] * 2
	}
	rows := BuildFeatures(makeCandles(closes))

	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.InDelta(t, 100.0, r.DailyReturn, 1e-9)
		assert.Equal(t, 1.0, r.PriceUp)
	}
}

// TestBuildFeatures_Lags tests the lagged close features
func TestBuildFeatures_Lags(t *testing.T) {
	rows := BuildFeatures(makeCandles(seq(1, 20)))

	first := rows[0] // close 14
	assert.Equal(t, 14.0, first.Close)
	assert.Equal(t, 13.0, first.CloseLag1)
	assert.Equal(t, 12.0, first.CloseLag2)
	assert.Equal(t, 11.0, first.CloseLag3)
	assert.Equal(t, 7.0, first.CloseLag7)
	assert.Equal(t, 8.0, first.Min7)
	assert.Equal(t, 14.0, first.Max7)
	assert.Equal(t, 1.0, first.Min14)
	assert.Equal(t, 14.0, first.Max14)
}

// TestNextDayTargets tests the one-day label shift
func TestNextDayTargets(t *testing.T) {
	rows := BuildFeatures(makeCandles(seq(1, 20)))
	x, y := NextDayTargets(rows)

	require.Len(t, x, len(rows)-1)
	require.Len(t, y, len(rows)-1)
	for i := range y {
		assert.Equal(t, rows[i+1].Close, y[i])
		assert.Equal(t, rows[i].Vector(), x[i])
	}
}

// TestNextDayTargets_TooShort tests that a single row yields no labels
func TestNextDayTargets_TooShort(t *testing.T) {
	rows := BuildFeatures(makeCandles(seq(1, 14)))
	require.Len(t, rows, 1)

	x, y := NextDayTargets(rows)
	assert.Nil(t, x)
	assert.Nil(t, y)
}

// TestFeatureRow_Vector tests the fixed vector width
func TestFeatureRow_Vector(t *testing.T) {
	rows := BuildFeatures(makeCandles(seq(1, 20)))
	assert.Len(t, rows[0].Vector(), NumFeatures)
}

func seq(from, to int) []float64 {
	out := make([]float64, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, float64(v))
	}
	return out
}
