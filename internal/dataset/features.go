package dataset

import (
	"math"
)

// Rolling window sizes for the derived indicators. The warm-up is
// driven by the largest window: rows without 14 days of history (or a
// 7-day lag) are excluded from the feature table.
const (
	shortWindow = 7
	longWindow  = 14
)

// WarmupRows is the number of leading candles consumed before the
// first complete feature row can be produced.
const WarmupRows = longWindow - 1

// BuildFeatures derives the full indicator set from daily candles.
// Candles must be sorted ascending by date with no duplicate days.
// The result starts at the first day with complete history and is
// empty when the input is shorter than the warm-up window.
func BuildFeatures(candles []Candle) []FeatureRow {
	if len(candles) <= WarmupRows {
		return nil
	}

	rows := make([]FeatureRow, 0, len(candles)-WarmupRows)
	for i := WarmupRows; i < len(candles); i++ {
		c := candles[i]
		prev := candles[i-1].Close

		row := FeatureRow{
			Date:        c.Date,
			Close:       c.Close,
			Volume:      c.Volume,
			MA7:         rollingMean(candles, i, shortWindow),
			Volatility7: rollingStd(candles, i, shortWindow),
			DailyReturn: pctChange(prev, c.Close),
			CloseLag1:   candles[i-1].Close,
			CloseLag2:   candles[i-2].Close,
			CloseLag3:   candles[i-3].Close,
			CloseLag7:   candles[i-7].Close,
			Mean14:      rollingMean(candles, i, longWindow),
			Std14:       rollingStd(candles, i, longWindow),
			DayOfWeek:   float64(c.Date.Weekday()),
		}
		row.Min7, row.Max7 = rollingMinMax(candles, i, shortWindow)
		row.Min14, row.Max14 = rollingMinMax(candles, i, longWindow)
		if c.Close > prev {
			row.PriceUp = 1
		}
		rows = append(rows, row)
	}
	return rows
}

// NextDayTargets builds the label vector for next-day close prediction:
// the row at day t is labeled with the close at t+1, so the last row is
// unlabeled and excluded. Returns the trimmed feature matrix alongside.
func NextDayTargets(rows []FeatureRow) ([][]float64, []float64) {
	if len(rows) < 2 {
		return nil, nil
	}
	x := make([][]float64, len(rows)-1)
	y := make([]float64, len(rows)-1)
	for i := 0; i < len(rows)-1; i++ {
		x[i] = rows[i].Vector()
		y[i] = rows[i+1].Close
	}
	return x, y
}

func pctChange(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

// rollingMean averages the closes of the window ending at index i.
func rollingMean(candles []Candle, i, window int) float64 {
	sum := 0.0
	for j := i - window + 1; j <= i; j++ {
		sum += candles[j].Close
	}
	return sum / float64(window)
}

// rollingStd is the sample standard deviation of the closes in the
// window ending at index i (pandas-style n-1 denominator).
func rollingStd(candles []Candle, i, window int) float64 {
	mean := rollingMean(candles, i, window)
	sum := 0.0
	for j := i - window + 1; j <= i; j++ {
		d := candles[j].Close - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(window-1))
}

func rollingMinMax(candles []Candle, i, window int) (float64, float64) {
	lo := candles[i-window+1].Close
	hi := lo
	for j := i - window + 2; j <= i; j++ {
		c := candles[j].Close
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return lo, hi
}
