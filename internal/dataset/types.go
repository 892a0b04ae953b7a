package dataset

import "time"

// Candle is one daily OHLCV record for a coin.
type Candle struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// FeatureRow holds one trading day with all derived indicators populated.
// Rows inside the warm-up window (not enough history for the 14-day
// indicators or the 7-day lag) are dropped during construction, never
// imputed.
type FeatureRow struct {
	Date        time.Time
	Close       float64
	Volume      float64
	MA7         float64
	Volatility7 float64
	DailyReturn float64 // percent change vs previous close
	PriceUp     float64 // 1 if close rose vs previous day, else 0

	CloseLag1 float64
	CloseLag2 float64
	CloseLag3 float64
	CloseLag7 float64
	Mean14    float64
	Std14     float64
	Min7      float64
	Max7      float64
	Min14     float64
	Max14     float64
	DayOfWeek float64
}

// NumFeatures is the width of the vector produced by Vector. Model
// training and forecasting both validate against it.
const NumFeatures = 16

// Vector flattens the row into the feature vector used for regression.
// The order is fixed; changing it invalidates every trained model.
func (r FeatureRow) Vector() []float64 {
	return []float64{
		r.Close,
		r.Volume,
		r.MA7,
		r.Volatility7,
		r.DailyReturn,
		r.CloseLag1,
		r.CloseLag2,
		r.CloseLag3,
		r.CloseLag7,
		r.Mean14,
		r.Std14,
		r.Min7,
		r.Max7,
		r.Min14,
		r.Max14,
		r.DayOfWeek,
	}
}

// Matrix converts rows into a feature matrix plus the aligned closes.
func Matrix(rows []FeatureRow) ([][]float64, []float64) {
	x := make([][]float64, len(rows))
	closes := make([]float64, len(rows))
	for i, r := range rows {
		x[i] = r.Vector()
		closes[i] = r.Close
	}
	return x, closes
}

// Returns extracts the daily percentage return series from feature rows.
func Returns(rows []FeatureRow) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.DailyReturn
	}
	return out
}
