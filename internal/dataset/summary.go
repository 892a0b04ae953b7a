package dataset

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SummaryStats are the descriptive measures reported per coin for the
// closing price series.
type SummaryStats struct {
	Mean      float64
	Median    float64
	Min       float64
	Max       float64
	Std       float64
	Var       float64
	Amplitude float64
	Q1        float64
	Q3        float64
	IQR       float64
}

// Summarize computes descriptive statistics over a closing price series.
// Returns the zero value for an empty series.
func Summarize(closes []float64) SummaryStats {
	if len(closes) == 0 {
		return SummaryStats{}
	}

	sorted := append([]float64(nil), closes...)
	sort.Float64s(sorted)

	s := SummaryStats{
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
	s.Var = stat.Variance(sorted, nil)
	s.Std = stat.StdDev(sorted, nil)
	s.Amplitude = s.Max - s.Min
	s.IQR = s.Q3 - s.Q1
	return s
}

// DispersionRow compares price variability for one coin.
type DispersionRow struct {
	Symbol    string
	Std       float64
	Var       float64
	Amplitude float64
	IQR       float64
}

// CompareDispersion ranks coins by closing price dispersion, most
// volatile first. Iteration over the map is made deterministic by
// sorting symbols before ranking.
func CompareDispersion(closesBySymbol map[string][]float64) []DispersionRow {
	symbols := make([]string, 0, len(closesBySymbol))
	for sym := range closesBySymbol {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	rows := make([]DispersionRow, 0, len(symbols))
	for _, sym := range symbols {
		s := Summarize(closesBySymbol[sym])
		rows = append(rows, DispersionRow{
			Symbol:    sym,
			Std:       s.Std,
			Var:       s.Var,
			Amplitude: s.Amplitude,
			IQR:       s.IQR,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Std > rows[j].Std })
	return rows
}
