package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Alpha is the fixed significance level for every test in the package.
const Alpha = 0.05

// TestResult is the outcome of the one-sided mean return test for a
// single coin.
type TestResult struct {
	N          int
	Mean       float64
	Threshold  float64
	Statistic  float64
	PValue     float64
	RejectNull bool // true: mean daily return exceeds the threshold
}

// TestMeanReturn runs a one-sided one-sample t-test of
// H0: mean daily return <= threshold against H1: mean > threshold.
// The threshold is in percent, matching the return series units.
// Each coin is tested independently; results are never pooled.
func TestMeanReturn(returns []float64, thresholdPct float64) (*TestResult, error) {
	n := len(returns)
	if n < 2 {
		return nil, &InsufficientGroupsError{Groups: 1, Reason: "need at least 2 return observations"}
	}

	mean := stat.Mean(returns, nil)
	sd := stat.StdDev(returns, nil)

	res := &TestResult{
		N:         n,
		Mean:      mean,
		Threshold: thresholdPct,
	}
	if sd == 0 {
		// Degenerate series: decide directly on the mean.
		res.Statistic = math.Inf(sign(mean - thresholdPct))
		if mean > thresholdPct {
			res.PValue = 0
			res.RejectNull = true
		} else {
			res.PValue = 1
		}
		return res, nil
	}

	res.Statistic = (mean - thresholdPct) / (sd / math.Sqrt(float64(n)))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	res.PValue = 1 - t.CDF(res.Statistic)
	res.RejectNull = res.PValue < Alpha
	return res, nil
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
