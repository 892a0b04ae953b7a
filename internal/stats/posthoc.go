package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PairResult is one post-hoc pairwise comparison between two groups.
type PairResult struct {
	A, B        string
	Statistic   float64
	PValue      float64 // raw two-sided Welch p-value
	AdjustedP   float64 // Holm step-down adjusted p-value
	Significant bool
}

// PairwiseWelch runs two-sided Welch t-tests for every group pair with
// Holm step-down multiple-comparison control. Callers run it only after
// a significant omnibus ANOVA. Pairs come back in (A, B) lexical order.
func PairwiseWelch(groups map[string][]float64) []PairResult {
	names := sortedKeys(groups)

	var pairs []PairResult
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			t, p := welchT(groups[names[i]], groups[names[j]])
			pairs = append(pairs, PairResult{
				A:         names[i],
				B:         names[j],
				Statistic: t,
				PValue:    p,
			})
		}
	}

	holmAdjust(pairs)
	return pairs
}

// welchT computes the unequal-variance t statistic and its two-sided
// p-value with Welch–Satterthwaite degrees of freedom.
func welchT(a, b []float64) (float64, float64) {
	ma, mb := stat.Mean(a, nil), stat.Mean(b, nil)
	va, vb := stat.Variance(a, nil), stat.Variance(b, nil)
	na, nb := float64(len(a)), float64(len(b))

	se2 := va/na + vb/nb
	if se2 == 0 {
		if ma == mb {
			return 0, 1
		}
		return math.Inf(sign(ma - mb)), 0
	}

	t := (ma - mb) / math.Sqrt(se2)
	df := se2 * se2 / ((va*va)/(na*na*(na-1)) + (vb*vb)/(nb*nb*(nb-1)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * (1 - dist.CDF(math.Abs(t)))
	return t, p
}

// holmAdjust applies the Holm step-down correction in place and marks
// significance at Alpha.
func holmAdjust(pairs []PairResult) {
	m := len(pairs)
	if m == 0 {
		return
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return pairs[order[i]].PValue < pairs[order[j]].PValue
	})

	running := 0.0
	for rank, idx := range order {
		adj := float64(m-rank) * pairs[idx].PValue
		if adj > 1 {
			adj = 1
		}
		if adj < running {
			adj = running // adjusted p-values must be monotone
		}
		running = adj
		pairs[idx].AdjustedP = adj
		pairs[idx].Significant = adj < Alpha
	}
}
