package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ANOVAResult is the outcome of a one-way ANOVA plus, when the omnibus
// test rejects, the post-hoc pairwise comparisons.
type ANOVAResult struct {
	F          float64
	PValue     float64
	RejectNull bool
	DFBetween  int
	DFWithin   int
	GroupMeans map[string]float64
	GroupSizes map[string]int

	// PostHoc is populated only when the omnibus test is significant.
	PostHoc []PairResult
}

// OneWayANOVA tests whether mean daily return differs across the given
// groups. Requires at least 2 groups with at least 2 observations each.
// When the omnibus p-value is below Alpha, pairwise Welch t-tests with
// Holm correction localize which groups differ.
func OneWayANOVA(groups map[string][]float64) (*ANOVAResult, error) {
	if err := validateGroups(groups); err != nil {
		return nil, err
	}

	names := sortedKeys(groups)

	totalN := 0
	grandSum := 0.0
	means := make(map[string]float64, len(names))
	sizes := make(map[string]int, len(names))
	for _, name := range names {
		g := groups[name]
		means[name] = stat.Mean(g, nil)
		sizes[name] = len(g)
		totalN += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(totalN)

	ssBetween := 0.0
	ssWithin := 0.0
	for _, name := range names {
		g := groups[name]
		d := means[name] - grandMean
		ssBetween += float64(len(g)) * d * d
		for _, v := range g {
			e := v - means[name]
			ssWithin += e * e
		}
	}

	res := &ANOVAResult{
		DFBetween:  len(names) - 1,
		DFWithin:   totalN - len(names),
		GroupMeans: means,
		GroupSizes: sizes,
	}

	msBetween := ssBetween / float64(res.DFBetween)
	msWithin := ssWithin / float64(res.DFWithin)
	switch {
	case msWithin == 0 && msBetween == 0:
		res.F = 0
		res.PValue = 1
	case msWithin == 0:
		// Identical values within every group but different means.
		res.PValue = 0
		res.RejectNull = true
	default:
		res.F = msBetween / msWithin
		f := distuv.F{D1: float64(res.DFBetween), D2: float64(res.DFWithin)}
		res.PValue = 1 - f.CDF(res.F)
		res.RejectNull = res.PValue < Alpha
	}

	if res.RejectNull {
		res.PostHoc = PairwiseWelch(groups)
	}
	return res, nil
}

func validateGroups(groups map[string][]float64) error {
	usable := 0
	for _, g := range groups {
		if len(g) >= 2 {
			usable++
		}
	}
	if len(groups) < 2 {
		return &InsufficientGroupsError{Groups: len(groups), Reason: "need at least 2 groups"}
	}
	if usable < len(groups) {
		return &InsufficientGroupsError{Groups: usable, Reason: "every group needs at least 2 observations"}
	}
	return nil
}

func sortedKeys(groups map[string][]float64) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
