package simulation

import "time"

// PredictionPoint pairs one day's observed close with the model's
// forecast for the following day's close, made with information
// available on that day.
type PredictionPoint struct {
	Date          time.Time
	ActualClose   float64
	PredictedNext float64
}

// CapitalPoint is one day of the capital trajectory.
type CapitalPoint struct {
	Date    time.Time
	Capital float64
}

// Trajectory is the full compounding capital path of one simulated
// strategy run.
type Trajectory struct {
	Points         []CapitalPoint
	InitialCapital float64
	FinalCapital   float64
	Profit         float64
	ProfitPct      float64
	DaysInvested   int
	DaysHeld       int
}

// Simulate runs the all-in reinvestment strategy over the prediction
// series. Each day t the full balance is invested at close(t) and
// liquidated at close(t+1) when the model predicts a rise, otherwise
// the balance carries flat. The trajectory is a strict left-to-right
// fold: day t+1's capital depends only on day t's.
//
// A series shorter than 2 days permits no trades and yields a single
// point at the initial capital. Capital stays positive structurally:
// the position is never levered or shorted, so the worst day multiplies
// by close(t+1)/close(t) > 0.
func Simulate(series []PredictionPoint, initialCapital float64) Trajectory {
	traj := Trajectory{
		InitialCapital: initialCapital,
		FinalCapital:   initialCapital,
	}
	if len(series) == 0 {
		traj.Points = []CapitalPoint{{Capital: initialCapital}}
		return traj
	}

	capital := initialCapital
	traj.Points = make([]CapitalPoint, 0, len(series))
	traj.Points = append(traj.Points, CapitalPoint{Date: series[0].Date, Capital: capital})

	for t := 0; t < len(series)-1; t++ {
		today := series[t]
		tomorrow := series[t+1]

		if today.PredictedNext > today.ActualClose {
			dayReturn := (tomorrow.ActualClose - today.ActualClose) / today.ActualClose
			capital *= 1 + dayReturn
			traj.DaysInvested++
		} else {
			traj.DaysHeld++
		}
		traj.Points = append(traj.Points, CapitalPoint{Date: tomorrow.Date, Capital: capital})
	}

	traj.FinalCapital = capital
	traj.Profit = capital - initialCapital
	if initialCapital != 0 {
		traj.ProfitPct = traj.Profit / initialCapital * 100
	}
	return traj
}
