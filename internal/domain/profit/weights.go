package profit

import "fmt"

// Weights scale the four custom-sort metrics:
// profit per execution, total gp, total time (hours), gp/hour
type Weights [4]float64

// Score is the linear scalarisation of a row's metrics
func (w Weights) Score(row OverviewRow) float64 {
	metrics := [4]float64{
		float64(row.Profit()),
		float64(row.TotalGP()),
		row.TotalTimeHours(),
		float64(row.GPH()),
	}

	var score float64
	for i := range w {
		score += w[i] * metrics[i]
	}
	return score
}

// Preference is the user's trade-off between money, time and gp/hour
type Preference struct {
	Margin float64
	Time   float64
	GPH    float64
}

// DefaultPreference returns the stock custom-sort preference
func DefaultPreference() Preference {
	return Preference{Margin: 1e-2, Time: -2.0, GPH: 1e-5}
}

// ComputeWeights rescales the money preference against the capital's magnitude
// so the same preference ranks comparably for small and large bankrolls.
// The margin weight and a 10/capital term are both multiplied by their sum;
// time and gp/hour pass through.
func ComputeWeights(capital int64, pref Preference) (Weights, error) {
	if capital <= 0 {
		return Weights{}, fmt.Errorf("%w: capital %d cannot normalise weights", ErrInvalidConfig, capital)
	}

	moneyToTime := 10.0 / float64(capital)
	factor := pref.Margin + moneyToTime

	return Weights{
		pref.Margin * factor,
		moneyToTime * factor,
		pref.Time,
		pref.GPH,
	}, nil
}
