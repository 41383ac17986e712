package ladder

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/edp1096/toy-attenuator/pkg/attenuator"
)

// Sweep holds every switch position of a design.
type Sweep struct {
	Points []Measurement

	Input  attenuator.Range // Measured over all positions
	Output attenuator.Range

	WorstErrorDb float64 // Signed error with the largest magnitude

	// Least-squares line through attenuation magnitude versus engaged code.
	FitStepDb   float64
	FitOffsetDb float64
	ResidualDb  float64 // Standard deviation around the fitted line
}

// Run simulates all 2^stages positions.
func Run(res *attenuator.Result) (*Sweep, error) {
	s := &Sweep{
		Points: make([]Measurement, 0, res.Positions),
		Input:  attenuator.Range{Min: math.Inf(1), Max: math.Inf(-1)},
		Output: attenuator.Range{Min: math.Inf(1), Max: math.Inf(-1)},
	}

	for p := 0; p < res.Positions; p++ {
		m, err := Simulate(res, uint(p))
		if err != nil {
			return nil, err
		}
		s.Points = append(s.Points, m)

		s.Input.Min = math.Min(s.Input.Min, m.InputResistance)
		s.Input.Max = math.Max(s.Input.Max, m.InputResistance)
		s.Output.Min = math.Min(s.Output.Min, m.OutputResistance)
		s.Output.Max = math.Max(s.Output.Max, m.OutputResistance)
		if math.Abs(m.ErrorDb) > math.Abs(s.WorstErrorDb) {
			s.WorstErrorDb = m.ErrorDb
		}
	}

	s.fit()
	return s, nil
}

func (s *Sweep) fit() {
	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	for i, m := range s.Points {
		xs[i] = float64(m.Engaged)
		ys[i] = -m.AttenuationDb
	}

	// A single distinct code (one const-output stage) has no slope.
	if len(xs) < 2 || stat.Variance(xs, nil) == 0 {
		s.FitOffsetDb = stat.Mean(ys, nil)
		return
	}

	s.FitOffsetDb, s.FitStepDb = stat.LinearRegression(xs, ys, nil, false)

	residuals := make([]float64, len(xs))
	for i := range xs {
		residuals[i] = ys[i] - (s.FitOffsetDb + s.FitStepDb*xs[i])
	}
	s.ResidualDb = stat.StdDev(residuals, nil)
}
