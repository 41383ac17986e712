package attenuator

import "math"

// StageErrors compares every stage's reachable attenuation with its share of
// the linear staircase, avgStep * 2^(i-1), and keeps the larger deviation of
// the two envelope extremes. Results (dB, 2 decimals) are indexed 1..n and
// also stored on the cascade.
func StageErrors(c *Cascade, env []Envelope, avgStep float64) []float64 {
	n := c.Len()
	errs := make([]float64, n+1)

	for i := 1; i <= n; i++ {
		s := c.stages[i]
		ideal := avgStep * float64(StagePower(i))

		var lo, hi float64 // dB at the extremes, both negative
		if c.cfg.Topology == ConstOutput {
			src := env[i-1].Output
			lo = GainDb(s.Bottom, s.Bottom+src.Max+s.Top)
			hi = GainDb(s.Bottom, s.Bottom+src.Min+s.Top)
		} else {
			down := env[i+1].Input
			minRes := Parallel(down.Min, s.Bottom)
			maxRes := Parallel(down.Max, s.Bottom)
			lo = GainDb(minRes, s.Top+minRes)
			hi = GainDb(maxRes, s.Top+maxRes)
		}

		worst := lo + ideal
		if math.Abs(worst) < math.Abs(hi+ideal) {
			worst = hi + ideal
		}
		errs[i] = math.Round(worst*100) / 100
		c.setError(i, errs[i])
	}
	return errs
}
