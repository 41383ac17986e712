package attenuator

import (
	"math"

	"github.com/edp1096/toy-attenuator/internal/consts"
)

// GainDb converts the divider ratio num/den to dB. A non-positive ratio or
// denominator yields the sentinel instead of an undefined logarithm.
func GainDb(num, den float64) float64 {
	if den <= 0 {
		return consts.SENTINEL_DB
	}
	gain := num / den
	if !(gain > 0) {
		return consts.SENTINEL_DB
	}
	return 20 * math.Log10(gain)
}

// InputPathAttenuation folds the engaged ConstInput ladder from the load
// back to the input. Every stage sees the resistance switched in behind it,
// starting from the nominal base resistance.
func InputPathAttenuation(c *Cascade) float64 {
	switched := c.cfg.Resistance
	total := 0.0
	for i := c.Len(); i >= 1; i-- {
		s := c.stages[i]
		rp := Parallel(s.Bottom, switched)
		switched = s.Top + rp
		total += GainDb(rp, switched)
	}
	return total
}

// OutputPathAttenuation folds the engaged ConstOutput ladder from the source
// forward. The high terminating load is not part of the sum.
func OutputPathAttenuation(c *Cascade) float64 {
	total := 0.0
	switched := 0.0
	for i := 1; i <= c.Len(); i++ {
		s := c.stages[i]
		if i == 1 {
			total += GainDb(s.Bottom, s.Top+s.Bottom)
			switched = Parallel(s.Top, s.Bottom)
			continue
		}
		total += GainDb(s.Bottom, s.Top+s.Bottom+switched)
		switched = Parallel(switched+s.Top, s.Bottom)
	}
	return total
}

// TotalAttenuation is the signed (negative) attenuation of the network with
// every stage engaged, along the topology's signal path.
func TotalAttenuation(c *Cascade) float64 {
	if c.cfg.Topology == ConstOutput {
		return OutputPathAttenuation(c)
	}
	return InputPathAttenuation(c)
}

// AverageStep spreads the total over the 2^n - 1 steps of the ladder.
func AverageStep(totalDb float64, stages int) float64 {
	return -totalDb / float64(int(1)<<stages-1)
}
