package util_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edp1096/toy-attenuator/pkg/util"
)

func TestFormatResistance(t *testing.T) {
	cases := map[float64]string{
		0:          "0",
		-1:         "-??",
		math.NaN(): "-??",
		1e-7:       "~0",
		1e14:       "inf",
		1e-6:       "1u",
		0.5:        "500m",
		6.34:       "6.34R",
		562:        "562R",
		1000:       "1k",
		1234.5678:  "1.235k",
		10000:      "10k",
		559.391:    "559.391R",
		15.839e6:   "15.839M",
		1e13:       "10T",
	}
	for in, want := range cases {
		assert.Equal(t, want, util.FormatResistance(in), "value %g", in)
	}
	assert.Equal(t, "inf", util.FormatResistance(math.Inf(1)))
}

func TestFormatDb(t *testing.T) {
	assert.Equal(t, "0.5 dB", util.FormatDb(0.5))
	assert.Equal(t, "64 dB", util.FormatDb(64))
	assert.Equal(t, "-0.07 dB", util.FormatDb(-0.07))
	assert.Equal(t, "0 dB", util.FormatDb(math.Copysign(0, -1)))
}

func TestFormatValueFactor(t *testing.T) {
	assert.Equal(t, "1.000 V", util.FormatValueFactor(1, "V"))
	assert.Equal(t, "2.500 mV", util.FormatValueFactor(2.5e-3, "V"))
	assert.Equal(t, "1.000 uA", util.FormatValueFactor(1e-6, "A"))
}
