package eseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-attenuator/pkg/eseries"
)

var samples = []float64{
	0.0123, 0.47, 1, 3.3, 9.99, 47.5, 559.391, 1087.2, 9994.4,
	10000, 168766, 6.314, 15.839e6, 2.2e9,
}

func TestRound_Known(t *testing.T) {
	cases := []struct {
		series eseries.Series
		in     float64
		want   float64
	}{
		{eseries.E96, 559.391, 562},
		{eseries.E96, 168766, 169000},
		{eseries.E96, 9994.4, 10000},
		{eseries.E96, 6.314, 6.34},
		{eseries.E24, 5000, 5100},
		{eseries.E12, 4600, 4700},
		{eseries.E12, 559.391, 560},
		{eseries.E12, 168766, 180000},
	}
	for _, tc := range cases {
		got := tc.series.Round(tc.in)
		assert.InEpsilon(t, tc.want, got, 1e-12, "%s(%g)", tc.series, tc.in)
	}
}

func TestRound_Idempotent(t *testing.T) {
	for _, s := range []eseries.Series{eseries.E12, eseries.E24, eseries.E96} {
		for _, v := range samples {
			once := s.Round(v)
			assert.Equal(t, once, s.Round(once), "%s(%g)", s, v)
		}
	}
}

func TestRound_TableMembersAreFixedPoints(t *testing.T) {
	for _, s := range []eseries.Series{eseries.E12, eseries.E24, eseries.E96} {
		values := s.Values()
		require.Len(t, values, int(s))
		for _, m := range values {
			require.GreaterOrEqual(t, m, 1.0)
			require.Less(t, m, 10.0)
			assert.InEpsilon(t, m*1000, s.Round(m*1000), 1e-12, "%s member %g", s, m)
		}
	}
}

func TestRound_NoneAndNonPositive(t *testing.T) {
	for _, v := range samples {
		assert.Equal(t, v, eseries.Round(v, eseries.None))
	}
	assert.Equal(t, 0.0, eseries.E96.Round(0))
	assert.Equal(t, -12.5, eseries.E96.Round(-12.5))
}

func TestRound_ScaleInvariant(t *testing.T) {
	for _, s := range []eseries.Series{eseries.E12, eseries.E24, eseries.E96} {
		for _, v := range []float64{0.47, 3.3, 47.5, 559.391, 1087.2, 168766} {
			ratio := s.Round(v) / s.Round(v*10) * 10
			assert.InDelta(t, 1.0, ratio, 1e-12, "%s(%g)", s, v)
		}
	}
}

func TestRound_DecadeWrap(t *testing.T) {
	// 9.9 sits above the last E12 slot and wraps to the next decade.
	assert.InEpsilon(t, 10.0, eseries.E12.Round(9.9), 1e-12)
	assert.InEpsilon(t, 1000.0, eseries.E96.Round(999.9), 1e-12)
}

func TestParseSeries(t *testing.T) {
	for in, want := range map[string]eseries.Series{
		"0": eseries.None, "none": eseries.None,
		"12": eseries.E12, "e24": eseries.E24, "E96": eseries.E96, " 96 ": eseries.E96,
	} {
		got, err := eseries.ParseSeries(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := eseries.ParseSeries("48")
	require.ErrorIs(t, err, eseries.ErrUnknownSeries)
	assert.False(t, eseries.Series(48).Valid())
	assert.True(t, eseries.None.Valid())
	assert.Equal(t, "E96", eseries.E96.String())
}
