package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-attenuator/pkg/netlist"
)

func TestParseValue(t *testing.T) {
	cases := map[string]float64{
		"10":      10,
		"4.7k":    4700,
		"4.7K":    4700,
		"1meg":    1e6,
		"2.2MEG":  2.2e6,
		"10m":     10e-3,
		"100n":    100e-9,
		"1e+06":   1e6,
		"6.34ohm": 6.34,
		"15u":     15e-6,
	}
	for in, want := range cases {
		got, err := netlist.ParseValue(in)
		require.NoError(t, err, in)
		assert.InEpsilon(t, want, got, 1e-12, in)
	}

	_, err := netlist.ParseValue("abc")
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	deck := `* two stage divider
V1 in 0 DC 1
R1 in n1 562 * series
R2 n1 0
+ 169k
RL n1 0 10k

.op
.end
`
	data, err := netlist.Parse(deck)
	require.NoError(t, err)

	assert.Equal(t, "two stage divider", data.Title)
	assert.Equal(t, netlist.AnalysisOP, data.Analysis)
	require.Len(t, data.Elements, 4)
	assert.Equal(t, "V", data.Elements[0].Type)
	assert.Equal(t, 1.0, data.Elements[0].Value)
	assert.Equal(t, 169e3, data.Elements[2].Value)
	assert.Equal(t, []string{"n1", "0"}, data.Elements[3].Nodes)
	assert.Len(t, data.Nodes, 3)
}

func TestParse_Errors(t *testing.T) {
	for _, deck := range []string{
		"* bad\nC1 a 0 1n\n",
		"* bad\nR1 a 0\n",
		"* bad\nV1 a 0 DC\n",
		"* bad\n.tran 1n 1u\n",
	} {
		_, err := netlist.Parse(deck)
		assert.Error(t, err, deck)
	}
}
