package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-attenuator/pkg/device"
)

type entry struct{ i, j int }

type recorder struct {
	elements map[entry]float64
	rhs      map[int]float64
}

func newRecorder() *recorder {
	return &recorder{elements: map[entry]float64{}, rhs: map[int]float64{}}
}

func (r *recorder) AddElement(i, j int, value float64) { r.elements[entry{i, j}] += value }
func (r *recorder) AddRHS(i int, value float64)        { r.rhs[i] += value }

func TestResistor_StampsNominalConductance(t *testing.T) {
	r := device.NewResistor("R1", []string{"1", "2"}, 4750)
	r.SetNodes([]int{1, 2})

	m := newRecorder()
	require.NoError(t, r.Stamp(m))

	g := 1.0 / 4750
	assert.Equal(t, map[entry]float64{
		{1, 1}: g, {1, 2}: -g,
		{2, 1}: -g, {2, 2}: g,
	}, m.elements)
	assert.Empty(t, m.rhs)
}

func TestResistor_GroundedTerminal(t *testing.T) {
	r := device.NewResistor("R2", []string{"1", "0"}, 100)
	r.SetNodes([]int{1, 0})

	m := newRecorder()
	require.NoError(t, r.Stamp(m))
	assert.Equal(t, map[entry]float64{{1, 1}: 0.01}, m.elements)
}

func TestResistor_NonPositive(t *testing.T) {
	r := device.NewResistor("R3", []string{"1", "0"}, 0)
	r.SetNodes([]int{1, 0})
	require.Error(t, r.Stamp(newRecorder()))
}

func TestVoltageSource_Stamp(t *testing.T) {
	v := device.NewDCVoltageSource("V1", []string{"1", "0"}, 2.5)
	v.SetNodes([]int{1, 0})
	require.Error(t, v.Stamp(newRecorder()), "no branch assigned")

	v.SetBranchIndex(3)
	m := newRecorder()
	require.NoError(t, v.Stamp(m))
	assert.Equal(t, map[entry]float64{{3, 1}: 1, {1, 3}: 1}, m.elements)
	assert.Equal(t, map[int]float64{3: 2.5}, m.rhs)
}
