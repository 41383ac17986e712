package ladder

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-attenuator/pkg/analysis"
	"github.com/edp1096/toy-attenuator/pkg/attenuator"
	"github.com/edp1096/toy-attenuator/pkg/circuit"
	"github.com/edp1096/toy-attenuator/pkg/netlist"
)

// Measurement is the solved behavior of one switch position.
type Measurement struct {
	Position uint // Requested switch code
	Engaged  uint // Stages actually switched in

	AttenuationDb float64 // Signed, load included
	IdealDb       float64 // -step * Engaged
	ErrorDb       float64 // AttenuationDb - IdealDb

	InputResistance  float64 // Seen by the source, load included (ohm)
	OutputResistance float64 // Seen at the output, input grounded, load removed (ohm)
}

func solve(name string, elements []netlist.Element) (*circuit.Circuit, error) {
	ckt, err := circuit.Build(name, elements)
	if err != nil {
		return nil, err
	}

	op := analysis.NewOP()
	if err := op.Setup(ckt); err != nil {
		ckt.Destroy()
		return nil, fmt.Errorf("analysis setup failed: %v", err)
	}
	if err := op.Execute(); err != nil {
		ckt.Destroy()
		return nil, fmt.Errorf("analysis execution failed: %v", err)
	}
	return ckt, nil
}

// sourceResistance is V/I of a source delivering current i.
func sourceResistance(v, i float64) float64 {
	if i <= 0 {
		return math.Inf(1)
	}
	return v / i
}

// Simulate solves the rounded ladder at position.
func Simulate(res *attenuator.Result, position uint) (Measurement, error) {
	cfg := res.Config()
	mask := Engaged(cfg, position)
	m := Measurement{
		Position: position,
		Engaged:  mask,
		IdealDb:  -res.StepDb * float64(mask),
	}

	elements, out, err := network(res.Cascade, mask, true)
	if err != nil {
		return m, err
	}

	// Forward: 1 V at the input, loaded output.
	forward := append([]netlist.Element{source(SourceName, InputNode, 1)}, elements...)
	ckt, err := solve(fmt.Sprintf("position %d", position), forward)
	if err != nil {
		return m, fmt.Errorf("position %d: %v", position, err)
	}
	sol := ckt.GetSolution()
	vout := ckt.NodeVoltage(out)
	ckt.Destroy()

	m.AttenuationDb = attenuator.GainDb(vout, 1)
	m.ErrorDb = m.AttenuationDb - m.IdealDb
	m.InputResistance = sourceResistance(1, sol[fmt.Sprintf("I(%s)", SourceName)])

	// Reverse: input shorted to ground, 1 V probe at the unloaded output.
	if out == InputNode {
		m.OutputResistance = 0
		return m, nil
	}
	elements, _, err = network(res.Cascade, mask, false)
	if err != nil {
		return m, err
	}
	reverse := append([]netlist.Element{source(SourceName, InputNode, 0)}, elements...)
	reverse = append(reverse, source(ProbeName, out, 1))

	ckt, err = solve(fmt.Sprintf("position %d output", position), reverse)
	if err != nil {
		return m, fmt.Errorf("position %d output: %v", position, err)
	}
	m.OutputResistance = sourceResistance(1, ckt.GetSolution()[fmt.Sprintf("I(%s)", ProbeName)])
	ckt.Destroy()

	return m, nil
}
