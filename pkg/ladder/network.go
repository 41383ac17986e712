package ladder

import (
	"fmt"

	"github.com/edp1096/toy-attenuator/pkg/attenuator"
	"github.com/edp1096/toy-attenuator/pkg/netlist"
)

const (
	InputNode  = "in"
	SourceName = "V1"
	LoadName   = "RL"
	ProbeName  = "VT"
)

// Engaged returns the stages that are actually switched in for position.
func Engaged(cfg attenuator.Config, position uint) uint {
	mask := position & (uint(1)<<cfg.Stages - 1)
	if cfg.Topology == attenuator.ConstOutput {
		mask |= 1
	}
	return mask
}

func resistor(name, n1, n2 string, value float64) netlist.Element {
	return netlist.Element{Type: "R", Name: name, Nodes: []string{n1, n2}, Value: value}
}

func source(name, n1 string, value float64) netlist.Element {
	return netlist.Element{
		Type:   "V",
		Name:   name,
		Nodes:  []string{n1, "0"},
		Value:  value,
		Params: map[string]string{"type": "dc"},
	}
}

// network returns the passive part of the ladder for the engaged stages and
// the name of its output node.
func network(c *attenuator.Cascade, mask uint, withLoad bool) ([]netlist.Element, string, error) {
	var elements []netlist.Element
	node := InputNode

	for _, s := range c.Stages() {
		if mask&(1<<(s.Index-1)) == 0 {
			continue
		}
		if !(s.Bottom > 0) {
			return nil, "", fmt.Errorf("stage %d: shunt %s is %g ohm", s.Index, s.BottomRef(), s.Bottom)
		}

		next := node
		if s.Top > 0 {
			next = fmt.Sprintf("n%d", s.Index)
			elements = append(elements, resistor(s.TopRef(), node, next, s.Top))
		}
		elements = append(elements, resistor(s.BottomRef(), next, "0", s.Bottom))
		node = next
	}

	if withLoad {
		elements = append(elements, resistor(LoadName, node, "0", c.Load().Bottom))
	}
	return elements, node, nil
}

// Build returns the complete netlist for position: a 1 V source at the
// input, the engaged stages and the terminating load.
func Build(res *attenuator.Result, position uint) ([]netlist.Element, error) {
	mask := Engaged(res.Config(), position)
	elements, _, err := network(res.Cascade, mask, true)
	if err != nil {
		return nil, err
	}
	return append([]netlist.Element{source(SourceName, InputNode, 1)}, elements...), nil
}
