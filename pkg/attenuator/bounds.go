package attenuator

import "math"

// Range is the [Min, Max] resistance reachable at a node (ohm).
type Range struct {
	Min float64
	Max float64
}

func point(r float64) Range { return Range{Min: r, Max: r} }

// Envelope collects both passes for one cascade node. Nodes a pass does not
// reach are left zero: the input pass covers 1..n+1, the output pass 0..n.
type Envelope struct {
	Input  Range
	Output Range
}

// InputBounds walks from the load towards the input. Node i is the input of
// stage i; node n+1 is the load itself. A bypassed stage passes the
// downstream resistance through, an engaged one puts its shunt in parallel
// with it behind the series resistor.
func InputBounds(c *Cascade) []Range {
	n := c.Len()
	b := make([]Range, n+2)
	b[n+1] = point(c.Load().Bottom)

	for i := n; i >= 1; i-- {
		s := c.stages[i]
		next := b[i+1]
		b[i] = Range{
			Min: math.Min(next.Min, s.Top+Parallel(s.Bottom, next.Min)),
			Max: math.Max(next.Max, s.Top+Parallel(s.Bottom, next.Max)),
		}
	}
	return b
}

// OutputBounds walks from the ideal source (0 ohm) towards the output. Node
// i is the output of stage i. In ConstOutput the first stage is never
// bypassed, so its output resistance is fixed.
func OutputBounds(c *Cascade) []Range {
	n := c.Len()
	b := make([]Range, n+2)
	b[0] = point(0)

	for i := 1; i <= n; i++ {
		s := c.stages[i]
		if i == 1 && c.cfg.Topology == ConstOutput {
			b[1] = point(Parallel(s.Top, s.Bottom))
			continue
		}
		prev := b[i-1]
		b[i] = Range{
			Min: math.Min(prev.Min, Parallel(prev.Min+s.Top, s.Bottom)),
			Max: math.Max(prev.Max, Parallel(prev.Max+s.Top, s.Bottom)),
		}
	}
	return b
}

// Propagate runs both passes and merges them per node, 0..n+1.
func Propagate(c *Cascade) []Envelope {
	in := InputBounds(c)
	out := OutputBounds(c)

	env := make([]Envelope, len(in))
	for i := range env {
		env[i] = Envelope{Input: in[i], Output: out[i]}
	}
	return env
}
