package attenuator

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-attenuator/internal/consts"
)

// Stage is one switchable divider. TopNominal/BottomNominal are the exact
// values the design formula asks for, Top/Bottom their E-series roundings.
type Stage struct {
	Index         int
	TopNominal    float64 // Series resistor (ohm)
	BottomNominal float64 // Shunt resistor (ohm)
	Top           float64
	Bottom        float64
	NominalDb     float64 // Step contribution when engaged (dB, positive)
	ErrorDb       float64 // Worst-case deviation from the linear step, set by StageErrors
}

// TopRef and BottomRef are the schematic designators, R1/R2 for stage 1.
func (s Stage) TopRef() string    { return fmt.Sprintf("R%d", 2*s.Index-1) }
func (s Stage) BottomRef() string { return fmt.Sprintf("R%d", 2*s.Index) }

// Cascade holds the stages in signal order. Slot 0 is the source side
// boundary, slots 1..n the switched stages and slot n+1 the terminating load
// (Top always 0).
type Cascade struct {
	cfg    Config
	stages []Stage
}

func (c *Cascade) Config() Config { return c.cfg }

// Len is the number of switched stages.
func (c *Cascade) Len() int { return len(c.stages) - 2 }

// Stage returns slot i, 0 <= i <= Len()+1.
func (c *Cascade) Stage(i int) Stage { return c.stages[i] }

// Stages returns the switched stages 1..n.
func (c *Cascade) Stages() []Stage {
	return append([]Stage(nil), c.stages[1:len(c.stages)-1]...)
}

func (c *Cascade) Load() Stage { return c.stages[len(c.stages)-1] }

// StagePower is the binary weight of stage i: stage 1 is the least
// significant bit.
func StagePower(i int) int {
	return 1 << (i - 1)
}

// Parallel combines two resistors; two zero resistors give zero.
func Parallel(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	return a * b / (a + b)
}

// StageRatio is the linear voltage ratio stage i must realize, floored so
// long cascades do not underflow.
func StageRatio(cfg Config, i int) float64 {
	base := math.Pow(10, -0.05*cfg.StepDb)
	r := math.Pow(base, float64(StagePower(i)))
	return math.Max(r, consts.RATIO_FLOOR)
}

func synthesizeStage(cfg Config, i int) Stage {
	r := StageRatio(cfg, i)
	R := cfg.Resistance

	s := Stage{
		Index:     i,
		NominalDb: cfg.StepDb * float64(StagePower(i)),
	}

	switch cfg.Topology {
	case ConstOutput:
		if i == 1 {
			s.TopNominal = R / r
		} else {
			s.TopNominal = R * (1 - r) / r
		}
		s.BottomNominal = R / math.Max(1-r, consts.RATIO_FLOOR)
	default:
		s.TopNominal = R * (1 - r)
		s.BottomNominal = R / math.Max(1/r-1, consts.RATIO_FLOOR)
	}

	s.Top = cfg.Series.Round(s.TopNominal)
	s.Bottom = cfg.Series.Round(s.BottomNominal)
	return s
}

// loadStage is the two-terminal termination behind the last stage.
func loadStage(cfg Config) Stage {
	load := cfg.Resistance
	if cfg.Topology == ConstOutput {
		load *= consts.LOAD_MULTIPLE
	}
	return Stage{
		Index:         cfg.Stages + 1,
		BottomNominal: load,
		Bottom:        cfg.Series.Round(load),
	}
}

// Synthesize computes nominal and rounded resistor pairs for every stage of
// cfg. cfg is expected to be valid.
func Synthesize(cfg Config) *Cascade {
	n := cfg.Stages
	stages := make([]Stage, n+2)
	for i := 1; i <= n; i++ {
		stages[i] = synthesizeStage(cfg, i)
	}
	stages[n+1] = loadStage(cfg)
	return &Cascade{cfg: cfg, stages: stages}
}

// setError records the analyzer result for stage i.
func (c *Cascade) setError(i int, errDb float64) {
	c.stages[i].ErrorDb = errDb
}
