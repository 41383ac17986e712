package attenuator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/edp1096/toy-attenuator/internal/consts"
	"github.com/edp1096/toy-attenuator/pkg/eseries"
)

type Topology int

const (
	ConstInput Topology = iota
	ConstOutput
)

var (
	ErrUnknownTopology   = errors.New("unknown attenuator type")
	ErrInvalidStages     = errors.New("invalid stage count")
	ErrInvalidResistance = errors.New("invalid stage resistance")
	ErrInvalidStep       = errors.New("invalid attenuation step")
	ErrInvalidSeries     = errors.New("invalid E-series")
)

func (t Topology) String() string {
	switch t {
	case ConstInput:
		return "const-input"
	case ConstOutput:
		return "const-output"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "input", "const-input":
		return ConstInput, nil
	case "1", "output", "const-output":
		return ConstOutput, nil
	}
	return ConstInput, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
}

// Config is the immutable input of a design run.
type Config struct {
	Stages     int            // Number of switched stages, one bit each
	Series     eseries.Series // Rounding series, eseries.None keeps nominal values
	Topology   Topology
	Resistance float64 // Stage resistance (ohm)
	StepDb     float64 // Attenuation of the least significant bit (dB)
}

func DefaultConfig() Config {
	return Config{
		Stages:     consts.DEFAULT_STAGES,
		Series:     eseries.E96,
		Topology:   ConstInput,
		Resistance: 10000,
		StepDb:     0.5,
	}
}

func (c Config) Validate() error {
	if c.Stages < 1 || c.Stages > consts.MAX_STAGES {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidStages, c.Stages, consts.MAX_STAGES)
	}
	if !c.Series.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeries, int(c.Series))
	}
	if c.Topology != ConstInput && c.Topology != ConstOutput {
		return fmt.Errorf("%w: %d", ErrUnknownTopology, int(c.Topology))
	}
	if !(c.Resistance > 0) || math.IsInf(c.Resistance, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidResistance, c.Resistance)
	}
	if !(c.StepDb > 0) || math.IsInf(c.StepDb, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidStep, c.StepDb)
	}
	return nil
}

// Positions is the number of distinct switch settings, 2^stages.
func (c Config) Positions() int {
	return 1 << c.Stages
}
