package analysis

import (
	"fmt"

	"github.com/edp1096/toy-attenuator/pkg/circuit"
)

// OperatingPoint solves a linear resistive circuit in a single factorization.
type OperatingPoint struct{ BaseAnalysis }

func NewOP() *OperatingPoint {
	return &OperatingPoint{
		BaseAnalysis: *NewBaseAnalysis(),
	}
}

func (op *OperatingPoint) Setup(ckt *circuit.Circuit) error {
	if ckt == nil || ckt.GetMatrix() == nil {
		return fmt.Errorf("operating point: circuit not set up")
	}
	op.Circuit = ckt
	return nil
}

func (op *OperatingPoint) Execute() error {
	ckt := op.Circuit
	mat := ckt.GetMatrix()

	mat.Clear()
	err := ckt.Stamp()
	if err != nil {
		return fmt.Errorf("stamping error: %v", err)
	}

	err = mat.Solve()
	if err != nil {
		return fmt.Errorf("matrix solve error: %v", err)
	}

	op.StoreResult(ckt.GetSolution())
	return nil
}
