package device

import (
	"fmt"

	"github.com/edp1096/toy-attenuator/pkg/matrix"
)

// VoltageSource is an ideal DC source. Its branch unknown is the current
// flowing into the positive terminal from the circuit.
type VoltageSource struct {
	BaseDevice
	branchIdx int
}

func NewDCVoltageSource(name string, nodeNames []string, value float64) *VoltageSource {
	return &VoltageSource{BaseDevice: newBaseDevice(name, nodeNames, value)}
}

func (v *VoltageSource) GetType() string { return "V" }

func (v *VoltageSource) SetBranchIndex(idx int) { v.branchIdx = idx }

func (v *VoltageSource) BranchIndex() int { return v.branchIdx }

func (v *VoltageSource) Stamp(matrix matrix.DeviceMatrix) error {
	if len(v.Nodes) != 2 {
		return fmt.Errorf("voltage source %s: requires exactly 2 nodes", v.Name)
	}
	if v.branchIdx <= 0 {
		return fmt.Errorf("voltage source %s: no branch assigned", v.Name)
	}

	n1, n2 := v.Nodes[0], v.Nodes[1]
	bIdx := v.branchIdx

	// v1 - v2 = V
	if n1 != 0 {
		matrix.AddElement(bIdx, n1, 1) // v1 coefficient
		matrix.AddElement(n1, bIdx, 1) // n1 current
	}
	if n2 != 0 {
		matrix.AddElement(bIdx, n2, -1) // -v2 coefficient
		matrix.AddElement(n2, bIdx, -1) // n2 current
	}

	matrix.AddRHS(bIdx, v.Value)
	return nil
}
