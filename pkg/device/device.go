package device

import (
	"github.com/edp1096/toy-attenuator/pkg/matrix"
)

// Device is a linear two-terminal element stamped into the MNA system.
type Device interface {
	GetName() string
	GetType() string
	GetNodes() []int
	Stamp(matrix matrix.DeviceMatrix) error
	GetValue() float64
	SetNodes(nodes []int)
}

// BranchDevice owns an extra MNA row for its branch current.
type BranchDevice interface {
	Device
	SetBranchIndex(idx int)
	BranchIndex() int
}

type BaseDevice struct {
	Name  string
	Nodes []int
	Value float64
}

func (d *BaseDevice) GetName() string {
	return d.Name
}

func (d *BaseDevice) GetNodes() []int {
	return d.Nodes
}

func (d *BaseDevice) GetValue() float64 {
	return d.Value
}

func (d *BaseDevice) SetNodes(nodes []int) {
	d.Nodes = nodes
}

func newBaseDevice(name string, nodeNames []string, value float64) BaseDevice {
	return BaseDevice{
		Name:  name,
		Value: value,
		Nodes: make([]int, len(nodeNames)),
	}
}
