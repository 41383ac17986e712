package circuit

import (
	"fmt"

	"github.com/edp1096/toy-attenuator/pkg/device"
	"github.com/edp1096/toy-attenuator/pkg/matrix"
	"github.com/edp1096/toy-attenuator/pkg/netlist"
)

type Circuit struct {
	name      string
	nodeMap   map[string]int
	branchMap map[string]int
	devices   []device.Device
	numNodes  int
	matrix    *matrix.CircuitMatrix
}

func New(name string) *Circuit {
	return &Circuit{
		name:      name,
		nodeMap:   make(map[string]int),
		branchMap: make(map[string]int),
		devices:   make([]device.Device, 0),
	}
}

// Build runs the usual setup sequence: node/branch maps, matrix, devices.
func Build(name string, elements []netlist.Element) (*Circuit, error) {
	ckt := New(name)
	if err := ckt.AssignNodeBranchMaps(elements); err != nil {
		return nil, fmt.Errorf("error node, branch map: %v", err)
	}
	if err := ckt.CreateMatrix(); err != nil {
		return nil, err
	}
	if err := ckt.SetupDevices(elements); err != nil {
		ckt.Destroy()
		return nil, fmt.Errorf("error device setup: %v", err)
	}
	return ckt, nil
}

func isGround(nodeName string) bool {
	return nodeName == "0" || nodeName == "gnd"
}

func (c *Circuit) AssignNodeBranchMaps(elements []netlist.Element) error {
	for _, elem := range elements {
		if len(elem.Nodes) != 2 {
			return fmt.Errorf("element %s: expected 2 nodes, got %d", elem.Name, len(elem.Nodes))
		}
		for _, nodeName := range elem.Nodes {
			if isGround(nodeName) {
				continue
			}
			if _, exists := c.nodeMap[nodeName]; !exists {
				idx := len(c.nodeMap) + 1
				c.nodeMap[nodeName] = idx
			}
		}
	}

	branchStart := len(c.nodeMap) + 1
	for _, elem := range elements {
		if elem.Type == "V" {
			if _, exists := c.branchMap[elem.Name]; exists {
				return fmt.Errorf("duplicate voltage source %s", elem.Name)
			}
			c.branchMap[elem.Name] = branchStart
			branchStart++
		}
	}

	c.numNodes = len(c.nodeMap)
	return nil
}

func (c *Circuit) CreateMatrix() error {
	matrixSize := len(c.nodeMap) + len(c.branchMap)
	if matrixSize == 0 {
		return fmt.Errorf("circuit %s has no unknowns", c.name)
	}
	mat, err := matrix.NewMatrix(matrixSize)
	if err != nil {
		return err
	}
	c.matrix = mat
	return nil
}

func (c *Circuit) SetupDevices(elements []netlist.Element) error {
	for _, elem := range elements {
		dev, err := netlist.CreateDevice(elem)
		if err != nil {
			return fmt.Errorf("creating device %s: %v", elem.Name, err)
		}

		// Node index
		nodeIndices := make([]int, len(elem.Nodes))
		for i, nodeName := range elem.Nodes {
			if isGround(nodeName) {
				continue
			}
			nodeIndices[i] = c.nodeMap[nodeName]
		}
		dev.SetNodes(nodeIndices)

		if v, ok := dev.(device.BranchDevice); ok {
			v.SetBranchIndex(c.branchMap[elem.Name])
		}

		c.devices = append(c.devices, dev)
	}

	// Initial stamp
	if err := c.Stamp(); err != nil {
		return fmt.Errorf("initial stamping failed: %v", err)
	}
	c.matrix.SetupElements()

	return nil
}

func (c *Circuit) Stamp() error {
	for _, dev := range c.devices {
		if err := dev.Stamp(c.matrix); err != nil {
			return fmt.Errorf("stamping device %s: %v", dev.GetName(), err)
		}
	}
	return nil
}

func (c *Circuit) GetMatrix() *matrix.CircuitMatrix {
	return c.matrix
}

func (c *Circuit) GetBranchMap() map[string]int {
	return c.branchMap
}

// GetSolution names the solved unknowns: V(node) for node voltages, I(name)
// for source and resistor currents. Source currents are reported as
// delivered by the source.
func (c *Circuit) GetSolution() map[string]float64 {
	solution := make(map[string]float64)
	matrixSolution := c.matrix.Solution()

	// Node voltage
	for name, idx := range c.nodeMap {
		solution[fmt.Sprintf("V(%s)", name)] = matrixSolution[idx]
	}

	// Branch current of voltage source
	for name, idx := range c.branchMap {
		solution[fmt.Sprintf("I(%s)", name)] = -matrixSolution[idx]
	}

	// V = IR -> I = V/R
	for _, dev := range c.devices {
		if dev.GetType() == "R" {
			nodes := dev.GetNodes()
			current := (c.GetNodeVoltage(nodes[0]) - c.GetNodeVoltage(nodes[1])) / dev.GetValue()
			solution[fmt.Sprintf("I(%s)", dev.GetName())] = current
		}
	}

	return solution
}

func (c *Circuit) Destroy() {
	if c.matrix != nil {
		c.matrix.Destroy()
	}
}

func (c *Circuit) Name() string {
	return c.name
}

func (c *Circuit) GetNumNodes() int {
	return c.numNodes
}

func (c *Circuit) GetNodeVoltage(nodeIdx int) float64 {
	if nodeIdx <= 0 { // ground or invalid node
		return 0
	}

	solution := c.matrix.Solution()
	if nodeIdx >= len(solution) {
		return 0
	}

	return solution[nodeIdx]
}

// NodeVoltage looks a node up by name; ground and unknown names read 0.
func (c *Circuit) NodeVoltage(name string) float64 {
	if isGround(name) {
		return 0
	}
	return c.GetNodeVoltage(c.nodeMap[name])
}
