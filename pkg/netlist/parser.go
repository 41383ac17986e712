package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-attenuator/pkg/device"
)

type AnalysisType int

const (
	AnalysisNone AnalysisType = iota
	AnalysisOP
)

type NetlistData struct {
	Elements []Element     // Circuit elements
	Nodes    map[string]int // Node name and index
	Analysis AnalysisType   // Analysis type
	Title    string         // Circuit title
}

type Element struct {
	Type   string            // Part type (R, V)
	Name   string            // Part name
	Nodes  []string          // Node names
	Value  float64           // Part value
	Params map[string]string // Parameter values
}

// SPICE scale factors, matched case-insensitively. "m" is milli, "meg" mega.
var unitMap = map[string]float64{
	"t":   1e12,  // tera
	"g":   1e9,   // giga
	"meg": 1e6,   // mega
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var (
	valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[tgkmunpf])?[a-z]*$`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Parse reads a SPICE deck of resistors and DC voltage sources. The first
// line is the title, "*" starts a comment and "+" continues the previous
// line.
func Parse(input string) (*NetlistData, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	netlistData := &NetlistData{
		Nodes: make(map[string]int),
	}

	// Title or comment
	if scanner.Scan() {
		netlistData.Title = strings.TrimPrefix(scanner.Text(), "*")
		netlistData.Title = strings.TrimSpace(netlistData.Title)
	}

	var currentLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Inline comment
		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if len(line) == 0 {
			continue
		}

		if strings.HasPrefix(line, "+") { // Line continue
			currentLine += " " + strings.TrimSpace(line[1:])
			continue
		}

		if currentLine != "" {
			if err := parseLine(netlistData, currentLine); err != nil {
				return nil, err
			}
		}
		currentLine = line
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading netlist: %v", err)
	}

	// Process final line if exists
	if currentLine != "" {
		if err := parseLine(netlistData, currentLine); err != nil {
			return nil, err
		}
	}

	return netlistData, nil
}

func parseLine(netlistData *NetlistData, line string) error {
	line = spaceRe.ReplaceAllString(line, " ")

	if strings.HasPrefix(line, ".") {
		return parseDotOperator(netlistData, line)
	}

	element, err := parseElement(line)
	if err != nil {
		return err
	}

	netlistData.Elements = append(netlistData.Elements, *element)
	for _, node := range element.Nodes {
		if _, exists := netlistData.Nodes[node]; !exists {
			netlistData.Nodes[node] = len(netlistData.Nodes)
		}
	}
	return nil
}

func parseDotOperator(netlistData *NetlistData, line string) error {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ".op":
		netlistData.Analysis = AnalysisOP
	case ".end":
	case ".title":
		netlistData.Title = strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
	default:
		return fmt.Errorf("unsupported control line: %s", fields[0])
	}
	return nil
}

func parseElement(line string) (*Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid element format: %s", line)
	}

	elem := &Element{
		Name:   fields[0],
		Type:   strings.ToUpper(string(fields[0][0])),
		Nodes:  []string{fields[1], fields[2]},
		Params: make(map[string]string),
	}

	switch elem.Type {
	case "R":
		value, err := ParseValue(fields[3])
		if err != nil {
			return nil, err
		}
		elem.Value = value

	case "V":
		words := fields[3:]
		if strings.EqualFold(words[0], "DC") {
			words = words[1:]
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("missing DC value: %s", line)
		}
		value, err := ParseValue(words[0])
		if err != nil {
			return nil, err
		}
		elem.Params["type"] = "dc"
		elem.Value = value

	default:
		return nil, fmt.Errorf("unsupported element type %s: %s", elem.Type, elem.Name)
	}

	return elem, nil
}

func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(val)))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	// factor
	if multiplier, ok := unitMap[matches[2]]; ok {
		num *= multiplier
	}

	return num, nil
}

func CreateDevice(elem Element) (device.Device, error) {
	switch elem.Type {
	case "R":
		return device.NewResistor(elem.Name, elem.Nodes, elem.Value), nil
	case "V":
		return device.NewDCVoltageSource(elem.Name, elem.Nodes, elem.Value), nil
	}
	return nil, fmt.Errorf("unsupported device type: %s", elem.Type)
}
