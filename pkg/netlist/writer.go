package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write emits elements as a SPICE deck ending in .op/.end. Values are
// written in full precision so Parse reads them back unchanged.
func Write(w io.Writer, title string, elements []Element) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "* %s\n", title)
	for _, elem := range elements {
		value := strconv.FormatFloat(elem.Value, 'g', -1, 64)
		switch elem.Type {
		case "V":
			fmt.Fprintf(bw, "%s %s %s DC %s\n", elem.Name, elem.Nodes[0], elem.Nodes[1], value)
		case "R":
			fmt.Fprintf(bw, "%s %s %s %s\n", elem.Name, elem.Nodes[0], elem.Nodes[1], value)
		default:
			return fmt.Errorf("unsupported element type %s: %s", elem.Type, elem.Name)
		}
	}
	fmt.Fprintln(bw, ".op")
	fmt.Fprintln(bw, ".end")

	return bw.Flush()
}
