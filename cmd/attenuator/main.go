package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/edp1096/toy-attenuator/pkg/attenuator"
	"github.com/edp1096/toy-attenuator/pkg/eseries"
	"github.com/edp1096/toy-attenuator/pkg/ladder"
	"github.com/edp1096/toy-attenuator/pkg/netlist"
)

const typeHelp = `Attenuator type: 0 (constant input) or 1 (constant output).
Constant input keeps the resistance between the input terminals fixed while the
output resistance varies with the selected attenuation. It needs a final load
equal to the stage resistance, which is included in the design.
Constant output keeps the output resistance fixed and lets the input resistance
vary. Its first stage is wired differently to set the output resistance. A final
load causes extra attenuation that the totals do not include, but the uniformity
of the steps holds even for a relatively low load.`

type options struct {
	cfg     attenuator.Config
	sweep   bool
	plot    string
	netlist int
}

func parseFlags(args []string) (options, error) {
	def := attenuator.DefaultConfig()
	fs := flag.NewFlagSet("attenuator", flag.ContinueOnError)

	stages := fs.Int("stages", def.Stages, "Number of stages")
	series := fs.String("resistorAccuracy", "96", "E-Series (0, 12, 24, 96)")
	topology := fs.String("attenuatorType", "0", typeHelp)
	resistance := fs.Float64("resistance", def.Resistance, "Stage constant resistance in ohms")
	step := fs.Float64("attenuationSteps", def.StepDb, "Stage attenuation in dB")
	sweep := fs.Bool("sweep", false, "Solve every switch position and report the measured staircase")
	plotPath := fs.String("plot", "", "Write the per-position error plot to this file (implies -sweep)")
	deck := fs.Int("netlist", -1, "Print the SPICE netlist of this switch position and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	s, err := eseries.ParseSeries(*series)
	if err != nil {
		return options{}, err
	}
	t, err := attenuator.ParseTopology(*topology)
	if err != nil {
		return options{}, err
	}

	opts := options{
		cfg: attenuator.Config{
			Stages:     *stages,
			Series:     s,
			Topology:   t,
			Resistance: *resistance,
			StepDb:     *step,
		},
		sweep:   *sweep || *plotPath != "",
		plot:    *plotPath,
		netlist: *deck,
	}
	return opts, opts.cfg.Validate()
}

func main() {
	log.SetFlags(0)

	opts, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	res, err := attenuator.Design(opts.cfg)
	if err != nil {
		log.Fatalf("Design failed: %v", err)
	}

	if opts.netlist >= 0 {
		if opts.netlist >= res.Positions {
			log.Fatalf("Position %d out of range (0..%d)", opts.netlist, res.Positions-1)
		}
		elements, err := ladder.Build(res, uint(opts.netlist))
		if err != nil {
			log.Fatalf("Error building netlist: %v", err)
		}
		title := fmt.Sprintf("%d-stage %s attenuator, position %d", opts.cfg.Stages, opts.cfg.Topology, opts.netlist)
		if err := netlist.Write(os.Stdout, title, elements); err != nil {
			log.Fatalf("Error writing netlist: %v", err)
		}
		return
	}

	printDesign(os.Stdout, res)

	if !opts.sweep {
		return
	}
	sw, err := ladder.Run(res)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	printSweep(os.Stdout, sw)

	if opts.plot != "" {
		if err := sw.SaveErrorPlot(opts.plot); err != nil {
			log.Fatalf("Plot failed: %v", err)
		}
		fmt.Printf("Error plot written to %s\n", opts.plot)
	}
}
