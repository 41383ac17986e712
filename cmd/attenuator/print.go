package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/edp1096/toy-attenuator/pkg/attenuator"
	"github.com/edp1096/toy-attenuator/pkg/ladder"
	"github.com/edp1096/toy-attenuator/pkg/util"
)

const tableWidth = 130

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func printDesign(w io.Writer, res *attenuator.Result) {
	fmt.Fprintln(w, "\nAttenuator Design Calculation Results:")
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
	fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
		center("Resistor Stage", 14), center("A (common)", 16), center("B (common)", 16),
		center("A (nominal)", 16), center("B (nominal)", 16), center("Attenuation", 12),
		center("Attenuation Error", 18))
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	for _, r := range res.Records() {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
			center(fmt.Sprint(r.Index), 14),
			center(fmt.Sprintf("%s (%s)", r.Top, r.TopRef), 16),
			center(fmt.Sprintf("%s (%s)", r.Bottom, r.BottomRef), 16),
			center(r.TopNominal, 16),
			center(r.BottomNominal, 16),
			center(r.NominalDb, 12),
			center(r.ErrorDb, 18))
	}
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))

	s := res.Summary()
	fmt.Fprintf(w, "Final Load Resistor (Rout): %s\n", s.FinalLoad)
	fmt.Fprintf(w, "Minimum Input Resistance: %s\n", s.MinInput)
	fmt.Fprintf(w, "Maximum Input Resistance: %s\n", s.MaxInput)
	fmt.Fprintf(w, "Minimum Output Resistance: %s\n", s.MinOutput)
	fmt.Fprintf(w, "Maximum Output Resistance: %s\n", s.MaxOutput)
	fmt.Fprintf(w, "Attenuator Maximum Attenuation: %s\n", util.FormatDb(s.AttenuationDb))
	fmt.Fprintf(w, "Number of Attenuator Positions: %d\n", s.Positions)
	fmt.Fprintf(w, "Attenuator Step Size: %s\n", util.FormatDb(s.StepDb))
}

func printSweep(w io.Writer, sw *ladder.Sweep) {
	fmt.Fprintf(w, "\nSimulated Positions (%d):\n", len(sw.Points))
	fmt.Fprintln(w, "Position  Attenuation    Ideal        Error      Rin         Rout")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, m := range sw.Points {
		fmt.Fprintf(w, "%8d  %10.3f dB  %9.3f dB  %+7.3f dB  %-10s  %-10s\n",
			m.Position, m.AttenuationDb, m.IdealDb, m.ErrorDb,
			util.FormatResistance(m.InputResistance), util.FormatResistance(m.OutputResistance))
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "Measured Input Resistance: %s .. %s\n",
		util.FormatResistance(sw.Input.Min), util.FormatResistance(sw.Input.Max))
	fmt.Fprintf(w, "Measured Output Resistance: %s .. %s\n",
		util.FormatResistance(sw.Output.Min), util.FormatResistance(sw.Output.Max))
	fmt.Fprintf(w, "Worst Step Error: %+.3f dB\n", sw.WorstErrorDb)
	fmt.Fprintf(w, "Fitted Step: %.4f dB, offset %.4f dB, residual %.4f dB\n",
		sw.FitStepDb, sw.FitOffsetDb, sw.ResidualDb)
}
