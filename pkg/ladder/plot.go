package ladder

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// The output format follows the file extension (.png, .svg, .pdf, ...).

func (s *Sweep) SaveErrorPlot(path string) error {
	return s.save(path, "Attenuation error per position", "Error (dB)", func(m Measurement) float64 {
		return m.ErrorDb
	})
}

func (s *Sweep) SaveAttenuationPlot(path string) error {
	return s.save(path, "Attenuation per position", "Attenuation (dB)", func(m Measurement) float64 {
		return m.AttenuationDb
	})
}

func (s *Sweep) save(path, title, yLabel string, y func(Measurement) float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.Points))
	for i, m := range s.Points {
		pts[i].X = float64(m.Position)
		pts[i].Y = y(m)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("creating plot line: %v", err)
	}
	line.Color = color.RGBA{R: 196, G: 32, B: 32, A: 255}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot %s: %v", path, err)
	}
	return nil
}
