package attenuator

import (
	"math"

	"github.com/edp1096/toy-attenuator/pkg/util"
)

// StageRecord is the display form of one stage.
type StageRecord struct {
	Index         int
	Top           string // Rounded series resistor
	Bottom        string // Rounded shunt resistor
	TopRef        string
	BottomRef     string
	TopNominal    string
	BottomNominal string
	NominalDb     string
	ErrorDb       string
}

// Summary is the display form of the whole network.
type Summary struct {
	FinalLoad     string
	MinInput      string
	MaxInput      string
	MinOutput     string
	MaxOutput     string
	AttenuationDb float64 // Magnitude, 0.1 dB resolution
	Positions     int
	StepDb        float64 // 0.001 dB resolution
}

func (r *Result) Records() []StageRecord {
	stages := r.Cascade.Stages()
	records := make([]StageRecord, 0, len(stages))
	for _, s := range stages {
		records = append(records, StageRecord{
			Index:         s.Index,
			Top:           util.FormatResistance(s.Top),
			Bottom:        util.FormatResistance(s.Bottom),
			TopRef:        s.TopRef(),
			BottomRef:     s.BottomRef(),
			TopNominal:    util.FormatResistance(s.TopNominal),
			BottomNominal: util.FormatResistance(s.BottomNominal),
			NominalDb:     util.FormatDb(s.NominalDb),
			ErrorDb:       util.FormatDb(s.ErrorDb),
		})
	}
	return records
}

func (r *Result) Summary() Summary {
	return Summary{
		FinalLoad:     util.FormatResistance(r.Cascade.Load().Bottom),
		MinInput:      util.FormatResistance(r.Input.Min),
		MaxInput:      util.FormatResistance(r.Input.Max),
		MinOutput:     util.FormatResistance(r.Output.Min),
		MaxOutput:     util.FormatResistance(r.Output.Max),
		AttenuationDb: math.Abs(r.TotalDb),
		Positions:     r.Positions,
		StepDb:        math.Round(r.StepDb*1000) / 1000,
	}
}
