package attenuator

import "math"

// Result is a finished design: the rounded cascade, its resistance envelope
// and the achieved attenuation.
type Result struct {
	Cascade   *Cascade
	Envelopes []Envelope // Per node, 0..n+1

	Input  Range // Resistance seen at the input of stage 1
	Output Range // Resistance seen at the output of stage n

	RawTotalDb float64 // Signed attenuation, all stages engaged
	TotalDb    float64 // RawTotalDb rounded to 0.1 dB
	StepDb     float64 // Average step, -RawTotalDb / (2^n - 1)
	Positions  int
}

func (r *Result) Config() Config { return r.Cascade.cfg }

// Design validates cfg and runs synthesis, both bound passes, accumulation
// and the per-stage error analysis in that order.
func Design(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := Synthesize(cfg)
	env := Propagate(c)
	n := c.Len()

	raw := TotalAttenuation(c)
	step := AverageStep(raw, n)
	StageErrors(c, env, step)

	return &Result{
		Cascade:    c,
		Envelopes:  env,
		Input:      env[1].Input,
		Output:     env[n].Output,
		RawTotalDb: raw,
		TotalDb:    math.Round(raw*10) / 10,
		StepDb:     step,
		Positions:  cfg.Positions(),
	}, nil
}
