package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-attenuator/pkg/attenuator"
	"github.com/edp1096/toy-attenuator/pkg/eseries"
	"github.com/edp1096/toy-attenuator/pkg/ladder"
)

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, attenuator.DefaultConfig(), opts.cfg)
	assert.False(t, opts.sweep)
	assert.Equal(t, -1, opts.netlist)
}

func TestParseFlags_Values(t *testing.T) {
	opts, err := parseFlags([]string{
		"--stages", "4", "--resistorAccuracy", "24", "--attenuatorType", "1",
		"--resistance", "600", "--attenuationSteps", "1", "--plot", "err.png",
	})
	require.NoError(t, err)
	assert.Equal(t, attenuator.Config{
		Stages: 4, Series: eseries.E24, Topology: attenuator.ConstOutput,
		Resistance: 600, StepDb: 1,
	}, opts.cfg)
	assert.True(t, opts.sweep)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := parseFlags([]string{"--resistorAccuracy", "48"})
	require.ErrorIs(t, err, eseries.ErrUnknownSeries)

	_, err = parseFlags([]string{"--attenuatorType", "2"})
	require.ErrorIs(t, err, attenuator.ErrUnknownTopology)

	_, err = parseFlags([]string{"--stages", "0"})
	require.ErrorIs(t, err, attenuator.ErrInvalidStages)
}

func TestPrintDesign(t *testing.T) {
	res, err := attenuator.Design(attenuator.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	printDesign(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "562R (R1)")
	assert.Contains(t, out, "169k (R2)")
	assert.Contains(t, out, "Attenuator Maximum Attenuation: 127.6 dB")
	assert.Contains(t, out, "Number of Attenuator Positions: 256")
	assert.Contains(t, out, "Attenuator Step Size: 0.5 dB")
	assert.Contains(t, out, "Minimum Input Resistance: 9.933k")
}

func TestPrintSweep(t *testing.T) {
	cfg := attenuator.DefaultConfig()
	cfg.Stages = 2
	res, err := attenuator.Design(cfg)
	require.NoError(t, err)
	sw, err := ladder.Run(res)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSweep(&buf, sw)
	assert.Contains(t, buf.String(), "Simulated Positions (4):")
	assert.Contains(t, buf.String(), "Fitted Step:")
}
