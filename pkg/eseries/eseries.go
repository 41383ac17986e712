// Package eseries snaps resistor values to the IEC 60063 preferred number
// series (E12, E24, E96).
package eseries

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Series int

const (
	None Series = 0 // no rounding
	E12  Series = 12
	E24  Series = 24
	E96  Series = 96
)

var ErrUnknownSeries = errors.New("unknown E-series")

// Mantissas in [1, 10), one per log-spaced slot of the decade.
var tables = map[Series][]float64{
	E12: {1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2},
	E24: {
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
		3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	},
	E96: {
		1.00, 1.02, 1.05, 1.07, 1.10, 1.13, 1.15, 1.18, 1.21, 1.24, 1.27, 1.30,
		1.33, 1.37, 1.40, 1.43, 1.47, 1.50, 1.54, 1.58, 1.62, 1.65, 1.69, 1.74,
		1.78, 1.82, 1.87, 1.91, 1.96, 2.00, 2.05, 2.10, 2.15, 2.21, 2.26, 2.32,
		2.37, 2.43, 2.49, 2.55, 2.61, 2.67, 2.74, 2.80, 2.87, 2.94, 3.01, 3.09,
		3.16, 3.24, 3.32, 3.40, 3.48, 3.57, 3.65, 3.74, 3.83, 3.92, 4.02, 4.12,
		4.22, 4.32, 4.42, 4.53, 4.64, 4.75, 4.87, 4.99, 5.11, 5.23, 5.36, 5.49,
		5.62, 5.76, 5.90, 6.04, 6.19, 6.34, 6.49, 6.65, 6.81, 6.98, 7.15, 7.32,
		7.50, 7.68, 7.87, 8.06, 8.25, 8.45, 8.66, 8.87, 9.09, 9.31, 9.53, 9.76,
	},
}

func ParseSeries(s string) (Series, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "0", "NONE", "":
		return None, nil
	case "12", "E12":
		return E12, nil
	case "24", "E24":
		return E24, nil
	case "96", "E96":
		return E96, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownSeries, s)
}

func (s Series) Valid() bool {
	if s == None {
		return true
	}
	_, ok := tables[s]
	return ok
}

func (s Series) String() string {
	if s == None {
		return "none"
	}
	return fmt.Sprintf("E%d", int(s))
}

// Values returns a copy of the decade mantissas. None has no table.
func (s Series) Values() []float64 {
	return append([]float64(nil), tables[s]...)
}

// Round returns the member of the series nearest to value on a log scale.
func (s Series) Round(value float64) float64 {
	table, ok := tables[s]
	if !ok || value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return value
	}

	logval := math.Log10(value)
	decade := math.Floor(logval)
	n := len(table)

	idx := int(math.Round((logval - decade) * float64(n)))
	if idx >= n {
		// Top of the decade wraps to 1.0 of the next one
		idx -= n
		decade++
	}
	return table[idx] * math.Pow(10, decade)
}

func Round(value float64, s Series) float64 {
	return s.Round(value)
}
