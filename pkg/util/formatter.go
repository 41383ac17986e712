package util

import (
	"fmt"
	"math"
	"strconv"
)

// Prefix ladder from 1e-6 to 1e12, "R" marks plain ohms.
var multipliers = [...]string{"u", "m", "R", "k", "M", "G", "T"}

// FormatResistance renders a value as mantissa plus one prefix letter,
// e.g. 562R, 1.07k, 15.839M. Zero is "0", negatives "-??", magnitudes
// below 1e-6 "~0" and above 1e13 "inf".
func FormatResistance(value float64) string {
	switch {
	case value == 0:
		return "0"
	case value < 0 || math.IsNaN(value):
		return "-??"
	case math.IsInf(value, 1):
		return "inf"
	}

	powOf10 := int(math.Floor(math.Log10(value) + 1e-9))
	if powOf10 < -6 {
		return "~0"
	}
	if powOf10 > 13 {
		return "inf"
	}

	powOf1000 := int(math.Floor(float64(powOf10)/3 + 1e-6))
	norm := value / math.Pow(10, float64(powOf1000*3))
	rounded := math.Round(norm*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64) + multipliers[powOf1000+2]
}

// FormatDb prints a decibel figure in its shortest form, "0.5 dB".
func FormatDb(value float64) string {
	if value == 0 {
		value = 0 // drop negative zero
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " dB"
}

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}
