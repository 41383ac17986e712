// Package ladder cross-checks an attenuator design by solving the rounded
// network for individual switch positions with modified nodal analysis.
//
// Bit i-1 of a position engages stage i: its series resistor sits in the
// signal path and its shunt resistor goes to ground. A bypassed stage shorts
// the series resistor and leaves the shunt open. In the const-output
// topology stage 1 is never bypassed.
package ladder
