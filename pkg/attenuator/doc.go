// Package attenuator synthesizes and analyzes binary-weighted resistive step
// attenuators built as a cascade of switched voltage dividers.
//
// A design is computed in one pass:
//
//   - Synthesize derives each stage's series (top) and shunt (bottom) resistor
//     for the wanted per-stage ratio and snaps both to the chosen E-series.
//   - InputBounds and OutputBounds walk the cascade in opposite directions and
//     return the resistance envelope seen at every node over all 2^stages
//     switch positions.
//   - TotalAttenuation composes the divider gains of the fully engaged network.
//   - StageErrors compares every stage against an ideal linear step.
//
// Two topologies are supported. ConstInput keeps the input resistance fixed
// and needs a load equal to the stage resistance; ConstOutput keeps the output
// resistance fixed and is terminated by a high load.
//
// The numerical core never fails: degenerate denominators are floored at
// 1e-12 and non-positive gains contribute a -200 dB sentinel.
package attenuator
