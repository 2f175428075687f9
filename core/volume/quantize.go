// core/volume/quantize.go
package volume

import "math"

// Step is the smallest increment the acoustic dispenser can place, in µL.
const Step = 0.025

// MaxReaction is the fixed total volume of one reaction, in µL. Reagent
// volumes above this are a hard error; the shortfall below it is filled
// with diluent.
const MaxReaction = 2.5

// precision keeps quantized values stable across repeated float math.
const precision = 3

// Quantize rounds v to the nearest multiple of Step at 3-decimal
// precision. Idempotent: Quantize(Quantize(v)) == Quantize(v).
func Quantize(v float64) float64 {
	q := Step * math.Round(v/Step)
	p := math.Pow(10, precision)
	return math.Round(q*p) / p
}

// Nanoliters converts a µL volume to the instrument's native unit.
func Nanoliters(v float64) float64 { return v * 1000 }
