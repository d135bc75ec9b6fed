// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// MinLinear is the floor applied by LinearToDB so silence maps to -80 dB
// instead of -Inf.
const MinLinear = 1e-4

// DBToLinear converts decibels to a linear amplitude factor (20·log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude to decibels. Inputs below MinLinear,
// including zero and negative values, are floored to MinLinear.
func LinearToDB(x float64) float64 {
	return 20 * math.Log10(math.Max(x, MinLinear))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
