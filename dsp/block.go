// SPDX-License-Identifier: EPL-2.0

package dsp

// Widen copies src into a float64 work buffer, reusing dst when it is large
// enough.
func Widen(dst []float64, src []float32) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]

	for i, s := range src {
		dst[i] = float64(s)
	}

	return dst
}

// Narrow writes the float64 work buffer back into dst. Only min(len(dst),
// len(src)) samples are written.
func Narrow(dst []float32, src []float64) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i])
	}
}
