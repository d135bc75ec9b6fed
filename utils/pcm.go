// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// CheckBitDepth accepts the integer PCM depths handled here: 8, 16, 24 and 32.
func CheckBitDepth(bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// FullScale is 2^(bitDepth-1), the magnitude of the most negative sample.
func FullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

// IntToFloat32 maps a signed integer sample to [-1, 1).
func IntToFloat32(v, bitDepth int) float32 {
	return float32(float64(v) / FullScale(bitDepth))
}

// Float32ToInt maps x to a signed integer sample, clipping to [-1, 1] and
// rounding to nearest. -1 maps to the most negative value and 1 to the most
// positive one.
func Float32ToInt(x float32, bitDepth int) int {
	full := FullScale(bitDepth)
	v := math.Max(-1, math.Min(1, float64(x)))

	if v >= 0 {
		return int(math.Round(v * (full - 1)))
	}
	return int(math.Round(v * full))
}

// Float32ToInt16 is Float32ToInt at 16 bits.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToInt(x, 16))
}

// PCMToFloat32 converts len(src) signed samples into dst.
func PCMToFloat32(dst []float32, src []int, bitDepth int) {
	scale := 1 / FullScale(bitDepth)
	for i, v := range src {
		dst[i] = float32(float64(v) * scale)
	}
}

// Float32ToPCM converts len(src) float samples into signed integers in dst.
func Float32ToPCM(dst []int, src []float32, bitDepth int) {
	for i, x := range src {
		dst[i] = Float32ToInt(x, bitDepth)
	}
}
