// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// TimeCoefficient returns the one-pole smoothing coefficient for a time
// constant in seconds. Zero (or negative) time yields 0: instant response.
func TimeCoefficient(seconds float64, sampleRate int) float64 {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}

	return math.Exp(-1 / (seconds * float64(sampleRate)))
}

// Envelope follows the rectified amplitude of src with separate attack and
// release time constants and writes one value per sample into dst, which is
// grown if needed and returned.
//
// The follower starts from 0 on every call; nothing carries over between
// buffers. While |x| is above the envelope the attack coefficient applies,
// otherwise the release coefficient does:
//
//	env = a + (env - a) * coeff
func Envelope(dst []float64, src []float32, sampleRate int, attack, release float64) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]

	attackCoeff := TimeCoefficient(attack, sampleRate)
	releaseCoeff := TimeCoefficient(release, sampleRate)

	env := 0.0
	for i, x := range src {
		a := math.Abs(float64(x))
		coeff := releaseCoeff
		if a > env {
			coeff = attackCoeff
		}
		env = a + (env-a)*coeff
		dst[i] = env
	}

	return dst
}
