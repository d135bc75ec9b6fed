// SPDX-License-Identifier: EPL-2.0

// Package dsp contains the numeric building blocks shared by the effects:
// decibel conversion, the attack/release envelope follower, biquad filter
// sections with RBJ shelf, peaking and low-pass designs, and helpers that move float32
// channel data in and out of float64 work buffers.
//
// Everything here is either a pure function or a small value whose state
// lives only as long as one call into an effect.
package dsp
