// SPDX-License-Identifier: EPL-2.0

// Package effects implements offline, whole-buffer audio effects.
//
// Every effect is a plain function from an input buffer and a settings value
// to a newly allocated output buffer:
//
//	out, err := effects.Equalize(buf, effects.EQSettings{Bass: 4, Treble: -2})
//	out, err := effects.Fade(buf, effects.FadeSettings{FadeInSeconds: 0.5})
//	out, err := effects.Reverse(buf)
//	out, err := effects.Merge(a, b, effects.MergeSettings{CrossfadeSeconds: 1, Volume1: 1, Volume2: 1})
//	out, err := effects.SidechainCompress(buf, effects.DefaultSidechainSettings())
//
// Inputs are never modified and nothing is retained between calls, so
// independent calls may run concurrently.
//
// # Settings
//
// Out-of-range settings that still have an obvious meaning (EQ gains, fade
// and crossfade lengths, volumes, ducking depth) are clamped silently.
// Settings that do not (NaN or infinite values, a ratio below 1, a negative
// attack or release) fail with ErrInvalidParameter.
//
// # Errors
//
// Failures are *Error values whose Kind is one of ErrInvalidParameter,
// ErrShapeMismatch or ErrEmptyBuffer, so errors.Is works on the kind:
//
//	if errors.Is(err, effects.ErrShapeMismatch) {
//		b, err = audio.Resample(b, a.SampleRate())
//	}
//
// # Background execution
//
// Run moves one invocation onto a goroutine and lets the caller give up on it
// through a context. Chain composes single-buffer effects; EQSettings,
// FadeSettings, SidechainSettings, Reverser and Appender all satisfy
// Processor.
package effects
