// SPDX-License-Identifier: EPL-2.0

// Package audfx is an offline audio effects toolkit.
//
// The effects themselves live in the effects and waveform packages and work
// on decoded audio.Buffer values: a buffer and a settings record go in, a
// freshly allocated buffer comes out. This package ties them to files.
//
// # Supported Formats
//
// Decoding, selected by file extension:
//   - WAV (.wav, .wave), integer PCM at 8, 16, 24 or 32 bits, via formats/wav
//   - MP3 (.mp3) via formats/mp3
//   - Ogg Vorbis (.ogg, .oga) via formats/vorbis
//   - AIFF (.aiff, .aif) via formats/aiff
//
// Encoding is WAV only.
//
// # Quick Start
//
//	buf, err := audfx.DecodeFile("song.mp3")
//	if err != nil {
//	    // errors.Is(err, audfx.ErrUnknownFormat) ...
//	}
//
//	out, err := effects.Equalize(buf, effects.EQSettings{Bass: 6, Treble: -3})
//	if err != nil {
//	    // errors.Is(err, effects.ErrInvalidParameter) ...
//	}
//
//	err = audfx.EncodeFile("song-eq.wav", out, 16)
//
// # Rates and Layouts
//
// Effects that take two buffers refuse mismatched sample rates rather than
// resampling behind the caller's back. Conform runs a buffer through the
// audio package's cubic Resampler and MonoMixer:
//
//	b, err = audfx.Conform(b, a.SampleRate(), false)
//
// # Custom Registries
//
// NewRegistry returns a fresh audio.Registry with every bundled decoder;
// register more and use DecodeFileWith:
//
//	reg := audfx.NewRegistry()
//	reg.Register("flac", myFlacDecoder{})
//	buf, err := audfx.DecodeFileWith(reg, "take.flac")
package audfx
