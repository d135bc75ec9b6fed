// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample data model and the streaming plumbing around it.
//
// # Buffer
//
// Buffer is the unit every effect consumes and produces: a fixed number of
// planar float32 channels of equal length at one sample rate.
//
//	buf, err := audio.NewBufferFrom(44100, [][]float32{left, right})
//	fmt.Println(buf.Channels(), buf.Frames(), buf.Duration())
//
// Effects never modify a Buffer they did not allocate. Channel returns the
// backing slice, so code that receives a Buffer must treat it as read-only.
//
// # Source Interface
//
// Decoders in the formats subpackages produce a Source, a stream of
// interleaved samples. ReadAll drains one into a Buffer, and Buffer.Source
// goes the other way:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
//
// # Conversions
//
// Effects refuse mismatched sample rates rather than silently resampling.
// Callers that want to combine buffers at different rates convert explicitly:
//
//	conformed, err := audio.Resample(buf, 48000) // cubic Resampler
//	mono, err := audio.Downmix(buf)              // MonoMixer
//
// The Resampler low-passes the source just under the new Nyquist frequency
// before it interpolates down, so a 44.1 kHz file conformed to 8 kHz does
// not pick up aliased tones.
//
// # Format Registry
//
// The registry maps format keys (file extensions work, with or without the
// dot) to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(".WAV")
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Effects may push values
// past that range; clipping happens when a Buffer is encoded back to PCM.
package audio
