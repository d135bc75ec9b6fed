// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audfx/internal/audiotest"

// Thin aliases so the tests in this package read like the generators they use.

func newMockSource(sampleRate, channels, frames int, waveform func(sample int, channel int) float32) *audiotest.MockSource {
	return audiotest.NewMockSource(sampleRate, channels, frames, waveform)
}

func newSilentSource(sampleRate, channels, frames int) *audiotest.MockSource {
	return audiotest.NewSilentSource(sampleRate, channels, frames)
}

func newSineSource(sampleRate, channels, frames int, frequency float64) *audiotest.MockSource {
	return audiotest.NewSineSource(sampleRate, channels, frames, frequency)
}

func newConstantSource(sampleRate, channels, frames int, value float32) *audiotest.MockSource {
	return audiotest.NewConstantSource(sampleRate, channels, frames, value)
}

func mustBuffer(sampleRate int, channels [][]float32) *Buffer {
	b, err := NewBufferFrom(sampleRate, channels)
	if err != nil {
		panic(err)
	}
	return b
}
