// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic signal generators shared by tests.
// It does not import the audio package so that package's own tests can use it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the sample value for a frame index and channel.
type Waveform func(frame int, channel int) float32

// MockSource streams a generated waveform as interleaved samples. It satisfies
// audio.Source.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // frames generated so far
	waveform   Waveform
}

func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Silence)
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Sine(sampleRate, frequency))
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Constant(value))
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}

	m.generated += n
	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}

// Silence is the all-zero waveform.
func Silence(int, int) float32 { return 0 }

// Constant holds value on every channel.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Sine is a unit-amplitude sine at frequency Hz, identical on every channel.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Ramp rises linearly by step per frame, offset by channel*step/2 so channels
// stay distinguishable.
func Ramp(step float32) Waveform {
	return func(frame int, channel int) float32 {
		return float32(frame)*step + float32(channel)*step/2
	}
}

// Burst is silence with a constant block of amplitude between start and end
// frames, the shape of a kick drum hit for ducking tests.
func Burst(start, end int, amplitude float32) Waveform {
	return func(frame int, _ int) float32 {
		if frame >= start && frame < end {
			return amplitude
		}
		return 0
	}
}

// Planar renders a waveform into per-channel slices.
func Planar(channels, frames int, waveform Waveform) [][]float32 {
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for f := range frames {
			out[c][f] = waveform(f, c)
		}
	}

	return out
}
