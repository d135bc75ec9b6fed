// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/internal/audiotest"
)

func newBuffer(t testing.TB, sampleRate int, channels ...[]float32) *audio.Buffer {
	t.Helper()

	buf, err := audio.NewBufferFrom(sampleRate, channels)
	require.NoError(t, err)
	return buf
}

func waveBuffer(t testing.TB, sampleRate, channels, frames int, w audiotest.Waveform) *audio.Buffer {
	t.Helper()
	return newBuffer(t, sampleRate, audiotest.Planar(channels, frames, w)...)
}

func filled(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func channels(buf *audio.Buffer) [][]float32 {
	out := make([][]float32, buf.Channels())
	for c := range out {
		out[c] = append([]float32(nil), buf.Channel(c)...)
	}
	return out
}

func requireSameShape(t *testing.T, want, got *audio.Buffer) {
	t.Helper()

	require.Equal(t, want.SampleRate(), got.SampleRate(), "sample rate")
	require.Equal(t, want.Channels(), got.Channels(), "channels")
	require.Equal(t, want.Frames(), got.Frames(), "frames")
}
