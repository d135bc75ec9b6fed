// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
	"github.com/ik5/audfx/internal/audiotest"
)

func newBuffer(t *testing.T, sampleRate int, channels ...[]float32) *audio.Buffer {
	t.Helper()

	buf, err := audio.NewBufferFrom(sampleRate, channels)
	require.NoError(t, err)
	return buf
}

func TestSummarizePeaks(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, 8000,
		[]float32{0.1, -0.5, 0.2, 0.3, 0, 0, -0.9},
		[]float32{0.2, 0.1, -0.6, 0, 0, 0.05, 0},
	)

	peaks, err := Summarize(buf, 3)
	require.NoError(t, err)

	// 7 frames over 3 bins: 3, 3 and 1 frames.
	assert.InDeltaSlice(t, []float64{0.6, 0.3, 0.9}, peaks, 1e-7)
}

func TestSummarizeBinCount(t *testing.T) {
	t.Parallel()

	for _, frames := range []int{1, 2, 5, 100, 1001} {
		buf := newBuffer(t, 8000, audiotest.Planar(2, frames, audiotest.Sine(8000, 300))...)

		for _, bins := range []int{1, 2, 3, 7, 64, 2000} {
			peaks, err := Summarize(buf, bins)
			require.NoError(t, err)
			require.Len(t, peaks, bins, "frames=%d bins=%d", frames, bins)

			for _, p := range peaks {
				assert.GreaterOrEqual(t, p, 0.0)
			}
		}
	}
}

func TestSummarizeMoreBinsThanFrames(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, 8000, []float32{-0.5, 0.25})

	peaks, err := Summarize(buf, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25, 0, 0, 0}, peaks)
}

func TestSummarizeErrors(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, 8000, []float32{1, 2, 3})

	_, err := Summarize(buf, 0)
	assert.ErrorIs(t, err, effects.ErrEmptyBuffer)

	_, err = Summarize(buf, -4)
	assert.ErrorIs(t, err, effects.ErrEmptyBuffer)

	empty, err := audio.NewBuffer(8000, 1, 0)
	require.NoError(t, err)
	_, err = Summarize(empty, 10)
	assert.ErrorIs(t, err, effects.ErrEmptyBuffer)

	_, err = Summarize(nil, 10)
	assert.ErrorIs(t, err, effects.ErrInvalidParameter)
}

func TestSummarizeHugeBinCount(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, 8000, []float32{0.5, -0.25, 0.75})

	for _, bins := range []int{MaxBins + 1, math.MaxInt - 1, math.MaxInt} {
		_, err := Summarize(buf, bins)
		assert.ErrorIs(t, err, effects.ErrInvalidParameter, "bins=%d", bins)
	}

	_, err := SummarizeRange(buf, 0, math.MaxInt, math.MaxInt)
	assert.ErrorIs(t, err, effects.ErrInvalidParameter)
}

func TestSummarizeRange(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, 8000, []float32{0.9, 0.1, 0.2, 0.3, 0.4, 0.8, 0.7})

	peaks, err := SummarizeRange(buf, 1, 5, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.4}, peaks, 1e-7)

	// Window hanging off both ends is clamped to the buffer.
	clamped, err := SummarizeRange(buf, -10, 100, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.9}, clamped, 1e-7)

	_, err = SummarizeRange(buf, 5, 5, 4)
	assert.ErrorIs(t, err, effects.ErrEmptyBuffer)

	_, err = SummarizeRange(buf, 6, 2, 4)
	assert.ErrorIs(t, err, effects.ErrEmptyBuffer)
}

func TestSummarizeMatchesFullRange(t *testing.T) {
	t.Parallel()

	buf := newBuffer(t, 8000, audiotest.Planar(1, 500, audiotest.Ramp(0.002))...)

	a, err := Summarize(buf, 17)
	require.NoError(t, err)
	b, err := SummarizeRange(buf, 0, buf.Frames(), 17)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func BenchmarkSummarize(b *testing.B) {
	buf, err := audio.NewBufferFrom(44100, audiotest.Planar(2, 44100*60, audiotest.Sine(44100, 440)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Summarize(buf, 1200)
	}
}
