// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/internal/audiotest"
)

func f32to64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

func TestFadeInWholeBuffer(t *testing.T) {
	t.Parallel()

	in := newBuffer(t, 4, filled(4, 1), filled(4, 1))
	out, err := Fade(in, FadeSettings{FadeInSeconds: 1})
	require.NoError(t, err)

	requireSameShape(t, in, out)
	want := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	for c := range out.Channels() {
		assert.InDeltaSlice(t, want, f32to64(out.Channel(c)), 1e-6, "channel %d", c)
	}
}

func TestFadeOutMirrorsFadeIn(t *testing.T) {
	t.Parallel()

	in := newBuffer(t, 4, filled(4, 1))
	out, err := Fade(in, FadeSettings{FadeOutSeconds: 1})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1, 2.0 / 3, 1.0 / 3, 0}, f32to64(out.Channel(0)), 1e-6)
}

func TestFadeZeroIsIdentity(t *testing.T) {
	t.Parallel()

	in := waveBuffer(t, 44100, 2, 1000, audiotest.Sine(44100, 440))
	out, err := Fade(in, FadeSettings{})
	require.NoError(t, err)

	assert.Equal(t, channels(in), channels(out))
}

func TestFadeLeavesMiddleUntouched(t *testing.T) {
	t.Parallel()

	in := newBuffer(t, 10, filled(40, 0.5))
	out, err := Fade(in, FadeSettings{FadeInSeconds: 1, FadeOutSeconds: 0.5})
	require.NoError(t, err)

	ch := out.Channel(0)
	assert.Equal(t, float32(0), ch[0])
	assert.Equal(t, float32(0.5), ch[9], "fade-in reaches unity on its last frame")
	assert.Equal(t, filled(21, 0.5), ch[10:31])
	assert.Equal(t, float32(0.5), ch[35], "fade-out starts at unity")
	assert.Equal(t, float32(0), ch[39])
}

func TestFadeFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings FadeSettings
		rate     int
		frames   int
		wantIn   int
		wantOut  int
	}{
		{"no fades", FadeSettings{}, 100, 100, 0, 0},
		{"rounded", FadeSettings{FadeInSeconds: 0.014, FadeOutSeconds: 0.016}, 1000, 100, 14, 16},
		{"clamped to buffer", FadeSettings{FadeInSeconds: 5}, 10, 20, 20, 0},
		{"even shrink", FadeSettings{FadeInSeconds: 1, FadeOutSeconds: 1}, 10, 10, 5, 5},
		{"proportional shrink floors", FadeSettings{FadeInSeconds: 0.3, FadeOutSeconds: 0.9}, 10, 10, 2, 7},
		{"empty buffer", FadeSettings{FadeInSeconds: 1}, 44100, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, out := fadeFrames(tt.settings, tt.rate, tt.frames)
			assert.Equal(t, tt.wantIn, in, "fade in")
			assert.Equal(t, tt.wantOut, out, "fade out")
			assert.LessOrEqual(t, in+out, tt.frames)
		})
	}
}

func TestFadeSingleFrameRampIsSilent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{0}, linearRamp(1))
	assert.Empty(t, linearRamp(0))
}

func TestFadeOverlappingRampsDoNotOverlap(t *testing.T) {
	t.Parallel()

	in := newBuffer(t, 10, filled(10, 1))
	out, err := Fade(in, FadeSettings{FadeInSeconds: 1, FadeOutSeconds: 1})
	require.NoError(t, err)

	ch := out.Channel(0)
	assert.Equal(t, float32(0), ch[0])
	assert.Equal(t, float32(1), ch[4])
	assert.Equal(t, float32(1), ch[5])
	assert.Equal(t, float32(0), ch[9])
}

func TestFadeErrors(t *testing.T) {
	t.Parallel()

	_, err := Fade(nil, FadeSettings{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFadeEmptyBuffer(t *testing.T) {
	t.Parallel()

	in, err := audio.NewBuffer(8000, 1, 0)
	require.NoError(t, err)

	out, err := Fade(in, FadeSettings{FadeInSeconds: 1, FadeOutSeconds: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Frames())
}
