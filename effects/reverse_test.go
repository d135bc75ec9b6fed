// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/internal/audiotest"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	in := newBuffer(t, 8000, []float32{1, 2, 3, 4}, []float32{-1, -2, -3, -4})
	out, err := Reverse(in)
	require.NoError(t, err)

	requireSameShape(t, in, out)
	assert.Equal(t, []float32{4, 3, 2, 1}, out.Channel(0))
	assert.Equal(t, []float32{-4, -3, -2, -1}, out.Channel(1))
	assert.Equal(t, []float32{1, 2, 3, 4}, in.Channel(0), "input untouched")
}

func TestReverseIsInvolution(t *testing.T) {
	t.Parallel()

	for _, frames := range []int{0, 1, 2, 7, 1024} {
		in := waveBuffer(t, 22050, 3, frames, audiotest.Sine(22050, 330))

		once, err := Reverse(in)
		require.NoError(t, err)
		twice, err := Reverse(once)
		require.NoError(t, err)

		assert.Equal(t, channels(in), channels(twice), "frames=%d", frames)
	}
}

func TestReverseEmpty(t *testing.T) {
	t.Parallel()

	in, err := audio.NewBuffer(8000, 2, 0)
	require.NoError(t, err)

	out, err := Reverse(in)
	require.NoError(t, err)
	requireSameShape(t, in, out)

	_, err = Reverse(nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
