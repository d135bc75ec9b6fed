// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEQSettingsClamp(t *testing.T) {
	t.Parallel()

	got, err := EQSettings{Bass: 40, Mid: -3, Treble: -13}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, EQSettings{Bass: 12, Mid: -3, Treble: -12}, got)
}

func TestFadeSettingsClamp(t *testing.T) {
	t.Parallel()

	got, err := FadeSettings{FadeInSeconds: -1, FadeOutSeconds: 30}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, FadeSettings{FadeInSeconds: 0, FadeOutSeconds: 10}, got)
}

func TestMergeSettingsClamp(t *testing.T) {
	t.Parallel()

	got, err := MergeSettings{CrossfadeSeconds: 9, Volume1: -1, Volume2: 3}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, MergeSettings{CrossfadeSeconds: 5, Volume1: 0, Volume2: 2}, got)
}

func TestSidechainSettingsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    SidechainSettings
		param string
	}{
		{"ratio below one", SidechainSettings{Ratio: 0.5}, "ratio"},
		{"negative attack", SidechainSettings{Ratio: 2, AttackSeconds: -0.1}, "attack"},
		{"negative release", SidechainSettings{Ratio: 2, ReleaseSeconds: -1}, "release"},
		{"nan threshold", SidechainSettings{Ratio: 2, ThresholdDB: math.NaN()}, "threshold_db"},
		{"infinite depth", SidechainSettings{Ratio: 2, Depth: math.Inf(1)}, "depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.in.Normalize()
			require.ErrorIs(t, err, ErrInvalidParameter)

			var effErr *Error
			require.True(t, errors.As(err, &effErr))
			assert.Equal(t, tt.param, effErr.Param)
			assert.Equal(t, OpSidechain, effErr.Op)
		})
	}
}

func TestSidechainSettingsClampsDepth(t *testing.T) {
	t.Parallel()

	got, err := SidechainSettings{Ratio: 2, Depth: 1.5}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Depth)

	got, err = SidechainSettings{Ratio: 2, Depth: -0.5}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Depth)
}

func TestSettingsNonFiniteRejected(t *testing.T) {
	t.Parallel()

	_, err := EQSettings{Mid: math.Inf(-1)}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = FadeSettings{FadeOutSeconds: math.NaN()}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MergeSettings{Volume2: math.NaN()}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSettingsYAML(t *testing.T) {
	t.Parallel()

	doc := []byte(`
threshold_db: -18
ratio: 6
attack: 0.005
release: 0.3
depth: 0.75
`)

	var s SidechainSettings
	require.NoError(t, yaml.Unmarshal(doc, &s))
	assert.Equal(t, SidechainSettings{
		ThresholdDB:    -18,
		Ratio:          6,
		AttackSeconds:  0.005,
		ReleaseSeconds: 0.3,
		Depth:          0.75,
	}, s)
}
