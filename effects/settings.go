// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/ik5/audfx/dsp"
)

// Documented setting ranges. Values outside them are clamped, not rejected.
const (
	MinEQGain         = -12.0
	MaxEQGain         = 12.0
	MaxFadeSeconds    = 10.0
	MaxCrossfade      = 5.0
	MaxVolume         = 2.0
	MinSidechainRatio = 1.0
)

// EQSettings are per-band gains in dB.
type EQSettings struct {
	Bass   float64 `yaml:"bass"`
	Mid    float64 `yaml:"mid"`
	Treble float64 `yaml:"treble"`
}

// FadeSettings are ramp lengths in seconds.
type FadeSettings struct {
	FadeInSeconds  float64 `yaml:"fade_in"`
	FadeOutSeconds float64 `yaml:"fade_out"`
}

// MergeSettings control how a second buffer is appended to a first.
// Volumes are linear multipliers.
type MergeSettings struct {
	CrossfadeSeconds float64 `yaml:"crossfade"`
	Volume1          float64 `yaml:"volume1"`
	Volume2          float64 `yaml:"volume2"`
}

// DefaultMergeSettings appends at unity gain with no overlap.
func DefaultMergeSettings() MergeSettings {
	return MergeSettings{Volume1: 1, Volume2: 1}
}

// SidechainSettings configure the self-keyed ducking compressor.
type SidechainSettings struct {
	ThresholdDB    float64 `yaml:"threshold_db"`
	Ratio          float64 `yaml:"ratio"`
	AttackSeconds  float64 `yaml:"attack"`
	ReleaseSeconds float64 `yaml:"release"`
	Depth          float64 `yaml:"depth"`
}

// DefaultSidechainSettings is a moderate duck: -20 dB threshold, 4:1, 10 ms
// attack, 250 ms release, full depth.
func DefaultSidechainSettings() SidechainSettings {
	return SidechainSettings{
		ThresholdDB:    -20,
		Ratio:          4,
		AttackSeconds:  0.01,
		ReleaseSeconds: 0.25,
		Depth:          1,
	}
}

type field struct {
	name  string
	value float64
}

func checkFinite(op Operation, fields ...field) error {
	for _, f := range fields {
		if !dsp.IsFinite(f.value) {
			return NewParameterError(op, f.name, "must be finite, got %v", f.value)
		}
	}
	return nil
}

// Normalize clamps every band to [MinEQGain, MaxEQGain].
func (s EQSettings) Normalize() (EQSettings, error) {
	if err := checkFinite(OpEqualize,
		field{"bass", s.Bass}, field{"mid", s.Mid}, field{"treble", s.Treble},
	); err != nil {
		return s, err
	}

	return EQSettings{
		Bass:   dsp.Clamp(s.Bass, MinEQGain, MaxEQGain),
		Mid:    dsp.Clamp(s.Mid, MinEQGain, MaxEQGain),
		Treble: dsp.Clamp(s.Treble, MinEQGain, MaxEQGain),
	}, nil
}

// Normalize clamps both fades to [0, MaxFadeSeconds].
func (s FadeSettings) Normalize() (FadeSettings, error) {
	if err := checkFinite(OpFade,
		field{"fade_in", s.FadeInSeconds}, field{"fade_out", s.FadeOutSeconds},
	); err != nil {
		return s, err
	}

	return FadeSettings{
		FadeInSeconds:  dsp.Clamp(s.FadeInSeconds, 0, MaxFadeSeconds),
		FadeOutSeconds: dsp.Clamp(s.FadeOutSeconds, 0, MaxFadeSeconds),
	}, nil
}

// Normalize clamps the crossfade to [0, MaxCrossfade] and volumes to
// [0, MaxVolume].
func (s MergeSettings) Normalize() (MergeSettings, error) {
	if err := checkFinite(OpMerge,
		field{"crossfade", s.CrossfadeSeconds}, field{"volume1", s.Volume1}, field{"volume2", s.Volume2},
	); err != nil {
		return s, err
	}

	return MergeSettings{
		CrossfadeSeconds: dsp.Clamp(s.CrossfadeSeconds, 0, MaxCrossfade),
		Volume1:          dsp.Clamp(s.Volume1, 0, MaxVolume),
		Volume2:          dsp.Clamp(s.Volume2, 0, MaxVolume),
	}, nil
}

// Normalize clamps depth to [0, 1]. A ratio below 1 or a negative time
// constant has no sensible clamped meaning and is rejected.
func (s SidechainSettings) Normalize() (SidechainSettings, error) {
	if err := checkFinite(OpSidechain,
		field{"threshold_db", s.ThresholdDB}, field{"ratio", s.Ratio},
		field{"attack", s.AttackSeconds}, field{"release", s.ReleaseSeconds},
		field{"depth", s.Depth},
	); err != nil {
		return s, err
	}

	if s.Ratio < MinSidechainRatio {
		return s, NewParameterError(OpSidechain, "ratio", "must be >= 1, got %v", s.Ratio)
	}
	if s.AttackSeconds < 0 {
		return s, NewParameterError(OpSidechain, "attack", "must not be negative, got %v", s.AttackSeconds)
	}
	if s.ReleaseSeconds < 0 {
		return s, NewParameterError(OpSidechain, "release", "must not be negative, got %v", s.ReleaseSeconds)
	}

	s.Depth = dsp.Clamp(s.Depth, 0, 1)
	return s, nil
}
