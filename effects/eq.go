// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
)

// Equalizer band design constants.
const (
	BassFrequency   = 320.0
	BassQ           = 0.707
	MidFrequency    = 1000.0
	MidQ            = 0.5
	TrebleFrequency = 3200.0
	TrebleQ         = 0.707
)

// Equalize applies a low shelf (bass), a peaking band (mid) and a high shelf
// (treble) in series to every channel. Gains are clamped to ±12 dB. A band at
// 0 dB is skipped, as is a band whose frequency is at or above Nyquist for the
// buffer's rate, so all-zero settings return an exact copy.
func Equalize(buf *audio.Buffer, s EQSettings) (*audio.Buffer, error) {
	if buf == nil {
		return nil, NewParameterError(OpEqualize, "buffer", "nil")
	}

	s, err := s.Normalize()
	if err != nil {
		return nil, err
	}

	stages := eqStages(s, buf.SampleRate())

	logrus.WithFields(logrus.Fields{
		"function": "Equalize",
		"bass":     s.Bass,
		"mid":      s.Mid,
		"treble":   s.Treble,
		"stages":   len(stages),
		"frames":   buf.Frames(),
		"channels": buf.Channels(),
	}).Debug("Equalizing buffer")

	out := buf.Clone()
	if len(stages) == 0 || buf.Frames() == 0 {
		return out, nil
	}

	work := make([]float64, buf.Frames())
	for c := range buf.Channels() {
		work = dsp.Widen(work, buf.Channel(c))
		for _, coeffs := range stages {
			// Fresh section per channel: no state leaks between channels.
			dsp.NewSection(coeffs).ProcessBlock(work)
		}
		dsp.Narrow(out.Channel(c), work)
	}

	return out, nil
}

func eqStages(s EQSettings, sampleRate int) []dsp.Coefficients {
	bands := []struct {
		gain   float64
		design func(freq, gainDB, q float64, sampleRate int) (dsp.Coefficients, bool)
		freq   float64
		q      float64
	}{
		{s.Bass, dsp.LowShelf, BassFrequency, BassQ},
		{s.Mid, dsp.Peak, MidFrequency, MidQ},
		{s.Treble, dsp.HighShelf, TrebleFrequency, TrebleQ},
	}

	stages := make([]dsp.Coefficients, 0, len(bands))
	for _, b := range bands {
		if b.gain == 0 {
			continue
		}
		coeffs, ok := b.design(b.freq, b.gain, b.q, sampleRate)
		if !ok {
			continue
		}
		stages = append(stages, coeffs)
	}

	return stages
}
