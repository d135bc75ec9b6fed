// SPDX-License-Identifier: EPL-2.0

package effects

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
)

// SidechainCompress ducks each channel by its own envelope.
//
// For every frame the channel's envelope is compared with the threshold. At or
// below it the gain is 1. Above it the hard-knee reduction
//
//	over      = envDB - thresholdDB
//	reduction = over - over/ratio
//
// is converted to a linear factor r and blended by depth to 1 - (1 - r)·depth.
// Envelope state starts at zero for every channel.
func SidechainCompress(buf *audio.Buffer, s SidechainSettings) (*audio.Buffer, error) {
	if buf == nil {
		return nil, NewParameterError(OpSidechain, "buffer", "nil")
	}

	s, err := s.Normalize()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":     "SidechainCompress",
		"threshold_db": s.ThresholdDB,
		"ratio":        s.Ratio,
		"attack":       s.AttackSeconds,
		"release":      s.ReleaseSeconds,
		"depth":        s.Depth,
		"frames":       buf.Frames(),
		"channels":     buf.Channels(),
	}).Debug("Compressing buffer")

	out := buf.Clone()
	if s.Depth == 0 || s.Ratio == MinSidechainRatio || buf.Frames() == 0 {
		return out, nil
	}

	frames := buf.Frames()
	env := make([]float64, frames)
	work := make([]float64, frames)
	ducked := 0

	for c := range buf.Channels() {
		src := buf.Channel(c)
		env = dsp.Envelope(env, src, buf.SampleRate(), s.AttackSeconds, s.ReleaseSeconds)
		ducked += gainCurve(env, s)

		work = dsp.Widen(work, src)
		vecmath.MulBlockInPlace(work, env)
		dsp.Narrow(out.Channel(c), work)
	}

	logrus.WithFields(logrus.Fields{
		"function":      "SidechainCompress",
		"ducked_frames": ducked,
	}).Debug("Compression complete")

	return out, nil
}

// gainCurve replaces each envelope value with the gain to apply at that frame
// and returns how many frames are reduced.
func gainCurve(env []float64, s SidechainSettings) int {
	threshold := dsp.DBToLinear(s.ThresholdDB)
	reduced := 0

	for i, e := range env {
		if e <= threshold {
			env[i] = 1
			continue
		}

		over := dsp.LinearToDB(e) - s.ThresholdDB
		reduction := dsp.DBToLinear(-(over - over/s.Ratio))
		env[i] = 1 - (1-reduction)*s.Depth
		reduced++
	}

	return reduced
}
