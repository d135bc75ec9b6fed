// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"slices"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
)

// Fade applies linear ramps at the start and end of buf.
//
// The fade-in ramp runs from exact silence on the first frame to unity on its
// last frame; the fade-out ramp mirrors it from the end of the buffer. When
// both ramps together are longer than the buffer they are shrunk in proportion
// (rounding down) so they never overlap.
func Fade(buf *audio.Buffer, s FadeSettings) (*audio.Buffer, error) {
	if buf == nil {
		return nil, NewParameterError(OpFade, "buffer", "nil")
	}

	s, err := s.Normalize()
	if err != nil {
		return nil, err
	}

	in, out := fadeFrames(s, buf.SampleRate(), buf.Frames())

	logrus.WithFields(logrus.Fields{
		"function":        "Fade",
		"fade_in_frames":  in,
		"fade_out_frames": out,
		"frames":          buf.Frames(),
		"channels":        buf.Channels(),
	}).Debug("Fading buffer")

	result := buf.Clone()
	if in == 0 && out == 0 {
		return result, nil
	}

	rampIn := linearRamp(in)
	rampOut := linearRamp(out)
	slices.Reverse(rampOut)

	frames := buf.Frames()
	work := make([]float64, max(in, out))
	for c := range result.Channels() {
		ch := result.Channel(c)
		applyRamp(ch[:in], rampIn, work)
		applyRamp(ch[frames-out:], rampOut, work)
	}

	return result, nil
}

// fadeFrames converts fade durations into non-overlapping frame counts.
func fadeFrames(s FadeSettings, sampleRate, frames int) (in, out int) {
	rate := float64(sampleRate)
	in = min(int(math.Round(s.FadeInSeconds*rate)), frames)
	out = min(int(math.Round(s.FadeOutSeconds*rate)), frames)

	if total := in + out; total > frames {
		scale := float64(frames) / float64(total)
		in = int(math.Floor(float64(in) * scale))
		out = int(math.Floor(float64(out) * scale))
	}

	return in, out
}

// linearRamp returns n gains from 0 to 1 inclusive. A single-frame ramp is
// just silence.
func linearRamp(n int) []float64 {
	ramp := make([]float64, n)
	if n < 2 {
		return ramp
	}

	vecmath.ScaleBlock(ramp, indexRamp(n), 1/float64(n-1))
	ramp[n-1] = 1

	return ramp
}

func indexRamp(n int) []float64 {
	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	return idx
}

func applyRamp(samples []float32, ramp, work []float64) {
	if len(samples) == 0 {
		return
	}

	work = dsp.Widen(work, samples)
	vecmath.MulBlockInPlace(work, ramp)
	dsp.Narrow(samples, work)
}
