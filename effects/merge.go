// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
)

// Merge appends b to a, overlapping the tail of a with the head of b by the
// crossfade length.
//
// Inside the overlap frame k of C is blended with equal-power weights
// cos(t·π/2) and sin(t·π/2), t = k/C. Volume1 scales every sample taken from a
// and Volume2 every sample taken from b. The result has
// a.Frames() + b.Frames() - C frames, where C is clamped to the shorter input.
//
// Both buffers must share a sample rate; resample with audio.Resample first
// if they do not. When channel counts differ, the narrower buffer's last
// channel is repeated to fill the missing ones.
func Merge(a, b *audio.Buffer, s MergeSettings) (*audio.Buffer, error) {
	if a == nil {
		return nil, NewParameterError(OpMerge, "first", "nil buffer")
	}
	if b == nil {
		return nil, NewParameterError(OpMerge, "second", "nil buffer")
	}

	s, err := s.Normalize()
	if err != nil {
		return nil, err
	}

	if a.SampleRate() != b.SampleRate() {
		return nil, NewShapeError(OpMerge, "sample rates differ: %d Hz and %d Hz",
			a.SampleRate(), b.SampleRate())
	}

	n1, n2 := a.Frames(), b.Frames()
	overlap := min(int(math.Round(s.CrossfadeSeconds*float64(a.SampleRate()))), n1, n2)
	channels := max(a.Channels(), b.Channels())

	logrus.WithFields(logrus.Fields{
		"function":         "Merge",
		"first_frames":     n1,
		"second_frames":    n2,
		"crossfade_frames": overlap,
		"channels":         channels,
		"volume1":          s.Volume1,
		"volume2":          s.Volume2,
	}).Debug("Merging buffers")

	if a.Channels() != b.Channels() {
		logrus.WithFields(logrus.Fields{
			"function":        "Merge",
			"first_channels":  a.Channels(),
			"second_channels": b.Channels(),
		}).Debug("Channel counts differ, repeating last channel of narrower buffer")
	}

	out, err := audio.NewBuffer(a.SampleRate(), channels, n1+n2-overlap)
	if err != nil {
		return nil, err
	}

	wa, wb := crossfadeWeights(overlap, s.Volume1, s.Volume2)
	work := make([]float64, max(n1, n2))
	mix := make([]float64, overlap)

	for c := range channels {
		srcA := a.Channel(min(c, a.Channels()-1))
		srcB := b.Channel(min(c, b.Channels()-1))
		dst := out.Channel(c)

		head := n1 - overlap
		scaleInto(dst[:head], srcA[:head], s.Volume1, work)

		if overlap > 0 {
			tail := dsp.Widen(work, srcA[head:])
			vecmath.MulBlock(mix, tail, wa)
			lead := dsp.Widen(work, srcB[:overlap])
			vecmath.MulAddBlock(mix, lead, wb, mix)
			dsp.Narrow(dst[head:head+overlap], mix)
		}

		scaleInto(dst[head+overlap:], srcB[overlap:], s.Volume2, work)
	}

	return out, nil
}

// crossfadeWeights returns the equal-power fade-out and fade-in curves for an
// overlap of n frames, pre-multiplied by the input volumes.
func crossfadeWeights(n int, volume1, volume2 float64) (out, in []float64) {
	out = make([]float64, n)
	in = make([]float64, n)

	for k := range n {
		theta := float64(k) / float64(n) * math.Pi / 2
		out[k] = math.Cos(theta)
		in[k] = math.Sin(theta)
	}

	vecmath.ScaleBlockInPlace(out, volume1)
	vecmath.ScaleBlockInPlace(in, volume2)

	return out, in
}

func scaleInto(dst, src []float32, gain float64, work []float64) {
	if len(src) == 0 {
		return
	}

	w := dsp.Widen(work, src)
	vecmath.ScaleBlockInPlace(w, gain)
	dsp.Narrow(dst, w)
}
