// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"github.com/ik5/audfx/audio"
)

// Conform streams buf through the resampler and, when mono is set, the mono
// mixer, so it can be combined with material recorded at another rate or
// channel layout. targetRate <= 0 keeps the current rate.
//
// The effects never resample on their own; use this before Merge when the
// inputs differ:
//
//	b, err = audfx.Conform(b, a.SampleRate(), false)
//	merged, err := effects.Merge(a, b, settings)
//
// The input is left untouched. A copy is returned when nothing changes.
func Conform(buf *audio.Buffer, targetRate int, mono bool) (*audio.Buffer, error) {
	if buf == nil {
		return nil, ErrNoAudio
	}

	var src audio.Source = buf.Source()
	changed := false

	if targetRate > 0 && targetRate != buf.SampleRate() {
		src = audio.NewResampler(src, targetRate)
		changed = true
	}
	if mono && buf.Channels() > 1 {
		src = audio.NewMonoMixer(src)
		changed = true
	}

	if !changed {
		return buf.Clone(), nil
	}

	return audio.ReadAll(src)
}
