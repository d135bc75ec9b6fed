// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces a buffer to a fixed number of peak magnitudes for
// drawing, one per pixel column.
package waveform

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
	"github.com/ik5/audfx/effects"
)

// MaxBins bounds the bin count so the result slice stays allocatable.
const MaxBins = 1 << 24

// Summarize returns exactly bins peak magnitudes covering the whole buffer.
//
// Each bin spans ceil(frames/bins) frames and holds the largest |sample| found
// in any channel over that span. When frames does not divide evenly the last
// bins are shorter, and bins that start past the end of the buffer are 0.
// bins above MaxBins is an invalid parameter.
func Summarize(buf *audio.Buffer, bins int) ([]float64, error) {
	if buf == nil {
		return nil, effects.NewParameterError(effects.OpSummarize, "buffer", "nil")
	}
	return SummarizeRange(buf, 0, buf.Frames(), bins)
}

// SummarizeRange is Summarize over the frames [start, end), for zoomed or
// panned views. The window is clamped to the buffer.
func SummarizeRange(buf *audio.Buffer, start, end, bins int) ([]float64, error) {
	if buf == nil {
		return nil, effects.NewParameterError(effects.OpSummarize, "buffer", "nil")
	}
	if bins < 1 {
		return nil, effects.NewEmptyError(effects.OpSummarize, "bins", "need at least 1, got %d", bins)
	}
	if bins > MaxBins {
		return nil, effects.NewParameterError(effects.OpSummarize, "bins", "%d exceeds %d", bins, MaxBins)
	}

	start = max(0, min(start, buf.Frames()))
	end = max(start, min(end, buf.Frames()))
	frames := end - start
	if frames == 0 {
		return nil, effects.NewEmptyError(effects.OpSummarize, "buffer", "no frames in [%d, %d)", start, end)
	}

	span := frames / bins
	if frames%bins != 0 {
		span++
	}

	logrus.WithFields(logrus.Fields{
		"function":       "SummarizeRange",
		"start":          start,
		"end":            end,
		"bins":           bins,
		"frames_per_bin": span,
	}).Debug("Summarizing waveform")

	peaks := make([]float64, bins)
	work := make([]float64, span)

	for i := range peaks {
		lo := start + i*span
		if lo >= end {
			break
		}
		hi := min(lo+span, end)

		for c := range buf.Channels() {
			seg := dsp.Widen(work, buf.Channel(c)[lo:hi])
			peaks[i] = math.Max(peaks[i], floats.Norm(seg, math.Inf(1)))
		}
	}

	return peaks, nil
}
