// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

const encodeChunkFrames = 8192

// Encode writes buf to ws as integer PCM WAV at bitDepth bits (16, 24 or 32;
// 8 writes unsigned bytes). Samples outside [-1, 1] are clipped. The writer is
// not closed. A zero-frame buffer produces a header with an empty data chunk.
func Encode(ws io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	if buf == nil {
		return ErrEmptyBuffer
	}
	if err := utils.CheckBitDepth(bitDepth); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedBitDepth, err)
	}

	channels := buf.Channels()
	format := &goaudio.Format{NumChannels: channels, SampleRate: buf.SampleRate()}

	logrus.WithFields(logrus.Fields{
		"function":    "wav.Encode",
		"sample_rate": buf.SampleRate(),
		"channels":    channels,
		"frames":      buf.Frames(),
		"bit_depth":   bitDepth,
	}).Debug("Encoding WAV")

	enc := wav.NewEncoder(ws, buf.SampleRate(), bitDepth, channels, formatPCM)

	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	src := buf.Source()
	samples := make([]float32, encodeChunkFrames*channels)
	ints := &goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}

	wrote := false
	for {
		n, err := src.ReadSamples(samples)
		if n > 0 || !wrote {
			ints.Data = ints.Data[:n]
			utils.Float32ToPCM(ints.Data, samples[:n], bitDepth)
			for i := range ints.Data {
				ints.Data[i] += offset
			}

			if werr := enc.Write(ints); werr != nil {
				return fmt.Errorf("writing wav data: %w", werr)
			}
			wrote = true
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising wav header: %w", err)
	}

	return nil
}
