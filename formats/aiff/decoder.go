// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/internal/intpcm"
	"github.com/ik5/audfx/utils"
)

// Decoder reads uncompressed AIFF at 8, 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	if err := utils.CheckBitDepth(bitDepth); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedBitDepth, err)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	logrus.WithFields(logrus.Fields{
		"function":    "aiff.Decoder.Decode",
		"sample_rate": format.SampleRate,
		"channels":    format.NumChannels,
		"bit_depth":   bitDepth,
	}).Debug("Decoded AIFF header")

	var pcm intpcm.Reader = dec
	if bitDepth == 8 {
		pcm = signed8{dec}
	}

	return intpcm.New(pcm, format, bitDepth, 0), nil
}

// signed8 sign-extends 8-bit samples, which AIFF stores as two's complement,
// whether the container decoder hands them out as raw bytes or already signed.
type signed8 struct {
	intpcm.Reader
}

func (s signed8) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n, err := s.Reader.PCMBuffer(buf)
	for i := range buf.Data[:min(n, len(buf.Data))] {
		buf.Data[i] = int(int8(uint8(buf.Data[i])))
	}
	return n, err
}
