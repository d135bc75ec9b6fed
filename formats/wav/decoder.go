// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/internal/intpcm"
	"github.com/ik5/audfx/utils"
)

// WAVE format tags accepted by the decoder.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder reads integer PCM WAV at 8, 16, 24 or 32 bits and any channel
// count.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	if err := utils.CheckBitDepth(bitDepth); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedBitDepth, err)
	}

	// 8-bit WAV samples are unsigned.
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	format := dec.Format()

	logrus.WithFields(logrus.Fields{
		"function":    "wav.Decoder.Decode",
		"sample_rate": format.SampleRate,
		"channels":    format.NumChannels,
		"bit_depth":   bitDepth,
	}).Debug("Decoded WAV header")

	return intpcm.New(dec, format, bitDepth, offset), nil
}
