// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
)

const defaultBufSize = 4096

// oggReader is the part of oggvorbis.Reader used by source.
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of values (not frames) decoded into p.
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return defaultBufSize - defaultBufSize%s.channels }

// ReadSamples decodes straight into dst; oggvorbis already produces
// interleaved float32.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	n -= n % s.channels

	switch {
	case errors.Is(err, io.EOF):
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidChannelCount, dec.Channels())
	}

	logrus.WithFields(logrus.Fields{
		"function":    "vorbis.Decoder.Decode",
		"sample_rate": dec.SampleRate(),
		"channels":    dec.Channels(),
		"frames":      dec.Length(),
	}).Debug("Opened Ogg Vorbis stream")

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
