// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts the go-audio container decoders, which hand out
// integer samples, to audio.Source.
package intpcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

const defaultBufSize = 4096

// Reader is the part of wav.Decoder and aiff.Decoder used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM from a Reader to float32.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	offset     int // subtracted before scaling, 128 for unsigned 8-bit data
	intBuf     *goaudio.IntBuffer
}

// New wraps dec. offset is subtracted from every raw sample before scaling,
// which recentres unsigned formats on zero.
func New(dec Reader, format *goaudio.Format, bitDepth, offset int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		offset:     offset,
		intBuf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 0, defaultBufSize),
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) BufSize() int    { return cap(s.intBuf.Data) }
func (s *Source) Close() error    { return nil }

// ReadSamples fills dst with whole frames. A read that yields nothing is the
// end of the stream.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	n -= n % s.channels
	if errors.Is(err, io.EOF) {
		err = io.EOF
	}
	if n <= 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	raw := s.intBuf.Data[:n]
	if s.offset != 0 {
		for i := range raw {
			raw[i] -= s.offset
		}
	}
	utils.PCMToFloat32(dst[:n], raw, s.bitDepth)

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

// Seekable returns r itself when it can seek, otherwise it reads r fully into
// memory. The go-audio decoders need to seek over chunk headers.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bytes.NewReader(data), nil
}
