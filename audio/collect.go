// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	defaultReadSize = 4096
	maxEmptyReads   = 64
)

// ErrNoProgress is returned by ReadAll when a source keeps returning zero
// samples without reporting io.EOF.
var ErrNoProgress = errors.New("source returned no samples repeatedly")

// ReadAll drains src into a planar Buffer. A trailing partial frame is
// dropped. src is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	size := src.BufSize()
	if size <= 0 {
		size = defaultReadSize
	}
	// dst must hold whole frames
	size -= size % channels
	if size == 0 {
		size = channels
	}

	buf := make([]float32, size)
	var interleaved []float32
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrNoProgress
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	frames := len(interleaved) / channels
	out, err := NewBuffer(src.SampleRate(), channels, frames)
	if err != nil {
		return nil, err
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			out.data[c][f] = interleaved[base+c]
		}
	}

	return out, nil
}

// bufferSource streams a Buffer as interleaved samples.
type bufferSource struct {
	buf *Buffer
	pos int // next frame
}

// Source returns a streaming view over the buffer so it can feed the
// Resampler, the MonoMixer or an encoder.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return defaultReadSize }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	total := s.buf.Frames()
	if s.pos >= total {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, total-s.pos)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.data[c][s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= total {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}

// Resample converts b to targetRate with the cubic Resampler. The input is
// left untouched. Returns a copy when the rates already match.
func Resample(b *Buffer, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, targetRate)
	}
	if b.sampleRate == targetRate {
		return b.Clone(), nil
	}

	return ReadAll(NewResampler(b.Source(), targetRate))
}

// Downmix averages all channels into a mono buffer.
func Downmix(b *Buffer) (*Buffer, error) {
	if b.Channels() == 1 {
		return b.Clone(), nil
	}

	return ReadAll(NewMonoMixer(b.Source()))
}
