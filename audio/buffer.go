// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Buffer is a decoded, planar (one slice per channel) block of float32 samples.
//
// A Buffer is treated as immutable once it has been handed to someone else:
// effects read their input buffers and always allocate a new one for the
// result. The owner (whoever allocated it) may write through Channel until
// the buffer is shared.
type Buffer struct {
	sampleRate int
	data       [][]float32
}

// NewBuffer allocates a zeroed buffer with the given shape.
func NewBuffer(sampleRate, channels, frames int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}
	if frames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, frames)
	}

	// One backing array keeps channels contiguous in memory.
	backing := make([]float32, channels*frames)
	data := make([][]float32, channels)
	for c := range channels {
		data[c] = backing[c*frames : (c+1)*frames : (c+1)*frames]
	}

	return &Buffer{sampleRate: sampleRate, data: data}, nil
}

// NewBufferFrom copies channels into a new buffer. Every channel must have the
// same length.
func NewBufferFrom(sampleRate int, channels [][]float32) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: 0", ErrInvalidChannelCount)
	}

	frames := len(channels[0])
	for c, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d",
				ErrRaggedChannels, c, len(ch), frames)
		}
	}

	b, err := NewBuffer(sampleRate, len(channels), frames)
	if err != nil {
		return nil, err
	}
	for c, ch := range channels {
		copy(b.data[c], ch)
	}

	return b, nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return len(b.data) }

// Frames is the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Channel returns the backing slice of channel c. Callers that do not own the
// buffer must not modify it.
func (b *Buffer) Channel(c int) []float32 { return b.data[c] }

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(float64(b.Frames()) / float64(b.sampleRate) * float64(time.Second))
}

// Clone returns a deep copy owned by the caller.
func (b *Buffer) Clone() *Buffer {
	out, _ := NewBuffer(b.sampleRate, b.Channels(), b.Frames())
	for c := range b.data {
		copy(out.data[c], b.data[c])
	}
	return out
}

// Interleaved returns the samples frame by frame: L, R, L, R, ...
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float32, channels*frames)

	for c, ch := range b.data {
		for f, s := range ch {
			out[f*channels+c] = s
		}
	}

	return out
}
