// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audfx/dsp"
)

// Anti-alias corner as a fraction of the destination rate, just under its
// Nyquist frequency.
const (
	antiAliasCorner = 0.45
	antiAliasQ      = 0.7071
)

// Resampler streams src at a new sample rate. Output samples are Catmull-Rom
// interpolated over a sliding four-frame window; when downsampling every
// source channel first passes through a second-order low-pass so content
// above the new Nyquist frequency does not fold back. The channel count is
// preserved. Resample uses it to conform a Buffer before it reaches an effect
// such as Merge, which refuses mismatched rates.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	// step is how far the read position moves through the source per output
	// frame: srcRate / dstRate.
	step float64
	pos  float64

	// win holds source frames t-1, t, t+1 and t+2. Output is interpolated
	// between win[1] and win[2]. ahead counts how many of win[2] and win[3]
	// are real frames rather than copies of the last one.
	win   [4][]float32
	ahead int

	lowpass []*dsp.Section
	frame   []float32

	primed bool
	eof    bool
	done   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		frame:    make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	if r.step > 1 {
		c, ok := dsp.LowPass(antiAliasCorner*float64(dstRate), antiAliasQ, src.SampleRate())
		if ok {
			r.lowpass = make([]*dsp.Section, channels)
			for ch := range r.lowpass {
				r.lowpass[ch] = dsp.NewSection(c)
			}
		}
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// readFrame reads one whole frame into r.frame. ok is false once the source
// is exhausted; a trailing partial frame is dropped.
func (r *Resampler) readFrame() (bool, error) {
	if r.eof {
		return false, nil
	}

	for empty := 0; ; {
		n, err := r.src.ReadSamples(r.frame)
		if errors.Is(err, io.EOF) {
			r.eof = true
			return n == r.channels, nil
		}
		if err != nil {
			return false, fmt.Errorf("resampler: %w", err)
		}
		if n == r.channels {
			return true, nil
		}

		if n > 0 {
			r.eof = true
			return false, nil
		}
		if empty++; empty >= maxEmptyReads {
			return false, ErrNoProgress
		}
	}
}

// pull reads the next source frame into dst, low-passed when downsampling.
func (r *Resampler) pull(dst []float32) (bool, error) {
	ok, err := r.readFrame()
	if !ok || err != nil {
		return false, err
	}

	copy(dst, r.frame)
	for c, s := range r.lowpass {
		dst[c] = float32(s.ProcessSample(float64(dst[c])))
	}

	return true, nil
}

// prime loads the window with the first source frame at t and up to two
// frames after it. The edges are padded by repeating the nearest real frame.
func (r *Resampler) prime() error {
	ok, err := r.readFrame()
	if err != nil {
		return err
	}
	if !ok || r.eof {
		// a single frame cannot be interpolated
		return io.EOF
	}

	for c, s := range r.lowpass {
		s.Settle(float64(r.frame[c]))
		r.frame[c] = float32(s.ProcessSample(float64(r.frame[c])))
	}
	copy(r.win[0], r.frame)
	copy(r.win[1], r.frame)

	for i := 2; i < len(r.win); i++ {
		ok, err := r.pull(r.win[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.win[i], r.win[i-1])
			continue
		}
		r.ahead++
	}

	if r.ahead == 0 {
		return io.EOF
	}

	return nil
}

// advance slides the window forward by one source frame. It reports io.EOF
// when win[2] no longer holds a real frame.
func (r *Resampler) advance() error {
	w := r.win
	r.win = [4][]float32{w[1], w[2], w[3], w[0]}
	r.ahead--

	ok, err := r.pull(r.win[3])
	if err != nil {
		return err
	}
	if ok {
		r.ahead++
	} else {
		copy(r.win[3], r.win[2])
	}

	if r.ahead < 1 {
		return io.EOF
	}

	return nil
}

// ReadSamples fills dst with interleaved frames at the destination rate.
// len(dst) must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		r.primed = true
		if err := r.prime(); err != nil {
			r.done = true
			return 0, err
		}
	}

	written := 0
	for off := 0; off < len(dst); off += r.channels {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				if errors.Is(err, io.EOF) {
					r.done = true
				}
				return written, err
			}
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[off+c] = catmullRom(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	return written, nil
}

// catmullRom interpolates between y1 and y2 at fractional position x in [0, 1].
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a := 1.5*(y1-y2) + 0.5*(y3-y0)
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := 0.5 * (y2 - y0)

	return ((a*x+b)*x+c)*x + y1
}
