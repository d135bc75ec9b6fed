// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// Coefficients of one second-order section with a0 normalized to 1.
//
// Sign convention is Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section is a biquad with its two state registers. The zero value of the
// state is a freshly reset filter.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// Reset clears the state registers.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// Settle loads the state a filter would reach after an endless run of x, so
// the next ProcessSample(x) returns the DC response with no start-up ramp.
func (s *Section) Settle(x float64) {
	den := 1 + s.A1 + s.A2
	if den == 0 {
		s.Reset()
		return
	}

	y := x * (s.B0 + s.B1 + s.B2) / den
	s.d1 = s.B2*x - s.A2*y
	s.d0 = s.B1*x - s.A1*y + s.d1
}

// Peak designs an RBJ peaking filter. ok is false when freq is not strictly
// between 0 and Nyquist; the returned coefficients are then unusable.
func Peak(freq, gainDB, q float64, sampleRate int) (Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}, false
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)

	return normalize(
		1+alpha*a, -2*cw, 1-alpha*a,
		1+alpha/a, -2*cw, 1-alpha/a,
	)
}

// LowShelf designs an RBJ low shelf.
func LowShelf(freq, gainDB, q float64, sampleRate int) (Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}, false
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	return normalize(
		a*((a+1)-(a-1)*cw+beta),
		2*a*((a-1)-(a+1)*cw),
		a*((a+1)-(a-1)*cw-beta),
		(a+1)+(a-1)*cw+beta,
		-2*((a-1)+(a+1)*cw),
		(a+1)+(a-1)*cw-beta,
	)
}

// HighShelf designs an RBJ high shelf.
func HighShelf(freq, gainDB, q float64, sampleRate int) (Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}, false
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	return normalize(
		a*((a+1)+(a-1)*cw+beta),
		-2*a*((a-1)+(a+1)*cw),
		a*((a+1)+(a-1)*cw-beta),
		(a+1)-(a-1)*cw+beta,
		2*((a-1)-(a+1)*cw),
		(a+1)-(a-1)*cw-beta,
	)
}

// LowPass designs an RBJ second-order low-pass. Unity gain at DC.
func LowPass(freq, q float64, sampleRate int) (Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok || q <= 0 {
		return Coefficients{}, false
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)

	return normalize(
		(1-cw)/2, 1-cw, (1-cw)/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

func normalizedW0(freq float64, sampleRate int) (float64, bool) {
	if sampleRate <= 0 || !IsFinite(freq) {
		return 0, false
	}

	rate := float64(sampleRate)
	if freq <= 0 || freq >= rate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / rate, true
}

func normalize(b0, b1, b2, a0, a1, a2 float64) (Coefficients, bool) {
	if a0 == 0 || !IsFinite(a0) {
		return Coefficients{}, false
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, true
}
