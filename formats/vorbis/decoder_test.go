// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audfx/audio"
)

// mockOggVorbisReader simulates oggvorbis.Reader, which reports decoded
// values rather than frames.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	chunk      int // frames per Read, 0 for no limit
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	frames := len(buf) / m.channels
	if m.chunk > 0 {
		frames = min(frames, m.chunk)
	}
	n := copy(buf[:frames*m.channels], m.samples)
	m.samples = m.samples[n:]

	if len(m.samples) == 0 {
		return n, io.EOF
	}
	return n, nil
}

func newSource(m *mockOggVorbisReader) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not Ogg Vorbis data")},
		{"bare ogg capture", []byte("OggS")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate, channels, bufSize int
	}{
		{44100, 1, 4096},
		{48000, 2, 4096},
		{96000, 6, 4092},
	}

	for _, tt := range tests {
		src := newSource(&mockOggVorbisReader{sampleRate: tt.rate, channels: tt.channels})

		if src.SampleRate() != tt.rate {
			t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.rate)
		}
		if src.Channels() != tt.channels {
			t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
		}
		if src.BufSize() != tt.bufSize {
			t.Errorf("BufSize() = %d, want %d", src.BufSize(), tt.bufSize)
		}
		if err := src.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}
}

func TestSource_ReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		samples  []float32
		chunk    int
	}{
		{"mono", 1, []float32{0.1, 0.2, 0.3, 0.4, 0.5}, 0},
		{"stereo", 2, []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}, 0},
		{"six channels", 6, []float32{1, 2, 3, 4, 5, 6, -1, -2, -3, -4, -5, -6}, 0},
		{"stereo small packets", 2, []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := append([]float32(nil), tt.samples...)
			src := newSource(&mockOggVorbisReader{
				sampleRate: 44100,
				channels:   tt.channels,
				samples:    tt.samples,
				chunk:      tt.chunk,
			})

			buf, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if buf.Channels() != tt.channels {
				t.Fatalf("Channels() = %d, want %d", buf.Channels(), tt.channels)
			}

			got := buf.Interleaved()
			if len(got) != len(want) {
				t.Fatalf("got %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: []float32{1, 2}})
	dst := make([]float32, 8)

	n, err := src.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = %d, %v, want 2, EOF", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_Errors(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2})
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("odd dst: error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("empty dst: ReadSamples() = %d, %v, want 0, nil", n, err)
	}

	src = newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF})
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("reader failure: error = %v, want ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 2*48000)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		src := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2, samples: samples})
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
