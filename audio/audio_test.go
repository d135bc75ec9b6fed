// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
)

// stubDecoder hands out silence and remembers its label so lookups can be
// told apart.
type stubDecoder struct {
	label string
	err   error
}

func (d *stubDecoder) Decode(io.Reader) (Source, error) {
	if d.err != nil {
		return nil, d.err
	}
	return newSilentSource(44100, 2, 100), nil
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	wav := &stubDecoder{label: "wav"}
	ogg := &stubDecoder{label: "ogg"}
	reg.Register("wav", wav)
	reg.Register(".OGG", ogg)

	tests := []struct {
		key    string
		want   *stubDecoder
		wantOK bool
	}{
		{"wav", wav, true},
		{".wav", wav, true},
		{"WAV", wav, true},
		{"ogg", ogg, true},
		{".Ogg", ogg, true},
		{"mp3", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		got, ok := reg.Get(tt.key)
		if ok != tt.wantOK {
			t.Errorf("Get(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Get(%q) = %s, want %s", tt.key, got.(*stubDecoder).label, tt.want.label)
		}
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", &stubDecoder{label: "old"})
	reg.Register(".WAV", &stubDecoder{label: "new"})

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get() ok = false after Register")
	}
	if label := got.(*stubDecoder).label; label != "new" {
		t.Errorf("Get() = %s, want new", label)
	}
	if n := len(reg.Formats()); n != 1 {
		t.Errorf("len(Formats()) = %d, want 1", n)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if got := reg.Formats(); len(got) != 0 {
		t.Errorf("empty registry Formats() = %v", got)
	}

	errBroken := errors.New("broken")
	reg.Register("wav", &stubDecoder{})
	reg.Register("AIFF", &stubDecoder{})
	reg.Register("bad", &stubDecoder{err: errBroken})

	want := []string{"aiff", "bad", "wav"}
	if got := reg.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}

	dec, _ := reg.Get("bad")
	if _, err := dec.Decode(nil); !errors.Is(err, errBroken) {
		t.Errorf("Decode() error = %v, want %v", err, errBroken)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := &stubDecoder{label: "shared"}

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() { reg.Register("fmt", dec) })
		wg.Go(func() { reg.Get("fmt") })
		wg.Go(func() { reg.Formats() })
	}
	wg.Wait()

	if got, ok := reg.Get("fmt"); !ok || got != dec {
		t.Error("Get() after concurrent Register returned the wrong decoder")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	reg := NewRegistry()
	reg.Register("wav", &stubDecoder{})

	b.ReportAllocs()
	for b.Loop() {
		_, _ = reg.Get(".WAV")
	}
}
