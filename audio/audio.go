// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Source streams interleaved float32 PCM. Decoders, the Resampler, the
// MonoMixer and Buffer.Source all produce one; ReadAll drains it into a
// Buffer.
type Source interface {
	SampleRate() int
	Channels() int

	// ReadSamples writes up to len(dst) interleaved samples, nominally in
	// [-1, 1], and returns the number of values (not frames) written. A
	// source may return its final samples together with io.EOF.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the read size, in samples, the source works best with.
	BufSize() int

	Close() error
}

// Decoder opens a Source over encoded input.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys such as "wav" or "mp3" to decoders. Keys are
// matched without case and without a leading dot, so a file extension can
// be passed straight in. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{decoders: map[string]Decoder{}}
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

// Register adds d under format, replacing any earlier decoder for it.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	r.decoders[formatKey(format)] = d
	r.mu.Unlock()
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.decoders[formatKey(format)]
	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.decoders))
}
