// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/aiff"
	"github.com/ik5/audfx/formats/mp3"
	"github.com/ik5/audfx/formats/vorbis"
	"github.com/ik5/audfx/formats/wav"
)

var (
	ErrUnknownFormat     = errors.New("no decoder registered for format")
	ErrUnsupportedOutput = errors.New("only WAV output is supported")
	ErrNoAudio           = errors.New("no audio buffer")
)

// NewRegistry returns a registry with every bundled decoder, keyed by the
// usual file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

var defaultRegistry = NewRegistry()

// DecodeFile decodes the whole file at path, picking the decoder from the
// file extension.
func DecodeFile(path string) (*audio.Buffer, error) {
	return DecodeFileWith(defaultRegistry, path)
}

// DecodeFileWith is DecodeFile with a caller supplied registry.
func DecodeFileWith(reg *audio.Registry, path string) (*audio.Buffer, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "DecodeFile",
		"path":        path,
		"sample_rate": buf.SampleRate(),
		"channels":    buf.Channels(),
		"frames":      buf.Frames(),
	}).Debug("Decoded file")

	return buf, nil
}

// EncodeFile writes buf to path as integer PCM WAV. The path must end in .wav
// or .wave. A file left incomplete by a failed write is removed.
func EncodeFile(path string, buf *audio.Buffer, bitDepth int) error {
	if buf == nil {
		return ErrNoAudio
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Encode(f, buf, bitDepth); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":  "EncodeFile",
		"path":      path,
		"frames":    buf.Frames(),
		"bit_depth": bitDepth,
	}).Debug("Encoded file")

	return nil
}
