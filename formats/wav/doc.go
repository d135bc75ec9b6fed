// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Supported Formats
//
//   - PCM format tag 1 and WAVE_FORMAT_EXTENSIBLE carrying PCM
//   - 8 (unsigned), 16, 24 and 32 bit samples
//   - any channel count and sample rate
//
// Floating point, A-law and mu-law files are rejected with
// ErrUnsupportedEncoding.
//
// # Decoding
//
//	f, _ := os.Open("in.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, wav.ErrNotWavFile) ...
//	}
//	buf, err := audio.ReadAll(src)
//
// Samples come out as float32 in [-1, 1). A reader that cannot seek is read
// into memory first, because the RIFF chunks are located by seeking.
//
// # Encoding
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, buf, 16)
//
// Encode needs an io.WriteSeeker so the header sizes can be patched once the
// data has been written. Samples outside [-1, 1] are clipped.
package wav
