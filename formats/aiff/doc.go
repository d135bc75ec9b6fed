// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding on top
// of github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - uncompressed AIFF
//   - 8, 16, 24 and 32 bit signed big-endian samples
//   - any channel count and sample rate
//
// AIFF-C compressed files are not supported.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, aiff.ErrNotAiffFile) ...
//	}
//	buf, err := audio.ReadAll(src)
//
// Samples are normalized to float32 in [-1, 1). A reader that cannot seek is
// read into memory first.
//
// # AIFF vs. WAV
//
// AIFF stores samples big-endian and the sample rate as an 80-bit extended
// float. 8-bit AIFF samples are signed, unlike 8-bit WAV.
package aiff
