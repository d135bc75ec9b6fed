// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src)
//
// The decoder produces interleaved float32 directly, so there is no integer
// conversion step. Vorbis output can overshoot [-1, 1] slightly on loud
// material; the values are passed through unchanged.
//
// Any channel count is supported, in Vorbis channel order. Decoding only.
package vorbis
