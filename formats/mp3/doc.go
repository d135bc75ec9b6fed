// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1 and
// MPEG-2 Layer III streams.
//
// # Decoding MP3 Files
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(src)
//
// # Output Format
//
// go-mp3 always produces 16-bit stereo, so the Source reports two channels
// even for mono files (both channels then carry the same signal). Use
// audio.Downmix to get a single channel. ReadSamples only returns whole
// frames and drops an incomplete frame at the end of the stream.
//
// # Limitations
//
// Decoding only. ID3 tags are skipped and not exposed.
package mp3
