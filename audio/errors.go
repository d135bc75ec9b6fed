// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidChannelCount = errors.New("channel count must be positive")
	ErrInvalidFrameCount   = errors.New("frame count must not be negative")
	ErrRaggedChannels      = errors.New("channels differ in length")
)
