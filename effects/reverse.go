// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
)

// Reverse returns a copy of buf with every channel played backwards.
func Reverse(buf *audio.Buffer) (*audio.Buffer, error) {
	if buf == nil {
		return nil, NewParameterError(OpReverse, "buffer", "nil")
	}

	logrus.WithFields(logrus.Fields{
		"function": "Reverse",
		"frames":   buf.Frames(),
		"channels": buf.Channels(),
	}).Debug("Reversing buffer")

	out := buf.Clone()
	for c := range out.Channels() {
		slices.Reverse(out.Channel(c))
	}

	return out, nil
}
