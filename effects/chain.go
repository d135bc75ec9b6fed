// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
)

// Processor is a single-buffer effect with its settings bound.
type Processor interface {
	Name() string
	Process(buf *audio.Buffer) (*audio.Buffer, error)
}

func (s EQSettings) Name() string { return "eq" }
func (s EQSettings) Process(buf *audio.Buffer) (*audio.Buffer, error) {
	return Equalize(buf, s)
}

func (s FadeSettings) Name() string { return "fade" }
func (s FadeSettings) Process(buf *audio.Buffer) (*audio.Buffer, error) {
	return Fade(buf, s)
}

func (s SidechainSettings) Name() string { return "duck" }
func (s SidechainSettings) Process(buf *audio.Buffer) (*audio.Buffer, error) {
	return SidechainCompress(buf, s)
}

// Reverser is the Processor form of Reverse.
type Reverser struct{}

func (Reverser) Name() string { return "reverse" }
func (Reverser) Process(buf *audio.Buffer) (*audio.Buffer, error) {
	return Reverse(buf)
}

// Appender is the Processor form of Merge: it appends Tail to whatever buffer
// it is given.
type Appender struct {
	Tail     *audio.Buffer
	Settings MergeSettings
}

func (Appender) Name() string { return "merge" }
func (a Appender) Process(buf *audio.Buffer) (*audio.Buffer, error) {
	return Merge(buf, a.Tail, a.Settings)
}

// Chain applies processors in order, feeding each one the previous output.
// The first failure stops the chain.
type Chain []Processor

func (c Chain) Name() string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Process runs the chain. An empty chain returns a copy of buf.
func (c Chain) Process(buf *audio.Buffer) (*audio.Buffer, error) {
	if buf == nil {
		return nil, NewParameterError(OpChain, "buffer", "nil")
	}

	logrus.WithFields(logrus.Fields{
		"function":     "Chain.Process",
		"effect_count": len(c),
		"frames":       buf.Frames(),
	}).Debug("Processing buffer through effect chain")

	if len(c) == 0 {
		return buf.Clone(), nil
	}

	current := buf
	for i, p := range c {
		next, err := p.Process(current)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function":     "Chain.Process",
				"effect_index": i,
				"effect_name":  p.Name(),
				"error":        err.Error(),
			}).Error("Effect processing failed")
			return nil, fmt.Errorf("effect %d (%s): %w", i, p.Name(), err)
		}
		current = next
	}

	return current, nil
}
