// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audfx/audio"
)

// Func is one effect invocation bound to its inputs.
type Func func() (*audio.Buffer, error)

type jobResult struct {
	buf *audio.Buffer
	err error
}

// Run executes fn on its own goroutine and waits for it or for ctx.
//
// Effects cannot be interrupted mid-computation, so cancellation only drops
// the result: if ctx ends first, Run returns ctx.Err() and the buffer fn
// eventually produces is discarded. A context that is already done prevents fn
// from starting at all.
func Run(ctx context.Context, name string, fn Func) (*audio.Buffer, error) {
	id := uuid.New()
	log := logrus.WithFields(logrus.Fields{
		"function": "Run",
		"job":      name,
		"job_id":   id.String(),
	})

	if err := ctx.Err(); err != nil {
		log.WithField("error", err.Error()).Debug("Job abandoned before start")
		return nil, err
	}

	log.Debug("Starting job")
	start := time.Now()

	// Buffered so the worker never blocks after an abandoned wait.
	done := make(chan jobResult, 1)
	go func() {
		buf, err := fn()
		done <- jobResult{buf: buf, err: err}
	}()

	select {
	case <-ctx.Done():
		log.WithField("error", ctx.Err().Error()).Debug("Job abandoned, result will be dropped")
		return nil, ctx.Err()
	case r := <-done:
		fields := logrus.Fields{"elapsed": time.Since(start).String()}
		if r.err != nil {
			fields["error"] = r.err.Error()
		}
		log.WithFields(fields).Debug("Job finished")
		return r.buf, r.err
	}
}

// RunProcessor is Run for a single-buffer Processor.
func RunProcessor(ctx context.Context, p Processor, buf *audio.Buffer) (*audio.Buffer, error) {
	return Run(ctx, p.Name(), func() (*audio.Buffer, error) {
		return p.Process(buf)
	})
}
