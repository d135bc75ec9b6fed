// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
)

var errDuplicateOutput = errors.New("inputs map to the same output file")

// processFiles runs p over every file, at most cfg.Workers at a time, and
// reports "input -> output" lines in input order. The first failure cancels
// the files that have not started yet. Nothing runs when two inputs would
// write the same output file.
func (o *options) processFiles(ctx context.Context, out io.Writer, files []string, tag string, p effects.Processor) error {
	outputs, err := o.outputPaths(files, tag)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Workers)

	for i, file := range files {
		g.Go(func() error {
			if err := o.processFile(ctx, file, outputs[i], p); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		fmt.Fprintf(out, "%s -> %s\n", file, outputs[i])
	}
	return nil
}

// outputPaths resolves the destination of every input and refuses the batch
// when two of them collide.
func (o *options) outputPaths(files []string, tag string) ([]string, error) {
	outputs := make([]string, len(files))
	seen := make(map[string]string, len(files))

	for i, file := range files {
		dst := o.outputPath(file, tag)
		key := filepath.Clean(dst)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", errDuplicateOutput, prev, file, dst)
		}
		seen[key] = file
		outputs[i] = dst
	}

	return outputs, nil
}

func (o *options) processFile(ctx context.Context, file, dst string, p effects.Processor) error {
	buf, err := o.decode(file)
	if err != nil {
		return err
	}

	res, err := effects.RunProcessor(ctx, p, buf)
	if err != nil {
		return err
	}

	if err := audfx.EncodeFile(dst, res, o.cfg.BitDepth); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "options.processFile",
		"input":    file,
		"output":   dst,
		"effect":   p.Name(),
	}).Info("Processed file")

	return nil
}

// decode reads file and applies --mono.
func (o *options) decode(file string) (*audio.Buffer, error) {
	buf, err := audfx.DecodeFile(file)
	if err != nil {
		return nil, err
	}
	if o.mono {
		return audfx.Conform(buf, 0, true)
	}
	return buf, nil
}
