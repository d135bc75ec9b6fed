// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
)

func newMergeCmd(opts *options) *cobra.Command {
	var (
		s         = effects.DefaultMergeSettings()
		matchRate bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "merge FIRST SECOND",
		Short: "Append SECOND to FIRST with an equal-power crossfade",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := s.Normalize()
			if err != nil {
				return err
			}

			var first, second *audio.Buffer
			var g errgroup.Group
			g.Go(func() (err error) {
				first, err = opts.decode(args[0])
				return err
			})
			g.Go(func() (err error) {
				second, err = opts.decode(args[1])
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			if matchRate && second.SampleRate() != first.SampleRate() {
				logrus.WithFields(logrus.Fields{
					"function": "merge",
					"from":     second.SampleRate(),
					"to":       first.SampleRate(),
				}).Debug("Resampling second input")

				if second, err = audfx.Conform(second, first.SampleRate(), false); err != nil {
					return err
				}
			}

			p := effects.Appender{Tail: second, Settings: settings}
			merged, err := effects.RunProcessor(cmd.Context(), p, first)
			if err != nil {
				return err
			}

			dst := output
			if dst == "" {
				dst = opts.outputPath(args[0], "merge")
			}
			if err := audfx.EncodeFile(dst, merged, opts.cfg.BitDepth); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s + %s -> %s\n", args[0], args[1], dst)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&s.CrossfadeSeconds, "crossfade", 0, "Crossfade length in seconds (0..5)")
	flags.Float64Var(&s.Volume1, "volume1", s.Volume1, "Gain applied to FIRST (0..2)")
	flags.Float64Var(&s.Volume2, "volume2", s.Volume2, "Gain applied to SECOND (0..2)")
	flags.BoolVar(&matchRate, "match-rate", false, "Resample SECOND to the rate of FIRST when they differ")
	flags.StringVarP(&output, "output", "o", "", "Output file (default: FIRST-merge.wav)")

	return cmd
}
