// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ik5/audfx/effects"
)

var errNoPreset = errors.New("config has no chain preset")

// newEffectCmd builds a command that runs one processor over FILE arguments.
// build is called after flags and configuration are parsed.
func newEffectCmd(opts *options, use, short string, build func() (effects.Processor, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := build()
			if err != nil {
				return err
			}
			return opts.processFiles(cmd.Context(), cmd.OutOrStdout(), args, use, p)
		},
	}
}

func newEQCmd(opts *options) *cobra.Command {
	var s effects.EQSettings

	cmd := newEffectCmd(opts, "eq", "Three-band equalizer (low shelf, mid peak, high shelf)",
		func() (effects.Processor, error) {
			return s.Normalize()
		})

	cmd.Flags().Float64Var(&s.Bass, "bass", 0, "Low shelf gain at 320 Hz in dB (-12..12)")
	cmd.Flags().Float64Var(&s.Mid, "mid", 0, "Peak gain at 1 kHz in dB (-12..12)")
	cmd.Flags().Float64Var(&s.Treble, "treble", 0, "High shelf gain at 3.2 kHz in dB (-12..12)")

	return cmd
}

func newFadeCmd(opts *options) *cobra.Command {
	var s effects.FadeSettings

	cmd := newEffectCmd(opts, "fade", "Linear fade in and fade out",
		func() (effects.Processor, error) {
			return s.Normalize()
		})

	cmd.Flags().Float64Var(&s.FadeInSeconds, "in", 0, "Fade in length in seconds (0..10)")
	cmd.Flags().Float64Var(&s.FadeOutSeconds, "out", 0, "Fade out length in seconds (0..10)")

	return cmd
}

func newReverseCmd(opts *options) *cobra.Command {
	return newEffectCmd(opts, "reverse", "Play the audio backwards",
		func() (effects.Processor, error) {
			return effects.Reverser{}, nil
		})
}

func newDuckCmd(opts *options) *cobra.Command {
	s := effects.DefaultSidechainSettings()

	cmd := newEffectCmd(opts, "duck", "Self-sidechained ducking compressor",
		func() (effects.Processor, error) {
			return s.Normalize()
		})

	flags := cmd.Flags()
	flags.Float64Var(&s.ThresholdDB, "threshold", s.ThresholdDB, "Threshold in dBFS")
	flags.Float64Var(&s.Ratio, "ratio", s.Ratio, "Compression ratio, at least 1")
	flags.Float64Var(&s.AttackSeconds, "attack", s.AttackSeconds, "Envelope attack time in seconds")
	flags.Float64Var(&s.ReleaseSeconds, "release", s.ReleaseSeconds, "Envelope release time in seconds")
	flags.Float64Var(&s.Depth, "depth", s.Depth, "Blend of the gain reduction, 0..1")

	return cmd
}

func newApplyCmd(opts *options) *cobra.Command {
	return newEffectCmd(opts, "apply", "Run the chain preset from the config file",
		func() (effects.Processor, error) {
			chain, err := opts.cfg.Processors()
			if err != nil {
				return nil, err
			}
			if len(chain) == 0 {
				return nil, errNoPreset
			}
			return chain, nil
		})
}
