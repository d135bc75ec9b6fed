// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audfx/waveform"
)

func newWaveformCmd(opts *options) *cobra.Command {
	var (
		bins       int
		start, end float64
	)

	cmd := &cobra.Command{
		Use:   "waveform FILE",
		Short: "Print per-bin peak levels for drawing a waveform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := opts.decode(args[0])
			if err != nil {
				return err
			}

			var peaks []float64
			if start > 0 || end > 0 {
				rate := float64(buf.SampleRate())
				last := buf.Frames()
				if end > 0 {
					last = int(math.Round(end * rate))
				}
				peaks, err = waveform.SummarizeRange(buf, int(math.Round(start*rate)), last, bins)
			} else {
				peaks, err = waveform.Summarize(buf, bins)
			}
			if err != nil {
				return err
			}

			values := make([]string, len(peaks))
			for i, p := range peaks {
				values[i] = fmt.Sprintf("%.4f", p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(values, " "))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&bins, "bins", "n", 100, "Number of peak values")
	flags.Float64Var(&start, "start", 0, "Window start in seconds")
	flags.Float64Var(&end, "end", 0, "Window end in seconds (default: end of file)")

	return cmd
}
