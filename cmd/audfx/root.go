// SPDX-License-Identifier: EPL-2.0

package main

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audfx/internal/config"
)

// options holds the persistent flags and the configuration they resolve to.
type options struct {
	configPath string
	logLevel   string
	bitDepth   int
	workers    int
	outDir     string
	mono       bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "audfx",
		Short:         "Offline audio effects: EQ, fades, reverse, merge, ducking, waveforms",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "",
		"Path to a YAML config file (default: ./audfx.yaml when present)")
	flags.StringVar(&opts.logLevel, "log-level", "info",
		"Log level: trace, debug, info, warn, error")
	flags.IntVarP(&opts.bitDepth, "bit-depth", "b", 16,
		"Output WAV bit depth: 8, 16, 24 or 32")
	flags.IntVarP(&opts.workers, "workers", "w", 0,
		"Files processed concurrently (default: number of CPUs)")
	flags.StringVarP(&opts.outDir, "out-dir", "d", "",
		"Directory for output files (default: next to each input)")
	flags.BoolVar(&opts.mono, "mono", false,
		"Downmix inputs to mono before processing")

	rootCmd.AddCommand(
		newEQCmd(opts),
		newFadeCmd(opts),
		newReverseCmd(opts),
		newDuckCmd(opts),
		newApplyCmd(opts),
		newMergeCmd(opts),
		newWaveformCmd(opts),
	)

	return rootCmd
}

// load resolves the configuration: file, then environment, then any flag the
// user set explicitly.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("bit-depth") {
		cfg.BitDepth = o.bitDepth
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logrus.SetLevel(cfg.Level())
	logrus.WithFields(logrus.Fields{
		"function":  "options.load",
		"command":   cmd.Name(),
		"bit_depth": cfg.BitDepth,
		"workers":   cfg.Workers,
	}).Debug("Configuration loaded")

	o.cfg = cfg
	return nil
}

// outputPath names the result of running tag on input: song.mp3 becomes
// song-eq.wav, in outDir when set.
func (o *options) outputPath(input, tag string) string {
	dir := filepath.Dir(input)
	if o.outDir != "" {
		dir = o.outDir
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"-"+tag+".wav")
}
