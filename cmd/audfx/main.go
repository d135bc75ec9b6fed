// SPDX-License-Identifier: EPL-2.0

// Command audfx applies offline audio effects to files.
//
//	audfx eq --bass 6 --treble -3 song.mp3
//	audfx fade --in 2 --out 5 *.wav
//	audfx merge --crossfade 3 --match-rate intro.wav outro.ogg -o mix.wav
//	audfx waveform --bins 80 song.wav
//	audfx apply --config preset.yaml takes/*.wav
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.WithField("function", "main").Error(err)
		stop()
		os.Exit(1)
	}
}
