//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package editor

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func (ed *Editor) handleSignals(ctx context.Context) {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	defer signal.Stop(sigch)
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigch:
			ed.interrupted.Store(true)
			fmt.Fprintf(ed.stdout, "\n%s\n", ErrDefault)
		}
	}
}
