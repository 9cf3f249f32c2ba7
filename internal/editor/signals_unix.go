//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package editor

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func (ed *Editor) handleSignals(ctx context.Context) {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGHUP, syscall.SIGQUIT)
	defer signal.Stop(sigch)
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigch:
			ed.signal(sig)
		}
	}
}

func (ed *Editor) signal(sig os.Signal) {
	switch sig {
	case syscall.SIGINT:
		ed.interrupted.Store(true)
		fmt.Fprintf(ed.stdout, "\n%s\n", ErrDefault)
	case syscall.SIGHUP:
		// A modified buffer is saved to ed.hup; the remembered file is
		// never touched.
		ed.mu.Lock()
		if ed.dirty {
			if _, err := ed.write(ed.hup); err != nil {
				ed.log.Warn("hangup write failed", "path", ed.hup, "error", err)
			}
		}
		ed.exit(0)
		ed.mu.Unlock()
	case syscall.SIGQUIT:
		// ignore
	}
}
