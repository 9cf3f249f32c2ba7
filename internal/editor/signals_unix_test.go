//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package editor

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thimc/aed/internal/testutil"
)

func TestSignalHangup(t *testing.T) {
	tests := []struct {
		name  string
		dirty bool
	}{
		{name: "modified buffer is saved", dirty: true},
		{name: "clean buffer is not saved", dirty: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := -1
			ed := NewEditor(
				WithStdout(io.Discard),
				WithLogger(testutil.NewTestLogger(t)),
				withBuffer([]string{"one", "two"}),
			)
			ed.dirty = tt.dirty
			ed.hup = filepath.Join(t.TempDir(), DefaultHangupFile)
			ed.exit = func(c int) { code = c }

			ed.signal(syscall.SIGHUP)
			assert.Equal(t, 0, code)

			buf, err := os.ReadFile(ed.hup)
			if !tt.dirty {
				assert.ErrorIs(t, err, os.ErrNotExist)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "one\ntwo\n", string(buf))
		})
	}
}

func TestSignalHangupDuringInsert(t *testing.T) {
	var text strings.Builder
	for i := 0; i < 500; i++ {
		text.WriteString("line\n")
	}
	text.WriteString(".\n")

	ed := NewEditor(
		WithStdin(strings.NewReader(text.String())),
		WithStdout(io.Discard),
		WithLogger(testutil.NewTestLogger(t)),
		withBuffer([]string{"one", "two"}),
	)
	ed.dirty = true
	ed.hup = filepath.Join(t.TempDir(), DefaultHangupFile)
	done := make(chan int, 1)
	ed.exit = func(c int) { done <- c }

	go ed.signal(syscall.SIGHUP)
	require.NoError(t, ed.run("$a"))
	assert.Equal(t, 0, <-done)

	buf, err := os.ReadFile(ed.hup)
	require.NoError(t, err)
	saved := strings.Split(strings.TrimSuffix(string(buf), "\n"), "\n")
	require.GreaterOrEqual(t, len(saved), 2)
	assert.Equal(t, ed.lines[:len(saved)], saved)
}

func TestSignalInterrupt(t *testing.T) {
	var stdout bytes.Buffer
	ed := NewEditor(WithStdout(&stdout))
	ed.signal(syscall.SIGINT)
	assert.True(t, ed.interrupted.Load())
	assert.Equal(t, "\n?\n", stdout.String())

	stdout.Reset()
	ed.signal(syscall.SIGQUIT)
	assert.Empty(t, stdout.String())
}
