// Package editor runs the ed-style command loop around the address engine.
package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/thimc/aed/internal/address"
)

// Only these messages are shown, and only in verbose mode; otherwise every
// failure prints ErrDefault.
var (
	ErrDefault           = errors.New("?")
	ErrCannotReadFile    = errors.New("cannot read input file")
	ErrFileModified      = errors.New("warning: file modified")
	ErrInterrupt         = errors.New("interrupt")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidCmdSuffix  = errors.New("invalid command suffix")
	ErrNoCmd             = errors.New("no command")
	ErrUnexpectedAddress = errors.New("unexpected address")
	ErrUnknownCmd        = errors.New("unknown command")
)

const (
	DefaultPrompt     = "*"
	DefaultHangupFile = "ed.hup"
)

type suffix int

const (
	suffixPrint suffix = 1 << iota
	suffixList
	suffixEnumerate
)

// Mode is the input mode of the editor.
type Mode int

const (
	ModeCommand Mode = iota // lines are commands
	ModeInsert              // lines are text, ended by a lone "."
)

// LineReader supplies input lines without their trailing newline. It
// returns io.EOF when the input is exhausted and ErrInterrupt when the
// user interrupted the read.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type scanReader struct {
	*bufio.Scanner
	out io.Writer
}

func (r *scanReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.Scan() {
		if err := r.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.Text(), nil
}

type Editor struct {
	mu sync.Mutex // guards buffer writes and the hangup save
	buffer
	address.State

	in    *address.Input // current command line
	addrc int            // addresses supplied, -1 when the line was blank
	mode  Mode
	cs    suffix // command suffix
	err   error  // previous error

	prompt  bool   // state for rendering the prompt
	up      string // user prompt
	verbose bool   // toggle verbose errors
	silent  bool   // suppress diagnostics
	script  bool   // stdin is not a terminal
	lc      int    // line count (script mode)
	quit    bool

	interrupted atomic.Bool
	hup         string
	exit        func(int)

	reader LineReader
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
	style  func(...string) string
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) { ed.stdin = stdin }
}

func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) { ed.stdout = stdout }
}

func WithStderr(stderr io.Writer) Option {
	return func(ed *Editor) { ed.stderr = stderr }
}

// WithReader replaces the line source built from the stdin reader, e.g.
// with a readline instance on an interactive terminal.
func WithReader(r LineReader) Option {
	return func(ed *Editor) { ed.reader = r }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

func WithVerbose(t bool) Option {
	return func(ed *Editor) { ed.verbose = t }
}

// WithScript marks the input as non-interactive; the first error then
// ends the session.
func WithScript(t bool) Option {
	return func(ed *Editor) { ed.script = t }
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) {
		ed.up = prompt
		ed.prompt = ed.up != ""
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(ed *Editor) { ed.log = l }
}

// WithErrorStyle renders verbose error messages, typically a lipgloss
// style's Render method.
func WithErrorStyle(render func(...string) string) Option {
	return func(ed *Editor) { ed.style = render }
}

// WithFile loads path into the buffer. It should be the last option so
// the byte count goes to the configured stdout.
func WithFile(path string) Option {
	return func(ed *Editor) {
		if err := ed.read(path); err != nil {
			ed.path = path
			ed.errorln(err)
		}
	}
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    slog.New(slog.DiscardHandler),
		hup:    DefaultHangupFile,
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(ed)
	}
	if ed.reader == nil {
		ed.reader = &scanReader{Scanner: bufio.NewScanner(ed.stdin), out: ed.stdout}
	}
	return ed
}

// Run reads and executes commands until the input ends or a quit command
// succeeds. In script mode the first failing command ends the session with
// an error.
func (ed *Editor) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go ed.handleSignals(ctx)
	for !ed.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		ln, err := ed.reader.ReadLine(ed.promptString())
		if errors.Is(err, io.EOF) {
			ln, err = "q", nil
		}
		if err != nil && !errors.Is(err, ErrInterrupt) {
			return err
		}
		if err == nil {
			err = ed.run(ln)
		}
		if err == nil {
			continue
		}
		ed.errorln(err)
		if ed.script {
			return fmt.Errorf("script, line %d: %w", ed.lc, err)
		}
	}
	return nil
}

// run executes a single command line.
func (ed *Editor) run(ln string) error {
	ed.lc++
	ed.in = address.NewInput(ln)
	if err := ed.resolve(); err != nil {
		return err
	}
	if err := ed.exec(); err != nil {
		return err
	}
	return ed.display(ed.Dot, ed.Dot, ed.cs)
}

// resolve scans the address expression at the front of the command line
// and commits it to the addressing state.
func (ed *Editor) resolve() error {
	ed.cs = 0
	toks, err := address.Tokenize(ed.in)
	if err != nil {
		return err
	}
	switch {
	case len(toks) == 0 && ed.in.EOF():
		ed.addrc = -1
		return nil
	case len(toks) == 0 && ed.Dollar == 0:
		// Nothing to resolve against; commands that need a line fail
		// on their own and a, i and = still work.
		ed.addrc = 0
		return nil
	}
	n, err := address.Resolve(toks, &ed.State)
	if err != nil {
		ed.log.Debug("address rejected", "tokens", toks, "error", err)
		return err
	}
	ed.addrc = n
	ed.log.Debug("address resolved", "tokens", toks,
		"first", ed.First, "second", ed.Second, "dot", ed.Dot, "count", n)
	return nil
}

func (ed *Editor) promptString() string {
	if ed.prompt {
		return ed.up
	}
	return ""
}

func (ed *Editor) errorln(err error) {
	ed.err = err
	if ed.verbose {
		msg := err.Error()
		if ed.style != nil {
			msg = ed.style(msg)
		}
		fmt.Fprintln(ed.stderr, msg)
		return
	}
	fmt.Fprintln(ed.stderr, ErrDefault)
}

func (ed *Editor) read(path string) error {
	ed.mu.Lock()
	siz, err := ed.load(path)
	ed.mu.Unlock()
	if err != nil {
		ed.log.Debug("read failed", "path", path, "error", err)
		return ErrCannotReadFile
	}
	ed.sync()
	ed.Dot = ed.Dollar
	ed.First, ed.Second = ed.Dot, ed.Dot
	if !ed.silent {
		fmt.Fprintln(ed.stdout, siz)
	}
	return nil
}

// sync recomputes the last line after the buffer changed.
func (ed *Editor) sync() { ed.Dollar = len(ed.lines) }

// validate reports whether the committed range addresses existing lines.
func (ed *Editor) validate() error {
	if ed.First < 1 || ed.First > ed.Second || ed.Second > ed.Dollar {
		return ErrInvalidAddress
	}
	return nil
}

// insert reads text lines until a lone "." and inserts them after line
// dest.
func (ed *Editor) insert(dest int) error {
	ed.mode = ModeInsert
	defer func() { ed.mode = ModeCommand }()
	ed.interrupted.Store(false)
	for {
		ln, err := ed.reader.ReadLine("")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if ed.interrupted.Swap(false) {
			return ErrInterrupt
		}
		ed.lc++
		if ln == "." {
			return nil
		}
		ed.mu.Lock()
		ed.buffer.insert(dest, []string{ln})
		ed.dirty = true
		ed.mu.Unlock()
		dest++
		ed.sync()
		ed.Dot = dest
		ed.First, ed.Second = dest, dest
	}
}
