package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thimc/aed/internal/address"
)

type cmd func(ed *Editor) error

var cmds map[rune]cmd

func init() {
	cmds = map[rune]cmd{
		'a':         cmdAppend,
		'i':         cmdInsert,
		'H':         cmdHelp,
		'h':         cmdHelp,
		'l':         cmdPrint,
		'n':         cmdPrint,
		'p':         cmdPrint,
		'P':         cmdPrompt,
		'Q':         cmdQuit,
		'q':         cmdQuit,
		'=':         cmdLineCount,
		address.EOF: cmdNone,
	}
}

func (ed *Editor) exec() error {
	if cmd, ok := cmds[ed.in.Peek()]; ok {
		return cmd(ed)
	}
	ed.log.Debug("unknown command", "command", ed.in.Rest())
	return ErrUnknownCmd
}

func cmdAppend(ed *Editor) error {
	ed.in.Pop()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	return ed.insert(ed.Second)
}

func cmdInsert(ed *Editor) error {
	ed.in.Pop()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	return ed.insert(max(ed.Second-1, 0))
}

func cmdHelp(ed *Editor) error {
	r := ed.in.Pop()
	if ed.addrc > 0 {
		return ErrUnexpectedAddress
	}
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if r == 'H' {
		ed.verbose = !ed.verbose
		if !ed.verbose {
			return nil
		}
	}
	if ed.err != nil {
		fmt.Fprintln(ed.stderr, ed.err)
	}
	return nil
}

func cmdPrint(ed *Editor) error {
	if err := ed.validate(); err != nil {
		return err
	}
	if err := ed.getSuffix(); err != nil {
		return err
	}
	return ed.display(ed.First, ed.Second, ed.cs)
}

func cmdPrompt(ed *Editor) error {
	ed.in.Pop()
	if ed.addrc > 0 {
		return ErrUnexpectedAddress
	}
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if ed.up == "" {
		ed.up = DefaultPrompt
	}
	ed.prompt = !ed.prompt
	return nil
}

func cmdQuit(ed *Editor) error {
	r := ed.in.Pop()
	if ed.addrc > 0 {
		return ErrUnexpectedAddress
	}
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if r == 'q' && ed.dirty {
		ed.mu.Lock()
		ed.dirty = false
		ed.mu.Unlock()
		return ErrFileModified
	}
	ed.quit = true
	return nil
}

func cmdLineCount(ed *Editor) error {
	ed.in.Pop()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	n := ed.Second
	if ed.addrc < 1 {
		n = ed.Dollar
	}
	fmt.Fprintln(ed.stdout, n)
	return nil
}

// cmdNone handles a line without a command letter: an address alone
// prints the current line, a blank line does nothing.
func cmdNone(ed *Editor) error {
	if ed.addrc < 0 {
		return ErrNoCmd
	}
	if ed.Dot < 1 || ed.Dot > ed.Dollar {
		return ErrInvalidAddress
	}
	ed.cs |= suffixPrint
	return nil
}

// getSuffix consumes the print suffixes (p, l, n) following a command.
// Anything else left on the line is an error.
func (ed *Editor) getSuffix() error {
	for {
		switch ed.in.Peek() {
		case 'n':
			ed.cs |= suffixEnumerate
		case 'l':
			ed.cs |= suffixList
		case 'p':
			ed.cs |= suffixPrint
		case ' ', '\t':
		default:
			if rest := ed.in.Rest(); rest != "" {
				ed.log.Debug("invalid command suffix", "suffix", rest)
				return ErrInvalidCmdSuffix
			}
			return nil
		}
		ed.in.Pop()
	}
}

func (ed *Editor) display(start, end int, flags suffix) error {
	if flags == 0 {
		return nil
	}
	if start < 1 || end > ed.Dollar {
		return ErrInvalidAddress
	}
	for i := start; i <= end; i++ {
		ed.Dot = i
		var ln string
		if flags&suffixEnumerate > 0 {
			ln = fmt.Sprintf("%d\t", i)
		}
		if flags&suffixList > 0 {
			quoted := strings.ReplaceAll(strconv.QuoteToASCII(ed.lines[i-1]), "$", "\\$")
			ln += quoted[1:len(quoted)-1] + "$"
		} else {
			ln += ed.lines[i-1]
		}
		fmt.Fprintln(ed.stdout, ln)
	}
	ed.cs = 0
	return nil
}
