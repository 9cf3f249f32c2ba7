package address

// EOF is returned by Peek and Pop once the whole line has been consumed.
const EOF rune = -1

// Input is a scanning cursor over the characters of one command line.
// The position only ever moves forward.
type Input struct {
	buf []rune
	pos int
}

// NewInput returns a cursor positioned at the start of line.
func NewInput(line string) *Input { return &Input{buf: []rune(line)} }

// Peek returns the current character without consuming it.
func (i *Input) Peek() rune {
	if i.EOF() {
		return EOF
	}
	return i.buf[i.pos]
}

// Pop consumes and returns the current character.
func (i *Input) Pop() rune {
	r := i.Peek()
	if r != EOF {
		i.pos++
	}
	return r
}

// EOF reports whether the whole line has been consumed.
func (i *Input) EOF() bool { return i.pos >= len(i.buf) }

// Rest returns the unconsumed remainder of the line.
func (i *Input) Rest() string { return string(i.buf[i.pos:]) }
