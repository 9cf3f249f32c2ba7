// Package address scans and resolves ed-style address expressions such as
// "1,$", ".;+" or ",".
package address

import "math"

// State is the part of the editor that addresses are resolved against.
type State struct {
	Dot    int // current line
	Dollar int // last line, always the buffer length
	First  int // address1 of the last successful resolution
	Second int // address2 of the last successful resolution
}

// resolver accumulates one left-to-right pass over the tokens. Nothing in
// it is visible to the caller until every check has passed.
type resolver struct {
	first  int
	second int
	dot    int
	count  int  // -1 until the first token is seen
	def    rune // separator that supplied the default range, or 0
	repeat bool // only Empty tokens so far
	term   bool // the current term already holds an address
}

// address counts the current term the first time one of its tokens
// supplies or moves the running address.
func (r *resolver) address() {
	if !r.term {
		r.count++
	}
	r.term = true
}

// Resolve folds toks into a new (First, Second, Dot) triple and commits it
// to st. It returns the number of addresses supplied: 0 when the range was
// defaulted or repeated, 1 for a single address and 2 or more for a range.
// On error st is left untouched.
func Resolve(toks []Token, st *State) (int, error) {
	if len(toks) == 0 {
		toks = []Token{EmptyToken()}
	}
	r := resolver{
		first:  st.First,
		second: st.Second,
		dot:    st.Dot,
		count:  -1,
		repeat: true,
	}
	for _, t := range toks {
		if err := r.step(t, st); err != nil {
			return -1, err
		}
	}
	if r.count <= 1 && r.def == 0 && !r.repeat {
		r.first = r.second
	}
	if r.def != ';' || r.count > 0 {
		r.dot = r.second
	}

	switch {
	case r.first < 1 || r.first > st.Dollar:
		return -1, linum(r.first)
	case r.second < 1 || r.second > st.Dollar:
		return -1, linum(r.second)
	case r.first > r.second:
		return -1, &Error{Kind: KindMalformed}
	}
	st.First, st.Second, st.Dot = r.first, r.second, r.dot
	return r.count, nil
}

func (r *resolver) step(t Token, st *State) error {
	if r.count < 0 {
		r.count = 0
	}
	if t.Kind != Empty {
		r.repeat = false
	}
	switch t.Kind {
	case Numeric:
		r.second = t.N
		r.address()
	case Symbolic:
		switch t.C {
		case '.':
			r.second = r.dot
		case '$':
			r.second = st.Dollar
		case '+':
			if r.second < math.MaxInt {
				r.second++
			}
		case '-':
			if r.second == 0 {
				return &Error{Kind: KindUnderflow}
			}
			r.second--
		}
		r.address()
	case Separator:
		r.term = false
		if t.C == ';' {
			r.dot = r.second
		}
		r.first = r.second
		if r.count <= 0 {
			r.count = 0
			r.def = t.C
			r.first = 1
			if t.C == ';' {
				r.first = r.dot
			}
			r.second = st.Dollar
		}
	case Empty:
		r.first, r.second = st.First, st.Second
	}
	return nil
}
