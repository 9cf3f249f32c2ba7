package address

import "strings"

// Scan splits the address expression at the front of in into raw runs and
// leaves in positioned at the first character that is not address syntax.
// A separator that closes a term with nothing in it is preceded by an empty
// run. Blanks are skipped and never split a run of digits.
func Scan(in *Input) []string {
	var (
		runs []string
		num  strings.Builder
		term bool // the current term has produced a run
	)
	flush := func() {
		if num.Len() > 0 {
			runs = append(runs, num.String())
			num.Reset()
			term = true
		}
	}
	for !in.EOF() {
		r := in.Peek()
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(in.Pop())
		case r == ' ' || r == '\t':
			in.Pop()
		case strings.ContainsRune(symbols, r):
			flush()
			runs = append(runs, string(in.Pop()))
			term = true
		case strings.ContainsRune(separators, r):
			flush()
			if !term {
				runs = append(runs, "")
			}
			runs = append(runs, string(in.Pop()))
			term = false
		default:
			flush()
			return runs
		}
	}
	flush()
	return runs
}

// Tokenize scans the address expression at the front of in and classifies
// every run. The command letter, if any, is left unconsumed.
func Tokenize(in *Input) ([]Token, error) {
	runs := Scan(in)
	toks := make([]Token, 0, len(runs))
	for _, s := range runs {
		t, err := ParseToken(s)
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
	}
	return toks, nil
}
