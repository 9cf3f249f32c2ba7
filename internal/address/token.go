package address

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TokenKind tags the variant held by a Token.
type TokenKind int

const (
	Empty TokenKind = iota
	Numeric
	Symbolic
	Separator
)

func (k TokenKind) String() string {
	switch k {
	case Numeric:
		return "Numeric"
	case Symbolic:
		return "Symbolic"
	case Separator:
		return "Separator"
	}
	return "Empty"
}

const (
	symbols    = ".$+-"
	separators = ",;"
)

// Token is one classified run of address syntax. N is set for Numeric
// tokens and C for Symbolic and Separator tokens.
type Token struct {
	Kind TokenKind
	N    int
	C    rune
}

func (t Token) String() string {
	switch t.Kind {
	case Numeric:
		return fmt.Sprintf("Numeric(%d)", t.N)
	case Symbolic, Separator:
		return fmt.Sprintf("%s(%c)", t.Kind, t.C)
	}
	return "Empty"
}

func NumericToken(n int) Token    { return Token{Kind: Numeric, N: n} }
func SymbolicToken(c rune) Token  { return Token{Kind: Symbolic, C: c} }
func SeparatorToken(c rune) Token { return Token{Kind: Separator, C: c} }
func EmptyToken() Token           { return Token{Kind: Empty} }

// ParseToken classifies a single run produced by Scan.
func ParseToken(s string) (Token, error) {
	switch {
	case s == "":
		return EmptyToken(), nil
	case isDigits(s):
		n, err := strconv.Atoi(s)
		if err != nil {
			return Token{}, weirdInput(s)
		}
		return NumericToken(n), nil
	case utf8.RuneCountInString(s) == 1 && strings.ContainsAny(s, symbols):
		r, _ := utf8.DecodeRuneInString(s)
		return SymbolicToken(r), nil
	case utf8.RuneCountInString(s) == 1 && strings.ContainsAny(s, separators):
		r, _ := utf8.DecodeRuneInString(s)
		return SeparatorToken(r), nil
	}
	return Token{}, weirdInput(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
