package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		cmd  string
		runs []string
		rest string
	}{
		{cmd: "", runs: nil},
		{cmd: "p", runs: nil, rest: "p"},
		{cmd: "8", runs: []string{"8"}},
		{cmd: "12p", runs: []string{"12"}, rest: "p"},
		{cmd: "1,5", runs: []string{"1", ",", "5"}},
		{cmd: "1,$p", runs: []string{"1", ",", "$"}, rest: "p"},
		{cmd: ",", runs: []string{"", ","}},
		{cmd: ";p", runs: []string{"", ";"}, rest: "p"},
		{cmd: ",,", runs: []string{"", ",", "", ","}},
		{cmd: ",;", runs: []string{"", ",", "", ";"}},
		{cmd: "3;", runs: []string{"3", ";"}},
		{cmd: ".,+", runs: []string{".", ",", "+"}},
		{cmd: "2.", runs: []string{"2", "."}},
		{cmd: "1 2", runs: []string{"12"}},
		{cmd: " 1 ,\t3 n", runs: []string{"1", ",", "3"}, rest: "n"},
		{cmd: "=", runs: nil, rest: "="},
		{cmd: "4=", runs: []string{"4"}, rest: "="},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			in := NewInput(tt.cmd)
			assert.Equal(t, tt.runs, Scan(in))
			assert.Equal(t, tt.rest, in.Rest())
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		cmd  string
		toks []Token
	}{
		{cmd: "", toks: []Token{}},
		{cmd: "1,$", toks: []Token{NumericToken(1), SeparatorToken(','), SymbolicToken('$')}},
		{cmd: ",", toks: []Token{EmptyToken(), SeparatorToken(',')}},
		{cmd: ";", toks: []Token{EmptyToken(), SeparatorToken(';')}},
		{cmd: "-,.p", toks: []Token{SymbolicToken('-'), SeparatorToken(','), SymbolicToken('.')}},
		{cmd: "10;+", toks: []Token{NumericToken(10), SeparatorToken(';'), SymbolicToken('+')}},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			toks, err := Tokenize(NewInput(tt.cmd))
			require.NoError(t, err)
			assert.Equal(t, tt.toks, toks)
		})
	}
}

func TestTokenizeOverflow(t *testing.T) {
	in := NewInput("99999999999999999999999p")
	_, err := Tokenize(in)
	require.ErrorIs(t, err, ErrWeirdInput)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "99999999999999999999999", aerr.Text)
	assert.Equal(t, "p", in.Rest())
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		run   string
		tok   Token
		weird bool
	}{
		{run: "", tok: EmptyToken()},
		{run: "007", tok: NumericToken(7)},
		{run: ".", tok: SymbolicToken('.')},
		{run: "$", tok: SymbolicToken('$')},
		{run: "+", tok: SymbolicToken('+')},
		{run: "-", tok: SymbolicToken('-')},
		{run: ",", tok: SeparatorToken(',')},
		{run: ";", tok: SeparatorToken(';')},
		{run: "12x", weird: true},
		{run: "1$", weird: true},
		{run: "$$", weird: true},
		{run: ",;", weird: true},
		{run: "٣", weird: true},
	}
	for _, tt := range tests {
		t.Run(tt.run, func(t *testing.T) {
			tok, err := ParseToken(tt.run)
			if tt.weird {
				require.ErrorIs(t, err, ErrWeirdInput)
				assert.Equal(t, tt.run+": unsupported address", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tok, tok)
		})
	}
}

func TestInput(t *testing.T) {
	in := NewInput("1é")
	assert.Equal(t, '1', in.Peek())
	assert.Equal(t, '1', in.Pop())
	assert.Equal(t, "é", in.Rest())
	assert.Equal(t, 'é', in.Pop())
	assert.True(t, in.EOF())
	assert.Equal(t, EOF, in.Peek())
	assert.Equal(t, EOF, in.Pop())
	assert.Equal(t, "", in.Rest())
}
