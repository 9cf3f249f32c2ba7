package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []string
	}{
		{name: "empty", content: "", lines: nil},
		{name: "single", content: "hello\n", lines: []string{"hello"}},
		{name: "no trailing newline", content: "a\nb", lines: []string{"a", "b"}},
		{name: "blank lines", content: "a\n\nb\n", lines: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			b := buffer{dirty: true, lines: []string{"stale"}}
			n, err := b.load(path)
			require.NoError(t, err)
			assert.Equal(t, len(tt.content), n)
			assert.Equal(t, tt.lines, b.lines)
			assert.Equal(t, path, b.path)
			assert.False(t, b.dirty)
		})
	}
}

func TestBufferLoadMissing(t *testing.T) {
	b := buffer{lines: []string{"kept"}}
	_, err := b.load(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, []string{"kept"}, b.lines)
}

func TestBufferWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	b := buffer{lines: []string{"x", "yy", ""}}
	n, err := b.write(path)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\nyy\n\n", string(got))
}

func TestBufferInsert(t *testing.T) {
	b := buffer{lines: []string{"a", "d"}}
	b.insert(1, []string{"b", "c"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, b.lines)
	b.insert(0, []string{"0"})
	assert.Equal(t, []string{"0", "a", "b", "c", "d"}, b.lines)
	b.insert(5, []string{"e"})
	assert.Equal(t, []string{"0", "a", "b", "c", "d", "e"}, b.lines)
}
