package editor

import (
	"bufio"
	"os"
	"strings"
)

type buffer struct {
	dirty bool     // modified state
	lines []string // file content
	path  string   // full file path to the file
}

// insert places lines after line dest (0 inserts at the top).
func (b *buffer) insert(dest int, lines []string) {
	b.lines = append(b.lines[:dest], append(lines, b.lines[dest:]...)...)
}

// load replaces the buffer with the contents of path and returns the number
// of bytes read.
func (b *buffer) load(path string) (int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var lines []string
	if len(buf) > 0 {
		lines = strings.Split(strings.TrimSuffix(string(buf), "\n"), "\n")
	}
	*b = buffer{lines: lines, path: path}
	return len(buf), nil
}

// write stores the whole buffer in path and returns the number of bytes
// written.
func (b *buffer) write(path string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	var siz int
	for _, ln := range b.lines {
		n, err := w.WriteString(ln + "\n")
		if err != nil {
			return siz, err
		}
		siz += n
	}
	return siz, w.Flush()
}
