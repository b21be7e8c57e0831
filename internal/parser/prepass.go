package parser

import (
	"bytes"
	"fmt"
)

// Prepare normalizes a wiki page before parsing: non-breaking spaces become
// plain spaces, and leading spaces of a line are replaced by an explicit
// indent marker "@INDENT-n@". Without the marker the indent would be lost
// during tokenization, but it is significant for lists and embedded code.
func Prepare(src []byte) []byte {
	src = bytes.ReplaceAll(src, []byte(" "), []byte(" "))
	var buf bytes.Buffer
	buf.Grow(len(src))
	for pos := 0; pos < len(src); {
		line := src[pos:]
		hasEOL := false
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			hasEOL = true
		}
		pos += len(line) + 1
		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}
		if n > 0 && n < len(line) && !isSpaceByte(line[n]) {
			fmt.Fprintf(&buf, "@INDENT-%d@", n)
			buf.Write(line[n:])
		} else {
			buf.Write(line)
		}
		if hasEOL {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\f', '\v', '\r':
		return true
	}
	return false
}
