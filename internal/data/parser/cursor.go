package parser

import (
	"strconv"
	"strings"
)

// cursor is a read position over a line. Every read returns the advanced
// cursor instead of mutating the receiver, so a failed read leaves the
// caller holding the position it failed at.
type cursor struct {
	rest string
}

func newCursor(line string) cursor {
	return cursor{rest: line}
}

// Residual returns the unconsumed part of the line.
func (c cursor) Residual() string {
	return c.rest
}

func (c cursor) atEnd() bool {
	return len(c.rest) == 0
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (c cursor) skipSpace() cursor {
	i := 0
	for i < len(c.rest) && isSpace(c.rest[i]) {
		i++
	}
	return cursor{rest: c.rest[i:]}
}

// token skips leading whitespace and reads up to the next whitespace byte.
// ok is false when no non-whitespace content remains.
func (c cursor) token() (tok string, next cursor, ok bool) {
	c = c.skipSpace()
	if c.atEnd() {
		return "", c, false
	}
	i := 0
	for i < len(c.rest) && !isSpace(c.rest[i]) {
		i++
	}
	return c.rest[:i], cursor{rest: c.rest[i:]}, true
}

// delimiter consumes exactly one character. It fails at end of input.
func (c cursor) delimiter() (cursor, bool) {
	if c.atEnd() {
		return c, false
	}
	return cursor{rest: c.rest[1:]}, true
}

// integer reads a whitespace-delimited base-10 integer followed by one
// delimiter character. On a malformed token the returned cursor is still
// positioned at the token; on a missing delimiter it is past the token.
func (c cursor) integer(bitSize int) (int64, cursor, bool) {
	start := c.skipSpace()
	tok, next, ok := start.token()
	if !ok {
		return 0, start, false
	}
	n, err := strconv.ParseInt(tok, 10, bitSize)
	if err != nil {
		return 0, start, false
	}
	next, ok = next.delimiter()
	if !ok {
		return 0, next, false
	}
	return n, next, true
}

// line reads the remainder up to the first newline. At least one character
// must be available.
func (c cursor) line() (string, cursor, bool) {
	if c.atEnd() {
		return "", c, false
	}
	if i := strings.IndexByte(c.rest, '\n'); i >= 0 {
		return c.rest[:i], cursor{rest: c.rest[i+1:]}, true
	}
	return c.rest, cursor{}, true
}
