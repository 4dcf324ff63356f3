package bufreader

import (
	"fmt"
	"unicode/utf8"
)

// ReadString decodes the next n bytes as text under enc and advances past
// them. The zero Encoding is UTF-8.
func (r *Reader) ReadString(n int, enc Encoding) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: length %d is negative", ErrInvalidArgument, n)
	}
	if err := r.require(n); err != nil {
		return "", err
	}
	s, err := enc.decode(r.buf[r.pos : r.pos+n])
	if err != nil {
		return "", fmt.Errorf("%w at offset %d", err, r.pos)
	}
	r.pos += n
	return s, nil
}

// ReadTerminatedString reads a NUL-terminated string. See ReadStringUntil.
func (r *Reader) ReadTerminatedString(enc Encoding) (string, error) {
	return r.ReadStringUntil(enc, "\x00")
}

// ReadStringUntil reads text up to the next byte equal to terminator and
// consumes the terminator without returning it.
//
// terminator must be a single character. A one-byte string matches that
// byte; otherwise the character's code point is compared against each byte,
// so characters above U+00FF never match. The terminator must lie inside
// the buffer: reaching the end without finding it is ErrOutOfRange.
func (r *Reader) ReadStringUntil(enc Encoding, terminator string) (string, error) {
	var term rune
	switch {
	case len(terminator) == 1:
		term = rune(terminator[0])
	case utf8.RuneCountInString(terminator) == 1:
		term, _ = utf8.DecodeRuneInString(terminator)
	default:
		return "", fmt.Errorf("%w: terminator %q must be a single character", ErrInvalidArgument, terminator)
	}

	n := 0
	for r.pos+n < len(r.buf) && rune(r.buf[r.pos+n]) != term {
		n++
	}
	if r.pos+n >= len(r.buf) {
		return "", fmt.Errorf("%w: terminator %q not found after offset %d", ErrOutOfRange, terminator, r.pos)
	}

	s, err := r.ReadString(n, enc)
	if err != nil {
		return "", err
	}
	r.pos++
	return s, nil
}
