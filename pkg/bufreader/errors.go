package bufreader

import "errors"

var (
	// ErrInvalidArgument is returned when an argument is invalid regardless of
	// the buffer contents (negative length, multi-character terminator,
	// unknown encoding name).
	ErrInvalidArgument = errors.New("bufreader: invalid argument")

	// ErrOutOfRange is returned when a position or read would fall outside
	// the buffer.
	ErrOutOfRange = errors.New("bufreader: out of range")

	// ErrInvalidState is returned when the Reader's own invariants do not hold.
	ErrInvalidState = errors.New("bufreader: invalid state")

	// ErrDecode is returned when a text decoder rejects its input. The
	// built-in encodings substitute U+FFFD instead and never return it.
	ErrDecode = errors.New("bufreader: decode failed")
)
