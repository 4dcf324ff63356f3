package bufreader

import "fmt"

// Reader is a read cursor over an owned byte buffer.
// The position always satisfies 0 <= Position() <= Len().
type Reader struct {
	buf []byte
	pos int
}

// New returns a Reader positioned at 0. The Reader takes ownership of data;
// the caller must not modify it afterwards.
func New(data []byte) *Reader {
	return &Reader{buf: data}
}

// Position returns the current read offset.
func (r *Reader) Position() int {
	return r.pos
}

// SetPosition moves the cursor to p. Len() is a valid position (at end).
func (r *Reader) SetPosition(p int) error {
	if p < 0 || p > len(r.buf) {
		return fmt.Errorf("%w: position %d outside [0, %d]", ErrOutOfRange, p, len(r.buf))
	}
	r.pos = p
	return nil
}

// Len returns the length of the buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Seek is SetPosition.
func (r *Reader) Seek(p int) error {
	return r.SetPosition(p)
}

// Move shifts the cursor by delta, which may be negative.
func (r *Reader) Move(delta int) error {
	if delta > len(r.buf)-r.pos || delta < -r.pos {
		return fmt.Errorf("%w: move by %d from position %d outside [0, %d]", ErrOutOfRange, delta, r.pos, len(r.buf))
	}
	r.pos += delta
	return nil
}

// Reset moves the cursor back to the start of the buffer.
func (r *Reader) Reset() *Reader {
	r.pos = 0
	return r
}

// Has reports whether more than count bytes remain after the cursor,
// that is Position()+count < Len(). With count 0 it is false at the end of
// the buffer; with count n it is false when exactly n bytes remain.
func (r *Reader) Has(count int) (bool, error) {
	if count < 0 {
		return false, fmt.Errorf("%w: count %d is negative", ErrInvalidArgument, count)
	}
	return count < len(r.buf)-r.pos, nil
}

// Append copies data onto the end of the buffer. The position is unchanged.
func (r *Reader) Append(data []byte) *Reader {
	buf := make([]byte, len(r.buf)+len(data))
	n := copy(buf, r.buf)
	copy(buf[n:], data)
	r.buf = buf
	return r
}

// ReadBytes returns a copy of the next n bytes and advances past them.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d is negative", ErrInvalidArgument, n)
	}
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadRest returns a copy of everything from the cursor to the end of the
// buffer and leaves the cursor at the end.
func (r *Reader) ReadRest() ([]byte, error) {
	remaining := len(r.buf) - r.pos
	if remaining < 0 {
		return nil, fmt.Errorf("%w: position %d beyond length %d", ErrInvalidState, r.pos, len(r.buf))
	}
	return r.ReadBytes(remaining)
}

// require checks that n bytes are available at the current position.
func (r *Reader) require(n int) error {
	if n > len(r.buf)-r.pos {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrOutOfRange, n, r.pos, len(r.buf)-r.pos)
	}
	return nil
}

// take returns the next n bytes of the internal buffer and advances past
// them. The slice aliases the buffer and must not escape the package.
func (r *Reader) take(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}
