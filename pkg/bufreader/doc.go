// Package bufreader provides a cursor over an in-memory byte buffer for
// sequential decoding of binary data.
//
// A Reader pairs a buffer with a read position. Every read checks that the
// whole value fits between the position and the end of the buffer before
// touching either: a successful read advances the position by exactly the
// encoded width, a failed read leaves the Reader as it was.
//
//	r := bufreader.New(data)
//	name, err := r.ReadTerminatedString(bufreader.UTF8)
//	if err != nil {
//	    return err
//	}
//	id, err := r.ReadInt32BE()
//	if err != nil {
//	    return err
//	}
//
// Errors wrap one of ErrInvalidArgument, ErrOutOfRange, ErrInvalidState or
// ErrDecode and should be tested with errors.Is.
//
// Byte slices and strings returned by the Reader are copies; appending to
// the Reader or mutating a returned slice never affects the other.
//
// A Reader is not safe for concurrent use.
package bufreader
