package logger

import "log/slog"

// Standard field keys. Use them consistently so log lines can be queried
// across commands.
const (
	KeyPath       = "path"        // Input file path, "-" for stdin
	KeySize       = "size"        // Input size in bytes
	KeyLimit      = "limit"       // Configured size limit
	KeyOp         = "op"          // Read script token being executed
	KeyStep       = "step"        // Index of the step in the script
	KeyOffset     = "offset"      // Cursor position before the operation
	KeyEnd        = "end"         // Cursor position after the operation
	KeyCount      = "count"       // Byte count requested
	KeyEncoding   = "encoding"    // Text encoding name
	KeyFormat     = "format"      // Output format
	KeyConfig     = "config"      // Configuration file path
	KeyDurationMs = "duration_ms" // Elapsed time in milliseconds
	KeyError      = "error"       // Error message
)

// Err returns an error attribute, or an empty attribute for a nil error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Offset returns a cursor offset attribute.
func Offset(off int) slog.Attr {
	return slog.Int(KeyOffset, off)
}

// Op returns a script operation attribute.
func Op(op string) slog.Attr {
	return slog.String(KeyOp, op)
}

// Path returns an input path attribute.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}
