package bufreader

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Encoding selects how ReadString and friends turn bytes into text.
// The zero value is UTF-8.
//
// The text encodings substitute U+FFFD for byte sequences they cannot
// decode. Hex, Base64 and Base64URL render the raw bytes instead of
// decoding them.
type Encoding struct {
	name string
	dec  func([]byte) (string, error)
}

// Built-in encodings.
var (
	UTF8      = fromText("utf8", unicode.UTF8)
	UTF16LE   = Encoding{name: "utf16le", dec: decodeUTF16LE}
	Latin1    = fromText("latin1", charmap.ISO8859_1)
	ASCII     = Encoding{name: "ascii", dec: decodeASCII}
	Hex       = Encoding{name: "hex", dec: func(b []byte) (string, error) { return hex.EncodeToString(b), nil }}
	Base64    = Encoding{name: "base64", dec: func(b []byte) (string, error) { return base64.StdEncoding.EncodeToString(b), nil }}
	Base64URL = Encoding{name: "base64url", dec: func(b []byte) (string, error) { return base64.RawURLEncoding.EncodeToString(b), nil }}
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// LookupEncoding resolves an encoding by name, case-insensitively.
// Besides the built-in names (utf8, utf-8, utf16le, utf-16le, ucs2, ucs-2,
// latin1, binary, ascii, hex, base64, base64url) any IANA charset name
// known to golang.org/x/text is accepted. An empty name is UTF-8.
func LookupEncoding(name string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "utf16le", "utf-16le", "ucs2", "ucs-2":
		return UTF16LE, nil
	case "latin1", "binary":
		return Latin1, nil
	case "ascii":
		return ASCII, nil
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	case "base64url":
		return Base64URL, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return Encoding{}, fmt.Errorf("%w: unknown encoding %q", ErrInvalidArgument, name)
	}
	return fromText(key, enc), nil
}

// Name returns the canonical name of the encoding.
func (e Encoding) Name() string {
	if e.dec == nil {
		return UTF8.name
	}
	return e.name
}

func (e Encoding) String() string {
	return e.Name()
}

func (e Encoding) decode(b []byte) (string, error) {
	if e.dec == nil {
		return UTF8.dec(b)
	}
	return e.dec(b)
}

func fromText(name string, te encoding.Encoding) Encoding {
	return Encoding{
		name: name,
		dec: func(b []byte) (string, error) {
			out, err := te.NewDecoder().Bytes(b)
			if err != nil {
				return "", fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
			}
			return string(out), nil
		},
	}
}

// decodeUTF16LE drops a trailing odd byte before decoding.
func decodeUTF16LE(b []byte) (string, error) {
	out, err := utf16le.NewDecoder().Bytes(b[:len(b)&^1])
	if err != nil {
		return "", fmt.Errorf("%w: utf16le: %v", ErrDecode, err)
	}
	return string(out), nil
}

// decodeASCII clears the high bit of every byte.
func decodeASCII(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteByte(c & 0x7f)
	}
	return sb.String(), nil
}
