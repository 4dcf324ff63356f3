// Package script runs short read scripts against a bufreader.Reader.
//
// A script is a list of tokens, each naming exactly one Reader operation:
//
//	cstr u16be str:4:latin1 seek:0 bytes:2 rest
//
// Tokens are validated by Parse before anything is read.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/marmos91/bufreader/pkg/bufreader"
)

// ErrBadToken is returned by Parse for tokens it does not understand.
var ErrBadToken = errors.New("script: bad token")

type opKind int

const (
	opNumeric opKind = iota
	opBytes
	opString
	opCString
	opRest
	opSeek
	opMove
	opReset
	opHas
)

type op struct {
	token string
	kind  opKind
	n     int
	enc   bufreader.Encoding
	num   numericRead
}

// Script is a parsed, validated list of read operations.
type Script struct {
	ops []op
}

// Len returns the number of operations in the script.
func (s Script) Len() int {
	return len(s.ops)
}

// Parse validates tokens and builds a Script. defaultEnc is used by str and
// cstr tokens that do not name an encoding.
func Parse(tokens []string, defaultEnc bufreader.Encoding) (Script, error) {
	ops := make([]op, 0, len(tokens))
	for i, tok := range tokens {
		o, err := parseToken(tok, defaultEnc)
		if err != nil {
			return Script{}, fmt.Errorf("token %d: %w", i, err)
		}
		ops = append(ops, o)
	}
	return Script{ops: ops}, nil
}

func parseToken(tok string, defaultEnc bufreader.Encoding) (op, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(tok), ":")
	name = strings.ToLower(name)
	o := op{token: tok, enc: defaultEnc}

	if read, ok := numericReads[name]; ok {
		o.kind, o.num = opNumeric, read
		return o, noArg(tok, args)
	}

	var err error
	switch name {
	case "bytes":
		o.kind = opBytes
		o.n, err = intArg(tok, args, false)
	case "seek":
		o.kind = opSeek
		o.n, err = intArg(tok, args, false)
	case "move":
		o.kind = opMove
		o.n, err = intArg(tok, args, true)
	case "has":
		o.kind = opHas
		o.n, err = intArg(tok, args, false)
	case "str":
		o.kind = opString
		count, encName, _ := strings.Cut(args, ":")
		if o.n, err = intArg(tok, count, false); err == nil {
			err = encodingArg(tok, encName, &o.enc)
		}
	case "cstr":
		o.kind = opCString
		err = encodingArg(tok, args, &o.enc)
	case "rest":
		o.kind = opRest
		err = noArg(tok, args)
	case "reset":
		o.kind = opReset
		err = noArg(tok, args)
	default:
		err = fmt.Errorf("%w: unknown operation %q", ErrBadToken, tok)
	}
	if err != nil {
		return op{}, err
	}
	return o, nil
}

func noArg(tok, args string) error {
	if args != "" {
		return fmt.Errorf("%w: %q takes no argument", ErrBadToken, tok)
	}
	return nil
}

func intArg(tok, arg string, signed bool) (int, error) {
	if arg == "" {
		return 0, fmt.Errorf("%w: %q needs a number", ErrBadToken, tok)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadToken, tok, err)
	}
	if n < 0 && !signed {
		return 0, fmt.Errorf("%w: %q: negative count", ErrBadToken, tok)
	}
	return n, nil
}

func encodingArg(tok, name string, enc *bufreader.Encoding) error {
	if name == "" {
		return nil
	}
	e, err := bufreader.LookupEncoding(name)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBadToken, tok, err)
	}
	*enc = e
	return nil
}
