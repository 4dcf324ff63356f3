package script

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/marmos91/bufreader/internal/cli/output"
	"github.com/marmos91/bufreader/internal/logger"
	"github.com/marmos91/bufreader/pkg/bufreader"
)

// Value types recorded on a Step.
const (
	TypeNumber   = "number"
	TypeBytes    = "bytes"
	TypeString   = "string"
	TypeBool     = "bool"
	TypePosition = "position"
)

// Step is the outcome of one successful operation.
type Step struct {
	Index  int    `json:"index" yaml:"index"`
	Op     string `json:"op" yaml:"op"`
	Offset int    `json:"offset" yaml:"offset"`
	End    int    `json:"end" yaml:"end"`
	Type   string `json:"type" yaml:"type"`
	Value  string `json:"value" yaml:"value"`
}

// Result holds the steps a script completed.
type Result struct {
	Steps []Step `json:"steps" yaml:"steps"`
	// Error is set when the script stopped early.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Headers implements output.TableRenderer.
func (r Result) Headers() []string {
	return []string{"#", "Op", "Offset", "End", "Value"}
}

// Alignments implements output.ColumnAligner.
func (r Result) Alignments() []int {
	return []int{output.AlignRight, output.AlignLeft, output.AlignRight, output.AlignRight, output.AlignLeft}
}

// Rows implements output.TableRenderer.
func (r Result) Rows() [][]string {
	rows := make([][]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		value := s.Value
		if s.Type == TypeString {
			value = strconv.Quote(value)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Op,
			strconv.Itoa(s.Offset),
			strconv.Itoa(s.End),
			value,
		})
	}
	return rows
}

// Run executes the script against r. It stops at the first failing
// operation and returns the completed steps together with the error.
func (s Script) Run(r *bufreader.Reader) (Result, error) {
	start := time.Now()
	res := Result{Steps: make([]Step, 0, len(s.ops))}

	for i, o := range s.ops {
		offset := r.Position()
		typ, value, err := o.apply(r)
		if err != nil {
			logger.Debug("script step failed",
				logger.KeyStep, i, logger.Op(o.token), logger.Offset(offset), logger.Err(err))
			err = fmt.Errorf("step %d (%s) at offset %d: %w", i, o.token, offset, err)
			res.Error = err.Error()
			return res, err
		}

		step := Step{Index: i, Op: o.token, Offset: offset, End: r.Position(), Type: typ, Value: value}
		logger.Debug("script step",
			logger.KeyStep, i, logger.Op(o.token), logger.Offset(offset), logger.KeyEnd, step.End)
		res.Steps = append(res.Steps, step)
	}

	logger.Debug("script finished",
		logger.KeyCount, len(res.Steps), logger.KeyDurationMs, logger.Duration(start))
	return res, nil
}

func (o op) apply(r *bufreader.Reader) (string, string, error) {
	switch o.kind {
	case opNumeric:
		v, err := o.num(r)
		return TypeNumber, v, err
	case opBytes:
		b, err := r.ReadBytes(o.n)
		return TypeBytes, hex.EncodeToString(b), err
	case opRest:
		b, err := r.ReadRest()
		return TypeBytes, hex.EncodeToString(b), err
	case opString:
		v, err := r.ReadString(o.n, o.enc)
		return TypeString, v, err
	case opCString:
		v, err := r.ReadTerminatedString(o.enc)
		return TypeString, v, err
	case opSeek:
		return TypePosition, "", r.Seek(o.n)
	case opMove:
		return TypePosition, "", r.Move(o.n)
	case opReset:
		r.Reset()
		return TypePosition, "", nil
	case opHas:
		ok, err := r.Has(o.n)
		return TypeBool, strconv.FormatBool(ok), err
	default:
		return "", "", fmt.Errorf("%w: unhandled operation %q", ErrBadToken, o.token)
	}
}
