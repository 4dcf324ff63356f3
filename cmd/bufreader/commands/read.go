package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/marmos91/bufreader/internal/bytesize"
	"github.com/marmos91/bufreader/internal/cli/output"
	"github.com/marmos91/bufreader/internal/logger"
	"github.com/marmos91/bufreader/internal/script"
	"github.com/marmos91/bufreader/pkg/bufreader"
	"github.com/marmos91/bufreader/pkg/config"
	"github.com/spf13/cobra"
)

type readOptions struct {
	hexInput string
	offset   int
}

func newReadCmd() *cobra.Command {
	var opts readOptions

	cmd := &cobra.Command{
		Use:   "read [file|-] TOKEN...",
		Short: "Run a read script against a buffer",
		Long: `Read values from a file, stdin ("-") or a --hex literal, one token per
read operation, and print every value with its start and end offsets.

Tokens:
  i8 u8 i16le i16be u16le u16be i32le i32be u32le u32be
  i64le i64be u64le u64be f32le f32be f64le f64be
  bytes:N          N raw bytes, printed as hex
  str:N[:enc]      N bytes decoded as text
  cstr[:enc]       NUL-terminated text
  rest             every remaining byte, printed as hex
  seek:P move:D reset has:N

Encodings: utf8, utf16le (ucs2), latin1 (binary), ascii, hex, base64,
base64url, or any IANA charset name such as windows-1252.

Examples:
  # Decode a header from a file
  bufreader read header.bin u32le u16le cstr

  # Decode a literal
  bufreader read --hex "48690001" str:2 u16be

  # Read from stdin as JSON
  cat packet.bin | bufreader read - u8 bytes:4 rest -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.hexInput, "hex", "", "Read from a hex literal instead of a file")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Start reading at this offset")
	cmd.Flags().StringP("output", "o", "", "Output format (table|json|yaml)")
	cmd.Flags().StringP("encoding", "e", "", "Default text encoding for str and cstr")
	cmd.Flags().String("max-size", "", "Maximum input size (e.g. 64Mi)")
	return cmd
}

func runRead(cmd *cobra.Command, args []string, opts readOptions) error {
	cfg, err := loadConfig(cmd,
		config.WithFlag("output.format", cmd.Flags().Lookup("output")),
		config.WithFlag("input.encoding", cmd.Flags().Lookup("encoding")),
		config.WithFlag("input.max_size", cmd.Flags().Lookup("max-size")),
	)
	if err != nil {
		return err
	}

	source, tokens := "", args
	if !cmd.Flags().Changed("hex") {
		source, tokens = args[0], args[1:]
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no read tokens given")
	}

	enc, err := bufreader.LookupEncoding(cfg.Input.Encoding)
	if err != nil {
		return err
	}
	s, err := script.Parse(tokens, enc)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var data []byte
	if source == "" {
		data, err = decodeHexInput(opts.hexInput)
	} else {
		data, err = loadInput(cmd.InOrStdin(), source, cfg.Input.MaxSize)
	}
	if err != nil {
		return err
	}
	if bytesize.ByteSize(len(data)) > cfg.Input.MaxSize {
		return fmt.Errorf("input is %d bytes, exceeds max size %s", len(data), cfg.Input.MaxSize)
	}

	r := bufreader.New(data)
	if err := r.Seek(opts.offset); err != nil {
		return fmt.Errorf("invalid --offset: %w", err)
	}

	logger.Debug("running read script",
		logger.KeySize, len(data), logger.KeyCount, s.Len(),
		logger.KeyEncoding, enc.Name(), logger.KeyFormat, format.String())

	res, runErr := s.Run(r)
	if err := output.NewPrinter(cmd.OutOrStdout(), format).Print(res); err != nil {
		return err
	}
	return runErr
}

// loadInput reads a file, or stdin for "-", refusing more than limit bytes.
func loadInput(stdin io.Reader, path string, limit bytesize.ByteSize) ([]byte, error) {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	// one byte past the limit so oversized input is detected
	n := int64(limit.Int())
	if n < math.MaxInt64 {
		n++
	}
	data, err := io.ReadAll(io.LimitReader(in, n))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	logger.Debug("input loaded", logger.Path(path), logger.KeySize, len(data), logger.KeyLimit, limit.String())
	return data, nil
}

func decodeHexInput(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --hex input: %w", err)
	}
	return data, nil
}
