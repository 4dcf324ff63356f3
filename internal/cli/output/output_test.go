package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  yaml  ", want: FormatYAML},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintTable(t *testing.T) {
	table := NewTableData("Offset", "Op", "Value")
	table.AddRow("0", "cstr", "Hello")
	table.AddRow("6", "u8", "255")

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, table))

	out := buf.String()
	assert.Contains(t, out, "OFFSET")
	assert.Contains(t, out, "cstr")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "255")
}

type sample struct {
	Op    string `json:"op" yaml:"op"`
	Value string `json:"value" yaml:"value"`
}

func TestPrinterJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	assert.Equal(t, FormatJSON, p.Format())

	require.NoError(t, p.Print(sample{Op: "u8", Value: "1"}))

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample{Op: "u8", Value: "1"}, got)
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatYAML).Print(sample{Op: "cstr", Value: "hi"}))

	var got sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample{Op: "cstr", Value: "hi"}, got)
}

func TestPrinterTableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(sample{Op: "u8"}))
	assert.Contains(t, buf.String(), `"op": "u8"`)
}

func TestPrinterUnknownFormat(t *testing.T) {
	assert.Error(t, NewPrinter(&bytes.Buffer{}, Format("xml")).Print(sample{}))
}

type alignedTable struct{ *TableData }

func (alignedTable) Alignments() []int { return []int{AlignRight, AlignLeft} }

func TestPrintTableColumnAlignment(t *testing.T) {
	table := NewTableData("Offset", "Op")
	table.AddRow("7", "u8")
	table.AddRow("1234", "cstr")

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, alignedTable{table}))

	var short, long string
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.Contains(line, "u8"):
			short = line
		case strings.Contains(line, "cstr"):
			long = line
		}
	}
	require.NotEmpty(t, short)
	require.NotEmpty(t, long)
	// right aligned offsets end in the same column
	assert.Equal(t, strings.Index(long, "1234")+4, strings.Index(short, "7")+1)
}
