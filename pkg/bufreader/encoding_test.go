package bufreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEncoding(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "", want: "utf8"},
		{name: "utf8", want: "utf8"},
		{name: "UTF-8", want: "utf8"},
		{name: "ucs2", want: "utf16le"},
		{name: "UTF-16LE", want: "utf16le"},
		{name: "binary", want: "latin1"},
		{name: "latin1", want: "latin1"},
		{name: "ascii", want: "ascii"},
		{name: "hex", want: "hex"},
		{name: "Base64", want: "base64"},
		{name: "base64url", want: "base64url"},
		{name: "  windows-1252 ", want: "windows-1252"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := LookupEncoding(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc.Name())
		})
	}
}

func TestLookupEncodingUnknown(t *testing.T) {
	_, err := LookupEncoding("klingon")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncodingZeroValue(t *testing.T) {
	var enc Encoding
	assert.Equal(t, "utf8", enc.Name())
	assert.Equal(t, "utf8", enc.String())
}

func TestEncodingDecode(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		data []byte
		want string
	}{
		{name: "utf8", enc: UTF8, data: []byte("żółw"), want: "żółw"},
		{name: "utf16le", enc: UTF16LE, data: []byte{'h', 0, 'i', 0}, want: "hi"},
		{name: "utf16le odd trailing byte dropped", enc: UTF16LE, data: []byte{'h', 0, 'i'}, want: "h"},
		{name: "latin1", enc: Latin1, data: []byte{0x63, 0x61, 0x66, 0xE9}, want: "café"},
		{name: "ascii masks high bit", enc: ASCII, data: []byte{0xC1, 'b'}, want: "Ab"},
		{name: "hex", enc: Hex, data: []byte{0xDE, 0xAD, 0xBE, 0xEF}, want: "deadbeef"},
		{name: "base64", enc: Base64, data: []byte{0xFB, 0xFF}, want: "+/8="},
		{name: "base64url", enc: Base64URL, data: []byte{0xFB, 0xFF}, want: "-_8"},
		{name: "utf8 invalid", enc: UTF8, data: []byte{0xC3}, want: "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.data)
			s, err := r.ReadString(len(tt.data), tt.enc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
			assert.Equal(t, len(tt.data), r.Position())
		})
	}
}

func TestLookupEncodingIANA(t *testing.T) {
	enc, err := LookupEncoding("windows-1252")
	require.NoError(t, err)

	r := New([]byte{0x80, '5'})
	s, err := r.ReadString(2, enc)
	require.NoError(t, err)
	assert.Equal(t, "€5", s)
}
