package bytesize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ByteSize
		wantErr bool
	}{
		{name: "plain zero", input: "0", want: 0},
		{name: "plain bytes", input: "1024", want: 1024},
		{name: "bytes suffix", input: "1024B", want: 1024},
		{name: "kibibytes", input: "1Ki", want: KiB},
		{name: "kibibytes with B", input: "512KiB", want: 512 * KiB},
		{name: "mebibytes", input: "64Mi", want: 64 * MiB},
		{name: "gibibytes lowercase", input: "1gi", want: GiB},
		{name: "tebibytes", input: "2TiB", want: 2 * TiB},
		{name: "kilobytes", input: "1K", want: KB},
		{name: "megabytes", input: "100MB", want: 100 * MB},
		{name: "gigabytes", input: "1GB", want: GB},
		{name: "space between", input: " 1 Mi ", want: MiB},
		{name: "fractional", input: "1.5Mi", want: ByteSize(1.5 * float64(MiB))},
		{name: "empty", input: "", wantErr: true},
		{name: "unit only", input: "Mi", wantErr: true},
		{name: "unknown unit", input: "10XB", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "overflow", input: "99999999999Ti", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseByteSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByteSizeString(t *testing.T) {
	tests := []struct {
		size ByteSize
		want string
	}{
		{size: 0, want: "0"},
		{size: 1000, want: "1000"},
		{size: KiB, want: "1Ki"},
		{size: 1536 * KiB, want: "1536Ki"},
		{size: 64 * MiB, want: "64Mi"},
		{size: 3 * GiB, want: "3Gi"},
		{size: TiB, want: "1Ti"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size.String())

			back, err := ParseByteSize(tt.size.String())
			require.NoError(t, err)
			assert.Equal(t, tt.size, back)
		})
	}
}

func TestByteSizeText(t *testing.T) {
	var b ByteSize
	require.NoError(t, b.UnmarshalText([]byte("16Mi")))
	assert.Equal(t, 16*MiB, b)

	text, err := b.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "16Mi", string(text))

	assert.Error(t, b.UnmarshalText([]byte("lots")))
	assert.Equal(t, 16*MiB, b)
}

func TestByteSizeInt(t *testing.T) {
	assert.Equal(t, 1024, KiB.Int())
	assert.Equal(t, math.MaxInt, ByteSize(math.MaxUint64).Int())
}
