package script

import (
	"strconv"

	"github.com/marmos91/bufreader/pkg/bufreader"
)

type numericRead func(r *bufreader.Reader) (string, error)

func signed[T int8 | int16 | int32 | int64](read func(*bufreader.Reader) (T, error)) numericRead {
	return func(r *bufreader.Reader) (string, error) {
		v, err := read(r)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	}
}

func unsigned[T uint8 | uint16 | uint32 | uint64](read func(*bufreader.Reader) (T, error)) numericRead {
	return func(r *bufreader.Reader) (string, error) {
		v, err := read(r)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(v), 10), nil
	}
}

func float[T float32 | float64](bits int, read func(*bufreader.Reader) (T, error)) numericRead {
	return func(r *bufreader.Reader) (string, error) {
		v, err := read(r)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(v), 'g', -1, bits), nil
	}
}

var numericReads = map[string]numericRead{
	"i8":    signed((*bufreader.Reader).ReadInt8),
	"u8":    unsigned((*bufreader.Reader).ReadUint8),
	"i16le": signed((*bufreader.Reader).ReadInt16LE),
	"i16be": signed((*bufreader.Reader).ReadInt16BE),
	"u16le": unsigned((*bufreader.Reader).ReadUint16LE),
	"u16be": unsigned((*bufreader.Reader).ReadUint16BE),
	"i32le": signed((*bufreader.Reader).ReadInt32LE),
	"i32be": signed((*bufreader.Reader).ReadInt32BE),
	"u32le": unsigned((*bufreader.Reader).ReadUint32LE),
	"u32be": unsigned((*bufreader.Reader).ReadUint32BE),
	"i64le": signed((*bufreader.Reader).ReadInt64LE),
	"i64be": signed((*bufreader.Reader).ReadInt64BE),
	"u64le": unsigned((*bufreader.Reader).ReadUint64LE),
	"u64be": unsigned((*bufreader.Reader).ReadUint64BE),
	"f32le": float(32, (*bufreader.Reader).ReadFloat32LE),
	"f32be": float(32, (*bufreader.Reader).ReadFloat32BE),
	"f64le": float(64, (*bufreader.Reader).ReadFloat64LE),
	"f64be": float(64, (*bufreader.Reader).ReadFloat64BE),
}
