package bufreader

import (
	"encoding/binary"
	"math"
)

// Fixed-width numeric reads. Each one fails with ErrOutOfRange, leaving the
// position untouched, when fewer than its width in bytes remain.

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadUint8 reads an unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt16LE reads a little-endian int16.
func (r *Reader) ReadInt16LE() (int16, error) {
	v, err := r.ReadUint16LE()
	return int16(v), err
}

// ReadInt16BE reads a big-endian int16.
func (r *Reader) ReadInt16BE() (int16, error) {
	v, err := r.ReadUint16BE()
	return int16(v), err
}

// ReadUint16LE reads a little-endian uint16.
func (r *Reader) ReadUint16LE() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint16BE reads a big-endian uint16.
func (r *Reader) ReadUint16BE() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt32LE reads a little-endian int32.
func (r *Reader) ReadInt32LE() (int32, error) {
	v, err := r.ReadUint32LE()
	return int32(v), err
}

// ReadInt32BE reads a big-endian int32.
func (r *Reader) ReadInt32BE() (int32, error) {
	v, err := r.ReadUint32BE()
	return int32(v), err
}

// ReadUint32LE reads a little-endian uint32.
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint32BE reads a big-endian uint32.
func (r *Reader) ReadUint32BE() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt64LE reads a little-endian int64.
func (r *Reader) ReadInt64LE() (int64, error) {
	v, err := r.ReadUint64LE()
	return int64(v), err
}

// ReadInt64BE reads a big-endian int64.
func (r *Reader) ReadInt64BE() (int64, error) {
	v, err := r.ReadUint64BE()
	return int64(v), err
}

// ReadUint64LE reads a little-endian uint64.
func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadUint64BE reads a big-endian uint64.
func (r *Reader) ReadUint64BE() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadFloat32LE reads a little-endian IEEE 754 single.
func (r *Reader) ReadFloat32LE() (float32, error) {
	v, err := r.ReadUint32LE()
	return math.Float32frombits(v), err
}

// ReadFloat32BE reads a big-endian IEEE 754 single.
func (r *Reader) ReadFloat32BE() (float32, error) {
	v, err := r.ReadUint32BE()
	return math.Float32frombits(v), err
}

// ReadFloat64LE reads a little-endian IEEE 754 double.
func (r *Reader) ReadFloat64LE() (float64, error) {
	v, err := r.ReadUint64LE()
	return math.Float64frombits(v), err
}

// ReadFloat64BE reads a big-endian IEEE 754 double.
func (r *Reader) ReadFloat64BE() (float64, error) {
	v, err := r.ReadUint64BE()
	return math.Float64frombits(v), err
}
