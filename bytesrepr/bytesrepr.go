// Package bytesrepr implements the canonical binary serialization used for
// everything stored in global state.
//
// The format is pinned to the existing on-chain encoding and must be
// byte-exact across implementations: all multi-byte integers and length
// prefixes are little-endian, fixed-width fields encode as their raw bytes,
// and variable-length sequences encode as a 4-byte element count followed by
// the concatenated encodings of each element.
//
// Decoding consumes a self-delimited prefix of the input and returns the
// untouched remainder, so composite structures decode sequentially without
// external framing.
package bytesrepr

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Sizes in bytes of the fixed-width fields, shared by the encode and decode
// paths so the two can never drift apart.
const (
	U8Size      = 1
	I32Size     = 4
	U32Size     = 4
	U64Size     = 8
	U128Size    = 16
	U256Size    = 32
	U512Size    = 64
	Array32Size = 32
)

// Marshaler is implemented by every type with a canonical binary encoding.
// ToBytes returns the complete encoding or an error; it never produces
// partial output.
type Marshaler interface {
	ToBytes() ([]byte, error)
}

// ReadFunc decodes a single value from the front of data and returns the
// remainder of the input.
type ReadFunc[T any] func(data []byte) (T, []byte, error)

// WriteFunc appends the encoding of a single value to dst.
type WriteFunc[T any] func(dst []byte, v T) ([]byte, error)

// CheckSize guards a 32-bit length prefix against overflow. It rejects any
// size within overhead bytes of the u32 limit, not merely sizes that
// literally overflow, so a crafted input can never cause a silent
// wraparound in a length field.
func CheckSize(n, overhead int) error {
	if n < 0 || uint64(n) >= math.MaxUint32-uint64(overhead) {
		return fmt.Errorf("%w: size %d exceeds u32 length field", ErrOutOfMemory, n)
	}
	return nil
}

// ReadU8 decodes a single byte.
func ReadU8(data []byte) (uint8, []byte, error) {
	if len(data) < U8Size {
		return 0, nil, ErrEarlyEnd
	}
	return data[0], data[1:], nil
}

// AppendU8 appends a single byte.
func AppendU8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// ReadU32 decodes a little-endian unsigned 32-bit integer.
func ReadU32(data []byte) (uint32, []byte, error) {
	if len(data) < U32Size {
		return 0, nil, ErrEarlyEnd
	}
	return binary.LittleEndian.Uint32(data), data[U32Size:], nil
}

// AppendU32 appends a little-endian unsigned 32-bit integer.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// ReadI32 decodes a little-endian signed 32-bit integer.
func ReadI32(data []byte) (int32, []byte, error) {
	v, rest, err := ReadU32(data)
	if err != nil {
		return 0, nil, err
	}
	return int32(v), rest, nil
}

// AppendI32 appends a little-endian signed 32-bit integer.
func AppendI32(dst []byte, v int32) []byte {
	return AppendU32(dst, uint32(v))
}

// ReadU64 decodes a little-endian unsigned 64-bit integer.
func ReadU64(data []byte) (uint64, []byte, error) {
	if len(data) < U64Size {
		return 0, nil, ErrEarlyEnd
	}
	return binary.LittleEndian.Uint64(data), data[U64Size:], nil
}

// AppendU64 appends a little-endian unsigned 64-bit integer.
func AppendU64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// ReadArray32 decodes a raw fixed-width 32-byte field. Fixed-width fields
// carry no length prefix.
func ReadArray32(data []byte) ([32]byte, []byte, error) {
	var out [32]byte
	if len(data) < Array32Size {
		return out, nil, ErrEarlyEnd
	}
	copy(out[:], data[:Array32Size])
	return out, data[Array32Size:], nil
}

// ReadBytes decodes a length-prefixed byte sequence. The returned slice is
// a copy and does not alias the input.
func ReadBytes(data []byte) ([]byte, []byte, error) {
	count, rest, err := ReadU32(data)
	if err != nil {
		return nil, nil, err
	}
	if uint64(count) > uint64(len(rest)) {
		return nil, nil, ErrEarlyEnd
	}
	if count == 0 {
		return nil, rest, nil
	}
	out := make([]byte, count)
	copy(out, rest[:count])
	return out, rest[count:], nil
}

// AppendBytes appends a length-prefixed byte sequence.
func AppendBytes(dst []byte, b []byte) ([]byte, error) {
	if err := CheckSize(len(b), U8Size+U32Size); err != nil {
		return nil, err
	}
	dst = AppendU32(dst, uint32(len(b)))
	return append(dst, b...), nil
}

// ReadString decodes a length-prefixed UTF-8 string. Invalid UTF-8 is a
// formatting error.
func ReadString(data []byte) (string, []byte, error) {
	b, rest, err := ReadBytes(data)
	if err != nil {
		return "", nil, err
	}
	if !utf8.Valid(b) {
		return "", nil, fmt.Errorf("%w: invalid utf-8 string", ErrFormatting)
	}
	return string(b), rest, nil
}

// AppendString appends a length-prefixed UTF-8 string. The prefix counts
// bytes, not runes.
func AppendString(dst []byte, s string) ([]byte, error) {
	if err := CheckSize(len(s), U8Size+U32Size); err != nil {
		return nil, err
	}
	dst = AppendU32(dst, uint32(len(s)))
	return append(dst, s...), nil
}

// ReadVec decodes a length-prefixed sequence, delegating each element to
// read. Decoding fails with ErrEarlyEnd if the input is exhausted before
// the declared count is satisfied. A zero count yields a nil slice.
func ReadVec[T any](data []byte, read ReadFunc[T]) ([]T, []byte, error) {
	count, rest, err := ReadU32(data)
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return nil, rest, nil
	}
	// Cap the preallocation: the count is attacker-controlled, while the
	// remaining input bounds how many elements can actually follow.
	capacity := uint64(count)
	if capacity > uint64(len(rest)) {
		capacity = uint64(len(rest))
	}
	out := make([]T, 0, capacity)
	for i := uint32(0); i < count; i++ {
		var v T
		v, rest, err = read(rest)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, v)
	}
	return out, rest, nil
}

// AppendVec appends a length-prefixed sequence, delegating each element to
// write.
func AppendVec[T any](dst []byte, elems []T, write WriteFunc[T]) ([]byte, error) {
	if err := CheckSize(len(elems), U8Size+U32Size); err != nil {
		return nil, err
	}
	dst = AppendU32(dst, uint32(len(elems)))
	var err error
	for _, v := range elems {
		dst, err = write(dst, v)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
