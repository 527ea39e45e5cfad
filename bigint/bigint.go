// Package bigint provides the fixed-width unsigned integers storable in
// global state: U128, U256 and U512.
//
// These are opaque quantities at this layer; the only operations supported
// are conversion to and from native integers and math/big, plus the
// canonical little-endian fixed-width encoding. Arithmetic belongs to the
// execution engine.
package bigint

import (
	"errors"
	"math/big"

	"github.com/blockberries/stateberry/bytesrepr"
)

// ErrRange is returned when converting a big.Int that is negative or too
// wide for the target width.
var ErrRange = errors.New("bigint: value out of range")

// U128 is a 128-bit unsigned integer in little-endian byte order.
type U128 [bytesrepr.U128Size]byte

// U256 is a 256-bit unsigned integer in little-endian byte order.
type U256 [bytesrepr.U256Size]byte

// U512 is a 512-bit unsigned integer in little-endian byte order.
type U512 [bytesrepr.U512Size]byte

// fillLE writes x into dst little-endian, returning ErrRange if x is
// negative or does not fit.
func fillLE(dst []byte, x *big.Int) error {
	if x.Sign() < 0 || (x.BitLen()+7)/8 > len(dst) {
		return ErrRange
	}
	x.FillBytes(dst)
	reverse(dst)
	return nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// toBig interprets src as a little-endian unsigned integer.
func toBig(src []byte) *big.Int {
	be := make([]byte, len(src))
	for i, b := range src {
		be[len(src)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// U128FromUint64 converts a native integer to a U128.
func U128FromUint64(v uint64) U128 {
	var u U128
	putUint64LE(u[:], v)
	return u
}

// U256FromUint64 converts a native integer to a U256.
func U256FromUint64(v uint64) U256 {
	var u U256
	putUint64LE(u[:], v)
	return u
}

// U512FromUint64 converts a native integer to a U512.
func U512FromUint64(v uint64) U512 {
	var u U512
	putUint64LE(u[:], v)
	return u
}

func putUint64LE(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}

// U128FromBig converts x to a U128. Returns ErrRange if x is negative or
// wider than 128 bits.
func U128FromBig(x *big.Int) (U128, error) {
	var u U128
	if err := fillLE(u[:], x); err != nil {
		return U128{}, err
	}
	return u, nil
}

// U256FromBig converts x to a U256. Returns ErrRange if x is negative or
// wider than 256 bits.
func U256FromBig(x *big.Int) (U256, error) {
	var u U256
	if err := fillLE(u[:], x); err != nil {
		return U256{}, err
	}
	return u, nil
}

// U512FromBig converts x to a U512. Returns ErrRange if x is negative or
// wider than 512 bits.
func U512FromBig(x *big.Int) (U512, error) {
	var u U512
	if err := fillLE(u[:], x); err != nil {
		return U512{}, err
	}
	return u, nil
}

// Big returns the value as a math/big integer.
func (u U128) Big() *big.Int { return toBig(u[:]) }

// Big returns the value as a math/big integer.
func (u U256) Big() *big.Int { return toBig(u[:]) }

// Big returns the value as a math/big integer.
func (u U512) Big() *big.Int { return toBig(u[:]) }

// IsZero returns true if the value is zero.
func (u U128) IsZero() bool { return u == U128{} }

// IsZero returns true if the value is zero.
func (u U256) IsZero() bool { return u == U256{} }

// IsZero returns true if the value is zero.
func (u U512) IsZero() bool { return u == U512{} }

// String returns the value in decimal.
func (u U128) String() string { return u.Big().String() }

// String returns the value in decimal.
func (u U256) String() string { return u.Big().String() }

// String returns the value in decimal.
func (u U512) String() string { return u.Big().String() }

// ToBytes encodes the value as its raw little-endian bytes, fixed width,
// no length prefix.
func (u U128) ToBytes() ([]byte, error) {
	out := make([]byte, bytesrepr.U128Size)
	copy(out, u[:])
	return out, nil
}

// ToBytes encodes the value as its raw little-endian bytes, fixed width,
// no length prefix.
func (u U256) ToBytes() ([]byte, error) {
	out := make([]byte, bytesrepr.U256Size)
	copy(out, u[:])
	return out, nil
}

// ToBytes encodes the value as its raw little-endian bytes, fixed width,
// no length prefix.
func (u U512) ToBytes() ([]byte, error) {
	out := make([]byte, bytesrepr.U512Size)
	copy(out, u[:])
	return out, nil
}

// ReadU128 decodes a U128 from the front of data.
func ReadU128(data []byte) (U128, []byte, error) {
	var u U128
	if len(data) < bytesrepr.U128Size {
		return U128{}, nil, bytesrepr.ErrEarlyEnd
	}
	copy(u[:], data[:bytesrepr.U128Size])
	return u, data[bytesrepr.U128Size:], nil
}

// ReadU256 decodes a U256 from the front of data.
func ReadU256(data []byte) (U256, []byte, error) {
	var u U256
	if len(data) < bytesrepr.U256Size {
		return U256{}, nil, bytesrepr.ErrEarlyEnd
	}
	copy(u[:], data[:bytesrepr.U256Size])
	return u, data[bytesrepr.U256Size:], nil
}

// ReadU512 decodes a U512 from the front of data.
func ReadU512(data []byte) (U512, []byte, error) {
	var u U512
	if len(data) < bytesrepr.U512Size {
		return U512{}, nil, bytesrepr.ErrEarlyEnd
	}
	copy(u[:], data[:bytesrepr.U512Size])
	return u, data[bytesrepr.U512Size:], nil
}
