// Package value defines everything storable under a key in global state
// and its canonical binary encoding.
//
// A Value is one of eleven variants, each with a unique wire tag byte and a
// deterministic encoding. Values are immutable: the execution layer builds
// them when writing state and replaces them wholesale on overwrite. This
// package has no persistence responsibility.
package value

import (
	"fmt"

	"github.com/blockberries/stateberry/bigint"
	"github.com/blockberries/stateberry/bytesrepr"
	"github.com/blockberries/stateberry/key"
)

// Wire tags for Value. Shared by the encode and decode paths.
const (
	tagInt32      uint8 = 0
	tagByteArray  uint8 = 1
	tagListInt32  uint8 = 2
	tagString     uint8 = 3
	tagAccount    uint8 = 4
	tagContract   uint8 = 5
	tagNamedKey   uint8 = 6
	tagListString uint8 = 7
	tagUInt128    uint8 = 8
	tagUInt256    uint8 = 9
	tagUInt512    uint8 = 10
)

// Value is the closed union of everything storable in global state.
//
// The set of implementations is sealed: Int32, UInt128, UInt256, UInt512,
// Bytes, Int32List, String, StringList, NamedKey, Account and Contract.
// Converting a native type into a Value is a plain conversion; narrowing a
// Value back to a native type goes through the checked AsX functions or, in
// contexts that already established the variant, the panicking MustX forms.
type Value interface {
	bytesrepr.Marshaler

	// TypeName returns the fixed diagnostic label for the variant.
	TypeName() string

	// isValue seals the union.
	isValue()
}

// Int32 is a signed 32-bit integer value.
type Int32 int32

// Bytes is a raw byte-array value.
type Bytes []byte

// Int32List is a list of signed 32-bit integers.
type Int32List []int32

// String is a UTF-8 string value.
type String string

// StringList is a list of UTF-8 strings.
type StringList []string

// NamedKey binds a name to a key, e.g. an entry in an account's known-keys
// table.
type NamedKey struct {
	Name string
	Key  key.Key
}

// UInt128 is a 128-bit unsigned integer value.
type UInt128 bigint.U128

// UInt256 is a 256-bit unsigned integer value.
type UInt256 bigint.U256

// UInt512 is a 512-bit unsigned integer value.
type UInt512 bigint.U512

func (Int32) isValue()      {}
func (Bytes) isValue()      {}
func (Int32List) isValue()  {}
func (String) isValue()     {}
func (StringList) isValue() {}
func (NamedKey) isValue()   {}
func (UInt128) isValue()    {}
func (UInt256) isValue()    {}
func (UInt512) isValue()    {}
func (Account) isValue()    {}
func (Contract) isValue()   {}

// TypeName returns "Int32".
func (Int32) TypeName() string { return "Int32" }

// TypeName returns "ByteArray".
func (Bytes) TypeName() string { return "ByteArray" }

// TypeName returns "List[Int32]".
func (Int32List) TypeName() string { return "List[Int32]" }

// TypeName returns "String".
func (String) TypeName() string { return "String" }

// TypeName returns "List[String]".
func (StringList) TypeName() string { return "List[String]" }

// TypeName returns "NamedKey".
func (NamedKey) TypeName() string { return "NamedKey" }

// TypeName returns "UInt128".
func (UInt128) TypeName() string { return "UInt128" }

// TypeName returns "UInt256".
func (UInt256) TypeName() string { return "UInt256" }

// TypeName returns "UInt512".
func (UInt512) TypeName() string { return "UInt512" }

// TypeName returns "Account".
func (Account) TypeName() string { return "Account" }

// TypeName returns "Contract".
func (Contract) TypeName() string { return "Contract" }

// ToBytes encodes the value as its tag byte and 4-byte signed integer.
func (v Int32) ToBytes() ([]byte, error) {
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.I32Size)
	out = bytesrepr.AppendU8(out, tagInt32)
	return bytesrepr.AppendI32(out, int32(v)), nil
}

// ToBytes encodes the value as its tag byte and length-prefixed raw bytes.
func (v Bytes) ToBytes() ([]byte, error) {
	// Guard before reserving capacity: the check must precede any
	// encoding work, including the allocation.
	if err := bytesrepr.CheckSize(len(v), bytesrepr.U8Size+bytesrepr.U32Size); err != nil {
		return nil, err
	}
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.U32Size+len(v))
	out = bytesrepr.AppendU8(out, tagByteArray)
	return bytesrepr.AppendBytes(out, v)
}

// ToBytes encodes the value as its tag byte and a length-prefixed sequence
// of 4-byte signed integers.
func (v Int32List) ToBytes() ([]byte, error) {
	if err := bytesrepr.CheckSize(len(v)*bytesrepr.I32Size, bytesrepr.U8Size+bytesrepr.U32Size); err != nil {
		return nil, err
	}
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.U32Size+bytesrepr.I32Size*len(v))
	out = bytesrepr.AppendU8(out, tagListInt32)
	return bytesrepr.AppendVec(out, v, func(dst []byte, i int32) ([]byte, error) {
		return bytesrepr.AppendI32(dst, i), nil
	})
}

// ToBytes encodes the value as its tag byte and length-prefixed UTF-8
// bytes.
func (v String) ToBytes() ([]byte, error) {
	if err := bytesrepr.CheckSize(len(v), bytesrepr.U8Size+bytesrepr.U32Size); err != nil {
		return nil, err
	}
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.U32Size+len(v))
	out = bytesrepr.AppendU8(out, tagString)
	return bytesrepr.AppendString(out, string(v))
}

// ToBytes encodes the value as its tag byte and a length-prefixed sequence
// of length-prefixed strings.
func (v StringList) ToBytes() ([]byte, error) {
	payload, err := bytesrepr.AppendVec(nil, v, bytesrepr.AppendString)
	if err != nil {
		return nil, err
	}
	if err := bytesrepr.CheckSize(len(payload), bytesrepr.U8Size); err != nil {
		return nil, err
	}
	out := make([]byte, 0, bytesrepr.U8Size+len(payload))
	out = bytesrepr.AppendU8(out, tagListString)
	return append(out, payload...), nil
}

// ToBytes encodes the value as its tag byte, the length-prefixed name and
// the key's own encoding.
func (v NamedKey) ToBytes() ([]byte, error) {
	if err := bytesrepr.CheckSize(len(v.Name)+key.CapRefSerializedSize,
		bytesrepr.U8Size+bytesrepr.U32Size); err != nil {
		return nil, err
	}
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.U32Size+len(v.Name)+key.CapRefSerializedSize)
	out = bytesrepr.AppendU8(out, tagNamedKey)
	out, err := bytesrepr.AppendString(out, v.Name)
	if err != nil {
		return nil, err
	}
	kb, err := v.Key.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(out, kb...), nil
}

// ToBytes encodes the value as its tag byte and raw fixed-width bytes.
func (v UInt128) ToBytes() ([]byte, error) {
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.U128Size)
	out = bytesrepr.AppendU8(out, tagUInt128)
	return append(out, v[:]...), nil
}

// ToBytes encodes the value as its tag byte and raw fixed-width bytes.
func (v UInt256) ToBytes() ([]byte, error) {
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.U256Size)
	out = bytesrepr.AppendU8(out, tagUInt256)
	return append(out, v[:]...), nil
}

// ToBytes encodes the value as its tag byte and raw fixed-width bytes.
func (v UInt512) ToBytes() ([]byte, error) {
	out := make([]byte, 0, bytesrepr.U8Size+bytesrepr.U512Size)
	out = bytesrepr.AppendU8(out, tagUInt512)
	return append(out, v[:]...), nil
}

// ToBytes encodes the value as its tag byte and the account record's own
// encoding.
func (v Account) ToBytes() ([]byte, error) {
	sub, err := v.recordToBytes()
	if err != nil {
		return nil, err
	}
	if err := bytesrepr.CheckSize(len(sub), bytesrepr.U8Size); err != nil {
		return nil, err
	}
	out := make([]byte, 0, bytesrepr.U8Size+len(sub))
	out = bytesrepr.AppendU8(out, tagAccount)
	return append(out, sub...), nil
}

// ToBytes encodes the value as its tag byte and the contract record's own
// encoding.
func (v Contract) ToBytes() ([]byte, error) {
	sub, err := v.recordToBytes()
	if err != nil {
		return nil, err
	}
	if err := bytesrepr.CheckSize(len(sub), bytesrepr.U8Size); err != nil {
		return nil, err
	}
	out := make([]byte, 0, bytesrepr.U8Size+len(sub))
	out = bytesrepr.AppendU8(out, tagContract)
	return append(out, sub...), nil
}

// ReadValue decodes a value from the front of data, dispatching on the tag
// byte. An unrecognized tag is a formatting error.
func ReadValue(data []byte) (Value, []byte, error) {
	tag, rest, err := bytesrepr.ReadU8(data)
	if err != nil {
		return nil, nil, err
	}
	switch tag {
	case tagInt32:
		i, rem, err := bytesrepr.ReadI32(rest)
		if err != nil {
			return nil, nil, err
		}
		return Int32(i), rem, nil
	case tagByteArray:
		b, rem, err := bytesrepr.ReadBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return Bytes(b), rem, nil
	case tagListInt32:
		arr, rem, err := bytesrepr.ReadVec(rest, bytesrepr.ReadI32)
		if err != nil {
			return nil, nil, err
		}
		return Int32List(arr), rem, nil
	case tagString:
		s, rem, err := bytesrepr.ReadString(rest)
		if err != nil {
			return nil, nil, err
		}
		return String(s), rem, nil
	case tagAccount:
		a, rem, err := readAccountRecord(rest)
		if err != nil {
			return nil, nil, err
		}
		return a, rem, nil
	case tagContract:
		c, rem, err := readContractRecord(rest)
		if err != nil {
			return nil, nil, err
		}
		return c, rem, nil
	case tagNamedKey:
		name, rem, err := bytesrepr.ReadString(rest)
		if err != nil {
			return nil, nil, err
		}
		k, rem, err := key.ReadKey(rem)
		if err != nil {
			return nil, nil, err
		}
		return NamedKey{Name: name, Key: k}, rem, nil
	case tagListString:
		arr, rem, err := bytesrepr.ReadVec(rest, bytesrepr.ReadString)
		if err != nil {
			return nil, nil, err
		}
		return StringList(arr), rem, nil
	case tagUInt128:
		u, rem, err := bigint.ReadU128(rest)
		if err != nil {
			return nil, nil, err
		}
		return UInt128(u), rem, nil
	case tagUInt256:
		u, rem, err := bigint.ReadU256(rest)
		if err != nil {
			return nil, nil, err
		}
		return UInt256(u), rem, nil
	case tagUInt512:
		u, rem, err := bigint.ReadU512(rest)
		if err != nil {
			return nil, nil, err
		}
		return UInt512(u), rem, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown value tag 0x%02x", bytesrepr.ErrFormatting, tag)
	}
}
