package value

import (
	"errors"
	"fmt"

	"github.com/blockberries/stateberry/bigint"
	"github.com/blockberries/stateberry/key"
)

// ErrTypeMismatch is returned by the AsX functions when the runtime variant
// of a Value differs from the requested type. The wrapped message carries
// the actual variant's TypeName for diagnostics. Type mismatches are
// recoverable; callers that cannot tolerate one should use the MustX forms
// only after establishing the variant.
var ErrTypeMismatch = errors.New("value: type mismatch")

func typeMismatch(want string, v Value) error {
	return fmt.Errorf("%w: want %s, have %s", ErrTypeMismatch, want, v.TypeName())
}

// AsInt32 narrows v to its native int32.
func AsInt32(v Value) (int32, error) {
	x, ok := v.(Int32)
	if !ok {
		return 0, typeMismatch("Int32", v)
	}
	return int32(x), nil
}

// AsBytes narrows v to its native byte slice.
func AsBytes(v Value) ([]byte, error) {
	x, ok := v.(Bytes)
	if !ok {
		return nil, typeMismatch("ByteArray", v)
	}
	return []byte(x), nil
}

// AsInt32List narrows v to its native int32 slice.
func AsInt32List(v Value) ([]int32, error) {
	x, ok := v.(Int32List)
	if !ok {
		return nil, typeMismatch("List[Int32]", v)
	}
	return []int32(x), nil
}

// AsString narrows v to its native string.
func AsString(v Value) (string, error) {
	x, ok := v.(String)
	if !ok {
		return "", typeMismatch("String", v)
	}
	return string(x), nil
}

// AsStringList narrows v to its native string slice.
func AsStringList(v Value) ([]string, error) {
	x, ok := v.(StringList)
	if !ok {
		return nil, typeMismatch("List[String]", v)
	}
	return []string(x), nil
}

// AsNamedKey narrows v to its name/key pair.
func AsNamedKey(v Value) (string, key.Key, error) {
	x, ok := v.(NamedKey)
	if !ok {
		return "", key.Key{}, typeMismatch("NamedKey", v)
	}
	return x.Name, x.Key, nil
}

// AsUInt128 narrows v to its fixed-width integer.
func AsUInt128(v Value) (bigint.U128, error) {
	x, ok := v.(UInt128)
	if !ok {
		return bigint.U128{}, typeMismatch("UInt128", v)
	}
	return bigint.U128(x), nil
}

// AsUInt256 narrows v to its fixed-width integer.
func AsUInt256(v Value) (bigint.U256, error) {
	x, ok := v.(UInt256)
	if !ok {
		return bigint.U256{}, typeMismatch("UInt256", v)
	}
	return bigint.U256(x), nil
}

// AsUInt512 narrows v to its fixed-width integer.
func AsUInt512(v Value) (bigint.U512, error) {
	x, ok := v.(UInt512)
	if !ok {
		return bigint.U512{}, typeMismatch("UInt512", v)
	}
	return bigint.U512(x), nil
}

// AsAccount narrows v to its account record.
func AsAccount(v Value) (Account, error) {
	x, ok := v.(Account)
	if !ok {
		return Account{}, typeMismatch("Account", v)
	}
	return x, nil
}

// AsContract narrows v to its contract record.
func AsContract(v Value) (Contract, error) {
	x, ok := v.(Contract)
	if !ok {
		return Contract{}, typeMismatch("Contract", v)
	}
	return x, nil
}

// The MustX forms panic on a variant mismatch. They are a last-resort
// convenience for contexts that have already established the variant;
// everywhere else, prefer the AsX forms.

// MustInt32 is AsInt32 that panics on mismatch.
func MustInt32(v Value) int32 {
	x, err := AsInt32(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustBytes is AsBytes that panics on mismatch.
func MustBytes(v Value) []byte {
	x, err := AsBytes(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustInt32List is AsInt32List that panics on mismatch.
func MustInt32List(v Value) []int32 {
	x, err := AsInt32List(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustString is AsString that panics on mismatch.
func MustString(v Value) string {
	x, err := AsString(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustStringList is AsStringList that panics on mismatch.
func MustStringList(v Value) []string {
	x, err := AsStringList(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustNamedKey is AsNamedKey that panics on mismatch.
func MustNamedKey(v Value) (string, key.Key) {
	name, k, err := AsNamedKey(v)
	if err != nil {
		panic(err)
	}
	return name, k
}

// MustUInt128 is AsUInt128 that panics on mismatch.
func MustUInt128(v Value) bigint.U128 {
	x, err := AsUInt128(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustUInt256 is AsUInt256 that panics on mismatch.
func MustUInt256(v Value) bigint.U256 {
	x, err := AsUInt256(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustUInt512 is AsUInt512 that panics on mismatch.
func MustUInt512(v Value) bigint.U512 {
	x, err := AsUInt512(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustAccount is AsAccount that panics on mismatch.
func MustAccount(v Value) Account {
	x, err := AsAccount(v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustContract is AsContract that panics on mismatch.
func MustContract(v Value) Contract {
	x, err := AsContract(v)
	if err != nil {
		panic(err)
	}
	return x
}
