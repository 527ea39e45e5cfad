// Package key defines the space of keys addressing global state and the
// access-rights lattice gating what a holder of a reference may do.
//
// A Key is one of three variants: an account identifier, a
// content-addressed hash, or a capability reference carrying the holder's
// AccessRights. Keys are immutable value types with a canonical binary
// encoding; they are compared and ordered only so they can serve as map
// and set keys.
package key

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/blockberries/stateberry/bytesrepr"
)

// Identifier widths in bytes.
const (
	// AccountIDSize is the width of an account identifier.
	AccountIDSize = 20

	// IDSize is the width of hash and capability-reference identifiers.
	IDSize = 32
)

// Kind discriminates the Key variants. The numeric values are the wire tag
// bytes, shared by the encode and decode paths.
type Kind uint8

// Key variants.
const (
	// KindAccount is a fixed-width account identifier.
	KindAccount Kind = 0

	// KindHash is a content-addressed identifier, e.g. contract-by-hash.
	KindHash Kind = 1

	// KindCapRef is an unforgeable reference plus the capability level
	// the holder possesses over it.
	KindCapRef Kind = 2
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindAccount:
		return "Account"
	case KindHash:
		return "Hash"
	case KindCapRef:
		return "CapabilityRef"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// CapRefSerializedSize is an upper bound on the encoded size of a Key,
// reached by the capability-reference variant including its length-prefix
// framing inside sequences. Used for preallocation.
const CapRefSerializedSize = bytesrepr.U32Size + bytesrepr.Array32Size + keyTagSize + AccessRightsSerializedSize

const keyTagSize = bytesrepr.U8Size

// Key identifies a location in global state. The zero value is an Account
// key with a zero identifier.
//
// Key is a comparable struct: == is structural equality over the variant,
// the identifier and, for capability references, the rights. Keys can
// therefore be used directly as Go map keys. The total order implemented
// by Compare is deliberately narrower; see its doc comment.
type Key struct {
	kind Kind

	// id holds the identifier. Account identifiers occupy the first
	// AccountIDSize bytes and the remainder stays zero, keeping ==
	// structural.
	id [IDSize]byte

	// rights is meaningful only for KindCapRef and is Eqv otherwise.
	rights AccessRights
}

// NewAccount builds an account key.
func NewAccount(id [AccountIDSize]byte) Key {
	k := Key{kind: KindAccount}
	copy(k.id[:AccountIDSize], id[:])
	return k
}

// NewHash builds a content-addressed hash key.
func NewHash(id [IDSize]byte) Key {
	return Key{kind: KindHash, id: id}
}

// NewCapRef builds a capability-reference key carrying the holder's rights.
func NewCapRef(id [IDSize]byte, rights AccessRights) Key {
	return Key{kind: KindCapRef, id: id, rights: rights}
}

// Kind returns the variant of the key.
func (k Key) Kind() Kind { return k.kind }

// AccountID returns the account identifier, if the key is an account key.
func (k Key) AccountID() ([AccountIDSize]byte, bool) {
	var id [AccountIDSize]byte
	if k.kind != KindAccount {
		return id, false
	}
	copy(id[:], k.id[:AccountIDSize])
	return id, true
}

// HashID returns the hash identifier, if the key is a hash key.
func (k Key) HashID() ([IDSize]byte, bool) {
	if k.kind != KindHash {
		return [IDSize]byte{}, false
	}
	return k.id, true
}

// CapRefID returns the reference identifier, if the key is a capability
// reference.
func (k Key) CapRefID() ([IDSize]byte, bool) {
	if k.kind != KindCapRef {
		return [IDSize]byte{}, false
	}
	return k.id, true
}

// Rights returns the holder's capability level, if the key is a capability
// reference.
func (k Key) Rights() (AccessRights, bool) {
	if k.kind != KindCapRef {
		return Eqv, false
	}
	return k.rights, true
}

// ID returns the raw identifier bytes: AccountIDSize bytes for account
// keys, IDSize bytes otherwise. The returned slice must not be modified.
func (k Key) ID() []byte {
	if k.kind == KindAccount {
		return k.id[:AccountIDSize]
	}
	return k.id[:]
}

// Equal returns true if the keys are structurally equal, including the
// rights of capability references.
func (k Key) Equal(other Key) bool {
	return k == other
}

// Compare totally orders keys for use in ordered collections, returning
// -1, 0 or 1. Keys order by variant rank (Account < Hash < CapabilityRef),
// then byte-wise by identifier.
//
// The rights of a capability reference are ignored: AccessRights has no
// total order, so two capability references with the same identifier but
// different rights compare as 0 while being unequal under Equal. Do not
// assume Compare(a, b) == 0 implies a == b.
func (k Key) Compare(other Key) int {
	if k.kind != other.kind {
		if k.kind < other.kind {
			return -1
		}
		return 1
	}
	return bytes.Compare(k.ID(), other.ID())
}

// String returns a human-readable form of the key, e.g.
// "Account(1111...1111)".
func (k Key) String() string {
	if k.kind == KindCapRef {
		return fmt.Sprintf("%s(%s, %s)", k.kind, hex.EncodeToString(k.ID()), k.rights)
	}
	return fmt.Sprintf("%s(%s)", k.kind, hex.EncodeToString(k.ID()))
}

// ToBytes encodes the key as its variant tag byte followed by the variant
// payload:
//
//   - Account: a length-prefixed 20-byte identifier. The prefix is always
//     20 and therefore redundant, but it is part of the pinned on-chain
//     format and kept for decoder symmetry with generic sequences.
//   - Hash: the raw 32-byte identifier, no prefix.
//   - CapabilityRef: the raw 32-byte identifier, then the rights tag byte.
func (k Key) ToBytes() ([]byte, error) {
	switch k.kind {
	case KindAccount:
		out := make([]byte, 0, keyTagSize+bytesrepr.U32Size+AccountIDSize)
		out = bytesrepr.AppendU8(out, uint8(KindAccount))
		return bytesrepr.AppendBytes(out, k.id[:AccountIDSize])
	case KindHash:
		out := make([]byte, 0, keyTagSize+IDSize)
		out = bytesrepr.AppendU8(out, uint8(KindHash))
		return append(out, k.id[:]...), nil
	case KindCapRef:
		out := make([]byte, 0, CapRefSerializedSize)
		out = bytesrepr.AppendU8(out, uint8(KindCapRef))
		out = append(out, k.id[:]...)
		return appendAccessRights(out, k.rights)
	default:
		return nil, fmt.Errorf("%w: invalid key kind %d", bytesrepr.ErrFormatting, uint8(k.kind))
	}
}

func appendKey(dst []byte, k Key) ([]byte, error) {
	b, err := k.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// ReadKey decodes a key from the front of data. An unknown leading tag
// byte, or an account identifier whose length prefix is not 20, is a
// formatting error.
func ReadKey(data []byte) (Key, []byte, error) {
	tag, rest, err := bytesrepr.ReadU8(data)
	if err != nil {
		return Key{}, nil, err
	}
	switch Kind(tag) {
	case KindAccount:
		id, rem, err := bytesrepr.ReadBytes(rest)
		if err != nil {
			return Key{}, nil, err
		}
		if len(id) != AccountIDSize {
			return Key{}, nil, fmt.Errorf("%w: account id is %d bytes, want %d",
				bytesrepr.ErrFormatting, len(id), AccountIDSize)
		}
		var addr [AccountIDSize]byte
		copy(addr[:], id)
		return NewAccount(addr), rem, nil
	case KindHash:
		id, rem, err := bytesrepr.ReadArray32(rest)
		if err != nil {
			return Key{}, nil, err
		}
		return NewHash(id), rem, nil
	case KindCapRef:
		id, rem, err := bytesrepr.ReadArray32(rest)
		if err != nil {
			return Key{}, nil, err
		}
		rights, rem, err := ReadAccessRights(rem)
		if err != nil {
			return Key{}, nil, err
		}
		return NewCapRef(id, rights), rem, nil
	default:
		return Key{}, nil, fmt.Errorf("%w: unknown key tag 0x%02x", bytesrepr.ErrFormatting, tag)
	}
}

// AppendKeys appends a length-prefixed sequence of keys.
func AppendKeys(dst []byte, keys []Key) ([]byte, error) {
	return bytesrepr.AppendVec(dst, keys, appendKey)
}

// ReadKeys decodes a length-prefixed sequence of keys from the front of
// data.
func ReadKeys(data []byte) ([]Key, []byte, error) {
	return bytesrepr.ReadVec(data, ReadKey)
}
