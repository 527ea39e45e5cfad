package key

import (
	"fmt"

	"github.com/blockberries/stateberry/bytesrepr"
)

// AccessRights is the capability level a holder possesses over a single
// addressed resource. It is a set of the three primitive capabilities Read,
// Add and Write; Eqv is the empty set and grants nothing.
//
// Not every combination of rights is comparable: the lattice deliberately
// leaves some pairs incomparable (see Compare) because no safe arithmetic
// interpretation relates them. Rights are immutable values; combining two
// references to the same resource produces a new value via Merge.
type AccessRights uint8

// Capability levels. The numeric values are an internal flag-set
// representation, not the wire tags (see the rightsTag constants).
const (
	// Eqv grants no capability. It is the identity element for Merge and
	// compares below every other level.
	Eqv AccessRights = 0

	// Read grants read access.
	Read AccessRights = 1 << 0

	// Add grants blind-append access: the holder may contribute to the
	// value without observing it.
	Add AccessRights = 1 << 1

	// Write grants overwrite access.
	Write AccessRights = 1 << 2

	// ReadAdd grants both read and add access.
	ReadAdd = Read | Add

	// ReadWrite grants both read and write access.
	ReadWrite = Read | Write

	// AddWrite grants both add and write access.
	AddWrite = Add | Write
)

// Wire tags for AccessRights. The tag space starts at 1; 0 is reserved and
// rejected on decode.
const (
	rightsTagEqv       uint8 = 1
	rightsTagRead      uint8 = 2
	rightsTagAdd       uint8 = 3
	rightsTagWrite     uint8 = 4
	rightsTagReadAdd   uint8 = 5
	rightsTagReadWrite uint8 = 6
	rightsTagAddWrite  uint8 = 7
)

// AccessRightsSerializedSize is the encoded size of an AccessRights value.
const AccessRightsSerializedSize = bytesrepr.U8Size

// AllAccessRights lists every valid capability level, in tag order.
var AllAccessRights = []AccessRights{Eqv, Read, Add, Write, ReadAdd, ReadWrite, AddWrite}

// Comparison is the result of comparing two access rights under the
// capability partial order. Incomparable is a first-class outcome, not an
// error: the lattice intentionally relates only pairs with a safe
// derivation between them.
type Comparison int

// Comparison outcomes.
const (
	Incomparable Comparison = iota
	Less
	Equal
	Greater
)

// String returns the comparison outcome as a string.
func (c Comparison) String() string {
	switch c {
	case Incomparable:
		return "incomparable"
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Comparison(%d)", int(c))
	}
}

// Compare places r and other in the capability partial order.
//
// The order is containment of the capability sets, extended by a single
// hand-picked axiom: Add < ReadWrite, because Read plus Write can simulate
// any Add. The reverse extension is not made — Write stays incomparable
// with ReadAdd, since Add cannot safely represent removal or negation, and
// promoting it would permit unsound capability escalation. Consequently
// Eqv sits below everything and the deliberately incomparable pairs are:
// Read/Write, Read/Add, Read/AddWrite, Write/Add, Write/ReadAdd,
// ReadAdd/AddWrite, ReadAdd/ReadWrite and ReadWrite/AddWrite.
func (r AccessRights) Compare(other AccessRights) Comparison {
	switch {
	case r == other:
		return Equal
	case r&other == r:
		return Less
	case r&other == other:
		return Greater
	case r == Add && other == ReadWrite:
		return Less
	case r == ReadWrite && other == Add:
		return Greater
	default:
		return Incomparable
	}
}

// Merge widens r with other: the result carries every capability either
// operand grants. Eqv is the identity; Merge is commutative, associative
// and idempotent, and for comparable operands returns the greater one. The
// full set {Read, Add, Write} has no variant of its own and collapses to
// ReadWrite, which already subsumes Add.
func (r AccessRights) Merge(other AccessRights) AccessRights {
	merged := r | other
	if merged == Read|Add|Write {
		return ReadWrite
	}
	return merged
}

// IsReadable returns true if r grants read access.
func (r AccessRights) IsReadable() bool { return r.atLeast(Read) }

// IsWriteable returns true if r grants write access.
func (r AccessRights) IsWriteable() bool { return r.atLeast(Write) }

// IsAddable returns true if r grants add access. Note that ReadWrite is
// addable: it sits above Add in the lattice.
func (r AccessRights) IsAddable() bool { return r.atLeast(Add) }

func (r AccessRights) atLeast(required AccessRights) bool {
	c := r.Compare(required)
	return c == Equal || c == Greater
}

// IsValid returns true if r is one of the seven capability levels.
func (r AccessRights) IsValid() bool {
	switch r {
	case Eqv, Read, Add, Write, ReadAdd, ReadWrite, AddWrite:
		return true
	default:
		return false
	}
}

// String returns the capability level as a string.
func (r AccessRights) String() string {
	switch r {
	case Eqv:
		return "Eqv"
	case Read:
		return "Read"
	case Add:
		return "Add"
	case Write:
		return "Write"
	case ReadAdd:
		return "ReadAdd"
	case ReadWrite:
		return "ReadWrite"
	case AddWrite:
		return "AddWrite"
	default:
		return fmt.Sprintf("AccessRights(%d)", uint8(r))
	}
}

// ParseAccessRights parses a capability level name as produced by String.
func ParseAccessRights(s string) (AccessRights, error) {
	for _, r := range AllAccessRights {
		if r.String() == s {
			return r, nil
		}
	}
	return Eqv, fmt.Errorf("unknown access rights %q", s)
}

// ToBytes encodes the capability level as its single wire tag byte.
func (r AccessRights) ToBytes() ([]byte, error) {
	switch r {
	case Eqv:
		return []byte{rightsTagEqv}, nil
	case Read:
		return []byte{rightsTagRead}, nil
	case Add:
		return []byte{rightsTagAdd}, nil
	case Write:
		return []byte{rightsTagWrite}, nil
	case ReadAdd:
		return []byte{rightsTagReadAdd}, nil
	case ReadWrite:
		return []byte{rightsTagReadWrite}, nil
	case AddWrite:
		return []byte{rightsTagAddWrite}, nil
	default:
		return nil, fmt.Errorf("%w: invalid access rights %d", bytesrepr.ErrFormatting, uint8(r))
	}
}

func appendAccessRights(dst []byte, r AccessRights) ([]byte, error) {
	b, err := r.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// ReadAccessRights decodes a capability level from the front of data. Any
// tag byte outside 1..7 is a formatting error.
func ReadAccessRights(data []byte) (AccessRights, []byte, error) {
	tag, rest, err := bytesrepr.ReadU8(data)
	if err != nil {
		return Eqv, nil, err
	}
	switch tag {
	case rightsTagEqv:
		return Eqv, rest, nil
	case rightsTagRead:
		return Read, rest, nil
	case rightsTagAdd:
		return Add, rest, nil
	case rightsTagWrite:
		return Write, rest, nil
	case rightsTagReadAdd:
		return ReadAdd, rest, nil
	case rightsTagReadWrite:
		return ReadWrite, rest, nil
	case rightsTagAddWrite:
		return AddWrite, rest, nil
	default:
		return Eqv, nil, fmt.Errorf("%w: unknown access rights tag 0x%02x", bytesrepr.ErrFormatting, tag)
	}
}
