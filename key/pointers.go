package key

// CapRef is the handle a caller holds after narrowing a key to its
// capability-reference variant: the unforgeable identifier plus the
// capability level the holder possesses over it.
type CapRef struct {
	ID     [IDSize]byte
	Rights AccessRights
}

// Key converts the handle back into a capability-reference key.
func (r CapRef) Key() Key {
	return NewCapRef(r.ID, r.Rights)
}

// PointerKind discriminates the Pointer variants.
type PointerKind uint8

// Pointer variants.
const (
	// PointerHash addresses immutable content by hash.
	PointerHash PointerKind = iota

	// PointerCapRef addresses content through a capability reference.
	PointerCapRef
)

// Pointer is a generic handle to addressable content: either a content
// hash or a capability reference. Account keys do not narrow to pointers.
type Pointer struct {
	Kind PointerKind
	ID   [IDSize]byte

	// Rights is meaningful only for PointerCapRef.
	Rights AccessRights
}

// Key converts the pointer back into a key.
func (p Pointer) Key() Key {
	if p.Kind == PointerCapRef {
		return NewCapRef(p.ID, p.Rights)
	}
	return NewHash(p.ID)
}

// AsCapRef narrows the key to a capability-reference handle. The second
// return is false for any other variant.
func (k Key) AsCapRef() (CapRef, bool) {
	if k.kind != KindCapRef {
		return CapRef{}, false
	}
	return CapRef{ID: k.id, Rights: k.rights}, true
}

// AsPointer narrows the key to a generic pointer. Hash keys yield a
// PointerHash, capability references a PointerCapRef; the second return is
// false for account keys.
func (k Key) AsPointer() (Pointer, bool) {
	switch k.kind {
	case KindHash:
		return Pointer{Kind: PointerHash, ID: k.id}, true
	case KindCapRef:
		return Pointer{Kind: PointerCapRef, ID: k.id, Rights: k.rights}, true
	default:
		return Pointer{}, false
	}
}
