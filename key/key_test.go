package key

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/stateberry/bytesrepr"
)

func accountID(fill byte) [AccountIDSize]byte {
	var id [AccountIDSize]byte
	for i := range id {
		id[i] = fill
	}
	return id
}

func id32(fill byte) [IDSize]byte {
	var id [IDSize]byte
	for i := range id {
		id[i] = fill
	}
	return id
}

func TestKey_Accessors(t *testing.T) {
	acct := NewAccount(accountID(0x11))
	hash := NewHash(id32(0x22))
	ref := NewCapRef(id32(0x33), ReadAdd)

	assert.Equal(t, KindAccount, acct.Kind())
	assert.Equal(t, KindHash, hash.Kind())
	assert.Equal(t, KindCapRef, ref.Kind())

	gotAcct, ok := acct.AccountID()
	require.True(t, ok)
	assert.Equal(t, accountID(0x11), gotAcct)
	_, ok = hash.AccountID()
	assert.False(t, ok)

	gotHash, ok := hash.HashID()
	require.True(t, ok)
	assert.Equal(t, id32(0x22), gotHash)
	_, ok = ref.HashID()
	assert.False(t, ok)

	gotRef, ok := ref.CapRefID()
	require.True(t, ok)
	assert.Equal(t, id32(0x33), gotRef)
	_, ok = acct.CapRefID()
	assert.False(t, ok)

	rights, ok := ref.Rights()
	require.True(t, ok)
	assert.Equal(t, ReadAdd, rights)
	_, ok = hash.Rights()
	assert.False(t, ok)

	assert.Len(t, acct.ID(), AccountIDSize)
	assert.Len(t, hash.ID(), IDSize)
	assert.Len(t, ref.ID(), IDSize)
}

func TestKey_Equality(t *testing.T) {
	assert.True(t, NewAccount(accountID(0x11)).Equal(NewAccount(accountID(0x11))))
	assert.False(t, NewAccount(accountID(0x11)).Equal(NewAccount(accountID(0x12))))
	assert.False(t, NewHash(id32(0x11)).Equal(NewCapRef(id32(0x11), Eqv)))

	// Rights participate in equality.
	assert.True(t, NewCapRef(id32(0xAA), Read).Equal(NewCapRef(id32(0xAA), Read)))
	assert.False(t, NewCapRef(id32(0xAA), Read).Equal(NewCapRef(id32(0xAA), Write)))
}

func TestKey_AsMapKey(t *testing.T) {
	m := map[Key]string{
		NewAccount(accountID(0x01)):    "account",
		NewHash(id32(0x02)):            "hash",
		NewCapRef(id32(0x03), ReadAdd): "ref",
	}

	assert.Equal(t, "account", m[NewAccount(accountID(0x01))])
	assert.Equal(t, "hash", m[NewHash(id32(0x02))])
	assert.Equal(t, "ref", m[NewCapRef(id32(0x03), ReadAdd)])

	// Same id, different rights: a distinct map key.
	_, present := m[NewCapRef(id32(0x03), Write)]
	assert.False(t, present)
}

func TestKey_Compare_VariantRank(t *testing.T) {
	acct := NewAccount(accountID(0xFF))
	hash := NewHash(id32(0x00))
	ref := NewCapRef(id32(0x00), Eqv)

	// Variant rank dominates the identifier bytes.
	assert.Equal(t, -1, acct.Compare(hash))
	assert.Equal(t, -1, acct.Compare(ref))
	assert.Equal(t, -1, hash.Compare(ref))
	assert.Equal(t, 1, hash.Compare(acct))
	assert.Equal(t, 1, ref.Compare(acct))
	assert.Equal(t, 1, ref.Compare(hash))
}

func TestKey_Compare_IDOrder(t *testing.T) {
	low := NewHash(id32(0x01))
	high := NewHash(id32(0x02))

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
}

func TestKey_OrdEqGap(t *testing.T) {
	// Two capability references with the same id but different rights
	// are ordering-equal yet value-unequal. This is deliberate:
	// AccessRights has no total order, so the collection order ignores
	// rights. Expected behavior, not a regression.
	a := NewCapRef(id32(0xAA), Read)
	b := NewCapRef(id32(0xAA), Write)

	assert.Equal(t, 0, a.Compare(b))
	assert.False(t, a.Equal(b))
}

func TestKey_Encoding_Account(t *testing.T) {
	k := NewAccount(accountID(0x11))

	out, err := k.ToBytes()
	require.NoError(t, err)

	// Tag 0, then the redundant-but-pinned length prefix, then the id.
	expected := []byte{0x00, 0x14, 0x00, 0x00, 0x00}
	expected = append(expected, bytes.Repeat([]byte{0x11}, AccountIDSize)...)
	assert.Equal(t, expected, out)

	got, rest, err := ReadKey(out)
	require.NoError(t, err)
	assert.Equal(t, k, got)
	assert.Empty(t, rest)
}

func TestKey_Encoding_Hash(t *testing.T) {
	k := NewHash(id32(0x22))

	out, err := k.ToBytes()
	require.NoError(t, err)

	// Tag 1, then the raw 32-byte id with no prefix.
	expected := append([]byte{0x01}, bytes.Repeat([]byte{0x22}, IDSize)...)
	assert.Equal(t, expected, out)

	got, rest, err := ReadKey(out)
	require.NoError(t, err)
	assert.Equal(t, k, got)
	assert.Empty(t, rest)
}

func TestKey_Encoding_CapRef(t *testing.T) {
	k := NewCapRef(id32(0xAA), ReadWrite)

	out, err := k.ToBytes()
	require.NoError(t, err)

	// Tag 2, raw 32-byte id, rights tag 6.
	expected := append([]byte{0x02}, bytes.Repeat([]byte{0xAA}, IDSize)...)
	expected = append(expected, 0x06)
	assert.Equal(t, expected, out)

	got, rest, err := ReadKey(out)
	require.NoError(t, err)
	assert.Equal(t, k, got)
	assert.Empty(t, rest)
}

func TestKey_RoundTrip_AllVariants(t *testing.T) {
	keys := []Key{
		NewAccount(accountID(0x00)),
		NewAccount(accountID(0xFF)),
		NewHash(id32(0x01)),
		NewCapRef(id32(0x02), Eqv),
		NewCapRef(id32(0x03), Read),
		NewCapRef(id32(0x04), AddWrite),
	}

	for _, k := range keys {
		out, err := k.ToBytes()
		require.NoError(t, err)

		got, rest, err := ReadKey(out)
		require.NoError(t, err, "key=%s", k)
		assert.Equal(t, k, got)
		assert.Empty(t, rest)
	}
}

func TestReadKey_TagRejection(t *testing.T) {
	for tag := 3; tag <= 255; tag++ {
		input := append([]byte{byte(tag)}, make([]byte, 40)...)
		_, _, err := ReadKey(input)
		assert.ErrorIs(t, err, bytesrepr.ErrFormatting, "tag=0x%02x", tag)
	}
}

func TestReadKey_AccountWrongLength(t *testing.T) {
	// A 19-byte account id is structurally invalid even though the
	// stream is self-consistent.
	input := []byte{0x00}
	input = bytesrepr.AppendU32(input, 19)
	input = append(input, make([]byte, 19)...)

	_, _, err := ReadKey(input)
	assert.ErrorIs(t, err, bytesrepr.ErrFormatting)
}

func TestReadKey_Truncated(t *testing.T) {
	full, err := NewCapRef(id32(0xAA), ReadWrite).ToBytes()
	require.NoError(t, err)

	for cut := 0; cut < len(full); cut++ {
		_, _, err := ReadKey(full[:cut])
		assert.ErrorIs(t, err, bytesrepr.ErrEarlyEnd, "cut=%d", cut)
	}
}

func TestReadKey_CapRefBadRights(t *testing.T) {
	input := append([]byte{0x02}, make([]byte, IDSize)...)
	input = append(input, 0x00) // reserved rights tag

	_, _, err := ReadKey(input)
	assert.ErrorIs(t, err, bytesrepr.ErrFormatting)
}

func TestReadKey_LeavesRemainder(t *testing.T) {
	out, err := NewHash(id32(0x22)).ToBytes()
	require.NoError(t, err)
	out = append(out, 0xDE, 0xAD)

	_, rest, err := ReadKey(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD}, rest)
}

func TestKeys_RoundTrip(t *testing.T) {
	tests := [][]Key{
		nil,
		{NewHash(id32(0x01))},
		{
			NewAccount(accountID(0x01)),
			NewHash(id32(0x02)),
			NewCapRef(id32(0x03), ReadWrite),
		},
	}

	for _, keys := range tests {
		out, err := AppendKeys(nil, keys)
		require.NoError(t, err)

		got, rest, err := ReadKeys(out)
		require.NoError(t, err)
		assert.Equal(t, keys, got)
		assert.Empty(t, rest)
	}
}

func TestKeys_EarlyEnd(t *testing.T) {
	out, err := AppendKeys(nil, []Key{NewHash(id32(0x01))})
	require.NoError(t, err)

	// Bump the count past the available elements.
	out[0] = 0x02

	_, _, err = ReadKeys(out)
	assert.ErrorIs(t, err, bytesrepr.ErrEarlyEnd)
}

func TestKey_String(t *testing.T) {
	assert.Contains(t, NewAccount(accountID(0x11)).String(), "Account(")
	assert.Contains(t, NewHash(id32(0x22)).String(), "Hash(")

	s := NewCapRef(id32(0x33), ReadAdd).String()
	assert.Contains(t, s, "CapabilityRef(")
	assert.Contains(t, s, "ReadAdd")
}

func TestKey_AsCapRef(t *testing.T) {
	ref := NewCapRef(id32(0xAA), ReadWrite)

	handle, ok := ref.AsCapRef()
	require.True(t, ok)
	assert.Equal(t, id32(0xAA), handle.ID)
	assert.Equal(t, ReadWrite, handle.Rights)
	assert.Equal(t, ref, handle.Key())

	_, ok = NewHash(id32(0x01)).AsCapRef()
	assert.False(t, ok)
	_, ok = NewAccount(accountID(0x01)).AsCapRef()
	assert.False(t, ok)
}

func TestKey_AsPointer(t *testing.T) {
	hash := NewHash(id32(0x22))
	ref := NewCapRef(id32(0x33), Add)

	p, ok := hash.AsPointer()
	require.True(t, ok)
	assert.Equal(t, PointerHash, p.Kind)
	assert.Equal(t, hash, p.Key())

	p, ok = ref.AsPointer()
	require.True(t, ok)
	assert.Equal(t, PointerCapRef, p.Kind)
	assert.Equal(t, Add, p.Rights)
	assert.Equal(t, ref, p.Key())

	_, ok = NewAccount(accountID(0x01)).AsPointer()
	assert.False(t, ok)
}
