package key

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/stateberry/bytesrepr"
)

func TestIsReadable(t *testing.T) {
	tests := []struct {
		rights   AccessRights
		readable bool
	}{
		{Read, true},
		{ReadAdd, true},
		{ReadWrite, true},
		{Add, false},
		{AddWrite, false},
		{Eqv, false},
		{Write, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.readable, tt.rights.IsReadable(), "rights=%s", tt.rights)
	}
}

func TestIsWriteable(t *testing.T) {
	tests := []struct {
		rights    AccessRights
		writeable bool
	}{
		{Write, true},
		{ReadWrite, true},
		{AddWrite, true},
		{Eqv, false},
		{Read, false},
		{Add, false},
		{ReadAdd, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.writeable, tt.rights.IsWriteable(), "rights=%s", tt.rights)
	}
}

func TestIsAddable(t *testing.T) {
	tests := []struct {
		rights  AccessRights
		addable bool
	}{
		{Add, true},
		{ReadAdd, true},
		// ReadWrite sits above Add in the lattice: read plus write can
		// simulate any add.
		{ReadWrite, true},
		{AddWrite, true},
		{Eqv, false},
		{Read, false},
		{Write, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.addable, tt.rights.IsAddable(), "rights=%s", tt.rights)
	}
}

// orderedPairs are the strictly ordered pairs of the partial order, lo < hi.
var orderedPairs = []struct{ lo, hi AccessRights }{
	{Eqv, Read},
	{Eqv, Add},
	{Eqv, Write},
	{Eqv, ReadAdd},
	{Eqv, ReadWrite},
	{Eqv, AddWrite},
	{Read, ReadAdd},
	{Read, ReadWrite},
	{Add, ReadAdd},
	{Add, AddWrite},
	{Add, ReadWrite},
	{Write, ReadWrite},
	{Write, AddWrite},
}

// incomparablePairs are deliberately unrelated: no safe arithmetic
// interpretation connects them.
var incomparablePairs = [][2]AccessRights{
	{Read, Write},
	{Read, Add},
	{Read, AddWrite},
	{Write, Add},
	{Write, ReadAdd},
	{ReadAdd, AddWrite},
	{ReadAdd, ReadWrite},
	{ReadWrite, AddWrite},
}

func TestCompare_FullTable(t *testing.T) {
	// Build the full 7x7 expectation from the ordered and incomparable
	// pair lists, then check Compare against every cell.
	expected := make(map[[2]AccessRights]Comparison)
	for _, r := range AllAccessRights {
		expected[[2]AccessRights{r, r}] = Equal
	}
	for _, p := range orderedPairs {
		expected[[2]AccessRights{p.lo, p.hi}] = Less
		expected[[2]AccessRights{p.hi, p.lo}] = Greater
	}
	for _, p := range incomparablePairs {
		expected[[2]AccessRights{p[0], p[1]}] = Incomparable
		expected[[2]AccessRights{p[1], p[0]}] = Incomparable
	}
	require.Len(t, expected, len(AllAccessRights)*len(AllAccessRights))

	for pair, want := range expected {
		assert.Equal(t, want, pair[0].Compare(pair[1]),
			"Compare(%s, %s)", pair[0], pair[1])
	}
}

func TestCompare_EqvIsBottom(t *testing.T) {
	for _, r := range AllAccessRights {
		c := Eqv.Compare(r)
		assert.True(t, c == Less || c == Equal, "Eqv vs %s: %s", r, c)
	}
}

// mergeTable is the literal widening table, one row per unordered pair.
var mergeTable = []struct {
	a, b, merged AccessRights
}{
	{Eqv, Eqv, Eqv},
	{Eqv, Read, Read},
	{Eqv, Add, Add},
	{Eqv, Write, Write},
	{Eqv, ReadAdd, ReadAdd},
	{Eqv, ReadWrite, ReadWrite},
	{Eqv, AddWrite, AddWrite},
	{Read, Read, Read},
	{Add, Add, Add},
	{Write, Write, Write},
	{ReadAdd, ReadAdd, ReadAdd},
	{ReadWrite, ReadWrite, ReadWrite},
	{AddWrite, AddWrite, AddWrite},
	{Read, Write, ReadWrite},
	{Read, Add, ReadAdd},
	{Write, Add, AddWrite},
	{Read, ReadAdd, ReadAdd},
	{Read, ReadWrite, ReadWrite},
	{Read, AddWrite, ReadWrite},
	{Add, ReadAdd, ReadAdd},
	{Add, ReadWrite, ReadWrite},
	{Add, AddWrite, AddWrite},
	{Write, ReadAdd, ReadWrite},
	{Write, ReadWrite, ReadWrite},
	{Write, AddWrite, AddWrite},
	{ReadAdd, ReadWrite, ReadWrite},
	{ReadAdd, AddWrite, ReadWrite},
	{ReadWrite, AddWrite, ReadWrite},
}

func TestMerge_FullTable(t *testing.T) {
	// Every unordered pair appears exactly once: C(7,2) + 7 diagonal.
	require.Len(t, mergeTable, 28)

	for _, tt := range mergeTable {
		assert.Equal(t, tt.merged, tt.a.Merge(tt.b), "Merge(%s, %s)", tt.a, tt.b)
		assert.Equal(t, tt.merged, tt.b.Merge(tt.a), "Merge(%s, %s)", tt.b, tt.a)
	}
}

func TestMerge_Identity(t *testing.T) {
	for _, r := range AllAccessRights {
		assert.Equal(t, r, Eqv.Merge(r))
		assert.Equal(t, r, r.Merge(Eqv))
	}
}

func TestMerge_CommutativeIdempotent(t *testing.T) {
	for _, a := range AllAccessRights {
		assert.Equal(t, a, a.Merge(a), "idempotence of %s", a)
		for _, b := range AllAccessRights {
			assert.Equal(t, a.Merge(b), b.Merge(a), "commutativity of %s, %s", a, b)
		}
	}
}

func TestMerge_Associative(t *testing.T) {
	for _, a := range AllAccessRights {
		for _, b := range AllAccessRights {
			for _, c := range AllAccessRights {
				assert.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)),
					"associativity of %s, %s, %s", a, b, c)
			}
		}
	}
}

func TestMerge_WidenLaw(t *testing.T) {
	// Merge agrees with the partial order: the greater of comparable
	// operands, and a fixed point once both incomparable operands are
	// absorbed.
	for _, a := range AllAccessRights {
		for _, b := range AllAccessRights {
			merged := a.Merge(b)
			switch a.Compare(b) {
			case Greater:
				assert.Equal(t, a, merged, "%s > %s", a, b)
			case Less:
				assert.Equal(t, b, merged, "%s < %s", a, b)
			case Equal:
				assert.Equal(t, a, merged)
				assert.Equal(t, b, merged)
			case Incomparable:
				assert.Equal(t, merged, merged.Merge(a), "absorbing %s into %s", a, merged)
				assert.Equal(t, merged, merged.Merge(b), "absorbing %s into %s", b, merged)
			}
		}
	}
}

func TestMerge_ConcreteScenarios(t *testing.T) {
	assert.Equal(t, ReadAdd, Read.Merge(Add))
	assert.Equal(t, ReadWrite, ReadAdd.Merge(AddWrite))
	assert.Equal(t, Incomparable, Read.Compare(Write))
}

func TestAccessRights_Encoding(t *testing.T) {
	tags := map[AccessRights]byte{
		Eqv:       1,
		Read:      2,
		Add:       3,
		Write:     4,
		ReadAdd:   5,
		ReadWrite: 6,
		AddWrite:  7,
	}

	for r, tag := range tags {
		out, err := r.ToBytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{tag}, out, "rights=%s", r)

		got, rest, err := ReadAccessRights(out)
		require.NoError(t, err)
		assert.Equal(t, r, got)
		assert.Empty(t, rest)
	}
}

func TestReadAccessRights_TagRejection(t *testing.T) {
	// 0 is reserved; everything above 7 is unknown.
	for tag := 0; tag <= 255; tag++ {
		if tag >= 1 && tag <= 7 {
			continue
		}
		_, _, err := ReadAccessRights([]byte{byte(tag)})
		assert.ErrorIs(t, err, bytesrepr.ErrFormatting, "tag=0x%02x", tag)
	}
}

func TestReadAccessRights_EarlyEnd(t *testing.T) {
	_, _, err := ReadAccessRights(nil)
	assert.ErrorIs(t, err, bytesrepr.ErrEarlyEnd)
}

func TestAccessRights_InvalidEncode(t *testing.T) {
	// The raw bit pattern Read|Add|Write is not a capability level.
	invalid := AccessRights(7)
	require.False(t, invalid.IsValid())

	_, err := invalid.ToBytes()
	assert.ErrorIs(t, err, bytesrepr.ErrFormatting)
}

func TestAccessRights_StringParse(t *testing.T) {
	for _, r := range AllAccessRights {
		require.True(t, r.IsValid())

		parsed, err := ParseAccessRights(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseAccessRights("ReadAddWrite")
	assert.Error(t, err)
}

func TestComparison_String(t *testing.T) {
	tests := []struct {
		c        Comparison
		expected string
	}{
		{Incomparable, "incomparable"},
		{Less, "less"},
		{Equal, "equal"},
		{Greater, "greater"},
		{Comparison(42), "Comparison(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, fmt.Sprint(tt.c))
	}
}
