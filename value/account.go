package value

import (
	"github.com/blockberries/stateberry/bytesrepr"
	"github.com/blockberries/stateberry/key"
)

// PublicKeySize is the width of an account public key in bytes.
const PublicKeySize = 32

// Account is the on-chain account record stored under an account key: the
// account's public key, its replay-protection nonce, and the keys it
// knows about.
type Account struct {
	PublicKey [PublicKeySize]byte
	Nonce     uint64
	KnownKeys []key.Key
}

// recordToBytes encodes the record itself: raw public key, little-endian
// nonce, then the known-keys sequence. The Value tag byte is applied by
// Account.ToBytes.
func (a Account) recordToBytes() ([]byte, error) {
	out := make([]byte, 0, PublicKeySize+bytesrepr.U64Size+
		bytesrepr.U32Size+len(a.KnownKeys)*key.CapRefSerializedSize)
	out = append(out, a.PublicKey[:]...)
	out = bytesrepr.AppendU64(out, a.Nonce)
	return key.AppendKeys(out, a.KnownKeys)
}

// readAccountRecord decodes an account record from the front of data.
func readAccountRecord(data []byte) (Account, []byte, error) {
	pub, rest, err := bytesrepr.ReadArray32(data)
	if err != nil {
		return Account{}, nil, err
	}
	nonce, rest, err := bytesrepr.ReadU64(rest)
	if err != nil {
		return Account{}, nil, err
	}
	keys, rest, err := key.ReadKeys(rest)
	if err != nil {
		return Account{}, nil, err
	}
	return Account{PublicKey: pub, Nonce: nonce, KnownKeys: keys}, rest, nil
}
