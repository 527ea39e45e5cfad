package value

import (
	"github.com/blockberries/stateberry/bytesrepr"
	"github.com/blockberries/stateberry/key"
)

// Contract is the on-chain contract record stored under a hash key: the
// contract body and the keys it knows about.
type Contract struct {
	Body      []byte
	KnownKeys []key.Key
}

// recordToBytes encodes the record itself: length-prefixed body bytes,
// then the known-keys sequence. The Value tag byte is applied by
// Contract.ToBytes.
func (c Contract) recordToBytes() ([]byte, error) {
	out := make([]byte, 0, bytesrepr.U32Size+len(c.Body)+
		bytesrepr.U32Size+len(c.KnownKeys)*key.CapRefSerializedSize)
	out, err := bytesrepr.AppendBytes(out, c.Body)
	if err != nil {
		return nil, err
	}
	return key.AppendKeys(out, c.KnownKeys)
}

// readContractRecord decodes a contract record from the front of data.
func readContractRecord(data []byte) (Contract, []byte, error) {
	body, rest, err := bytesrepr.ReadBytes(data)
	if err != nil {
		return Contract{}, nil, err
	}
	keys, rest, err := key.ReadKeys(rest)
	if err != nil {
		return Contract{}, nil, err
	}
	return Contract{Body: body, KnownKeys: keys}, rest, nil
}
