package model

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/shieldledger-backend/internal/codec"
)

// Tree depths of the state tree: every block commits its record commitments into a
// local tree, and the local roots are the leaves of the global tree indexed by height.
const (
	TransactionsTreeDepth = 16
	BlockTreeDepth        = 16
	GlobalTreeDepth       = 32
)

// Header carries the linkage and roots of a block.
type Header struct {
	_                struct{} `cbor:",toarray"`
	Height           uint32   `json:"height"`
	PreviousHash     Hash     `json:"previous_hash"`
	TransactionsRoot Hash     `json:"transactions_root"`
	CommitmentsRoot  Hash     `json:"commitments_root"`
	StateRoot        Hash     `json:"state_root"`
	Timestamp        int64    `json:"timestamp"`
}

// Hash returns the block hash, the double SHA-256 of the encoded header.
func (h Header) Hash() Hash {
	return DoubleHash(codec.MustMarshal(h))
}

// Block is an ordered batch of transactions.
type Block struct {
	_            struct{}      `cbor:",toarray"`
	Header       Header        `json:"header"`
	Transactions []Transaction `json:"transactions"`
}

func (b Block) Hash() Hash            { return b.Header.Hash() }
func (b Block) Height() uint32        { return b.Header.Height }
func (b Block) PreviousHash() Hash    { return b.Header.PreviousHash }
func (b Block) Timestamp() int64      { return b.Header.Timestamp }
func (b Block) CommitmentsRoot() Hash { return b.Header.CommitmentsRoot }

// TransactionIDs returns the ids of the block's transactions in block order.
func (b Block) TransactionIDs() []Hash {
	ids := make([]Hash, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		ids = append(ids, tx.ID())
	}
	return ids
}

// Commitments returns every output commitment in the block, in transaction then output order.
func (b Block) Commitments() []Field {
	var out []Field
	for _, tx := range b.Transactions {
		out = append(out, tx.Commitments()...)
	}
	return out
}

// SerialNumbers returns every input serial number in the block.
func (b Block) SerialNumbers() []Field {
	var out []Field
	for _, tx := range b.Transactions {
		out = append(out, tx.SerialNumbers()...)
	}
	return out
}

type blockJSON struct {
	Hash         *Hash         `json:"hash,omitempty"`
	Header       Header        `json:"header"`
	Transactions []Transaction `json:"transactions"`
}

func (b Block) MarshalJSON() ([]byte, error) {
	hash := b.Hash()
	return json.Marshal(blockJSON{
		Hash:         &hash,
		Header:       b.Header,
		Transactions: nonNil(b.Transactions),
	})
}

// UnmarshalJSON decodes a block and rejects a hash that does not match its header.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: block: %v", ErrDecode, err)
	}
	block := Block{Header: raw.Header, Transactions: raw.Transactions}
	if raw.Hash != nil {
		if hash := block.Hash(); hash != *raw.Hash {
			return fmt.Errorf("%w: block hash %s does not match header %s", ErrDecode, raw.Hash, hash)
		}
	}
	*b = block
	return nil
}
