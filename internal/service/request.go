package service

import (
	"fmt"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

// RequestKind names the write operations the consumer applies.
type RequestKind int

const (
	TransactionBroadcast RequestKind = iota + 1
	BlockAdvance
	BlockProposal
)

func (k RequestKind) String() string {
	switch k {
	case TransactionBroadcast:
		return "transaction_broadcast"
	case BlockAdvance:
		return "block_advance"
	case BlockProposal:
		return "block_proposal"
	}
	return fmt.Sprintf("RequestKind(%d)", int(k))
}

// Request is one queued write. Only the fields of its kind are read.
type Request struct {
	Kind        RequestKind
	Transaction model.Transaction
	Block       model.Block
	Timestamp   int64
	Limit       int
}

// BroadcastTransaction asks for tx to be admitted into the memory pool.
func BroadcastTransaction(tx model.Transaction) Request {
	return Request{Kind: TransactionBroadcast, Transaction: tx}
}

// AdvanceBlock asks for an externally produced block to be confirmed.
func AdvanceBlock(block model.Block) Request {
	return Request{Kind: BlockAdvance, Block: block}
}

// ProposeBlock asks for up to limit pooled transactions to be sealed and confirmed
// as the next block. A non-positive limit takes the whole pool.
func ProposeBlock(timestamp int64, limit int) Request {
	return Request{Kind: BlockProposal, Timestamp: timestamp, Limit: limit}
}
