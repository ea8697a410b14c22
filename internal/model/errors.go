package model

import "errors"

var (
	// ErrNotFound reports an absent height, hash, transaction or commitment.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate reports a transaction or commitment that is already pooled or confirmed.
	ErrDuplicate = errors.New("duplicate")
	// ErrDoubleSpend reports an input serial number that is already pooled or spent.
	ErrDoubleSpend = errors.New("double spend")
	// ErrQueueClosed reports that the write consumer is no longer running.
	ErrQueueClosed = errors.New("queue closed")
	// ErrDecode reports malformed input rejected at the boundary.
	ErrDecode = errors.New("decode error")
	// ErrInvalidTransaction reports a structurally unusable transaction.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrInvalidBlock reports a block that does not extend the current chain.
	ErrInvalidBlock = errors.New("invalid block")
)
