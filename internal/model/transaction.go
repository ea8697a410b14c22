package model

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/shieldledger-backend/internal/codec"
)

// Input spends a record by revealing its serial number.
type Input struct {
	_            struct{} `cbor:",toarray"`
	SerialNumber Field    `json:"serial_number"`
}

// Output creates a record: the public commitment and the ciphertext only its owner can open.
type Output struct {
	_          struct{}   `cbor:",toarray"`
	Commitment Field      `json:"commitment"`
	Ciphertext Ciphertext `json:"ciphertext"`
}

// Transaction is a state transition over private records.
type Transaction struct {
	_       struct{} `cbor:",toarray"`
	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"outputs"`
}

// ID returns the deterministic transaction identifier derived from its contents.
func (t Transaction) ID() Hash {
	return DoubleHash(codec.MustMarshal(t))
}

// SerialNumbers returns the serial numbers revealed by the inputs, in input order.
func (t Transaction) SerialNumbers() []Field {
	out := make([]Field, 0, len(t.Inputs))
	for _, in := range t.Inputs {
		out = append(out, in.SerialNumber)
	}
	return out
}

// Commitments returns the output commitments, in output order.
func (t Transaction) Commitments() []Field {
	out := make([]Field, 0, len(t.Outputs))
	for _, o := range t.Outputs {
		out = append(out, o.Commitment)
	}
	return out
}

type transactionJSON struct {
	ID      *Hash    `json:"id,omitempty"`
	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"outputs"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	id := t.ID()
	return json.Marshal(transactionJSON{
		ID:      &id,
		Inputs:  nonNil(t.Inputs),
		Outputs: nonNil(t.Outputs),
	})
}

// UnmarshalJSON decodes a transaction and rejects an id that does not match its contents.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: transaction: %v", ErrDecode, err)
	}
	tx := Transaction{Inputs: raw.Inputs, Outputs: raw.Outputs}
	if raw.ID != nil {
		if id := tx.ID(); id != *raw.ID {
			return fmt.Errorf("%w: transaction id %s does not match contents %s", ErrDecode, raw.ID, id)
		}
	}
	*t = tx
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
