// Package model defines the chain data model served by the ledger node.
package model

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HashSize is the byte length of every digest in the data model.
const HashSize = chainhash.HashSize

// Hash identifies blocks and transactions.
type Hash [HashSize]byte

// Field is a 32-byte element used for commitments and serial numbers.
type Field [HashSize]byte

// DoubleHash returns the double SHA-256 digest of b.
func DoubleHash(b []byte) Hash {
	return Hash(chainhash.DoubleHashH(b))
}

// ParseHash decodes a hex encoded hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	err := h.UnmarshalText([]byte(s))
	return h, err
}

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// IsZero reports whether h is the all-zero hash.
func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	return decodeHex32((*[HashSize]byte)(h), text)
}

// ParseField decodes a hex encoded field element.
func ParseField(s string) (Field, error) {
	var f Field
	err := f.UnmarshalText([]byte(s))
	return f, err
}

func (f Field) String() string { return hex.EncodeToString(f[:]) }

// IsZero reports whether f is the all-zero element.
func (f Field) IsZero() bool { return f == Field{} }

func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Field) UnmarshalText(text []byte) error {
	return decodeHex32((*[HashSize]byte)(f), text)
}

// Ciphertext is an opaque encrypted record.
type Ciphertext []byte

func (c Ciphertext) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(c)), nil
}

func (c *Ciphertext) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("%w: ciphertext: %v", ErrDecode, err)
	}
	*c = b
	return nil
}

func decodeHex32(dst *[HashSize]byte, text []byte) error {
	if len(text) != hex.EncodedLen(HashSize) {
		return fmt.Errorf("%w: expected %d hex characters, got %d", ErrDecode, hex.EncodedLen(HashSize), len(text))
	}
	if _, err := hex.Decode(dst[:], text); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
