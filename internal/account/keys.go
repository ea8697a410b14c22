// Package account holds owner keys and the record cryptography: commitments,
// encryption to an address, view-key decryption and serial numbers.
package account

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/curve25519"
)

const (
	keySize = 32

	PrivateKeyHRP = "slpriv"
	ViewKeyHRP    = "slview"
	AddressHRP    = "sl"
)

const (
	viewKeyDomain = "shieldledger.view_key"
	serialDomain  = "shieldledger.serial_number"
)

// ErrInvalidKey reports a key string that does not decode to a key of the expected kind.
var ErrInvalidKey = errors.New("invalid key")

// PrivateKey is the root secret from which the view key and address derive.
type PrivateKey [keySize]byte

// ViewKey decrypts records addressed to its owner and derives their serial numbers.
type ViewKey [keySize]byte

// Address is the public key records are encrypted to.
type Address [keySize]byte

// NewPrivateKey samples a private key from r, or crypto/rand when r is nil.
func NewPrivateKey(r io.Reader) (PrivateKey, error) {
	if r == nil {
		r = rand.Reader
	}
	var k PrivateKey
	if _, err := io.ReadFull(r, k[:]); err != nil {
		return PrivateKey{}, fmt.Errorf("read private key entropy: %w", err)
	}
	return k, nil
}

// ViewKey derives the view key.
func (k PrivateKey) ViewKey() ViewKey {
	h, _ := blake2b.New256([]byte(viewKeyDomain))
	h.Write(k[:])
	var v ViewKey
	copy(v[:], h.Sum(nil))
	return v
}

// Address derives the owner address.
func (k PrivateKey) Address() Address { return k.ViewKey().Address() }

// Address returns the X25519 public point of the view key.
func (v ViewKey) Address() Address {
	pub, err := curve25519.X25519(v[:], curve25519.Basepoint)
	if err != nil {
		// unreachable: the base point is never low order
		panic(fmt.Sprintf("derive address: %v", err))
	}
	var a Address
	copy(a[:], pub)
	return a
}

func (v ViewKey) serialKey() []byte {
	h, _ := blake2b.New256([]byte(serialDomain))
	h.Write(v[:])
	return h.Sum(nil)
}

func (k PrivateKey) String() string { return encodeKey(PrivateKeyHRP, k[:]) }
func (v ViewKey) String() string    { return encodeKey(ViewKeyHRP, v[:]) }
func (a Address) String() string    { return encodeKey(AddressHRP, a[:]) }

func (k PrivateKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
func (v ViewKey) MarshalText() ([]byte, error)    { return []byte(v.String()), nil }
func (a Address) MarshalText() ([]byte, error)    { return []byte(a.String()), nil }

func (k *PrivateKey) UnmarshalText(text []byte) error {
	return decodeKey(PrivateKeyHRP, string(text), (*[keySize]byte)(k))
}

func (v *ViewKey) UnmarshalText(text []byte) error {
	return decodeKey(ViewKeyHRP, string(text), (*[keySize]byte)(v))
}

func (a *Address) UnmarshalText(text []byte) error {
	return decodeKey(AddressHRP, string(text), (*[keySize]byte)(a))
}

// ParsePrivateKey decodes a bech32 private key.
func ParsePrivateKey(s string) (PrivateKey, error) {
	var k PrivateKey
	err := k.UnmarshalText([]byte(s))
	return k, err
}

// ParseViewKey decodes a bech32 view key.
func ParseViewKey(s string) (ViewKey, error) {
	var v ViewKey
	err := v.UnmarshalText([]byte(s))
	return v, err
}

// ParseAddress decodes a bech32 address.
func ParseAddress(s string) (Address, error) {
	var a Address
	err := a.UnmarshalText([]byte(s))
	return a, err
}

func encodeKey(hrp string, b []byte) string {
	conv, err := bech32.ConvertBits(b, 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("bech32 convert: %v", err))
	}
	s, err := bech32.Encode(hrp, conv)
	if err != nil {
		panic(fmt.Sprintf("bech32 encode: %v", err))
	}
	return s
}

func decodeKey(hrp, s string, dst *[keySize]byte) error {
	gotHRP, data, err := bech32.Decode(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if gotHRP != hrp {
		return fmt.Errorf("%w: prefix %q, want %q", ErrInvalidKey, gotHRP, hrp)
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(conv) != keySize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidKey, len(conv), keySize)
	}
	copy(dst[:], conv)
	return nil
}
