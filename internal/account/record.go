package account

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/shieldledger-backend/internal/codec"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

const (
	commitmentDomain = "shieldledger.commitment"
	encryptionInfo   = "shieldledger.record_encryption"

	ciphertextOverhead = keySize + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
)

// ErrNotOwner is returned when a ciphertext does not open under a view key.
var ErrNotOwner = errors.New("record not owned by view key")

// Record is the plaintext of a private unit of state.
type Record struct {
	_     struct{}    `cbor:",toarray"`
	Owner Address     `json:"owner"`
	Gates uint64      `json:"gates"`
	Data  []byte      `json:"data,omitempty"`
	Nonce model.Field `json:"nonce"`
}

// NewRecord builds a record for owner with a fresh nonce read from r (crypto/rand when nil).
func NewRecord(owner Address, gates uint64, data []byte, r io.Reader) (Record, error) {
	if r == nil {
		r = rand.Reader
	}
	rec := Record{Owner: owner, Gates: gates, Data: data}
	if _, err := io.ReadFull(r, rec.Nonce[:]); err != nil {
		return Record{}, fmt.Errorf("read record nonce: %w", err)
	}
	return rec, nil
}

// Commitment binds the record contents without revealing them.
func (r Record) Commitment() model.Field {
	h, _ := blake2b.New256([]byte(commitmentDomain))
	h.Write(codec.MustMarshal(r))
	var c model.Field
	copy(c[:], h.Sum(nil))
	return c
}

// Encrypt seals rec to its owner and returns the transaction output carrying it.
//
// The ciphertext layout is ephemeral public key || XChaCha20 nonce || sealed record,
// with the commitment as associated data.
func Encrypt(rec Record, r io.Reader) (model.Output, error) {
	if r == nil {
		r = rand.Reader
	}
	commitment := rec.Commitment()

	ephemeral := make([]byte, keySize)
	if _, err := io.ReadFull(r, ephemeral); err != nil {
		return model.Output{}, fmt.Errorf("read ephemeral key: %w", err)
	}
	ephemeralPub, err := curve25519.X25519(ephemeral, curve25519.Basepoint)
	if err != nil {
		return model.Output{}, fmt.Errorf("derive ephemeral public key: %w", err)
	}
	shared, err := curve25519.X25519(ephemeral, rec.Owner[:])
	if err != nil {
		return model.Output{}, fmt.Errorf("key agreement with owner: %w", err)
	}
	aead, err := recordCipher(shared, ephemeralPub, rec.Owner)
	if err != nil {
		return model.Output{}, err
	}

	plaintext, err := codec.Marshal(rec)
	if err != nil {
		return model.Output{}, err
	}
	ciphertext := make([]byte, keySize+aead.NonceSize(), ciphertextOverhead+len(plaintext))
	copy(ciphertext, ephemeralPub)
	nonce := ciphertext[keySize : keySize+aead.NonceSize()]
	if _, err := io.ReadFull(r, nonce); err != nil {
		return model.Output{}, fmt.Errorf("read encryption nonce: %w", err)
	}
	ciphertext = aead.Seal(ciphertext, nonce, plaintext, commitment[:])

	return model.Output{Commitment: commitment, Ciphertext: ciphertext}, nil
}

// Viewer caches the material derived from a view key for repeated decryption.
type Viewer struct {
	viewKey   ViewKey
	address   Address
	serialKey []byte
}

// Viewer returns a Viewer for v.
func (v ViewKey) Viewer() *Viewer {
	return &Viewer{viewKey: v, address: v.Address(), serialKey: v.serialKey()}
}

// Address returns the owner address of the view key.
func (v *Viewer) Address() Address { return v.address }

// Decrypt opens out. It fails with ErrNotOwner unless the record belongs to the view key
// and matches the output commitment.
func (v *Viewer) Decrypt(out model.Output) (Record, error) {
	ct := out.Ciphertext
	if len(ct) < ciphertextOverhead {
		return Record{}, fmt.Errorf("%w: ciphertext too short", ErrNotOwner)
	}
	ephemeralPub := ct[:keySize]
	shared, err := curve25519.X25519(v.viewKey[:], ephemeralPub)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrNotOwner, err)
	}
	aead, err := recordCipher(shared, ephemeralPub, v.address)
	if err != nil {
		return Record{}, err
	}
	nonce := ct[keySize : keySize+aead.NonceSize()]
	plaintext, err := aead.Open(nil, nonce, ct[keySize+aead.NonceSize():], out.Commitment[:])
	if err != nil {
		return Record{}, ErrNotOwner
	}

	rec, err := codec.Decode[Record](plaintext)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrNotOwner, err)
	}
	if rec.Owner != v.address || rec.Commitment() != out.Commitment {
		return Record{}, fmt.Errorf("%w: record does not match commitment", ErrNotOwner)
	}
	if len(rec.Data) == 0 {
		rec.Data = nil
	}
	return rec, nil
}

// SerialNumber derives the serial number that spends the record with the given commitment.
func (v *Viewer) SerialNumber(commitment model.Field) model.Field {
	h, _ := blake2b.New256(v.serialKey)
	h.Write(commitment[:])
	var sn model.Field
	copy(sn[:], h.Sum(nil))
	return sn
}

func recordCipher(shared, ephemeralPub []byte, owner Address) (cipher.AEAD, error) {
	salt := make([]byte, 0, 2*keySize)
	salt = append(salt, ephemeralPub...)
	salt = append(salt, owner[:]...)

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, salt, []byte(encryptionInfo)), key); err != nil {
		return nil, fmt.Errorf("derive record key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init record cipher: %w", err)
	}
	return aead, nil
}
