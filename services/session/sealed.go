package session

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
)

// ErrSealBroken is returned when a sealed record fails authentication.
var ErrSealBroken = errors.New("session record failed to unseal")

// SealedRecord encrypts another record at rest with AES-256 GCM.
// The nonce is prepended to the ciphertext.
type SealedRecord struct {
	Inner Record
	aead  cipher.AEAD
}

// NewSealedRecord derives a 32-byte key from secret using SHA-256.
func NewSealedRecord(inner Record, secret string) (*SealedRecord, error) {
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &SealedRecord{Inner: inner, aead: gcm}, nil
}

func (s *SealedRecord) Load(ctx context.Context) ([]byte, error) {
	data, err := s.Inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	n := s.aead.NonceSize()
	if len(data) < n {
		return nil, ErrSealBroken
	}
	plain, err := s.aead.Open(nil, data[:n], data[n:], nil)
	if err != nil {
		return nil, ErrSealBroken
	}
	return plain, nil
}

func (s *SealedRecord) Save(ctx context.Context, data []byte) error {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}
	return s.Inner.Save(ctx, s.aead.Seal(nonce, nonce, data, nil))
}

func (s *SealedRecord) Clear(ctx context.Context) error {
	return s.Inner.Clear(ctx)
}
