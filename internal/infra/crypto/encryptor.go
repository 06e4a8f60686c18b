// Package crypto implements reversible field-level encryption for stored
// credential secrets using AES-GCM.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"

	"vault/config"
	"vault/internal/domain/service"
	"vault/internal/errors"
)

// aesEncryptor seals plaintext with AES-GCM under a process-wide key loaded
// once at startup. Output format: base64(nonce || ciphertext).
type aesEncryptor struct {
	aead cipher.AEAD
}

// NewAESEncryptor is the constructor for aesEncryptor. The key must be a
// valid AES key length: 16, 24 or 32 bytes.
func NewAESEncryptor(cfg *config.Config) (service.Encryptor, error) {
	if cfg.Encryption == nil || cfg.Encryption.PrimaryKey == "" {
		return nil, errors.New("encryption primary key must be provided")
	}

	block, err := aes.NewCipher([]byte(cfg.Encryption.PrimaryKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AES cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM mode")
	}

	return &aesEncryptor{aead: aead}, nil
}

// Encrypt seals the plaintext with a fresh random nonce.
func (e *aesEncryptor) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func (e *aesEncryptor) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode ciphertext")
	}

	nonceSize := e.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", errors.New("ciphertext shorter than nonce")
	}

	plaintext, err := e.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt ciphertext")
	}

	return string(plaintext), nil
}
