package service

// Encryptor provides reversible field-level encryption for credential
// passwords. Unlike account passwords (one-way hashed), stored credential
// secrets must decrypt back to plaintext for their owner, so the capability
// is modeled as an injected service with process-wide key material.
type Encryptor interface {
	// Encrypt seals a plaintext into an opaque ciphertext string.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a ciphertext produced by Encrypt.
	Decrypt(ciphertext string) (string, error)
}
