package authenc

import (
	"crypto/ecdh"
	"io"

	"github.com/vaultsandbox/authenc-go/internal/crypto"
)

// Cipher is the public-key encryption primitive AuthEnc seals payloads with.
// Sender and recipient must use the same Cipher; nothing on the wire says
// which one produced a ciphertext.
type Cipher interface {
	// Name identifies the cipher in logs and errors.
	Name() string

	// Seal encrypts plaintext to pub, drawing randomness from rand.
	Seal(rand io.Reader, pub *ecdh.PublicKey, plaintext []byte) ([]byte, error)

	// Open decrypts ciphertext with priv. It fails if the ciphertext was not
	// sealed to priv's public key or was modified.
	Open(priv *ecdh.PrivateKey, ciphertext []byte) ([]byte, error)
}

var (
	// ECIES is ephemeral P-256 ECDH, HKDF-SHA-256 and AES-256-GCM.
	// It is the default cipher.
	ECIES Cipher = crypto.ECIES{}

	// HPKE is RFC 9180 base mode with DHKEM(P-256, HKDF-SHA256),
	// HKDF-SHA256 and AES-256-GCM.
	HPKE Cipher = crypto.HPKE{}
)

// CipherByName returns the built-in cipher for "ecies" or "hpke".
func CipherByName(name string) (Cipher, bool) {
	switch name {
	case "ecies", crypto.CipherECIES:
		return ECIES, true
	case "hpke", crypto.CipherHPKE:
		return HPKE, true
	}
	return nil, false
}
