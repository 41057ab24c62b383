package crypto

import (
	"crypto/ecdh"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ECIES encrypts to a P-256 public key with an ephemeral ECDH exchange,
// HKDF-SHA-256 and AES-256-GCM.
//
// Ciphertext layout:
//
//	ephemeral public key (65) ‖ nonce (12) ‖ ciphertext ‖ tag (16)
//
// The ephemeral public key is also the GCM additional data, so it cannot be
// swapped without failing authentication.
type ECIES struct{}

// Name returns the cipher identifier.
func (ECIES) Name() string { return CipherECIES }

// Seal encrypts plaintext to pub. rnd supplies the ephemeral key and nonce;
// nil selects crypto/rand.
func (ECIES) Seal(rnd io.Reader, pub *ecdh.PublicKey, plaintext []byte) ([]byte, error) {
	if pub == nil || pub.Curve() != ecdh.P256() {
		return nil, fmt.Errorf("%w: recipient key is not a P-256 key", ErrInvalidKey)
	}
	rnd = randOrDefault(rnd)

	ephemeral, err := ecdh.P256().GenerateKey(rnd)
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral key: %w", err)
	}
	shared, err := ephemeral.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("ecdh: %w", err)
	}

	ephemeralPub := ephemeral.PublicKey().Bytes()
	key, err := deriveKey(shared, ephemeralPub, pub.Bytes())
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, AESNonceSize)
	if _, err := io.ReadFull(rnd, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	sealed, err := sealAESGCM(key, nonce, plaintext, ephemeralPub)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(ephemeralPub)+len(nonce)+len(sealed))
	out = append(out, ephemeralPub...)
	out = append(out, nonce...)
	return append(out, sealed...), nil
}

// Open decrypts a ciphertext produced by Seal for priv's public key.
func (ECIES) Open(priv *ecdh.PrivateKey, ciphertext []byte) ([]byte, error) {
	if priv == nil || priv.Curve() != ecdh.P256() {
		return nil, fmt.Errorf("%w: recipient key is not a P-256 key", ErrInvalidKey)
	}
	if len(ciphertext) < ECIESOverhead {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidCiphertextSize, len(ciphertext), ECIESOverhead)
	}

	ephemeralPub := ciphertext[:UncompressedPointSize]
	nonce := ciphertext[UncompressedPointSize : UncompressedPointSize+AESNonceSize]
	sealed := ciphertext[UncompressedPointSize+AESNonceSize:]

	peer, err := ecdh.P256().NewPublicKey(ephemeralPub)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ephemeral key", ErrDecryptionFailed)
	}
	shared, err := priv.ECDH(peer)
	if err != nil {
		return nil, fmt.Errorf("%w: ecdh: %v", ErrDecryptionFailed, err)
	}

	key, err := deriveKey(shared, ephemeralPub, priv.PublicKey().Bytes())
	if err != nil {
		return nil, err
	}
	return openAESGCM(key, nonce, sealed, ephemeralPub)
}

// deriveKey performs HKDF-SHA-256 key derivation for ECIES.
//
// The key derivation uses:
//   - IKM: the ECDH shared secret
//   - Salt: ephemeral public key ‖ recipient public key
//   - Info: ECIESContext
func deriveKey(shared, ephemeralPub, recipientPub []byte) ([]byte, error) {
	salt := make([]byte, 0, len(ephemeralPub)+len(recipientPub))
	salt = append(salt, ephemeralPub...)
	salt = append(salt, recipientPub...)

	reader := hkdf.New(sha256.New, shared, salt, []byte(ECIESContext))
	key := make([]byte, AESKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
