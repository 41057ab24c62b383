package crypto

import (
	"crypto/ecdh"
	"fmt"
	"io"

	"github.com/cloudflare/circl/hpke"
)

var hpkeSuite = hpke.NewSuite(hpke.KEM_P256_HKDF_SHA256, hpke.KDF_HKDF_SHA256, hpke.AEAD_AES256GCM)

// HPKE encrypts to a P-256 public key with RFC 9180 base mode:
// DHKEM(P-256, HKDF-SHA256), HKDF-SHA256 and AES-256-GCM.
//
// Ciphertext layout:
//
//	encapsulated key (65) ‖ ciphertext ‖ tag (16)
type HPKE struct{}

// Name returns the cipher identifier.
func (HPKE) Name() string { return CipherHPKE }

// Seal encrypts plaintext to pub. rnd drives the encapsulation; nil selects
// crypto/rand.
func (HPKE) Seal(rnd io.Reader, pub *ecdh.PublicKey, plaintext []byte) ([]byte, error) {
	if pub == nil || pub.Curve() != ecdh.P256() {
		return nil, fmt.Errorf("%w: recipient key is not a P-256 key", ErrInvalidKey)
	}

	pk, err := hpke.KEM_P256_HKDF_SHA256.Scheme().UnmarshalBinaryPublicKey(pub.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	sender, err := hpkeSuite.NewSender(pk, []byte(HPKEContext))
	if err != nil {
		return nil, fmt.Errorf("hpke sender: %w", err)
	}
	enc, sealer, err := sender.Setup(randOrDefault(rnd))
	if err != nil {
		return nil, fmt.Errorf("hpke setup: %w", err)
	}

	sealed, err := sealer.Seal(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("hpke seal: %w", err)
	}

	out := make([]byte, 0, len(enc)+len(sealed))
	out = append(out, enc...)
	return append(out, sealed...), nil
}

// Open decrypts a ciphertext produced by Seal for priv's public key.
func (HPKE) Open(priv *ecdh.PrivateKey, ciphertext []byte) ([]byte, error) {
	if priv == nil || priv.Curve() != ecdh.P256() {
		return nil, fmt.Errorf("%w: recipient key is not a P-256 key", ErrInvalidKey)
	}

	scheme := hpke.KEM_P256_HKDF_SHA256.Scheme()
	encSize := scheme.CiphertextSize()
	if len(ciphertext) < encSize+AESTagSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidCiphertextSize, len(ciphertext), encSize+AESTagSize)
	}

	sk, err := scheme.UnmarshalBinaryPrivateKey(priv.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	receiver, err := hpkeSuite.NewReceiver(sk, []byte(HPKEContext))
	if err != nil {
		return nil, fmt.Errorf("hpke receiver: %w", err)
	}
	opener, err := receiver.Setup(ciphertext[:encSize])
	if err != nil {
		return nil, fmt.Errorf("%w: hpke setup: %v", ErrDecryptionFailed, err)
	}

	plaintext, err := opener.Open(ciphertext[encSize:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
