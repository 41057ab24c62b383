package authenc

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/vaultsandbox/authenc-go/internal/crypto"
)

// Encrypt signs plain with localPriv and encrypts it to remotePub.
//
// The sealed payload is Canonical(plain) ‖ r ‖ s, where r and s are the
// ECDSA P-256 signature components over SHA-256(Canonical(plain)), each
// exactly 32 big-endian bytes. The cipher output is returned as unpadded
// URL-safe base64.
//
// Sealing draws randomness and is the only step that may block; ctx is
// checked before it starts. Signing is randomized, so encrypting the same
// plaintext twice gives different ciphertexts.
func (s *Scheme) Encrypt(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain Plaintext) (string, error) {
	recipient, err := crypto.ECDHPublicKey(remotePub)
	if err != nil {
		return "", wrapKeyError(roleRemotePublic, err)
	}

	plainBytes := Canonical(plain)
	sig, err := crypto.Sign(s.rand, localPriv, plainBytes)
	if err != nil {
		return "", signError(err)
	}

	payload := make([]byte, 0, len(plainBytes)+len(sig))
	payload = append(payload, plainBytes...)
	payload = append(payload, sig...)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	sealed, err := s.cipher.Seal(s.rand, recipient, payload)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidKey) {
			return "", wrapKeyError(roleRemotePublic, err)
		}
		return "", fmt.Errorf("seal payload: %w", err)
	}

	s.logger.Debug().
		Str("op", "encrypt").
		Int("plaintext_len", len(plainBytes)).
		Int("ciphertext_len", len(sealed)).
		Msg("payload sealed")

	return crypto.ToBase64URL(sealed), nil
}

// Decrypt decrypts cypher with localPriv and verifies the embedded signature
// against remotePub.
//
// It returns (plaintext, true, nil) when the signature verifies and
// (nil, false, nil) when it does not. Errors are reserved for input that
// never reaches signature verification:
//   - ErrInvalidKey: localPriv or remotePub is unusable
//   - ErrMalformedInput: cypher is not URL-safe base64
//   - ErrDecryptionFailed: the cipher rejected the ciphertext
//   - ErrMalformedPayload: the decrypted payload is 64 bytes or shorter
func (s *Scheme) Decrypt(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) ([]byte, bool, error) {
	own, err := crypto.ECDHPrivateKey(localPriv)
	if err != nil {
		return nil, false, wrapKeyError(roleLocalPrivate, err)
	}
	if err := crypto.ValidatePublicKey(remotePub); err != nil {
		return nil, false, wrapKeyError(roleRemotePublic, err)
	}

	sealed, err := crypto.FromBase64URL(cypher)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	payload, err := s.cipher.Open(own, sealed)
	if err != nil {
		return nil, false, wrapOpenError(s.cipher.Name(), err)
	}

	// The plaintext must be non-empty.
	if len(payload) <= crypto.SignatureSize {
		return nil, false, &PayloadError{Length: len(payload)}
	}

	split := len(payload) - crypto.SignatureSize
	plain, sig := payload[:split], payload[split:]

	ok, err := crypto.Verify(remotePub, plain, sig)
	if err != nil {
		return nil, false, wrapKeyError(roleRemotePublic, err)
	}
	if !ok {
		s.logger.Debug().Str("op", "decrypt").Int("payload_len", len(payload)).Msg("signature mismatch")
		return nil, false, nil
	}

	s.logger.Debug().Str("op", "decrypt").Int("plaintext_len", len(plain)).Msg("payload verified")
	return plain, true, nil
}

// EncryptString is Encrypt for a string plaintext.
func (s *Scheme) EncryptString(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain string) (string, error) {
	return s.Encrypt(ctx, localPriv, remotePub, Text(plain))
}

// DecryptString is Decrypt returning the plaintext as a string.
// The bytes are returned as is; they are not checked for valid UTF-8.
func (s *Scheme) DecryptString(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) (string, bool, error) {
	plain, ok, err := s.Decrypt(localPriv, remotePub, cypher)
	if err != nil || !ok {
		return "", ok, err
	}
	return string(plain), true, nil
}

// EncryptBytes is Encrypt for a byte slice plaintext.
func (s *Scheme) EncryptBytes(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain []byte) (string, error) {
	return s.Encrypt(ctx, localPriv, remotePub, Raw(plain))
}

// DecryptBytes is Decrypt returning the plaintext as a byte slice.
func (s *Scheme) DecryptBytes(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) ([]byte, bool, error) {
	return s.Decrypt(localPriv, remotePub, cypher)
}

// EncryptMessage is Encrypt for a Message plaintext.
func (s *Scheme) EncryptMessage(ctx context.Context, localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, plain Message) (string, error) {
	return s.Encrypt(ctx, localPriv, remotePub, plain)
}

// DecryptMessage is Decrypt returning the plaintext as a Message.
func (s *Scheme) DecryptMessage(localPriv *ecdsa.PrivateKey, remotePub *ecdsa.PublicKey, cypher string) (Message, bool, error) {
	plain, ok, err := s.Decrypt(localPriv, remotePub, cypher)
	if err != nil || !ok {
		return Message{}, ok, err
	}
	return Message{b: plain}, true, nil
}
