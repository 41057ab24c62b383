package authenc

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/vaultsandbox/authenc-go/internal/crypto"
)

// Sign produces a detached signature over data with localPriv.
//
// The signature is ECDSA P-256 over SHA-256(Canonical(data)), encoded as
// hex(r) ‖ hex(s) with each component zero-padded to 64 hex digits, so the
// result is always 128 characters. Signing draws fresh randomness; signing
// the same data twice yields two different, equally valid signatures.
func (s *Scheme) Sign(localPriv *ecdsa.PrivateKey, data Plaintext) (string, error) {
	r, sc, err := crypto.DigestAndSign(s.rand, localPriv, Canonical(data))
	if err != nil {
		return "", signError(err)
	}

	rHex, err := crypto.FixedHex(r, crypto.ScalarSize)
	if err != nil {
		return "", fmt.Errorf("encode r: %w", err)
	}
	sHex, err := crypto.FixedHex(sc, crypto.ScalarSize)
	if err != nil {
		return "", fmt.Errorf("encode s: %w", err)
	}

	return rHex + sHex, nil
}

// Verify checks a signature produced by Sign.
//
// sigHex must be exactly 128 hex characters, otherwise Verify returns an
// error matching ErrMalformedSignature. A well-formed signature that does
// not match data and remotePub yields (false, nil).
func (s *Scheme) Verify(remotePub *ecdsa.PublicKey, data Plaintext, sigHex string) (bool, error) {
	if len(sigHex) != crypto.SignatureHexSize {
		return false, &SignatureFormatError{Length: len(sigHex)}
	}

	raw, err := hex.DecodeString(sigHex)
	if err != nil {
		return false, &SignatureFormatError{Length: len(sigHex), Err: err}
	}

	ok, err := crypto.Verify(remotePub, Canonical(data), raw)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidKey) {
			return false, wrapKeyError(roleRemotePublic, err)
		}
		return false, err
	}

	if !ok {
		s.logger.Debug().Str("op", "verify").Msg("signature mismatch")
	}
	return ok, nil
}

func signError(err error) error {
	if errors.Is(err, crypto.ErrInvalidKey) {
		return wrapKeyError(roleLocalPrivate, err)
	}
	return fmt.Errorf("sign: %w", err)
}
