package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
)

// randReader is the fallback random source when a caller passes nil.
// It can be overridden for testing.
var randReader io.Reader = rand.Reader

func randOrDefault(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return randReader
}

// Digest returns the SHA-256 digest of msg.
func Digest(msg []byte) []byte {
	d := sha256.Sum256(msg)
	return d[:]
}

// DigestAndSign hashes msg with SHA-256 and signs the digest with priv.
// The digest is used unmodified as the ECDSA message representative.
func DigestAndSign(rnd io.Reader, priv *ecdsa.PrivateKey, msg []byte) (r, s *big.Int, err error) {
	if err := ValidatePrivateKey(priv); err != nil {
		return nil, nil, err
	}

	r, s, err = ecdsa.Sign(randOrDefault(rnd), priv, Digest(msg))
	if err != nil {
		return nil, nil, fmt.Errorf("ecdsa sign: %w", err)
	}
	return r, s, nil
}

// DigestAndVerify hashes msg with SHA-256 and checks (r, s) against pub.
// A signature that does not verify is reported as false, not as an error;
// errors are reserved for unusable keys.
func DigestAndVerify(pub *ecdsa.PublicKey, msg []byte, r, s *big.Int) (bool, error) {
	if err := ValidatePublicKey(pub); err != nil {
		return false, err
	}
	if r == nil || s == nil {
		return false, nil
	}
	return ecdsa.Verify(pub, Digest(msg), r, s), nil
}

// Sign returns the 64-byte r ‖ s signature over SHA-256(msg).
func Sign(rnd io.Reader, priv *ecdsa.PrivateKey, msg []byte) ([]byte, error) {
	r, s, err := DigestAndSign(rnd, priv, msg)
	if err != nil {
		return nil, err
	}
	return EncodeSignature(r, s)
}

// Verify checks a 64-byte r ‖ s signature over SHA-256(msg).
func Verify(pub *ecdsa.PublicKey, msg, sig []byte) (bool, error) {
	r, s, err := DecodeSignature(sig)
	if err != nil {
		return false, err
	}
	return DigestAndVerify(pub, msg, r, s)
}
