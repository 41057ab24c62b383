package crypto

import (
	"bytes"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// ValidatePrivateKey checks that priv is a usable P-256 signing key: the
// scalar lies in [1, n-1] and the embedded public key matches it.
func ValidatePrivateKey(priv *ecdsa.PrivateKey) error {
	_, err := ECDHPrivateKey(priv)
	return err
}

// ValidatePublicKey checks that pub is a point on P-256.
func ValidatePublicKey(pub *ecdsa.PublicKey) error {
	_, err := ECDHPublicKey(pub)
	return err
}

// ECDHPrivateKey validates priv and returns its ECDH form.
func ECDHPrivateKey(priv *ecdsa.PrivateKey) (*ecdh.PrivateKey, error) {
	if priv == nil || priv.D == nil {
		return nil, fmt.Errorf("%w: missing private scalar", ErrInvalidKey)
	}
	if priv.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: curve is not P-256", ErrInvalidKey)
	}
	if priv.D.Sign() <= 0 {
		return nil, fmt.Errorf("%w: private scalar out of range", ErrInvalidKey)
	}

	ek, err := priv.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	// The public half is what verifiers see, so it has to be D*G.
	embedded, err := marshalPoint(priv.X, priv.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: public key does not match private scalar", ErrInvalidKey)
	}
	if !bytes.Equal(embedded, ek.PublicKey().Bytes()) {
		return nil, fmt.Errorf("%w: public key does not match private scalar", ErrInvalidKey)
	}

	return ek, nil
}

// ECDHPublicKey validates pub and returns its ECDH form.
func ECDHPublicKey(pub *ecdsa.PublicKey) (*ecdh.PublicKey, error) {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return nil, fmt.Errorf("%w: missing public point", ErrInvalidKey)
	}
	if pub.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: curve is not P-256", ErrInvalidKey)
	}

	ek, err := pub.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return ek, nil
}

// PrivateKeyFromScalar builds a P-256 key pair from a big-endian scalar of
// at most ScalarSize bytes. Shorter encodings are left-padded.
func PrivateKeyFromScalar(scalar []byte) (*ecdsa.PrivateKey, error) {
	if len(scalar) == 0 || len(scalar) > ScalarSize {
		return nil, fmt.Errorf("%w: scalar is %d bytes, want 1..%d", ErrInvalidKey, len(scalar), ScalarSize)
	}

	padded := make([]byte, ScalarSize)
	copy(padded[ScalarSize-len(scalar):], scalar)

	ek, err := ecdh.P256().NewPrivateKey(padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	point := ek.PublicKey().Bytes()
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(point[1 : 1+ScalarSize]),
			Y:     new(big.Int).SetBytes(point[1+ScalarSize:]),
		},
		D: new(big.Int).SetBytes(padded),
	}, nil
}

// PublicKeyFromPoint parses a SEC1 encoded P-256 point, compressed or
// uncompressed.
func PublicKeyFromPoint(point []byte) (*ecdsa.PublicKey, error) {
	var x, y *big.Int

	switch len(point) {
	case UncompressedPointSize:
		if _, err := ecdh.P256().NewPublicKey(point); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		x = new(big.Int).SetBytes(point[1 : 1+ScalarSize])
		y = new(big.Int).SetBytes(point[1+ScalarSize:])
	case CompressedPointSize:
		x, y = elliptic.UnmarshalCompressed(elliptic.P256(), point)
		if x == nil {
			return nil, fmt.Errorf("%w: invalid compressed point", ErrInvalidKey)
		}
	default:
		return nil, fmt.Errorf("%w: point is %d bytes, want %d or %d",
			ErrInvalidKey, len(point), UncompressedPointSize, CompressedPointSize)
	}

	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

// MarshalPublicKey returns the SEC1 uncompressed encoding of pub.
func MarshalPublicKey(pub *ecdsa.PublicKey) ([]byte, error) {
	ek, err := ECDHPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return ek.Bytes(), nil
}

// MarshalPrivateKey returns the 32-byte big-endian scalar of priv.
func MarshalPrivateKey(priv *ecdsa.PrivateKey) ([]byte, error) {
	ek, err := ECDHPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return ek.Bytes(), nil
}

func marshalPoint(x, y *big.Int) ([]byte, error) {
	xb, err := FixedBytes(x, ScalarSize)
	if err != nil {
		return nil, err
	}
	yb, err := FixedBytes(y, ScalarSize)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, UncompressedPointSize)
	out = append(out, 0x04)
	out = append(out, xb...)
	return append(out, yb...), nil
}
