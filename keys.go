package authenc

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vaultsandbox/authenc-go/internal/crypto"
)

// ParsePrivateKey parses a hex encoded big-endian P-256 scalar of up to
// 64 hex digits and derives its public key. Shorter scalars are left-padded.
// An optional 0x prefix is accepted.
func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	s = trimHex(s)
	if len(s)%2 == 1 {
		s = "0" + s
	}

	scalar, err := hex.DecodeString(s)
	if err != nil {
		return nil, &KeyError{Role: rolePrivate, Err: fmt.Errorf("decode hex: %w", err)}
	}

	priv, err := crypto.PrivateKeyFromScalar(scalar)
	if err != nil {
		return nil, wrapKeyError(rolePrivate, err)
	}
	return priv, nil
}

// ParsePublicKey parses a hex encoded SEC1 P-256 point, uncompressed
// (65 bytes) or compressed (33 bytes). An optional 0x prefix is accepted.
func ParsePublicKey(s string) (*ecdsa.PublicKey, error) {
	point, err := hex.DecodeString(trimHex(s))
	if err != nil {
		return nil, &KeyError{Role: rolePublic, Err: fmt.Errorf("decode hex: %w", err)}
	}

	pub, err := crypto.PublicKeyFromPoint(point)
	if err != nil {
		return nil, wrapKeyError(rolePublic, err)
	}
	return pub, nil
}

// PublicKeyHex returns the uncompressed SEC1 encoding of pub as hex.
func PublicKeyHex(pub *ecdsa.PublicKey) (string, error) {
	b, err := crypto.MarshalPublicKey(pub)
	if err != nil {
		return "", wrapKeyError(rolePublic, err)
	}
	return hex.EncodeToString(b), nil
}

// PrivateKeyHex returns the 32-byte scalar of priv as 64 hex digits.
// Handle the result like the key itself.
func PrivateKeyHex(priv *ecdsa.PrivateKey) (string, error) {
	b, err := crypto.MarshalPrivateKey(priv)
	if err != nil {
		return "", wrapKeyError(rolePrivate, err)
	}
	return hex.EncodeToString(b), nil
}

func trimHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return s
}
