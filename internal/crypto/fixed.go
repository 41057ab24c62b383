package crypto

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// FixedBytes encodes n as exactly size big-endian bytes, left-padded with
// zeros. Negative values and values wider than size bytes are rejected.
func FixedBytes(n *big.Int, size int) ([]byte, error) {
	if n == nil || size <= 0 {
		return nil, fmt.Errorf("%w: nil value or non-positive width", ErrValueOutOfRange)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value", ErrValueOutOfRange)
	}
	if (n.BitLen()+7)/8 > size {
		return nil, fmt.Errorf("%w: %d bits do not fit in %d bytes", ErrValueOutOfRange, n.BitLen(), size)
	}
	return n.FillBytes(make([]byte, size)), nil
}

// FixedHex is FixedBytes rendered as 2*size lowercase hex characters.
func FixedHex(n *big.Int, size int) (string, error) {
	b, err := FixedBytes(n, size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// EncodeSignature packs (r, s) into the 64-byte r ‖ s layout.
func EncodeSignature(r, s *big.Int) ([]byte, error) {
	rb, err := FixedBytes(r, ScalarSize)
	if err != nil {
		return nil, fmt.Errorf("encode r: %w", err)
	}
	sb, err := FixedBytes(s, ScalarSize)
	if err != nil {
		return nil, fmt.Errorf("encode s: %w", err)
	}
	return append(rb, sb...), nil
}

// DecodeSignature splits a 64-byte r ‖ s signature into its components.
func DecodeSignature(sig []byte) (r, s *big.Int, err error) {
	if len(sig) != SignatureSize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSignatureSize, len(sig), SignatureSize)
	}
	r = new(big.Int).SetBytes(sig[:ScalarSize])
	s = new(big.Int).SetBytes(sig[ScalarSize:])
	return r, s, nil
}
