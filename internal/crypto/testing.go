package crypto

import (
	"crypto/ecdsa"
	"encoding/hex"
	"io"
)

// SetRandReaderForTesting sets the fallback random reader used when callers
// pass a nil reader. Returns a function to restore the original reader.
// Since this package is internal, this function cannot be accessed by external code.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

// MustPrivateKeyForTesting builds a key pair from a hex scalar and panics on
// error. Intended for fixed test fixtures only.
func MustPrivateKeyForTesting(scalarHex string) *ecdsa.PrivateKey {
	b, err := hex.DecodeString(scalarHex)
	if err != nil {
		panic(err)
	}
	priv, err := PrivateKeyFromScalar(b)
	if err != nil {
		panic(err)
	}
	return priv
}
