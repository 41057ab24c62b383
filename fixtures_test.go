package authenc

import (
	"crypto/ecdsa"

	"github.com/vaultsandbox/authenc-go/internal/crypto"
)

const (
	aliceScalar = "1f0e4a8d2c3b6a5948372615f4e3d2c1b0a99887766554433221100ffeeddcc1"
	bobScalar   = "7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b1c0d9e8f7a61"
	carolScalar = "0d1c2b3a49586776859483a2b1c0dfeeddccbbaa99887766554433221100ff12"

	// P-256 base point, the public key of scalar 1.
	generatorX = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	generatorY = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"

	curveOrder = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
)

var (
	alice = crypto.MustPrivateKeyForTesting(aliceScalar)
	bob   = crypto.MustPrivateKeyForTesting(bobScalar)
	carol = crypto.MustPrivateKeyForTesting(carolScalar)
)

func pub(k *ecdsa.PrivateKey) *ecdsa.PublicKey {
	return &k.PublicKey
}
