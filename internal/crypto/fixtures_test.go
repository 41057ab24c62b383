package crypto

import "crypto/ecdsa"

const (
	// Private key from RFC 6979 A.2.5 (P-256).
	rfc6979Scalar = "c9afa9d845ba75166b5c215767b1d6934e50c3db36e89b127b8a622b120f6721"
	rfc6979X      = "60fed4ba255a9d31c961eb74c6356d68c049b8923b61fa6ce669622e60f29fb6"
	rfc6979Y      = "7903fe1008b8bc99a41ae9e95628bc64f2f1b20c2d7e9f5177a3c294d4462299"

	generatorX = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	generatorY = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"

	curveOrder = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"

	aliceScalar = "1f0e4a8d2c3b6a5948372615f4e3d2c1b0a99887766554433221100ffeeddcc1"
	bobScalar   = "7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b1c0d9e8f7a61"
)

func testKey(scalar string) *ecdsa.PrivateKey {
	return MustPrivateKeyForTesting(scalar)
}
