package crypto

const (
	// ScalarSize is the size of a P-256 scalar or field element in bytes.
	ScalarSize = 32
	// SignatureSize is the size of an encoded signature: r ‖ s.
	SignatureSize = 2 * ScalarSize
	// SignatureHexSize is the length of a hex encoded signature.
	SignatureHexSize = 2 * SignatureSize

	// UncompressedPointSize is the size of a SEC1 uncompressed P-256 point:
	// 0x04 ‖ X ‖ Y.
	UncompressedPointSize = 1 + 2*ScalarSize
	// CompressedPointSize is the size of a SEC1 compressed P-256 point.
	CompressedPointSize = 1 + ScalarSize

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// ECIESOverhead is the number of bytes ECIES adds to a plaintext:
	// ephemeral public key, nonce and tag.
	ECIESOverhead = UncompressedPointSize + AESNonceSize + AESTagSize

	// ECIESContext is the HKDF info string for ECIES key derivation.
	ECIESContext = "authenc:ecies:v1"
	// HPKEContext is the HPKE info string bound into every context.
	HPKEContext = "authenc:hpke:v1"
)

// Cipher names as reported by the cipher implementations.
const (
	CipherECIES = "ecies-p256-hkdf-sha256-aes256gcm"
	CipherHPKE  = "hpke-p256-hkdf-sha256-aes256gcm"
)
