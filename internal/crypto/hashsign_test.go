package crypto

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	t.Parallel()

	want := sha256.Sum256([]byte("hello"))
	assert.Equal(t, want[:], Digest([]byte("hello")))
	assert.Len(t, Digest(nil), sha256.Size)
}

func TestDigestAndSign_Verify(t *testing.T) {
	t.Parallel()

	priv := testKey(aliceScalar)

	tests := []struct {
		name string
		msg  []byte
	}{
		{"empty", nil},
		{"hello", []byte("hello")},
		{"binary", []byte{0x00, 0xff, 0x10}},
		{"large", bytes.Repeat([]byte("x"), 1<<16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s, err := DigestAndSign(nil, priv, tt.msg)
			require.NoError(t, err)

			ok, err := DigestAndVerify(&priv.PublicKey, tt.msg, r, s)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = DigestAndVerify(&priv.PublicKey, append([]byte("x"), tt.msg...), r, s)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestDigestAndSign_SignsRawDigest(t *testing.T) {
	t.Parallel()

	priv := testKey(rfc6979Scalar)
	msg := []byte("sample")

	r, s, err := DigestAndSign(nil, priv, msg)
	require.NoError(t, err)

	digest := sha256.Sum256(msg)
	assert.True(t, ecdsa.Verify(&priv.PublicKey, digest[:], r, s))
}

func TestDigestAndSign_InvalidKey(t *testing.T) {
	t.Parallel()

	_, _, err := DigestAndSign(nil, nil, []byte("msg"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = Sign(nil, &ecdsa.PrivateKey{}, []byte("msg"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDigestAndVerify_InvalidKey(t *testing.T) {
	t.Parallel()

	ok, err := DigestAndVerify(nil, []byte("msg"), big.NewInt(1), big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.False(t, ok)
}

func TestDigestAndVerify_OutOfRangeComponents(t *testing.T) {
	t.Parallel()

	pub := &testKey(aliceScalar).PublicKey
	order, _ := new(big.Int).SetString(curveOrder, 16)

	tests := []struct {
		name string
		r, s *big.Int
	}{
		{"nil r", nil, big.NewInt(1)},
		{"zero r", big.NewInt(0), big.NewInt(1)},
		{"zero s", big.NewInt(1), big.NewInt(0)},
		{"r equals order", order, big.NewInt(1)},
		{"s equals order", big.NewInt(1), order},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := DigestAndVerify(pub, []byte("msg"), tt.r, tt.s)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSign_FixedWidth(t *testing.T) {
	t.Parallel()

	priv := testKey(bobScalar)
	for i := 0; i < 32; i++ {
		sig, err := Sign(nil, priv, []byte{byte(i)})
		require.NoError(t, err)
		require.Len(t, sig, SignatureSize)

		ok, err := Verify(&priv.PublicKey, []byte{byte(i)}, sig)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestSign_NonDeterministic(t *testing.T) {
	t.Parallel()

	priv := testKey(aliceScalar)
	sig1, err := Sign(nil, priv, []byte("hello"))
	require.NoError(t, err)
	sig2, err := Sign(nil, priv, []byte("hello"))
	require.NoError(t, err)

	assert.NotEqual(t, sig1, sig2)
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	alice := testKey(aliceScalar)
	bob := testKey(bobScalar)

	sig, err := Sign(nil, alice, []byte("hello"))
	require.NoError(t, err)

	ok, err := Verify(&bob.PublicKey, []byte("hello"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_InvalidSignatureSize(t *testing.T) {
	t.Parallel()

	_, err := Verify(&testKey(aliceScalar).PublicKey, []byte("hello"), make([]byte, 63))
	assert.ErrorIs(t, err, ErrInvalidSignatureSize)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestSetRandReaderForTesting(t *testing.T) {
	restore := SetRandReaderForTesting(failingReader{})
	assert.Equal(t, failingReader{}, randReader)
	restore()

	_, err := Sign(nil, testKey(aliceScalar), []byte("hello"))
	assert.NoError(t, err)
}
