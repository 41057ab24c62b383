package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64URLRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"binary zeros", []byte{0x00, 0x00, 0x00}},
		{"binary all ones", []byte{0xff, 0xff, 0xff}},
		{"url unsafe chars", []byte{0xfb, 0xf0}},
		{"single byte", []byte{0x42}},
		{"two bytes", []byte{0x42, 0x43}},
		{"large data", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64URL(tt.data)
			assert.NotContains(t, encoded, "=")
			assert.NotContains(t, encoded, "+")
			assert.NotContains(t, encoded, "/")

			decoded, err := FromBase64URL(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.data, decoded)
		})
	}
}

func TestFromBase64URL_AcceptsPadding(t *testing.T) {
	t.Parallel()

	data := []byte("ab")
	padded := base64.URLEncoding.EncodeToString(data)
	require.True(t, strings.HasSuffix(padded, "="))

	decoded, err := FromBase64URL(padded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestFromBase64URL_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"standard alphabet", "+/+/"},
		{"invalid character", "ab$d"},
		{"dangling character", "abcde"},
		{"non-zero trailing bits", "QR"},
		{"non-zero trailing bits padded", "QR=="},
		{"misplaced padding", "Q=Q="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBase64URL(tt.input)
			assert.Error(t, err)
		})
	}
}
