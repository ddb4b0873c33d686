package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"github.com/MKhiriev/gaspass/internal/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCBCEngine_NISTVector(t *testing.T) {
	// SP 800-38A F.2.1, first block. Aligned input gets no zero padding.
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plain := mustHex(t, "6bc1bee22e409f96e93d7e117393172a")

	engine := NewCBCEngine(PaddingZero)

	ct, err := engine.Encrypt(plain, key, iv)
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, "7649abac8119b246cee98e9b12e9197d"), ct)

	pt, err := engine.Decrypt(ct, key, iv)
	require.NoError(t, err)
	assert.Equal(t, plain, pt)
}

func TestCBCEngine_MatchesStdlibCBC(t *testing.T) {
	key := bytes.Repeat([]byte{0x2a}, 32)
	iv := bytes.Repeat([]byte{0x07}, BlockSize)
	plain := []byte("a message that spans more than a couple of AES blocks\x00")

	got, err := NewCBCEngine(PaddingPKCS7).Encrypt(plain, key, iv)
	require.NoError(t, err)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	padded := PaddingPKCS7.pad(plain, BlockSize)
	want := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(want, padded)

	assert.Equal(t, want, got)
}

func TestCBCEngine_RoundTrip(t *testing.T) {
	iv := bytes.Repeat([]byte{0x11}, BlockSize)

	for _, padding := range []Padding{PaddingPKCS7, PaddingZero} {
		for _, keyLen := range []int{16, 24, 32} {
			for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 100} {
				if size == 0 && padding == PaddingZero {
					continue // nothing to encrypt: zero padding adds no block
				}
				key := bytes.Repeat([]byte{byte(keyLen)}, keyLen)
				plain := bytes.Repeat([]byte{'x'}, size)

				engine := NewCBCEngine(padding)
				ct, err := engine.Encrypt(plain, key, iv)
				require.NoError(t, err)
				require.Zero(t, len(ct)%BlockSize)

				pt, err := engine.Decrypt(ct, key, iv)
				require.NoError(t, err)

				if padding == PaddingZero {
					// zero padding is left for the terminator truncation
					assert.Equal(t, plain, bytes.TrimRight(pt, "\x00"))
				} else {
					assert.Equal(t, plain, pt)
				}
			}
		}
	}
}

func TestCBCEngine_DecryptRejectsUnalignedCiphertext(t *testing.T) {
	engine := NewCBCEngine(PaddingPKCS7)
	key := make([]byte, 16)
	iv := make([]byte, BlockSize)

	for _, n := range []int{0, 1, 15, 17, 33} {
		_, err := engine.Decrypt(make([]byte, n), key, iv)
		require.ErrorIs(t, err, ErrInvalidCiphertextLength, "length %d", n)
	}
}

func TestCBCEngine_KeyAndIVLength(t *testing.T) {
	engine := NewCBCEngine(PaddingPKCS7)

	_, err := engine.Encrypt([]byte("x"), make([]byte, 15), make([]byte, BlockSize))
	require.ErrorIs(t, err, codec.ErrLengthMismatch)

	_, err = engine.Encrypt([]byte("x"), make([]byte, 16), make([]byte, 8))
	require.ErrorIs(t, err, codec.ErrLengthMismatch)

	_, err = engine.Decrypt(make([]byte, 16), make([]byte, 7), make([]byte, BlockSize))
	require.ErrorIs(t, err, codec.ErrLengthMismatch)
}

func TestCBCEngine_WrongKeyDoesNotFail(t *testing.T) {
	engine := NewCBCEngine(PaddingPKCS7)
	iv := bytes.Repeat([]byte{0x03}, BlockSize)
	plain := []byte("hunter2\x00")

	ct, err := engine.Encrypt(plain, bytes.Repeat([]byte{1}, 16), iv)
	require.NoError(t, err)

	pt, err := engine.Decrypt(ct, bytes.Repeat([]byte{2}, 16), iv)
	require.NoError(t, err)
	assert.NotEqual(t, plain, pt)
}

func TestPadding(t *testing.T) {
	t.Run("pkcs7 adds a full block to aligned input", func(t *testing.T) {
		out := PaddingPKCS7.pad(make([]byte, 16), 16)
		require.Len(t, out, 32)
		assert.Equal(t, bytes.Repeat([]byte{16}, 16), out[16:])
	})

	t.Run("pkcs7 pads partial block", func(t *testing.T) {
		out := PaddingPKCS7.pad([]byte("abc"), 16)
		require.Len(t, out, 16)
		assert.Equal(t, bytes.Repeat([]byte{13}, 13), out[3:])
		assert.Equal(t, []byte("abc"), PaddingPKCS7.unpad(out, 16))
	})

	t.Run("pkcs7 leaves malformed suffix", func(t *testing.T) {
		in := append(bytes.Repeat([]byte{'a'}, 14), 3, 2)
		assert.Equal(t, in, PaddingPKCS7.unpad(in, 16))

		in = append(bytes.Repeat([]byte{'a'}, 15), 0)
		assert.Equal(t, in, PaddingPKCS7.unpad(in, 16))

		in = append(bytes.Repeat([]byte{'a'}, 15), 17)
		assert.Equal(t, in, PaddingPKCS7.unpad(in, 16))
	})

	t.Run("zero padding", func(t *testing.T) {
		assert.Len(t, PaddingZero.pad(make([]byte, 16), 16), 16)
		out := PaddingZero.pad([]byte("abc"), 16)
		require.Len(t, out, 16)
		assert.Equal(t, make([]byte, 13), out[3:])
		assert.Equal(t, out, PaddingZero.unpad(out, 16))
	})

	t.Run("pad does not alias input", func(t *testing.T) {
		in := make([]byte, 3, 64)
		out := PaddingPKCS7.pad(in, 16)
		out[0] = 0xff
		assert.Equal(t, byte(0), in[0])
	})
}

func TestParsePadding(t *testing.T) {
	p, err := ParsePadding("")
	require.NoError(t, err)
	assert.Equal(t, PaddingPKCS7, p)

	p, err = ParsePadding("ZERO")
	require.NoError(t, err)
	assert.Equal(t, PaddingZero, p)

	_, err = ParsePadding("iso10126")
	require.ErrorIs(t, err, ErrUnknownPadding)
}
