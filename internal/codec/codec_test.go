package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr error
	}{
		{name: "empty", in: "", want: []byte{}},
		{name: "lower case", in: "00ff10", want: []byte{0x00, 0xff, 0x10}},
		{name: "upper case", in: "ABCDEF", want: []byte{0xab, 0xcd, 0xef}},
		{name: "mixed case", in: "aBcD", want: []byte{0xab, 0xcd}},
		{name: "odd length", in: "abc", wantErr: ErrMalformedInput},
		{name: "non-hex characters", in: "zz", wantErr: ErrMalformedInput},
		{name: "whitespace", in: "0a 0b", wantErr: ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToBytes(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBytesToHex_FixedWidthLowerCase(t *testing.T) {
	assert.Equal(t, "000a0fff", BytesToHex([]byte{0x00, 0x0a, 0x0f, 0xff}))
	assert.Equal(t, "", BytesToHex(nil))
}

func TestHexRoundTrip(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}

	out, err := HexToBytes(BytesToHex(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUTF8Decode(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    string
		wantErr error
	}{
		{name: "no terminator", in: []byte("hunter2"), want: "hunter2"},
		{name: "terminator then padding", in: append([]byte("hunter2\x00"), 9, 9, 9), want: "hunter2"},
		{name: "multi-byte before terminator", in: []byte("пароль\x00\x00"), want: "пароль"},
		{name: "partial sequence after terminator is ignored", in: []byte{'a', 0x00, 0xd0}, want: "a"},
		{name: "only terminator", in: []byte{0x00}, want: ""},
		{name: "invalid before terminator", in: []byte{0xff, 0xfe, 0x00}, wantErr: ErrDecodeFailure},
		{name: "truncated sequence without terminator", in: []byte{'a', 0xd0}, wantErr: ErrDecodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF8Decode(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUTF8Encode(t *testing.T) {
	assert.Equal(t, []byte{0xc3, 0xa9}, UTF8Encode("é"))
}

func TestXOR(t *testing.T) {
	got, err := XOR([]byte{0x0f, 0xf0, 0xaa}, []byte{0xff, 0xff, 0xaa})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf0, 0x0f, 0x00}, got)

	_, err = XOR([]byte{1, 2}, []byte{1})
	require.ErrorIs(t, err, ErrLengthMismatch)
}
