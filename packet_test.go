package wad

import (
	"bytes"
	"testing"
)

func TestMatchFamilies_EncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		length   int
		lookback int
		encode   func(buf *ByteBuffer, length, lookback int)
		decode   func(in, out *ByteBuffer, flag byte) error
	}{
		{name: "little-min", length: 3, lookback: 1, encode: encodeLittleMatch, decode: decodeLittleMatch},
		{name: "little-max", length: 8, lookback: 2048, encode: encodeLittleMatch, decode: decodeLittleMatch},
		{name: "big-min", length: 3, lookback: 1, encode: encodeBigMatch, decode: decodeBigMatch},
		{name: "big-max", length: 33, lookback: 16384, encode: encodeBigMatch, decode: decodeBigMatch},
		{name: "bigger-min", length: 34, lookback: 1, encode: encodeBiggerMatch, decode: decodeBiggerMatchNoPad},
		{name: "bigger-max", length: 256, lookback: 16384, encode: encodeBiggerMatch, decode: decodeBiggerMatchNoPad},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seed := make([]byte, c.lookback)
			for i := range seed {
				seed[i] = byte(i*7 + 3)
			}

			want := NewEmptyByteBuffer()
			want.WriteBytes(seed)
			if err := copyMatch(want, c.lookback, c.length); err != nil {
				t.Fatalf("reference copyMatch failed: %v", err)
			}

			packet := NewEmptyByteBuffer()
			c.encode(packet, c.length, c.lookback)

			in := NewByteBuffer(packet.Bytes())
			flag, err := in.ReadByte()
			if err != nil {
				t.Fatalf("ReadByte failed: %v", err)
			}

			dst := NewEmptyByteBuffer()
			dst.WriteBytes(seed)
			if err := c.decode(in, dst, flag); err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			if !bytes.Equal(dst.Bytes(), want.Bytes()) {
				t.Fatalf("mismatch: got tail=% x want tail=% x", dst.Bytes()[len(seed):], want.Bytes()[len(seed):])
			}
		})
	}
}

// decodeBiggerMatchNoPad adapts decodeBiggerMatchOrPad's signature for table-
// driven use alongside decodeLittleMatch/decodeBigMatch; it is never called
// with a pad or dummy flag in these tests.
func decodeBiggerMatchNoPad(in, out *ByteBuffer, flag byte) error {
	_, err := decodeBiggerMatchOrPad(in, out, flag, discardLogger)
	return err
}
