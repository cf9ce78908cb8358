package wad

import (
	"bytes"
	"testing"
)

func TestCompress_DeterministicAcrossRuns(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 500)

	first, err := Compress(data, &CompressOptions{ThreadCount: 4})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := Compress(data, &CompressOptions{ThreadCount: 4})
		if err != nil {
			t.Fatalf("Compress failed on run %d: %v", i, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d diverged from first compression", i)
		}
	}
}

func TestCompress_HeaderTotalSizeMatchesOutput(t *testing.T) {
	data := bytes.Repeat([]byte{0x01, 0x02, 0x03}, 9000)

	cmp, err := Compress(data, &CompressOptions{ThreadCount: 3})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	in := NewByteBuffer(cmp)
	in.Seek(3)
	totalSize, err := in.ReadUint32LE()
	if err != nil {
		t.Fatalf("ReadUint32LE failed: %v", err)
	}
	if int(totalSize) != len(cmp) {
		t.Fatalf("header total_size=%d, actual length=%d", totalSize, len(cmp))
	}
}

func TestCompress_EightKiBPadInvariant(t *testing.T) {
	data := pseudoRandom(65536, 7)

	cmp, err := Compress(data, &CompressOptions{ThreadCount: 1})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	in := NewByteBuffer(cmp)
	in.Seek(3)
	totalSize64, err := in.ReadUint32LE()
	if err != nil {
		t.Fatalf("ReadUint32LE failed: %v", err)
	}
	totalSize := int(totalSize64)

	padCount := 0
	pos := headerSize
	for pos < totalSize {
		n, err := PacketLength(cmp[pos:])
		if err != nil {
			t.Fatalf("PacketLength failed at pos %d: %v", pos, err)
		}
		if cmp[pos] == padFlag {
			padCount++
			// Skip the filler after the pad, as the decoder does.
			pos += n
			for pos%padAlignMask != padAlignOffset {
				pos++
			}
			continue
		}
		pos += n
	}
	if padCount < 3 {
		t.Fatalf("expected at least 3 pad packets in a 64 KiB incompressible stream, found %d", padCount)
	}

	out, err := DecompressN(cmp, len(data), nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch across pad boundaries")
	}
}

func TestCompress_CrossBlockSeamZeros(t *testing.T) {
	data := make([]byte, 4096)

	cmp, err := Compress(data, &CompressOptions{ThreadCount: 4})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := DecompressN(cmp, len(data), nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch across a block seam")
	}
}

func TestCompress_InvalidThreadCount(t *testing.T) {
	_, err := Compress([]byte("x"), &CompressOptions{ThreadCount: 0})
	if err == nil {
		t.Fatal("expected an error for ThreadCount 0")
	}
}

func TestPartitionBlocks_SizesAndCoverage(t *testing.T) {
	src := make([]byte, 10000)
	for i := range src {
		src[i] = byte(i)
	}

	blocks := partitionBlocks(src, 4)

	total := 0
	for i, b := range blocks {
		if i < len(blocks)-1 && len(b)%256 != 0 {
			t.Fatalf("block %d length %d is not a multiple of 256", i, len(b))
		}
		total += len(b)
	}
	if total != len(src) {
		t.Fatalf("blocks cover %d bytes, want %d", total, len(src))
	}

	reassembled := make([]byte, 0, len(src))
	for _, b := range blocks {
		reassembled = append(reassembled, b...)
	}
	if !bytes.Equal(reassembled, src) {
		t.Fatal("partitioned blocks do not reconstruct src in order")
	}
}
