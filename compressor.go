// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Wrench Mod Tools

package wad

import "github.com/alitto/pond"

// padFillByte is written into the realignment gap between a pad packet's
// fixed 3-byte header and the next aligned offset. It is never interpreted;
// the decoder skips it by position arithmetic alone.
const padFillByte = 0xEE

// Compress encodes src into a WAD stream. When opts.ThreadCount is greater
// than 1, src is partitioned into up to that many blocks (see
// partitionBlocks), each encoded on its own
// worker, then stitched back together in order; the output is otherwise
// identical in shape to a single-threaded encode (same packet grammar, same
// realignment grid), just assembled from independently produced pieces.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.ThreadCount < 1 {
		return nil, ErrInvalidParameter
	}
	logger := loggerOrDiscard(opts.Logger)

	blocks := partitionBlocks(src, opts.ThreadCount)
	encoded := encodeBlocksParallel(blocks, opts.ThreadCount)

	dst := NewEmptyByteBuffer()
	writeHeader(dst)

	for i, packets := range encoded {
		if i > 0 {
			encodeDummyPacket(dst)
		}
		appendPacketsWithRealignment(dst, packets)
		logger.Debug("wad: block stitched", "block", i, "packets", len(packets), "dst_pos", dst.Pos())
	}

	dst.PatchUint32LE(3, uint32(dst.Len()))

	return dst.Bytes(), nil
}

// partitionBlocks splits src into up to threadCount contiguous blocks, each
// a multiple of 256 bytes except possibly the last.
func partitionBlocks(src []byte, threadCount int) [][]byte {
	if threadCount < 1 {
		threadCount = 1
	}

	n := len(src)
	if n == 0 {
		return [][]byte{{}}
	}

	raw := (n + threadCount - 1) / threadCount
	blockSize := ((raw + 255) / 256) * 256
	if blockSize == 0 {
		blockSize = 256
	}

	var blocks [][]byte
	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}
		blocks = append(blocks, src[start:end])
	}

	return blocks
}

// encodeBlocksParallel runs encodeBlock for each block on a pool of
// maxWorkers goroutines and returns their packet streams in block order.
// All workers join before this function returns; stitching is deliberately
// sequential afterward since it is the only place that needs cross-block
// knowledge (seam dummies, realignment).
func encodeBlocksParallel(blocks [][]byte, maxWorkers int) [][]byte {
	results := make([][]byte, len(blocks))

	pool := pond.New(maxWorkers, len(blocks))
	for i, block := range blocks {
		i, block := i, block
		pool.Submit(func() {
			results[i] = encodeBlock(block)
		})
	}
	pool.StopAndWait()

	return results
}

// appendPacketsWithRealignment copies packets (a complete packet stream)
// into dst one packet at a time, inserting an 8 KiB pad packet whenever the
// next packet would otherwise straddle a realignment boundary. The check is
// purely a function of dst.Pos(), so it composes across blocks without any
// state threaded between calls: whichever block happens to approach a
// boundary pads it, regardless of where that block started.
func appendPacketsWithRealignment(dst *ByteBuffer, packets []byte) {
	pos := 0
	for pos < len(packets) {
		n, err := PacketLength(packets[pos:])
		if err != nil {
			// A block's own encoder only ever emits well-formed packets; a
			// failure here means the stream was truncated mid-packet, which
			// should not happen for output encodeBlock itself produced.
			n = len(packets) - pos
		}

		if (dst.Pos()+(padAlignMask-padAlignOffset))%padAlignMask+n > padAlignMask-3 {
			encodePadPacket(dst)
			for dst.Pos()%padAlignMask != padAlignOffset {
				_ = dst.WriteByte(padFillByte)
			}
		}

		dst.WriteBytes(packets[pos : pos+n])
		pos += n
	}
}
