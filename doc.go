// SPDX-License-Identifier: GPL-2.0-only
// Copyright (c) 2026 Wrench Mod Tools

/*
Package wad implements the WAD container codec: a specialized LZ77-family
decompressor and a multithreaded, block-aware compressor that produce and
consume bitstreams compatible with the game's own decoder.

The format uses three match packet families (little, big, bigger) plus
literal packets and a "tiny literal" suffix piggybacked on match packets.
The compressed stream realigns to an 8 KiB boundary (measured from the end
of the 16-byte header) with pad packets, since the target decoder streams
compressed data through a fixed-size scratchpad.

# Decompress

OutputLen is optional; when zero, Decompress reads until the header's
total_size field is satisfied:

	dst, err := wad.Decompress(src, nil)

To stop after producing a specific number of output bytes:

	dst, err := wad.DecompressN(src, n, nil)

From an io.Reader:

	dst, err := wad.DecompressFromReader(r, nil)

# Compress

ThreadCount controls how many blocks are encoded in parallel; it must be
at least 1:

	dst, err := wad.Compress(src, &wad.CompressOptions{ThreadCount: 4})
*/
package wad
