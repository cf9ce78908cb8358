// SPDX-License-Identifier: GPL-2.0-only
// Copyright (c) 2026 Wrench Mod Tools

package wad

import "log/slog"

// DecompressOptions configures decompression.
// OutputLen, when non-zero, bounds decoding to that many output bytes (see
// DecompressN). MaxBytes limits how
// many bytes DecompressFromReader may read before giving up.
type DecompressOptions struct {
	// OutputLen is the number of output bytes to produce; 0 means "decode the
	// whole stream as bounded by the header's total_size field".
	OutputLen int
	// MaxBytes limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxBytes int
	// Logger receives optional debug diagnostics; nil uses a no-op logger.
	Logger *slog.Logger
}

// DefaultDecompressOptions returns options that decode the entire stream.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// ThreadCount is the number of blocks to encode in parallel; must be >= 1.
	ThreadCount int
	// Logger receives optional debug diagnostics; nil uses a no-op logger.
	Logger *slog.Logger
}

// DefaultCompressOptions returns options for single-threaded compression.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{ThreadCount: 1}
}
