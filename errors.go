// SPDX-License-Identifier: GPL-2.0-only
// Copyright (c) 2026 Wrench Mod Tools

package wad

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression and compression.
var (
	// ErrBadMagic is returned when the header's first three bytes are not "WAD".
	ErrBadMagic = errors.New("wad: bad magic")
	// ErrDoubleLiteral is returned when two literal packets appear adjacent in
	// the stream, which the format forbids.
	ErrDoubleLiteral = errors.New("wad: two literal packets in a row")
	// ErrTruncatedInput is returned when a packet reads past the end of the source buffer.
	ErrTruncatedInput = errors.New("wad: truncated input")
	// ErrCorruptPacket is returned, wrapped by badLookback, for a match whose
	// lookback reaches before the start of the destination.
	ErrCorruptPacket = errors.New("wad: corrupt packet")
	// ErrInvalidParameter is returned for caller errors: thread_count < 1, or an
	// input too small to contain a valid header.
	ErrInvalidParameter = errors.New("wad: invalid parameter")
)

// badLookback reports a match whose lookback underflows the destination buffer.
// It wraps ErrCorruptPacket so callers can still match it with errors.Is.
func badLookback(dstPos, lookback int) error {
	return fmt.Errorf("%w: lookback %d from dst position %d underflows destination", ErrCorruptPacket, lookback, dstPos)
}
