// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Wrench Mod Tools

package wad

import (
	"io"
	"log/slog"
)

const (
	// dummyFlag and padFlag are the two reserved flag values in the
	// bigger-match family that never represent a real back-reference.
	dummyFlag = 0x11
	padFlag   = 0x12

	// padAlignMask and padAlignOffset describe the 8 KiB realignment grid:
	// a pad packet advances src.pos until src.pos % 0x2000 == 0x10.
	padAlignMask   = 0x2000
	padAlignOffset = 0x10
)

// Decompress decompresses a WAD stream. If opts is nil or opts.OutputLen is
// 0, the whole stream (as bounded by the header's total_size field) is
// decoded; otherwise decoding stops once exactly opts.OutputLen bytes have
// been produced.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	return decompressCore(src, opts.OutputLen, loggerOrDiscard(opts.Logger))
}

// DecompressN decompresses exactly n output bytes from src. It is a thin
// wrapper over Decompress with OutputLen pinned to n, useful when a caller
// wants to pre-size a destination without constructing options explicitly.
func DecompressN(src []byte, n int, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	o := *opts
	o.OutputLen = n

	return decompressCore(src, o.OutputLen, loggerOrDiscard(o.Logger))
}

// DecompressFromReader reads the full stream then calls Decompress. It has
// no decoding logic of its own.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if opts.MaxBytes > 0 {
		r = io.LimitReader(r, int64(opts.MaxBytes)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxBytes > 0 && len(src) > opts.MaxBytes {
		return nil, ErrInvalidParameter
	}

	return Decompress(src, opts)
}

// decompressCore runs the decoder state machine described in the packet
// grammar: header validation, then a loop dispatching on each packet's flag
// byte until total_size (or outputLen, if nonzero) is satisfied.
func decompressCore(src []byte, outputLen int, logger *slog.Logger) (out []byte, err error) {
	defer func() {
		if err != nil {
			logger.Error("wad: decompress failed", "error", err)
		}
	}()

	if len(src) < headerSize {
		return nil, ErrInvalidParameter
	}

	if !ValidateMagic(src) {
		return nil, ErrBadMagic
	}

	in := NewByteBuffer(src)
	in.Seek(3)
	totalSize64, err := in.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	totalSize := int(totalSize64)
	in.Seek(headerSize)

	dst := NewEmptyByteBuffer()

	for in.Pos() < totalSize && (outputLen == 0 || dst.Len() < outputLen) {
		flag, ferr := in.ReadByte()
		if ferr != nil {
			return nil, ferr
		}

		switch classifyFlag(flag) {
		case familyLiteral:
			if ferr := decodeLiteralPacket(in, dst, flag); ferr != nil {
				return nil, ferr
			}

		case familyBiggerMatchOrPad:
			isPad, ferr := decodeBiggerMatchOrPad(in, dst, flag, logger)
			if ferr != nil {
				return nil, ferr
			}
			if !isPad {
				if ferr := decodeTinySuffix(in, dst); ferr != nil {
					return nil, ferr
				}
			}

		case familyBigMatch:
			if ferr := decodeBigMatch(in, dst, flag); ferr != nil {
				return nil, ferr
			}
			if ferr := decodeTinySuffix(in, dst); ferr != nil {
				return nil, ferr
			}

		case familyLittleMatch:
			if ferr := decodeLittleMatch(in, dst, flag); ferr != nil {
				return nil, ferr
			}
			if ferr := decodeTinySuffix(in, dst); ferr != nil {
				return nil, ferr
			}
		}
	}

	out = dst.Bytes()
	if outputLen > 0 && len(out) > outputLen {
		out = out[:outputLen]
	}

	return out, nil
}

// decodeLiteralPacket handles flag < 0x10: a run of raw bytes copied
// verbatim from src to dst, with no tiny-literal suffix. It also enforces
// the "no two literal packets in a row" invariant by peeking the next flag.
func decodeLiteralPacket(in, out *ByteBuffer, flag byte) error {
	var n int
	if flag != 0 {
		n = int(flag) + 3
	} else {
		lenByte, err := in.ReadByte()
		if err != nil {
			return err
		}
		n = int(lenByte) + 18
	}

	if err := copyLiteral(in, out, n); err != nil {
		return err
	}

	next, err := in.PeekByte(in.Pos())
	if err == nil && next <= flagLiteralMax {
		return ErrDoubleLiteral
	}

	return nil
}

// copyLiteral copies n bytes from in's cursor to out's cursor.
func copyLiteral(in, out *ByteBuffer, n int) error {
	for i := 0; i < n; i++ {
		b, err := in.ReadByte()
		if err != nil {
			return err
		}
		if err := out.WriteByte(b); err != nil {
			return err
		}
	}

	return nil
}

// decodeBiggerMatchOrPad handles flag in [0x10,0x1F]. It returns isPad=true
// only for the pad sentinel, which triggers the 8 KiB realignment skip and
// never carries a tiny-literal suffix. The dummy sentinel (flag 0x11) is a
// genuine member of this family with a defined "copy nothing" match, so it
// still falls through to the tiny-literal suffix check like any other
// packet in the family — that check is what lets a dummy carry a tiny
// literal, per its role in the packet encoder (see encoder.go).
func decodeBiggerMatchOrPad(in, out *ByteBuffer, flag byte, logger *slog.Logger) (isPad bool, err error) {
	l := int(flag & 7)
	if l == 0 {
		x, err := in.ReadByte()
		if err != nil {
			return false, err
		}
		l = int(x) + 7
	}
	l += 2

	b0, err := in.ReadByte()
	if err != nil {
		return false, err
	}
	b1, err := in.ReadByte()
	if err != nil {
		return false, err
	}

	if flag == padFlag {
		logger.Debug("wad: pad packet", "src_pos", in.Pos())
		for in.Pos()%padAlignMask != padAlignOffset {
			if _, err := in.ReadByte(); err != nil {
				return false, err
			}
		}
		return true, nil
	}

	if flag == dummyFlag {
		return false, nil
	}

	dist := (int(b0)>>2 + int(b1)*0x40) + 1
	if l != 1 {
		if err := copyMatch(out, dist, l); err != nil {
			return false, err
		}
	}

	return false, nil
}

// decodeBigMatch handles flag in [0x20,0x3F].
func decodeBigMatch(in, out *ByteBuffer, flag byte) error {
	l := int(flag & 0x1F)
	if l == 0 {
		x, err := in.ReadByte()
		if err != nil {
			return err
		}
		l = int(x) + 0x1F
	}
	l += 2

	b1, err := in.ReadByte()
	if err != nil {
		return err
	}
	b2, err := in.ReadByte()
	if err != nil {
		return err
	}

	dist := (int(b1)>>2 + int(b2)*0x40) + 1

	return copyMatch(out, dist, l)
}

// decodeLittleMatch handles flag in [0x40,0xFF].
func decodeLittleMatch(in, out *ByteBuffer, flag byte) error {
	b1, err := in.ReadByte()
	if err != nil {
		return err
	}

	dist := int(b1)*8 + (int(flag>>2)&7) + 1
	l := int(flag>>5) + 1

	return copyMatch(out, dist, l)
}

// decodeTinySuffix inspects the second-to-last byte consumed by the packet
// just decoded (src[src.pos-2]) and copies its low 2 bits' worth of raw
// bytes from src to dst.
func decodeTinySuffix(in, out *ByteBuffer) error {
	b, err := in.PeekByte(in.Pos() - 2)
	if err != nil {
		return nil
	}

	t := int(b & 3)

	return copyLiteral(in, out, t)
}
