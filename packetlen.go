// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Wrench Mod Tools

package wad

// PacketLength returns the total byte length of the packet starting at
// b[0], without performing any copying. It is used by the stitcher to walk
// a block's packet stream packet by packet, and must agree exactly with
// decompress.go's consumption logic: any divergence between the two would
// make the stitched stream undecodable or mis-seamed. The one exception is
// a pad packet: its result is the 3 packet bytes, and the filler the
// decoder skips after it (up to the next realignment offset) is not counted.
func PacketLength(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, ErrTruncatedInput
	}

	flag := b[0]

	switch classifyFlag(flag) {
	case familyLiteral:
		return literalPacketLength(b, flag)
	case familyBiggerMatchOrPad:
		return biggerMatchPacketLength(b, flag)
	case familyBigMatch:
		return fixedFieldPacketLength(b, flag, 0x1F, 2)
	default:
		return fixedFieldPacketLength(b, flag, 0, 1)
	}
}

// literalPacketLength handles flag <= 0x0F: 1 or 2 header bytes, then n raw bytes.
func literalPacketLength(b []byte, flag byte) (int, error) {
	if flag != 0 {
		n := int(flag) + 3
		if len(b) < 1+n {
			return 0, ErrTruncatedInput
		}

		return 1 + n, nil
	}

	if len(b) < 2 {
		return 0, ErrTruncatedInput
	}

	n := int(b[1]) + 18
	if len(b) < 2+n {
		return 0, ErrTruncatedInput
	}

	return 2 + n, nil
}

// biggerMatchPacketLength handles flag in [0x10,0x1F]: an optional extra
// length byte, two position bytes, then a tiny-literal suffix. A dummy
// packet may have a suffix ORed into its second-to-last byte by the
// encoder, same as any other family member; a pad packet never carries one
// and is counted as its 3 fixed bytes only.
func biggerMatchPacketLength(b []byte, flag byte) (int, error) {
	n := 1
	l := int(flag & 7)
	if l == 0 {
		if len(b) < n+1 {
			return 0, ErrTruncatedInput
		}
		n++
	}

	if len(b) < n+2 {
		return 0, ErrTruncatedInput
	}
	secondToLast := b[n]
	n += 2

	if flag == padFlag {
		return n, nil
	}

	return appendTinySuffixLen(b, n, secondToLast)
}

// fixedFieldPacketLength handles the big-match and little-match families,
// both of which have a fixed number of position bytes (extraFieldMask
// nonzero selects the big-match "extra byte" form) followed by a
// tiny-literal suffix. For little-match (posBytes=1) the "second-to-last
// byte" this lands on is the flag byte itself, same as decodeTinySuffix's
// pos-2 peek does there; the flag's low 2 bits are free of match fields, so
// the encoder ORs a tiny-literal length into them exactly as it does into
// the carrier byte of the other families.
func fixedFieldPacketLength(b []byte, flag byte, extraFieldMask byte, posBytes int) (int, error) {
	n := 1
	if extraFieldMask != 0 && int(flag&extraFieldMask) == 0 {
		if len(b) < n+1 {
			return 0, ErrTruncatedInput
		}
		n++
	}

	if len(b) < n+posBytes {
		return 0, ErrTruncatedInput
	}
	n += posBytes
	secondToLast := b[n-2]

	return appendTinySuffixLen(b, n, secondToLast)
}

// appendTinySuffixLen adds the 0-3 raw bytes a tiny-literal suffix
// contributes, reading its length from the low 2 bits of the packet's
// second-to-last byte.
func appendTinySuffixLen(b []byte, n int, secondToLast byte) (int, error) {
	t := int(secondToLast & 3)
	if len(b) < n+t {
		return 0, ErrTruncatedInput
	}

	return n + t, nil
}
