// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Wrench Mod Tools

package wad

// Packet taxonomy and header framing constants. The flag byte of a packet
// (its first byte) selects one of five families; see the table in the
// format documentation.

const (
	// headerSize is the fixed 16-byte header: magic, total_size, tag.
	headerSize = 16

	magicByte0 = 0x57 // 'W'
	magicByte1 = 0x41 // 'A'
	magicByte2 = 0x44 // 'D'

	// headerTag is written at bytes 7-15: "WRENCH01" plus a trailing zero byte.
	headerTag = "WRENCH01\x00"
)

const (
	minMatch   = 3
	maxLiteral = 273

	littleMatchMinLen      = 3
	littleMatchMaxLen      = 8
	littleMatchMaxLookback = 2048

	bigMatchMinLen      = 3
	bigMatchMaxLen      = 33
	bigMatchMaxLookback = 16384

	biggerMatchMinLen      = 34
	biggerMatchMaxLen      = 288
	biggerMatchMaxLookback = 16384

	// maxMatch is the largest match length the decoder will accept.
	maxMatch = 288
	// encoderMaxMatch caps what the encoder ever emits, per spec: the decoder
	// tolerates a dead range (257-288) the original encoder never produced.
	encoderMaxMatch = 256
)

// Flag byte family boundaries.
const (
	flagLiteralMax      = 0x0F // 0x00-0x0F: literal (0x00 long form, 0x01-0x0F short form)
	flagBiggerMatchMin  = 0x10
	flagBiggerMatchMax  = 0x1F
	flagBigMatchMin     = 0x20
	flagBigMatchMax     = 0x3F
	flagLittleMatchMin  = 0x40
	flagLittleMatchMax  = 0xFF
)

// dummyPacket and padPacket are the two fixed no-op packets the encoder and
// stitcher use. Both are members of the bigger-match family with all-zero
// position bytes; the decoder recognizes them by their flag values and
// copies nothing for either.
var (
	dummyPacketBytes = [3]byte{0x11, 0x00, 0x00}
	padPacketBytes   = [3]byte{0x12, 0x00, 0x00}
)

// packetFamily identifies which of the five packet shapes a flag byte selects.
type packetFamily int

const (
	familyLiteral packetFamily = iota
	familyBiggerMatchOrPad
	familyBigMatch
	familyLittleMatch
)

// classifyFlag returns the family a flag byte belongs to.
func classifyFlag(flag byte) packetFamily {
	switch {
	case flag <= flagLiteralMax:
		return familyLiteral
	case flag <= flagBiggerMatchMax:
		return familyBiggerMatchOrPad
	case flag <= flagBigMatchMax:
		return familyBigMatch
	default:
		return familyLittleMatch
	}
}

// writeHeader writes the 16-byte WAD header with a placeholder total_size of 0.
func writeHeader(buf *ByteBuffer) {
	_ = buf.WriteByte(magicByte0)
	_ = buf.WriteByte(magicByte1)
	_ = buf.WriteByte(magicByte2)
	buf.WriteUint32LE(0)
	buf.WriteBytes([]byte(headerTag))
}

// ValidateMagic reports whether b begins with the WAD magic bytes. It does
// not validate the rest of the header.
func ValidateMagic(b []byte) bool {
	return len(b) >= 3 && b[0] == magicByte0 && b[1] == magicByte1 && b[2] == magicByte2
}

// encodeLittleMatch appends a little-match packet: flag byte, then one
// position byte. length must be in [3,8], lookback in [1,2048].
func encodeLittleMatch(buf *ByteBuffer, length, lookback int) {
	d := lookback - 1
	posMajor := d / 8
	posMinor := d % 8

	flag := ((length - 1) << 5) | (posMinor << 2)
	_ = buf.WriteByte(byte(flag))
	_ = buf.WriteByte(byte(posMajor))
}

// encodeBigMatch appends a big-match packet. length must be in [3,33],
// lookback in [1,16384].
func encodeBigMatch(buf *ByteBuffer, length, lookback int) {
	d := lookback - 1
	posMajor := d / 0x40
	posMinor := d % 0x40

	l := length - 2
	flag := flagBigMatchMin | l
	_ = buf.WriteByte(byte(flag))
	_ = buf.WriteByte(byte(posMinor << 2))
	_ = buf.WriteByte(byte(posMajor))
}

// encodeBiggerMatch appends a bigger-match packet. length must be in
// [34,264] (the most the single length byte can express; the encoder itself
// never exceeds encoderMaxMatch), lookback in [1,16384].
//
// The length field is always forced to the "extra byte" form (flag&7 == 0):
// a genuine bigger match never fits in the 3 direct length bits (those only
// reach length 9), so the flag is always exactly flagBiggerMatchMin and the
// real length rides in the explicit byte that follows, matching the
// decoder's "L = F&7; if L==0, read X, L = X+7; L += 2" unpacking exactly.
func encodeBiggerMatch(buf *ByteBuffer, length, lookback int) {
	d := lookback - 1
	posMajor := d / 0x40
	posMinor := d % 0x40

	extra := length - 9
	_ = buf.WriteByte(flagBiggerMatchMin)
	_ = buf.WriteByte(byte(extra))
	_ = buf.WriteByte(byte(posMinor << 2))
	_ = buf.WriteByte(byte(posMajor))
}

// encodeLongLiteral appends a long literal header (flag 0x00 + length byte)
// for runs of 19 or more bytes; the raw bytes themselves are appended by the caller.
func encodeLongLiteral(buf *ByteBuffer, n int) {
	_ = buf.WriteByte(0x00)
	_ = buf.WriteByte(byte(n - 18))
}

// encodeShortLiteral appends a short literal header (flag 0x01-0x0F) for runs
// of 4 to 18 bytes; the raw bytes themselves are appended by the caller.
func encodeShortLiteral(buf *ByteBuffer, n int) {
	_ = buf.WriteByte(byte(n - 3))
}

// encodeDummyPacket appends the fixed dummy packet 0x11 0x00 0x00.
func encodeDummyPacket(buf *ByteBuffer) {
	buf.WriteBytes(dummyPacketBytes[:])
}

// encodePadPacket appends the fixed pad packet 0x12 0x00 0x00.
func encodePadPacket(buf *ByteBuffer) {
	buf.WriteBytes(padPacketBytes[:])
}
