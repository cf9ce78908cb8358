// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Wrench Mod Tools

package wad

// doNotInject is the sentinel value of lastSuffixPos meaning "the last
// packet written has no tiny-literal carrier available" — either it was a
// literal, a pad, or its carrier byte has already been used.
const doNotInject = -1

// Encoder turns one contiguous source block into a packet stream. It has no
// knowledge of the 8 KiB realignment grid or of other blocks; that is the
// parallel driver's job (see compressor.go), which is why a block's encoded
// stream can be produced independently of where the block eventually lands
// in the final output.
//
// lastSuffixPos and lastWasLiteral track enough state to implement tiny-
// literal injection and the "no two literal packets back to back" rule
// without looking back through already-written bytes by flag.
type Encoder struct {
	out *ByteBuffer

	// lastSuffixPos is the absolute offset of the most recently written
	// packet's tiny-literal carrier byte (its second-to-last byte), or -1 if
	// the last packet written cannot carry a suffix (a literal or a pad).
	lastSuffixPos int

	// lastWasLiteral is true when the most recently written packet was a
	// literal, used to avoid ever emitting two literal packets in a row.
	lastWasLiteral bool
}

// newEncoder returns an Encoder ready to emit into a fresh buffer.
func newEncoder() *Encoder {
	return &Encoder{out: NewEmptyByteBuffer(), lastSuffixPos: doNotInject}
}

// encodeBlock runs the match finder over src and returns its packet stream.
func encodeBlock(src []byte) []byte {
	e := newEncoder()

	pos := 0
	for pos < len(src) {
		literalSize, matchOffset, matchSize := findMatch(src, pos, len(src), false)

		e.emitLiteralRun(src[pos : pos+literalSize])
		pos += literalSize

		if matchSize == 0 {
			continue
		}

		lookback := pos - matchOffset
		e.emitMatch(matchSize, lookback)
		pos += matchSize
	}

	return e.out.Bytes()
}

// emitLiteralRun appends n raw bytes as either a tiny-literal suffix (when
// n<=3 and a carrier is available or can be created with a dummy packet) or
// a standalone literal packet.
func (e *Encoder) emitLiteralRun(src []byte) {
	n := len(src)
	if n == 0 {
		return
	}

	if n <= 3 {
		if e.tryInjectTiny(src) {
			return
		}

		// No eligible carrier (stream start, or the last packet was itself a
		// literal/pad): manufacture one. A freshly written dummy packet's
		// carrier byte is always zero, so the injection below always succeeds.
		e.emitDummy()
		e.tryInjectTiny(src)

		return
	}

	if e.lastWasLiteral {
		e.emitDummy()
	}

	if n <= 18 {
		encodeShortLiteral(e.out, n)
	} else {
		encodeLongLiteral(e.out, n)
	}
	e.out.WriteBytes(src)

	e.lastWasLiteral = true
	e.lastSuffixPos = doNotInject
}

// tryInjectTiny ORs len(src) into the pending carrier byte and appends src's
// raw bytes, if a carrier is available and unused. It reports whether
// injection happened.
func (e *Encoder) tryInjectTiny(src []byte) bool {
	if e.lastSuffixPos == doNotInject {
		return false
	}

	b := e.out.data[e.lastSuffixPos]
	if b&3 != 0 {
		return false
	}

	e.out.data[e.lastSuffixPos] = b | byte(len(src))
	e.out.WriteBytes(src)
	e.lastSuffixPos = doNotInject

	return true
}

// emitMatch appends a back-reference packet, choosing the cheapest family
// that can express (length, lookback).
func (e *Encoder) emitMatch(length, lookback int) {
	switch {
	case length <= littleMatchMaxLen && lookback <= littleMatchMaxLookback:
		encodeLittleMatch(e.out, length, lookback)
	case length <= bigMatchMaxLen && lookback <= bigMatchMaxLookback:
		encodeBigMatch(e.out, length, lookback)
	default:
		encodeBiggerMatch(e.out, length, lookback)
	}

	e.lastSuffixPos = e.out.Pos() - 2
	e.lastWasLiteral = false
}

// emitDummy appends the fixed dummy packet. It is used both to manufacture a
// tiny-literal carrier and to break up adjacent literal packets.
func (e *Encoder) emitDummy() {
	encodeDummyPacket(e.out)

	e.lastSuffixPos = e.out.Pos() - 2
	e.lastWasLiteral = false
}
