// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Wrench Mod Tools

package wad

import "encoding/binary"

// ByteBuffer is a growable, positioned byte array. It supports reading and
// writing 8- and 32-bit little-endian values at the current cursor, and
// random peeks at arbitrary absolute offsets. Writing past the end grows the
// backing slice.
//
// A ByteBuffer is owned by its caller; the codec never retains a reference
// to one past the call that received it.
type ByteBuffer struct {
	data []byte
	pos  int
}

// NewByteBuffer wraps an existing slice for reading, positioned at 0.
func NewByteBuffer(data []byte) *ByteBuffer {
	return &ByteBuffer{data: data}
}

// NewEmptyByteBuffer returns an empty buffer positioned at 0, suitable for writing.
func NewEmptyByteBuffer() *ByteBuffer {
	return &ByteBuffer{}
}

// Len returns the number of bytes currently stored in the buffer.
func (b *ByteBuffer) Len() int { return len(b.data) }

// Pos returns the current cursor position.
func (b *ByteBuffer) Pos() int { return b.pos }

// Seek moves the cursor to an absolute position. It does not validate pos
// against the buffer's length; out-of-range reads fail at read time.
func (b *ByteBuffer) Seek(pos int) { b.pos = pos }

// Bytes returns the full backing slice.
func (b *ByteBuffer) Bytes() []byte { return b.data }

// ReadByte reads one byte at the cursor and advances it.
func (b *ByteBuffer) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, ErrTruncatedInput
	}

	v := b.data[b.pos]
	b.pos++

	return v, nil
}

// PeekByte returns the byte at an absolute offset without moving the cursor.
func (b *ByteBuffer) PeekByte(offset int) (byte, error) {
	if offset < 0 || offset >= len(b.data) {
		return 0, ErrTruncatedInput
	}

	return b.data[offset], nil
}

// ReadUint32LE reads a little-endian uint32 at the cursor and advances it by 4.
func (b *ByteBuffer) ReadUint32LE() (uint32, error) {
	if b.pos+4 > len(b.data) {
		return 0, ErrTruncatedInput
	}

	v := binary.LittleEndian.Uint32(b.data[b.pos : b.pos+4])
	b.pos += 4

	return v, nil
}

// WriteByte appends one byte at the cursor, growing the buffer if needed, and advances it.
func (b *ByteBuffer) WriteByte(v byte) error {
	b.growTo(b.pos + 1)
	b.data[b.pos] = v
	b.pos++

	return nil
}

// WriteBytes appends a slice of bytes at the cursor and advances past them.
func (b *ByteBuffer) WriteBytes(v []byte) {
	b.growTo(b.pos + len(v))
	copy(b.data[b.pos:b.pos+len(v)], v)
	b.pos += len(v)
}

// WriteUint32LE writes a little-endian uint32 at the cursor and advances it by 4.
func (b *ByteBuffer) WriteUint32LE(v uint32) {
	b.growTo(b.pos + 4)
	binary.LittleEndian.PutUint32(b.data[b.pos:b.pos+4], v)
	b.pos += 4
}

// PatchUint32LE overwrites a little-endian uint32 at an absolute offset without
// moving the cursor. The buffer must already extend to offset+4.
func (b *ByteBuffer) PatchUint32LE(offset int, v uint32) {
	binary.LittleEndian.PutUint32(b.data[offset:offset+4], v)
}

// growTo ensures the buffer is at least n bytes long, zero-extending as needed.
func (b *ByteBuffer) growTo(n int) {
	if n <= len(b.data) {
		return
	}

	if n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}

	grown := make([]byte, n)
	copy(grown, b.data)
	b.data = grown
}
