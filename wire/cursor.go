// Package wire implements the MQTT 5.0 scalar wire-format primitives:
// the Variable Byte Integer, length-prefixed UTF-8 strings and binary
// blobs, fixed-width big-endian integers, and the property codec built on
// top of them.
//
// Every reader is a method on Cursor and is resumable by construction: it
// either fully consumes its bytes and advances the cursor, or it leaves the
// cursor untouched and reports incompleteness via IsIncomplete. Cursor never
// mutates the slice it was constructed from, so callers decide for
// themselves when (or whether) to commit a read.
package wire

// Cursor is a read-only view over a borrowed byte slice plus a position.
// It never grows, shrinks, or otherwise mutates the slice it wraps.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a Cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes left in the cursor.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Rest returns the unread tail of the cursor without consuming it.
func (c *Cursor) Rest() []byte { return c.data[c.pos:] }

// Take consumes and returns the next n bytes, or errIncomplete if fewer
// than n bytes remain.
func (c *Cursor) Take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, errIncomplete
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadByte reads a single unsigned byte.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a big-endian two-byte integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// ReadUint32 reads a big-endian four-byte integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// ReadBinary reads a two-byte length N followed by N opaque bytes. The
// returned slice is a copy; it does not alias the cursor's backing array.
// Like every Cursor reader, it is all-or-nothing: an incomplete trailing
// payload leaves the cursor at its original position, not just after the
// length prefix.
func (c *Cursor) ReadBinary() ([]byte, error) {
	if c.Remaining() < 2 {
		return nil, errIncomplete
	}
	n := int(uint16(c.data[c.pos])<<8 | uint16(c.data[c.pos+1]))
	if c.Remaining() < 2+n {
		return nil, errIncomplete
	}
	c.pos += 2
	if n == 0 {
		return []byte{}, nil
	}
	out := make([]byte, n)
	copy(out, c.data[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// ReadRaw consumes exactly n opaque bytes (used for PUBLISH payloads, whose
// size is derived from the fixed header's remaining length rather than a
// length prefix of their own). The returned slice is a copy.
func (c *Cursor) ReadRaw(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	b, err := c.Take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadUTF8String reads a two-byte length N followed by N bytes of MQTT
// UTF-8 encoded text, validating it per ValidateUTF8. Like every Cursor
// reader, it is all-or-nothing: an incomplete trailing string leaves the
// cursor at its original position, not just after the length prefix.
func (c *Cursor) ReadUTF8String() (string, error) {
	if c.Remaining() < 2 {
		return "", errIncomplete
	}
	n := int(uint16(c.data[c.pos])<<8 | uint16(c.data[c.pos+1]))
	if c.Remaining() < 2+n {
		return "", errIncomplete
	}
	b := c.data[c.pos+2 : c.pos+2+n]
	if err := ValidateUTF8(b); err != nil {
		return "", err
	}
	c.pos += 2 + n
	return string(b), nil
}

// ReadStringPair reads two consecutive UTF-8 strings (key, then value),
// restoring the cursor to its original position if either half is
// incomplete or invalid.
func (c *Cursor) ReadStringPair() (key, value string, err error) {
	start := c.pos
	key, err = c.ReadUTF8String()
	if err != nil {
		c.pos = start
		return "", "", err
	}
	value, err = c.ReadUTF8String()
	if err != nil {
		c.pos = start
		return "", "", err
	}
	return key, value, nil
}

// ReadVarint reads a Variable Byte Integer (§3.1): 1-4 bytes, 7 payload
// bits per byte, high bit set on all but the last byte. Like every Cursor
// reader, it is all-or-nothing: a truncated encoding leaves the cursor at
// its original position, not partway through the bytes it did find.
func (c *Cursor) ReadVarint() (uint32, error) {
	var value uint32
	var multiplier uint32 = 1
	pos := c.pos

	for i := 0; i < MaxVarintBytes; i++ {
		if pos >= len(c.data) {
			return 0, errIncomplete
		}
		b := c.data[pos]
		pos++
		value += uint32(b&0x7F) * multiplier
		if b&0x80 == 0 {
			c.pos = pos
			return value, nil
		}
		multiplier *= 128
	}

	return 0, ErrInvalidRemainingLength
}
