package packet

import "github.com/mqtt5x/codec/wire"

// DecodeFixedHeader reads the two-part framing prefix common to every
// packet: the type/flags byte followed by the Variable Byte Integer
// remaining length. It is the first thing the frame driver decodes from
// an inbound buffer, before it knows which per-kind grammar to dispatch
// to.
//
// Reserved-bit enforcement for kinds other than Publish is intentionally
// not performed here (this repository's Open Question #3 decision);
// PUBLISH's QoS field is still validated since it feeds directly into
// whether a packet ID is expected.
func DecodeFixedHeader(c *wire.Cursor) (FixedHeader, error) {
	b, err := c.ReadByte()
	if err != nil {
		return FixedHeader{}, err
	}

	t := Type(b >> 4)
	if t < CONNECT || t > AUTH {
		return FixedHeader{}, ErrInvalidPacketType
	}
	flags := b & 0x0F

	fh := FixedHeader{Type: t}
	if t == PUBLISH {
		fh.Dup = flags&0x08 != 0
		fh.QoS = QoS((flags & 0x06) >> 1)
		fh.Retain = flags&0x01 != 0
		if !fh.QoS.Valid() {
			return FixedHeader{}, ErrInvalidQoS
		}
	}

	length, err := c.ReadVarint()
	if err != nil {
		return FixedHeader{}, err
	}
	fh.RemainingLength = length

	return fh, nil
}
