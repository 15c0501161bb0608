package packet

import "github.com/mqtt5x/codec/wire"

// Publish carries an application message, in either direction. Dup, QoS,
// and Retain live in the fixed header's flag nibble rather than the
// packet body; PacketID is only meaningful (and only present on the wire)
// when QoS is AtLeastOnce or ExactlyOnce.
type Publish struct {
	Topic      string
	PacketID   uint16
	Dup        bool
	QoS        QoS
	Retain     bool
	Properties []wire.Property
	Payload    []byte
}

// DecodePublish parses a PUBLISH packet body from c, which must be bounded
// to exactly the fixed header's remaining length. fh supplies the flags
// decoded from the fixed header's first byte.
func DecodePublish(fh FixedHeader, c *wire.Cursor) (*Publish, error) {
	if !fh.QoS.Valid() {
		return nil, ErrInvalidQoS
	}
	if fh.QoS == AtMostOnce && fh.Dup {
		return nil, ErrMalformedPacket
	}

	topic, err := c.ReadUTF8String()
	if err != nil {
		return nil, err
	}

	pkt := &Publish{Topic: topic, Dup: fh.Dup, QoS: fh.QoS, Retain: fh.Retain}

	if fh.QoS != AtMostOnce {
		id, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, ErrMalformedPacket
		}
		pkt.PacketID = id
	}

	if err := wire.DecodeProperties(c, publishPropertyAcceptor(pkt)); err != nil {
		return nil, err
	}

	payload, err := c.ReadRaw(c.Remaining())
	if err != nil {
		return nil, err
	}
	pkt.Payload = payload

	return pkt, nil
}

// EncodePublish appends the PUBLISH packet's full wire representation
// (fixed header included) to dst.
func EncodePublish(dst []byte, pkt *Publish) ([]byte, error) {
	var body []byte
	body = appendMQTTString(body, pkt.Topic)
	if pkt.QoS != AtMostOnce {
		body = appendUint16(body, pkt.PacketID)
	}
	var err error
	body, err = wire.EncodeProperties(body, pkt.Properties)
	if err != nil {
		return nil, err
	}
	body = append(body, pkt.Payload...)

	var flags byte
	if pkt.Dup {
		flags |= 0x08
	}
	flags |= byte(pkt.QoS) << 1
	if pkt.Retain {
		flags |= 0x01
	}
	return appendFrame(dst, PUBLISH, flags, body)
}
