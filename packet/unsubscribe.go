package packet

import "github.com/mqtt5x/codec/wire"

// Unsubscribe asks the server to drop one or more existing subscriptions.
type Unsubscribe struct {
	PacketID   uint16
	Properties []wire.Property
	Filters    []string
}

// DecodeUnsubscribe parses an UNSUBSCRIBE packet body from c, which must
// be bounded to exactly the fixed header's remaining length.
func DecodeUnsubscribe(c *wire.Cursor) (*Unsubscribe, error) {
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, ErrMalformedPacket
	}

	pkt := &Unsubscribe{PacketID: id}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalUnsubscribeProperties)); err != nil {
		return nil, err
	}

	for c.Remaining() > 0 {
		filter, err := c.ReadUTF8String()
		if err != nil {
			return nil, err
		}
		pkt.Filters = append(pkt.Filters, filter)
	}
	if len(pkt.Filters) == 0 {
		return nil, ErrMalformedPacket
	}

	return pkt, nil
}

// EncodeUnsubscribe appends the UNSUBSCRIBE packet's full wire
// representation to dst.
func EncodeUnsubscribe(dst []byte, pkt *Unsubscribe) ([]byte, error) {
	var body []byte
	body = appendUint16(body, pkt.PacketID)
	var err error
	body, err = wire.EncodeProperties(body, pkt.Properties)
	if err != nil {
		return nil, err
	}
	for _, f := range pkt.Filters {
		body = appendMQTTString(body, f)
	}
	return appendFrame(dst, UNSUBSCRIBE, 0x02, body)
}
