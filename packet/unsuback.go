package packet

import "github.com/mqtt5x/codec/wire"

// UnsubscribeAck acknowledges an UNSUBSCRIBE, one reason per requested
// filter in the same order.
type UnsubscribeAck struct {
	PacketID   uint16
	Properties []wire.Property
	Reasons    []UnsubscribeAckReason
}

// DecodeUnsubscribeAck parses an UNSUBACK packet body from c, which must
// be bounded to exactly the fixed header's remaining length.
func DecodeUnsubscribeAck(c *wire.Cursor) (*UnsubscribeAck, error) {
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}

	pkt := &UnsubscribeAck{PacketID: id}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalAckReasonProperties)); err != nil {
		return nil, err
	}

	for c.Remaining() > 0 {
		b, err := c.ReadByte()
		if err != nil {
			return nil, err
		}
		reason, err := ParseUnsubscribeAckReason(b)
		if err != nil {
			return nil, err
		}
		pkt.Reasons = append(pkt.Reasons, reason)
	}
	if len(pkt.Reasons) == 0 {
		return nil, ErrMalformedPacket
	}

	return pkt, nil
}

// EncodeUnsubscribeAck appends the UNSUBACK packet's full wire
// representation to dst.
func EncodeUnsubscribeAck(dst []byte, pkt *UnsubscribeAck) ([]byte, error) {
	var body []byte
	body = appendUint16(body, pkt.PacketID)
	var err error
	body, err = wire.EncodeProperties(body, pkt.Properties)
	if err != nil {
		return nil, err
	}
	for _, r := range pkt.Reasons {
		body = append(body, byte(r))
	}
	return appendFrame(dst, UNSUBACK, 0, body)
}
