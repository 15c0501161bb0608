package packet

import "github.com/mqtt5x/codec/wire"

// SubscribeAck acknowledges a SUBSCRIBE, one reason per requested filter
// in the same order.
type SubscribeAck struct {
	PacketID   uint16
	Properties []wire.Property
	Reasons    []SubscribeAckReason
}

// DecodeSubscribeAck parses a SUBACK packet body from c, which must be
// bounded to exactly the fixed header's remaining length.
func DecodeSubscribeAck(c *wire.Cursor) (*SubscribeAck, error) {
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}

	pkt := &SubscribeAck{PacketID: id}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalAckReasonProperties)); err != nil {
		return nil, err
	}

	for c.Remaining() > 0 {
		b, err := c.ReadByte()
		if err != nil {
			return nil, err
		}
		reason, err := ParseSubscribeAckReason(b)
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

// EncodeSubscribeAck appends the SUBACK packet's full wire representation
// to dst.
func EncodeSubscribeAck(dst []byte, pkt *SubscribeAck) ([]byte, error) {
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
	return appendFrame(dst, SUBACK, 0, body)
}
