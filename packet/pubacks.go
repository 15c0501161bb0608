package packet

import "github.com/mqtt5x/codec/wire"

// PublishAck, PublishReceived, PublishRelease, and PublishComplete all
// share one grammar (packet ID, then an optional reason code and
// properties elided when absent): a remaining length of 2 means Success
// with no properties, and 3 means an explicit reason code with no
// properties. Only a remaining length of 4 or more carries a property
// bag. Each struct keeps its own named reason-code field type so the four
// kinds can never be confused with one another.

// PublishAck acknowledges a QoS 1 PUBLISH.
type PublishAck struct {
	PacketID   uint16
	Reason     PublishAckReason
	Properties []wire.Property
}

// DecodePublishAck parses a PUBACK packet body from c.
func DecodePublishAck(fh FixedHeader, c *wire.Cursor) (*PublishAck, error) {
	pkt := &PublishAck{Reason: PublishAckSuccess}
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	pkt.PacketID = id
	if fh.RemainingLength == 2 {
		return pkt, nil
	}
	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	pkt.Reason, err = ParsePublishAckReason(b)
	if err != nil {
		return nil, err
	}
	if fh.RemainingLength == 3 {
		return pkt, nil
	}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalAckReasonProperties)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodePublishAck appends the PUBACK packet's full wire representation to
// dst.
func EncodePublishAck(dst []byte, pkt *PublishAck) ([]byte, error) {
	body, err := encodeAckBody(nil, pkt.PacketID, byte(pkt.Reason), pkt.Properties)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, PUBACK, 0, body)
}

// PublishReceived acknowledges the first stage of a QoS 2 exchange.
type PublishReceived struct {
	PacketID   uint16
	Reason     PublishReceivedReason
	Properties []wire.Property
}

// DecodePublishReceived parses a PUBREC packet body from c.
func DecodePublishReceived(fh FixedHeader, c *wire.Cursor) (*PublishReceived, error) {
	pkt := &PublishReceived{Reason: PublishReceivedSuccess}
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	pkt.PacketID = id
	if fh.RemainingLength == 2 {
		return pkt, nil
	}
	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	pkt.Reason, err = ParsePublishReceivedReason(b)
	if err != nil {
		return nil, err
	}
	if fh.RemainingLength == 3 {
		return pkt, nil
	}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalAckReasonProperties)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodePublishReceived appends the PUBREC packet's full wire
// representation to dst.
func EncodePublishReceived(dst []byte, pkt *PublishReceived) ([]byte, error) {
	body, err := encodeAckBody(nil, pkt.PacketID, byte(pkt.Reason), pkt.Properties)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, PUBREC, 0, body)
}

// PublishRelease is PUBREL, the second stage of a QoS 2 exchange.
type PublishRelease struct {
	PacketID   uint16
	Reason     PublishReleaseReason
	Properties []wire.Property
}

// DecodePublishRelease parses a PUBREL packet body from c. PUBREL's flag
// nibble is fixed at 0b0010 by the protocol but, per this repository's
// Open Question #3 decision, that reserved pattern is not enforced here.
func DecodePublishRelease(fh FixedHeader, c *wire.Cursor) (*PublishRelease, error) {
	pkt := &PublishRelease{Reason: PublishReleaseSuccess}
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	pkt.PacketID = id
	if fh.RemainingLength == 2 {
		return pkt, nil
	}
	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	pkt.Reason, err = ParsePublishReleaseReason(b)
	if err != nil {
		return nil, err
	}
	if fh.RemainingLength == 3 {
		return pkt, nil
	}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalAckReasonProperties)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodePublishRelease appends the PUBREL packet's full wire
// representation to dst.
func EncodePublishRelease(dst []byte, pkt *PublishRelease) ([]byte, error) {
	body, err := encodeAckBody(nil, pkt.PacketID, byte(pkt.Reason), pkt.Properties)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, PUBREL, 0x02, body)
}

// PublishComplete is PUBCOMP, the final stage of a QoS 2 exchange.
type PublishComplete struct {
	PacketID   uint16
	Reason     PublishCompleteReason
	Properties []wire.Property
}

// DecodePublishComplete parses a PUBCOMP packet body from c.
func DecodePublishComplete(fh FixedHeader, c *wire.Cursor) (*PublishComplete, error) {
	pkt := &PublishComplete{Reason: PublishCompleteSuccess}
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	pkt.PacketID = id
	if fh.RemainingLength == 2 {
		return pkt, nil
	}
	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	pkt.Reason, err = ParsePublishCompleteReason(b)
	if err != nil {
		return nil, err
	}
	if fh.RemainingLength == 3 {
		return pkt, nil
	}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalAckReasonProperties)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodePublishComplete appends the PUBCOMP packet's full wire
// representation to dst.
func EncodePublishComplete(dst []byte, pkt *PublishComplete) ([]byte, error) {
	body, err := encodeAckBody(nil, pkt.PacketID, byte(pkt.Reason), pkt.Properties)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, PUBCOMP, 0, body)
}

func encodeAckBody(dst []byte, packetID uint16, reason byte, props []wire.Property) ([]byte, error) {
	dst = appendUint16(dst, packetID)
	if reason == 0 && len(props) == 0 {
		return dst, nil
	}
	dst = append(dst, reason)
	if len(props) == 0 {
		return dst, nil
	}
	return wire.EncodeProperties(dst, props)
}
