package packet

import "github.com/mqtt5x/codec/wire"

// ConnectAck is the server's reply to a CONNECT.
type ConnectAck struct {
	SessionPresent bool
	Reason         ConnectReason
	Properties     []wire.Property
}

// DecodeConnectAck parses a CONNACK packet body from c.
func DecodeConnectAck(c *wire.Cursor) (*ConnectAck, error) {
	flags, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	if flags&0xFE != 0 {
		return nil, ErrMalformedPacket
	}

	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	reason, err := ParseConnectReason(b)
	if err != nil {
		return nil, err
	}

	pkt := &ConnectAck{SessionPresent: flags&0x01 != 0, Reason: reason}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalConnectAckProperties)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodeConnectAck appends the CONNACK packet's full wire representation
// to dst.
func EncodeConnectAck(dst []byte, pkt *ConnectAck) ([]byte, error) {
	var body []byte
	var flags byte
	if pkt.SessionPresent {
		flags = 0x01
	}
	body = append(body, flags, byte(pkt.Reason))
	var err error
	body, err = wire.EncodeProperties(body, pkt.Properties)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, CONNACK, 0, body)
}
