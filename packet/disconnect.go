package packet

import "github.com/mqtt5x/codec/wire"

// Disconnect ends a connection gracefully or reports why it is about to
// be dropped, in either direction.
type Disconnect struct {
	Reason     DisconnectReason
	Properties []wire.Property
}

// DecodeDisconnect parses a DISCONNECT packet body from c. An empty body
// defaults to NormalDisconnection with no properties, per MQTT 5.0's
// omission rule for DISCONNECT and AUTH.
func DecodeDisconnect(fh FixedHeader, c *wire.Cursor) (*Disconnect, error) {
	pkt := &Disconnect{Reason: DisconnectNormalDisconnection}
	if fh.RemainingLength == 0 {
		return pkt, nil
	}

	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	pkt.Reason, err = ParseDisconnectReason(b)
	if err != nil {
		return nil, err
	}
	if fh.RemainingLength == 1 {
		return pkt, nil
	}

	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalDisconnectProperties)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodeDisconnect appends the DISCONNECT packet's full wire
// representation to dst.
func EncodeDisconnect(dst []byte, pkt *Disconnect) ([]byte, error) {
	if pkt.Reason == DisconnectNormalDisconnection && len(pkt.Properties) == 0 {
		return appendFrame(dst, DISCONNECT, 0, nil)
	}
	body := []byte{byte(pkt.Reason)}
	var err error
	body, err = wire.EncodeProperties(body, pkt.Properties)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, DISCONNECT, 0, body)
}
