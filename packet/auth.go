package packet

import "github.com/mqtt5x/codec/wire"

// Authenticate carries an enhanced-authentication exchange (AUTH),
// initiated by either party.
type Authenticate struct {
	Reason     AuthenticateReason
	Properties []wire.Property
}

// DecodeAuthenticate parses an AUTH packet body from c. An empty body
// defaults to Success with no properties, per MQTT 5.0's omission rule
// for DISCONNECT and AUTH.
func DecodeAuthenticate(fh FixedHeader, c *wire.Cursor) (*Authenticate, error) {
	pkt := &Authenticate{Reason: AuthenticateSuccess}
	if fh.RemainingLength == 0 {
		return pkt, nil
	}

	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	pkt.Reason, err = ParseAuthenticateReason(b)
	if err != nil {
		return nil, err
	}
	if fh.RemainingLength == 1 {
		return pkt, nil
	}

	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalAuthenticateProperties)); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodeAuthenticate appends the AUTH packet's full wire representation
// to dst.
func EncodeAuthenticate(dst []byte, pkt *Authenticate) ([]byte, error) {
	if pkt.Reason == AuthenticateSuccess && len(pkt.Properties) == 0 {
		return appendFrame(dst, AUTH, 0, nil)
	}
	body := []byte{byte(pkt.Reason)}
	var err error
	body, err = wire.EncodeProperties(body, pkt.Properties)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, AUTH, 0, body)
}
