package packet

import "github.com/mqtt5x/codec/wire"

// Subscription is one topic filter within a SUBSCRIBE packet, together
// with the options byte that governs how the server handles it.
type Subscription struct {
	Filter            string
	QoS               QoS
	NoLocal           bool
	RetainAsPublished bool
	RetainHandling    RetainHandling
}

// Subscribe asks the server to establish one or more subscriptions.
type Subscribe struct {
	PacketID      uint16
	Properties    []wire.Property
	Subscriptions []Subscription
}

// DecodeSubscribe parses a SUBSCRIBE packet body from c, which must be
// bounded to exactly the fixed header's remaining length.
func DecodeSubscribe(c *wire.Cursor) (*Subscribe, error) {
	id, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, ErrMalformedPacket
	}

	pkt := &Subscribe{PacketID: id}
	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalSubscribeProperties)); err != nil {
		return nil, err
	}

	for c.Remaining() > 0 {
		filter, err := c.ReadUTF8String()
		if err != nil {
			return nil, err
		}
		options, err := c.ReadByte()
		if err != nil {
			return nil, err
		}
		if options&0xC0 != 0 {
			return nil, ErrMalformedPacket
		}
		qos := QoS(options & 0x03)
		if !qos.Valid() {
			return nil, ErrInvalidQoS
		}
		rh := RetainHandling((options & 0x30) >> 4)
		if !rh.Valid() {
			return nil, ErrInvalidRetainHandling
		}
		pkt.Subscriptions = append(pkt.Subscriptions, Subscription{
			Filter:            filter,
			QoS:               qos,
			NoLocal:           options&0x04 != 0,
			RetainAsPublished: options&0x08 != 0,
			RetainHandling:    rh,
		})
	}
	if len(pkt.Subscriptions) == 0 {
		return nil, ErrMalformedPacket
	}

	return pkt, nil
}

// EncodeSubscribe appends the SUBSCRIBE packet's full wire representation
// to dst.
func EncodeSubscribe(dst []byte, pkt *Subscribe) ([]byte, error) {
	var body []byte
	body = appendUint16(body, pkt.PacketID)
	var err error
	body, err = wire.EncodeProperties(body, pkt.Properties)
	if err != nil {
		return nil, err
	}
	for _, sub := range pkt.Subscriptions {
		body = appendMQTTString(body, sub.Filter)
		options := byte(sub.QoS) | byte(sub.RetainHandling)<<4
		if sub.NoLocal {
			options |= 0x04
		}
		if sub.RetainAsPublished {
			options |= 0x08
		}
		body = append(body, options)
	}
	return appendFrame(dst, SUBSCRIBE, 0x02, body)
}
