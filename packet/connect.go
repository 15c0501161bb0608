package packet

import "github.com/mqtt5x/codec/wire"

// ProtocolLevel5 is the only protocol level this codec accepts in a
// CONNECT packet's variable header.
const ProtocolLevel5 byte = 5

// Will carries the Last Will and Testament a client registers at connect
// time, published by the server if the client disconnects ungracefully.
type Will struct {
	Properties []wire.Property
	Topic      string
	Payload    []byte
	QoS        QoS
	Retain     bool
}

// Connect is the first packet a client sends on a new connection.
type Connect struct {
	ClientID     string
	CleanStart   bool
	KeepAlive    uint16
	Properties   []wire.Property
	Will         *Will
	Username     string
	HasUsername  bool
	Password     []byte
	HasPassword  bool
}

// DecodeConnect parses a CONNECT packet body from c, which must be bounded
// to exactly the fixed header's remaining length.
func DecodeConnect(c *wire.Cursor) (*Connect, error) {
	name, err := c.ReadUTF8String()
	if err != nil {
		return nil, err
	}
	if name != "MQTT" {
		return nil, ErrInvalidProtocolName
	}

	level, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	if level != ProtocolLevel5 {
		return nil, ErrInvalidProtocolLevel
	}

	flags, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	if flags&0x01 != 0 {
		return nil, ErrMalformedPacket
	}
	cleanStart := flags&0x02 != 0
	willFlag := flags&0x04 != 0
	willQoS := QoS((flags & 0x18) >> 3)
	willRetain := flags&0x20 != 0
	passwordFlag := flags&0x40 != 0
	usernameFlag := flags&0x80 != 0
	if !willQoS.Valid() {
		return nil, ErrInvalidQoS
	}
	if !willFlag && (willQoS != AtMostOnce || willRetain) {
		return nil, ErrMalformedPacket
	}

	keepAlive, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}

	pkt := &Connect{CleanStart: cleanStart, KeepAlive: keepAlive}

	if err := wire.DecodeProperties(c, acceptLegal(&pkt.Properties, legalConnectProperties)); err != nil {
		return nil, err
	}

	clientID, err := c.ReadUTF8String()
	if err != nil {
		return nil, err
	}
	pkt.ClientID = clientID

	if willFlag {
		will := &Will{QoS: willQoS, Retain: willRetain}
		if err := wire.DecodeProperties(c, acceptLegal(&will.Properties, legalWillProperties)); err != nil {
			return nil, err
		}
		will.Topic, err = c.ReadUTF8String()
		if err != nil {
			return nil, err
		}
		will.Payload, err = c.ReadBinary()
		if err != nil {
			return nil, err
		}
		pkt.Will = will
	}

	if usernameFlag {
		pkt.Username, err = c.ReadUTF8String()
		if err != nil {
			return nil, err
		}
		pkt.HasUsername = true
	}
	if passwordFlag {
		pkt.Password, err = c.ReadBinary()
		if err != nil {
			return nil, err
		}
		pkt.HasPassword = true
	}

	return pkt, nil
}

// EncodeConnect appends the CONNECT packet's full wire representation
// (fixed header included) to dst.
func EncodeConnect(dst []byte, pkt *Connect) ([]byte, error) {
	body, err := encodeConnectBody(nil, pkt)
	if err != nil {
		return nil, err
	}
	return appendFrame(dst, CONNECT, 0, body)
}

func encodeConnectBody(dst []byte, pkt *Connect) ([]byte, error) {
	dst = appendMQTTString(dst, "MQTT")
	dst = append(dst, ProtocolLevel5)

	var flags byte
	if pkt.CleanStart {
		flags |= 0x02
	}
	if pkt.Will != nil {
		flags |= 0x04
		flags |= byte(pkt.Will.QoS) << 3
		if pkt.Will.Retain {
			flags |= 0x20
		}
	}
	if pkt.HasPassword {
		flags |= 0x40
	}
	if pkt.HasUsername {
		flags |= 0x80
	}
	dst = append(dst, flags)
	dst = append(dst, byte(pkt.KeepAlive>>8), byte(pkt.KeepAlive))

	var err error
	dst, err = wire.EncodeProperties(dst, pkt.Properties)
	if err != nil {
		return nil, err
	}
	dst = appendMQTTString(dst, pkt.ClientID)

	if pkt.Will != nil {
		dst, err = wire.EncodeProperties(dst, pkt.Will.Properties)
		if err != nil {
			return nil, err
		}
		dst = appendMQTTString(dst, pkt.Will.Topic)
		dst = appendMQTTBinary(dst, pkt.Will.Payload)
	}
	if pkt.HasUsername {
		dst = appendMQTTString(dst, pkt.Username)
	}
	if pkt.HasPassword {
		dst = appendMQTTBinary(dst, pkt.Password)
	}
	return dst, nil
}
