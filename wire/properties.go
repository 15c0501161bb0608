package wire

// PropertyID identifies one of the 27 MQTT 5.0 properties (section 2.2.2.2
// / 3.3 of this repository's specification).
type PropertyID byte

const (
	PropPayloadFormatIndicator          PropertyID = 0x01
	PropMessageExpiryInterval           PropertyID = 0x02
	PropContentType                     PropertyID = 0x03
	PropResponseTopic                   PropertyID = 0x08
	PropCorrelationData                 PropertyID = 0x09
	PropSubscriptionIdentifier          PropertyID = 0x0B
	PropSessionExpiryInterval           PropertyID = 0x11
	PropAssignedClientIdentifier        PropertyID = 0x12
	PropServerKeepAlive                 PropertyID = 0x13
	PropAuthenticationMethod            PropertyID = 0x15
	PropAuthenticationData              PropertyID = 0x16
	PropRequestProblemInformation       PropertyID = 0x17
	PropWillDelayInterval                PropertyID = 0x18
	PropRequestResponseInformation      PropertyID = 0x19
	PropResponseInformation             PropertyID = 0x1A
	PropServerReference                 PropertyID = 0x1C
	PropReasonString                    PropertyID = 0x1F
	PropReceiveMaximum                  PropertyID = 0x21
	PropTopicAliasMaximum               PropertyID = 0x22
	PropTopicAlias                      PropertyID = 0x23
	PropMaximumQoS                      PropertyID = 0x24
	PropRetainAvailable                 PropertyID = 0x25
	PropUserProperty                    PropertyID = 0x26
	PropMaximumPacketSize                PropertyID = 0x27
	PropWildcardSubscriptionAvailable   PropertyID = 0x28
	PropSubscriptionIdentifierAvailable PropertyID = 0x29
	PropSharedSubscriptionAvailable     PropertyID = 0x2A
)

// kind is the wire-level payload shape of a property's value, independent
// of which packet kinds may legally carry it (that legality lives in the
// packet package's per-kind acceptors, per this repository's sink design).
type kind byte

const (
	kindByte kind = iota
	kindUint16
	kindUint32
	kindVarint
	kindString
	kindStringPair
	kindBinary
)

var propertyKinds = map[PropertyID]kind{
	PropPayloadFormatIndicator:          kindByte,
	PropMessageExpiryInterval:           kindUint32,
	PropContentType:                     kindString,
	PropResponseTopic:                   kindString,
	PropCorrelationData:                 kindBinary,
	PropSubscriptionIdentifier:          kindVarint,
	PropSessionExpiryInterval:           kindUint32,
	PropAssignedClientIdentifier:        kindString,
	PropServerKeepAlive:                 kindUint16,
	PropAuthenticationMethod:            kindString,
	PropAuthenticationData:              kindBinary,
	PropRequestProblemInformation:       kindByte,
	PropWillDelayInterval:               kindUint32,
	PropRequestResponseInformation:      kindByte,
	PropResponseInformation:             kindString,
	PropServerReference:                 kindString,
	PropReasonString:                    kindString,
	PropReceiveMaximum:                  kindUint16,
	PropTopicAliasMaximum:               kindUint16,
	PropTopicAlias:                      kindUint16,
	PropMaximumQoS:                      kindByte,
	PropRetainAvailable:                 kindByte,
	PropUserProperty:                    kindStringPair,
	PropMaximumPacketSize:               kindUint32,
	PropWildcardSubscriptionAvailable:   kindByte,
	PropSubscriptionIdentifierAvailable: kindByte,
	PropSharedSubscriptionAvailable:     kindByte,
}

// StringPair is the payload of a UserProperty: an ordered key/value pair.
// UserProperty is the only property that may appear more than once in a
// bag; every other property is at-most-once (DecodeProperties hands every
// occurrence to its acceptor; the packet package's acceptors keep the last
// one, per this repository's Open Question #1 decision).
type StringPair struct {
	Key   string
	Value string
}

// Property is one decoded (identifier, payload) pair from a property bag.
// Value holds byte, uint16, uint32, uint32 (for the VBI-typed
// SubscriptionIdentifier), string, StringPair, or []byte depending on ID.
type Property struct {
	ID    PropertyID
	Value interface{}
}

// DecodeProperties reads a Variable Byte Integer property-length L from c,
// then decodes exactly L bytes worth of (identifier, payload) pairs,
// invoking accept for each one in wire order. It fails with
// ErrInvalidPropertyID for an identifier outside the table above, and with
// ErrInvalidPropertyLength if a property's payload would read past the
// declared bag length (this repository's closed answer to the spec's
// Open Question about property-length overshoot).
//
// Legality of a given property for the enclosing packet kind is not this
// function's concern: accept is expected to silently ignore properties it
// does not recognize for its packet kind, per the spec's sink design.
func DecodeProperties(c *Cursor, accept func(Property)) error {
	start := c.pos
	length, err := c.ReadVarint()
	if err != nil {
		return err
	}
	if length == 0 {
		return nil
	}

	end := c.Pos() + int(length)
	if c.Remaining() < int(length) {
		c.pos = start
		return errIncomplete
	}

	for c.Pos() < end {
		prop, err := decodeProperty(c, end)
		if err != nil {
			if IsIncomplete(err) {
				c.pos = start
			}
			return err
		}
		accept(prop)
	}
	if c.Pos() != end {
		return ErrInvalidPropertyLength
	}
	return nil
}

func decodeProperty(c *Cursor, end int) (Property, error) {
	idByte, err := c.ReadByte()
	if err != nil {
		return Property{}, err
	}
	id := PropertyID(idByte)
	k, ok := propertyKinds[id]
	if !ok {
		return Property{}, ErrInvalidPropertyID
	}

	var value interface{}
	switch k {
	case kindByte:
		value, err = c.ReadByte()
	case kindUint16:
		value, err = c.ReadUint16()
	case kindUint32:
		value, err = c.ReadUint32()
	case kindVarint:
		value, err = c.ReadVarint()
	case kindString:
		value, err = c.ReadUTF8String()
	case kindStringPair:
		var key, val string
		key, val, err = c.ReadStringPair()
		value = StringPair{Key: key, Value: val}
	case kindBinary:
		value, err = c.ReadBinary()
	}
	if err != nil {
		return Property{}, err
	}
	if c.Pos() > end {
		return Property{}, ErrInvalidPropertyLength
	}
	return Property{ID: id, Value: value}, nil
}

// EncodeProperties appends the Variable Byte Integer length prefix and the
// wire encoding of every property in props, in order, to dst.
func EncodeProperties(dst []byte, props []Property) ([]byte, error) {
	body, err := encodePropertyBodies(nil, props)
	if err != nil {
		return nil, err
	}
	dst, err = EncodeVarint(dst, uint32(len(body)))
	if err != nil {
		return nil, err
	}
	return append(dst, body...), nil
}

// SizeProperties returns the number of bytes EncodeProperties would append
// for props, length prefix included.
func SizeProperties(props []Property) (int, error) {
	body, err := encodePropertyBodies(nil, props)
	if err != nil {
		return 0, err
	}
	return SizeVarint(uint32(len(body))) + len(body), nil
}

func encodePropertyBodies(dst []byte, props []Property) ([]byte, error) {
	var err error
	for _, p := range props {
		dst = append(dst, byte(p.ID))
		switch propertyKinds[p.ID] {
		case kindByte:
			dst = append(dst, p.Value.(byte))
		case kindUint16:
			v := p.Value.(uint16)
			dst = append(dst, byte(v>>8), byte(v))
		case kindUint32:
			v := p.Value.(uint32)
			dst = append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
		case kindVarint:
			dst, err = EncodeVarint(dst, p.Value.(uint32))
			if err != nil {
				return nil, err
			}
		case kindString:
			dst = appendUTF8String(dst, p.Value.(string))
		case kindStringPair:
			pair := p.Value.(StringPair)
			dst = appendUTF8String(dst, pair.Key)
			dst = appendUTF8String(dst, pair.Value)
		case kindBinary:
			dst = appendBinary(dst, p.Value.([]byte))
		}
	}
	return dst, nil
}

func appendUTF8String(dst []byte, s string) []byte {
	n := uint16(len(s))
	dst = append(dst, byte(n>>8), byte(n))
	return append(dst, s...)
}

func appendBinary(dst []byte, b []byte) []byte {
	n := uint16(len(b))
	dst = append(dst, byte(n>>8), byte(n))
	return append(dst, b...)
}
