package packet

import "github.com/mqtt5x/codec/wire"

// appendFrame appends a complete fixed header (packet type in the upper
// nibble, flags in the lower nibble, Variable Byte Integer remaining
// length) followed by body to dst.
func appendFrame(dst []byte, t Type, flags byte, body []byte) ([]byte, error) {
	dst = append(dst, byte(t)<<4|flags&0x0F)
	var err error
	dst, err = wire.EncodeVarint(dst, uint32(len(body)))
	if err != nil {
		return nil, err
	}
	return append(dst, body...), nil
}

func appendMQTTString(dst []byte, s string) []byte {
	n := uint16(len(s))
	return append(append(dst, byte(n>>8), byte(n)), s...)
}

func appendMQTTBinary(dst []byte, b []byte) []byte {
	n := uint16(len(b))
	return append(append(dst, byte(n>>8), byte(n)), b...)
}

func appendUint16(dst []byte, v uint16) []byte {
	return append(dst, byte(v>>8), byte(v))
}
