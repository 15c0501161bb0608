package packet

import "github.com/mqtt5x/codec/wire"

// PingRequest keeps an idle connection alive; it carries no payload.
type PingRequest struct{}

// DecodePingRequest parses a PINGREQ packet body, which must be empty.
func DecodePingRequest(fh FixedHeader, c *wire.Cursor) (*PingRequest, error) {
	if fh.RemainingLength != 0 {
		return nil, ErrMalformedPacket
	}
	return &PingRequest{}, nil
}

// EncodePingRequest appends the PINGREQ packet's full wire representation
// to dst.
func EncodePingRequest(dst []byte) ([]byte, error) {
	return appendFrame(dst, PINGREQ, 0, nil)
}

// PingResponse answers a PingRequest; it carries no payload.
type PingResponse struct{}

// DecodePingResponse parses a PINGRESP packet body, which must be empty.
func DecodePingResponse(fh FixedHeader, c *wire.Cursor) (*PingResponse, error) {
	if fh.RemainingLength != 0 {
		return nil, ErrMalformedPacket
	}
	return &PingResponse{}, nil
}

// EncodePingResponse appends the PINGRESP packet's full wire
// representation to dst.
func EncodePingResponse(dst []byte) ([]byte, error) {
	return appendFrame(dst, PINGRESP, 0, nil)
}
