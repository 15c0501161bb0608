// Package codec implements the MQTT 5.0 frame driver: decode assembles
// one complete control packet from a resumable byte Buffer, and encode
// is its structural inverse. Both are thin dispatchers over package
// packet's per-kind grammars and package wire's scalar primitives.
package codec

import (
	"github.com/mqtt5x/codec/internal/metrics"
	"github.com/mqtt5x/codec/internal/xlog"
	"github.com/mqtt5x/codec/packet"
	"github.com/mqtt5x/codec/wire"
)

type options struct {
	logger             xlog.Logger
	metrics            metrics.Collector
	maxRemainingLength uint32
}

// Option configures Decode and Encode.
type Option func(*options)

// WithLogger routes decode/encode diagnostics through l instead of the
// no-op default.
func WithLogger(l xlog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records decode/encode activity through c instead of the
// no-op default.
func WithMetrics(c metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}

// WithMaxRemainingLength rejects any frame whose declared remaining
// length exceeds max, failing closed before the frame driver would
// otherwise wait indefinitely for an attacker-controlled amount of
// buffering. The default is wire.MaxVarint (no additional limit beyond
// what the VBI can represent).
func WithMaxRemainingLength(max uint32) Option {
	return func(o *options) { o.maxRemainingLength = max }
}

func newOptions(opts []Option) *options {
	o := &options{logger: xlog.Noop(), metrics: metrics.Noop(), maxRemainingLength: wire.MaxVarint}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Decode attempts to assemble one complete control packet from the front
// of buf.
//
// Three outcomes, matching this package's resumable contract: (packet,
// nil) on success, with exactly the consumed bytes drained from buf;
// (nil, nil) — Incomplete — when buf does not yet hold a full frame, with
// buf left entirely unchanged; (nil, err) — Failed — on a malformed
// frame, which is terminal for the current buffer contents.
func Decode(buf *Buffer, opts ...Option) (*packet.Packet, error) {
	o := newOptions(opts)
	data := buf.Bytes()
	c := wire.NewCursor(data)

	fh, err := packet.DecodeFixedHeader(c)
	if err != nil {
		if wire.IsIncomplete(err) {
			return nil, nil
		}
		o.metrics.ObserveDecodeError("UNKNOWN")
		o.logger.Error("decode: invalid fixed header", "error", err)
		return nil, err
	}
	if fh.RemainingLength > o.maxRemainingLength {
		o.metrics.ObserveDecodeError(fh.Type.String())
		return nil, wire.ErrVariableByteIntegerTooLarge
	}

	headerLen := c.Pos()
	if c.Remaining() < int(fh.RemainingLength) {
		return nil, nil
	}

	body, err := c.Take(int(fh.RemainingLength))
	if err != nil {
		return nil, nil
	}
	bc := wire.NewCursor(body)

	value, err := decodeBody(fh, bc)
	if err != nil {
		if wire.IsIncomplete(err) {
			// The whole frame is buffered, so a read running past its end
			// means the body is shorter than its own fields claim.
			err = packet.ErrMalformedPacket
		}
		o.metrics.ObserveDecodeError(fh.Type.String())
		o.logger.Error("decode: malformed packet", "kind", fh.Type.String(), "error", err)
		return nil, err
	}
	if bc.Remaining() != 0 {
		o.metrics.ObserveDecodeError(fh.Type.String())
		return nil, packet.ErrMalformedPacket
	}

	consumed := headerLen + int(fh.RemainingLength)
	buf.Drain(consumed)

	o.metrics.ObserveDecoded(fh.Type.String(), consumed)
	o.logger.Debug("decode: produced packet", "kind", fh.Type.String(), "bytes", consumed)

	return &packet.Packet{Kind: fh.Type, Value: value}, nil
}

func decodeBody(fh packet.FixedHeader, bc *wire.Cursor) (interface{}, error) {
	switch fh.Type {
	case packet.CONNECT:
		return packet.DecodeConnect(bc)
	case packet.CONNACK:
		return packet.DecodeConnectAck(bc)
	case packet.PUBLISH:
		return packet.DecodePublish(fh, bc)
	case packet.PUBACK:
		return packet.DecodePublishAck(fh, bc)
	case packet.PUBREC:
		return packet.DecodePublishReceived(fh, bc)
	case packet.PUBREL:
		return packet.DecodePublishRelease(fh, bc)
	case packet.PUBCOMP:
		return packet.DecodePublishComplete(fh, bc)
	case packet.SUBSCRIBE:
		return packet.DecodeSubscribe(bc)
	case packet.SUBACK:
		return packet.DecodeSubscribeAck(bc)
	case packet.UNSUBSCRIBE:
		return packet.DecodeUnsubscribe(bc)
	case packet.UNSUBACK:
		return packet.DecodeUnsubscribeAck(bc)
	case packet.PINGREQ:
		return packet.DecodePingRequest(fh, bc)
	case packet.PINGRESP:
		return packet.DecodePingResponse(fh, bc)
	case packet.DISCONNECT:
		return packet.DecodeDisconnect(fh, bc)
	case packet.AUTH:
		return packet.DecodeAuthenticate(fh, bc)
	default:
		return nil, packet.ErrInvalidPacketType
	}
}

// Encode appends p's full wire representation to buf. It is the
// structural inverse of Decode: for any packet Decode can produce,
// Encode followed by Decode reconstructs an equal value.
func Encode(p packet.Packet, buf *Buffer, opts ...Option) error {
	o := newOptions(opts)
	dst, err := encodeValue(p)
	if err != nil {
		o.logger.Error("encode: failed", "kind", p.Kind.String(), "error", err)
		return err
	}
	buf.Write(dst)
	o.metrics.ObserveEncoded(p.Kind.String(), len(dst))
	o.logger.Debug("encode: wrote packet", "kind", p.Kind.String(), "bytes", len(dst))
	return nil
}

func encodeValue(p packet.Packet) ([]byte, error) {
	switch v := p.Value.(type) {
	case *packet.Connect:
		return packet.EncodeConnect(nil, v)
	case *packet.ConnectAck:
		return packet.EncodeConnectAck(nil, v)
	case *packet.Publish:
		return packet.EncodePublish(nil, v)
	case *packet.PublishAck:
		return packet.EncodePublishAck(nil, v)
	case *packet.PublishReceived:
		return packet.EncodePublishReceived(nil, v)
	case *packet.PublishRelease:
		return packet.EncodePublishRelease(nil, v)
	case *packet.PublishComplete:
		return packet.EncodePublishComplete(nil, v)
	case *packet.Subscribe:
		return packet.EncodeSubscribe(nil, v)
	case *packet.SubscribeAck:
		return packet.EncodeSubscribeAck(nil, v)
	case *packet.Unsubscribe:
		return packet.EncodeUnsubscribe(nil, v)
	case *packet.UnsubscribeAck:
		return packet.EncodeUnsubscribeAck(nil, v)
	case *packet.PingRequest:
		return packet.EncodePingRequest(nil)
	case *packet.PingResponse:
		return packet.EncodePingResponse(nil)
	case *packet.Disconnect:
		return packet.EncodeDisconnect(nil, v)
	case *packet.Authenticate:
		return packet.EncodeAuthenticate(nil, v)
	default:
		return nil, packet.ErrInvalidPacketType
	}
}
