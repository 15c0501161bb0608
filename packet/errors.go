package packet

import "errors"

// The packet package's terminal decode failures: packet type, QoS, retain
// handling, the per-kind reason codes, and CONNECT/structural errors. The
// framing and primitive failures (remaining length, UTF-8, property
// identifier and length) live in package wire. Every variant is a sentinel
// value; callers compare with errors.Is.
var (
	ErrInvalidPacketType = errors.New("packet: invalid packet type")
	ErrInvalidQoS        = errors.New("packet: invalid QoS level")
	ErrInvalidRetainHandling = errors.New("packet: invalid retain handling value")

	ErrInvalidConnectReason         = errors.New("packet: invalid CONNACK reason code")
	ErrInvalidPublishAckReason      = errors.New("packet: invalid PUBACK reason code")
	ErrInvalidPublishReceivedReason = errors.New("packet: invalid PUBREC reason code")
	ErrInvalidPublishReleaseReason  = errors.New("packet: invalid PUBREL reason code")
	ErrInvalidPublishCompleteReason = errors.New("packet: invalid PUBCOMP reason code")
	ErrInvalidSubscribeAckReason    = errors.New("packet: invalid SUBACK reason code")
	ErrInvalidUnsubscribeAckReason  = errors.New("packet: invalid UNSUBACK reason code")
	ErrInvalidDisconnectReason      = errors.New("packet: invalid DISCONNECT reason code")
	ErrInvalidAuthenticateReason    = errors.New("packet: invalid AUTH reason code")

	// ErrInvalidProtocolName/ErrInvalidProtocolLevel are CONNECT-specific
	// structural errors; the spec's taxonomy files them under the generic
	// "malformed packet" umbrella but this repository keeps them distinct
	// internally for a clearer message, while still satisfying the spec's
	// contract that they are terminal, non-Incomplete failures.
	ErrInvalidProtocolName  = errors.New("packet: CONNECT protocol name is not \"MQTT\"")
	ErrInvalidProtocolLevel = errors.New("packet: CONNECT protocol level is not 5")
	ErrMalformedPacket      = errors.New("packet: malformed packet")
)
