package packet

import (
	"testing"

	"github.com/mqtt5x/codec/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingRequestRoundTrip(t *testing.T) {
	encoded, err := EncodePingRequest(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC0, 0x00}, encoded)

	c := wire.NewCursor(encoded)
	fh, err := DecodeFixedHeader(c)
	require.NoError(t, err)
	_, err = DecodePingRequest(fh, wire.NewCursor(nil))
	require.NoError(t, err)
}

func TestPingRequestRejectsNonEmptyBody(t *testing.T) {
	fh := FixedHeader{Type: PINGREQ, RemainingLength: 1}
	_, err := DecodePingRequest(fh, wire.NewCursor([]byte{0x00}))
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestConnectAckRoundTrip(t *testing.T) {
	pkt := &ConnectAck{SessionPresent: true, Reason: ConnectSuccess}
	encoded, err := EncodeConnectAck(nil, pkt)
	require.NoError(t, err)

	c := wire.NewCursor(encoded)
	fh, err := DecodeFixedHeader(c)
	require.NoError(t, err)
	body, err := c.Take(int(fh.RemainingLength))
	require.NoError(t, err)

	got, err := DecodeConnectAck(wire.NewCursor(body))
	require.NoError(t, err)
	assert.Equal(t, pkt, got)
}

func TestDisconnectEmptyBodyDefaultsToNormal(t *testing.T) {
	fh := FixedHeader{Type: DISCONNECT, RemainingLength: 0}
	got, err := DecodeDisconnect(fh, wire.NewCursor(nil))
	require.NoError(t, err)
	assert.Equal(t, &Disconnect{Reason: DisconnectNormalDisconnection}, got)
}

func TestDisconnectRoundTripWithReasonOnly(t *testing.T) {
	pkt := &Disconnect{Reason: DisconnectServerBusy}
	encoded, err := EncodeDisconnect(nil, pkt)
	require.NoError(t, err)

	c := wire.NewCursor(encoded)
	fh, err := DecodeFixedHeader(c)
	require.NoError(t, err)
	body, err := c.Take(int(fh.RemainingLength))
	require.NoError(t, err)

	got, err := DecodeDisconnect(fh, wire.NewCursor(body))
	require.NoError(t, err)
	assert.Equal(t, pkt, got)
}

func TestAuthenticateEmptyBodyDefaultsToSuccess(t *testing.T) {
	fh := FixedHeader{Type: AUTH, RemainingLength: 0}
	got, err := DecodeAuthenticate(fh, wire.NewCursor(nil))
	require.NoError(t, err)
	assert.Equal(t, &Authenticate{Reason: AuthenticateSuccess}, got)
}

func TestUnsubscribeRoundTrip(t *testing.T) {
	pkt := &Unsubscribe{PacketID: 3, Filters: []string{"a/b", "c/d"}}
	encoded, err := EncodeUnsubscribe(nil, pkt)
	require.NoError(t, err)

	c := wire.NewCursor(encoded)
	fh, err := DecodeFixedHeader(c)
	require.NoError(t, err)
	body, err := c.Take(int(fh.RemainingLength))
	require.NoError(t, err)

	got, err := DecodeUnsubscribe(wire.NewCursor(body))
	require.NoError(t, err)
	assert.Equal(t, pkt, got)
}

func TestUnsubscribeAckRoundTrip(t *testing.T) {
	pkt := &UnsubscribeAck{PacketID: 3, Reasons: []UnsubscribeAckReason{UnsubscribeAckSuccess, UnsubscribeAckNoSubscriptionExisted}}
	encoded, err := EncodeUnsubscribeAck(nil, pkt)
	require.NoError(t, err)

	c := wire.NewCursor(encoded)
	fh, err := DecodeFixedHeader(c)
	require.NoError(t, err)
	body, err := c.Take(int(fh.RemainingLength))
	require.NoError(t, err)

	got, err := DecodeUnsubscribeAck(wire.NewCursor(body))
	require.NoError(t, err)
	assert.Equal(t, pkt, got)
}
