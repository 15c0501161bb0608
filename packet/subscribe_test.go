package packet

import (
	"testing"

	"github.com/mqtt5x/codec/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeRoundTrip(t *testing.T) {
	pkt := &Subscribe{
		PacketID: 7,
		Subscriptions: []Subscription{
			{Filter: "a/b", QoS: AtLeastOnce, NoLocal: true, RetainHandling: SendRetainedIfNewSubscription},
			{Filter: "c/+/d", QoS: ExactlyOnce, RetainAsPublished: true, RetainHandling: DoNotSendRetained},
		},
	}
	encoded, err := EncodeSubscribe(nil, pkt)
	require.NoError(t, err)

	c := wire.NewCursor(encoded)
	fh, err := DecodeFixedHeader(c)
	require.NoError(t, err)
	body, err := c.Take(int(fh.RemainingLength))
	require.NoError(t, err)

	got, err := DecodeSubscribe(wire.NewCursor(body))
	require.NoError(t, err)
	assert.Equal(t, pkt, got)
}

func TestSubscribeRejectsReservedRetainHandling(t *testing.T) {
	body := []byte{0x00, 0x07, 0x00, 0x00, 0x01, 'a', 0x30 | byte(AtMostOnce)}
	_, err := DecodeSubscribe(wire.NewCursor(body))
	assert.ErrorIs(t, err, ErrInvalidRetainHandling)
}

func TestSubscribeAckRoundTrip(t *testing.T) {
	pkt := &SubscribeAck{
		PacketID: 7,
		Reasons:  []SubscribeAckReason{SubscribeAckGrantedQoS1, SubscribeAckTopicFilterInvalid},
	}
	encoded, err := EncodeSubscribeAck(nil, pkt)
	require.NoError(t, err)

	c := wire.NewCursor(encoded)
	fh, err := DecodeFixedHeader(c)
	require.NoError(t, err)
	body, err := c.Take(int(fh.RemainingLength))
	require.NoError(t, err)

	got, err := DecodeSubscribeAck(wire.NewCursor(body))
	require.NoError(t, err)
	assert.Equal(t, pkt, got)
}
