package packet

import (
	"testing"

	"github.com/mqtt5x/codec/wire"
	"github.com/stretchr/testify/assert"
)

func TestDecodeFixedHeaderRejectsReservedType(t *testing.T) {
	c := wire.NewCursor([]byte{0x00, 0x00})
	_, err := DecodeFixedHeader(c)
	assert.ErrorIs(t, err, ErrInvalidPacketType)
}

func TestDecodeFixedHeaderPublishFlags(t *testing.T) {
	// PUBLISH, DUP=1, QoS=2, Retain=1 -> 0b1101 = 0xD
	c := wire.NewCursor([]byte{0x3D, 0x00})
	fh, err := DecodeFixedHeader(c)
	assert.NoError(t, err)
	assert.True(t, fh.Dup)
	assert.Equal(t, ExactlyOnce, fh.QoS)
	assert.True(t, fh.Retain)
}

func TestDecodeFixedHeaderRejectsInvalidPublishQoS(t *testing.T) {
	// PUBLISH with QoS bit pattern 3 (both QoS bits set): 0b0110 = 0x6
	c := wire.NewCursor([]byte{0x36, 0x00})
	_, err := DecodeFixedHeader(c)
	assert.ErrorIs(t, err, ErrInvalidQoS)
}

func TestDecodeFixedHeaderTruncatedRemainingLengthIsIncomplete(t *testing.T) {
	c := wire.NewCursor([]byte{0x10})
	_, err := DecodeFixedHeader(c)
	assert.True(t, wire.IsIncomplete(err))
}
