package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVarint(t *testing.T) {
	tests := []struct {
		name     string
		input    uint32
		expected []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"max_single_byte", 127, []byte{0x7F}},
		{"min_two_byte", 128, []byte{0x80, 0x01}},
		{"max_two_byte", 16383, []byte{0xFF, 0x7F}},
		{"min_three_byte", 16384, []byte{0x80, 0x80, 0x01}},
		{"max_three_byte", 2097151, []byte{0xFF, 0xFF, 0x7F}},
		{"min_four_byte", 2097152, []byte{0x80, 0x80, 0x80, 0x01}},
		{"max_four_byte", MaxVarint, []byte{0xFF, 0xFF, 0xFF, 0x7F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeVarint(nil, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, len(tt.expected), SizeVarint(tt.input))
		})
	}
}

func TestEncodeVarintOverflow(t *testing.T) {
	_, err := EncodeVarint(nil, MaxVarint+1)
	assert.ErrorIs(t, err, ErrVariableByteIntegerTooLarge)
	assert.Equal(t, 0, SizeVarint(MaxVarint+1))
}

func TestCursorReadVarintRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, MaxVarint}
	for _, v := range values {
		encoded, err := EncodeVarint(nil, v)
		require.NoError(t, err)

		c := NewCursor(encoded)
		got, err := c.ReadVarint()
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(encoded), c.Pos())
	}
}

func TestCursorReadVarintIncomplete(t *testing.T) {
	c := NewCursor([]byte{0x80, 0x80})
	_, err := c.ReadVarint()
	assert.True(t, IsIncomplete(err))
	assert.Equal(t, 0, c.Pos(), "cursor must not advance on an incomplete read")
}

func TestCursorReadVarintTooLong(t *testing.T) {
	c := NewCursor([]byte{0x80, 0x80, 0x80, 0x80, 0x01})
	_, err := c.ReadVarint()
	assert.ErrorIs(t, err, ErrInvalidRemainingLength)
}
