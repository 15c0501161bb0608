package wire

import "testing"

func BenchmarkEncodeVarint(b *testing.B) {
	dst := make([]byte, 0, 4)
	for i := 0; i < b.N; i++ {
		dst, _ = EncodeVarint(dst[:0], 268435455)
	}
}

func BenchmarkCursorReadVarint(b *testing.B) {
	encoded, _ := EncodeVarint(nil, 16384)
	for i := 0; i < b.N; i++ {
		c := NewCursor(encoded)
		_, _ = c.ReadVarint()
	}
}
