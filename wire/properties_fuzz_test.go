package wire

import "testing"

func FuzzDecodeProperties(f *testing.F) {
	seed, _ := EncodeProperties(nil, []Property{
		{ID: PropPayloadFormatIndicator, Value: byte(1)},
		{ID: PropContentType, Value: "text/plain"},
	})
	f.Add(seed)
	f.Add([]byte{0x00})
	f.Add([]byte{0x02, 0x7F, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		c := NewCursor(data)
		start := c.Pos()
		err := DecodeProperties(c, func(Property) {})
		if err != nil {
			if IsIncomplete(err) && c.Pos() != start {
				t.Fatalf("Incomplete must leave the cursor untouched: started at %d, now at %d", start, c.Pos())
			}
			return
		}
		if c.Pos() < start {
			t.Fatalf("cursor position moved backward")
		}
	})
}
