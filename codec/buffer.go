package codec

// Buffer is a growable byte buffer that accumulates inbound bytes across
// however many reads it takes to assemble a complete frame. It is not
// safe for concurrent use: a decode call borrows the buffer for its
// duration and only mutates it on success, draining exactly the prefix
// the frame driver consumed.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends p to the buffer.
func (b *Buffer) Write(p []byte) {
	b.data = append(b.data, p...)
}

// Bytes returns the buffer's unconsumed contents. The returned slice
// aliases the buffer's backing array and is invalidated by the next
// Write or Drain.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of unconsumed bytes currently buffered.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Drain removes the first n bytes from the buffer. It panics if n
// exceeds Len, which would indicate a frame driver bug rather than a
// malformed frame.
func (b *Buffer) Drain(n int) {
	if n > len(b.data) {
		panic("codec: Drain n exceeds buffered length")
	}
	remaining := len(b.data) - n
	copy(b.data, b.data[n:])
	b.data = b.data[:remaining]
}
