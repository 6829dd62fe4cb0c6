// Package pool provides pooled byte buffers for envelope encoding.
package pool

import "sync"

const (
	// RecordBufferDefaultSize is the initial capacity of pooled buffers.
	// A few hundred segments fit without regrowth.
	RecordBufferDefaultSize = 16 * 1024
	// RecordBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers are dropped so one huge trajectory does not pin memory.
	RecordBufferMaxThreshold = 128 * 1024
)

// ByteBuffer is a reusable byte slice wrapper.
//
// The underlying slice B is exported so callers can use append-style APIs
// (such as endian.EndianEngine AppendUint64) directly and store the result
// back.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while retaining its allocation.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

var recordBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(RecordBufferDefaultSize)
	},
}

// GetRecordBuffer fetches an empty buffer from the pool.
func GetRecordBuffer() *ByteBuffer {
	bb, _ := recordBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutRecordBuffer returns a buffer to the pool, dropping oversized ones.
func PutRecordBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > RecordBufferMaxThreshold {
		return
	}
	recordBufferPool.Put(bb)
}
