package pool

import "sync"

var bufferPool sync.Pool

// GetBuffer returns a zeroed byte slice of length size from the pool.
//
// Return back the buffer to the pool with PutBuffer.
func GetBuffer(size int) []byte {
	if v := bufferPool.Get(); v != nil {
		bp, _ := v.(*[]byte) // Type assertion is safe here since we only put *[]byte into the pool
		if cap(*bp) >= size {
			buf := (*bp)[:size]
			clear(buf)
			return buf
		}
		// too small for this request, let the GC have it
	}

	return make([]byte, size)
}

// PutBuffer returns buf to the pool.
//
// buf cannot be accessed after returning to the pool.
func PutBuffer(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:0]
	bufferPool.Put(&buf)
}
