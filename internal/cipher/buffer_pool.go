package cipher

import (
	"sync"
)

const chunkSize = 64 * 1024 // 64KiB per read

// bufferPool provides reusable chunk buffers for Transform.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, chunkSize)

		return &buf
	},
}
