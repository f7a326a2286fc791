package fft

import (
	"sync"

	"github.com/cwbudde/algo-pitch/dsp/core"
)

// scratchBuf holds pooled working memory for a single transform stage.
type scratchBuf struct {
	data []Complex
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) *scratchBuf {
	buf := scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, n)
	return buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
