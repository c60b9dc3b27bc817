package reserve

import (
	"github.com/tilekit/tilekit/internal/geom"
)

// rank scores one packing candidate for need outstanding blocks. The number
// of areas still needed to reach the target dominates the score, so a
// candidate that covers the remaining count in fewer areas always wins;
// pixel density breaks ties within the same area count. An empty candidate
// scores zero and loses to anything that placed a block.
//
// The density term weighs an NV12 pair as 1.5 block widths, the combined
// footprint of an 8-bit block and its half-width 16-bit companion.
func rank(n, w, area, need int) uint32 {
	if n == 0 || area == 0 {
		return 0
	}
	return 0x10000000 -
		uint32(geom.CeilDiv(need, n)*area*32) +
		uint32(1024*n*((w*3+1)>>1)/area)
}
