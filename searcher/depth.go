package searcher

import "math"

// OptimalDepth picks the search depth for a position with the given total
// mobility (both players' queen destinations summed) on a board of numVertices
// cells. The fewer continuations the position has, the deeper the search goes.
// The result never decreases as mobility decreases and is at least 1.
func OptimalDepth(numVertices uint, mobility int, bias float64) int {
	if mobility < 1 {
		mobility = 1
	}
	depth := int(math.Round(bias + float64(numVertices)/float64(mobility)))
	return max(depth, 1)
}
