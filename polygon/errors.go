package polygon

import "errors"

// ErrDegenerateLoop is returned when a raw point loop has fewer than three
// distinct vertices and cannot describe a ring.
var ErrDegenerateLoop = errors.New("polygon: loop has fewer than three distinct points")

// ErrOffsetCollapsed is returned by Offset when every edge of the input ring
// collapses to a point under the requested distance (e.g. shrinking a ring
// past its own width).
var ErrOffsetCollapsed = errors.New("polygon: offset distance collapses the ring")
