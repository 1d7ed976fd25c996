package tower

import "sort"

// joinFragments repeatedly stitches together ring fragments whose last
// element matches another fragment's first element, in place, until no
// further joins are possible. Fragments that close into a complete cycle
// are left alone. The binary search stays valid because fragments are
// kept sorted by first element throughout, since joining only ever
// appends to a fragment's tail and never changes its head.
func joinFragments(frags []Ring) []Ring {
	if len(frags) == 0 {
		return frags
	}

	sort.Slice(frags, func(i, j int) bool { return frags[i][0].Less(frags[j][0]) })

	firstPos := len(frags) - 1
	for firstPos > 0 {
		last := frags[firstPos][len(frags[firstPos])-1]
		idx, found := searchByFirstElement(frags, last)
		switch {
		case !found:
			firstPos--
		case idx == firstPos:
			// Already a complete ring (its own last element matches its own
			// first element); nothing further to join here.
			firstPos--
		default:
			if idx < firstPos {
				firstPos--
			}
			removed := frags[idx]
			frags = append(frags[:idx], frags[idx+1:]...)
			frags[firstPos] = joinInPlace(frags[firstPos], removed)
		}
	}

	return frags
}

// searchByFirstElement finds the (unique, by construction) fragment whose
// first element equals target, using binary search over the first-element
// sort order established by joinFragments.
func searchByFirstElement(frags []Ring, target RingElement) (int, bool) {
	i := sort.Search(len(frags), func(i int) bool {
		return !frags[i][0].Less(target)
	})
	if i < len(frags) && frags[i][0].Equal(target) {
		return i, true
	}
	return 0, false
}
