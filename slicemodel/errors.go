package slicemodel

import "errors"

// ErrInvalidHeightRange is returned by NewSlice when top_height does not
// exceed bottom_height.
var ErrInvalidHeightRange = errors.New("slicemodel: slice top_height must exceed bottom_height")
