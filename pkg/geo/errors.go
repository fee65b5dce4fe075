package geo

import "errors"

// ErrInvalidBBox is returned when a bounding box string is malformed or
// violates the min<max ordering invariant.
var ErrInvalidBBox = errors.New("invalid bbox")
