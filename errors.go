package svg

import "errors"

// Sentinel errors for the svg package. Returned errors wrap one of these,
// so callers test with errors.Is.
var (
	// ErrInvalidArgument is returned when a required argument is missing
	// or malformed (nil shape, negative stroke width, wrong slice length).
	ErrInvalidArgument = errors.New("svg: invalid argument")

	// ErrDuplicateID is returned when an explicit element id has already
	// been used in the document.
	ErrDuplicateID = errors.New("svg: duplicate element id")

	// ErrGroupUnderflow is returned by EndGroup when no group is open.
	ErrGroupUnderflow = errors.New("svg: no open group")
)
