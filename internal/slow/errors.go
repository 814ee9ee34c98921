package slow

import "errors"

var (
	// ErrInvalidArgument reports a malformed argument: wrong rank, or an
	// axis outside the valid range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotAnArray reports that an in-place operation was handed something
	// other than a real array.
	ErrNotAnArray = errors.New("not an array")

	// ErrUnsafeCast reports a replacement value that cannot be represented
	// exactly in the array's integer element type.
	ErrUnsafeCast = errors.New("unsafe cast")
)
