// Package safe converts between integer types without silent truncation.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange reports a value that does not fit the target type.
var ErrOutOfRange = errors.New("integer out of range")

// Integer is any signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(v), nil
}
