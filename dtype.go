package skiff

import (
	"fmt"
	"math"
)

// DType represents the element type of an engine buffer.
//
// The engine stores only the two types the boundary layer marshals: Float64
// for value columns and Int32 for compact categorical/index columns. Wider
// type support (strings, nested types, validity bitmaps) belongs to the
// tabular layer above.
type DType uint8

const (
	Float64 DType = iota
	Int32
)

// NullInt32 is the in-band null sentinel for Int32 series. Float64 series use
// NaN. Both are excluded from aggregates and honor the nullsLast sort flag.
const NullInt32 int32 = math.MinInt32

// String returns the string representation of the DType
func (d DType) String() string {
	switch d {
	case Float64:
		return "Float64"
	case Int32:
		return "Int32"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// Size returns the size in bytes of one element of the dtype
func (d DType) Size() int {
	switch d {
	case Float64:
		return 8
	case Int32:
		return 4
	default:
		return 0
	}
}
