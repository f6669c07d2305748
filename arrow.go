package skiff

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Arrow interchange for the boundary layer. Engine buffers carry nulls
// in-band (NaN for float64, NullInt32 for int32); Arrow carries them in a
// validity bitmap. These conversions translate between the two. Unlike the
// handle-returning operators, this surface is caller-side Go API and reports
// failures as errors rather than sentinels.

// CreateSeriesFromArrowF64 copies an Arrow float64 array into a new
// registered series, mapping nulls to NaN.
func (e *Engine) CreateSeriesFromArrowF64(arr *array.Float64) Handle {
	buf := make([]float64, arr.Len())
	for i := range buf {
		if arr.IsNull(i) {
			buf[i] = math.NaN()
		} else {
			buf[i] = arr.Value(i)
		}
	}
	return e.registerF64(buf)
}

// CreateSeriesFromArrowI32 copies an Arrow int32 array into a new registered
// series, mapping nulls to NullInt32.
func (e *Engine) CreateSeriesFromArrowI32(arr *array.Int32) Handle {
	buf := make([]int32, arr.Len())
	for i := range buf {
		if arr.IsNull(i) {
			buf[i] = NullInt32
		} else {
			buf[i] = arr.Value(i)
		}
	}
	return e.registerI32(buf)
}

// ToArrowF64 materializes a registered float64 series as an Arrow array,
// mapping NaN to null. The caller is responsible for calling Release() on
// the returned array. Passing a nil allocator selects the default.
func (e *Engine) ToArrowF64(h Handle, mem memory.Allocator) (*array.Float64, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	buf, err := e.lookupF64(h)
	if err != nil {
		return nil, fmt.Errorf("series %d: %w", h, err)
	}
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	for _, v := range buf {
		if math.IsNaN(v) {
			b.AppendNull()
		} else {
			b.Append(v)
		}
	}
	return b.NewFloat64Array(), nil
}

// ToArrowI32 materializes a registered int32 series as an Arrow array,
// mapping NullInt32 to null. The caller is responsible for calling Release()
// on the returned array.
func (e *Engine) ToArrowI32(h Handle, mem memory.Allocator) (*array.Int32, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	buf, err := e.lookupI32(h)
	if err != nil {
		return nil, fmt.Errorf("series %d: %w", h, err)
	}
	b := array.NewInt32Builder(mem)
	defer b.Release()
	for _, v := range buf {
		if v == NullInt32 {
			b.AppendNull()
		} else {
			b.Append(v)
		}
	}
	return b.NewInt32Array(), nil
}
