package skiff

import "math"

// Read-only projections over registered series. All accessors treat an absent
// handle as "no data": zero-length extents, empty copies, and the zero/NaN
// scalar conventions documented on each reduction.

// DataF64 returns the engine-owned backing slice of a live float64 series,
// or nil for an absent handle. This is the zero-copy extent for the boundary
// layer: callers must not mutate it, and must not retain it across FreeSeries
// or Flush.
func (e *Engine) DataF64(h Handle) []float64 {
	buf, err := e.lookupF64(h)
	if err != nil {
		return nil
	}
	return buf
}

// DataI32 returns the engine-owned backing slice of a live int32 series, or
// nil for an absent handle. Same aliasing rules as DataF64.
func (e *Engine) DataI32(h Handle) []int32 {
	buf, err := e.lookupI32(h)
	if err != nil {
		return nil
	}
	return buf
}

// ToFloat64 materializes a copy of the series contents. An absent handle
// yields an empty slice.
func (e *Engine) ToFloat64(h Handle) []float64 {
	buf, err := e.lookupF64(h)
	if err != nil {
		return []float64{}
	}
	out := make([]float64, len(buf))
	copy(out, buf)
	return out
}

// ToInt32 materializes a copy of the series contents. An absent handle
// yields an empty slice.
func (e *Engine) ToInt32(h Handle) []int32 {
	buf, err := e.lookupI32(h)
	if err != nil {
		return []int32{}
	}
	out := make([]int32, len(buf))
	copy(out, buf)
	return out
}

// SeriesSumF64 returns the sum of the non-null elements of the series, or 0
// if the series is absent or all-null.
func (e *Engine) SeriesSumF64(h Handle) float64 {
	buf, err := e.lookupF64(h)
	if err != nil {
		return 0.0
	}
	return SumF64(buf)
}

// SeriesMeanF64 returns the mean of the non-null elements, or NaN if the
// series is absent or all-null.
func (e *Engine) SeriesMeanF64(h Handle) float64 {
	buf, err := e.lookupF64(h)
	if err != nil {
		return math.NaN()
	}
	return MeanF64(buf)
}

// SeriesStdF64 returns the sample standard deviation (N-1 denominator) of
// the non-null elements. Absent series and series with fewer than two
// non-null elements yield NaN.
func (e *Engine) SeriesStdF64(h Handle) float64 {
	buf, err := e.lookupF64(h)
	if err != nil {
		return math.NaN()
	}
	if CountNonNullF64(buf) < 2 {
		return math.NaN()
	}
	return StdF64(buf)
}

// SeriesMinF64 returns the minimum non-null element, or NaN if the series is
// absent or all-null.
func (e *Engine) SeriesMinF64(h Handle) float64 {
	buf, err := e.lookupF64(h)
	if err != nil {
		return math.NaN()
	}
	return MinF64(buf)
}

// SeriesMaxF64 returns the maximum non-null element, or NaN if the series is
// absent or all-null.
func (e *Engine) SeriesMaxF64(h Handle) float64 {
	buf, err := e.lookupF64(h)
	if err != nil {
		return math.NaN()
	}
	return MaxF64(buf)
}

// SeriesCountF64 returns the number of non-null elements, or 0 if the series
// is absent.
func (e *Engine) SeriesCountF64(h Handle) int {
	buf, err := e.lookupF64(h)
	if err != nil {
		return 0
	}
	return CountNonNullF64(buf)
}
