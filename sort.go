package skiff

import (
	"math"
	"sort"
)

// Every sort entry point is a stable permutation sort over the index
// sequence 0..n. Null handling is shared by all of them: NaN (float64) and
// NullInt32 (int32) are null; two nulls compare equal; null versus non-null
// resolves by the nullsLast flag regardless of direction; non-null values
// compare numerically, and a descending column reverses only that value
// comparison, never the null placement.

// compareF64 orders a against b. Null placement depends only on nullsLast;
// the ascending flag reverses the comparison of non-null values.
func compareF64(a, b float64, ascending, nullsLast bool) int {
	aNull, bNull := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		if nullsLast {
			return 1
		}
		return -1
	case bNull:
		if nullsLast {
			return -1
		}
		return 1
	}
	var c int
	switch {
	case a < b:
		c = -1
	case a > b:
		c = 1
	}
	if !ascending {
		c = -c
	}
	return c
}

func compareI32(a, b int32, ascending, nullsLast bool) int {
	aNull, bNull := a == NullInt32, b == NullInt32
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		if nullsLast {
			return 1
		}
		return -1
	case bNull:
		if nullsLast {
			return -1
		}
		return 1
	}
	var c int
	switch {
	case a < b:
		c = -1
	case a > b:
		c = 1
	}
	if !ascending {
		c = -c
	}
	return c
}

func identityIndices(n int) []uint32 {
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}

// SortSingleColumnF64 returns the permutation that sorts data. Rows that
// compare equal (including two nulls) retain their original relative order.
func SortSingleColumnF64(data []float64, ascending, nullsLast bool) []uint32 {
	idx := identityIndices(len(data))
	sort.SliceStable(idx, func(i, j int) bool {
		return compareF64(data[idx[i]], data[idx[j]], ascending, nullsLast) < 0
	})
	return idx
}

// SortSingleColumnI32 returns the permutation that sorts data, with
// NullInt32 as the null sentinel.
func SortSingleColumnI32(data []int32, ascending, nullsLast bool) []uint32 {
	idx := identityIndices(len(data))
	sort.SliceStable(idx, func(i, j int) bool {
		return compareI32(data[idx[i]], data[idx[j]], ascending, nullsLast) < 0
	})
	return idx
}

// SortTwoColumnsF64 returns the permutation that sorts by col1, breaking
// ties by col2. Each column has its own direction; the null policy is shared.
// Rows tying on both columns retain their original relative order. A length
// mismatch yields an empty slice.
func SortTwoColumnsF64(col1, col2 []float64, asc1, asc2, nullsLast bool) []uint32 {
	if len(col1) != len(col2) {
		return []uint32{}
	}
	idx := identityIndices(len(col1))
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if c := compareF64(col1[a], col1[b], asc1, nullsLast); c != 0 {
			return c < 0
		}
		return compareF64(col2[a], col2[b], asc2, nullsLast) < 0
	})
	return idx
}

// SortTwoColumnsI32 is the int32 variant of SortTwoColumnsF64.
func SortTwoColumnsI32(col1, col2 []int32, asc1, asc2, nullsLast bool) []uint32 {
	if len(col1) != len(col2) {
		return []uint32{}
	}
	idx := identityIndices(len(col1))
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if c := compareI32(col1[a], col1[b], asc1, nullsLast); c != 0 {
			return c < 0
		}
		return compareI32(col2[a], col2[b], asc2, nullsLast) < 0
	})
	return idx
}

// SortValuesF64 materializes the sorted values of h into a new registered
// series. Returns InvalidHandle if the source is absent or empty.
func (e *Engine) SortValuesF64(h Handle, ascending, nullsLast bool) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(src) == 0 {
		return InvalidHandle
	}
	idx := SortSingleColumnF64(src, ascending, nullsLast)
	out := make([]float64, len(src))
	for i, j := range idx {
		out[i] = src[j]
	}
	return e.registerF64(out)
}

// SortIndicesF64 returns the sort permutation for h without copying the
// source data. This is the preferred entry point when only an ordering is
// needed. An absent or empty source yields an empty slice.
func (e *Engine) SortIndicesF64(h Handle, ascending, nullsLast bool) []uint32 {
	src, err := e.lookupF64(h)
	if err != nil || len(src) == 0 {
		return []uint32{}
	}
	return SortSingleColumnF64(src, ascending, nullsLast)
}

// SortIndicesI32 returns the sort permutation for an int32 series.
func (e *Engine) SortIndicesI32(h Handle, ascending, nullsLast bool) []uint32 {
	src, err := e.lookupI32(h)
	if err != nil || len(src) == 0 {
		return []uint32{}
	}
	return SortSingleColumnI32(src, ascending, nullsLast)
}

// SortTwoColumnsIndicesF64 returns the permutation that sorts two registered
// float64 series as primary and secondary sort keys. Yields an empty slice
// if either source is absent, the primary is empty, or the lengths differ.
func (e *Engine) SortTwoColumnsIndicesF64(h1, h2 Handle, asc1, asc2, nullsLast bool) []uint32 {
	col1, err1 := e.lookupF64(h1)
	col2, err2 := e.lookupF64(h2)
	if err1 != nil || err2 != nil || len(col1) == 0 || len(col1) != len(col2) {
		return []uint32{}
	}
	return SortTwoColumnsF64(col1, col2, asc1, asc2, nullsLast)
}

// SortTwoColumnsIndicesI32 is the int32 variant of SortTwoColumnsIndicesF64.
func (e *Engine) SortTwoColumnsIndicesI32(h1, h2 Handle, asc1, asc2, nullsLast bool) []uint32 {
	col1, err1 := e.lookupI32(h1)
	col2, err2 := e.lookupI32(h2)
	if err1 != nil || err2 != nil || len(col1) == 0 || len(col1) != len(col2) {
		return []uint32{}
	}
	return SortTwoColumnsI32(col1, col2, asc1, asc2, nullsLast)
}
