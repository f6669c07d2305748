package skiff

import "math"

// defaultIsInTolerance is used by IsInF64 when the caller supplies a
// non-positive tolerance.
const defaultIsInTolerance = 1e-9

// IsInI32 reports, one boolean byte per element, whether each element of
// data occurs in values. The candidate set is hashed once, so the scan is
// O(n + m).
func IsInI32(data, values []int32) []byte {
	set := make(map[int32]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]byte, len(data))
	for i, v := range data {
		if _, ok := set[v]; ok {
			out[i] = 1
		}
	}
	return out
}

// IsInF64 reports whether each element of data is within tolerance of any
// candidate value. Exact hashing is unreliable for floats, so every element
// is tested against every candidate — O(n*m), intentionally simpler and
// slower than the integer path. A non-positive tolerance selects the
// default of 1e-9.
func IsInF64(data, values []float64, tolerance float64) []byte {
	tol := tolerance
	if tol <= 0 {
		tol = defaultIsInTolerance
	}
	out := make([]byte, len(data))
	for i, v := range data {
		for _, c := range values {
			if math.Abs(v-c) < tol {
				out[i] = 1
				break
			}
		}
	}
	return out
}

// IsInString reports whether each element of data occurs in values, using
// the same hashed-set scan as IsInI32.
func IsInString(data, values []string) []byte {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]byte, len(data))
	for i, v := range data {
		if _, ok := set[v]; ok {
			out[i] = 1
		}
	}
	return out
}
