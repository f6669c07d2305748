package skiff

import "math"

// Direct statistics kernels. These operate on caller-provided slices with no
// registry involvement and treat NaN elements as null. The by-handle
// reductions in series.go and the group-by accumulators reuse them, so the
// two surfaces agree numerically for the same input.

// SumF64 returns the sum of all non-null values. An empty or all-null slice
// sums to 0.
func SumF64(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// CountNonNullF64 returns the number of non-null values.
func CountNonNullF64(data []float64) int {
	count := 0
	for _, v := range data {
		if !math.IsNaN(v) {
			count++
		}
	}
	return count
}

// MeanF64 returns the mean of all non-null values, or NaN if there are none.
func MeanF64(data []float64) float64 {
	sum := 0.0
	count := 0
	for _, v := range data {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// MinF64 returns the minimum non-null value, or NaN if there are none.
func MinF64(data []float64) float64 {
	m := math.Inf(1)
	seen := false
	for _, v := range data {
		if !math.IsNaN(v) {
			if v < m {
				m = v
			}
			seen = true
		}
	}
	if !seen {
		return math.NaN()
	}
	return m
}

// MaxF64 returns the maximum non-null value, or NaN if there are none.
func MaxF64(data []float64) float64 {
	m := math.Inf(-1)
	seen := false
	for _, v := range data {
		if !math.IsNaN(v) {
			if v > m {
				m = v
			}
			seen = true
		}
	}
	if !seen {
		return math.NaN()
	}
	return m
}

// StdF64 returns the sample standard deviation (N-1 denominator) of the
// non-null values: NaN with zero non-null values, 0 with exactly one.
func StdF64(data []float64) float64 {
	mean, count := meanAndCount(data)
	if count == 0 {
		return math.NaN()
	}
	if count == 1 {
		return 0.0
	}
	sumsq := 0.0
	for _, v := range data {
		if !math.IsNaN(v) {
			d := v - mean
			sumsq += d * d
		}
	}
	return math.Sqrt(sumsq / float64(count-1))
}

func meanAndCount(data []float64) (float64, int) {
	sum := 0.0
	count := 0
	for _, v := range data {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return math.NaN(), 0
	}
	return sum / float64(count), count
}
