package skiff

import (
	"math"
	"testing"
)

func TestSumF64_SkipsNulls(t *testing.T) {
	data := []float64{1.0, math.NaN(), 2.5, math.NaN(), -0.5}
	if got := SumF64(data); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("SumF64 = %v, want 3.0", got)
	}
	if got := SumF64(nil); got != 0.0 {
		t.Errorf("SumF64(nil) = %v, want 0", got)
	}
	if got := SumF64([]float64{math.NaN(), math.NaN()}); got != 0.0 {
		t.Errorf("SumF64 all-null = %v, want 0", got)
	}
}

func TestCountNonNullF64(t *testing.T) {
	data := []float64{1, math.NaN(), 3, math.NaN()}
	if got := CountNonNullF64(data); got != 2 {
		t.Errorf("CountNonNullF64 = %d, want 2", got)
	}
	if got := CountNonNullF64(nil); got != 0 {
		t.Errorf("CountNonNullF64(nil) = %d, want 0", got)
	}
}

func TestMeanF64_MatchesSumOverCount(t *testing.T) {
	data := []float64{2, math.NaN(), 4, 9, math.NaN()}

	mean := MeanF64(data)
	want := SumF64(data) / float64(CountNonNullF64(data))
	if math.Abs(mean-want) > 1e-9 {
		t.Errorf("MeanF64 = %v, want sum/count = %v", mean, want)
	}
	if got := MeanF64([]float64{math.NaN()}); !math.IsNaN(got) {
		t.Errorf("MeanF64 all-null = %v, want NaN", got)
	}
	if got := MeanF64(nil); !math.IsNaN(got) {
		t.Errorf("MeanF64(nil) = %v, want NaN", got)
	}
}

func TestMinMaxF64_SkipNulls(t *testing.T) {
	data := []float64{3.5, math.NaN(), -2.0, 7.25}
	if got := MinF64(data); got != -2.0 {
		t.Errorf("MinF64 = %v, want -2.0", got)
	}
	if got := MaxF64(data); got != 7.25 {
		t.Errorf("MaxF64 = %v, want 7.25", got)
	}
}

func TestMinMaxF64_AllNull(t *testing.T) {
	data := []float64{math.NaN(), math.NaN()}
	if got := MinF64(data); !math.IsNaN(got) {
		t.Errorf("MinF64 all-null = %v, want NaN", got)
	}
	if got := MaxF64(data); !math.IsNaN(got) {
		t.Errorf("MaxF64 all-null = %v, want NaN", got)
	}
	if got := MinF64(nil); !math.IsNaN(got) {
		t.Errorf("MinF64(nil) = %v, want NaN", got)
	}
}

func TestStdF64_SampleDeviation(t *testing.T) {
	// Sample std of {2, 4, 4, 4, 5, 5, 7, 9} is sqrt(32/7).
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	want := math.Sqrt(32.0 / 7.0)
	if got := StdF64(data); math.Abs(got-want) > 1e-9 {
		t.Errorf("StdF64 = %v, want %v", got, want)
	}
}

func TestStdF64_DegenerateCounts(t *testing.T) {
	if got := StdF64([]float64{5.0}); got != 0.0 {
		t.Errorf("StdF64 single value = %v, want 0", got)
	}
	if got := StdF64([]float64{5.0, math.NaN()}); got != 0.0 {
		t.Errorf("StdF64 single non-null = %v, want 0", got)
	}
	if got := StdF64(nil); !math.IsNaN(got) {
		t.Errorf("StdF64(nil) = %v, want NaN", got)
	}
	if got := StdF64([]float64{math.NaN()}); !math.IsNaN(got) {
		t.Errorf("StdF64 all-null = %v, want NaN", got)
	}
}
