package skiff

import (
	"math"
	"testing"
)

func TestGroupBySumF64_LexicographicKeyOrder(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{10, 20, 30, 40})
	keys := []string{"b", "a", "b", "a"}

	out := e.GroupBySumF64(h, keys)
	if out == InvalidHandle {
		t.Fatal("GroupBySumF64 returned InvalidHandle")
	}
	if got := e.ToFloat64(out); !nanEqual(got, []float64{60, 40}) {
		t.Errorf("sums = %v, want [60 40]", got)
	}
}

func TestGroupByMeanF64(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{10, 20, 30, 40})
	keys := []string{"b", "a", "b", "a"}

	out := e.GroupByMeanF64(h, keys)
	if got := e.ToFloat64(out); !nanEqual(got, []float64{30, 20}) {
		t.Errorf("means = %v, want [30 20]", got)
	}
}

func TestGroupByCountF64_SkipsNulls(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{10, math.NaN(), 30, 40})
	keys := []string{"b", "a", "b", "a"}

	out := e.GroupByCountF64(h, keys)
	if got := e.ToFloat64(out); !nanEqual(got, []float64{1, 2}) {
		t.Errorf("counts = %v, want [1 2]", got)
	}
}

func TestGroupByMinMaxF64(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{5, -1, 8, math.NaN(), 2})
	keys := []string{"x", "y", "x", "y", "y"}

	mins := e.GroupByMinF64(h, keys)
	if got := e.ToFloat64(mins); !nanEqual(got, []float64{5, -1}) {
		t.Errorf("mins = %v, want [5 -1]", got)
	}
	maxs := e.GroupByMaxF64(h, keys)
	if got := e.ToFloat64(maxs); !nanEqual(got, []float64{8, 2}) {
		t.Errorf("maxs = %v, want [8 2]", got)
	}
}

func TestGroupByStdVarF64(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{20, 10, 40, 30, 50})
	keys := []string{"a", "b", "a", "b", "b"}

	// Group a: {20, 40} -> var 200, std sqrt(200).
	// Group b: {10, 30, 50} -> var 400, std 20.
	vars := e.GroupByVarF64(h, keys)
	if got := e.ToFloat64(vars); len(got) != 2 ||
		math.Abs(got[0]-200) > 1e-9 || math.Abs(got[1]-400) > 1e-9 {
		t.Errorf("vars = %v, want [200 400]", got)
	}
	stds := e.GroupByStdF64(h, keys)
	if got := e.ToFloat64(stds); len(got) != 2 ||
		math.Abs(got[0]-math.Sqrt(200)) > 1e-9 || math.Abs(got[1]-20) > 1e-9 {
		t.Errorf("stds = %v, want [sqrt(200) 20]", got)
	}
}

func TestGroupByStdF64_SingleElementGroup(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{5, 1, 2})
	keys := []string{"solo", "pair", "pair"}

	out := e.GroupByStdF64(h, keys)
	got := e.ToFloat64(out)
	if len(got) != 2 {
		t.Fatalf("group count = %d, want 2", len(got))
	}
	// Lexicographic order: pair, solo.
	if math.Abs(got[0]-math.Sqrt(0.5)) > 1e-9 {
		t.Errorf("std(pair) = %v, want sqrt(0.5)", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Errorf("std(solo) = %v, want NaN", got[1])
	}
}

func TestGroupBy_AllNullGroupDiscovery(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{math.NaN(), 1})
	keys := []string{"z", "a"}

	// Sum and count discover groups from every row: the all-null group "z"
	// appears with sum 0 and count 0.
	sums := e.GroupBySumF64(h, keys)
	if got := e.ToFloat64(sums); !nanEqual(got, []float64{1, 0}) {
		t.Errorf("sums = %v, want [1 0]", got)
	}
	counts := e.GroupByCountF64(h, keys)
	if got := e.ToFloat64(counts); !nanEqual(got, []float64{1, 0}) {
		t.Errorf("counts = %v, want [1 0]", got)
	}

	// Mean discovers groups from non-null rows only: "z" is omitted.
	means := e.GroupByMeanF64(h, keys)
	if got := e.ToFloat64(means); !nanEqual(got, []float64{1}) {
		t.Errorf("means = %v, want [1]", got)
	}

	// The batched variant omits all-null groups for every aggregate,
	// including sum and count.
	handles := e.GroupByMultiF64(h, keys, AggSum|AggCount)
	if len(handles) != 2 {
		t.Fatalf("handle count = %d, want 2", len(handles))
	}
	if got := e.ToFloat64(handles[0]); !nanEqual(got, []float64{1}) {
		t.Errorf("multi sums = %v, want [1]", got)
	}
	if got := e.ToFloat64(handles[1]); !nanEqual(got, []float64{1}) {
		t.Errorf("multi counts = %v, want [1]", got)
	}
}

func TestGroupByMultiF64_AgreesWithSingleAggregates(t *testing.T) {
	e := New()
	data := []float64{10, 20, 30, 40, 50}
	keys := []string{"b", "a", "b", "a", "b"}
	h := e.CreateSeriesF64(data)

	mask := AggSum | AggMean | AggCount | AggMin | AggMax | AggStd | AggVar
	handles := e.GroupByMultiF64(h, keys, mask)
	if len(handles) != 7 {
		t.Fatalf("handle count = %d, want 7", len(handles))
	}

	singles := []Handle{
		e.GroupBySumF64(h, keys),
		e.GroupByMeanF64(h, keys),
		e.GroupByCountF64(h, keys),
		e.GroupByMinF64(h, keys),
		e.GroupByMaxF64(h, keys),
		e.GroupByStdF64(h, keys),
		e.GroupByVarF64(h, keys),
	}
	names := []string{"sum", "mean", "count", "min", "max", "std", "var"}
	for i := range handles {
		got := e.ToFloat64(handles[i])
		want := e.ToFloat64(singles[i])
		if len(got) != len(want) {
			t.Fatalf("%s length = %d, want %d", names[i], len(got), len(want))
		}
		for s := range got {
			if math.IsNaN(got[s]) && math.IsNaN(want[s]) {
				continue
			}
			if math.Abs(got[s]-want[s]) > 1e-9 {
				t.Errorf("%s[%d] = %v, want %v", names[i], s, got[s], want[s])
			}
		}
	}
}

func TestGroupByMultiF64_BitOrder(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{1, 2, 3, 4})
	keys := []string{"a", "a", "b", "b"}

	// Selection order in the mask is irrelevant: results come back in
	// ascending bit order, so sum precedes var.
	handles := e.GroupByMultiF64(h, keys, AggVar|AggSum)
	if len(handles) != 2 {
		t.Fatalf("handle count = %d, want 2", len(handles))
	}
	if got := e.ToFloat64(handles[0]); !nanEqual(got, []float64{3, 7}) {
		t.Errorf("sums = %v, want [3 7]", got)
	}
	if got := e.ToFloat64(handles[1]); len(got) != 2 ||
		math.Abs(got[0]-0.5) > 1e-9 || math.Abs(got[1]-0.5) > 1e-9 {
		t.Errorf("vars = %v, want [0.5 0.5]", got)
	}
}

func TestGroupBy_SentinelCases(t *testing.T) {
	e := New()
	h := e.CreateSeriesF64([]float64{1, 2})

	if got := e.GroupBySumF64(h, []string{"a"}); got != InvalidHandle {
		t.Errorf("key length mismatch: handle = %d, want InvalidHandle", got)
	}
	if got := e.GroupBySumF64(9999, []string{"a", "b"}); got != InvalidHandle {
		t.Errorf("absent source: handle = %d, want InvalidHandle", got)
	}
	if got := e.GroupByMultiF64(h, []string{"a"}, AggSum); got != nil {
		t.Errorf("multi key mismatch = %v, want nil", got)
	}
	if got := e.GroupByMultiF64(9999, []string{"a", "b"}, AggSum); got != nil {
		t.Errorf("multi absent source = %v, want nil", got)
	}
}
