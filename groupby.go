package skiff

import (
	"math"
	"sort"
)

// Aggregate selection bits for GroupByMultiF64. Result handles are returned
// in ascending bit order.
const (
	AggSum uint32 = 1 << iota
	AggMean
	AggCount
	AggMin
	AggMax
	AggStd
	AggVar
)

// groups is the interned form of a key vector: each row maps to the output
// slot of its group, and keys holds the distinct key strings in ascending
// lexicographic order. Interning replaces per-row string bookkeeping with
// flat slice accumulators indexed by slot.
type groups struct {
	slotOf []int    // output slot per row, -1 for rows that discovered no group
	keys   []string // distinct keys, lexicographically ascending
}

func (g *groups) size() int { return len(g.keys) }

// internGroups assigns every distinct key an output slot. When nullRows is
// false, rows holding a null value do not discover groups: sum and count see
// every key in the vector, while the remaining aggregates (and the batched
// entry point) only see keys with at least one non-null row. Callers rely on
// that asymmetry, so it is pinned by tests rather than normalized away.
func internGroups(values []float64, keys []string, nullRows bool) *groups {
	index := make(map[string]int, 16)
	distinct := make([]string, 0, 16)
	slotOf := make([]int, len(keys))
	for i, k := range keys {
		if !nullRows && math.IsNaN(values[i]) {
			slotOf[i] = -1
			continue
		}
		id, ok := index[k]
		if !ok {
			id = len(distinct)
			index[k] = id
			distinct = append(distinct, k)
		}
		slotOf[i] = id
	}

	// Remap first-seen ids to lexicographic output slots.
	ids := make([]int, len(distinct))
	for i := range ids {
		ids[i] = i
	}
	sort.Slice(ids, func(a, b int) bool { return distinct[ids[a]] < distinct[ids[b]] })
	slot := make([]int, len(distinct))
	ordered := make([]string, len(distinct))
	for s, id := range ids {
		slot[id] = s
		ordered[s] = distinct[id]
	}
	for i, id := range slotOf {
		if id >= 0 {
			slotOf[i] = slot[id]
		}
	}
	return &groups{slotOf: slotOf, keys: ordered}
}

// groupMoments runs the two accumulation passes shared by std and var: per
// group non-null count and sum of squared deviations from the group mean.
func groupMoments(src []float64, keys []string) (counts []int, sumsq []float64) {
	g := internGroups(src, keys, false)
	n := g.size()
	sums := make([]float64, n)
	counts = make([]int, n)
	for i, v := range src {
		if !math.IsNaN(v) {
			s := g.slotOf[i]
			sums[s] += v
			counts[s]++
		}
	}
	means := make([]float64, n)
	for s := range means {
		means[s] = sums[s] / float64(counts[s])
	}
	sumsq = make([]float64, n)
	for i, v := range src {
		if !math.IsNaN(v) {
			s := g.slotOf[i]
			d := v - means[s]
			sumsq[s] += d * d
		}
	}
	return counts, sumsq
}

// GroupBySumF64 partitions the series by the parallel key vector and sums
// the non-null values of each group, in ascending key order. Every key in
// the vector discovers a group; a group with no non-null rows sums to 0.
// Returns InvalidHandle if the source is absent or the key vector length
// does not match the series length.
func (e *Engine) GroupBySumF64(h Handle, keys []string) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return InvalidHandle
	}
	g := internGroups(src, keys, true)
	sums := make([]float64, g.size())
	for i, v := range src {
		if !math.IsNaN(v) {
			sums[g.slotOf[i]] += v
		}
	}
	return e.registerF64(sums)
}

// GroupByMeanF64 computes the per-group mean of non-null values. Groups are
// discovered from non-null rows only.
func (e *Engine) GroupByMeanF64(h Handle, keys []string) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return InvalidHandle
	}
	g := internGroups(src, keys, false)
	n := g.size()
	sums := make([]float64, n)
	counts := make([]int, n)
	for i, v := range src {
		if !math.IsNaN(v) {
			s := g.slotOf[i]
			sums[s] += v
			counts[s]++
		}
	}
	out := make([]float64, n)
	for s := range out {
		if counts[s] > 0 {
			out[s] = sums[s] / float64(counts[s])
		} else {
			out[s] = math.NaN()
		}
	}
	return e.registerF64(out)
}

// GroupByCountF64 counts the non-null values of each group. Like sum, every
// key in the vector discovers a group, so a group with only null rows
// reports 0.
func (e *Engine) GroupByCountF64(h Handle, keys []string) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return InvalidHandle
	}
	g := internGroups(src, keys, true)
	counts := make([]float64, g.size())
	for i, v := range src {
		if !math.IsNaN(v) {
			counts[g.slotOf[i]]++
		}
	}
	return e.registerF64(counts)
}

// GroupByMinF64 computes the per-group minimum of non-null values.
func (e *Engine) GroupByMinF64(h Handle, keys []string) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return InvalidHandle
	}
	g := internGroups(src, keys, false)
	mins := newNaNSlice(g.size())
	for i, v := range src {
		if !math.IsNaN(v) {
			s := g.slotOf[i]
			if math.IsNaN(mins[s]) || v < mins[s] {
				mins[s] = v
			}
		}
	}
	return e.registerF64(mins)
}

// GroupByMaxF64 computes the per-group maximum of non-null values.
func (e *Engine) GroupByMaxF64(h Handle, keys []string) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return InvalidHandle
	}
	g := internGroups(src, keys, false)
	maxs := newNaNSlice(g.size())
	for i, v := range src {
		if !math.IsNaN(v) {
			s := g.slotOf[i]
			if math.IsNaN(maxs[s]) || v > maxs[s] {
				maxs[s] = v
			}
		}
	}
	return e.registerF64(maxs)
}

// GroupByStdF64 computes the per-group sample standard deviation (N-1
// denominator). A group with fewer than two non-null values yields NaN.
func (e *Engine) GroupByStdF64(h Handle, keys []string) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return InvalidHandle
	}
	counts, sumsq := groupMoments(src, keys)
	out := make([]float64, len(counts))
	for s := range out {
		if counts[s] > 1 {
			out[s] = math.Sqrt(sumsq[s] / float64(counts[s]-1))
		} else {
			out[s] = math.NaN()
		}
	}
	return e.registerF64(out)
}

// GroupByVarF64 computes the per-group sample variance (N-1 denominator).
// A group with fewer than two non-null values yields NaN.
func (e *Engine) GroupByVarF64(h Handle, keys []string) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return InvalidHandle
	}
	counts, sumsq := groupMoments(src, keys)
	out := make([]float64, len(counts))
	for s := range out {
		if counts[s] > 1 {
			out[s] = sumsq[s] / float64(counts[s]-1)
		} else {
			out[s] = math.NaN()
		}
	}
	return e.registerF64(out)
}

// GroupByMultiF64 computes every aggregate selected by aggMask in one
// grouping pass, maintaining only the accumulators the mask needs, and
// registers one result series per selected aggregate. Handles are returned
// in ascending bit order. Groups are discovered from non-null rows for every
// aggregate here, including sum and count. Returns an empty slice if the
// source is absent or the key vector length does not match.
func (e *Engine) GroupByMultiF64(h Handle, keys []string, aggMask uint32) []Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(keys) != len(src) {
		return nil
	}
	g := internGroups(src, keys, false)
	n := g.size()

	needSum := aggMask&(AggSum|AggMean|AggStd|AggVar) != 0
	needCount := aggMask&(AggCount|AggMean|AggStd|AggVar) != 0
	needMin := aggMask&AggMin != 0
	needMax := aggMask&AggMax != 0
	needDev := aggMask&(AggStd|AggVar) != 0

	var sums []float64
	var counts []int
	var mins, maxs []float64
	if needSum {
		sums = make([]float64, n)
	}
	if needCount {
		counts = make([]int, n)
	}
	if needMin {
		mins = newNaNSlice(n)
	}
	if needMax {
		maxs = newNaNSlice(n)
	}

	for i, v := range src {
		if math.IsNaN(v) {
			continue
		}
		s := g.slotOf[i]
		if needSum {
			sums[s] += v
		}
		if needCount {
			counts[s]++
		}
		if needMin && (math.IsNaN(mins[s]) || v < mins[s]) {
			mins[s] = v
		}
		if needMax && (math.IsNaN(maxs[s]) || v > maxs[s]) {
			maxs[s] = v
		}
	}

	var sumsq []float64
	if needDev {
		means := make([]float64, n)
		for s := range means {
			means[s] = sums[s] / float64(counts[s])
		}
		sumsq = make([]float64, n)
		for i, v := range src {
			if !math.IsNaN(v) {
				s := g.slotOf[i]
				d := v - means[s]
				sumsq[s] += d * d
			}
		}
	}

	out := make([]Handle, 0, 7)
	if aggMask&AggSum != 0 {
		vals := make([]float64, n)
		copy(vals, sums)
		out = append(out, e.registerF64(vals))
	}
	if aggMask&AggMean != 0 {
		vals := make([]float64, n)
		for s := range vals {
			if counts[s] > 0 {
				vals[s] = sums[s] / float64(counts[s])
			} else {
				vals[s] = math.NaN()
			}
		}
		out = append(out, e.registerF64(vals))
	}
	if aggMask&AggCount != 0 {
		vals := make([]float64, n)
		for s := range vals {
			vals[s] = float64(counts[s])
		}
		out = append(out, e.registerF64(vals))
	}
	if aggMask&AggMin != 0 {
		out = append(out, e.registerF64(mins))
	}
	if aggMask&AggMax != 0 {
		out = append(out, e.registerF64(maxs))
	}
	if aggMask&AggStd != 0 {
		vals := make([]float64, n)
		for s := range vals {
			if counts[s] > 1 {
				vals[s] = math.Sqrt(sumsq[s] / float64(counts[s]-1))
			} else {
				vals[s] = math.NaN()
			}
		}
		out = append(out, e.registerF64(vals))
	}
	if aggMask&AggVar != 0 {
		vals := make([]float64, n)
		for s := range vals {
			if counts[s] > 1 {
				vals[s] = sumsq[s] / float64(counts[s]-1)
			} else {
				vals[s] = math.NaN()
			}
		}
		out = append(out, e.registerF64(vals))
	}
	return out
}

func newNaNSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
