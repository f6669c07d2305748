// Package skiff is a single-process analytical compute kernel: a registry of
// numeric column buffers ("series") addressed by opaque integer handles, plus
// query-style operators (filter, sort, group-by, membership, statistics) that
// read registered buffers and register their results as new series.
//
// The package is the engine behind a higher-level tabular library. That caller
// owns schema, column naming and null policy at its API boundary; skiff only
// sees homogeneous numeric arrays. Nulls are represented in-band: NaN for
// float64 series, NullInt32 for int32 series.
//
// An Engine is not synchronized. It is designed to be reached by one
// goroutine at a time; callers that need concurrent access must add their own
// locking around the whole engine.
package skiff
