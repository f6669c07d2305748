package skiff

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Handle is an opaque identifier for a live series in an Engine. A handle is
// only meaningful to the engine that issued it, and only until the series is
// freed or the engine is flushed.
type Handle uint32

// InvalidHandle is returned by every handle-producing operation that could
// not produce a series (absent source, empty source, length mismatch). It is
// never issued for a live series.
const InvalidHandle Handle = math.MaxUint32

// Errors reported by the error-returning lookups. The exported operations
// encode these to InvalidHandle or an empty slice at the boundary; callers
// embedding the engine directly can match on them instead.
var (
	ErrSeriesNotFound = errors.New("skiff: series not found")
	ErrEmptySeries    = errors.New("skiff: series is empty")
	ErrLengthMismatch = errors.New("skiff: length mismatch")
)

// Engine is the buffer registry: it exclusively owns every series buffer it
// allocates and maps handles to them. Operator outputs are always freshly
// allocated and registered, never aliasing their inputs.
//
// An Engine is not synchronized; see the package documentation.
type Engine struct {
	nextID Handle

	f64store map[Handle][]float64
	i32store map[Handle][]int32

	initCap int
	log     *zap.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger sets a structured logger for series lifecycle events
// (create/free/flush), emitted at debug level. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithInitialCapacity pre-sizes the handle tables for callers that know
// roughly how many series will be live at once.
func WithInitialCapacity(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.initCap = n
		}
	}
}

// New creates an empty Engine.
func New(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	e.f64store = make(map[Handle][]float64, e.initCap)
	e.i32store = make(map[Handle][]int32, e.initCap)
	return e
}

// nextHandle issues the next handle. The counter wraps on overflow; handles
// still live in either table are skipped so a long-lived series can never be
// silently aliased, and InvalidHandle is never issued.
func (e *Engine) nextHandle() Handle {
	for {
		id := e.nextID
		e.nextID++
		if id == InvalidHandle {
			continue
		}
		if _, live := e.f64store[id]; live {
			continue
		}
		if _, live := e.i32store[id]; live {
			continue
		}
		return id
	}
}

// registerF64 takes ownership of buf and registers it under a fresh handle.
// Operators that already built their result call this directly to avoid a
// second copy.
func (e *Engine) registerF64(buf []float64) Handle {
	h := e.nextHandle()
	e.f64store[h] = buf
	e.log.Debug("series registered",
		zap.Uint32("handle", uint32(h)),
		zap.Int("len", len(buf)),
		zap.Stringer("dtype", Float64))
	return h
}

func (e *Engine) registerI32(buf []int32) Handle {
	h := e.nextHandle()
	e.i32store[h] = buf
	e.log.Debug("series registered",
		zap.Uint32("handle", uint32(h)),
		zap.Int("len", len(buf)),
		zap.Stringer("dtype", Int32))
	return h
}

// CreateSeriesF64 copies data into newly owned storage and registers it.
// A zero-length input yields a valid handle to a zero-length series.
func (e *Engine) CreateSeriesF64(data []float64) Handle {
	buf := make([]float64, len(data))
	copy(buf, data)
	return e.registerF64(buf)
}

// CreateSeriesI32 copies data into newly owned storage and registers it.
func (e *Engine) CreateSeriesI32(data []int32) Handle {
	buf := make([]int32, len(data))
	copy(buf, data)
	return e.registerI32(buf)
}

// FreeSeries releases the float64 series identified by h. Freeing an absent
// or already-freed handle is a silent no-op.
func (e *Engine) FreeSeries(h Handle) {
	if _, ok := e.f64store[h]; !ok {
		return
	}
	delete(e.f64store, h)
	e.log.Debug("series freed", zap.Uint32("handle", uint32(h)))
}

// FreeSeriesI32 releases the int32 series identified by h.
func (e *Engine) FreeSeriesI32(h Handle) {
	if _, ok := e.i32store[h]; !ok {
		return
	}
	delete(e.i32store, h)
	e.log.Debug("series freed", zap.Uint32("handle", uint32(h)))
}

// Flush releases every series of both element types and resets handle
// issuance to zero. Every previously issued handle is invalidated; callers
// must not retain handles across a flush.
func (e *Engine) Flush() {
	n := len(e.f64store) + len(e.i32store)
	e.f64store = make(map[Handle][]float64, e.initCap)
	e.i32store = make(map[Handle][]int32, e.initCap)
	e.nextID = 0
	e.log.Debug("engine flushed", zap.Int("released", n))
}

// MemoryUsage returns the total bytes of live series storage across both
// element types.
func (e *Engine) MemoryUsage() int {
	total := 0
	for _, buf := range e.f64store {
		total += len(buf) * Float64.Size()
	}
	for _, buf := range e.i32store {
		total += len(buf) * Int32.Size()
	}
	return total
}

// SeriesCount returns the number of live series across both element types.
func (e *Engine) SeriesCount() int {
	return len(e.f64store) + len(e.i32store)
}

// lookupF64 returns the owned buffer for h, or ErrSeriesNotFound.
func (e *Engine) lookupF64(h Handle) ([]float64, error) {
	buf, ok := e.f64store[h]
	if !ok {
		return nil, ErrSeriesNotFound
	}
	return buf, nil
}

func (e *Engine) lookupI32(h Handle) ([]int32, error) {
	buf, ok := e.i32store[h]
	if !ok {
		return nil, ErrSeriesNotFound
	}
	return buf, nil
}
