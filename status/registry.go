package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry holds the counters shown by the debug overlay
// Modes cache metric pointers at construction and write atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by type and sorted by key within a group
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{Key: k, Value: v.Load()})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{Key: k, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{Key: k, Value: fmt.Sprintf("%.2f", v.Get())})
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{Key: k, Value: strconv.FormatBool(v.Load())})
	})
	return out
}
