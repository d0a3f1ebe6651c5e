package status

import (
	"slices"
	"sync"
)

// MetricMap hands out stable pointers to metrics of type T by key
// Callers cache the pointer and update it lock-free; only registration locks
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	p := m.items[key]
	m.mu.RUnlock()
	if p != nil {
		return p
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p = m.items[key]; p == nil {
		p = new(T)
		m.items[key] = p
	}
	return p
}

func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key] != nil
}

// Range visits every metric in key order over a snapshot taken at call time
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	keys := make([]string, 0, len(m.items))
	ptrs := make(map[string]*T, len(m.items))
	for k, p := range m.items {
		keys = append(keys, k)
		ptrs[k] = p
	}
	m.mu.RUnlock()

	slices.Sort(keys)
	for _, k := range keys {
		fn(k, ptrs[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
