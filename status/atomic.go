package status

import (
	"math"
	"sync/atomic"
)

// MaxStringLen keeps overlay values to one column
const MaxStringLen = 24

// AtomicFloat holds a float64 as its IEEE bits; the zero value reads 0
type AtomicFloat struct {
	v atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.v.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.v.Load()) }

// AtomicString holds a short label such as the active mode name
type AtomicString struct {
	v atomic.Value
}

// Store replaces the value, cutting it at MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.v.Store(val)
}

func (s *AtomicString) Load() string {
	v, _ := s.v.Load().(string)
	return v
}
