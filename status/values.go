package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 readable from any goroutine; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Get() float64  { return math.Float64frombits(g.bits.Load()) }

// MaxLabelLen caps stored labels
const MaxLabelLen = 20

// Label is a short string readable from any goroutine; the zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncating to MaxLabelLen bytes
func (l *Label) Store(v string) {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	l.ptr.Store(&v)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
