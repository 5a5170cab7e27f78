package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Well-known runtime counters
const (
	KeyTicks       = "engine.ticks"
	KeyTicksMissed = "engine.ticks_missed"
	KeyFrames      = "render.frames"
	KeyFrameTime   = "render.frame_ms"
	KeyRounds      = "session.rounds"
	KeyScreen      = "session.screen"
)

// Registry holds runtime counters shared between the runner goroutines
// Callers cache the pointer returned by Get and write to it directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[Gauge]
	Strings *MetricMap[Label]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[Gauge](),
		Strings: NewMetricMap[Label](),
	}
}

// Fields snapshots every metric as zap fields, ints first, each group in key order
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.Ints.Count()+r.Floats.Count()+r.Strings.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(key, v.Load()))
	})
	r.Floats.Range(func(key string, v *Gauge) {
		fields = append(fields, zap.Float64(key, v.Get()))
	})
	r.Strings.Range(func(key string, v *Label) {
		fields = append(fields, zap.String(key, v.Load()))
	})
	return fields
}
