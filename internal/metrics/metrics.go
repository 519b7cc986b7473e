// Package metrics summarises simulation output for logging.
package metrics

import (
	"iter"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// FieldMetric accumulates a statistic over animation frames.
type FieldMetric interface {
	Name() string
	Observe(f quantum.Frame)
	Value() float64
	Reset()
}

// Observe passes frames through unchanged, feeding each to every metric.
func Observe(frames iter.Seq[quantum.Frame], ms ...FieldMetric) iter.Seq[quantum.Frame] {
	return func(yield func(quantum.Frame) bool) {
		for fr := range frames {
			for _, m := range ms {
				m.Observe(fr)
			}
			if !yield(fr) {
				return
			}
		}
	}
}

// Values collects metric values keyed by name.
func Values(ms ...FieldMetric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
